// Package paths derives the on-disk locations of the den data folder.
//
// All derivation is pure: a [Resolver] reads only the environment and
// working-directory lookups it was constructed with, and never touches
// the file system. The settings store and key provisioner build on it;
// external subsystems consume [Resolver.ExtensionsDir] and the exported
// name constants directly.
//
// # Precedence
//
// The data folder is resolved in fixed order:
//
//  1. DEN_DATA_DIR, used verbatim when set,
//  2. the platform home variable (HOME, or USERPROFILE on Windows)
//     joined with ".den",
//  3. the current working directory joined with ".den".
//
// Explicit path arguments accepted by the settings store sit above all
// of these.
package paths
