// Package keyring provisions the credential encryption key.
//
// The key is a base64-encoded 24-byte random secret stored under the
// "encryptionKey" field of the settings document. It is consumed by
// the credential store to encrypt saved credentials; this package never
// encrypts anything itself and the key is not encrypted at rest.
//
// [Provisioner.EnsureKey] is idempotent: a persisted key is never
// regenerated. [Provisioner.EffectiveKey] honors the DEN_ENCRYPTION_KEY
// environment override without reading or touching the persisted
// document.
package keyring
