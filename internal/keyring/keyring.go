package keyring

import (
	"crypto/rand"
	"encoding/base64"
	"io"
	"log/slog"
	"os"

	"github.com/thoreinstein/den/internal/errors"
	"github.com/thoreinstein/den/internal/logging"
	"github.com/thoreinstein/den/internal/paths"
	"github.com/thoreinstein/den/internal/settings"
)

// Field is the settings document field holding the encryption key.
// The credential store depends on this name.
const Field = "encryptionKey"

// keyLen is the number of random bytes in a generated key, before
// base64 encoding.
const keyLen = 24

// Provisioner lazily provisions the credential encryption key in the
// settings document and resolves its effective value.
//
// Provisioning is idempotent per settings file: once a key is
// persisted it is never regenerated or overwritten. There is no
// cross-process coordination; two processes racing to provision may
// each generate a key and the later write wins.
type Provisioner struct {
	store     *settings.Store
	logger    *slog.Logger
	lookupEnv func(string) (string, bool)
	random    io.Reader
}

// NewProvisioner creates a Provisioner over the given store, reading
// overrides from the real process environment and keys from
// crypto/rand. A nil logger discards log output.
func NewProvisioner(store *settings.Store, logger *slog.Logger) *Provisioner {
	if logger == nil {
		logger = logging.NewDiscard()
	}
	return &Provisioner{
		store:     store,
		logger:    logger,
		lookupEnv: os.LookupEnv,
		random:    rand.Reader,
	}
}

// EnsureKey makes sure the settings document carries an encryption
// key and returns the document.
//
// When a non-empty key is already persisted the document is returned
// unchanged and nothing is written. Otherwise a fresh key is generated
// from the random source, merged into the loaded document (or an empty
// one), and written. This is the only path that triggers first-time
// directory creation.
func (p *Provisioner) EnsureKey() (settings.Document, error) {
	doc, found, err := p.store.Load("", false)
	if err != nil {
		return nil, err
	}

	if found {
		if key, ok := doc[Field].(string); ok && key != "" {
			p.logger.Debug("encryption key already provisioned")
			return doc, nil
		}
	}

	key, err := p.generate()
	if err != nil {
		return nil, err
	}

	merged, err := p.store.Merge(settings.Document{Field: key}, "")
	if err != nil {
		return nil, err
	}

	p.logger.Info("encryption key provisioned")
	return merged, nil
}

// EffectiveKey resolves the key the credential store should use.
//
// A non-empty DEN_ENCRYPTION_KEY environment override wins and the
// settings document is left unread and unmodified. Otherwise the
// persisted key is returned. Absence of both is reported as
// ("", false, nil), not an error.
func (p *Provisioner) EffectiveKey() (string, bool, error) {
	if key, ok := p.lookupEnv(paths.EnvEncryptionKey); ok && key != "" {
		p.logger.Debug("using encryption key from environment")
		return key, true, nil
	}

	doc, found, err := p.store.Load("", false)
	if err != nil {
		return "", false, err
	}
	if !found {
		return "", false, nil
	}

	key, ok := doc[Field].(string)
	if !ok || key == "" {
		return "", false, nil
	}
	return key, true, nil
}

// generate returns a fresh base64-encoded key of keyLen random bytes.
func (p *Provisioner) generate() (string, error) {
	buf := make([]byte, keyLen)
	if _, err := io.ReadFull(p.random, buf); err != nil {
		return "", errors.Wrap(err, "generating encryption key")
	}
	return base64.StdEncoding.EncodeToString(buf), nil
}
