package server

import (
	"fmt"
	"os"

	"github.com/charmbracelet/ssh"
	gossh "golang.org/x/crypto/ssh"

	"github.com/renato0307/freshcart/internal/logging"
)

// authorize checks the client key against the authorized_keys file.
// The file is re-read on every login so edits apply without a restart.
func (s *Server) authorize(user string, key ssh.PublicKey) bool {
	attrs := []any{"user", user, "fingerprint", getKeyFingerprint(key), "key_type", key.Type()}

	if !isKeyAuthorized(key, s.opts.AuthorizedKeysPath) {
		logging.Logger.Warn("Rejected SSH key", attrs...)
		return false
	}
	logging.Logger.Info("Accepted SSH key", attrs...)
	return true
}

// isKeyAuthorized reports whether clientKey is listed in authorizedKeysPath
func isKeyAuthorized(clientKey ssh.PublicKey, authorizedKeysPath string) bool {
	keys, err := loadAuthorizedKeys(authorizedKeysPath)
	if err != nil {
		logging.Logger.Warn("Cannot read authorized keys", "error", err)
		return false
	}

	for _, k := range keys {
		if ssh.KeysEqual(clientKey, k) {
			return true
		}
	}
	return false
}

// loadAuthorizedKeys parses every key in an authorized_keys file.
// Comments, blank lines and unparsable lines are skipped.
func loadAuthorizedKeys(path string) ([]gossh.PublicKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var keys []gossh.PublicKey
	for len(data) > 0 {
		key, _, _, rest, err := gossh.ParseAuthorizedKey(data)
		if err != nil {
			break
		}
		keys = append(keys, key)
		data = rest
	}
	return keys, nil
}

// getKeyFingerprint returns the SHA256 fingerprint logged for each login attempt
func getKeyFingerprint(key ssh.PublicKey) string {
	return gossh.FingerprintSHA256(key)
}
