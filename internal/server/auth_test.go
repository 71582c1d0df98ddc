package server

import (
	"crypto/ed25519"
	"crypto/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gossh "golang.org/x/crypto/ssh"
)

func newPublicKey(t *testing.T) gossh.PublicKey {
	t.Helper()
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	key, err := gossh.NewPublicKey(pub)
	require.NoError(t, err)
	return key
}

func writeAuthorizedKeys(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "authorized_keys")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0600))
	return path
}

func TestIsKeyAuthorized(t *testing.T) {
	allowed := newPublicKey(t)
	other := newPublicKey(t)

	path := writeAuthorizedKeys(t,
		"# team keys",
		"",
		"not a key",
		strings.TrimSpace(string(gossh.MarshalAuthorizedKey(allowed)))+" ops@freshcart",
	)

	assert.True(t, isKeyAuthorized(allowed, path))
	assert.False(t, isKeyAuthorized(other, path))
}

func TestIsKeyAuthorized_MissingFile(t *testing.T) {
	key := newPublicKey(t)
	assert.False(t, isKeyAuthorized(key, filepath.Join(t.TempDir(), "missing")))
}

func TestLoadAuthorizedKeys(t *testing.T) {
	first := newPublicKey(t)
	second := newPublicKey(t)
	path := writeAuthorizedKeys(t,
		"# comment",
		string(gossh.MarshalAuthorizedKey(first)),
		"garbage",
		strings.TrimSpace(string(gossh.MarshalAuthorizedKey(second)))+" ops@freshcart",
	)

	keys, err := loadAuthorizedKeys(path)

	require.NoError(t, err)
	require.Len(t, keys, 2)
	assert.Equal(t, first.Marshal(), keys[0].Marshal())
	assert.Equal(t, second.Marshal(), keys[1].Marshal())
}

func TestGetKeyFingerprint(t *testing.T) {
	key := newPublicKey(t)

	fingerprint := getKeyFingerprint(key)

	assert.True(t, strings.HasPrefix(fingerprint, "SHA256:"))
	assert.Equal(t, fingerprint, getKeyFingerprint(key))
	assert.NotEqual(t, fingerprint, getKeyFingerprint(newPublicKey(t)))
}

func TestServer_Authorize(t *testing.T) {
	key := newPublicKey(t)
	s := &Server{opts: Options{AuthorizedKeysPath: writeAuthorizedKeys(t, string(gossh.MarshalAuthorizedKey(key)))}}

	assert.True(t, s.authorize("alice", key))
	assert.False(t, s.authorize("mallory", newPublicKey(t)))
}
