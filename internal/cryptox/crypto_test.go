package cryptox

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestCipher(t *testing.T) *Cipher {
	t.Helper()
	c, err := NewCipher(DeriveKey([]byte("test-secret"), []byte("willkeeper")))
	require.NoError(t, err)
	return c
}

func TestCipher_RoundTrip(t *testing.T) {
	c := newTestCipher(t)

	ct, nonce, err := c.Encrypt([]byte("for my family"))
	require.NoError(t, err)
	require.NotEqual(t, []byte("for my family"), ct)

	pt, err := c.Decrypt(ct, nonce)
	require.NoError(t, err)
	require.Equal(t, "for my family", string(pt))
}

func TestCipher_NoncesDiffer(t *testing.T) {
	c := newTestCipher(t)

	_, n1, err := c.Encrypt([]byte("x"))
	require.NoError(t, err)
	_, n2, err := c.Encrypt([]byte("x"))
	require.NoError(t, err)
	require.NotEqual(t, n1, n2)
}

func TestCipher_TamperedCiphertext(t *testing.T) {
	c := newTestCipher(t)

	ct, nonce, err := c.Encrypt([]byte("authentic"))
	require.NoError(t, err)

	ct[0] ^= 0xff
	_, err = c.Decrypt(ct, nonce)
	require.ErrorIs(t, err, ErrInvalidCiphertext)
}

func TestCipher_BadNonceLength(t *testing.T) {
	c := newTestCipher(t)

	ct, _, err := c.Encrypt([]byte("authentic"))
	require.NoError(t, err)

	_, err = c.Decrypt(ct, []byte{1, 2, 3})
	require.ErrorIs(t, err, ErrInvalidCiphertext)
}

func TestNewCipher_BadKeyLength(t *testing.T) {
	_, err := NewCipher([]byte("short"))
	require.Error(t, err)
}

func TestDeriveKey_Deterministic(t *testing.T) {
	k1 := DeriveKey([]byte("s"), []byte("salt"))
	k2 := DeriveKey([]byte("s"), []byte("salt"))
	require.Equal(t, k1, k2)
	require.Len(t, k1, 32)

	k3 := DeriveKey([]byte("s"), []byte("other"))
	require.NotEqual(t, k1, k3)
}
