// Package cryptox implements at-rest encryption for will personal messages:
// AES-256-GCM with a key derived from the configured server secret via
// argon2id.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"

	"golang.org/x/crypto/argon2"
)

// nonceSize is the standard GCM nonce length.
const nonceSize = 12

var ErrInvalidCiphertext = errors.New("invalid ciphertext")

// DeriveKey stretches secret into a 32-byte AES key using argon2id.
// The salt only namespaces deployments; it is not secret.
func DeriveKey(secret, salt []byte) []byte {
	return argon2.IDKey(secret, salt, 1, 64*1024, 4, 32)
}

// Cipher encrypts and decrypts short payloads with a fixed key.
type Cipher struct {
	aead cipher.AEAD
}

// NewCipher builds a Cipher around AES-GCM. The key must be 16, 24 or 32
// bytes long (use DeriveKey).
func NewCipher(key []byte) (*Cipher, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	return &Cipher{aead: aead}, nil
}

// Encrypt seals plaintext under a fresh random nonce. Ciphertext and nonce
// are returned separately so they can live in separate columns.
func (c *Cipher) Encrypt(plaintext []byte) (ciphertext, nonce []byte, err error) {
	nonce = make([]byte, nonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return nil, nil, err
	}
	return c.aead.Seal(nil, nonce, plaintext, nil), nonce, nil
}

// Decrypt opens ciphertext previously produced by Encrypt.
func (c *Cipher) Decrypt(ciphertext, nonce []byte) ([]byte, error) {
	if len(nonce) != nonceSize {
		return nil, ErrInvalidCiphertext
	}
	plaintext, err := c.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrInvalidCiphertext
	}
	return plaintext, nil
}
