package crypto

import (
	"crypto/rand"
	"errors"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"

	"cryptoprobe/internal/util/memzero"
)

const (
	KeyBytes   = chacha20poly1305.KeySize
	SaltBytes  = 16
	NonceBytes = chacha20poly1305.NonceSize
)

var errSaltSize = errors.New("invalid salt size")

// DeriveKEK derives a key-encryption key from a passphrase and salt using Argon2id.
func DeriveKEK(passphrase string, salt []byte) []byte {
	return argon2.IDKey([]byte(passphrase), salt, 1, 8*1024, 1, KeyBytes)
}

// Seal encrypts plaintext with a KEK derived from the passphrase and salt.
// The returned ciphertext is prefixed with its nonce.
func Seal(passphrase string, salt, plaintext, ad []byte) ([]byte, error) {
	if len(salt) != SaltBytes {
		return nil, errSaltSize
	}
	kek := DeriveKEK(passphrase, salt)
	defer memzero.Zero(kek)

	aead, err := chacha20poly1305.New(kek)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, NonceBytes, NonceBytes+len(plaintext)+aead.Overhead())
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}
	return aead.Seal(nonce, nonce, plaintext, ad), nil
}

// Open reverses Seal.
func Open(passphrase string, salt, sealed, ad []byte) ([]byte, error) {
	if len(salt) != SaltBytes {
		return nil, errSaltSize
	}
	if len(sealed) < NonceBytes {
		return nil, errors.New("sealed message too short")
	}
	kek := DeriveKEK(passphrase, salt)
	defer memzero.Zero(kek)

	aead, err := chacha20poly1305.New(kek)
	if err != nil {
		return nil, err
	}
	return aead.Open(nil, sealed[:NonceBytes], sealed[NonceBytes:], ad)
}
