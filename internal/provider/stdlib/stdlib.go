// Package stdlib registers the provider backed by the Go standard library.
package stdlib

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/ed25519"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"cryptoprobe/internal/domain"
	"cryptoprobe/internal/provider"
)

const (
	AES        domain.Algorithm = "AES"
	AESGCM     domain.Algorithm = "AES-GCM"
	SHA256     domain.Algorithm = "SHA-256"
	HMACSHA256 domain.Algorithm = "HMAC-SHA256"
	Ed25519    domain.Algorithm = "Ed25519"
)

var algorithms = []domain.Algorithm{AES, AESGCM, SHA256, HMACSHA256, Ed25519}

// Register installs the provider in r under domain.DefaultProvider.
func Register(r *provider.Registry) {
	r.Register(domain.DefaultProvider, algorithms, func(logger *logrus.Entry) (provider.Provider, error) {
		return &Provider{logger: logger}, nil
	})
}

// Provider implements provider.Provider with crypto/* packages.
type Provider struct {
	logger *logrus.Entry
}

func (p *Provider) Name() domain.ProviderName { return domain.DefaultProvider }

func (p *Provider) Algorithms() []domain.Algorithm {
	return append([]domain.Algorithm(nil), algorithms...)
}

// SelfTest runs an AES-GCM round trip, an HMAC check and an Ed25519 signature.
func (p *Provider) SelfTest() error {
	msg := []byte("cryptoprobe self-test")

	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		return err
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return fmt.Errorf("self-test %s: %w", AES, err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return fmt.Errorf("self-test %s: %w", AESGCM, err)
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return err
	}
	pt, err := gcm.Open(nil, nonce, gcm.Seal(nil, nonce, msg, nil), nil)
	if err != nil || !bytes.Equal(pt, msg) {
		return fmt.Errorf("self-test %s: round trip failed", AESGCM)
	}

	mac := hmac.New(sha256.New, key)
	mac.Write(msg)
	sum := mac.Sum(nil)
	mac.Reset()
	mac.Write(msg)
	if !hmac.Equal(sum, mac.Sum(nil)) {
		return fmt.Errorf("self-test %s: mac mismatch", HMACSHA256)
	}

	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return fmt.Errorf("self-test %s: %w", Ed25519, err)
	}
	if !ed25519.Verify(pub, msg, ed25519.Sign(priv, msg)) {
		return fmt.Errorf("self-test %s: %w", Ed25519, errors.New("signature rejected"))
	}

	p.logger.Debugf("self-test passed for %d algorithms", len(algorithms))
	return nil
}

var _ provider.Provider = (*Provider)(nil)
