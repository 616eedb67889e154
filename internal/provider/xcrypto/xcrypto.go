package xcrypto

import (
	"bytes"
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/scrypt"

	"cryptoprobe/internal/crypto"
	"cryptoprobe/internal/domain"
	"cryptoprobe/internal/provider"
	"cryptoprobe/internal/util/memzero"
)

// Algorithms advertised by the provider.
const (
	ChaCha20Poly1305  domain.Algorithm = "ChaCha20-Poly1305"
	XChaCha20Poly1305 domain.Algorithm = "XChaCha20-Poly1305"
	Argon2id          domain.Algorithm = "Argon2id"
	Scrypt            domain.Algorithm = "scrypt"
	HKDFSHA256        domain.Algorithm = "HKDF-SHA256"
	X25519            domain.Algorithm = "X25519"
	BLAKE2b256        domain.Algorithm = "BLAKE2b-256"
)

var algorithms = []domain.Algorithm{
	ChaCha20Poly1305,
	XChaCha20Poly1305,
	Argon2id,
	Scrypt,
	HKDFSHA256,
	X25519,
	BLAKE2b256,
}

// Register installs the provider in r under domain.AlternateProvider.
func Register(r *provider.Registry) {
	r.Register(domain.AlternateProvider, algorithms, func(logger *logrus.Entry) (provider.Provider, error) {
		return New(logger), nil
	})
}

// Provider implements provider.Provider on top of golang.org/x/crypto.
type Provider struct {
	logger *logrus.Entry
}

// New returns the provider.
func New(logger *logrus.Entry) *Provider {
	return &Provider{logger: logger}
}

func (p *Provider) Name() domain.ProviderName { return domain.AlternateProvider }

func (p *Provider) Algorithms() []domain.Algorithm {
	return append([]domain.Algorithm(nil), algorithms...)
}

// SelfTest runs every algorithm once and returns the first failure.
func (p *Provider) SelfTest() error {
	tests := []struct {
		alg domain.Algorithm
		fn  func() error
	}{
		{ChaCha20Poly1305, testChaCha20Poly1305},
		{XChaCha20Poly1305, testXChaCha20Poly1305},
		{Argon2id, testArgon2id},
		{Scrypt, testScrypt},
		{HKDFSHA256, testHKDF},
		{X25519, testX25519},
		{BLAKE2b256, testBLAKE2b},
	}
	for _, tc := range tests {
		if err := tc.fn(); err != nil {
			p.logger.Errorf("self-test for %s failed: %s", tc.alg, err)
			return fmt.Errorf("self-test %s: %w", tc.alg, err)
		}
		p.logger.Debugf("self-test for %s passed", tc.alg)
	}
	return nil
}

var selfTestMessage = []byte("cryptoprobe self-test")

func testChaCha20Poly1305() error {
	salt := make([]byte, crypto.SaltBytes)
	if _, err := rand.Read(salt); err != nil {
		return err
	}
	sealed, err := crypto.Seal("self-test", salt, append([]byte(nil), selfTestMessage...), salt)
	if err != nil {
		return err
	}
	pt, err := crypto.Open("self-test", salt, sealed, salt)
	if err != nil {
		return err
	}
	if !bytes.Equal(pt, selfTestMessage) {
		return errors.New("round trip mismatch")
	}
	return nil
}

func testXChaCha20Poly1305() error {
	key := make([]byte, chacha20poly1305.KeySize)
	defer memzero.Zero(key)
	if _, err := rand.Read(key); err != nil {
		return err
	}
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return err
	}
	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return err
	}
	ct := aead.Seal(nil, nonce, selfTestMessage, nil)
	pt, err := aead.Open(nil, nonce, ct, nil)
	if err != nil {
		return err
	}
	if !bytes.Equal(pt, selfTestMessage) {
		return errors.New("round trip mismatch")
	}
	return nil
}

func testArgon2id() error {
	salt := bytes.Repeat([]byte{0x5a}, crypto.SaltBytes)
	a := crypto.DeriveKEK("self-test", salt)
	b := crypto.DeriveKEK("self-test", salt)
	defer memzero.Zero(a, b)
	if len(a) != crypto.KeyBytes || !bytes.Equal(a, b) {
		return errors.New("derivation is not deterministic")
	}
	return nil
}

func testScrypt() error {
	key, err := scrypt.Key(selfTestMessage, []byte("salt"), 1<<10, 8, 1, 32)
	if err != nil {
		return err
	}
	defer memzero.Zero(key)
	if len(key) != 32 {
		return fmt.Errorf("want 32 bytes, got %d", len(key))
	}
	return nil
}

func testHKDF() error {
	out := make([]byte, 42)
	defer memzero.Zero(out)
	r := hkdf.New(sha256.New, selfTestMessage, nil, []byte("cryptoprobe"))
	if _, err := io.ReadFull(r, out); err != nil {
		return err
	}
	return nil
}

func testX25519() error {
	aPriv, aPub, err := crypto.GenerateX25519()
	if err != nil {
		return err
	}
	bPriv, bPub, err := crypto.GenerateX25519()
	if err != nil {
		return err
	}
	ab, err := crypto.DH(aPriv, bPub)
	if err != nil {
		return err
	}
	ba, err := crypto.DH(bPriv, aPub)
	if err != nil {
		return err
	}
	defer memzero.Zero(ab[:], ba[:])
	if ab != ba {
		return errors.New("shared secrets differ")
	}
	return nil
}

func testBLAKE2b() error {
	h, err := blake2b.New256(nil)
	if err != nil {
		return err
	}
	h.Write(selfTestMessage)
	if sum := h.Sum(nil); len(sum) != blake2b.Size256 {
		return fmt.Errorf("want %d bytes, got %d", blake2b.Size256, len(sum))
	}
	return nil
}

var _ provider.Provider = (*Provider)(nil)
