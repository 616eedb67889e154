package policy

import (
	"crypto/aes"
	"crypto/des"
	"crypto/hmac"
	"crypto/rc4"
	"crypto/sha256"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/crypto/chacha20poly1305"

	"cryptoprobe/internal/domain"
)

// probe reports whether the platform can construct the algorithm.
type probe func() error

var known = map[string]struct {
	name  domain.Algorithm
	probe probe
}{
	"aes": {"AES", func() error {
		_, err := aes.NewCipher(make([]byte, 16))
		return err
	}},
	"chacha20-poly1305": {"ChaCha20-Poly1305", func() error {
		_, err := chacha20poly1305.New(make([]byte, chacha20poly1305.KeySize))
		return err
	}},
	"hmac-sha256": {"HMAC-SHA256", func() error {
		hmac.New(sha256.New, make([]byte, 16))
		return nil
	}},
	"des": {"DES", func() error {
		_, err := des.NewCipher(make([]byte, 8))
		return err
	}},
	"desede": {"DESede", func() error {
		_, err := des.NewTripleDESCipher(make([]byte, 24))
		return err
	}},
	"rc4": {"RC4", func() error {
		_, err := rc4.NewCipher(make([]byte, 16))
		return err
	}},
}

// Platform is the key-length policy of this host.
type Platform struct {
	limits map[string]int
}

// New builds a policy from per-algorithm caps in bits. Algorithm names are
// matched case-insensitively.
func New(limits map[string]int) (*Platform, error) {
	if err := Validate(limits); err != nil {
		return nil, err
	}
	p := &Platform{limits: make(map[string]int, len(limits))}
	for alg, bits := range limits {
		p.limits[strings.ToLower(alg)] = bits
	}
	return p, nil
}

// Validate rejects non-positive caps and caps for unknown algorithms.
func Validate(limits map[string]int) error {
	for alg, bits := range limits {
		if _, ok := known[strings.ToLower(alg)]; !ok {
			return fmt.Errorf("policy limit for %q: %w", alg, domain.ErrAlgorithmUnsupported)
		}
		if bits <= 0 {
			return fmt.Errorf("policy limit for %q must be positive, got %d", alg, bits)
		}
	}
	return nil
}

// MaxAllowedKeyLength implements domain.KeyLengthPolicy.
func (p *Platform) MaxAllowedKeyLength(alg domain.Algorithm) (int, error) {
	key := strings.ToLower(string(alg))
	k, ok := known[key]
	if !ok {
		return 0, fmt.Errorf("%w: %s", domain.ErrAlgorithmUnsupported, alg)
	}
	if err := k.probe(); err != nil {
		return 0, fmt.Errorf("%w: %s: %v", domain.ErrAlgorithmUnsupported, alg, err)
	}
	if bits, ok := p.limits[key]; ok {
		return bits, nil
	}
	return domain.UnlimitedKeyLength, nil
}

// Limits returns a copy of the configured caps keyed by canonical algorithm name.
func (p *Platform) Limits() map[string]int {
	out := make(map[string]int, len(p.limits))
	for key, bits := range p.limits {
		out[string(known[key].name)] = bits
	}
	return out
}

// Algorithms lists the algorithms the platform recognises.
func Algorithms() []domain.Algorithm {
	out := make([]domain.Algorithm, 0, len(known))
	for _, k := range known {
		out = append(out, k.name)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

var _ domain.KeyLengthPolicy = (*Platform)(nil)
