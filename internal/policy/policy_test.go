package policy_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cryptoprobe/internal/domain"
	"cryptoprobe/internal/policy"
)

func TestMaxAllowedKeyLength_Unlimited(t *testing.T) {
	p, err := policy.New(nil)
	require.NoError(t, err)

	got, err := p.MaxAllowedKeyLength(domain.ReferenceAlgorithm)
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt32, got)
	assert.Equal(t, 2147483647, got)
}

func TestMaxAllowedKeyLength_Capped(t *testing.T) {
	p, err := policy.New(map[string]int{"aes": 128, "RC4": 40})
	require.NoError(t, err)

	tests := []struct {
		alg  domain.Algorithm
		want int
	}{
		{"AES", 128},
		{"aes", 128},
		{"RC4", 40},
		{"DES", domain.UnlimitedKeyLength},
		{"ChaCha20-Poly1305", domain.UnlimitedKeyLength},
	}
	for _, tc := range tests {
		t.Run(string(tc.alg), func(t *testing.T) {
			got, err := p.MaxAllowedKeyLength(tc.alg)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestMaxAllowedKeyLength_Unknown(t *testing.T) {
	p, err := policy.New(nil)
	require.NoError(t, err)

	_, err = p.MaxAllowedKeyLength("Rijndael-9000")
	assert.ErrorIs(t, err, domain.ErrAlgorithmUnsupported)
	assert.ErrorContains(t, err, "Rijndael-9000")
}

func TestNew_RejectsBadLimits(t *testing.T) {
	_, err := policy.New(map[string]int{"AES": 0})
	assert.Error(t, err)

	_, err = policy.New(map[string]int{"AES": -1})
	assert.Error(t, err)

	_, err = policy.New(map[string]int{"Serpent": 256})
	assert.ErrorIs(t, err, domain.ErrAlgorithmUnsupported)
}

func TestLimits_CanonicalNames(t *testing.T) {
	p, err := policy.New(map[string]int{"aes": 128, "desede": 112})
	require.NoError(t, err)

	assert.Equal(t, map[string]int{"AES": 128, "DESede": 112}, p.Limits())
}

func TestAlgorithms_Sorted(t *testing.T) {
	algs := policy.Algorithms()
	require.NotEmpty(t, algs)
	assert.Contains(t, algs, domain.ReferenceAlgorithm)
	assert.IsIncreasing(t, algs)
}

func TestMaxAllowedKeyLength_Idempotent(t *testing.T) {
	p, err := policy.New(map[string]int{"AES": 256})
	require.NoError(t, err)

	first, err := p.MaxAllowedKeyLength("AES")
	require.NoError(t, err)
	second, err := p.MaxAllowedKeyLength("AES")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
