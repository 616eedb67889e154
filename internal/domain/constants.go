package domain

import (
	"math"

	domaintypes "cryptoprobe/internal/domain/types"
)

const (
	// AlternateProvider is the provider that has to be registered for the
	// host to be considered capable.
	AlternateProvider domaintypes.ProviderName = "golang.org/x/crypto"

	// DefaultProvider is the provider backed by the Go standard library.
	DefaultProvider domaintypes.ProviderName = "go-stdlib"

	// ReferenceAlgorithm is the algorithm used to query the key-length policy.
	ReferenceAlgorithm domaintypes.Algorithm = "AES"

	// MinimumKeyLength is the threshold in bits. A policy reporting exactly
	// this value is not unlimited.
	MinimumKeyLength = 128

	// UnlimitedKeyLength is reported by a policy without a cap.
	UnlimitedKeyLength = math.MaxInt32
)

// Check names used in reports and assertion errors.
const (
	CheckProviderInstalled = "provider-installed"
	CheckUnlimitedStrength = "unlimited-strength"
)
