package interfaces

import domaintypes "cryptoprobe/internal/domain/types"

// ProviderRegistry resolves providers by name without instantiating them.
type ProviderRegistry interface {
	// Installed returns nil when name is registered and an error wrapping
	// ErrProviderNotFound otherwise.
	Installed(name domaintypes.ProviderName) error
	List() []domaintypes.ProviderInfo
}

// KeyLengthPolicy is the platform's cipher key-length policy.
type KeyLengthPolicy interface {
	// MaxAllowedKeyLength returns the maximum key length in bits permitted
	// for alg. Unknown algorithms yield an error wrapping
	// ErrAlgorithmUnsupported.
	MaxAllowedKeyLength(alg domaintypes.Algorithm) (int, error)
}
