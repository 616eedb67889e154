package types

// ProviderName identifies a cryptographic provider in the registry.
type ProviderName string

// String returns the string form of the provider name.
func (n ProviderName) String() string { return string(n) }

// Algorithm names a cipher, MAC or key-agreement scheme.
type Algorithm string

// String returns the string form of the algorithm.
func (a Algorithm) String() string { return string(a) }

// ProviderInfo describes a registered provider without instantiating it.
type ProviderInfo struct {
	Name       ProviderName `json:"name"`
	Algorithms []Algorithm  `json:"algorithms"`
}
