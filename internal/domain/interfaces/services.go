package interfaces

import domaintypes "cryptoprobe/internal/domain/types"

// VerifierService answers whether the host is cryptographically capable.
type VerifierService interface {
	IsProviderInstalled() bool
	IsUnlimitedStrength() bool
	AssertSecureSystem() error
	Report() domaintypes.Report
	Verify() (domaintypes.Report, error)
}
