package domain

import (
	interfaces "cryptoprobe/internal/domain/interfaces"
	types "cryptoprobe/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	ProviderName = types.ProviderName
	Algorithm    = types.Algorithm
	ProviderInfo = types.ProviderInfo
	CheckResult  = types.CheckResult
	Report       = types.Report
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	ProviderRegistry = interfaces.ProviderRegistry
	KeyLengthPolicy  = interfaces.KeyLengthPolicy
	VerifierService  = interfaces.VerifierService
	ReportStore      = interfaces.ReportStore
	ReportPublisher  = interfaces.ReportPublisher
)
