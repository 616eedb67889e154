package types

import "time"

// CheckResult is the outcome of a single capability check.
type CheckResult struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
	Detail string `json:"detail,omitempty"`
}

// Report is the serialisable outcome of a verification run.
type Report struct {
	Host        string         `json:"host"`
	GeneratedAt time.Time      `json:"generated_at"`
	Checks      []CheckResult  `json:"checks"`
	Providers   []ProviderInfo `json:"providers"`
	Secure      bool           `json:"secure"`
	Fingerprint string         `json:"fingerprint,omitempty"`
}
