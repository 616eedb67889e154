// Package policy implements the platform cipher key-length policy.
//
// The platform knows a fixed set of symmetric algorithms. Asking for any
// other name yields domain.ErrAlgorithmUnsupported. For a known algorithm the
// policy first confirms the platform can construct the cipher, then reports
// the configured cap for it, or domain.UnlimitedKeyLength when none is set.
//
// Caps model restricted jurisdiction policies: configuring AES to 128 makes
// the host report the historical export-grade limit.
package policy
