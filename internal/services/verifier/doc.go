// Package verifier answers whether the host is cryptographically capable of
// running the service.
//
// Two independent read-only predicates are combined by AssertSecureSystem:
//
//   - IsProviderInstalled: domain.AlternateProvider resolves in the provider
//     registry. The provider is not instantiated.
//   - IsUnlimitedStrength: the key-length policy for domain.ReferenceAlgorithm
//     is strictly greater than domain.MinimumKeyLength.
//
// # Errors
//
// Registry and policy failures are logged at error level and turned into
// false; they never reach the caller. AssertSecureSystem returns a
// *domain.AssertionError naming the failed check. Terminating the process is
// left to the caller.
//
// The service holds no mutable state and is safe for concurrent use.
package verifier
