// Package domain defines core data models, constants and interfaces shared
// across cryptoprobe. It contains plain types (report/state), the error
// taxonomy and contracts (interfaces) only.
//
// The compiled-in constants describe what "secure enough" means:
//
//   - AlternateProvider   the provider that must be registered
//   - ReferenceAlgorithm  the symmetric algorithm whose key-length policy is queried
//   - MinimumKeyLength    the policy maximum must be strictly greater than this
package domain
