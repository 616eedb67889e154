// Package provider holds the in-process registry of cryptographic providers.
//
// Providers register a builder together with the algorithms they advertise.
// Lookups resolve a provider by name without calling its builder, so asking
// "is this provider installed?" never activates it. Build instantiates a
// provider, which is only needed to run its self-test.
//
// Each wiring owns its registry, built with NewRegistry.
package provider
