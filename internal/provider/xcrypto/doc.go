// Package xcrypto registers the golang.org/x/crypto provider.
//
// This is the alternate provider whose presence cryptoprobe asserts. It
// advertises the AEADs, KDFs and key-agreement schemes that the Go standard
// library does not ship, and its self-test exercises each one with a round
// trip or a known-length derivation.
package xcrypto
