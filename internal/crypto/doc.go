// Package crypto exposes the minimal primitives used by cryptoprobe's provider
// self-tests.
//
// Contents
//
//   - Argon2id key-encryption-key derivation (DeriveKEK)
//   - ChaCha20-Poly1305 sealing and opening with a random nonce (Seal, Open)
//   - X25519 key generation, clamping and Diffie–Hellman (GenerateX25519, DH)
//   - Best-effort memory wiping for sensitive byte slices (Wipe)
//   - Short fingerprints for display/logging (Fingerprint)
//
// # Notes
//
// These helpers are thin wrappers over golang.org/x/crypto. Callers should
// treat derived keys as sensitive and rely on Wipe when practical to reduce
// their lifetime in memory.
package crypto
