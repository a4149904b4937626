// Package crypto exposes the minimal primitives used by qsvault.
//
// Contents
//
//   - Short report fingerprints for display/logging (Fingerprint)
//   - Passphrase sealing of exported reports: Argon2id key derivation and
//     ChaCha20-Poly1305 encryption inside a versioned JSON envelope (Seal,
//     Open)
//   - Best-effort memory wiping for derived keys (Wipe)
//
// # Notes
//
// KDF cost is carried in the envelope, so a report sealed with one set of
// KDFParams can be opened by a build that defaults to another.
package crypto
