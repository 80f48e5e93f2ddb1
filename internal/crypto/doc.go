// Package crypto holds the byte-level collaborators of the box layer.
//
// Contents
//
//   - High-nibble-first hex encoding and strict fixed-length decoding (Hex, DecodeHex)
//   - The process-wide secure random source (Reader, RandomBytes, ReadFull)
//   - Short public-key fingerprints for display/logging (Fingerprint)
//
// # Notes
//
// Reader defaults to crypto/rand and may be swapped by tests to simulate RNG
// failure. All failures are reported as domain errors with CodeGeneral; the
// callers decide which more specific code applies.
package crypto
