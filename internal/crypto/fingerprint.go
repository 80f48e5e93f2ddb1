package crypto

import "crypto/sha256"

// fingerprintLen is the number of digest bytes kept by Fingerprint.
const fingerprintLen = 10

// Fingerprint returns a 20-character display fingerprint of a public key:
// the first 10 bytes of its SHA-256 digest, in hex. It is for logs and
// manual comparison only and never replaces the key itself.
func Fingerprint(pub []byte) string {
	sum := sha256.Sum256(pub)
	return Hex(sum[:fingerprintLen])
}
