package domain

const (
	// KeySize is the length of public, secret and precomputed keys.
	KeySize = 32
	// NonceSize is the length of a box nonce.
	NonceSize = 24
	// Overhead is the number of bytes a sealed message grows by (the Poly1305 tag).
	Overhead = 16
)
