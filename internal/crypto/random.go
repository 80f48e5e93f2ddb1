package crypto

import (
	"crypto/rand"
	"io"

	"sealbox/internal/domain"
)

// Reader is the secure random source used for keys and nonces.
// Tests may replace it; it must be safe for concurrent use.
var Reader io.Reader = rand.Reader

// ReadFull fills b from Reader.
func ReadFull(b []byte) error {
	if _, err := io.ReadFull(Reader, b); err != nil {
		clear(b)
		return domain.Wrap(domain.CodeGeneral, err, "read random bytes")
	}
	return nil
}

// RandomBytes returns n bytes from Reader.
func RandomBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, domain.Errorf(domain.CodeGeneral, "negative length %d", n)
	}
	b := make([]byte, n)
	if err := ReadFull(b); err != nil {
		return nil, err
	}
	return b, nil
}
