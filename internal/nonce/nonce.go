package nonce

import (
	"bytes"
	"encoding/binary"

	"sealbox/internal/crypto"
	"sealbox/internal/domain"
)

// Size is the length of a nonce in bytes.
const Size = domain.NonceSize

const (
	timestampOff = 0
	randomOff    = 8
	counterOff   = 16
)

// Nonce is a 24-byte box nonce.
type Nonce [Size]byte

// Parse reads a nonce from 24 raw bytes, or from 48 high-nibble-first hex
// characters when fromHex is set.
func Parse(in []byte, fromHex bool) (Nonce, error) {
	var n Nonce
	if err := crypto.Load(n[:], in, fromHex, domain.CodeBadNonce, "nonce"); err != nil {
		return Nonce{}, err
	}
	return n, nil
}

// Bytes returns a copy of the raw nonce.
func (n Nonce) Bytes() []byte {
	out := make([]byte, Size)
	copy(out, n[:])
	return out
}

// Hex returns the nonce as 48 high-nibble-first hex characters.
func (n Nonce) Hex() string { return crypto.Hex(n[:]) }

// Timestamp returns the timestamp field.
func (n Nonce) Timestamp() uint64 { return binary.BigEndian.Uint64(n[timestampOff:randomOff]) }

// Counter returns the counter field.
func (n Nonce) Counter() uint64 { return binary.BigEndian.Uint64(n[counterOff:]) }

// Compare returns -1, 0 or +1 as n is less than, equal to or greater than o.
func (n Nonce) Compare(o Nonce) int {
	if c := bytes.Compare(n[:counterOff], o[:counterOff]); c != 0 {
		return c
	}
	a, b := n.Counter(), o.Counter()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Greater reports whether n is strictly greater than o.
func (n Nonce) Greater(o Nonce) bool { return n.Compare(o) > 0 }

// Raw exposes the backing array for the box primitives.
func (n *Nonce) Raw() *[Size]byte { return (*[Size]byte)(n) }
