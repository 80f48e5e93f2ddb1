package crypto

import (
	"encoding/hex"

	"sealbox/internal/domain"
)

// Hex returns the high-nibble-first lower-case hex encoding of b.
func Hex(b []byte) string { return hex.EncodeToString(b) }

// DecodeHex decodes s into dst, which must be exactly len(s)/2 bytes.
// A length mismatch is reported with lengthCode; malformed digits are
// CodeGeneral. dst is zeroed on failure.
func DecodeHex(dst []byte, s []byte, lengthCode domain.Code, what string) error {
	if len(s) != 2*len(dst) {
		return domain.Errorf(lengthCode, "%s must be %d hex characters, got %d", what, 2*len(dst), len(s))
	}
	if _, err := hex.Decode(dst, s); err != nil {
		clear(dst)
		return domain.Wrap(domain.CodeGeneral, err, "decode "+what)
	}
	return nil
}

// Load copies a key or nonce given either as exactly len(dst) raw bytes or
// as 2*len(dst) hex characters.
func Load(dst []byte, in []byte, fromHex bool, lengthCode domain.Code, what string) error {
	if fromHex {
		return DecodeHex(dst, in, lengthCode, what)
	}
	if len(in) != len(dst) {
		return domain.Errorf(lengthCode, "%s must be %d bytes, got %d", what, len(dst), len(in))
	}
	copy(dst, in)
	return nil
}
