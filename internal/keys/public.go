package keys

import (
	"crypto/subtle"

	"sealbox/internal/crypto"
	"sealbox/internal/domain"
	"sealbox/internal/util/memzero"
)

// PublicKey is a 32-byte Curve25519 public key.
type PublicKey struct {
	b      [domain.KeySize]byte
	loaded bool
}

// LoadPublicKey loads a public key from 32 raw bytes, or from 64
// high-nibble-first hex characters when fromHex is set.
func LoadPublicKey(in []byte, fromHex bool) (*PublicKey, error) {
	k := &PublicKey{}
	if err := crypto.Load(k.b[:], in, fromHex, domain.CodeBadPublicKey, "public key"); err != nil {
		return nil, err
	}
	k.loaded = true
	return k, nil
}

// Bytes returns a copy of the raw key.
func (k *PublicKey) Bytes() []byte {
	out := make([]byte, domain.KeySize)
	copy(out, k.b[:])
	return out
}

// Hex returns the key as 64 high-nibble-first hex characters.
func (k *PublicKey) Hex() string { return crypto.Hex(k.b[:]) }

// Fingerprint returns a short display fingerprint of the key.
func (k *PublicKey) Fingerprint() string { return crypto.Fingerprint(k.b[:]) }

// Equal reports whether both keys hold the same bytes.
func (k *PublicKey) Equal(o *PublicKey) bool {
	if k == nil || o == nil {
		return k == o
	}
	return subtle.ConstantTimeCompare(k.b[:], o.b[:]) == 1
}

// Clone returns an independent copy of k.
func (k *PublicKey) Clone() *PublicKey {
	c := *k
	return &c
}

// Destroy zeroes the key. A destroyed key is rejected by every operation.
func (k *PublicKey) Destroy() {
	if k == nil {
		return
	}
	memzero.Key(&k.b)
	k.loaded = false
}

// Raw exposes the backing array for the box primitives. Callers must not
// retain or modify it.
func (k *PublicKey) Raw() *[domain.KeySize]byte { return &k.b }

// Check reports whether k can be used, failing with CodeLoadPublicKey.
func (k *PublicKey) Check() error {
	if k == nil || !k.loaded {
		return domain.Errorf(domain.CodeLoadPublicKey, "public key not loaded")
	}
	return nil
}
