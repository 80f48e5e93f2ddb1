package keys

import (
	"golang.org/x/crypto/curve25519"
	"golang.org/x/crypto/salsa20/salsa"

	"sealbox/internal/crypto"
	"sealbox/internal/domain"
	"sealbox/internal/util/memzero"
)

// PrecompKey is the shared key of one PublicKey and one SecretKey.
//
// Use the receiver's public key and the sender's secret key when sealing, and
// the sender's public key and the receiver's secret key when opening; both
// produce the same PrecompKey.
type PrecompKey struct {
	b      [domain.KeySize]byte
	loaded bool
}

// LoadPrecompKey derives the shared key of pub and sec.
func LoadPrecompKey(pub *PublicKey, sec *SecretKey) (*PrecompKey, error) {
	if err := pub.Check(); err != nil {
		return nil, err
	}
	if err := sec.Check(); err != nil {
		return nil, err
	}
	k := &PrecompKey{}
	if err := Beforenm(&k.b, pub, sec); err != nil {
		return nil, domain.Wrap(domain.CodeBeforenmFailed, err, "precompute shared key")
	}
	k.loaded = true
	return k, nil
}

// Beforenm writes the shared key of pub and sec into out: HSalsa20 keyed by
// the X25519 shared point over a zero input block. It fails when the point is
// all zero, which happens only for low-order public keys. out is zeroed on
// failure.
func Beforenm(out *[domain.KeySize]byte, pub *PublicKey, sec *SecretKey) error {
	s, err := curve25519.X25519(sec.b[:], pub.b[:])
	if err != nil {
		memzero.Key(out)
		return err
	}
	var point [domain.KeySize]byte
	copy(point[:], s)
	memzero.Zero(s)
	defer memzero.Key(&point)

	var zeros [16]byte
	salsa.HSalsa20(out, &zeros, &point, &salsa.Sigma)
	return nil
}

// Bytes returns a copy of the shared key. The caller owns the copy and should
// wipe it when done.
func (k *PrecompKey) Bytes() []byte {
	out := make([]byte, domain.KeySize)
	copy(out, k.b[:])
	return out
}

// Hex returns the shared key as 64 high-nibble-first hex characters.
func (k *PrecompKey) Hex() string { return crypto.Hex(k.b[:]) }

// Clone returns an independent copy of k.
func (k *PrecompKey) Clone() *PrecompKey {
	c := *k
	return &c
}

// Destroy zeroes the shared key.
func (k *PrecompKey) Destroy() {
	if k == nil {
		return
	}
	memzero.Key(&k.b)
	k.loaded = false
}

// Raw exposes the backing array for the box primitives. Callers must not
// retain or modify it.
func (k *PrecompKey) Raw() *[domain.KeySize]byte { return &k.b }

// Check reports whether k can be used, failing with CodeLoadPrecompKey.
func (k *PrecompKey) Check() error {
	if k == nil || !k.loaded {
		return domain.Errorf(domain.CodeLoadPrecompKey, "precomp key not loaded")
	}
	return nil
}
