package keys

import (
	"sealbox/internal/crypto"
	"sealbox/internal/domain"
	"sealbox/internal/util/memzero"
)

// SecretKey is a 32-byte Curve25519 secret key together with its public key.
type SecretKey struct {
	pub    PublicKey
	b      [domain.KeySize]byte
	loaded bool
}

// LoadSecretKey loads a key pair previously produced by GenerateKeypair.
// Both halves are required and are length-checked independently: the public
// half fails with CodeBadPublicKey, the secret half with CodeBadSecretKey.
func LoadSecretKey(pub, sec []byte, fromHex bool) (*SecretKey, error) {
	k := &SecretKey{}
	if err := crypto.Load(k.pub.b[:], pub, fromHex, domain.CodeBadPublicKey, "public key"); err != nil {
		return nil, err
	}
	if err := crypto.Load(k.b[:], sec, fromHex, domain.CodeBadSecretKey, "secret key"); err != nil {
		k.Destroy()
		return nil, err
	}
	k.pub.loaded = true
	k.loaded = true
	return k, nil
}

// Bytes returns a copy of the raw secret key. The caller owns the copy and
// should wipe it when done.
func (k *SecretKey) Bytes() []byte {
	out := make([]byte, domain.KeySize)
	copy(out, k.b[:])
	return out
}

// Hex returns the secret key as 64 high-nibble-first hex characters.
func (k *SecretKey) Hex() string { return crypto.Hex(k.b[:]) }

// PublicKey returns a copy of the paired public key.
func (k *SecretKey) PublicKey() *PublicKey { return k.pub.Clone() }

// PublicBytes returns a copy of the paired raw public key.
func (k *SecretKey) PublicBytes() []byte { return k.pub.Bytes() }

// PublicHex returns the paired public key in hex.
func (k *SecretKey) PublicHex() string { return k.pub.Hex() }

// Clone returns an independent copy of k.
func (k *SecretKey) Clone() *SecretKey {
	c := *k
	return &c
}

// Destroy zeroes both halves of the pair.
func (k *SecretKey) Destroy() {
	if k == nil {
		return
	}
	memzero.Key(&k.b)
	k.loaded = false
	k.pub.Destroy()
}

// Raw exposes the backing secret array for the box primitives. Callers must
// not retain or modify it.
func (k *SecretKey) Raw() *[domain.KeySize]byte { return &k.b }

// Check reports whether k can be used, failing with CodeLoadSecretKey.
func (k *SecretKey) Check() error {
	if k == nil || !k.loaded || !k.pub.loaded {
		return domain.Errorf(domain.CodeLoadSecretKey, "secret key not loaded")
	}
	return nil
}
