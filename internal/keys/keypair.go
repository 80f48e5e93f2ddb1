package keys

import (
	"golang.org/x/crypto/nacl/box"

	"sealbox/internal/crypto"
	"sealbox/internal/domain"
	"sealbox/internal/util/memzero"
)

// GenerateKeypair draws a secret key from the secure random source and
// derives its public key by fixed-base scalar multiplication.
func GenerateKeypair() (*PublicKey, *SecretKey, error) {
	pub, priv, err := box.GenerateKey(crypto.Reader)
	if err != nil {
		return nil, nil, domain.Wrap(domain.CodeKeypairFailed, err, "generate key pair")
	}
	defer memzero.Key(priv)

	sec := &SecretKey{pub: PublicKey{b: *pub, loaded: true}, b: *priv, loaded: true}
	memzero.Key(pub)
	return sec.PublicKey(), sec, nil
}
