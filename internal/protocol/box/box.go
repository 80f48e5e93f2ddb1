package box

import (
	naclbox "golang.org/x/crypto/nacl/box"

	"sealbox/internal/domain"
	"sealbox/internal/keys"
	"sealbox/internal/nonce"
	"sealbox/internal/util/memzero"
)

// Overhead is the number of bytes Seal adds to a message.
const Overhead = domain.Overhead

const openFailed = "message authentication failed"

// Seal encrypts and authenticates plaintext for receiver.
//
// receiver is either the receiver's *keys.PublicKey, in which case sender
// must be our *keys.SecretKey, or a *keys.PrecompKey, in which case sender
// must be nil.
func Seal(plaintext []byte, n *nonce.Nonce, receiver keys.Peer, sender *keys.SecretKey) ([]byte, error) {
	if n == nil {
		return nil, domain.Errorf(domain.CodeBadNonce, "nonce is required")
	}
	out := make([]byte, 0, len(plaintext)+Overhead)

	switch r := receiver.(type) {
	case *keys.PublicKey:
		if err := r.Check(); err != nil {
			return nil, err
		}
		if err := sender.Check(); err != nil {
			return nil, err
		}
		var shared [domain.KeySize]byte
		defer memzero.Key(&shared)
		if err := keys.Beforenm(&shared, r, sender); err != nil {
			return nil, domain.Wrap(domain.CodeBoxFailed, err, "seal")
		}
		return naclbox.SealAfterPrecomputation(out, plaintext, n.Raw(), &shared), nil

	case *keys.PrecompKey:
		if err := r.Check(); err != nil {
			return nil, err
		}
		if sender != nil {
			return nil, domain.Errorf(domain.CodeGeneral, "sender secret key must be absent with a precomputed key")
		}
		return naclbox.SealAfterPrecomputation(out, plaintext, n.Raw(), r.Raw()), nil
	}
	return nil, domain.Errorf(domain.CodeGeneral, "receiver must be a public or precomputed key, got %T", receiver)
}

// Open verifies and decrypts ciphertext from sender.
//
// sender is either the sender's *keys.PublicKey, in which case receiver must
// be our *keys.SecretKey, or a *keys.PrecompKey, in which case receiver must
// be nil.
func Open(ciphertext []byte, n *nonce.Nonce, sender keys.Peer, receiver *keys.SecretKey) ([]byte, error) {
	if n == nil {
		return nil, domain.Errorf(domain.CodeBadNonce, "nonce is required")
	}

	switch s := sender.(type) {
	case *keys.PublicKey:
		if err := s.Check(); err != nil {
			return nil, err
		}
		if err := receiver.Check(); err != nil {
			return nil, err
		}
		var shared [domain.KeySize]byte
		defer memzero.Key(&shared)
		if err := keys.Beforenm(&shared, s, receiver); err != nil {
			return nil, domain.Errorf(domain.CodeBoxOpenFailed, openFailed)
		}
		return open(ciphertext, n, &shared, domain.CodeBoxOpenFailed)

	case *keys.PrecompKey:
		if err := s.Check(); err != nil {
			return nil, err
		}
		if receiver != nil {
			return nil, domain.Errorf(domain.CodeGeneral, "receiver secret key must be absent with a precomputed key")
		}
		return open(ciphertext, n, s.Raw(), domain.CodeAfternmBoxOpenFailed)
	}
	return nil, domain.Errorf(domain.CodeGeneral, "sender must be a public or precomputed key, got %T", sender)
}

func open(ciphertext []byte, n *nonce.Nonce, shared *[domain.KeySize]byte, code domain.Code) ([]byte, error) {
	if len(ciphertext) < Overhead {
		return nil, domain.Errorf(code, openFailed)
	}
	out, ok := naclbox.OpenAfterPrecomputation(make([]byte, 0, len(ciphertext)-Overhead), ciphertext, n.Raw(), shared)
	if !ok {
		return nil, domain.Errorf(code, openFailed)
	}
	return out, nil
}
