package keys_test

import (
	"bytes"
	"errors"
	"testing"

	"golang.org/x/crypto/nacl/box"

	"sealbox/internal/domain"
	"sealbox/internal/keys"
)

func TestLoadPrecompKey_Symmetric(t *testing.T) {
	pubA, secA := makePair(t)
	pubB, secB := makePair(t)

	ab, err := keys.LoadPrecompKey(pubA, secB)
	if err != nil {
		t.Fatalf("LoadPrecompKey(A,b): %v", err)
	}
	defer ab.Destroy()
	ba, err := keys.LoadPrecompKey(pubB, secA)
	if err != nil {
		t.Fatalf("LoadPrecompKey(B,a): %v", err)
	}
	defer ba.Destroy()

	if !bytes.Equal(ab.Bytes(), ba.Bytes()) {
		t.Fatal("precomputed keys differ")
	}
	if ab.Hex() != ba.Hex() || len(ab.Hex()) != 64 {
		t.Fatalf("hex mismatch %s %s", ab.Hex(), ba.Hex())
	}
}

func TestLoadPrecompKey_MatchesNaclPrecompute(t *testing.T) {
	for i := 0; i < 8; i++ {
		pubA, _ := makePair(t)
		_, secB := makePair(t)

		got, err := keys.LoadPrecompKey(pubA, secB)
		if err != nil {
			t.Fatalf("LoadPrecompKey: %v", err)
		}
		var want [32]byte
		box.Precompute(&want, pubA.Raw(), secB.Raw())
		if !bytes.Equal(got.Bytes(), want[:]) {
			t.Fatalf("shared key %x, want %x", got.Bytes(), want)
		}
		got.Destroy()
	}
}

func TestLoadPrecompKey_InvalidInputs(t *testing.T) {
	pub, sec := makePair(t)

	if _, err := keys.LoadPrecompKey(nil, sec); !errors.Is(err, domain.ErrLoadPublicKey) {
		t.Fatalf("nil public: %v", err)
	}
	if _, err := keys.LoadPrecompKey(pub, nil); !errors.Is(err, domain.ErrLoadSecretKey) {
		t.Fatalf("nil secret: %v", err)
	}

	dead := sec.Clone()
	dead.Destroy()
	if _, err := keys.LoadPrecompKey(pub, dead); !errors.Is(err, domain.ErrLoadSecretKey) {
		t.Fatalf("destroyed secret: %v", err)
	}
}

func TestLoadPrecompKey_LowOrderPoint(t *testing.T) {
	_, sec := makePair(t)
	zero, err := keys.LoadPublicKey(make([]byte, 32), false)
	if err != nil {
		t.Fatalf("LoadPublicKey: %v", err)
	}

	k, err := keys.LoadPrecompKey(zero, sec)
	if !errors.Is(err, domain.ErrBeforenmFailed) {
		t.Fatalf("got %v, want beforenm failed", err)
	}
	if k != nil {
		t.Fatal("key returned on failure")
	}
}

func TestPrecompKey_Destroy(t *testing.T) {
	pub, sec := makePair(t)
	k, err := keys.LoadPrecompKey(pub, sec)
	if err != nil {
		t.Fatalf("LoadPrecompKey: %v", err)
	}
	c := k.Clone()
	k.Destroy()
	if err := k.Check(); !errors.Is(err, domain.ErrLoadPrecompKey) {
		t.Fatalf("Check after Destroy: %v", err)
	}
	if !bytes.Equal(k.Bytes(), make([]byte, 32)) {
		t.Fatal("precomp key not zeroed")
	}
	if err := c.Check(); err != nil {
		t.Fatalf("clone Check: %v", err)
	}
	c.Destroy()
}
