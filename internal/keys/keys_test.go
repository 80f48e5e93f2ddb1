package keys_test

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"golang.org/x/crypto/curve25519"

	"sealbox/internal/crypto"
	"sealbox/internal/domain"
	"sealbox/internal/keys"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, io.ErrUnexpectedEOF }

// makePair returns a fresh key pair and destroys it when the test ends.
func makePair(t *testing.T) (*keys.PublicKey, *keys.SecretKey) {
	t.Helper()
	pub, sec, err := keys.GenerateKeypair()
	if err != nil {
		t.Fatalf("GenerateKeypair: %v", err)
	}
	t.Cleanup(sec.Destroy)
	return pub, sec
}

func TestGenerateKeypair_PublicMatchesSecret(t *testing.T) {
	pub, sec := makePair(t)

	want, err := curve25519.X25519(sec.Bytes(), curve25519.Basepoint)
	if err != nil {
		t.Fatalf("X25519: %v", err)
	}
	if !bytes.Equal(pub.Bytes(), want) {
		t.Fatal("public key is not the base-point multiple of the secret key")
	}
	if !pub.Equal(sec.PublicKey()) {
		t.Fatal("SecretKey.PublicKey differs from returned public key")
	}
	if sec.PublicHex() != pub.Hex() {
		t.Fatal("PublicHex differs from PublicKey.Hex")
	}
}

func TestGenerateKeypair_Uniqueness(t *testing.T) {
	_, a := makePair(t)
	_, b := makePair(t)
	if bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Fatal("two generated secret keys are identical")
	}
}

func TestGenerateKeypair_RandomFailure(t *testing.T) {
	prev := crypto.Reader
	crypto.Reader = failingReader{}
	t.Cleanup(func() { crypto.Reader = prev })

	pub, sec, err := keys.GenerateKeypair()
	if !errors.Is(err, domain.ErrKeypairFailed) {
		t.Fatalf("got %v, want keypair failed", err)
	}
	if pub != nil || sec != nil {
		t.Fatal("partial result returned")
	}
}

func TestLoadPublicKey_BadLength(t *testing.T) {
	for _, n := range []int{0, 31, 33, 64} {
		k, err := keys.LoadPublicKey(make([]byte, n), false)
		if !errors.Is(err, domain.ErrBadPublicKey) {
			t.Fatalf("len %d: got %v, want bad public key", n, err)
		}
		if k != nil {
			t.Fatalf("len %d: key returned on failure", n)
		}
	}
	for _, n := range []int{62, 63, 65, 32} {
		_, err := keys.LoadPublicKey([]byte(strings.Repeat("a", n)), true)
		if !errors.Is(err, domain.ErrBadPublicKey) {
			t.Fatalf("hex len %d: got %v, want bad public key", n, err)
		}
	}
}

func TestLoadPublicKey_MalformedHex(t *testing.T) {
	_, err := keys.LoadPublicKey([]byte(strings.Repeat("g", 64)), true)
	if !errors.Is(err, domain.ErrGeneral) {
		t.Fatalf("got %v, want general", err)
	}
}

func TestHexRoundTrip(t *testing.T) {
	pub, sec := makePair(t)

	p2, err := keys.LoadPublicKey([]byte(pub.Hex()), true)
	if err != nil {
		t.Fatalf("LoadPublicKey: %v", err)
	}
	if !bytes.Equal(p2.Bytes(), pub.Bytes()) {
		t.Fatal("public hex round trip mismatch")
	}

	s2, err := keys.LoadSecretKey([]byte(sec.PublicHex()), []byte(sec.Hex()), true)
	if err != nil {
		t.Fatalf("LoadSecretKey: %v", err)
	}
	defer s2.Destroy()
	if !bytes.Equal(s2.Bytes(), sec.Bytes()) || !bytes.Equal(s2.PublicBytes(), pub.Bytes()) {
		t.Fatal("secret hex round trip mismatch")
	}

	raw := []byte{0xab, 0x01}
	raw = append(raw, make([]byte, 30)...)
	k, err := keys.LoadPublicKey(raw, false)
	if err != nil {
		t.Fatalf("LoadPublicKey raw: %v", err)
	}
	if !strings.HasPrefix(k.Hex(), "ab01") {
		t.Fatalf("hex not high-nibble first: %s", k.Hex())
	}
}

func TestLoadSecretKey_Errors(t *testing.T) {
	good := make([]byte, 32)

	_, err := keys.LoadSecretKey(make([]byte, 31), good, false)
	if !errors.Is(err, domain.ErrBadPublicKey) {
		t.Fatalf("short public: got %v", err)
	}
	_, err = keys.LoadSecretKey(good, make([]byte, 33), false)
	if !errors.Is(err, domain.ErrBadSecretKey) {
		t.Fatalf("long secret: got %v", err)
	}
	_, err = keys.LoadSecretKey(good, nil, false)
	if !errors.Is(err, domain.ErrBadSecretKey) {
		t.Fatalf("missing secret: got %v", err)
	}
}

func TestDestroy(t *testing.T) {
	pub, sec := makePair(t)

	sec.Destroy()
	if !bytes.Equal(sec.Bytes(), make([]byte, 32)) || !bytes.Equal(sec.PublicBytes(), make([]byte, 32)) {
		t.Fatal("secret key not zeroed")
	}
	if err := sec.Check(); !errors.Is(err, domain.ErrLoadSecretKey) {
		t.Fatalf("Check after Destroy: %v", err)
	}

	pub.Destroy()
	if err := pub.Check(); !errors.Is(err, domain.ErrLoadPublicKey) {
		t.Fatalf("Check after Destroy: %v", err)
	}

	var nilKey *keys.SecretKey
	nilKey.Destroy()
	if err := nilKey.Check(); !errors.Is(err, domain.ErrLoadSecretKey) {
		t.Fatalf("nil Check: %v", err)
	}
}

func TestClone_IsIndependent(t *testing.T) {
	_, sec := makePair(t)
	want := sec.Bytes()

	c := sec.Clone()
	sec.Destroy()
	if !bytes.Equal(c.Bytes(), want) {
		t.Fatal("clone shares storage with original")
	}
	if err := c.Check(); err != nil {
		t.Fatalf("clone Check: %v", err)
	}
	c.Destroy()
}
