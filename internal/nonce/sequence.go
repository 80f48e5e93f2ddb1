package nonce

import (
	"encoding/binary"
	"io"
	"math"
	"time"

	"sealbox/internal/crypto"
	"sealbox/internal/domain"
)

// Sequence is the nonce state of one sender/receiver pair.
type Sequence struct {
	cur   Nonce
	valid bool

	now  func() time.Time
	rand io.Reader
}

// Option configures a Sequence.
type Option func(*Sequence)

// WithClock sets the time source used for the timestamp field.
func WithClock(now func() time.Time) Option {
	return func(s *Sequence) { s.now = now }
}

// WithRandom sets the random source used for the random and counter fields.
// It defaults to crypto.Reader.
func WithRandom(r io.Reader) Option {
	return func(s *Sequence) { s.rand = r }
}

// NewSequence returns an empty sequence; its first Next draws a fresh nonce.
// The zero Sequence is also ready to use.
func NewSequence(opts ...Option) *Sequence {
	s := &Sequence{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Current returns the current nonce and whether one has been set.
func (s *Sequence) Current() (Nonce, bool) { return s.cur, s.valid }

// Next advances the sequence and returns the new current nonce. It must be
// called before every seal.
func (s *Sequence) Next() (Nonce, error) {
	if !s.valid {
		n, err := s.fresh(0, false)
		if err != nil {
			return Nonce{}, err
		}
		s.cur, s.valid = n, true
		return n, nil
	}

	c := s.cur.Counter()
	if c == math.MaxUint64 {
		n, err := s.fresh(s.cur.Timestamp(), true)
		if err != nil {
			return Nonce{}, err
		}
		s.cur = n
		return n, nil
	}
	binary.BigEndian.PutUint64(s.cur[counterOff:], c+1)
	return s.cur, nil
}

// Set replaces the current nonce with in, which must be 24 raw bytes. When
// affirmGreater is set, in must be strictly greater than the current nonce;
// otherwise CodeBadNonce is returned and the sequence is left unchanged.
// A sequence with no current nonce accepts any value.
func (s *Sequence) Set(in []byte, affirmGreater bool) (Nonce, error) {
	n, err := Parse(in, false)
	if err != nil {
		return Nonce{}, err
	}
	return s.install(n, affirmGreater)
}

// SetHex is Set for a 48-character hex nonce.
func (s *Sequence) SetHex(in string, affirmGreater bool) (Nonce, error) {
	n, err := Parse([]byte(in), true)
	if err != nil {
		return Nonce{}, err
	}
	return s.install(n, affirmGreater)
}

func (s *Sequence) install(n Nonce, affirmGreater bool) (Nonce, error) {
	if affirmGreater && s.valid && !n.Greater(s.cur) {
		return Nonce{}, domain.Errorf(domain.CodeBadNonce, "nonce %s is not greater than current %s", n.Hex(), s.cur.Hex())
	}
	s.cur, s.valid = n, true
	return n, nil
}

// Clone returns an independent copy of s sharing its time and random sources.
func (s *Sequence) Clone() *Sequence {
	c := *s
	return &c
}

// Reset forgets the current nonce.
func (s *Sequence) Reset() {
	s.cur, s.valid = Nonce{}, false
}

// fresh draws a new timestamp, random prefix and counter. When prev is set
// the timestamp is forced above prevTS so the result sorts after any nonce
// carrying prevTS.
func (s *Sequence) fresh(prevTS uint64, prev bool) (Nonce, error) {
	var n Nonce

	now := s.now
	if now == nil {
		now = time.Now
	}
	ts := uint64(0)
	if t := now().Unix(); t > 0 {
		ts = uint64(t)
	}
	if prev && ts <= prevTS {
		if prevTS == math.MaxUint64 {
			return Nonce{}, domain.Errorf(domain.CodeGeneral, "nonce timestamp exhausted")
		}
		ts = prevTS + 1
	}
	binary.BigEndian.PutUint64(n[timestampOff:randomOff], ts)

	// Random prefix and the low 48 bits of the counter; the top two counter
	// bytes stay zero so the counter starts below 2^48.
	if err := s.read(n[randomOff:counterOff]); err != nil {
		return Nonce{}, err
	}
	if err := s.read(n[counterOff+2:]); err != nil {
		return Nonce{}, err
	}
	return n, nil
}

func (s *Sequence) read(b []byte) error {
	if s.rand == nil {
		return crypto.ReadFull(b)
	}
	if _, err := io.ReadFull(s.rand, b); err != nil {
		return domain.Wrap(domain.CodeGeneral, err, "read random bytes")
	}
	return nil
}
