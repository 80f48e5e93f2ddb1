package keys

// Peer is the counterpart argument of box sealing and opening: either a
// *PublicKey, which needs a *SecretKey alongside it, or a *PrecompKey, which
// already encodes both parties.
type Peer interface {
	Hex() string
	peer()
}

func (*PublicKey) peer()  {}
func (*PrecompKey) peer() {}
