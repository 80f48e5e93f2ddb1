package app

import (
	"go.uber.org/zap"

	"sealbox/internal/keys"
	"sealbox/internal/nonce"
)

// App carries the loaded configuration and logger shared by the commands.
type App struct {
	Config Config
	Log    *zap.Logger
}

// New returns an App for cfg. A nil log is replaced with a no-op logger.
func New(cfg Config, log *zap.Logger) *App {
	if log == nil {
		log = zap.NewNop()
	}
	return &App{Config: cfg, Log: log}
}

// SecretKey loads our key pair from the configured public and secret keys.
func (a *App) SecretKey() (*keys.SecretKey, error) {
	return keys.LoadSecretKey([]byte(a.Config.PublicKey), []byte(a.Config.SecretKey), true)
}

// Counterpart resolves the peer argument for box.Seal/box.Open.
//
// Without Precompute it returns the peer's public key together with our
// secret key. With Precompute it returns the precomputed shared key and a nil
// secret key. release destroys everything that was loaded.
func (a *App) Counterpart() (peer keys.Peer, sec *keys.SecretKey, release func(), err error) {
	pub, err := keys.LoadPublicKey([]byte(a.Config.PeerKey), true)
	if err != nil {
		return nil, nil, nil, err
	}
	sec, err = a.SecretKey()
	if err != nil {
		pub.Destroy()
		return nil, nil, nil, err
	}

	if !a.Config.Precompute {
		a.Log.Debug("using key pair", zap.String("peer", pub.Fingerprint()))
		return pub, sec, func() { sec.Destroy(); pub.Destroy() }, nil
	}

	a.Log.Debug("using precomputed key", zap.String("peer", pub.Fingerprint()))
	shared, err := keys.LoadPrecompKey(pub, sec)
	sec.Destroy()
	pub.Destroy()
	if err != nil {
		return nil, nil, nil, err
	}
	return shared, nil, shared.Destroy, nil
}

// Nonce parses the configured nonce.
func (a *App) Nonce() (nonce.Nonce, error) {
	return nonce.Parse([]byte(a.Config.Nonce), true)
}
