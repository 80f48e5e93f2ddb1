// Package keys owns the key material of the box construction.
//
// Three types are provided, each wrapping exactly 32 bytes:
//
//   - PublicKey: a Curve25519 public key. Any 32 bytes are accepted.
//   - SecretKey: a Curve25519 secret key, always paired with its PublicKey.
//   - PrecompKey: the shared key derived from one PublicKey and one SecretKey
//     (crypto_box_beforenm). LoadPrecompKey(pubA, secB) equals
//     LoadPrecompKey(pubB, secA).
//
// # Lifetime
//
// Every key owns its buffer exclusively. Destroy overwrites it with zeroes and
// leaves the key unusable; callers hold keys in a scope and defer Destroy:
//
//	pub, sec, err := keys.GenerateKeypair()
//	if err != nil {
//		return err
//	}
//	defer sec.Destroy()
//
// Loaders wipe their scratch buffers on every failure path and never return a
// partially initialised key. SecretKey load performs no check that the two
// halves belong together; callers must supply a pair produced by
// GenerateKeypair.
//
// Keys are not safe for concurrent mutation (Destroy) but may be read from
// several goroutines at once.
package keys
