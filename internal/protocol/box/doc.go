// Package box implements public-key authenticated encryption
// (Curve25519, XSalsa20, Poly1305) over sealbox keys and nonces.
//
// # Flows
//
// Sender:
//  1. Hold the receiver's PublicKey and our own SecretKey, or a PrecompKey
//     derived from them.
//  2. Advance our nonce.Sequence with Next.
//  3. Seal; the ciphertext is 16 bytes longer than the plaintext.
//
// Receiver:
//  1. Hold the sender's PublicKey and our own SecretKey, or the matching PrecompKey.
//  2. Optionally install the received nonce with Sequence.Set(n, true) to
//     reject replays.
//  3. Open.
//
// # Errors
//
// Every failure is a *domain.Error. Open reports all decryption failures
// (bad tag, truncated input, wrong key or nonce) with one code per path,
// CodeBoxOpenFailed or CodeAfternmBoxOpenFailed, and a fixed message.
//
// Seal and Open never advance nonces and keep no state between calls.
package box
