// Package commands defines the sealbox CLI.
//
// Commands
//
//   - keygen       Generate a key pair and print it in hex
//   - fingerprint  Print the fingerprint of a public key
//   - precompute   Derive the shared key of --peer-key and our key pair
//   - nonce        Print a fresh nonce, or the successor of --after
//   - seal         Encrypt a message for --peer-key
//   - open         Decrypt a message from --peer-key
//   - random       Print random bytes in hex
//
// # Configuration
//
// Every persistent flag can also be set through the environment with the
// SEALBOX_ prefix, e.g. SEALBOX_SECRET_KEY. The root command loads and
// validates the configuration before any subcommand runs, so handlers can use
// the shared app context.
package commands
