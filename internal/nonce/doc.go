// Package nonce implements the 24-byte box nonce and the sequence that hands
// them out without reuse.
//
// # Layout
//
//	[0,8)   timestamp, big-endian Unix seconds
//	[8,16)  random
//	[16,24) counter, big-endian, started at a uniform value below 2^48
//
// # Ordering
//
// A nonce is greater than another when its first 16 bytes, read as one
// big-endian integer, are greater; when those are equal the counters decide.
// The comparison never depends on host byte order.
//
// # Sequences
//
// Sequence.Next yields strictly increasing nonces: the counter is incremented,
// and when it would overflow a fresh timestamp and random prefix are drawn,
// with the timestamp forced past the previous one. Sequence.Set installs a
// received nonce, by default only when it is greater than the current one,
// which lets a receiver reject replays.
//
// A Sequence is NOT safe for concurrent use. Give every sender/receiver pair
// its own Sequence, or serialise access with a mutex.
package nonce
