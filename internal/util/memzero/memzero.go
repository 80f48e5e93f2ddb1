// Package memzero wipes secret buffers before they are released.
package memzero

import (
	"crypto/subtle"
	"runtime"
)

// Zero overwrites b with zeros in a constant-time friendly way.
//
//go:noinline
func Zero(b []byte) {
	if len(b) == 0 {
		return
	}
	zero := make([]byte, len(b))
	subtle.ConstantTimeCopy(1, b, zero)
	// Keep b live until after the copy so the store is not elided.
	runtime.KeepAlive(b)
}

// Key wipes a fixed-size key array.
func Key(k *[32]byte) {
	if k == nil {
		return
	}
	Zero(k[:])
}
