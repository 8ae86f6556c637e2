// Package common holds small helpers shared by the client packages:
// random token generation and wiping of sensitive buffers.
package common

import (
	"crypto/rand"
	"encoding/hex"
)

// MakeRandHexString reads size bytes from crypto/rand and returns them
// hex-encoded (lowercase), so the result is 2*size characters long.
func MakeRandHexString(size int) (string, error) {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// WipeByteArray overwrites b with zeros. Nil slices are ignored.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
