// Package common contains small helpers shared across client layers.
package common

// WipeByteArray zeroes b in place so secrets do not linger in memory longer
// than needed. Callers typically defer it right after reading a password.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
