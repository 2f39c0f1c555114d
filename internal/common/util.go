// Package common contains small helpers shared across the console.
package common

// WipeByteArray overwrites the slice with zeros. Used to scrub passwords
// from memory once they have been sent. A nil slice is a no-op.
func WipeByteArray(b []byte) {
	if b == nil {
		return
	}
	for i := range b {
		b[i] = 0
	}
}
