package common

// WipeByteArray zeroes the given buffer in place. Used to clear password
// bytes read from the terminal once they are no longer needed.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
