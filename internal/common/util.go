package common

// WipeByteArray overwrites the contents of the provided byte slice with
// zeros. Used to scrub password bytes from memory once a hash has been
// computed from them.
//
// If the slice is nil, the function does nothing.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
