package wtf8

// Crop returns the length in bytes of the longest prefix of b that is at
// most maxBytes long and does not end inside a multi-byte sequence.
//
// The cut position walks backward while it sits on a continuation byte,
// so the returned prefix contains only complete sequences. Crop never
// fails: a negative maxBytes returns 0, and a maxBytes of len(b) or more
// returns len(b) unchanged.
//
// Parameters:
//   - b: UTF-8 encoded bytes to crop
//   - maxBytes: maximum prefix length in bytes
//
// Returns:
//   - int: byte length of the cropped prefix
func Crop(b []byte, maxBytes int) int {
	if maxBytes >= len(b) {
		return len(b)
	}
	if maxBytes < 0 {
		return 0
	}

	size := maxBytes
	for size > 0 && isContinuation(b[size]) {
		size--
	}

	return size
}

// CropString is the string form of Crop.
func CropString(s string, maxBytes int) int {
	if maxBytes >= len(s) {
		return len(s)
	}
	if maxBytes < 0 {
		return 0
	}

	size := maxBytes
	for size > 0 && isContinuation(s[size]) {
		size--
	}

	return size
}
