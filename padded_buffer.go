package simdjson

// padding is the number of trailing bytes guaranteed to be addressable
// (and zero-filled) after the last real byte of input. 64 bytes covers
// every chunk width used by any backend in this package.
const padding = 64

// pad returns buf extended so that cap(buf) >= len(buf)+padding, with
// the pad region zero-filled, so it classifies as neither whitespace
// nor a structural or quote byte. If buf already has enough spare capacity
// the slice header is reused (no copy of the real bytes is needed);
// otherwise a new backing array is allocated and the input is copied
// once. The returned slice's length is unchanged -- callers address
// the padding via buf[:len(buf)+padding] on the returned value's
// backing array, which is only safe because this function guarantees
// the capacity.
func pad(buf []byte) []byte {
	if cap(buf)-len(buf) >= padding {
		clear(buf[len(buf) : len(buf)+padding])
		return buf
	}
	grown := make([]byte, len(buf), len(buf)+padding)
	copy(grown, buf)
	return grown
}

// paddedView returns the full length+padding view of a buffer produced
// by pad, for backends that want to read the trailing zero bytes
// directly instead of synthesizing a tail chunk.
func paddedView(buf []byte) []byte {
	return buf[:len(buf)+padding]
}
