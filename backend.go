package simdjson

// chunkSize is the window width (in bytes) every backend classifies in
// one call. 64 bytes is the canonical chunk for all backends named in
// spec.md §4.2, built out of 1-4 hardware vectors on the vector path
// or 64 single-byte comparisons on the scalar path.
const chunkSize = 64

// chunkMasks holds the four 64-bit classification masks spec.md §4.2
// requires a backend to produce for one 64-byte window. Bit i of each
// mask corresponds to buf[i].
type chunkMasks struct {
	structural uint64 // one of { [ ] { } : , at bit i
	quote      uint64 // a " byte at bit i, escaped or not (stage 1 threads escape state and skips escaped ones)
	whitespace uint64 // space/tab/lf/cr at bit i
	backslash  uint64 // a raw '\' byte at bit i (odd/even-run resolution happens in stage 1)
}

// backend is the capability set C2 exposes to the stage 1 driver: a
// fixed-width chunk classifier. The chunked UTF-8 validator
// (utf8_validator.go) is not part of it; stage 1 feeds that validator
// directly, whichever backend is bound. Exactly one backend is bound
// at Parse() entry (see cpu.go); stage 1 never branches per-chunk on
// which one is active.
type backend interface {
	// classify computes chunkMasks for buf[:chunkSize]. The caller
	// guarantees len(buf) >= chunkSize (a short final chunk reads into
	// the zero-filled padding that pad() adds after the input).
	classify(buf []byte) chunkMasks

	// name identifies the backend for diagnostics/tests.
	name() string
}

// selectedBackend is bound once by detectBackend (cpu.go) and read by
// the stage 1 driver. detectBackend writes it at most once per
// process, inside a sync.Once, on the first call to stage 1.
var selectedBackend backend = scalarBackend{}
