// Package simdjson implements a two-stage JSON parser: a vectorized
// structural-indexing pass followed by a single linear tape-building
// pass. Grounded throughout on github.com/minio/simdjson-go, adapted
// to run its stage 1/stage 2 split fully in portable Go (plus an
// optional archsimd-backed vector path) rather than hand-written
// assembly.
package simdjson

// Parse runs the full two-stage pipeline over buf and returns the
// resulting Tape, per spec.md §4.7's single entry-point contract: buf
// must remain alive and unmodified by the caller for as long as any
// borrowed Tape string is read (see WithCopyStrings to lift that
// requirement).
//
// Grounded on the teacher's simdjson.go Parse, stripped of its
// ParsedJson-reuse and pipelining parameters (see DESIGN.md's Open
// Questions) since spec.md §5 requires stage 1 to fully materialize
// before stage 2 starts.
func Parse(buf []byte, opts ...ParserOption) (*Tape, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	n := len(buf)
	padded := pad(buf)
	view := paddedView(padded)

	positions, err := stage1(view, n)
	if err != nil {
		return nil, err
	}

	return stage2(padded[:n], positions, cfg)
}

// ParseString is a convenience wrapper over Parse for callers holding
// a string rather than a byte slice. It always copies strings into the
// Tape's owned buffer (WithCopyStrings is implied) since a Go string's
// backing array cannot be padded or mutated in place.
func ParseString(s string, opts ...ParserOption) (*Tape, error) {
	buf := make([]byte, len(s), len(s)+padding)
	copy(buf, s)
	opts = append(opts, WithCopyStrings())
	return Parse(buf, opts...)
}
