package simdjson

// defaultMaxDepth is spec.md §4.6's default maximum container nesting
// depth.
const defaultMaxDepth = 1024

type parserConfig struct {
	maxDepth     int
	capacityHint int
	copyStrings  bool
}

func defaultConfig() parserConfig {
	return parserConfig{maxDepth: defaultMaxDepth}
}

// ParserOption configures a Parse call. Follows the teacher's
// options.go functional-options shape (WithCopyStrings), extended with
// the knobs spec.md §4.6/§9 call for.
type ParserOption func(*parserConfig) error

// WithMaxDepth overrides the default maximum container nesting depth
// (1024). depth must be positive.
func WithMaxDepth(depth int) ParserOption {
	return func(c *parserConfig) error {
		if depth <= 0 {
			return newErr(LexicalError, -1, "max depth must be positive, got %d", depth)
		}
		c.maxDepth = depth
		return nil
	}
}

// WithCapacityHint preallocates the tape and owned string buffer
// assuming the input is roughly n bytes, grounded on the teacher's
// document-length-based preallocation sizing in ParsedJson.initialize.
func WithCapacityHint(n int) ParserOption {
	return func(c *parserConfig) error {
		if n < 0 {
			return newErr(LexicalError, -1, "capacity hint must be non-negative, got %d", n)
		}
		c.capacityHint = n
		return nil
	}
}

// WithCopyStrings forces every parsed string to be copied into the
// Tape's owned string buffer, even when it contained no escapes and
// could otherwise borrow directly from the input. Grounded on the
// teacher's options.go WithCopyStrings, needed for the same reason:
// a caller that reuses or frees its input buffer after Parse returns
// needs the Tape to hold no references into it.
func WithCopyStrings() ParserOption {
	return func(c *parserConfig) error {
		c.copyStrings = true
		return nil
	}
}
