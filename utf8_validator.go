package simdjson

// utf8Validator is the chunked UTF-8 validator C2 must expose per
// spec.md §4.2: update() absorbs a chunk without prematurely rejecting
// a sequence that straddles a chunk boundary, and finalize() checks
// that nothing was left incomplete.
//
// No example repo in the retrieval pack implements an incremental
// (resumable) UTF-8 validator -- the standard library's unicode/utf8
// only validates a complete, already-assembled buffer, and simdjson's
// own vectorized validator lives in the assembly this pack doesn't
// carry. This is the classic RFC 3629 continuation-byte-range state
// machine (the same shape Go's own unicode/utf8.DecodeRune uses
// internally, generalized here to carry its one-sequence-in-progress
// state across update() calls instead of requiring a whole buffer up
// front): track how many continuation bytes remain and what range the
// next one must fall in, which is what correctly rejects overlong
// encodings, lone surrogates, and codepoints above U+10FFFF without a
// lookup table that has to be taken on faith.
type utf8Validator struct {
	remaining int   // continuation bytes still expected to complete the current rune
	lo, hi    byte  // allowed range for the very next byte
	pos       uint64
	errOffset int64 // -1 until a failure is recorded
	// seqStart is the offset of the lead byte of the rune in progress.
	seqStart uint64
}

func newUTF8Validator() *utf8Validator {
	return &utf8Validator{errOffset: -1}
}

// leadByteClass classifies a lead byte: remaining continuation bytes
// needed and the permitted range of the first continuation byte (which
// narrows to exclude overlong encodings, surrogates, and values beyond
// U+10FFFF). ok is false for a byte that can never start a sequence
// (bare continuation bytes 0x80-0xBF, the two unused lead bytes
// 0xC0/0xC1, and 0xF5-0xFF).
func leadByteClass(b byte) (remaining int, lo, hi byte, ok bool) {
	switch {
	case b < 0x80:
		return 0, 0, 0, true
	case b >= 0xC2 && b <= 0xDF:
		return 1, 0x80, 0xBF, true
	case b == 0xE0:
		return 2, 0xA0, 0xBF, true // excludes overlong 3-byte encodings
	case b >= 0xE1 && b <= 0xEC:
		return 2, 0x80, 0xBF, true
	case b == 0xED:
		return 2, 0x80, 0x9F, true // excludes the surrogate range D800-DFFF
	case b >= 0xEE && b <= 0xEF:
		return 2, 0x80, 0xBF, true
	case b == 0xF0:
		return 3, 0x90, 0xBF, true // excludes overlong 4-byte encodings
	case b >= 0xF1 && b <= 0xF3:
		return 3, 0x80, 0xBF, true
	case b == 0xF4:
		return 3, 0x80, 0x8F, true // caps at U+10FFFF
	default:
		return 0, 0, 0, false
	}
}

// update absorbs buf and advances the validator's state across calls.
// It never rejects early on a sequence that is merely incomplete at
// the end of buf -- the trailing partial sequence is simply carried in
// v.remaining/v.lo/v.hi for the next update/finalize call.
func (v *utf8Validator) update(buf []byte) {
	for _, b := range buf {
		if v.remaining == 0 {
			rem, lo, hi, ok := leadByteClass(b)
			if !ok {
				v.reject()
			} else {
				v.remaining, v.lo, v.hi = rem, lo, hi
				v.seqStart = v.pos
			}
		} else {
			if b < v.lo || b > v.hi {
				v.reject()
				v.remaining = 0
			} else {
				v.remaining--
				v.lo, v.hi = 0x80, 0xBF // only the first continuation byte is range-narrowed
			}
		}
		v.pos++
	}
}

func (v *utf8Validator) reject() {
	if v.errOffset < 0 {
		v.errOffset = int64(v.pos)
	}
}

// finalize reports whether the byte stream seen so far is valid UTF-8
// as a whole: no rejected byte occurred, and no sequence was left
// incomplete at the end of input. On failure offset is the first
// offending byte: the rejected byte, or the lead byte of the
// incomplete trailing sequence.
func (v *utf8Validator) finalize() (ok bool, offset int64) {
	if v.errOffset >= 0 {
		return false, v.errOffset
	}
	if v.remaining != 0 {
		return false, int64(v.seqStart)
	}
	return true, -1
}
