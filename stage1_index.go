package simdjson

// stage1State carries the three pieces of state that must survive
// across a 64-byte chunk boundary, named after the teacher's
// stage1_find_marks.go driver variables of the same role
// (prev_iter_ends_odd_backslash, prev_iter_inside_quote,
// prev_iter_ends_pseudo_pred):
//
//   - insideQuote: whether byte 0 of the next chunk is inside a string.
//   - escapeNext:  whether the very next byte is escaped by a backslash
//     that ended the previous chunk (the sequential equivalent of the
//     teacher's odd-backslash-run parity carry).
//   - inLiteral:   whether byte 0 of the next chunk continues a
//     number/true/false/null literal that started earlier.
//
// Unlike the teacher, which resolves backslash-run parity and
// in-string state with bit-parallel prefix-XOR tricks over a whole
// chunk at once (fast, but hard to hand-verify without running it),
// this walks each chunk's masks bit by bit in byte order. It is the
// same algorithm the teacher's masks describe, just executed
// sequentially instead of in bit-parallel -- still O(n), and every
// step is individually obvious.
type stage1State struct {
	insideQuote bool
	escapeNext  bool
	inLiteral   bool
}

// stage1 walks the padded buffer 64 bytes at a time, classifying each
// chunk through the bound backend (see cpu.go/detectBackend) and
// validating UTF-8 incrementally, and returns the structural index:
// ascending byte offsets of every structural character, every string
// delimiting quote, and the first byte of every number/true/false/null
// literal, terminated by the sentinel value n (len of the real,
// unpadded input) per spec.md §9(a).
func stage1(buf []byte, n int) ([]uint32, error) {
	b := detectBackend()
	v := newUTF8Validator()

	var st stage1State
	indexes := make([]uint32, 0, n/6+chunkSize)

	// base stays bounded by n, the real (unpadded) input length, not
	// len(buf): buf is the padded view (n+padding bytes), and pad()
	// guarantees exactly enough trailing room for the last chunk
	// starting below n to read a full chunkSize bytes without a bounds
	// check on every iteration.
	for base := 0; base < n; base += chunkSize {
		chunk := buf[base : base+chunkSize]

		if end := base + chunkSize; end <= n {
			v.update(chunk)
		} else {
			v.update(chunk[:n-base])
		}

		masks := b.classify(chunk)
		st.step(chunk, base, n, masks, &indexes)
	}

	if ok, offset := v.finalize(); !ok {
		return nil, newErr(InvalidUTF8, offset, "invalid UTF-8 byte sequence")
	}
	if st.insideQuote {
		return nil, newErr(UnterminatedString, int64(n), "unterminated string at end of input")
	}

	indexes = append(indexes, uint32(n))
	return indexes, nil
}

// step processes one 64-byte chunk's worth of classification masks in
// byte order, threading st across the call and appending every
// structural-index position it finds (clamped to the real input
// length n -- positions in the padding region are never recorded).
func (st *stage1State) step(chunk []byte, base, n int, m chunkMasks, out *[]uint32) {
	for i := 0; i < chunkSize; i++ {
		pos := base + i
		if pos >= n {
			return
		}
		bit := uint64(1) << uint(i)

		if st.escapeNext {
			st.escapeNext = false
			continue
		}

		isQuote := m.quote&bit != 0
		isBackslash := m.backslash&bit != 0
		isWhitespace := m.whitespace&bit != 0
		isStructural := m.structural&bit != 0

		if st.insideQuote {
			switch {
			case isBackslash:
				st.escapeNext = true
			case isQuote:
				st.insideQuote = false
				*out = append(*out, uint32(pos))
			}
			continue
		}

		switch {
		case isQuote:
			st.insideQuote = true
			st.inLiteral = false
			*out = append(*out, uint32(pos))
		case isStructural:
			st.inLiteral = false
			*out = append(*out, uint32(pos))
		case isWhitespace:
			st.inLiteral = false
		default:
			if !st.inLiteral {
				st.inLiteral = true
				*out = append(*out, uint32(pos))
			}
		}
	}
}
