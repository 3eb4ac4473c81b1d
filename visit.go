package simdjson

// Visitor receives a sequential, depth-first walk of a Tape, mirroring
// spec.md §6's tape-consumer contract: one call per scalar value and
// one matched pair of calls per container. Any method may return a
// non-nil error to abort the walk; Visit returns that error unchanged.
type Visitor interface {
	VisitNull() error
	VisitBool(v bool) error
	VisitI64(v int64) error
	VisitU64(v uint64) error
	VisitF64(v float64) error
	VisitString(v string) error
	VisitObjectStart() error
	VisitObjectKey(key string) error
	VisitObjectEnd() error
	VisitArrayStart() error
	VisitArrayEnd() error
}

// Visit walks t from its root value, driving v in document order.
func (t *Tape) Visit(v Visitor) error {
	if len(t.Words) == 0 || t.TagAt(0) != TagRoot {
		return newErr(LexicalError, -1, "tape has no root word")
	}
	_, err := t.visitValue(1, v, false)
	return err
}

func (t *Tape) visitValue(idx int, v Visitor, asKey bool) (int, error) {
	switch t.TagAt(idx) {
	case TagNull:
		return idx + 1, v.VisitNull()
	case TagBoolTrue:
		return idx + 1, v.VisitBool(true)
	case TagBoolFalse:
		return idx + 1, v.VisitBool(false)
	case TagInt64:
		if err := v.VisitI64(t.Int64At(idx)); err != nil {
			return 0, err
		}
		return idx + 2, nil
	case TagUint64:
		if err := v.VisitU64(t.Uint64At(idx)); err != nil {
			return 0, err
		}
		return idx + 2, nil
	case TagFloat64:
		if err := v.VisitF64(t.Float64At(idx)); err != nil {
			return 0, err
		}
		return idx + 2, nil
	case TagString:
		s, err := t.StringAt(idx)
		if err != nil {
			return 0, err
		}
		if asKey {
			err = v.VisitObjectKey(s)
		} else {
			err = v.VisitString(s)
		}
		if err != nil {
			return 0, err
		}
		return idx + 2, nil
	case TagArrayStart:
		return t.visitArray(idx, v)
	case TagObjectStart:
		return t.visitObject(idx, v)
	default:
		return 0, newErr(LexicalError, -1, "unexpected tape tag %q at index %d", t.TagAt(idx), idx)
	}
}

func (t *Tape) visitArray(idx int, v Visitor) (int, error) {
	if err := v.VisitArrayStart(); err != nil {
		return 0, err
	}
	end := t.MatchingEnd(idx)
	for i := idx + 1; i < end; {
		next, err := t.visitValue(i, v, false)
		if err != nil {
			return 0, err
		}
		i = next
	}
	if err := v.VisitArrayEnd(); err != nil {
		return 0, err
	}
	return end + 1, nil
}

func (t *Tape) visitObject(idx int, v Visitor) (int, error) {
	if err := v.VisitObjectStart(); err != nil {
		return 0, err
	}
	end := t.MatchingEnd(idx)
	for i := idx + 1; i < end; {
		next, err := t.visitValue(i, v, true)
		if err != nil {
			return 0, err
		}
		next, err = t.visitValue(next, v, false)
		if err != nil {
			return 0, err
		}
		i = next
	}
	if err := v.VisitObjectEnd(); err != nil {
		return 0, err
	}
	return end + 1, nil
}
