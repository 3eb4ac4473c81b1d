package simdjson

import (
	"fmt"
	"strings"
	"testing"
)

// recordingVisitor renders each visit event as a short token, letting
// tests assert the full shape of a walk with one string comparison.
type recordingVisitor struct {
	events []string
}

func (r *recordingVisitor) push(s string) error {
	r.events = append(r.events, s)
	return nil
}

func (r *recordingVisitor) VisitNull() error          { return r.push("null") }
func (r *recordingVisitor) VisitBool(v bool) error     { return r.push(fmt.Sprintf("bool(%v)", v)) }
func (r *recordingVisitor) VisitI64(v int64) error     { return r.push(fmt.Sprintf("i64(%d)", v)) }
func (r *recordingVisitor) VisitU64(v uint64) error    { return r.push(fmt.Sprintf("u64(%d)", v)) }
func (r *recordingVisitor) VisitF64(v float64) error   { return r.push(fmt.Sprintf("f64(%v)", v)) }
func (r *recordingVisitor) VisitString(v string) error { return r.push(fmt.Sprintf("str(%q)", v)) }
func (r *recordingVisitor) VisitObjectStart() error    { return r.push("{") }
func (r *recordingVisitor) VisitObjectKey(k string) error {
	return r.push(fmt.Sprintf("key(%q)", k))
}
func (r *recordingVisitor) VisitObjectEnd() error { return r.push("}") }
func (r *recordingVisitor) VisitArrayStart() error { return r.push("[") }
func (r *recordingVisitor) VisitArrayEnd() error   { return r.push("]") }

func (r *recordingVisitor) String() string { return strings.Join(r.events, " ") }

func walkString(t *testing.T, in string) string {
	t.Helper()
	tape, err := ParseString(in)
	if err != nil {
		t.Fatalf("%q: unexpected error: %v", in, err)
	}
	v := &recordingVisitor{}
	if err := tape.Visit(v); err != nil {
		t.Fatalf("%q: visit error: %v", in, err)
	}
	return v.String()
}

func TestParseScalars(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"null", "null"},
		{"true", "bool(true)"},
		{"false", "bool(false)"},
		{"42", "i64(42)"},
		{"-17", "i64(-17)"},
		{"3.14", "f64(3.14)"},
		{`"hi"`, `str("hi")`},
	}
	for _, c := range cases {
		if got := walkString(t, c.in); got != c.want {
			t.Errorf("%q: got %q, want %q", c.in, got, c.want)
		}
	}
}

func TestParseObjectAndArray(t *testing.T) {
	in := `{"a":1,"b":[2,3,null],"c":{"d":true}}`
	want := `{ key("a") i64(1) key("b") [ i64(2) i64(3) null ] key("c") { key("d") bool(true) } }`
	if got := walkString(t, in); got != want {
		t.Fatalf("got  %s\nwant %s", got, want)
	}
}

func TestParseEmptyContainers(t *testing.T) {
	if got := walkString(t, "{}"); got != "{ }" {
		t.Fatalf("got %q", got)
	}
	if got := walkString(t, "[]"); got != "[ ]" {
		t.Fatalf("got %q", got)
	}
}

func TestParseWhitespaceHandling(t *testing.T) {
	in := "  {  \"a\" : [ 1 ,  2 ]  }  "
	want := `{ key("a") [ i64(1) i64(2) ] }`
	if got := walkString(t, in); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestParseRejectsTrailingData(t *testing.T) {
	_, err := ParseString(`1 2`)
	requireKind(t, err, TrailingData)
}

func TestParseRejectsMismatchedBrackets(t *testing.T) {
	cases := []string{`[1,2}`, `{"a":1]`, `[1,2`, `{"a":1`}
	for _, in := range cases {
		_, err := ParseString(in)
		if err == nil {
			t.Errorf("%q: expected an error", in)
		}
	}
}

func TestParseRejectsMissingColon(t *testing.T) {
	_, err := ParseString(`{"a" 1}`)
	requireKind(t, err, ExpectedColon)
}

func TestParseRejectsTrailingComma(t *testing.T) {
	_, err := ParseString(`[1,2,]`)
	requireKind(t, err, ExpectedValue)
}

func TestParseRejectsEmptyInput(t *testing.T) {
	_, err := ParseString("")
	requireKind(t, err, EmptyInput)
}

func TestParseRejectsWhitespaceOnlyInput(t *testing.T) {
	_, err := ParseString("   ")
	requireKind(t, err, EmptyInput)
}

func TestParseHonorsMaxDepth(t *testing.T) {
	in := strings.Repeat("[", 5) + strings.Repeat("]", 5)
	if _, err := ParseString(in, WithMaxDepth(10)); err != nil {
		t.Fatalf("unexpected error with generous depth: %v", err)
	}
	_, err := ParseString(in, WithMaxDepth(3))
	requireKind(t, err, DepthExceeded)
}

func TestParseDuplicateKeysPreservedInDocumentOrder(t *testing.T) {
	got := walkString(t, `{"a":1,"a":2}`)
	want := `{ key("a") i64(1) key("a") i64(2) }`
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestParseWithCopyStringsNeverBorrows(t *testing.T) {
	tape, err := Parse([]byte(`"hello"`), WithCopyStrings())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tape.TagAt(1) != TagString {
		t.Fatalf("tag = %v, want TagString", tape.TagAt(1))
	}
	if tape.Words[1]&ownedBit == 0 {
		t.Fatal("expected WithCopyStrings to force the owned-buffer bit")
	}
}

func TestParseContainerElementCounts(t *testing.T) {
	tape, err := ParseString(`{"a":1,"b":2,"c":[10,20,30]}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tape.TagAt(1) != TagObjectStart {
		t.Fatalf("tag = %v, want TagObjectStart", tape.TagAt(1))
	}
	objEnd := tape.MatchingEnd(1)
	if got := tape.ElementCount(objEnd); got != 3 {
		t.Fatalf("object pair count = %d, want 3", got)
	}
	if got := tape.MatchingStart(objEnd); got != 1 {
		t.Fatalf("object MatchingStart = %d, want 1", got)
	}

	arrStart := -1
	for i := 1; i < objEnd; i++ {
		if tape.TagAt(i) == TagArrayStart {
			arrStart = i
			break
		}
	}
	if arrStart < 0 {
		t.Fatal("did not find nested array on tape")
	}
	arrEnd := tape.MatchingEnd(arrStart)
	if got := tape.ElementCount(arrEnd); got != 3 {
		t.Fatalf("array element count = %d, want 3", got)
	}
}

func TestParseEmptyContainerElementCountIsZero(t *testing.T) {
	tape, err := ParseString(`{}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	end := tape.MatchingEnd(1)
	if got := tape.ElementCount(end); got != 0 {
		t.Fatalf("empty object count = %d, want 0", got)
	}
}

func requireKind(t *testing.T, err error, want Kind) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected an error of kind %v, got none", want)
	}
	pe, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("error %v is not a *ParseError", err)
	}
	if pe.Kind != want {
		t.Fatalf("error kind = %v, want %v", pe.Kind, want)
	}
}
