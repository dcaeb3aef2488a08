package dom

import (
	"testing"

	"github.com/wv8/jsonic/parser"
	"github.com/wv8/jsonic/scanner"
	"github.com/wv8/jsonic/token"
)

type memSource struct {
	rs      []rune
	pos     int
	back    []rune
	backOff int
}

func newMemSource(s string) *memSource { return &memSource{rs: []rune(s)} }

func (m *memSource) Next() (rune, token.Outcome, error) {
	if m.backOff < len(m.back) {
		r := m.back[m.backOff]
		m.backOff++
		return r, token.Char, nil
	}
	if m.pos >= len(m.rs) {
		return 0, token.Eos, nil
	}
	r := m.rs[m.pos]
	m.pos++
	return r, token.Char, nil
}

func (m *memSource) Unget(rs []rune) {
	rest := m.back[m.backOff:]
	m.back = append(append([]rune(nil), rs...), rest...)
	m.backOff = 0
}

func build(t *testing.T, input string) *Node {
	t.Helper()
	b := &Builder{}
	sc := scanner.New(newMemSource(input))
	p := parser.New(sc, b.Handlers())
	result, err := p.Step()
	if err != nil {
		t.Fatalf("parsing %q: internal error: %v", input, err)
	}
	if result != token.EOS {
		t.Fatalf("parsing %q: result = %v, want EOS", input, result)
	}
	return b.Root()
}

func TestBuilderObject(t *testing.T) {
	root := build(t, `{ "a" , 1 , "b" , "two" }`)
	if root.Kind != KindObject {
		t.Fatalf("root.Kind = %v, want object", root.Kind)
	}
	if len(root.Entries) != 2 {
		t.Fatalf("len(Entries) = %d, want 2", len(root.Entries))
	}
	if root.Entries[0].Key != "a" || root.Entries[0].Value.Kind != KindNumber || root.Entries[0].Value.Num != 1 {
		t.Fatalf("entry 0 = %+v", root.Entries[0])
	}
	if root.Entries[1].Key != "b" || root.Entries[1].Value.Kind != KindString || root.Entries[1].Value.Str != "two" {
		t.Fatalf("entry 1 = %+v", root.Entries[1])
	}
}

func TestBuilderArray(t *testing.T) {
	root := build(t, `[null, true, false, 1.5]`)
	if root.Kind != KindArray || len(root.Items) != 4 {
		t.Fatalf("root = %+v", root)
	}
	if root.Items[0].Kind != KindNull {
		t.Fatalf("item 0 = %+v, want null", root.Items[0])
	}
	if root.Items[1].Kind != KindBool || !root.Items[1].Bool {
		t.Fatalf("item 1 = %+v, want true", root.Items[1])
	}
	if root.Items[2].Kind != KindBool || root.Items[2].Bool {
		t.Fatalf("item 2 = %+v, want false", root.Items[2])
	}
	if root.Items[3].Kind != KindNumber || root.Items[3].Num != 1.5 {
		t.Fatalf("item 3 = %+v, want 1.5", root.Items[3])
	}
}

func TestBuilderNested(t *testing.T) {
	root := build(t, `{ "k" , [1, {}, "x"] }`)
	arr := root.Entries[0].Value
	if arr.Kind != KindArray || len(arr.Items) != 3 {
		t.Fatalf("nested array = %+v", arr)
	}
	if arr.Items[1].Kind != KindObject || len(arr.Items[1].Entries) != 0 {
		t.Fatalf("nested empty object = %+v", arr.Items[1])
	}
}

func TestBuilderBareTopLevelHasNoRoot(t *testing.T) {
	root := build(t, `"hello"`)
	if root != nil {
		t.Fatalf("root = %+v, want nil for a bare top-level primitive", root)
	}
}

func TestSerializeRoundTrip(t *testing.T) {
	root := build(t, `{ "a" , [1, null, true], "b" , "x" }`)
	got := Serialize(root)
	want := `{"a": [1, null, true], "b": "x"}`
	if got != want {
		t.Fatalf("Serialize = %q, want %q", got, want)
	}
}

func TestSerializeNilIsNull(t *testing.T) {
	if got := Serialize(nil); got != "null" {
		t.Fatalf("Serialize(nil) = %q, want %q", got, "null")
	}
}
