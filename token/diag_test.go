package token_test

import (
	"testing"

	"github.com/wv8/jsonic/token"
)

func TestCaretAlignsUnderASCIIColumn(t *testing.T) {
	line := []rune(`{ "a" , 1 }`)
	got := token.Caret(line, 8)
	want := "{ \"a\" , 1 }\n       ^"
	if got != want {
		t.Fatalf("Caret = %q, want %q", got, want)
	}
}

func TestCaretBudgetsTwoCellsForWideRunes(t *testing.T) {
	// "世界" are East Asian wide runes; each should push the caret
	// two columns rather than one.
	line := []rune(`世界x`)
	got := token.Caret(line, 3)
	want := "世界x\n    ^"
	if got != want {
		t.Fatalf("Caret = %q, want %q", got, want)
	}
}

func TestCaretClampsColumnBelowOne(t *testing.T) {
	line := []rune(`abc`)
	got := token.Caret(line, 0)
	want := "abc\n^"
	if got != want {
		t.Fatalf("Caret = %q, want %q", got, want)
	}
}

func TestTrackerPositionResolvesLineAndColumn(t *testing.T) {
	// "ab\ncd\nef" — line starts at runes 0, 3, 6.
	tr := token.NewTracker("doc")
	tr.AddLine(3, 2)
	tr.AddLine(6, 3)

	cases := []struct {
		pos  token.Pos
		want token.Position
	}{
		{0, token.Position{Name: "doc", Line: 1, Column: 1}},
		{1, token.Position{Name: "doc", Line: 1, Column: 2}},
		{3, token.Position{Name: "doc", Line: 2, Column: 1}},
		{7, token.Position{Name: "doc", Line: 3, Column: 2}},
	}
	for _, c := range cases {
		if got := tr.Position(c.pos); got != c.want {
			t.Errorf("Position(%d) = %+v, want %+v", c.pos, got, c.want)
		}
	}
}
