package jsonic_test

import (
	"errors"
	"testing"

	"github.com/wv8/jsonic"
	"github.com/wv8/jsonic/dom"
)

func TestReaderWholeInputAtOnce(t *testing.T) {
	b := &dom.Builder{}
	r := jsonic.NewReader(b.Handlers())
	if err := r.Feed([]byte(`{ "a" , 1 }`)); err != nil {
		t.Fatalf("Feed: %v", err)
	}
	r.Close()

	result, err := r.Step()
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	if result != jsonic.ResultOK {
		t.Fatalf("result = %v, want OK", result)
	}
	if got, want := dom.Serialize(b.Root()), `{"a": 1}`; got != want {
		t.Fatalf("Serialize = %q, want %q", got, want)
	}
}

func TestReaderResumesAcrossFeeds(t *testing.T) {
	b := &dom.Builder{}
	r := jsonic.NewReader(b.Handlers())

	chunks := []string{`{ "k"`, ` , 1.`, `e+1 }`}
	var result jsonic.Result
	for _, c := range chunks {
		if err := r.Feed([]byte(c)); err != nil {
			t.Fatalf("Feed(%q): %v", c, err)
		}
		var err error
		result, err = r.Step()
		if err != nil {
			t.Fatalf("Step after %q: %v", c, err)
		}
		if result != jsonic.ResultPending {
			t.Fatalf("Step after %q = %v, want Pending before closing", c, result)
		}
	}

	r.Close()
	result, err := r.Step()
	if err != nil {
		t.Fatalf("Step after Close: %v", err)
	}
	if result != jsonic.ResultOK {
		t.Fatalf("result after Close = %v, want OK", result)
	}
	if got, want := dom.Serialize(b.Root()), `{"k": 10}`; got != want {
		t.Fatalf("Serialize = %q, want %q", got, want)
	}
}

func TestReaderResumesInsideStringAcrossFeeds(t *testing.T) {
	b := &dom.Builder{}
	r := jsonic.NewReader(b.Handlers())

	chunks := []string{`{ "h`, `i" , "v" }`}
	var result jsonic.Result
	for _, c := range chunks {
		if err := r.Feed([]byte(c)); err != nil {
			t.Fatalf("Feed(%q): %v", c, err)
		}
		var err error
		result, err = r.Step()
		if err != nil {
			t.Fatalf("Step after %q: %v", c, err)
		}
		if result != jsonic.ResultPending {
			t.Fatalf("Step after %q = %v, want Pending before closing", c, result)
		}
	}

	r.Close()
	result, err := r.Step()
	if err != nil {
		t.Fatalf("Step after Close: %v", err)
	}
	if result != jsonic.ResultOK {
		t.Fatalf("result after Close = %v, want OK", result)
	}
	if got, want := dom.Serialize(b.Root()), `{"hi": "v"}`; got != want {
		t.Fatalf("Serialize = %q, want %q", got, want)
	}
}

func TestReaderTrailingContentIsError(t *testing.T) {
	b := &dom.Builder{}
	r := jsonic.NewReader(b.Handlers())
	r.Feed([]byte(`{ "a" , 1 } false`))
	r.Close()

	result, err := r.Step()
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	if result != jsonic.ResultError {
		t.Fatalf("result = %v, want Error", result)
	}
}

func TestReaderFailSurfacesErrIO(t *testing.T) {
	b := &dom.Builder{}
	r := jsonic.NewReader(b.Handlers())
	r.Feed([]byte(`{ "a"`))

	r.Fail(errors.New("disk on fire"))

	result, err := r.Step()
	if result != jsonic.ResultError {
		t.Fatalf("result = %v, want Error", result)
	}
	if !errors.Is(err, jsonic.ErrIO) {
		t.Fatalf("Step after Fail: got %v, want an error wrapping ErrIO", err)
	}
}
