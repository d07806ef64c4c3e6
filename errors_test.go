package pkgmeta

import (
	"errors"
	"fmt"
	"os"
	"testing"
)

func ExampleError() {
	fmt.Println(&Error{
		Inner:   nil,
		Kind:    ErrSemantic,
		Message: "test",
		Op:      "ExampleError",
	})

	fmt.Println(&Error{
		Inner:   os.ErrNotExist,
		Kind:    ErrRead,
		Message: "manifest missing",
		Op:      "decoder/bower.Parse",
	})
	fmt.Println(fmt.Errorf("decoder/npm: oops: %w", &Error{
		Inner:   os.ErrNotExist,
		Kind:    ErrRead,
		Message: "manifest missing",
		Op:      "decoder/bower.Parse",
	}))

	// Output:
	// ExampleError [semantic]: test
	// decoder/bower.Parse [read]: manifest missing: file does not exist
	// decoder/npm: oops: decoder/bower.Parse [read]: manifest missing: file does not exist
}

func TestErrorIs(t *testing.T) {
	err := &Error{Kind: ErrFormat, Message: "bad toml"}
	if !errors.Is(err, ErrFormat) {
		t.Error("want errors.Is(err, ErrFormat) == true")
	}
	if errors.Is(err, ErrRead) {
		t.Error("want errors.Is(err, ErrRead) == false")
	}
}

func TestErrorUnwrap(t *testing.T) {
	inner := errors.New("inner")
	err := &Error{Kind: ErrRead, Inner: inner}
	if !errors.Is(err, inner) {
		t.Error("want errors.Is(err, inner) == true")
	}
}
