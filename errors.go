package pkgmeta

import (
	"errors"
	"strings"
)

// Error is the pkgmeta error domain type.
//
// Errors coming from pkgmeta components should be able to be inspected as
// ([errors.As]) an *Error at some point in the error chain.
//
// Decoders build an Error at the system boundary (a file read, a parse
// call) but never let it cross the parser.Parser contract: per the §4.1
// failure policy a decoder absorbs its own Error into a minimal
// PackageData and logs it, rather than returning the Error to its caller.
type Error struct {
	Inner   error
	Kind    ErrorKind
	Message string
	Op      string
}

// Assert this implements all the cool features.
var (
	_ error                       = (*Error)(nil)
	_ interface{ Is(error) bool } = (*Error)(nil)
	_ interface{ Unwrap() error } = (*Error)(nil)
)

// Error implements error.
func (e *Error) Error() string {
	var b strings.Builder
	if e.Op != "" {
		b.WriteString(e.Op)
		b.WriteString(" ")
	}
	b.WriteString("[")
	switch e.Kind {
	case ErrRead, ErrFormat, ErrSemantic, ErrWorkspace, ErrPurl:
		b.WriteString(string(e.Kind))
	default:
		b.WriteString("???")
	}
	b.WriteString("]: ")
	if e.Message != "" {
		b.WriteString(e.Message)
	}
	if e.Message != "" && e.Inner != nil {
		b.WriteString(": ")
	}
	if e.Op == "" && e.Message == "" {
		b.Reset()
	}
	if e.Inner != nil {
		b.WriteString(e.Inner.Error())
	}
	return b.String()
}

// Is enables [errors.Is].
//
// It compares the error kind. Callers should compare against a declared
// [ErrorKind] over a specific error.
func (e *Error) Is(kind error) bool {
	return errors.Is(e.Kind, kind)
}

// Unwrap enables [errors.Unwrap].
func (e *Error) Unwrap() error {
	return e.Inner
}

// ErrorKind classifies an Error per §7's taxonomy.
//
// If unsure which kind to use, ErrSemantic is the closest thing to a
// catch-all.
type ErrorKind string

// Defined error kinds.
var (
	// ErrRead means the underlying file I/O failed: missing file,
	// permission denied.
	ErrRead = ErrorKind("read")
	// ErrFormat means the file opened but failed to parse: malformed
	// JSON/YAML/TOML/XML, invalid AST.
	ErrFormat = ErrorKind("format")
	// ErrSemantic means the file parsed but its shape was unexpected: no
	// root object, a missing required field.
	ErrSemantic = ErrorKind("semantic")
	// ErrWorkspace means the workspace assembler found a root but
	// resolved zero members for it.
	ErrWorkspace = ErrorKind("workspace")
	// ErrPurl means purl construction failed: invalid characters in a
	// name or namespace component.
	ErrPurl = ErrorKind("purl")
)

// Error implements error.
func (e ErrorKind) Error() string {
	return string(e)
}
