// Package rpm allows for inspecting RPM databases in BerkleyDB and SQLite
// formats; NDB databases are only recognized, not read (see internal/rpm/ndb).
package rpm

import (
	"context"
	"io"
	"iter"
)

const Version = "10"

// HeaderReader is the interface implemented for in-process RPM database handlers.
type HeaderReader interface {
	Headers(context.Context) iter.Seq2[io.ReaderAt, error]
}
