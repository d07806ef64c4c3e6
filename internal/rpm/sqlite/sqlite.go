// Package sqlite reads Fedora/RHEL 9+ era installed RPM databases:
// modern rpm stores each package's header blob as a row in a SQLite
// database ("rpmdb.sqlite") rather than in BerkeleyDB or NDB.
// decoder/rpminstalled opens this database directly and, like the
// internal/rpm/bdb backend, hands each returned header blob to
// internal/rpm/rpmdb.ParseHeader for decoding.
package sqlite

import (
	"bytes"
	"context"
	"database/sql"
	_ "embed" // embed a sql statement
	"errors"
	"fmt"
	"io"
	"iter"
	"net/url"
	"runtime"

	_ "modernc.org/sqlite" // register the sqlite driver
)

// RPMDB is an opened handle onto an rpmdb.sqlite database.
type RPMDB struct {
	db *sql.DB
}

// Open opens the sqlite file at f read-only and validates that a
// connection can be established.
//
// f must be a path to a file on disk; the modernc.org/sqlite driver
// this package registers doesn't support in-memory or VFS-backed
// databases here.
//
// The caller must call Close on the returned RPMDB, or the finalizer
// set on it will panic when it's garbage collected.
func Open(f string) (*RPMDB, error) {
	u := url.URL{
		Scheme: `file`,
		Opaque: f,
		RawQuery: url.Values{
			"_pragma": {
				"foreign_keys(1)",
				"query_only(1)",
			},
		}.Encode(),
	}
	db, err := sql.Open(`sqlite`, u.String())
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}
	rdb := RPMDB{db: db}
	_, file, line, _ := runtime.Caller(1)
	runtime.SetFinalizer(&rdb, func(rdb *RPMDB) {
		panic(fmt.Sprintf("%s:%d: RPM db not closed", file, line))
	})
	return &rdb, nil
}

// Close releases the underlying database connection and disarms the
// leak-detecting finalizer. Must be called once the RPMDB is no longer
// needed.
func (db *RPMDB) Close() error {
	runtime.SetFinalizer(db, nil)
	return db.db.Close()
}

// All streams an [io.ReaderAt] for every stored header blob, ordered by
// row id. The returned func reports the first error encountered during
// iteration, if any; call it after the iterator is fully drained or
// abandoned.
func (db *RPMDB) All(ctx context.Context) (iter.Seq[io.ReaderAt], func() error) {
	rows, final := db.db.QueryContext(ctx, allpackages)

	seq := func(yield func(io.ReaderAt) bool) {
		if final != nil {
			return
		}
		defer rows.Close()

		var hnum int64
		for rows.Next() {
			// Initial capacity picked to cover a typical header without
			// forcing a second allocation; not tuned against real data.
			blob := make([]byte, 0, 4*4096)
			if err := rows.Scan(&hnum, &blob); err != nil {
				final = fmt.Errorf("sqlite: scan error: %w", err)
				return
			}
			if !yield(bytes.NewReader(blob)) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			final = fmt.Errorf("sqlite: sql error: %w", err)
		}
	}
	return seq, func() error { return final }
}

// Validate confirms the database is reachable and has the schema this
// package expects, returning an error wrapping [sql.ErrNoRows] if the
// file opened fine as sqlite but isn't an RPM database.
func (db *RPMDB) Validate(ctx context.Context) error {
	if err := db.db.PingContext(ctx); err != nil {
		return fmt.Errorf("sqlite: database problem: %w", err)
	}
	var ignore int64
	err := db.db.QueryRow(validate).Scan(&ignore)
	switch {
	case errors.Is(err, nil):
	case errors.Is(err, sql.ErrNoRows):
		return fmt.Errorf("sqlite: not an rpm database: %w", err)
	default:
		return err
	}
	return nil
}

//go:embed sql/allpackages.sql
var allpackages string

//go:embed sql/validate.sql
var validate string