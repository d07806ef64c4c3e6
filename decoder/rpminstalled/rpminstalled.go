// Package rpminstalled decodes an installed RPM package database (§4.2.4):
// the Berkeley DB "Packages" file used by RHEL/CentOS through version 7,
// and the SQLite "rpmdb.sqlite" file used from RHEL/Fedora 9+ onward. Each
// stored header is the same tagged-header format as a standalone archive,
// so field mapping is shared with decoder/rpmarchive via
// [rpmarchive.FromHeader].
//
// The third installed-db format, NDB's "Packages.db" (openSUSE/SLE), is
// detected but not decoded: internal/rpm/ndb only implements a magic-number
// check, not header extraction, so a match on that format yields a minimal
// record plus a ScanError rather than silently producing nothing.
package rpminstalled

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/quay/pkgmeta"
	"github.com/quay/pkgmeta/decoder/rpmarchive"
	rpminternal "github.com/quay/pkgmeta/internal/rpm"
	"github.com/quay/pkgmeta/internal/rpm/bdb"
	"github.com/quay/pkgmeta/internal/rpm/ndb"
	"github.com/quay/pkgmeta/internal/rpm/rpmdb"
	"github.com/quay/pkgmeta/internal/rpm/sqlite"
)

func openFile(path string) (io.ReaderAt, func() error, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, func() error { return nil }, err
	}
	return f, f.Close, nil
}

const DatasourceID = "rpm_installed_db"

type dbKind int

const (
	kindUnknown dbKind = iota
	kindBDB
	kindSQLite
	kindNDB
)

type Decoder struct{}

func (Decoder) PackageType() string { return "rpm" }

func (Decoder) IsMatch(path string) bool {
	return classify(path) != kindUnknown
}

func classify(path string) dbKind {
	switch filepath.Base(path) {
	case "Packages":
		return kindBDB
	case "rpmdb.sqlite":
		return kindSQLite
	case "Packages.db":
		return kindNDB
	}
	return kindUnknown
}

func (d Decoder) ExtractPackages(ctx context.Context, path string) []pkgmeta.PackageData {
	switch classify(path) {
	case kindBDB:
		return d.extractBDB(ctx, path)
	case kindSQLite:
		return d.extractSQLite(ctx, path)
	case kindNDB:
		return []pkgmeta.PackageData{minimal(&pkgmeta.Error{
			Op: "rpminstalled.ExtractPackages", Kind: pkgmeta.ErrFormat,
			Message: "NDB installed-database format is not supported",
		})}
	default:
		return nil
	}
}

func (d Decoder) ExtractFirstPackage(ctx context.Context, path string) pkgmeta.PackageData {
	pkgs := d.ExtractPackages(ctx, path)
	if len(pkgs) == 0 {
		return pkgmeta.PackageData{PackageType: d.PackageType(), DatasourceID: DatasourceID}
	}
	return pkgs[0]
}

func minimal(err error) pkgmeta.PackageData {
	return pkgmeta.PackageData{
		PackageType:  "rpm",
		DatasourceID: DatasourceID,
		ExtraData:    map[string]any{"error": err.Error()},
	}
}

func (d Decoder) extractBDB(ctx context.Context, path string) []pkgmeta.PackageData {
	r, closeFn, err := openFile(path)
	if err != nil {
		return []pkgmeta.PackageData{minimal(&pkgmeta.Error{Op: "rpminstalled.extractBDB", Kind: pkgmeta.ErrRead, Inner: err})}
	}
	defer closeFn()

	var db bdb.PackageDB
	if err := db.Parse(r); err != nil {
		return []pkgmeta.PackageData{minimal(&pkgmeta.Error{Op: "rpminstalled.extractBDB", Kind: pkgmeta.ErrFormat, Inner: err})}
	}

	out := headersToPackages(ctx, &db)
	if out == nil {
		return []pkgmeta.PackageData{minimal(&pkgmeta.Error{Op: "rpminstalled.extractBDB", Kind: pkgmeta.ErrSemantic, Message: "no headers found"})}
	}
	return out
}

// headersToPackages drives a [rpminternal.HeaderReader] (bdb.PackageDB
// implements this exact iter.Seq2 shape; sqlite.RPMDB's
// separate-error-function shape is handled directly in extractSQLite).
func headersToPackages(ctx context.Context, hr rpminternal.HeaderReader) []pkgmeta.PackageData {
	var out []pkgmeta.PackageData
	for r, err := range hr.Headers(ctx) {
		if err != nil {
			slog.WarnContext(ctx, "rpminstalled: header skipped", "datasource_id", DatasourceID, "error", err)
			continue
		}
		h, err := rpmdb.ParseHeader(ctx, r)
		if err != nil {
			slog.WarnContext(ctx, "rpminstalled: header unparsable", "datasource_id", DatasourceID, "error", err)
			continue
		}
		out = append(out, rpmarchive.FromHeader(ctx, h, DatasourceID))
	}
	return out
}

func (d Decoder) extractSQLite(ctx context.Context, path string) []pkgmeta.PackageData {
	db, err := sqlite.Open(path)
	if err != nil {
		return []pkgmeta.PackageData{minimal(&pkgmeta.Error{Op: "rpminstalled.extractSQLite", Kind: pkgmeta.ErrRead, Inner: err})}
	}
	defer db.Close()

	if err := db.Validate(ctx); err != nil {
		return []pkgmeta.PackageData{minimal(&pkgmeta.Error{Op: "rpminstalled.extractSQLite", Kind: pkgmeta.ErrFormat, Message: "validating sqlite database", Inner: err})}
	}

	seq, errFn := db.All(ctx)
	var out []pkgmeta.PackageData
	for hr := range seq {
		h, err := rpmdb.ParseHeader(ctx, hr)
		if err != nil {
			slog.WarnContext(ctx, "rpminstalled: sqlite header unparsable", "datasource_id", DatasourceID, "error", err)
			continue
		}
		out = append(out, rpmarchive.FromHeader(ctx, h, DatasourceID))
	}
	if err := errFn(); err != nil {
		slog.WarnContext(ctx, "rpminstalled: sqlite iteration error", "datasource_id", DatasourceID, "error", err)
	}
	if out == nil {
		return []pkgmeta.PackageData{minimal(&pkgmeta.Error{Op: "rpminstalled.extractSQLite", Kind: pkgmeta.ErrSemantic, Message: "no headers found"})}
	}
	return out
}

// ndb.CheckMagic is referenced here but not called: classify recognizes
// Packages.db by file name alone, and NDB headers are not decoded; see
// the package doc comment.
var _ = ndb.CheckMagic
