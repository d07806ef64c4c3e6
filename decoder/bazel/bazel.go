// Package bazel decodes Bazel BUILD/BUILD.bazel files (its [ExtractCalls]
// helper is also used by the buck package for Buck's BUCK) by parsing them as
// Starlark syntax (no execution — undeclared builtins like go_binary
// would simply fail to run) and walking the top-level statements for
// calls whose function name ends in "binary" or "library" (§4.2.2).
package bazel

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"go.starlark.net/syntax"

	"github.com/quay/pkgmeta"
	"github.com/quay/pkgmeta/purl"
)

const DatasourceID = "bazel_build"

type Decoder struct{}

func (Decoder) PackageType() string { return "bazel" }

func (Decoder) IsMatch(path string) bool {
	b := filepath.Base(path)
	return b == "BUILD" || b == "BUILD.bazel"
}

func (d Decoder) ExtractPackages(ctx context.Context, path string) []pkgmeta.PackageData {
	b, err := os.ReadFile(path)
	if err != nil {
		slog.WarnContext(ctx, "bazel: read failed", "datasource_id", DatasourceID, "path", path, "error", err)
		return []pkgmeta.PackageData{minimal(path)}
	}
	f, err := syntax.Parse(path, b, 0)
	if err != nil {
		slog.WarnContext(ctx, "bazel: parse failed", "datasource_id", DatasourceID, "path", path, "error", err)
		return []pkgmeta.PackageData{minimal(path)}
	}
	pds := ExtractCalls(f, "bazel", DatasourceID)
	if len(pds) == 0 {
		return []pkgmeta.PackageData{minimal(path)}
	}
	return pds
}

// ExtractCalls walks f's top-level statements for `fn(...)` or
// `x = fn(...)` calls whose function name ends in "binary" or
// "library", producing one PackageData per qualifying call. Shared
// with the buck package, whose BUCK files use the identical grammar.
func ExtractCalls(f *syntax.File, packageType, datasourceID string) []pkgmeta.PackageData {
	var out []pkgmeta.PackageData
	for _, stmt := range f.Stmts {
		call := callExprOf(stmt)
		if call == nil {
			continue
		}
		ident, ok := call.Fn.(*syntax.Ident)
		if !ok {
			continue
		}
		name := ident.Name
		if !strings.HasSuffix(name, "binary") && !strings.HasSuffix(name, "library") {
			continue
		}
		pd := pkgmeta.PackageData{PackageType: packageType, DatasourceID: datasourceID}
		var licenses []string
		for _, arg := range call.Args {
			bx, ok := arg.(*syntax.BinaryExpr)
			if !ok || bx.Op != syntax.EQ {
				continue
			}
			key, ok := bx.X.(*syntax.Ident)
			if !ok {
				continue
			}
			switch key.Name {
			case "name":
				pd.Name = stringLit(bx.Y)
			case "licenses":
				licenses = stringList(bx.Y)
			}
		}
		pd.Keywords = append(pd.Keywords, licenses...)
		if len(licenses) > 0 {
			pd.ExtractedLicenseStatement = strings.Join(licenses, ", ")
		}
		if pd.Name != "" {
			pd.Purl, _ = purl.Build(packageType, "", pd.Name, "", nil, "")
		}
		out = append(out, pd)
	}
	return out
}

func callExprOf(stmt syntax.Stmt) *syntax.CallExpr {
	switch s := stmt.(type) {
	case *syntax.ExprStmt:
		if c, ok := s.X.(*syntax.CallExpr); ok {
			return c
		}
	case *syntax.AssignStmt:
		if c, ok := s.RHS.(*syntax.CallExpr); ok {
			return c
		}
	}
	return nil
}

func stringLit(e syntax.Expr) string {
	if lit, ok := e.(*syntax.Literal); ok {
		if s, ok := lit.Value.(string); ok {
			return s
		}
	}
	return ""
}

func stringList(e syntax.Expr) []string {
	list, ok := e.(*syntax.ListExpr)
	if !ok {
		return nil
	}
	var out []string
	for _, el := range list.List {
		if s := stringLit(el); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func (d Decoder) ExtractFirstPackage(ctx context.Context, path string) pkgmeta.PackageData {
	pds := d.ExtractPackages(ctx, path)
	if len(pds) == 0 {
		return minimal(path)
	}
	return pds[0]
}

// minimal falls back to a record named for the parent directory, per
// §4.2.2 "on no match, fall back to one record whose name is the
// parent directory's basename".
func minimal(path string) pkgmeta.PackageData {
	return pkgmeta.PackageData{
		PackageType:  "bazel",
		DatasourceID: DatasourceID,
		Name:         filepath.Base(filepath.Dir(path)),
	}
}
