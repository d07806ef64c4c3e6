// Package buck decodes Buck BUCK files (the same call-extraction
// grammar as Bazel BUILD, shared via [bazel.ExtractCalls]) and
// METADATA.bzl files, which carry a top-level METADATA = { ... } dict
// literal whose keys may include an override purl (§4.2.2).
package buck

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"go.starlark.net/syntax"

	"github.com/quay/pkgmeta"
	"github.com/quay/pkgmeta/decoder/bazel"
	"github.com/quay/pkgmeta/purl"
)

const (
	BuildDatasourceID    = "buck_file"
	MetadataDatasourceID = "buck_metadata"
)

type Decoder struct{}

func (Decoder) PackageType() string { return "buck" }

func (Decoder) IsMatch(path string) bool { return filepath.Base(path) == "BUCK" }

func (d Decoder) ExtractPackages(ctx context.Context, path string) []pkgmeta.PackageData {
	b, err := os.ReadFile(path)
	if err != nil {
		slog.WarnContext(ctx, "buck: read failed", "datasource_id", BuildDatasourceID, "path", path, "error", err)
		return []pkgmeta.PackageData{minimal(path)}
	}
	f, err := syntax.Parse(path, b, 0)
	if err != nil {
		slog.WarnContext(ctx, "buck: parse failed", "datasource_id", BuildDatasourceID, "path", path, "error", err)
		return []pkgmeta.PackageData{minimal(path)}
	}
	pds := bazel.ExtractCalls(f, "buck", BuildDatasourceID)
	if len(pds) == 0 {
		return []pkgmeta.PackageData{minimal(path)}
	}
	return pds
}

func (d Decoder) ExtractFirstPackage(ctx context.Context, path string) pkgmeta.PackageData {
	pds := d.ExtractPackages(ctx, path)
	if len(pds) == 0 {
		return minimal(path)
	}
	return pds[0]
}

func minimal(path string) pkgmeta.PackageData {
	return pkgmeta.PackageData{
		PackageType:  "buck",
		DatasourceID: BuildDatasourceID,
		Name:         filepath.Base(filepath.Dir(path)),
	}
}

// MetadataDecoder handles METADATA.bzl.
type MetadataDecoder struct{}

func (MetadataDecoder) PackageType() string { return "buck" }

func (MetadataDecoder) IsMatch(path string) bool { return filepath.Base(path) == "METADATA.bzl" }

var recognizedKeys = map[string]bool{
	"name": true, "version": true, "upstream_type": true, "package_type": true,
	"licenses": true, "license_expression": true, "upstream_address": true,
	"homepage_url": true, "download_url": true, "vcs_url": true,
	"download_archive_sha1": true, "maintainers": true, "vcs_commit_hash": true,
	"upstream_hash": true, "package_url": true,
}

func (d MetadataDecoder) ExtractPackages(ctx context.Context, path string) []pkgmeta.PackageData {
	b, err := os.ReadFile(path)
	if err != nil {
		slog.WarnContext(ctx, "buck: METADATA.bzl read failed", "datasource_id", MetadataDatasourceID, "path", path, "error", err)
		return []pkgmeta.PackageData{minimalMetadata()}
	}
	f, err := syntax.Parse(path, b, 0)
	if err != nil {
		slog.WarnContext(ctx, "buck: METADATA.bzl parse failed", "datasource_id", MetadataDatasourceID, "path", path, "error", err)
		return []pkgmeta.PackageData{minimalMetadata()}
	}

	pd := minimalMetadata()
	pd.ExtraData = map[string]any{}
	var pkgURL string
	for _, stmt := range f.Stmts {
		assign, ok := stmt.(*syntax.AssignStmt)
		if !ok {
			continue
		}
		lhs, ok := assign.LHS.(*syntax.Ident)
		if !ok || lhs.Name != "METADATA" {
			continue
		}
		dict, ok := assign.RHS.(*syntax.DictExpr)
		if !ok {
			continue
		}
		for _, entry := range dict.List {
			pair, ok := entry.(*syntax.DictEntry)
			if !ok {
				continue
			}
			key := stringLit(pair.Key)
			if key == "" || !recognizedKeys[key] {
				continue
			}
			if key == "package_url" {
				pkgURL = stringLit(pair.Value)
				continue
			}
			applyMetadataField(&pd, key, pair.Value)
		}
	}

	if pkgURL != "" {
		if typ, ns, name, version, quals, err := purl.Parse(pkgURL); err == nil {
			pd.PackageType = typ
			pd.Namespace = ns
			pd.Name = name
			pd.Version = version
			pd.Qualifiers = quals
			pd.Purl = pkgURL
		}
	} else if pd.Name != "" {
		pd.Purl, _ = purl.Build("buck", "", pd.Name, pd.Version, nil, "")
	}
	return []pkgmeta.PackageData{pd}
}

func applyMetadataField(pd *pkgmeta.PackageData, key string, val syntax.Expr) {
	switch key {
	case "name":
		pd.Name = stringLit(val)
	case "version":
		pd.Version = stringLit(val)
	case "homepage_url":
		pd.HomepageURL = stringLit(val)
	case "download_url":
		pd.DownloadURL = stringLit(val)
	case "vcs_url":
		pd.VCSURL = stringLit(val)
	case "license_expression":
		pd.ExtractedLicenseStatement = stringLit(val)
	case "licenses":
		pd.Keywords = append(pd.Keywords, stringList(val)...)
	case "maintainers":
		for _, m := range stringList(val) {
			pd.Parties = append(pd.Parties, pkgmeta.Party{Role: pkgmeta.RoleMaintainer, Name: m})
		}
	case "upstream_type", "package_type", "upstream_address", "download_archive_sha1", "vcs_commit_hash", "upstream_hash":
		pd.ExtraData[key] = stringLit(val)
	}
}

func minimalMetadata() pkgmeta.PackageData {
	return pkgmeta.PackageData{PackageType: "buck", DatasourceID: MetadataDatasourceID}
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
