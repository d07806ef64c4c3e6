// Package nupkg decodes a packed NuGet package archive (*.nupkg, a zip
// file carrying a *.nuspec at its root alongside the payload) by reusing
// decoder/nuget's nuspec field mapping against the embedded entry's bytes.
package nupkg

import (
	"archive/zip"
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/quay/pkgmeta"
	"github.com/quay/pkgmeta/decoder/nuget"
)

const DatasourceID = "nuget_nupkg"

type Decoder struct{}

func (Decoder) PackageType() string { return "nuget" }

func (Decoder) IsMatch(path string) bool { return strings.HasSuffix(strings.ToLower(path), ".nupkg") }

func (d Decoder) ExtractPackages(ctx context.Context, path string) []pkgmeta.PackageData {
	return []pkgmeta.PackageData{d.parse(ctx, path)}
}

func (d Decoder) ExtractFirstPackage(ctx context.Context, path string) pkgmeta.PackageData {
	return d.parse(ctx, path)
}

func minimal() pkgmeta.PackageData {
	return pkgmeta.PackageData{PackageType: "nuget", DatasourceID: DatasourceID}
}

func (d Decoder) parse(ctx context.Context, path string) pkgmeta.PackageData {
	zr, err := zip.OpenReader(path)
	if err != nil {
		slog.WarnContext(ctx, "nupkg: open failed", "datasource_id", DatasourceID, "error", err)
		return minimal()
	}
	defer zr.Close()

	for _, f := range zr.File {
		if f.FileInfo().IsDir() || !strings.HasSuffix(strings.ToLower(f.Name), ".nuspec") {
			continue
		}
		if strings.Contains(f.Name, "/") {
			// The nuspec lives at the archive root; package-content
			// entries under e.g. lib/ can carry unrelated XML files.
			continue
		}
		rc, err := f.Open()
		if err != nil {
			slog.WarnContext(ctx, "nupkg: nuspec entry open failed", "datasource_id", DatasourceID, "error", err)
			return minimal()
		}
		b, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			slog.WarnContext(ctx, "nupkg: nuspec entry read failed", "datasource_id", DatasourceID, "error", err)
			return minimal()
		}
		return nuget.ParseNuspecBytes(b, DatasourceID)
	}
	slog.WarnContext(ctx, "nupkg: no root .nuspec entry found", "datasource_id", DatasourceID)
	return minimal()
}
