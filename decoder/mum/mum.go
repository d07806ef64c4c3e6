// Package mum decodes Windows Update assembly manifests (*.mum), XML
// files describing a windows-update package's identity. Grounded on the
// original Rust parser's event-driven reader, adapted here to
// encoding/xml (this format has no library anywhere in the example
// corpus; encoding/xml's struct-tag model already covers this
// attribute-only shape).
package mum

import (
	"context"
	"encoding/xml"
	"strings"

	"github.com/quay/pkgmeta"
	"github.com/quay/pkgmeta/internal/decutil"
)

const DatasourceID = "microsoft_update_manifest_mum"

type Decoder struct{}

func (Decoder) PackageType() string { return "windows-update" }

func (Decoder) IsMatch(path string) bool { return strings.HasSuffix(strings.ToLower(path), ".mum") }

type assemblyDoc struct {
	Description        string `xml:"description,attr"`
	Copyright          string `xml:"copyright,attr"`
	SupportInformation string `xml:"supportInformation,attr"`
	AssemblyIdentity   struct {
		Name    string `xml:"name,attr"`
		Version string `xml:"version,attr"`
	} `xml:"assemblyIdentity"`
}

func (d Decoder) ExtractPackages(ctx context.Context, path string) []pkgmeta.PackageData {
	return []pkgmeta.PackageData{d.parse(ctx, path)}
}

func (d Decoder) ExtractFirstPackage(ctx context.Context, path string) pkgmeta.PackageData {
	return d.parse(ctx, path)
}

func minimal() pkgmeta.PackageData {
	return pkgmeta.PackageData{PackageType: "windows-update", DatasourceID: DatasourceID}
}

func (d Decoder) parse(ctx context.Context, path string) pkgmeta.PackageData {
	b, ok := decutil.ReadFile(ctx, DatasourceID, path)
	if !ok {
		return minimal()
	}
	var doc assemblyDoc
	if err := xml.Unmarshal(b, &doc); err != nil {
		return minimal()
	}
	pd := pkgmeta.PackageData{
		PackageType:  "windows-update",
		DatasourceID: DatasourceID,
		Name:         doc.AssemblyIdentity.Name,
		Version:      doc.AssemblyIdentity.Version,
		Description:  doc.Description,
		HomepageURL:  doc.SupportInformation,
	}
	if doc.Copyright != "" {
		pd.ExtraData = map[string]any{"copyright": doc.Copyright}
	}
	return pd
}
