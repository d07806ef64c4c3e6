package mum

import (
	"github.com/quay/pkgmeta/parser"
	"github.com/quay/pkgmeta/registry"
)

func init() {
	registry.Default.Register(parser.Descriptor{
		DatasourceID:       DatasourceID,
		Description:        "Windows Update assembly manifest (.mum)",
		GlobPatterns:       []string{"*.mum"},
		DefaultPackageType: "windows-update",
		SpecURL:            "https://learn.microsoft.com/en-us/windows-hardware/manufacture/desktop/windows-installer-files",
		Factory:            func() parser.Parser { return Decoder{} },
	})
}
