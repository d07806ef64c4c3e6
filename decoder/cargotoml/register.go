package cargotoml

import (
	"github.com/quay/pkgmeta/parser"
	"github.com/quay/pkgmeta/registry"
)

func init() {
	registry.Default.Register(parser.Descriptor{
		DatasourceID:       DatasourceID,
		Description:        "Cargo.toml manifest, including workspace roots",
		GlobPatterns:       []string{"Cargo.toml"},
		DefaultPackageType: "cargo",
		PrimaryLanguage:    "Rust",
		SpecURL:            "https://doc.rust-lang.org/cargo/reference/manifest.html",
		Factory:            func() parser.Parser { return Decoder{} },
	})
}
