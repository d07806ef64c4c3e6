package cargolock

import (
	"github.com/quay/pkgmeta/parser"
	"github.com/quay/pkgmeta/registry"
)

func init() {
	registry.Default.Register(parser.Descriptor{
		DatasourceID:       DatasourceID,
		Description:        "Cargo.lock resolved dependency graph",
		GlobPatterns:       []string{"Cargo.lock"},
		DefaultPackageType: "cargo",
		PrimaryLanguage:    "Rust",
		SpecURL:            "https://doc.rust-lang.org/cargo/guide/cargo-toml-vs-cargo-lock.html",
		Factory:            func() parser.Parser { return Decoder{} },
	})
}
