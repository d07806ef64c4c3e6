package opam

import (
	"github.com/quay/pkgmeta/parser"
	"github.com/quay/pkgmeta/registry"
)

func init() {
	registry.Default.Register(parser.Descriptor{
		DatasourceID:       DatasourceID,
		Description:        "OPAM package definition",
		GlobPatterns:       []string{"*.opam", "opam"},
		DefaultPackageType: "opam",
		PrimaryLanguage:    "OCaml",
		SpecURL:            "https://opam.ocaml.org/doc/Manual.html#Package-definitions",
		Factory:            func() parser.Parser { return Decoder{} },
	})
}
