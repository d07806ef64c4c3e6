package bazel

import (
	"github.com/quay/pkgmeta/parser"
	"github.com/quay/pkgmeta/registry"
)

func init() {
	registry.Default.Register(parser.Descriptor{
		DatasourceID:       DatasourceID,
		Description:        "Bazel BUILD file",
		GlobPatterns:       []string{"BUILD", "BUILD.bazel"},
		DefaultPackageType: "bazel",
		SpecURL:            "https://bazel.build/concepts/build-files",
		Factory:            func() parser.Parser { return Decoder{} },
	})
}
