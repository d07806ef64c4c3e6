package pydistinfo

import (
	"github.com/quay/pkgmeta/parser"
	"github.com/quay/pkgmeta/registry"
)

func init() {
	registry.Default.Register(parser.Descriptor{
		DatasourceID:       DatasourceID,
		Description:        "Installed Python wheel/egg metadata (dist-info/egg-info)",
		GlobPatterns:       []string{"METADATA", "PKG-INFO"},
		DefaultPackageType: "pypi",
		PrimaryLanguage:    "Python",
		SpecURL:            "https://packaging.python.org/en/latest/specifications/core-metadata/",
		Factory:            func() parser.Parser { return Decoder{} },
	})
}
