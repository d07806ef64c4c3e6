package piprequirements

import (
	"github.com/quay/pkgmeta/parser"
	"github.com/quay/pkgmeta/registry"
)

func init() {
	registry.Default.Register(parser.Descriptor{
		DatasourceID:       DatasourceID,
		Description:        "pip requirements.txt",
		GlobPatterns:       []string{"requirements.txt", "requirements-*.txt"},
		DefaultPackageType: "pypi",
		PrimaryLanguage:    "Python",
		SpecURL:            "https://pip.pypa.io/en/stable/reference/requirements-file-format/",
		Factory:            func() parser.Parser { return Decoder{} },
	})
}
