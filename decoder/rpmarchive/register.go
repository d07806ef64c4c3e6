package rpmarchive

import (
	"github.com/quay/pkgmeta/parser"
	"github.com/quay/pkgmeta/registry"
)

func init() {
	registry.Default.Register(parser.Descriptor{
		DatasourceID:       DatasourceID,
		Description:        "RPM/SRPM binary archive header",
		GlobPatterns:       []string{"*.rpm", "*.srpm"},
		DefaultPackageType: "rpm",
		SpecURL:            "https://rpm-software-management.github.io/rpm/manual/format.html",
		Factory:            func() parser.Parser { return Decoder{} },
	})
}
