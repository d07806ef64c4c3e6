package rpminstalled

import (
	"github.com/quay/pkgmeta/parser"
	"github.com/quay/pkgmeta/registry"
)

func init() {
	registry.Default.Register(parser.Descriptor{
		DatasourceID:       DatasourceID,
		Description:        "Installed RPM package database (bdb Packages, rpmdb.sqlite)",
		GlobPatterns:       []string{"Packages", "Packages.db", "rpmdb.sqlite"},
		DefaultPackageType: "rpm",
		SpecURL:            "https://rpm-software-management.github.io/rpm/manual/format.html",
		Factory:            func() parser.Parser { return Decoder{} },
	})
}
