package rpmlicenses

import (
	"github.com/quay/pkgmeta/parser"
	"github.com/quay/pkgmeta/registry"
)

func init() {
	registry.Default.Register(parser.Descriptor{
		DatasourceID:       DatasourceID,
		Description:        "Installed RPM license text directory (mariner/Azure Linux layout)",
		GlobPatterns:       []string{"COPYING*", "LICENSE*"},
		DefaultPackageType: "rpm",
		SpecURL:            "https://rpm-software-management.github.io/rpm/manual/format.html",
		Factory:            func() parser.Parser { return Decoder{} },
	})
}
