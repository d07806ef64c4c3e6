package osrelease

import (
	"github.com/quay/pkgmeta/parser"
	"github.com/quay/pkgmeta/registry"
)

func init() {
	registry.Default.Register(parser.Descriptor{
		DatasourceID:       DatasourceID,
		Description:        "Linux /etc/os-release distribution identity",
		GlobPatterns:       []string{"os-release"},
		DefaultPackageType: "linux-distro",
		SpecURL:            "https://www.freedesktop.org/software/systemd/man/latest/os-release.html",
		Factory:            func() parser.Parser { return Decoder{} },
	})
}
