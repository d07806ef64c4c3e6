package swiftresolved

import (
	"github.com/quay/pkgmeta/parser"
	"github.com/quay/pkgmeta/registry"
)

func init() {
	registry.Default.Register(parser.Descriptor{
		DatasourceID:       DatasourceID,
		Description:        "Swift Package.resolved pins (v1/v2/v3)",
		GlobPatterns:       []string{"Package.resolved"},
		DefaultPackageType: "swift",
		SpecURL:            "https://github.com/apple/swift-package-manager/blob/main/Documentation/Usage.md#resolving-versions-packageresolved-file",
		Factory:            func() parser.Parser { return Decoder{} },
	})
}
