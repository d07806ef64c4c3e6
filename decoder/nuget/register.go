package nuget

import (
	"github.com/quay/pkgmeta/parser"
	"github.com/quay/pkgmeta/registry"
)

func init() {
	registry.Default.Register(parser.Descriptor{
		DatasourceID:       NuspecDatasourceID,
		Description:        "NuGet .nuspec manifest",
		GlobPatterns:       []string{"*.nuspec"},
		DefaultPackageType: "nuget",
		PrimaryLanguage:    "C#",
		SpecURL:            "https://learn.microsoft.com/en-us/nuget/reference/nuspec",
		Factory:            func() parser.Parser { return NuspecDecoder{} },
	})
	registry.Default.Register(parser.Descriptor{
		DatasourceID:       PackagesConfigDatasourceID,
		Description:        "NuGet legacy packages.config",
		GlobPatterns:       []string{"packages.config"},
		DefaultPackageType: "nuget",
		PrimaryLanguage:    "C#",
		SpecURL:            "https://learn.microsoft.com/en-us/nuget/reference/packages-config",
		Factory:            func() parser.Parser { return PackagesConfigDecoder{} },
	})
	registry.Default.Register(parser.Descriptor{
		DatasourceID:       PackagesLockDatasourceID,
		Description:        "NuGet packages.lock.json resolved dependency graph",
		GlobPatterns:       []string{"packages.lock.json"},
		DefaultPackageType: "nuget",
		PrimaryLanguage:    "C#",
		SpecURL:            "https://learn.microsoft.com/en-us/nuget/consume-packages/package-references-in-project-files#locking-dependencies",
		Factory:            func() parser.Parser { return LockJSONDecoder{} },
	})
}
