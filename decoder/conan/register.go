package conan

import (
	"github.com/quay/pkgmeta/parser"
	"github.com/quay/pkgmeta/registry"
)

func init() {
	registry.Default.Register(parser.Descriptor{
		DatasourceID:       ConanfileDatasourceID,
		Description:        "Conan conanfile.py recipe",
		GlobPatterns:       []string{"conanfile.py"},
		DefaultPackageType: "conan",
		PrimaryLanguage:    "C++",
		SpecURL:            "https://docs.conan.io/2/reference/conanfile.html",
		Factory:            func() parser.Parser { return ConanfileDecoder{} },
	})
	registry.Default.Register(parser.Descriptor{
		DatasourceID:       ConandataDatasourceID,
		Description:        "Conan conandata.yml source/checksum data",
		GlobPatterns:       []string{"conandata.yml"},
		DefaultPackageType: "conan",
		PrimaryLanguage:    "C++",
		SpecURL:            "https://docs.conan.io/2/reference/conanfile/other.html#conandata-yml",
		Factory:            func() parser.Parser { return ConandataDecoder{} },
	})
	registry.Default.Register(parser.Descriptor{
		DatasourceID:       LockDatasourceID,
		Description:        "Conan conan.lock resolved graph",
		GlobPatterns:       []string{"conan.lock"},
		DefaultPackageType: "conan",
		PrimaryLanguage:    "C++",
		SpecURL:            "https://docs.conan.io/2/reference/commands/lock.html",
		Factory:            func() parser.Parser { return LockDecoder{} },
	})
}
