package gradle

import (
	"github.com/quay/pkgmeta/parser"
	"github.com/quay/pkgmeta/registry"
)

func init() {
	registry.Default.Register(parser.Descriptor{
		DatasourceID:       DatasourceID,
		Description:        "Gradle build.gradle / build.gradle.kts dependency blocks",
		GlobPatterns:       []string{"build.gradle", "build.gradle.kts"},
		DefaultPackageType: "maven",
		PrimaryLanguage:    "Java",
		SpecURL:            "https://docs.gradle.org/current/userguide/declaring_dependencies.html",
		Factory:            func() parser.Parser { return Decoder{} },
	})
}
