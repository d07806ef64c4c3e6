package jarmanifest

import (
	"github.com/quay/pkgmeta/parser"
	"github.com/quay/pkgmeta/registry"
)

func init() {
	registry.Default.Register(parser.Descriptor{
		DatasourceID:       JarManifestDatasourceID,
		Description:        "Java jar/war/ear manifest (META-INF/MANIFEST.MF)",
		GlobPatterns:       []string{"META-INF/MANIFEST.MF"},
		DefaultPackageType: "maven",
		PrimaryLanguage:    "Java",
		SpecURL:            "https://docs.oracle.com/javase/8/docs/technotes/guides/jar/jar.html",
		Factory:            func() parser.Parser { return JarManifestDecoder{} },
	})
	registry.Default.Register(parser.Descriptor{
		DatasourceID:       OSGiManifestDatasourceID,
		Description:        "OSGi bundle manifest (META-INF/MANIFEST.MF with Bundle-SymbolicName)",
		GlobPatterns:       []string{"META-INF/MANIFEST.MF"},
		DefaultPackageType: "osgi",
		PrimaryLanguage:    "Java",
		SpecURL:            "https://docs.osgi.org/specification/osgi.core/8.0.0/framework.module.html",
		Factory:            func() parser.Parser { return OSGiManifestDecoder{} },
	})
}
