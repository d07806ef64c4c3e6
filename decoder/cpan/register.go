package cpan

import (
	"github.com/quay/pkgmeta/parser"
	"github.com/quay/pkgmeta/registry"
)

func init() {
	registry.Default.Register(parser.Descriptor{
		DatasourceID:       DistIniDatasourceID,
		Description:        "CPAN Dist::Zilla dist.ini",
		GlobPatterns:       []string{"dist.ini"},
		DefaultPackageType: "cpan",
		PrimaryLanguage:    "Perl",
		SpecURL:            "https://metacpan.org/pod/Dist::Zilla::Tutorial",
		Factory:            func() parser.Parser { return DistIniDecoder{} },
	})
	registry.Default.Register(parser.Descriptor{
		DatasourceID:       MakefileDatasourceID,
		Description:        "CPAN ExtUtils::MakeMaker Makefile.PL",
		GlobPatterns:       []string{"Makefile.PL"},
		DefaultPackageType: "cpan",
		PrimaryLanguage:    "Perl",
		SpecURL:            "https://metacpan.org/pod/ExtUtils::MakeMaker",
		Factory:            func() parser.Parser { return MakefileDecoder{} },
	})
}
