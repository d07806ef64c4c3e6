package pyproject

import (
	"github.com/quay/pkgmeta/parser"
	"github.com/quay/pkgmeta/registry"
)

func init() {
	registry.Default.Register(parser.Descriptor{
		DatasourceID:       DatasourceID,
		Description:        "Python pyproject.toml manifest",
		GlobPatterns:       []string{"pyproject.toml"},
		DefaultPackageType: "pypi",
		PrimaryLanguage:    "Python",
		SpecURL:            "https://packaging.python.org/en/latest/specifications/pyproject-toml/",
		Factory:            func() parser.Parser { return Decoder{} },
	})
	registry.Default.Register(parser.Descriptor{
		DatasourceID:       PipfileDatasourceID,
		Description:        "pipenv Pipfile manifest",
		GlobPatterns:       []string{"Pipfile"},
		DefaultPackageType: "pypi",
		PrimaryLanguage:    "Python",
		SpecURL:            "https://pipenv.pypa.io/en/latest/pipfile.html",
		Factory:            func() parser.Parser { return PipfileDecoder{} },
	})
	registry.Default.Register(parser.Descriptor{
		DatasourceID:       PipfileLockDatasourceID,
		Description:        "pipenv Pipfile.lock resolved dependency graph",
		GlobPatterns:       []string{"Pipfile.lock"},
		DefaultPackageType: "pypi",
		PrimaryLanguage:    "Python",
		SpecURL:            "https://pipenv.pypa.io/en/latest/pipfile.html#pipfile-lock-security-features",
		Factory:            func() parser.Parser { return PipfileLockDecoder{} },
	})
}
