package condameta

import (
	"github.com/quay/pkgmeta/parser"
	"github.com/quay/pkgmeta/registry"
)

func init() {
	registry.Default.Register(parser.Descriptor{
		DatasourceID:       MetaYamlDatasourceID,
		Description:        "Conda recipe meta.yaml",
		GlobPatterns:       []string{"meta.yaml"},
		DefaultPackageType: "conda",
		SpecURL:            "https://docs.conda.io/projects/conda-build/en/latest/resources/define-metadata.html",
		Factory:            func() parser.Parser { return MetaYamlDecoder{} },
	})
	registry.Default.Register(parser.Descriptor{
		DatasourceID:       EnvironmentYmlDatasourceID,
		Description:        "Conda environment.yml environment spec",
		GlobPatterns:       []string{"environment.yml", "environment.yaml"},
		DefaultPackageType: "conda",
		SpecURL:            "https://docs.conda.io/projects/conda/en/latest/user-guide/tasks/manage-environments.html#creating-an-environment-file-manually",
		Factory:            func() parser.Parser { return EnvironmentYmlDecoder{} },
	})
}
