package conan

import (
	"context"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/quay/pkgmeta"
	"github.com/quay/pkgmeta/internal/decutil"
	"github.com/quay/pkgmeta/purl"
)

const ConandataDatasourceID = "conan_conandata_yml"

type ConandataDecoder struct{}

func (ConandataDecoder) PackageType() string { return "conan" }

func (ConandataDecoder) IsMatch(path string) bool { return filepath.Base(path) == "conandata.yml" }

// raw mirrors the conventional recipe-maintained conandata.yml shape:
// a "sources" map keyed by version, each holding a download url and
// checksum.
type conandataRaw struct {
	Sources map[string]struct {
		URL    any    `yaml:"url"`
		SHA256 string `yaml:"sha256"`
	} `yaml:"sources"`
}

func (d ConandataDecoder) ExtractPackages(ctx context.Context, path string) []pkgmeta.PackageData {
	b, ok := decutil.ReadFile(ctx, ConandataDatasourceID, path)
	if !ok {
		return []pkgmeta.PackageData{minimalConandata()}
	}
	var raw conandataRaw
	if err := yaml.Unmarshal(b, &raw); err != nil || len(raw.Sources) == 0 {
		return []pkgmeta.PackageData{minimalConandata()}
	}
	pd := minimalConandata()
	pd.Name = filepath.Base(filepath.Dir(path))
	for _, v := range decutil.SortedKeys(raw.Sources) {
		src := raw.Sources[v]
		pd.Version = v
		pd.Hashes.SHA256 = src.SHA256
		switch u := src.URL.(type) {
		case string:
			pd.DownloadURL = u
		case []any:
			if len(u) > 0 {
				if s, ok := u[0].(string); ok {
					pd.DownloadURL = s
				}
			}
		}
		break // the first version key in ascending string order is used
	}
	if pd.Name != "" {
		pd.Purl, _ = purl.Build("conan", "", pd.Name, pd.Version, nil, "")
	}
	return []pkgmeta.PackageData{pd}
}

func (d ConandataDecoder) ExtractFirstPackage(ctx context.Context, path string) pkgmeta.PackageData {
	pds := d.ExtractPackages(ctx, path)
	if len(pds) == 0 {
		return minimalConandata()
	}
	return pds[0]
}

func minimalConandata() pkgmeta.PackageData {
	return pkgmeta.PackageData{PackageType: "conan", DatasourceID: ConandataDatasourceID}
}
