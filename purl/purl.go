// Package purl builds and parses Package URLs (§6.3) for pkgmeta records.
//
// Unlike claircore's purl/registry.go, which maps purls to and from
// vulnerability-matching IndexRecords through a type/namespace-keyed
// registry of generator and parser funcs, this package has one job: turn
// a decoder's (type, namespace, name, version, qualifiers, subpath) tuple
// into a canonical purl string, and parse one back into the same tuple
// for the round-trip invariant (§8 #3). The registry machinery doesn't
// have a role here since there is no advisory database to look records
// up against.
package purl

import (
	"sort"

	"github.com/package-url/packageurl-go"

	"github.com/quay/pkgmeta"
)

// Build constructs a purl string for the given identity. Qualifiers with
// an empty value are omitted. When pkgType or name is empty it returns an
// empty string and a *pkgmeta.Error of kind [pkgmeta.ErrPurl]; the
// characters of name and namespace are not validated and never cause an
// error. Callers are expected to log the error and continue with Purl="".
func Build(pkgType, namespace, name, version string, qualifiers map[string]string, subpath string) (string, error) {
	if pkgType == "" || name == "" {
		return "", &pkgmeta.Error{
			Op:      "purl.Build",
			Kind:    pkgmeta.ErrPurl,
			Message: "type and name are required",
		}
	}
	var quals packageurl.Qualifiers
	if len(qualifiers) > 0 {
		keys := make([]string, 0, len(qualifiers))
		for k := range qualifiers {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if v := qualifiers[k]; v != "" {
				quals = append(quals, packageurl.Qualifier{Key: k, Value: v})
			}
		}
	}
	u := packageurl.NewPackageURL(pkgType, namespace, name, version, quals, subpath)
	return u.ToString(), nil
}

// Parse parses s into its constituent (type, namespace, name, version,
// qualifiers) tuple, the inverse of Build.
func Parse(s string) (pkgType, namespace, name, version string, qualifiers map[string]string, err error) {
	u, perr := packageurl.FromString(s)
	if perr != nil {
		return "", "", "", "", nil, &pkgmeta.Error{
			Op:      "purl.Parse",
			Kind:    pkgmeta.ErrPurl,
			Message: "malformed purl",
			Inner:   perr,
		}
	}
	qualifiers = u.Qualifiers.Map()
	return u.Type, u.Namespace, u.Name, u.Version, qualifiers, nil
}
