// Package rpmarchive decodes standalone *.rpm and *.srpm archives (§4.2.4).
//
// RPM archives and an installed rpmdb share the same tagged-header wire
// format; this package reuses [rpmdb.Header] (internal/rpm/rpmdb, adapted
// from the teacher's installed-package database reader) for the tag
// table, and only implements the archive-specific framing: lead, then
// signature header, then the header this decoder actually wants.
package rpmarchive

import (
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/quay/pkgmeta"
	"github.com/quay/pkgmeta/internal/rpm/rpmdb"
	"github.com/quay/pkgmeta/internal/rpmver"
	"github.com/quay/pkgmeta/purl"
)

const DatasourceID = "rpm_archive"

const leadSize = 96

// RequireFlag bits, straight from the RPM header format (RPMSENSE_*).
const (
	senseLess    = 0x02
	senseGreater = 0x04
	senseEqual   = 0x08
)

type Decoder struct{}

func (Decoder) PackageType() string { return "rpm" }

func (Decoder) IsMatch(path string) bool {
	l := strings.ToLower(path)
	return strings.HasSuffix(l, ".rpm") || strings.HasSuffix(l, ".srpm")
}

func (d Decoder) ExtractPackages(ctx context.Context, path string) []pkgmeta.PackageData {
	f, err := os.Open(path)
	if err != nil {
		return []pkgmeta.PackageData{minimal(&pkgmeta.Error{Op: "rpmarchive.ExtractPackages", Kind: pkgmeta.ErrRead, Inner: err})}
	}
	defer f.Close()

	pd, err := d.parse(ctx, f)
	if err != nil {
		return []pkgmeta.PackageData{minimal(err)}
	}
	return []pkgmeta.PackageData{pd}
}

func (d Decoder) ExtractFirstPackage(ctx context.Context, path string) pkgmeta.PackageData {
	pkgs := d.ExtractPackages(ctx, path)
	if len(pkgs) == 0 {
		return pkgmeta.PackageData{PackageType: d.PackageType(), DatasourceID: DatasourceID}
	}
	return pkgs[0]
}

func minimal(err error) pkgmeta.PackageData {
	return pkgmeta.PackageData{
		PackageType:  "rpm",
		DatasourceID: DatasourceID,
		ExtraData:    map[string]any{"error": err.Error()},
	}
}

func (d Decoder) parse(ctx context.Context, f *os.File) (pkgmeta.PackageData, error) {
	// Skip the 96-byte lead, then the signature header (whose contents we
	// don't need), landing at the start of the main header.
	sigOff, err := sectionEnd(f, leadSize)
	if err != nil {
		return pkgmeta.PackageData{}, &pkgmeta.Error{Op: "rpmarchive.parse", Kind: pkgmeta.ErrFormat, Message: "reading signature header", Inner: err}
	}

	// ParseHeader expects the reader positioned at the INDEXCOUNT entry,
	// i.e. past the 8-byte magic/version/reserved block.
	sr := io.NewSectionReader(f, sigOff+8, 1<<31-1)
	h, err := rpmdb.ParseHeader(ctx, sr)
	if err != nil {
		return pkgmeta.PackageData{}, &pkgmeta.Error{Op: "rpmarchive.parse", Kind: pkgmeta.ErrFormat, Message: "parsing rpm header", Inner: err}
	}

	return FromHeader(ctx, h, DatasourceID), nil
}

// FromHeader maps a parsed RPM tag table into a PackageData record. It is
// shared between this decoder (archive framing: lead + signature header,
// handled by the caller) and decoder/rpminstalled (raw header blobs read
// straight out of an installed package database).
func FromHeader(ctx context.Context, h *rpmdb.Header, datasourceID string) pkgmeta.PackageData {
	pd := pkgmeta.PackageData{
		PackageType:  "rpm",
		DatasourceID: datasourceID,
		ExtraData:    map[string]any{},
	}

	var name, version, release, arch string
	var epoch int32
	var vendor, packager, license, summary, homepage string
	var requireNames, requireVersions []string
	var requireFlags []int32

	for i := range h.Infos {
		e := &h.Infos[i]
		v, err := h.ReadData(ctx, e)
		if err != nil {
			continue
		}
		switch e.Tag {
		case rpmdb.TagName:
			name = asString(v)
		case rpmdb.TagVersion:
			version = asString(v)
		case rpmdb.TagRelease:
			release = asString(v)
		case rpmdb.TagEpoch:
			epoch = asInt32(v)
		case rpmdb.TagArch:
			arch = asString(v)
		case rpmdb.TagVendor:
			vendor = asString(v)
		case rpmdb.TagPackager:
			packager = asString(v)
		case rpmdb.TagLicense:
			license = asString(v)
		case rpmdb.TagSummary:
			summary = asString(v)
		case rpmdb.TagDescription:
			if summary == "" {
				summary = asString(v)
			}
		case rpmdb.TagURL:
			homepage = asString(v)
		case rpmdb.TagRequireName:
			requireNames = asStringSlice(v)
		case rpmdb.TagRequireVersion:
			requireVersions = asStringSlice(v)
		case rpmdb.TagRequireFlags:
			requireFlags = asInt32Slice(v)
		}
	}

	pd.Name = name
	pd.Version = evrString(epoch, version, release)
	pd.Description = summary
	pd.HomepageURL = homepage
	pd.ExtractedLicenseStatement = license
	if arch != "" {
		pd.Qualifiers = map[string]string{"arch": arch}
	}
	if packager != "" {
		pd.Parties = append(pd.Parties, parsePackager(packager))
	}
	if vendor != "" {
		pd.Parties = append(pd.Parties, pkgmeta.Party{Role: pkgmeta.RoleVendor, Name: vendor})
	}

	for i := 0; i < len(requireNames); i++ {
		req := requireNames[i]
		var ver string
		if i < len(requireVersions) {
			ver = requireVersions[i]
		}
		var flag int32
		if i < len(requireFlags) {
			flag = requireFlags[i]
		}
		dep := pkgmeta.Dependency{
			Scope:    "install",
			IsDirect: true,
		}
		if ver == "" {
			dep.Purl, _ = purl.Build("rpm", "", req, "", nil, "")
			dep.IsPinned = false
		} else {
			op := rpmOp(flag)
			dep.ExtractedRequirement = fmt.Sprintf("%s %s %s", req, op, ver)
			dep.Purl, _ = purl.Build("rpm", "", req, ver, nil, "")
			dep.IsPinned = op == "="
		}
		pd.Dependencies = append(pd.Dependencies, dep)
	}

	if pd.Name != "" {
		q := pd.Qualifiers
		pd.Purl, _ = purl.Build("rpm", "", pd.Name, pd.Version, q, "")
	}
	return pd
}

// evrString builds "[epoch:]version-release" via [rpmver.Version.EVR],
// matching the RPM epoch Open Question decision in DESIGN.md: epoch=="0" is
// indistinguishable from a missing epoch, a known limitation inherited
// rather than fixed.
func evrString(epoch int32, version, release string) string {
	v := rpmver.Version{Epoch: fmt.Sprintf("%d", epoch), Version: version, Release: release}
	return v.EVR()
}

func rpmOp(flag int32) string {
	switch {
	case flag&senseEqual != 0 && flag&senseGreater != 0:
		return ">="
	case flag&senseEqual != 0 && flag&senseLess != 0:
		return "<="
	case flag&senseGreater != 0:
		return ">"
	case flag&senseLess != 0:
		return "<"
	case flag&senseEqual != 0:
		return "="
	default:
		return "="
	}
}

// parsePackager splits the common RPM "Name <email>" packager form.
func parsePackager(s string) pkgmeta.Party {
	p := pkgmeta.Party{Role: pkgmeta.RolePackager, Name: s}
	if i := strings.IndexByte(s, '<'); i >= 0 {
		if j := strings.IndexByte(s[i:], '>'); j >= 0 {
			p.Name = strings.TrimSpace(s[:i])
			p.Email = s[i+1 : i+j]
		}
	}
	return p
}

func asString(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case []string:
		if len(x) > 0 {
			return x[0]
		}
	}
	return ""
}

func asStringSlice(v any) []string {
	if x, ok := v.([]string); ok {
		return x
	}
	return nil
}

func asInt32(v any) int32 {
	if x, ok := v.([]int32); ok && len(x) > 0 {
		return x[0]
	}
	return 0
}

func asInt32Slice(v any) []int32 {
	if x, ok := v.([]int32); ok {
		return x
	}
	return nil
}

// sectionEnd reads the 8-byte magic/version/reserved block and the
// il/dl preamble of the RPM header section starting at off, and returns
// the offset immediately following that section, padded up to the next
// multiple of 8 as the format requires.
func sectionEnd(r io.ReaderAt, off int64) (int64, error) {
	var buf [16]byte
	if _, err := r.ReadAt(buf[:], off); err != nil {
		return 0, err
	}
	il := binary.BigEndian.Uint32(buf[8:12])
	dl := binary.BigEndian.Uint32(buf[12:16])
	total := int64(16) + int64(il)*16 + int64(dl)
	if pad := total % 8; pad != 0 {
		total += 8 - pad
	}
	return off + total, nil
}
