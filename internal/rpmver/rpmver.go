// Package rpmver parses and compares RPM's NEVRA/NEVR/EVR version
// strings, the version scheme decoder/rpmarchive and
// decoder/rpminstalled both report for installed and archived RPM
// packages.
package rpmver

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Version holds the decomposed fields of an RPM NEVRA/NEVR/EVR/EVRA
// string: name and architecture are optional since not every form of
// the string carries them, while epoch/version/release are always
// present once parsed.
//
// [Version.String] renders the fully-qualified form (name-EVR.arch,
// using whichever of name/arch are set); [Version.EVR] renders just
// the epoch:version-release portion used for comparison and display
// when the package name is already known from context.
type Version struct {
	Name         *string
	Architecture *string
	Epoch        string
	Version      string
	Release      string
}

// evr writes the epoch:version-release form into b, omitting the epoch
// prefix when it's the implicit zero epoch or empty.
func (v *Version) evr(b *strings.Builder) {
	if v.Epoch != "0" && v.Epoch != "" {
		b.WriteString(v.Epoch)
		b.WriteByte(':')
	}
	b.WriteString(v.Version)
	b.WriteByte('-')
	b.WriteString(v.Release)
}

// String implements [fmt.Stringer].
func (v *Version) String() string {
	var b strings.Builder
	if v.Name != nil {
		b.WriteString(*v.Name)
		b.WriteByte('-')
	}
	v.evr(&b)
	if v.Architecture != nil {
		b.WriteByte('.')
		b.WriteString(*v.Architecture)
	}

	return b.String()
}

// UnmarshalText implements [encoding.TextUnmarshaler].
//
// A nil receiver is tolerated and just parses text for validation;
// there's no pointer to fill in that case.
func (v *Version) UnmarshalText(text []byte) (err error) {
	if v == nil {
		v = new(Version)
	}
	*v, err = Parse(string(text))
	return err
}

// MarshalText implements [encoding.TextMarshaler].
func (v *Version) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// IsZero reports true if the receiver is a zero-valued [Version].
func (v *Version) IsZero() bool {
	return v.Name == nil && v.Architecture == nil && v.Epoch == "" && v.Version == "" && v.Release == ""
}

// EVR returns the epoch:version-release string, without name or
// architecture.
func (v *Version) EVR() string {
	var b strings.Builder
	v.evr(&b)
	return b.String()
}

// Parse decomposes an RPM NEVRA/NEVR/EVR/EVRA string into a Version,
// reporting an error if it doesn't have at least a version-release pair.
func Parse(v string) (Version, error) {
	ret := Version{
		Epoch: "0",
	}
	switch strings.Count(v, "-") {
	case 0:
		// Can't be `version-release` with no hyphen at all.
		return Version{}, fmt.Errorf("rpmver: %s: missing separators", v)
	case 1:
		// `version-release(.arch)`, no name present.
	default:
		// `name-version-release(.arch)`: the name is everything before the
		// second-to-last hyphen.
		i := strings.LastIndexByte(v, '-')
		i = strings.LastIndexByte(v[:i], '-')
		// i can't be -1 here since the count above guaranteed >= 2 hyphens.
		name := v[:i]
		ret.Name = &name
		v = v[i+1:]
	}
	ev, ra, _ := strings.Cut(v, "-")

	ret.Version = ev
	if e, v, ok := strings.Cut(ev, ":"); ok {
		if e != "" {
			ret.Epoch = e
		}
		ret.Version = v
	}

	ret.Release = ra
	if idx := strings.LastIndexByte(ra, '.'); idx != -1 {
		a := ra[idx:]
		if _, ok := architectures[a]; ok {
			arch := a[1:]
			ret.Architecture = &arch
			ret.Release = ra[:idx]
		}
	}

	return ret, nil
}

// architectures is the set of recognized RPM architecture suffixes.
// There's no syntactic way to tell an arch tag apart from an ordinary
// trailing release segment, so this package has to know the finite set
// of strings RPM actually uses as architectures.
var architectures = map[string]struct{}{
	".aarch64": {},
	".i686":    {},
	".noarch":  {},
	".ppc64le": {},
	".riscv":   {},
	".s390x":   {},
	".src":     {},
	".x86_64":  {},
}

// cmp names the three-way comparison outcomes so the stringer-generated
// output reads as "<"/"=="/">" in test failures. [Compare] still returns
// plain int since every caller of it expects that, not this type.
type cmp int

//go:generate go run golang.org/x/tools/cmd/stringer -type cmp -linecomment -output cmp_string_test.go

const (
	cmpLT cmp = iota - 1 // <
	cmpEQ                // ==
	cmpGT                // >
)

// Compare orders two Versions, comparing name, then epoch, version, and
// release via RPM's own segment-comparison rules, then architecture.
// Negative means a sorts before b, positive the reverse, zero equal.
func Compare(a, b *Version) int {
	if cmp := comparePtr(a.Name, b.Name); cmp != 0 {
		return cmp
	}

	if cmp := rpmvercmp(a.Epoch, b.Epoch); cmp != 0 {
		return cmp
	}

	if cmp := rpmvercmp(a.Version, b.Version); cmp != 0 {
		return cmp
	}

	if cmp := rpmvercmp(a.Release, b.Release); cmp != 0 {
		return cmp
	}

	if cmp := comparePtr(a.Architecture, b.Architecture); cmp != 0 {
		return cmp
	}

	return int(cmpEQ)
}

// comparePtr compares two optional string fields (name or architecture),
// treating a missing value as sorting before a present one.
func comparePtr(a, b *string) int {
	switch {
	case a == nil && b == nil:
		return int(cmpEQ)
	case a != nil && b == nil:
		return int(cmpGT)
	case a == nil && b != nil:
		return int(cmpLT)
	default:
	}
	return rpmvercmp(*a, *b)
}

// rpmvercmp compares a single RPM version segment pair (either two
// epochs, two versions, or two releases) using RPM's alternating
// alpha/numeric segment comparison, with '~' sorting before and '^'
// sorting after everything else.
//
// Ported from rpm's own rpmio/rpmvercmp.cc; deviating from that
// algorithm's quirks (such as the documented "arbitrary" case below)
// would make comparisons disagree with rpm itself on real packages.
//
//	 1: a is newer than b
//	 0: a and b are the same version
//	-1: b is newer than a
func rpmvercmp(a, b string) int {
	// Easy comparison to see if versions are identical.
	if a == b {
		return 0
	}

	// Loop through each version segment of a and b and compare them.
	for {
		a = strings.TrimLeftFunc(a, rpmSeparatorTrim)
		b = strings.TrimLeftFunc(b, rpmSeparatorTrim)

		// Handle the tilde separator; it sorts before everything else.
		switch {
		case strings.HasPrefix(a, "~") && strings.HasPrefix(b, "~"):
			a = a[1:]
			b = b[1:]
		case strings.HasPrefix(a, "~") && !strings.HasPrefix(b, "~"):
			return -1
		case !strings.HasPrefix(a, "~") && strings.HasPrefix(b, "~"):
			return 1
		}

		// Handle caret separator. Concept is the same as tilde, except that if
		// one of the strings ends (base version), the other is considered as
		// higher version.
		switch {
		case strings.HasPrefix(a, "^") && strings.HasPrefix(b, "^"):
			a = a[1:]
			b = b[1:]
		case a == "" && strings.HasPrefix(b, "^"):
			return -1
		case strings.HasPrefix(a, "^") && b == "":
			return 1
		case strings.HasPrefix(a, "^") && !strings.HasPrefix(b, "^"):
			return -1
		case !strings.HasPrefix(a, "^") && strings.HasPrefix(b, "^"):
			return 1
		}

		// If we ran to the end of either, we are finished with the loop.
		if a == "" || b == "" {
			break
		}

		// Grab first completely alpha or completely numeric segment.
		//
		// Have aSeg and bSeg point to the start of the alpha or numeric segment
		// and walk a and b to end of segment.
		r, _ := utf8.DecodeRuneInString(a)
		isnum := isDigit(r)
		var aSeg, bSeg string
		if isnum {
			aSeg, a = splitFunc(a, isDigit)
			bSeg, b = splitFunc(b, isDigit)
		} else {
			aSeg, a = splitFunc(a, isAlpha)
			bSeg, b = splitFunc(b, isAlpha)
		}

		switch {
		// This cannot happen, as we previously tested to make sure that the
		// first string has a non-null segment.
		case aSeg == "":
			return -1 // Called out as arbitrary in C implementation.

		// Take care of the case where the two version segments are different
		// types: one numeric, the other alpha (i.e. empty). Numeric segments
		// are always newer than alpha segments.
		//
		// XXX See patch #60884 (and details) from bugzilla #50977. (RPM project)
		case bSeg == "" && !isnum:
			return -1
		case bSeg == "" && isnum:
			return 1
		}

		if isnum {
			// This used to be done by converting the digit segments to ints
			// using atoi(). It's changed because long digit segments can
			// overflow an int. This should fix that.

			// Throw away any leading zeros - it's a number, right?
			aSeg = strings.TrimLeft(aSeg, "0")
			bSeg = strings.TrimLeft(bSeg, "0")

			// Whichever number has more digits wins.
			switch {
			case len(aSeg) > len(bSeg):
				return 1
			case len(aSeg) < len(bSeg):
				return -1
			}
		}

		// Strcmp will return which one is greater, even if the two segments are
		// alpha or if they are numeric. Don't return if they are equal because
		// there might be more segments to compare.
		if cmp := strings.Compare(aSeg, bSeg); cmp != 0 {
			return cmp
		}
	}

	switch {
	// This catches the case where all numeric and alpha segments have compared
	// identically but the segment separating characters were different.
	case a == "" && b == "":
		return 0

	// Whichever version still has characters left over wins.
	case a != "" && b == "":
		return 1
	case a == "" && b != "":
		return -1

	// Unreachable:
	case a != "" && b != "":
	}
	panic("unreachable")
}

// rpmSeparatorTrim reports whether r is a separator rune that carries no
// ordering meaning of its own (everything except alphanumerics and the
// special '~'/'^' markers).
func rpmSeparatorTrim(r rune) bool {
	return !isAlnum(r) && r != '~' && r != '^'
}

// splitFunc splits s at the first rune for which f is false, returning
// the matching prefix and the remainder.
func splitFunc(s string, f func(rune) bool) (string, string) {
	i := strings.IndexFunc(s, func(r rune) bool { return !f(r) })
	if i == -1 {
		return s, ""
	}
	return s[:i], s[i:]
}

func isAlpha(r rune) bool { return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' }

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isAlnum(r rune) bool { return isAlpha(r) || isDigit(r) }
