// Package pin holds the small cross-ecosystem "is this requirement a
// single concrete version" helpers every structured-text decoder needs
// (§4.2.1 step 3). Each decoder still applies its own ecosystem-specific
// wrapper around these, since what counts as a range operator differs
// slightly (npm's caret vs. cargo's caret-by-default, for instance), but
// the semver-shape check at the bottom is shared.
package pin

import (
	"strings"

	"github.com/Masterminds/semver"
)

// LooksSemver reports whether s parses as a semver-shaped version, used
// by decoders that need to distinguish a concrete version token from an
// opaque identifier (npm "x.y.z" vs. a git hash, pnpm's peer-hash
// stripping per the §9 Open Question).
func LooksSemver(s string) bool {
	_, err := semver.NewVersion(strings.TrimPrefix(s, "v"))
	return err == nil
}

// NPMPinned implements the npm/yarn/pnpm pinning rule (§4.2.1 step 3):
// an exact "x.y.z" with no operator, no range, no wildcard.
func NPMPinned(req string) bool {
	req = strings.TrimSpace(req)
	if req == "" || req == "*" || req == "latest" {
		return false
	}
	for _, r := range []string{"^", "~", ">", "<", "=", " ", "||", "-", "x", "X", "*"} {
		if r == "=" {
			continue // handled below
		}
		if strings.Contains(req, r) {
			return false
		}
	}
	if strings.HasPrefix(req, "workspace:") || strings.HasPrefix(req, "file:") ||
		strings.HasPrefix(req, "link:") || strings.HasPrefix(req, "git") {
		return false
	}
	return LooksSemver(req)
}

// CargoPinned implements cargo's "=x.y.z" exact-pin rule; bare "x.y.z"
// in cargo is a caret range by default and is NOT pinned.
func CargoPinned(req string) bool {
	req = strings.TrimSpace(req)
	return strings.HasPrefix(req, "=") && LooksSemver(strings.TrimPrefix(req, "="))
}

// PEPPinned implements the Python "==x.y.z" / "=x.y.z" exact-pin rule.
func PEPPinned(req string) bool {
	req = strings.TrimSpace(req)
	switch {
	case strings.HasPrefix(req, "=="):
		req = strings.TrimPrefix(req, "==")
	case strings.HasPrefix(req, "="):
		req = strings.TrimPrefix(req, "=")
	default:
		return false
	}
	req = strings.TrimSpace(req)
	return req != "" && !strings.ContainsAny(req, ",*")
}

// MavenPinned reports whether a Maven/Gradle coordinate version is an
// exact coordinate (no range brackets, no "+", no property placeholder).
func MavenPinned(version string) bool {
	version = strings.TrimSpace(version)
	if version == "" {
		return false
	}
	if strings.ContainsAny(version, "[](),+") {
		return false
	}
	if strings.Contains(version, "$") {
		return false
	}
	return true
}
