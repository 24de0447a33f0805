package utils

import (
	"strings"

	"golang.org/x/mod/semver"
)

// CanonicalVersion returns v in the "vMAJOR.MINOR.PATCH" form understood by
// golang.org/x/mod/semver. Peers report bare versions such as "0.3.51", so a
// missing "v" prefix is added. The result is empty if v is not valid semver.
func CanonicalVersion(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return semver.Canonical(v)
}

// VersionAtLeast reports whether v is a valid version not lower than min.
// An invalid v or min is never at least anything.
func VersionAtLeast(v, min string) bool {
	cv, cmin := CanonicalVersion(v), CanonicalVersion(min)
	if cv == "" || cmin == "" {
		return false
	}
	return semver.Compare(cv, cmin) >= 0
}
