// Package vers provides semantic versions as range endpoints, so that
// intervals of releases such as 1.2.0..<1.3.0 can be tested and walked patch
// by patch.
package vers

import (
	"fmt"

	"github.com/Masterminds/semver/v3"

	"github.com/tenkai-lang/prelude/pkg/result"
	"github.com/tenkai-lang/prelude/pkg/rng"
	"github.com/tenkai-lang/prelude/pkg/vals"
)

// Version is a semantic version. Values are obtained from Parse; the zero
// Version is not valid.
type Version struct {
	v *semver.Version
}

var (
	_ rng.Endpoint[Version] = Version{}
	_ rng.Coercer[Version]  = Version{}
	_ vals.Equaler          = Version{}
)

// Type is the descriptor of Version, for use with vals.Contains. Strings are
// validated with Parse.
var Type = vals.NewType("Version", From)

// Parse validates s as a semantic version. A leading "v" and missing minor or
// patch components are accepted.
func Parse(s string) result.Result[Version] {
	v, err := semver.NewVersion(s)
	if err != nil {
		return result.Errf[Version]("invalid version %q: %v", s, err)
	}
	return result.Ok(Version{v})
}

// From validates an arbitrary value as a Version. It accepts Versions,
// *semver.Version values and strings.
func From(v any) result.Result[Version] {
	switch v := v.(type) {
	case Version:
		if v.v == nil {
			break
		}
		return result.Ok(v)
	case *semver.Version:
		if v == nil {
			break
		}
		return result.Ok(Version{v})
	case string:
		return Parse(v)
	}
	return result.Errf[Version]("Version can't be constructed from %s", vals.Kind(v))
}

// Compare orders versions by semantic version precedence. The zero Version
// sorts before every valid one.
func (v Version) Compare(w Version) int {
	switch {
	case v.v == nil && w.v == nil:
		return 0
	case v.v == nil:
		return -1
	case w.v == nil:
		return 1
	}
	return v.v.Compare(w.v)
}

// Incremented returns the next patch release. For a pre-release, that is the
// release it precedes. The zero Version is its own successor.
func (v Version) Incremented() Version {
	if v.v == nil {
		return v
	}
	next := v.v.IncPatch()
	return Version{&next}
}

// Coerce validates v as a Version, as From does.
func (Version) Coerce(v any) (Version, bool) { return From(v).Value() }

// Equal implements vals.Equaler. It reports whether other is a Version with
// the same precedence as v.
func (v Version) Equal(other any) bool {
	w, ok := other.(Version)
	if !ok {
		return false
	}
	if v.v == nil || w.v == nil {
		return v.v == w.v
	}
	return v.v.Equal(w.v)
}

// Semver returns the underlying *semver.Version.
func (v Version) Semver() *semver.Version { return v.v }

func (v Version) Kind() string { return "Version" }

func (v Version) String() string {
	if v.v == nil {
		return "<invalid version>"
	}
	return v.v.String()
}

// Satisfies reports whether v meets a constraint such as ">= 1.2, < 2".
func (v Version) Satisfies(constraint string) (bool, error) {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, fmt.Errorf("invalid constraint: %w", err)
	}
	return v.v != nil && c.Check(v.v), nil
}
