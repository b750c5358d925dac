package vers

import (
	"slices"
	"testing"

	"github.com/Masterminds/semver/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tenkai-lang/prelude/pkg/must"
	"github.com/tenkai-lang/prelude/pkg/rng"
	"github.com/tenkai-lang/prelude/pkg/vals"
)

func v(s string) Version { return must.Get(Parse(s)) }

func strs(vs []Version) []string {
	ss := make([]string, len(vs))
	for i, v := range vs {
		ss[i] = v.String()
	}
	return ss
}

func TestParse(t *testing.T) {
	assert.True(t, Parse("1.2.3").IsOk())
	assert.Equal(t, "1.2.0", v("v1.2").String())

	r := Parse("not-a-version")
	require.False(t, r.IsOk())
	assert.Contains(t, r.Err().Message, `invalid version "not-a-version"`)
}

func TestCompareAndIncrement(t *testing.T) {
	assert.Negative(t, v("1.2.3").Compare(v("1.10.0")))
	assert.Zero(t, v("1.2.3").Compare(v("v1.2.3")))
	assert.Negative(t, v("1.0.0-alpha").Compare(v("1.0.0")))

	assert.Equal(t, "1.2.4", v("1.2.3").Incremented().String())
	assert.Equal(t, "1.0.0", v("1.0.0-rc.1").Incremented().String())
	assert.True(t, v("1.2.3").Equal(v("v1.2.3")))
	assert.False(t, v("1.2.3").Equal(Version{}))
	assert.False(t, v("1.2.3").Equal("1.2.3"))
}

func TestZeroVersion(t *testing.T) {
	var zero Version
	assert.Negative(t, zero.Compare(v("0.0.0")))
	assert.Positive(t, v("0.0.0").Compare(zero))
	assert.Zero(t, zero.Compare(Version{}))
	assert.Equal(t, zero, zero.Incremented())
	assert.True(t, zero.Equal(Version{}))

	ok, err := zero.Satisfies(">= 0")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRange(t *testing.T) {
	r := rng.RightOpen(v("1.2.1"), v("1.2.4"))
	assert.Equal(t, []string{"1.2.1", "1.2.2", "1.2.3"}, strs(slices.Collect(r.All())))
	assert.Equal(t, "1.2.1..<1.2.4", r.String())

	assert.True(t, r.Contains(v("1.2.2")))
	assert.True(t, r.Contains(v("1.2.3-beta")))
	assert.False(t, r.Contains(v("1.2.4")))

	assert.True(t, r.ContainsValue("1.2.2"))
	assert.False(t, r.ContainsValue("garbage"))
	assert.False(t, r.ContainsValue(3))
}

func TestContains(t *testing.T) {
	ok, err := vals.Contains("1.4.2", Type)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = vals.Contains("one", Type)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = vals.Contains("1.2.3", rng.Closed(v("1.0.0"), v("2.0.0")))
	require.NoError(t, err)
	assert.True(t, ok)

	// Versions compare by precedence, not by their original text.
	ok, err = vals.Contains(v("1.2.3"), []Version{v("v1.2.3")})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = vals.Contains(Version{}, rng.Closed(v("1.0.0"), v("2.0.0")))
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = vals.Contains(Version{}, rng.Closed(Version{}, v("2.0.0")))
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = vals.Contains(Version{}, Type)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFrom(t *testing.T) {
	assert.True(t, From(v("1.0.0")).IsOk())
	assert.True(t, From(v("1.0.0").Semver()).IsOk())
	assert.True(t, From("2.0.0").IsOk())
	assert.Equal(t, "Version can't be constructed from int", From(1).Err().Message)
	assert.False(t, From(Version{}).IsOk())
	assert.False(t, From((*semver.Version)(nil)).IsOk())
}

func TestSatisfies(t *testing.T) {
	ok, err := v("1.2.3").Satisfies(">= 1.2, < 2")
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = v("1.2.3").Satisfies("not a constraint")
	assert.ErrorContains(t, err, "invalid constraint")
}
