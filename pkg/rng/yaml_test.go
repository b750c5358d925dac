package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/tenkai-lang/prelude/pkg/errs"
	"github.com/tenkai-lang/prelude/pkg/refine"
)

func TestYAML_IntRange(t *testing.T) {
	data, err := yaml.Marshal(RightOpen[Int](0, 5))
	require.NoError(t, err)
	assert.Equal(t, "variant: right-open\nstart: 0\nend: 5\n", string(data))

	var r Range[Int]
	require.NoError(t, yaml.Unmarshal(data, &r))
	assert.Equal(t, RightOpen[Int](0, 5), r)
}

func TestYAML_CharRange(t *testing.T) {
	data, err := yaml.Marshal(Closed[Char]('a', 'd'))
	require.NoError(t, err)
	assert.Equal(t, "variant: closed\nstart: a\nend: d\n", string(data))

	var r Range[Char]
	require.NoError(t, yaml.Unmarshal(data, &r))
	assert.Equal(t, Closed[Char]('a', 'd'), r)
}

func TestYAML_NatRangeValidatesEndpoints(t *testing.T) {
	var r Range[refine.Nat]
	require.NoError(t, yaml.Unmarshal([]byte("variant: open\nstart: 1\nend: 4\n"), &r))
	assert.Equal(t, "1<..<4", r.String())

	err := yaml.Unmarshal([]byte("variant: open\nstart: -1\nend: 4\n"), &r)
	assert.ErrorContains(t, err, "Nat can't be negative")
}

func TestYAML_Errors(t *testing.T) {
	var r Range[Int]
	err := yaml.Unmarshal([]byte("variant: half\nstart: 0\nend: 1\n"), &r)
	assert.ErrorAs(t, err, new(errs.BadValue))
	assert.EqualError(t, err,
		"line 1: bad value: range variant must be closed, open, left-open or right-open, but is half")

	err = yaml.Unmarshal([]byte("variant: closed\nstart: 0\n"), &r)
	assert.ErrorAs(t, err, new(errs.BadValue))

	var c Range[Char]
	err = yaml.Unmarshal([]byte("variant: closed\nstart: ab\nend: d\n"), &c)
	assert.ErrorContains(t, err, "character must be a single character")

	_, err = yaml.Marshal(New[Int](Variant(9), 0, 1))
	assert.ErrorAs(t, err, new(errs.BadValue))
}
