package rng

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/tenkai-lang/prelude/pkg/errs"
)

type rangeDoc[T any] struct {
	Variant string `yaml:"variant"`
	Start   *T     `yaml:"start"`
	End     *T     `yaml:"end"`
}

// MarshalYAML encodes r as a mapping with the keys variant, start and end.
func (r Range[T]) MarshalYAML() (any, error) {
	if !r.variant.valid() {
		return nil, errs.BadValue{
			What: "range variant", Valid: "one of the four variants", Actual: r.variant.String()}
	}
	return rangeDoc[T]{variantInfos[r.variant].key, &r.start, &r.end}, nil
}

// UnmarshalYAML decodes a mapping written by MarshalYAML.
func (r *Range[T]) UnmarshalYAML(node *yaml.Node) error {
	var doc rangeDoc[T]
	if err := node.Decode(&doc); err != nil {
		return err
	}
	v, ok := parseVariant(doc.Variant)
	if !ok {
		return fmt.Errorf("line %d: %w", node.Line, errs.BadValue{
			What:   "range variant",
			Valid:  "closed, open, left-open or right-open",
			Actual: doc.Variant})
	}
	if doc.Start == nil || doc.End == nil {
		return fmt.Errorf("line %d: %w", node.Line, errs.BadValue{
			What: "range", Valid: "a mapping with start and end", Actual: "missing endpoint"})
	}
	*r = New(v, *doc.Start, *doc.End)
	return nil
}

func parseVariant(key string) (Variant, bool) {
	for v, info := range variantInfos {
		if info.key == key {
			return Variant(v), true
		}
	}
	return 0, false
}

// MarshalYAML encodes c as a one-character string.
func (c Char) MarshalYAML() (any, error) { return c.String(), nil }

// UnmarshalYAML decodes a one-character string.
func (c *Char) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	r, ok := onlyRune(s)
	if !ok {
		return fmt.Errorf("line %d: %w", node.Line, errs.BadValue{
			What: "character", Valid: "a single character", Actual: fmt.Sprintf("%q", s)})
	}
	*c = Char(r)
	return nil
}
