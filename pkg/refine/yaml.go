package refine

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalYAML encodes n as an integer.
func (n Nat) MarshalYAML() (any, error) { return n.n, nil }

// UnmarshalYAML decodes an integer and validates it as a Nat.
func (n *Nat) UnmarshalYAML(node *yaml.Node) error {
	var raw int
	if err := node.Decode(&raw); err != nil {
		return err
	}
	v, err := TryNewNat(raw).Unwrap()
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*n = v
	return nil
}

// MarshalYAML encodes b as a boolean.
func (b Bool) MarshalYAML() (any, error) { return b.Truth(), nil }

// UnmarshalYAML decodes a boolean, or the integer 0 or 1.
func (b *Bool) UnmarshalYAML(node *yaml.Node) error {
	var raw any
	if err := node.Decode(&raw); err != nil {
		return err
	}
	v, err := BoolFrom(raw).Unwrap()
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*b = v
	return nil
}
