// SPDX-License-Identifier: MIT
// Package: sicrate/scenario
//
// complex.go — YAML encoding of complex entries.
//
// Accepted forms:
//
//	1.5          real number
//	"1-2i"       strconv.ParseComplex syntax
//	{re: 1, im: -2}

package scenario

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Complex is a complex128 with YAML support.
type Complex complex128

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Complex) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if f, err := strconv.ParseFloat(node.Value, 64); err == nil {
			*c = Complex(complex(f, 0))
			return nil
		}
		z, err := strconv.ParseComplex(node.Value, 128)
		if err != nil {
			return fmt.Errorf("line %d: %q: %w", node.Line, node.Value, ErrBadEntry)
		}
		*c = Complex(z)

		return nil

	case yaml.MappingNode:
		re, im, err := parts(node)
		if err != nil {
			return err
		}
		*c = Complex(complex(re, im))

		return nil
	}

	return fmt.Errorf("line %d: unsupported node kind: %w", node.Line, ErrBadEntry)
}

// parts reads a {re, im} mapping. Keys other than re/im and repeated keys are
// errors; a missing key is zero.
func parts(node *yaml.Node) (re, im float64, err error) {
	if len(node.Content)%2 != 0 {
		return 0, 0, fmt.Errorf("line %d: malformed mapping: %w", node.Line, ErrBadEntry)
	}
	seen := make(map[string]bool, 2)
	for k := 0; k < len(node.Content); k += 2 {
		key, val := node.Content[k], node.Content[k+1]
		if seen[key.Value] {
			return 0, 0, fmt.Errorf("line %d: duplicate key %q: %w", key.Line, key.Value, ErrBadEntry)
		}
		seen[key.Value] = true

		var f float64
		if err = val.Decode(&f); err != nil {
			return 0, 0, fmt.Errorf("line %d: %w: %w", val.Line, ErrBadEntry, err)
		}
		switch key.Value {
		case "re":
			re = f
		case "im":
			im = f
		default:
			return 0, 0, fmt.Errorf("line %d: unknown key %q: %w", key.Line, key.Value, ErrBadEntry)
		}
	}

	return re, im, nil
}

// MarshalYAML implements yaml.Marshaler using the {re, im} form.
func (c Complex) MarshalYAML() (interface{}, error) {
	return map[string]float64{"re": real(c), "im": imag(c)}, nil
}
