package lshw

import (
	"errors"
	"slices"
)

// ErrEmptyProperty is returned when constructing a Property from an empty
// value sequence, which the construction contract forbids.
var ErrEmptyProperty = errors.New("lshw: property requires at least one value")

// Property wraps the one-or-many values of a single named node property as an
// ordered, non-empty sequence. A Property is immutable after construction and
// holds its own copy of the values.
type Property struct {
	values []string
}

// NewProperty builds a Property from one or more values. The signature makes
// an empty sequence unrepresentable.
func NewProperty(first string, rest ...string) *Property {
	values := make([]string, 0, 1+len(rest))
	values = append(values, first)
	values = append(values, rest...)
	return &Property{values: values}
}

// PropertyOf builds a Property from a value slice. It fails fast with
// ErrEmptyProperty on an empty slice.
func PropertyOf(values []string) (*Property, error) {
	if len(values) == 0 {
		return nil, ErrEmptyProperty
	}
	return &Property{values: slices.Clone(values)}, nil
}

// Values returns the full ordered value sequence. The returned slice is a
// copy; mutating it does not affect the Property.
func (p *Property) Values() []string {
	return slices.Clone(p.values)
}

// First returns the value at index 0, which construction guarantees exists.
func (p *Property) First() string {
	return p.values[0]
}

// At returns the value at index i. The second return is false when i is out
// of range; an out-of-range index is a lookup miss, not an error.
func (p *Property) At(i int) (string, bool) {
	if i < 0 || i >= len(p.values) {
		return "", false
	}
	return p.values[i], true
}

// Len returns the number of values.
func (p *Property) Len() int {
	return len(p.values)
}
