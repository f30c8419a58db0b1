// Copyright 2026 The zonedtime Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package tuple

import (
	"zonedtime.dev/zonedtime/internal/wire"
)

// Fields are the per-component hooks a Driver calls. T is the whole value
// type; A is the accumulator that decode and parse build up one component
// at a time.
type Fields[T, A any] interface {
	SerializeField(value T, index int, version wire.ProtocolVersion) ([]byte, error)
	DeserializeField(input []byte, acc A, index int, version wire.ProtocolVersion) (A, error)
	FormatField(value T, index int) (string, error)
	ParseField(input string, acc A, index int) (A, error)
}

// A Driver handles whole tuple values, calling its Fields once per
// component in ascending index order. Null handling is left to the caller.
type Driver[T, A any] struct {
	arity  int
	fields Fields[T, A]
}

// NewDriver returns a Driver for tuples with the given number of
// components.
func NewDriver[T, A any](arity int, fields Fields[T, A]) *Driver[T, A] {
	return &Driver[T, A]{arity: arity, fields: fields}
}

// Arity returns the number of components in the tuple.
func (d *Driver[T, A]) Arity() int {
	return d.arity
}

// Serialize encodes every component of value and frames the result.
func (d *Driver[T, A]) Serialize(value T, version wire.ProtocolVersion) ([]byte, error) {
	components := make([][]byte, d.arity)
	for i := range components {
		component, err := d.fields.SerializeField(value, i, version)
		if err != nil {
			return nil, err
		}
		components[i] = component
	}
	return Join(components)
}

// Deserialize splits data into components and folds them into acc.
func (d *Driver[T, A]) Deserialize(data []byte, acc A, version wire.ProtocolVersion) (A, error) {
	components, err := Split(data, d.arity)
	if err != nil {
		return acc, err
	}
	for i, component := range components {
		acc, err = d.fields.DeserializeField(component, acc, i, version)
		if err != nil {
			return acc, err
		}
	}
	return acc, nil
}

// Format formats every component of value into a tuple literal.
func (d *Driver[T, A]) Format(value T) (string, error) {
	components := make([]string, d.arity)
	for i := range components {
		component, err := d.fields.FormatField(value, i)
		if err != nil {
			return "", err
		}
		components[i] = component
	}
	return FormatLiteral(components), nil
}

// Parse splits a tuple literal into components and folds them into acc.
func (d *Driver[T, A]) Parse(literal string, acc A) (A, error) {
	components, err := SplitLiteral(literal, d.arity)
	if err != nil {
		return acc, err
	}
	for i, component := range components {
		acc, err = d.fields.ParseField(component, acc, i)
		if err != nil {
			return acc, err
		}
	}
	return acc, nil
}
