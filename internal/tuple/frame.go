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

// Package tuple frames CQL tuple values. A tuple is a fixed-arity list of
// components; each component is encoded by its own codec, and this package
// joins the encoded components into one value.
//
// In the binary form, each component is prefixed by its length as a
// big-endian int32, with -1 marking a null component. In the literal form,
// components are separated by commas and enclosed in parentheses.
package tuple

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

const prefixSize = 4

// ErrMalformed is wrapped by every framing error.
var ErrMalformed = errors.New("malformed tuple")

// Join concatenates length-prefixed components. A nil component is written
// as a null.
func Join(components [][]byte) ([]byte, error) {
	size := 0
	for i, component := range components {
		if len(component) > math.MaxInt32 {
			return nil, fmt.Errorf("%w: component %d is %d bytes, larger than an int32 prefix allows", ErrMalformed, i, len(component))
		}
		size += prefixSize + len(component)
	}
	buf := make([]byte, 0, size)
	for _, component := range components {
		prefix := [prefixSize]byte{}
		if component == nil {
			binary.BigEndian.PutUint32(prefix[:], math.MaxUint32) // int32(-1)
		} else {
			binary.BigEndian.PutUint32(prefix[:], uint32(len(component)))
		}
		buf = append(buf, prefix[:]...)
		buf = append(buf, component...)
	}
	return buf, nil
}

// Split reads length-prefixed components from data. Null components are
// returned as nil. Data may hold fewer than arity components, but never
// more.
func Split(data []byte, arity int) ([][]byte, error) {
	var components [][]byte
	for offset := 0; offset < len(data); {
		if len(components) >= arity {
			return nil, fmt.Errorf("%w: too many components, expecting %d", ErrMalformed, arity)
		}
		if len(data)-offset < prefixSize {
			return nil, fmt.Errorf(
				"%w: incomplete length prefix for component %d: %d of %d bytes",
				ErrMalformed, len(components), len(data)-offset, prefixSize,
			)
		}
		size := int32(binary.BigEndian.Uint32(data[offset : offset+prefixSize]))
		offset += prefixSize
		if size < 0 {
			components = append(components, nil)
			continue
		}
		if int(size) > len(data)-offset {
			return nil, fmt.Errorf(
				"%w: promised %d bytes for component %d, got %d bytes",
				ErrMalformed, size, len(components), len(data)-offset,
			)
		}
		components = append(components, data[offset:offset+int(size):offset+int(size)])
		offset += int(size)
	}
	return components, nil
}
