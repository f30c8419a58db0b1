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

package zonedtime

import (
	"fmt"
	"strconv"
)

// A Code classifies an *Error. Only the codes enumerated below are valid.
type Code uint32

const (
	// CodeUnknown marks errors that weren't produced by this package, such
	// as those propagated unchanged from the primitive wire codecs.
	CodeUnknown Code = 0

	// CodeConfiguration means the codec was constructed for a tuple type
	// other than tuple<timestamp, varchar>, or was never constructed at all.
	CodeConfiguration Code = 1

	// CodeParse means a literal didn't match any accepted grammar.
	CodeParse Code = 2

	// CodeTypeMismatch means input was well-formed but couldn't be turned
	// into a value: an unknown zone ID, or a malformed binary tuple.
	CodeTypeMismatch Code = 3

	// CodeIndexOutOfRange means a field operation was called with a Field
	// other than FieldInstant or FieldZone. It always indicates a bug in
	// the caller.
	CodeIndexOutOfRange Code = 4

	minCode = CodeUnknown
	maxCode = CodeIndexOutOfRange
)

var strToCode = map[string]Code{
	"unknown":            CodeUnknown,
	"configuration":      CodeConfiguration,
	"parse":              CodeParse,
	"type_mismatch":      CodeTypeMismatch,
	"index_out_of_range": CodeIndexOutOfRange,
}

func (c Code) String() string {
	switch c {
	case CodeUnknown:
		return "unknown"
	case CodeConfiguration:
		return "configuration"
	case CodeParse:
		return "parse"
	case CodeTypeMismatch:
		return "type_mismatch"
	case CodeIndexOutOfRange:
		return "index_out_of_range"
	}
	return fmt.Sprintf("code_%d", uint32(c))
}

// MarshalText implements encoding.TextMarshaler. Codes are marshaled as
// their names.
func (c Code) MarshalText() ([]byte, error) {
	if c < minCode || c > maxCode {
		return nil, fmt.Errorf("invalid code %d", uint32(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts the names
// produced by MarshalText and numeric codes.
func (c *Code) UnmarshalText(b []byte) error {
	if code, ok := strToCode[string(b)]; ok {
		*c = code
		return nil
	}
	n, err := strconv.ParseUint(string(b), 10 /* base */, 32 /* bitsize */)
	if err != nil {
		return fmt.Errorf("invalid code %q", string(b))
	}
	code := Code(n)
	if code < minCode || code > maxCode {
		return fmt.Errorf("invalid code %d", n)
	}
	*c = code
	return nil
}
