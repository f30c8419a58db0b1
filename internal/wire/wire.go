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

// Package wire holds the primitive CQL codecs that the zoned-time codec
// delegates to: the 64-bit integer used by bigint and timestamp columns, and
// the UTF-8 string used by varchar columns, along with CQL string quoting.
package wire

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ProtocolVersion is the native protocol version negotiated with the
// server. The primitive codecs in this package encode the same way under
// every version; it's threaded through so that callers never have to
// special-case it.
type ProtocolVersion uint8

const (
	ProtocolV1 ProtocolVersion = 1
	ProtocolV2 ProtocolVersion = 2
	ProtocolV3 ProtocolVersion = 3
	ProtocolV4 ProtocolVersion = 4
	ProtocolV5 ProtocolVersion = 5

	// ProtocolNewest is the highest version this package knows about.
	ProtocolNewest = ProtocolV5
)

func (v ProtocolVersion) String() string {
	return fmt.Sprintf("v%d", uint8(v))
}

// ErrInvalidLength is wrapped by decode errors for payloads of the wrong
// size.
var ErrInvalidLength = errors.New("invalid payload length")

// ErrInvalidUTF8 is wrapped by decode errors for varchar payloads that
// aren't valid UTF-8.
var ErrInvalidUTF8 = errors.New("invalid UTF-8")

// ErrNotQuoted is wrapped by errors from ParseVarchar.
var ErrNotQuoted = errors.New("text values must be enclosed by single quotes")

const bigIntSize = 8

// EncodeBigInt encodes n as an 8-byte big-endian two's complement integer.
func EncodeBigInt(n int64, _ ProtocolVersion) []byte {
	buf := make([]byte, bigIntSize)
	binary.BigEndian.PutUint64(buf, uint64(n))
	return buf
}

// DecodeBigInt decodes an 8-byte big-endian integer. An empty payload
// decodes to zero, the same as a CQL null.
func DecodeBigInt(data []byte, _ ProtocolVersion) (int64, error) {
	switch len(data) {
	case 0:
		return 0, nil
	case bigIntSize:
		return int64(binary.BigEndian.Uint64(data)), nil
	default:
		return 0, fmt.Errorf(
			"%w: expecting %d bytes for a 64-bit integer, got %d",
			ErrInvalidLength, bigIntSize, len(data),
		)
	}
}

// EncodeVarchar returns the UTF-8 bytes of s.
func EncodeVarchar(s string, _ ProtocolVersion) []byte {
	return []byte(s)
}

// DecodeVarchar decodes UTF-8 bytes into a string.
func DecodeVarchar(data []byte, _ ProtocolVersion) (string, error) {
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w in varchar payload %q", ErrInvalidUTF8, data)
	}
	return string(data), nil
}

// FormatVarchar renders s as a quoted CQL string literal.
func FormatVarchar(s string) string {
	return Quote(s)
}

// ParseVarchar parses a quoted CQL string literal. The second return value
// is false for a CQL null (an empty literal or NULL in any case).
func ParseVarchar(literal string) (string, bool, error) {
	if literal == "" || strings.EqualFold(literal, "NULL") {
		return "", false, nil
	}
	if !IsQuoted(literal) {
		return "", false, fmt.Errorf("%w: %s", ErrNotQuoted, literal)
	}
	return Unquote(literal), true, nil
}

// Quote wraps s in single quotes, doubling any single quotes inside it.
func Quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// IsQuoted reports whether s begins and ends with a single quote.
func IsQuoted(s string) bool {
	return len(s) >= 2 && s[0] == '\'' && s[len(s)-1] == '\''
}

// Unquote removes one layer of enclosing single quotes and collapses
// doubled quotes. Strings that aren't quoted are returned unchanged.
func Unquote(s string) string {
	if !IsQuoted(s) {
		return s
	}
	return strings.ReplaceAll(s[1:len(s)-1], "''", "'")
}
