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
	"zonedtime.dev/zonedtime/internal/tuple"
	"zonedtime.dev/zonedtime/internal/wire"
)

// ProtocolVersion is the CQL native protocol version in use. The codec
// passes it through to the primitive codecs untouched.
type ProtocolVersion = wire.ProtocolVersion

const (
	ProtocolV1 = wire.ProtocolV1
	ProtocolV2 = wire.ProtocolV2
	ProtocolV3 = wire.ProtocolV3
	ProtocolV4 = wire.ProtocolV4
	ProtocolV5 = wire.ProtocolV5
)

// A Codec maps Instants to and from CQL tuple<timestamp, varchar> values,
// keeping the zone ID in the varchar component so that it survives storage
// in a column type that only holds milliseconds.
//
// Literals produced by Format look like
//
//	('2010-06-30T01:20:47.999Z','Europe/Paris')
//
// The timestamp component is always rendered in UTC with milliseconds, which
// Cassandra versions before 2.0.9 can't parse.
//
// A Codec is immutable and safe for concurrent use.
type Codec struct {
	shape  TupleType
	config codecConfig
	driver *tuple.Driver[Instant, Partial]
}

// NewCodec returns a Codec for values of the given tuple type, which must be
// tuple<timestamp, varchar>. Any other type is rejected with
// CodeConfiguration.
func NewCodec(shape TupleType, options ...Option) (*Codec, error) {
	var config codecConfig
	for _, opt := range options {
		opt.applyToCodec(&config)
	}
	if err := validateShape(shape, config.TextAlias); err != nil {
		return nil, err
	}
	codec := &Codec{shape: NewTupleType(shape.components...), config: config}
	codec.driver = tuple.NewDriver[Instant, Partial](fieldCount, fieldHooks{})
	return codec, nil
}

// Type returns the tuple type the codec was constructed with.
func (c *Codec) Type() TupleType {
	if c == nil {
		return TupleType{}
	}
	return c.shape
}

// EncodeField encodes one component of v: the instant as a 64-bit integer,
// or the zone ID as UTF-8.
func (c *Codec) EncodeField(v Instant, field Field, version ProtocolVersion) ([]byte, error) {
	if err := c.checkUsable(); err != nil {
		return nil, err
	}
	return encodeField(v, field, version)
}

// DecodeField decodes one component and adds it to p. Errors from the
// primitive codecs are returned unchanged; zone IDs that can't be resolved
// are reported with CodeTypeMismatch.
func (c *Codec) DecodeField(input []byte, field Field, p Partial, version ProtocolVersion) (Partial, error) {
	if err := c.checkUsable(); err != nil {
		return p, err
	}
	return decodeField(input, field, p, version)
}

// FormatField renders one component of v as a quoted CQL literal.
func (c *Codec) FormatField(v Instant, field Field) (string, error) {
	if err := c.checkUsable(); err != nil {
		return "", err
	}
	return formatField(v, field)
}

// ParseField parses one component's literal and adds it to p.
//
// The instant may be quoted or bare, and is either milliseconds since the
// epoch or an ISO-8601 date-time; text made only of digits is always read as
// milliseconds. The zone must be a quoted string; 'Z' means UTC.
func (c *Codec) ParseField(input string, field Field, p Partial) (Partial, error) {
	if err := c.checkUsable(); err != nil {
		return p, err
	}
	return parseField(input, field, p)
}

// Marshal encodes v as a binary tuple. A nil v encodes as a CQL null, which
// is a nil slice.
func (c *Codec) Marshal(v *Instant, version ProtocolVersion) ([]byte, error) {
	if err := c.checkUsable(); err != nil {
		return nil, err
	}
	if v == nil {
		return nil, nil
	}
	data, err := c.driver.Serialize(*v, version)
	if err != nil {
		return nil, wrapIfUncoded(CodeTypeMismatch, err)
	}
	return data, nil
}

// Unmarshal decodes a binary tuple. Empty input is a CQL null and decodes to
// nil. Tuples missing the zone component decode in UTC.
func (c *Codec) Unmarshal(data []byte, version ProtocolVersion) (*Instant, error) {
	if err := c.checkUsable(); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}
	if limit := c.config.ReadMaxBytes; limit > 0 && len(data) > limit {
		return nil, errorf(CodeTypeMismatch, "tuple size %d is larger than configured max %d", len(data), limit)
	}
	p, err := c.driver.Deserialize(data, Partial{}, version)
	if err != nil {
		return nil, wrapIfUncoded(CodeTypeMismatch, err)
	}
	return complete(p)
}

// Format renders v as a tuple literal. A nil v formats as NULL.
func (c *Codec) Format(v *Instant) (string, error) {
	if err := c.checkUsable(); err != nil {
		return "", err
	}
	if v == nil {
		return "NULL", nil
	}
	literal, err := c.driver.Format(*v)
	if err != nil {
		return "", wrapIfUncoded(CodeParse, err)
	}
	return literal, nil
}

// Parse parses a tuple literal such as ('2010-06-30T01:20:47.999Z','UTC').
// NULL and empty input parse to nil.
func (c *Codec) Parse(literal string) (*Instant, error) {
	if err := c.checkUsable(); err != nil {
		return nil, err
	}
	if tuple.IsNullLiteral(literal) {
		return nil, nil
	}
	p, err := c.driver.Parse(literal, Partial{})
	if err != nil {
		if zerr, ok := asError(err); ok {
			return nil, zerr
		}
		return nil, NewError(CodeParse, err).withInput(literal)
	}
	return complete(p)
}

func (c *Codec) checkUsable() error {
	if c == nil || c.driver == nil {
		return errUnusable()
	}
	return nil
}

func complete(p Partial) (*Instant, error) {
	switch p.State() {
	case PartialEmpty:
		return nil, nil
	case PartialZoneOnly:
		return nil, errorf(CodeTypeMismatch, "tuple has a zone but no instant")
	}
	v, _ := p.Instant()
	return &v, nil
}

func encodeField(v Instant, field Field, version ProtocolVersion) ([]byte, error) {
	switch field {
	case FieldInstant:
		return wire.EncodeBigInt(v.millis, version), nil
	case FieldZone:
		return wire.EncodeVarchar(v.zone.ID(), version), nil
	}
	return nil, errIndexOutOfRange(field)
}

func decodeField(input []byte, field Field, p Partial, version ProtocolVersion) (Partial, error) {
	switch field {
	case FieldInstant:
		millis, err := wire.DecodeBigInt(input, version)
		if err != nil {
			return p, err
		}
		return p.WithMillis(millis), nil
	case FieldZone:
		if input == nil {
			// A null zone leaves the value in UTC.
			return p, nil
		}
		id, err := wire.DecodeVarchar(input, version)
		if err != nil {
			return p, err
		}
		zone, err := LoadZone(id)
		if err != nil {
			return p, withField(err, FieldZone)
		}
		return p.WithZone(zone), nil
	}
	return p, errIndexOutOfRange(field)
}

func formatField(v Instant, field Field) (string, error) {
	switch field {
	case FieldInstant:
		return formatInstantLiteral(v.millis), nil
	case FieldZone:
		return wire.FormatVarchar(v.zone.ID()), nil
	}
	return "", errIndexOutOfRange(field)
}

func parseField(input string, field Field, p Partial) (Partial, error) {
	switch field {
	case FieldInstant:
		millis, err := parseInstantLiteral(input)
		if err != nil {
			return p, err
		}
		return p.WithMillis(millis), nil
	case FieldZone:
		id, ok, err := wire.ParseVarchar(input)
		if err != nil {
			return p, errorf(CodeParse, "cannot parse zone value from %q: %w", input, err).
				withField(FieldZone).withInput(input)
		}
		if !ok {
			return p, nil
		}
		if id == "Z" {
			return p.WithZone(UTC), nil
		}
		zone, err := LoadZone(id)
		if err != nil {
			return p, withField(err, FieldZone)
		}
		return p.WithZone(zone), nil
	}
	return p, errIndexOutOfRange(field)
}

func withField(err error, field Field) error {
	if zerr, ok := asError(err); ok {
		zerr.withField(field)
	}
	return err
}

// fieldHooks adapts the codec to the tuple driver, which addresses
// components by index.
type fieldHooks struct{}

var _ tuple.Fields[Instant, Partial] = fieldHooks{}

func (h fieldHooks) SerializeField(v Instant, index int, version wire.ProtocolVersion) ([]byte, error) {
	return encodeField(v, Field(index), version)
}

func (h fieldHooks) DeserializeField(input []byte, p Partial, index int, version wire.ProtocolVersion) (Partial, error) {
	return decodeField(input, Field(index), p, version)
}

func (h fieldHooks) FormatField(v Instant, index int) (string, error) {
	return formatField(v, Field(index))
}

func (h fieldHooks) ParseField(input string, p Partial, index int) (Partial, error) {
	return parseField(input, Field(index), p)
}
