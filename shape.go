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
	"strings"
)

// A DataType is a CQL primitive type, identified by its native protocol
// option ID.
type DataType uint16

const (
	DataTypeASCII     DataType = 0x0001
	DataTypeBigInt    DataType = 0x0002
	DataTypeBlob      DataType = 0x0003
	DataTypeBoolean   DataType = 0x0004
	DataTypeCounter   DataType = 0x0005
	DataTypeDecimal   DataType = 0x0006
	DataTypeDouble    DataType = 0x0007
	DataTypeFloat     DataType = 0x0008
	DataTypeInt       DataType = 0x0009
	DataTypeText      DataType = 0x000A
	DataTypeTimestamp DataType = 0x000B
	DataTypeUUID      DataType = 0x000C
	DataTypeVarchar   DataType = 0x000D
	DataTypeVarint    DataType = 0x000E
	DataTypeTimeUUID  DataType = 0x000F
	DataTypeInet      DataType = 0x0010
	DataTypeDate      DataType = 0x0011
	DataTypeTime      DataType = 0x0012
	DataTypeSmallInt  DataType = 0x0013
	DataTypeTinyInt   DataType = 0x0014
)

var dataTypeNames = map[DataType]string{
	DataTypeASCII:     "ascii",
	DataTypeBigInt:    "bigint",
	DataTypeBlob:      "blob",
	DataTypeBoolean:   "boolean",
	DataTypeCounter:   "counter",
	DataTypeDecimal:   "decimal",
	DataTypeDouble:    "double",
	DataTypeFloat:     "float",
	DataTypeInt:       "int",
	DataTypeText:      "text",
	DataTypeTimestamp: "timestamp",
	DataTypeUUID:      "uuid",
	DataTypeVarchar:   "varchar",
	DataTypeVarint:    "varint",
	DataTypeTimeUUID:  "timeuuid",
	DataTypeInet:      "inet",
	DataTypeDate:      "date",
	DataTypeTime:      "time",
	DataTypeSmallInt:  "smallint",
	DataTypeTinyInt:   "tinyint",
}

func (t DataType) String() string {
	if name, ok := dataTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("DataType(0x%04x)", uint16(t))
}

// A TupleType is the declared component layout of a CQL tuple. It's
// immutable.
type TupleType struct {
	components []DataType
}

// ZonedTimeType is the only tuple type a Codec accepts.
var ZonedTimeType = NewTupleType(DataTypeTimestamp, DataTypeVarchar)

// NewTupleType returns a tuple type with the given components, in order.
func NewTupleType(components ...DataType) TupleType {
	return TupleType{components: append([]DataType(nil), components...)}
}

// Components returns a copy of the component types.
func (t TupleType) Components() []DataType {
	return append([]DataType(nil), t.components...)
}

func (t TupleType) String() string {
	names := make([]string, len(t.components))
	for i, component := range t.components {
		names[i] = component.String()
	}
	return "tuple<" + strings.Join(names, ", ") + ">"
}

// validateShape rejects every tuple type except tuple<timestamp, varchar>.
func validateShape(shape TupleType, textAlias bool) error {
	components := shape.components
	if len(components) == fieldCount &&
		components[FieldInstant] == DataTypeTimestamp &&
		(components[FieldZone] == DataTypeVarchar || (textAlias && components[FieldZone] == DataTypeText)) {
		return nil
	}
	return errorf(CodeConfiguration, "expected %v, got %v", ZonedTimeType, shape).withInput(shape.String())
}
