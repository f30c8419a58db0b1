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

import "fmt"

// A Field names one component of the tuple<timestamp, varchar> value. Field
// values double as component indexes.
type Field int

const (
	// FieldInstant is the timestamp component: milliseconds since the Unix
	// epoch.
	FieldInstant Field = 0
	// FieldZone is the varchar component: the zone ID.
	FieldZone Field = 1

	fieldCount = 2
)

func (f Field) String() string {
	switch f {
	case FieldInstant:
		return "instant"
	case FieldZone:
		return "zone"
	}
	return fmt.Sprintf("field(%d)", int(f))
}
