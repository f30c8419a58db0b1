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
	"time"
)

const utcID = "UTC"

// maxOffset bounds fixed offsets, in seconds, to what an ID of the form
// ±HH:MM:SS can carry.
const maxOffset = 24*3600 - 1

// UTC is the zone with ID "UTC". It's also what the zero Zone means.
var UTC = Zone{id: utcID, loc: time.UTC}

// A Zone is a resolved zone ID: either an IANA name such as Europe/Paris, a
// fixed offset such as -07:00, or UTC. Zones are compared by ID.
type Zone struct {
	id  string
	loc *time.Location
}

// LoadZone resolves a zone ID. It accepts "UTC", fixed offsets of the form
// ±HH, ±HHMM, ±HH:MM or ±HH:MM:SS, and names from the IANA time zone
// database. Offsets are normalized to ±HH:MM (or ±HH:MM:SS), and a zero
// offset resolves to UTC.
//
// An ID that can't be resolved is reported with CodeTypeMismatch; LoadZone
// never falls back to UTC.
func LoadZone(id string) (Zone, error) {
	switch {
	case id == utcID:
		return UTC, nil
	case id == "" || id == "Local":
		// time.LoadLocation maps these to UTC and the host's zone.
		return Zone{}, errUnknownZone(id, nil)
	case id[0] == '+' || id[0] == '-':
		offset, ok := parseOffset(id)
		if !ok {
			return Zone{}, errUnknownZone(id, nil)
		}
		return FixedZone(offset), nil
	}
	loc, err := time.LoadLocation(id)
	if err != nil {
		return Zone{}, errUnknownZone(id, err)
	}
	return Zone{id: id, loc: loc}, nil
}

// FixedZone returns a zone with a constant offset from UTC, in seconds. It
// panics if the offset is a full day or more in either direction, since
// LoadZone couldn't resolve the resulting ID.
func FixedZone(offsetSeconds int) Zone {
	if offsetSeconds > maxOffset || offsetSeconds < -maxOffset {
		panic(fmt.Sprintf("zonedtime: fixed zone offset %ds out of range", offsetSeconds))
	}
	if offsetSeconds == 0 {
		return UTC
	}
	id := formatOffset(offsetSeconds)
	return Zone{id: id, loc: time.FixedZone(id, offsetSeconds)}
}

// ID returns the zone's identifier.
func (z Zone) ID() string {
	if z.id == "" {
		return utcID
	}
	return z.id
}

// Location returns the zone as a *time.Location.
func (z Zone) Location() *time.Location {
	if z.loc == nil {
		return time.UTC
	}
	return z.loc
}

// Equal reports whether both zones have the same ID.
func (z Zone) Equal(other Zone) bool {
	return z.ID() == other.ID()
}

func (z Zone) String() string {
	return z.ID()
}

func errUnknownZone(id string, cause error) *Error {
	if cause != nil {
		return errorf(CodeTypeMismatch, "unknown zone ID %q: %w", id, cause).withInput(id)
	}
	return errorf(CodeTypeMismatch, "unknown zone ID %q", id).withInput(id)
}

// parseOffset parses ±HH[[:]MM[[:]SS]] into seconds east of UTC.
func parseOffset(s string) (int, bool) {
	if len(s) < 3 {
		return 0, false
	}
	sign := 1
	switch s[0] {
	case '+':
	case '-':
		sign = -1
	default:
		return 0, false
	}
	r := reader{s: s, pos: 1}
	hours, ok := r.number(2)
	if !ok || hours > 23 {
		return 0, false
	}
	var minutes, seconds int
	if !r.done() {
		r.consume(':')
		if minutes, ok = r.number(2); !ok || minutes > 59 {
			return 0, false
		}
	}
	if !r.done() {
		r.consume(':')
		if seconds, ok = r.number(2); !ok || seconds > 59 {
			return 0, false
		}
	}
	if !r.done() {
		return 0, false
	}
	return sign * (hours*3600 + minutes*60 + seconds), true
}

func formatOffset(offsetSeconds int) string {
	sign := '+'
	if offsetSeconds < 0 {
		sign = '-'
		offsetSeconds = -offsetSeconds
	}
	hours, minutes, seconds := offsetSeconds/3600, offsetSeconds/60%60, offsetSeconds%60
	if seconds != 0 {
		return fmt.Sprintf("%c%02d:%02d:%02d", sign, hours, minutes, seconds)
	}
	return fmt.Sprintf("%c%02d:%02d", sign, hours, minutes)
}
