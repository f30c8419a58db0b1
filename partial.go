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

// PartialState describes which fields of a Partial are known.
type PartialState uint8

const (
	PartialEmpty PartialState = iota
	PartialInstantOnly
	PartialZoneOnly
	PartialComplete
)

func (s PartialState) String() string {
	switch s {
	case PartialEmpty:
		return "empty"
	case PartialInstantOnly:
		return "instant only"
	case PartialZoneOnly:
		return "zone only"
	case PartialComplete:
		return "complete"
	}
	return fmt.Sprintf("PartialState(%d)", uint8(s))
}

// A Partial is an Instant under construction. DecodeField and ParseField
// each add one field and return a new Partial; fields may arrive in either
// order, and a field that's already known is only ever replaced by the same
// field.
//
// The zero Partial is empty.
type Partial struct {
	millis    int64
	zone      Zone
	hasMillis bool
	hasZone   bool
}

// PartialOf returns a complete Partial holding v.
func PartialOf(v Instant) Partial {
	return Partial{millis: v.millis, zone: v.zone, hasMillis: true, hasZone: true}
}

// State reports which fields are known.
func (p Partial) State() PartialState {
	switch {
	case p.hasMillis && p.hasZone:
		return PartialComplete
	case p.hasMillis:
		return PartialInstantOnly
	case p.hasZone:
		return PartialZoneOnly
	}
	return PartialEmpty
}

// WithMillis returns a copy of p with the instant set.
func (p Partial) WithMillis(millis int64) Partial {
	p.millis = millis
	p.hasMillis = true
	return p
}

// WithZone returns a copy of p with the zone set.
func (p Partial) WithZone(zone Zone) Partial {
	p.zone = zone
	p.hasZone = true
	return p
}

// Millis returns the instant, if known.
func (p Partial) Millis() (int64, bool) {
	return p.millis, p.hasMillis
}

// Zone returns the zone, if known.
func (p Partial) Zone() (Zone, bool) {
	if !p.hasZone {
		return Zone{}, false
	}
	return p.zone, true
}

// Instant returns the value built so far. It's available as soon as the
// instant is known; until a zone arrives, the zone is UTC.
func (p Partial) Instant() (Instant, bool) {
	if !p.hasMillis {
		return Instant{}, false
	}
	zone := UTC
	if p.hasZone {
		zone = p.zone
	}
	return Instant{millis: p.millis, zone: zone}, true
}
