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

import "time"

// An Instant is a point in time together with the zone it was observed in.
// The instant itself is always milliseconds since the Unix epoch in UTC; the
// zone only affects how it's displayed.
//
// The zero Instant is the Unix epoch in UTC.
type Instant struct {
	millis int64
	zone   Zone
}

// NewInstant returns the instant millis milliseconds after the Unix epoch,
// observed in zone.
func NewInstant(millis int64, zone Zone) Instant {
	return Instant{millis: millis, zone: zone}
}

// InstantOf converts t to an Instant observed in zone. Precision below a
// millisecond is dropped; t's own location is ignored.
func InstantOf(t time.Time, zone Zone) Instant {
	return Instant{millis: t.UnixMilli(), zone: zone}
}

// Millis returns milliseconds since the Unix epoch.
func (v Instant) Millis() int64 {
	return v.millis
}

// Zone returns the zone the instant was observed in.
func (v Instant) Zone() Zone {
	return v.zone
}

// Time returns the instant as a time.Time in its zone.
func (v Instant) Time() time.Time {
	return time.UnixMilli(v.millis).In(v.zone.Location())
}

// WithZone returns a copy of v observed in another zone. The instant itself
// doesn't change.
func (v Instant) WithZone(zone Zone) Instant {
	v.zone = zone
	return v
}

// Equal reports whether v and other are the same instant. Zones are
// ignored: they record where a value came from, not a different time.
func (v Instant) Equal(other Instant) bool {
	return v.millis == other.millis
}

func (v Instant) String() string {
	return v.Time().Format(instantLayout) + "[" + v.zone.ID() + "]"
}
