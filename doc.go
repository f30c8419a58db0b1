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

// Package zonedtime stores timezone-aware instants in CQL columns of type
// tuple<timestamp, varchar>.
//
// CQL's timestamp type holds only milliseconds since the Unix epoch, so the
// zone a value was observed in is normally lost. A Codec keeps the zone ID in
// the varchar component instead, and restores it on the way back out. It
// handles all four representations of a value: the binary tuple, per-field
// binary components, the tuple literal, and per-field literals.
//
// Field-level operations take a Field, either FieldInstant or FieldZone, and
// decoding builds up a Partial one field at a time, in any order. The
// whole-value operations (Marshal, Unmarshal, Format and Parse) drive the
// field-level ones in ascending field order.
package zonedtime
