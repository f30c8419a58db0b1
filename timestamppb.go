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
	"google.golang.org/protobuf/types/known/timestamppb"
)

// Timestamp converts v to a protobuf Timestamp. The zone isn't part of a
// Timestamp, so it's dropped.
func (v Instant) Timestamp() *timestamppb.Timestamp {
	return timestamppb.New(v.Time())
}

// InstantFromTimestamp converts a protobuf Timestamp to an Instant observed
// in zone. Precision below a millisecond is dropped. Nil and out-of-range
// timestamps are rejected with CodeTypeMismatch.
func InstantFromTimestamp(ts *timestamppb.Timestamp, zone Zone) (Instant, error) {
	if err := ts.CheckValid(); err != nil {
		return Instant{}, errorf(CodeTypeMismatch, "invalid timestamp: %w", err)
	}
	return InstantOf(ts.AsTime(), zone), nil
}
