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

// An Option configures a Codec.
type Option interface {
	applyToCodec(*codecConfig)
}

type codecConfig struct {
	TextAlias    bool
	ReadMaxBytes int
}

type textAliasOption struct{}

// WithTextAlias makes NewCodec accept tuple<timestamp, text> as well as
// tuple<timestamp, varchar>. CQL treats text and varchar as the same type,
// but some schema sources report one and some the other.
func WithTextAlias() Option {
	return &textAliasOption{}
}

func (o *textAliasOption) applyToCodec(cfg *codecConfig) {
	cfg.TextAlias = true
}

type readMaxBytesOption struct {
	Max int
}

// WithReadMaxBytes limits the size of the binary tuples Unmarshal accepts.
// Larger tuples are rejected with CodeTypeMismatch before any component is
// decoded.
//
// Setting WithReadMaxBytes to zero allows any size, which is the default.
func WithReadMaxBytes(n int) Option {
	return &readMaxBytesOption{n}
}

func (o *readMaxBytesOption) applyToCodec(cfg *codecConfig) {
	cfg.ReadMaxBytes = o.Max
}
