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
	"math"
	"strconv"
	"strings"
	"time"

	"zonedtime.dev/zonedtime/internal/wire"
)

// instantLayout renders instants the way FormatField does: ISO-8601 with
// milliseconds, and Z for UTC.
const instantLayout = "2006-01-02T15:04:05.000Z07:00"

// instantGrammar is the ISO-8601 subset accepted for the instant
// component. It's never modified.
var instantGrammar = timestampGrammar{
	dateSeparator:     '-',
	timeDesignator:    'T',
	timeSeparator:     ':',
	fractionMarks:     ".,",
	maxFractionDigits: 9,
	utcDesignator:     'Z',
	minYearDigits:     4,
	maxYearDigits:     9,
}

// timestampGrammar describes date-times of the form
//
//	[±]YYYY-MM-DD[THH[:mm[:ss[.fff]]]][Z|±HH[[:]mm[[:]ss]]]
//
// The year may run past four digits, which is how years after 9999 and
// before 0000 are formatted. Fractions longer than milliseconds are
// truncated.
type timestampGrammar struct {
	dateSeparator     byte
	timeDesignator    byte
	timeSeparator     byte
	fractionMarks     string
	maxFractionDigits int
	utcDesignator     byte
	minYearDigits     int
	maxYearDigits     int
}

// parseMillis returns s as milliseconds since the Unix epoch, applying any
// offset present. Date-times outside the int64 millisecond range are
// rejected.
func (g *timestampGrammar) parseMillis(s string) (int64, bool) {
	r := reader{s: s}
	yearSign := 1
	if r.consume('-') {
		yearSign = -1
	} else {
		r.consume('+')
	}
	year, ok := r.digits(g.minYearDigits, g.maxYearDigits)
	if !ok || !r.consume(g.dateSeparator) {
		return 0, false
	}
	month, ok := r.number(2)
	if !ok || month < 1 || month > 12 || !r.consume(g.dateSeparator) {
		return 0, false
	}
	year *= yearSign
	day, ok := r.number(2)
	if !ok || day < 1 || day > daysIn(time.Month(month), year) {
		return 0, false
	}
	var hour, minute, second, nanos int
	if r.consume(g.timeDesignator) {
		if hour, ok = r.number(2); !ok || hour > 23 {
			return 0, false
		}
		if r.consume(g.timeSeparator) {
			if minute, ok = r.number(2); !ok || minute > 59 {
				return 0, false
			}
			if r.consume(g.timeSeparator) {
				if second, ok = r.number(2); !ok || second > 59 {
					return 0, false
				}
				if r.consumeAny(g.fractionMarks) {
					if nanos, ok = r.fraction(g.maxFractionDigits); !ok {
						return 0, false
					}
				}
			}
		}
	}
	offset := 0
	if !r.done() && !r.consume(g.utcDesignator) {
		if offset, ok = parseOffset(r.rest()); !ok {
			return 0, false
		}
		r.pos = len(r.s)
	}
	if !r.done() {
		return 0, false
	}
	local := time.Date(year, time.Month(month), day, hour, minute, second, 0, time.UTC)
	return unixMillis(local.Unix()-int64(offset), int64(nanos/int(time.Millisecond)))
}

// unixMillis returns secs*1000 + millis for 0 <= millis < 1000, reporting
// false when the result doesn't fit in an int64.
func unixMillis(secs, millis int64) (int64, bool) {
	if secs >= 0 {
		if secs > (math.MaxInt64-millis)/1000 {
			return 0, false
		}
		return secs*1000 + millis, true
	}
	// Step toward zero first so the product can't overflow.
	if secs+1 < math.MinInt64/1000 {
		return 0, false
	}
	whole, borrow := (secs+1)*1000, 1000-millis
	if whole < math.MinInt64+borrow {
		return 0, false
	}
	return whole - borrow, true
}

// parseInstantLiteral implements the instant component's literal grammar:
// one optional layer of quotes, then either a long literal holding
// milliseconds or an ISO-8601 date-time.
func parseInstantLiteral(input string) (int64, error) {
	text := wire.Unquote(input)
	if isLongLiteral(text) {
		millis, err := strconv.ParseInt(text, 10 /* base */, 64 /* bitsize */)
		if err != nil {
			return 0, errorf(CodeParse, "cannot parse timestamp value from %q: %w", input, err).
				withField(FieldInstant).withInput(input)
		}
		return millis, nil
	}
	if millis, ok := instantGrammar.parseMillis(text); ok {
		return millis, nil
	}
	return 0, errorf(CodeParse, "cannot parse timestamp value from %q", input).
		withField(FieldInstant).withInput(input)
}

func formatInstantLiteral(millis int64) string {
	return wire.Quote(time.UnixMilli(millis).UTC().Format(instantLayout))
}

// isLongLiteral reports whether s is an optionally signed run of decimal
// digits.
func isLongLiteral(s string) bool {
	digits := strings.TrimLeft(s, "+-")
	if len(s)-len(digits) > 1 || digits == "" {
		return false
	}
	for i := 0; i < len(digits); i++ {
		if !isDigit(digits[i]) {
			return false
		}
	}
	return true
}

func daysIn(month time.Month, year int) int {
	// Day zero of the following month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// reader walks a string one byte at a time.
type reader struct {
	s   string
	pos int
}

func (r *reader) done() bool {
	return r.pos >= len(r.s)
}

func (r *reader) rest() string {
	return r.s[r.pos:]
}

func (r *reader) consume(c byte) bool {
	if r.pos < len(r.s) && r.s[r.pos] == c {
		r.pos++
		return true
	}
	return false
}

func (r *reader) consumeAny(set string) bool {
	if r.pos < len(r.s) && strings.IndexByte(set, r.s[r.pos]) >= 0 {
		r.pos++
		return true
	}
	return false
}

// number reads exactly width decimal digits.
func (r *reader) number(width int) (int, bool) {
	if len(r.s)-r.pos < width {
		return 0, false
	}
	n := 0
	for i := 0; i < width; i++ {
		c := r.s[r.pos+i]
		if !isDigit(c) {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	r.pos += width
	return n, true
}

// digits reads between minDigits and maxDigits decimal digits.
func (r *reader) digits(minDigits, maxDigits int) (int, bool) {
	start := r.pos
	for r.pos < len(r.s) && r.pos-start < maxDigits && isDigit(r.s[r.pos]) {
		r.pos++
	}
	if r.pos-start < minDigits {
		r.pos = start
		return 0, false
	}
	n := 0
	for i := start; i < r.pos; i++ {
		n = n*10 + int(r.s[i]-'0')
	}
	return n, true
}

// fraction reads between one and maxDigits digits as nanoseconds.
func (r *reader) fraction(maxDigits int) (int, bool) {
	start := r.pos
	for r.pos < len(r.s) && isDigit(r.s[r.pos]) {
		r.pos++
	}
	digits := r.pos - start
	if digits == 0 || digits > maxDigits {
		return 0, false
	}
	nanos := 0
	for i := start; i < r.pos; i++ {
		nanos = nanos*10 + int(r.s[i]-'0')
	}
	for ; digits < 9; digits++ {
		nanos *= 10
	}
	return nanos, true
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
