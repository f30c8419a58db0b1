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

package tuple

import (
	"fmt"
	"strings"
)

// FormatLiteral encloses already-formatted components in parentheses.
func FormatLiteral(components []string) string {
	return "(" + strings.Join(components, ",") + ")"
}

// IsNullLiteral reports whether literal denotes a null tuple: empty, or NULL
// in any case.
func IsNullLiteral(literal string) bool {
	trimmed := strings.TrimSpace(literal)
	return trimmed == "" || strings.EqualFold(trimmed, "NULL")
}

// SplitLiteral splits a tuple literal such as ('a',1) into its raw component
// texts, without interpreting them. Whitespace around components is
// dropped. Quoted components may contain commas, parentheses and doubled
// quotes; bracketed components may nest.
func SplitLiteral(literal string, arity int) ([]string, error) {
	s := scanner{input: literal}
	s.skipSpaces()
	if err := s.expect('('); err != nil {
		return nil, err
	}
	s.skipSpaces()
	var components []string
	if s.peek() == ')' {
		s.pos++
		return components, s.expectEnd()
	}
	for {
		if len(components) >= arity {
			return nil, s.errorf("too many components, expecting %d", arity)
		}
		component, err := s.value()
		if err != nil {
			return nil, err
		}
		components = append(components, component)
		s.skipSpaces()
		switch s.peek() {
		case ',':
			s.pos++
			s.skipSpaces()
		case ')':
			s.pos++
			return components, s.expectEnd()
		default:
			return nil, s.unexpected("',' or ')'")
		}
	}
}

type scanner struct {
	input string
	pos   int
}

func (s *scanner) peek() byte {
	if s.pos >= len(s.input) {
		return 0
	}
	return s.input[s.pos]
}

func (s *scanner) skipSpaces() {
	for s.pos < len(s.input) && isSpace(s.input[s.pos]) {
		s.pos++
	}
}

func (s *scanner) expect(c byte) error {
	if s.peek() != c {
		return s.unexpected(fmt.Sprintf("'%c'", c))
	}
	s.pos++
	return nil
}

func (s *scanner) expectEnd() error {
	s.skipSpaces()
	if s.pos < len(s.input) {
		return s.errorf("unexpected trailing text %q", s.input[s.pos:])
	}
	return nil
}

// value consumes one component and returns its raw text.
func (s *scanner) value() (string, error) {
	start := s.pos
	switch c := s.peek(); {
	case c == '\'':
		if err := s.skipQuoted(); err != nil {
			return "", err
		}
	case c == '(' || c == '[' || c == '{':
		if err := s.skipBracketed(); err != nil {
			return "", err
		}
	default:
		for s.pos < len(s.input) {
			c := s.input[s.pos]
			if c == ',' || c == ')' || isSpace(c) {
				break
			}
			s.pos++
		}
	}
	if s.pos == start {
		return "", s.unexpected("a component")
	}
	return s.input[start:s.pos], nil
}

func (s *scanner) skipQuoted() error {
	start := s.pos
	s.pos++ // opening quote
	for s.pos < len(s.input) {
		if s.input[s.pos] != '\'' {
			s.pos++
			continue
		}
		if s.pos+1 < len(s.input) && s.input[s.pos+1] == '\'' {
			s.pos += 2
			continue
		}
		s.pos++
		return nil
	}
	return fmt.Errorf("%w: cannot parse tuple value from %q, unterminated quote at character %d", ErrMalformed, s.input, start)
}

func (s *scanner) skipBracketed() error {
	start := s.pos
	var stack []byte
	for s.pos < len(s.input) {
		switch c := s.input[s.pos]; c {
		case '\'':
			if err := s.skipQuoted(); err != nil {
				return err
			}
			continue
		case '(', '[', '{':
			stack = append(stack, closerOf(c))
		case ')', ']', '}':
			if len(stack) == 0 || stack[len(stack)-1] != c {
				return s.errorf("mismatched '%c'", c)
			}
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				s.pos++
				return nil
			}
		}
		s.pos++
	}
	return fmt.Errorf("%w: cannot parse tuple value from %q, unclosed bracket at character %d", ErrMalformed, s.input, start)
}

func (s *scanner) unexpected(want string) error {
	if s.pos >= len(s.input) {
		return s.errorf("expecting %s but got end of input", want)
	}
	return s.errorf("expecting %s but got '%c'", want, s.input[s.pos])
}

func (s *scanner) errorf(template string, args ...any) error {
	return fmt.Errorf(
		"%w: cannot parse tuple value from %q, at character %d %s",
		ErrMalformed, s.input, s.pos, fmt.Sprintf(template, args...),
	)
}

func closerOf(c byte) byte {
	switch c {
	case '(':
		return ')'
	case '[':
		return ']'
	default:
		return '}'
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
