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
	"errors"
	"fmt"
)

// An Error captures a Code, the underlying Go error, and, for errors raised
// while handling a single field, the field and the raw input involved.
//
// Functions in this package return errors that can be cast to an *Error
// with errors.As, except for errors propagated unchanged from the primitive
// wire codecs; CodeOf reports those as CodeUnknown.
type Error struct {
	code     Code
	err      error
	field    Field
	hasField bool
	input    string
}

// NewError annotates any Go error with a Code.
func NewError(c Code, underlying error) *Error {
	return &Error{code: c, err: underlying}
}

func (e *Error) Error() string {
	text := e.err.Error()
	if text == "" {
		return e.code.String()
	}
	return e.code.String() + ": " + text
}

// Unwrap allows errors.Is and errors.As access to the underlying error.
func (e *Error) Unwrap() error {
	return e.err
}

// Code returns the error's code.
func (e *Error) Code() Code {
	return e.code
}

// Field returns the field being processed when the error occurred. The
// second return value is false for errors not tied to a single field.
func (e *Error) Field() (Field, bool) {
	return e.field, e.hasField
}

// Input returns the raw text or identifier that couldn't be processed, if
// any.
func (e *Error) Input() string {
	return e.input
}

// CodeOf returns the error's code if it is or wraps an *Error and
// CodeUnknown otherwise.
func CodeOf(err error) Code {
	if zerr, ok := asError(err); ok {
		return zerr.Code()
	}
	return CodeUnknown
}

// errorf calls fmt.Errorf with the supplied template and arguments, then wraps
// the resulting error.
func errorf(c Code, template string, args ...any) *Error {
	return NewError(c, fmt.Errorf(template, args...))
}

func (e *Error) withField(f Field) *Error {
	e.field = f
	e.hasField = true
	return e
}

func (e *Error) withInput(input string) *Error {
	e.input = input
	return e
}

func asError(err error) (*Error, bool) {
	var zerr *Error
	ok := errors.As(err, &zerr)
	return zerr, ok
}

// wrapIfUncoded leaves errors that already carry a code unchanged and wraps
// everything else with the supplied code.
func wrapIfUncoded(c Code, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := asError(err); ok {
		return err
	}
	return NewError(c, err)
}

func errIndexOutOfRange(f Field) *Error {
	return errorf(CodeIndexOutOfRange, "tuple index out of bounds: %d", int(f)).withField(f)
}

func errUnusable() *Error {
	return errorf(CodeConfiguration, "codec wasn't constructed with NewCodec")
}
