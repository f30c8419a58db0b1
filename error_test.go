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
	"strings"
	"testing"

	"zonedtime.dev/zonedtime/internal/assert"
)

func TestErrorFormatting(t *testing.T) {
	t.Parallel()
	assert.Equal(t, NewError(CodeParse, errors.New("")).Error(), CodeParse.String())
	text := errorf(CodeTypeMismatch, "foo").Error()
	assert.True(t, strings.Contains(text, CodeTypeMismatch.String()), assert.Sprintf("error text should include code"))
	assert.True(t, strings.Contains(text, "foo"), assert.Sprintf("error text should include message"))
}

func TestErrorCode(t *testing.T) {
	t.Parallel()
	err := fmt.Errorf("another: %w", errorf(CodeTypeMismatch, "foo"))
	zerr, ok := asError(err)
	assert.True(t, ok)
	assert.Equal(t, zerr.Code(), CodeTypeMismatch)
}

func TestCodeOf(t *testing.T) {
	t.Parallel()
	assert.Equal(t, CodeOf(nil), CodeUnknown)
	assert.Equal(t, CodeOf(errorf(CodeParse, "foo")), CodeParse)
	assert.Equal(t, CodeOf(errors.New("foo")), CodeUnknown)
}

func TestErrorDiagnostics(t *testing.T) {
	t.Parallel()
	plain := errorf(CodeConfiguration, "foo")
	_, ok := plain.Field()
	assert.False(t, ok)
	assert.Equal(t, plain.Input(), "")

	annotated := errorf(CodeParse, "bar").withField(FieldZone).withInput("'x")
	field, ok := annotated.Field()
	assert.True(t, ok)
	assert.Equal(t, field, FieldZone)
	assert.Equal(t, annotated.Input(), "'x")

	index := errIndexOutOfRange(Field(2))
	assert.Equal(t, index.Error(), "index_out_of_range: tuple index out of bounds: 2")
}

func TestWrapIfUncoded(t *testing.T) {
	t.Parallel()
	assert.Nil(t, wrapIfUncoded(CodeParse, nil))
	coded := errorf(CodeTypeMismatch, "foo")
	assert.True(t, wrapIfUncoded(CodeParse, coded) == error(coded))
	base := errors.New("bar")
	wrapped := wrapIfUncoded(CodeParse, base)
	assert.Equal(t, CodeOf(wrapped), CodeParse)
	assert.ErrorIs(t, wrapped, base)
}

func TestCode(t *testing.T) {
	t.Parallel()
	valid := []Code{
		CodeUnknown,
		CodeConfiguration,
		CodeParse,
		CodeTypeMismatch,
		CodeIndexOutOfRange,
	}
	t.Run("round-trip", func(t *testing.T) {
		t.Parallel()
		for _, code := range valid {
			text, err := code.MarshalText()
			assert.Nil(t, err)
			var got Code
			assert.Nil(t, got.UnmarshalText(text))
			assert.Equal(t, got, code)
		}
	})
	t.Run("numeric", func(t *testing.T) {
		t.Parallel()
		var code Code
		assert.Nil(t, code.UnmarshalText([]byte("3")))
		assert.Equal(t, code, CodeTypeMismatch)
	})
	t.Run("out of bounds", func(t *testing.T) {
		t.Parallel()
		_, err := (maxCode + 1).MarshalText()
		assert.NotNil(t, err)
		assert.Equal(t, (maxCode + 1).String(), "code_5")
		var code Code
		assert.NotNil(t, code.UnmarshalText([]byte("99")))
		assert.NotNil(t, code.UnmarshalText([]byte("foobar")))
	})
	t.Run("field names", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, FieldInstant.String(), "instant")
		assert.Equal(t, FieldZone.String(), "zone")
		assert.Equal(t, Field(7).String(), "field(7)")
	})
}
