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

package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"zonedtime.dev/zonedtime"
	"zonedtime.dev/zonedtime/internal/assert"
)

const parisFrame = "00000008000001298603447f0000000c4575726f70652f5061726973"

func runForTest(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	err := run(args, stdout, stderr)
	return stdout.String(), stderr.String(), err
}

func TestEncode(t *testing.T) {
	t.Parallel()
	stdout, _, err := runForTest(t, "encode", "('2010-06-30T01:20:47.999+02:00','Europe/Paris')")
	assert.Nil(t, err)
	assert.Equal(t, stdout, parisFrame+"\n")

	stdout, _, err = runForTest(t, "encode", "NULL")
	assert.Nil(t, err)
	assert.Equal(t, stdout, "NULL\n")
}

func TestDecode(t *testing.T) {
	t.Parallel()
	stdout, _, err := runForTest(t, "decode", "0x"+parisFrame)
	assert.Nil(t, err)
	assert.Equal(t, stdout, "('2010-06-29T23:20:47.999Z','Europe/Paris')\n")

	_, _, err = runForTest(t, "decode", "abc")
	assert.NotNil(t, err)

	_, _, err = runForTest(t, "--max-bytes", "8", "decode", parisFrame)
	assert.Equal(t, zonedtime.CodeOf(err), zonedtime.CodeTypeMismatch)
}

func TestNormalize(t *testing.T) {
	t.Parallel()
	stdout, _, err := runForTest(t, "normalize", "( 0 , 'Z' )")
	assert.Nil(t, err)
	assert.Equal(t, stdout, "('1970-01-01T00:00:00.000Z','UTC')\n")

	_, _, err = runForTest(t, "normalize", "(0,'Not/AZone')")
	assert.Equal(t, zonedtime.CodeOf(err), zonedtime.CodeTypeMismatch)
}

func TestNow(t *testing.T) {
	// Replaces the package-level clock, so this test can't run in parallel.
	original := now
	t.Cleanup(func() { now = original })
	now = func() time.Time { return time.UnixMilli(1277853647999) }

	stdout, _, err := runForTest(t, "now", "--zone", "-07:00")
	assert.Nil(t, err)
	assert.Equal(t, stdout, "('2010-06-29T23:20:47.999Z','-07:00')\n")
}

func TestVerbose(t *testing.T) {
	t.Parallel()
	_, stderr, err := runForTest(t, "-v", "normalize", "(5,'UTC')")
	assert.Nil(t, err)
	assert.True(t, strings.Contains(stderr, "parsed literal"), assert.Sprintf("stderr: %s", stderr))
	assert.True(t, strings.Contains(stderr, "millis=5"), assert.Sprintf("stderr: %s", stderr))
}

func TestUsageErrors(t *testing.T) {
	t.Parallel()
	_, _, err := runForTest(t)
	assert.NotNil(t, err)
	_, _, err = runForTest(t, "frobnicate")
	assert.Match(t, err.Error(), `unknown command`)
	_, _, err = runForTest(t, "encode")
	assert.Match(t, err.Error(), `exactly one argument`)
	_, _, err = runForTest(t, "now", "extra")
	assert.NotNil(t, err)
	_, _, err = runForTest(t, "--no-such-flag")
	assert.NotNil(t, err)

	stdout, stderr, err := runForTest(t, "--help")
	assert.Nil(t, err)
	assert.Equal(t, stdout, "")
	assert.True(t, strings.Contains(stderr, "Usage:"))

	stdout, _, err = runForTest(t, "--version")
	assert.Nil(t, err)
	assert.Equal(t, stdout, zonedtime.Version+"\n")
}
