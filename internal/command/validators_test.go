// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutputValidator(t *testing.T) {
	for _, v := range []string{"text", "json", "raw", "yaml"} {
		assert.NoError(t, OutputValidator(v), "value %q should be valid", v)
	}
	assert.Error(t, OutputValidator("xml"))
	assert.Error(t, OutputValidator(""))
}

func TestFormatValidator(t *testing.T) {
	for _, v := range []string{"json", "gob", "yaml"} {
		assert.NoError(t, FormatValidator(v), "value %q should be valid", v)
	}
	assert.Error(t, FormatValidator("pickle"))
}

func TestJammedFlagValidator(t *testing.T) {
	assert.NoError(t, JammedFlagValidator("value"))
	assert.Error(t, JammedFlagValidator("--whoops"))
}

func TestFlagValidators(t *testing.T) {
	assert.NoError(t, FlagValidators("json", FormatValidator))
	assert.Error(t, FlagValidators("--json", FormatValidator, JammedFlagValidator))
}
