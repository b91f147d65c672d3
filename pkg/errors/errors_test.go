// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeNotFound, "document not found")

	assert.Equal(t, ErrCodeNotFound, err.Code)
	assert.Equal(t, "document not found", err.Message)
	assert.Nil(t, err.Cause)
}

func TestWrap(t *testing.T) {
	cause := errors.New("unexpected EOF")
	err := Wrap(ErrCodeInvalidDocument, "failed to parse document", cause)

	assert.Equal(t, ErrCodeInvalidDocument, err.Code)
	assert.ErrorIs(t, err, cause)
}

func TestWrapWithContext(t *testing.T) {
	cause := errors.New("timeout")
	err := WrapWithContext(ErrCodeTimeout, "parse deadline exceeded", cause, map[string]any{
		"path": "recipes/stout.xml",
	})

	assert.Equal(t, ErrCodeTimeout, err.Code)
	require.NotNil(t, err.Context)
	assert.Equal(t, "recipes/stout.xml", err.Context["path"])
}

func TestError(t *testing.T) {
	tests := []struct {
		name     string
		err      *StructuredError
		expected string
	}{
		{
			name:     "without cause",
			err:      New(ErrCodeNotFound, "not found"),
			expected: "[NOT_FOUND] not found",
		},
		{
			name:     "with cause",
			err:      Wrap(ErrCodeInvalidDocument, "bad xml", errors.New("syntax error")),
			expected: "[INVALID_DOCUMENT] bad xml: syntax error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{"structured", New(ErrCodeInvalidRequest, "bad"), ErrCodeInvalidRequest},
		{"wrapped with fmt", fmt.Errorf("outer: %w", New(ErrCodePayloadTooLarge, "big")), ErrCodePayloadTooLarge},
		{"plain", errors.New("boom"), ErrCodeInternal},
		{"nil", nil, ErrCodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CodeOf(tt.err))
		})
	}
}

func TestHasCode(t *testing.T) {
	inner := New(ErrCodeInvalidDocument, "bad xml")
	outer := Wrap(ErrCodeInternal, "read failed", inner)

	assert.True(t, HasCode(outer, ErrCodeInternal))
	assert.True(t, HasCode(outer, ErrCodeInvalidDocument))
	assert.False(t, HasCode(outer, ErrCodeTimeout))
	assert.False(t, HasCode(errors.New("plain"), ErrCodeInternal))
}
