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


package serializer

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brewkit/beerxml/pkg/errors"
)

func TestOpen_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recipe.xml")
	require.NoError(t, os.WriteFile(path, []byte("<RECIPES/>"), 0o600))

	rc, err := Open(context.Background(), path, nil)
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "<RECIPES/>", string(data))
}

func TestOpen_URL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<RECIPE/>"))
	}))
	defer srv.Close()

	rc, err := Open(context.Background(), srv.URL+"/r.xml", NewFetcher(WithClient(srv.Client())))
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "<RECIPE/>", string(data))
}

func TestOpen_Errors(t *testing.T) {
	_, err := Open(context.Background(), "  ", nil)
	assert.Equal(t, errors.ErrCodeInvalidRequest, errors.CodeOf(err))

	_, err = Open(context.Background(), filepath.Join(t.TempDir(), "nope.xml"), nil)
	assert.Equal(t, errors.ErrCodeNotFound, errors.CodeOf(err))
}

func TestIsURL(t *testing.T) {
	assert.True(t, IsURL("https://example.com/a.xml"))
	assert.True(t, IsURL("HTTP://example.com/a.xml"))
	assert.False(t, IsURL("recipes/a.xml"))
	assert.False(t, IsURL("ftp://example.com/a.xml"))
}
