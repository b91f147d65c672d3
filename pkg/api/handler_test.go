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


package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brewkit/beerxml/pkg/header"
	"github.com/brewkit/beerxml/pkg/server"
)

const twoRecipes = `<?xml version="1.0"?>
<RECIPES>
 <RECIPE><NAME>First</NAME><BATCH_SIZE>20</BATCH_SIZE></RECIPE>
 <RECIPE><NAME>Second</NAME></RECIPE>
</RECIPES>`

func readFixture(t *testing.T, name string) string {
	t.Helper()
	b, err := os.ReadFile("../beerxml/testdata/" + name)
	require.NoError(t, err)
	return string(b)
}

func post(t *testing.T, target string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, body)
	req.Header.Set("Content-Type", "application/xml")
	w := httptest.NewRecorder()
	HandleRecipes(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) RecipesResponse {
	t.Helper()
	var resp RecipesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return resp
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp server.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return resp.Code
}

func TestHandleRecipes_Summary(t *testing.T) {
	w := post(t, RecipesPath, strings.NewReader(readFixture(t, "american_ipa.xml")))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	resp := decode(t, w)
	assert.Equal(t, header.KindRecipeSummary, resp.Kind)
	require.Equal(t, 1, resp.Count)
	require.Len(t, resp.Recipes, 1)

	sum := resp.Recipes[0].Summary
	assert.Equal(t, "Simcoe Session IPA", sum.Name)
	assert.Equal(t, "American IPA", sum.Style)
	assert.InDelta(t, 1.0338, sum.OG, 0.0001)
	assert.InDelta(t, 1.0047, sum.FG, 0.0001)
	assert.InDelta(t, 3.84, sum.ABV, 0.01)
	assert.InDelta(t, 6.27, sum.Color, 0.01)
	assert.Nil(t, resp.Recipes[0].Recipe)
	assert.Nil(t, resp.Recipes[0].Style)
}

func TestHandleRecipes_DetailAndStyle(t *testing.T) {
	w := post(t, RecipesPath+"?detail=true&style=1", strings.NewReader(readFixture(t, "american_ipa.xml")))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := decode(t, w)
	assert.Equal(t, header.KindRecipeDetail, resp.Kind)
	require.Len(t, resp.Recipes, 1)
	res := resp.Recipes[0]

	require.NotNil(t, res.Recipe)
	assert.Len(t, res.Recipe.Hops, 3)
	assert.Len(t, res.Recipe.Fermentables, 2)

	require.Len(t, res.Style, 5)
	assert.Equal(t, "og", res.Style[0].Metric)
	assert.False(t, res.Style[0].Within)
}

func TestHandleRecipes_MultipleRecipes(t *testing.T) {
	w := post(t, RecipesPath, strings.NewReader(twoRecipes))
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode(t, w)
	require.Equal(t, 2, resp.Count)
	assert.Equal(t, "First", resp.Recipes[0].Summary.Name)
	assert.Equal(t, "Second", resp.Recipes[1].Summary.Name)
	assert.InDelta(t, 1.0, resp.Recipes[1].Summary.OG, 0)
}

func TestHandleRecipes_NoRecipes(t *testing.T) {
	w := post(t, RecipesPath, strings.NewReader("<RECIPES></RECIPES>"))
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode(t, w)
	assert.Equal(t, 0, resp.Count)
	assert.NotNil(t, resp.Recipes)
	assert.Contains(t, w.Body.String(), `"recipes":[]`)
}

func TestHandleRecipes_Errors(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		body       string
		wantStatus int
		wantCode   string
	}{
		{"malformed document", RecipesPath, "<RECIPES><RECIPE>", http.StatusUnprocessableEntity, "INVALID_DOCUMENT"},
		{"empty document", RecipesPath, "", http.StatusUnprocessableEntity, "INVALID_DOCUMENT"},
		{"bad detail flag", RecipesPath + "?detail=maybe", twoRecipes, http.StatusBadRequest, "INVALID_REQUEST"},
		{"bad style flag", RecipesPath + "?style=x", twoRecipes, http.StatusBadRequest, "INVALID_REQUEST"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := post(t, tt.target, strings.NewReader(tt.body))
			assert.Equal(t, tt.wantStatus, w.Code, w.Body.String())
			assert.Equal(t, tt.wantCode, errorCode(t, w))
		})
	}
}

func TestHandleRecipes_MissingBody(t *testing.T) {
	w := post(t, RecipesPath, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_REQUEST", errorCode(t, w))
}

func TestHandleRecipes_MethodNotAllowed(t *testing.T) {
	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		t.Run(method, func(t *testing.T) {
			w := httptest.NewRecorder()
			HandleRecipes(w, httptest.NewRequest(method, RecipesPath, nil))

			assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
			assert.Equal(t, http.MethodPost, w.Header().Get("Allow"))
		})
	}
}

func TestHandleRecipes_PayloadTooLarge(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, RecipesPath, strings.NewReader(readFixture(t, "porter.xml")))
	w := httptest.NewRecorder()
	req.Body = http.MaxBytesReader(w, req.Body, 64)

	HandleRecipes(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Equal(t, "PAYLOAD_TOO_LARGE", errorCode(t, w))
}

func TestHandleRecipes_Timeout(t *testing.T) {
	orig := handlerTimeout
	handlerTimeout = 10 * time.Millisecond
	t.Cleanup(func() { handlerTimeout = orig })

	pr, pw := io.Pipe()
	t.Cleanup(func() { pw.Close() })

	w := post(t, RecipesPath, pr)

	assert.Equal(t, http.StatusGatewayTimeout, w.Code)
	assert.Equal(t, "TIMEOUT", errorCode(t, w))
}

func TestRoutes_ThroughServer(t *testing.T) {
	s := server.New(server.WithName(name), server.WithVersion("test"), server.WithHandler(Routes()))

	req := httptest.NewRequest(http.MethodPost, RecipesPath, strings.NewReader(readFixture(t, "dry_stout.xml")))
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))

	resp := decode(t, w)
	require.Len(t, resp.Recipes, 1)
	assert.Equal(t, "Dry Stout", resp.Recipes[0].Summary.Style)
	assert.Nil(t, resp.Recipes[0].Summary.Brewer)
}

func TestBuildInfo(t *testing.T) {
	assert.Equal(t, "beerxmld", name)
	assert.NotEmpty(t, version)
	assert.NotEmpty(t, commit)
	assert.NotEmpty(t, date)
	assert.Contains(t, Routes(), RecipesPath)
}
