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
	"context"
	stderrors "errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/brewkit/beerxml/pkg/beerxml"
	"github.com/brewkit/beerxml/pkg/defaults"
	"github.com/brewkit/beerxml/pkg/errors"
	"github.com/brewkit/beerxml/pkg/header"
	"github.com/brewkit/beerxml/pkg/recipe"
	"github.com/brewkit/beerxml/pkg/serializer"
	"github.com/brewkit/beerxml/pkg/server"
)

// handlerTimeout can be overridden in tests.
var handlerTimeout = defaults.RecipeHandlerTimeout

// RecipeResult is one parsed recipe in a response.
type RecipeResult struct {
	Summary recipe.Summary       `json:"summary" yaml:"summary"`
	Style   []recipe.Conformance `json:"style,omitempty" yaml:"style,omitempty"`
	Recipe  *recipe.Recipe       `json:"recipe,omitempty" yaml:"recipe,omitempty"`
}

// RecipesResponse is the body returned by the recipe endpoint.
type RecipesResponse struct {
	header.Header `json:",inline" yaml:",inline"`

	Count   int            `json:"count" yaml:"count"`
	Recipes []RecipeResult `json:"recipes" yaml:"recipes"`
}

type parseResult struct {
	recipes []*recipe.Recipe
	err     error
}

// HandleRecipes parses the BeerXML document in the request body and returns
// a summary for each recipe it holds.
func HandleRecipes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		server.WriteError(w, r, http.StatusMethodNotAllowed, errors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{
				"method":  r.Method,
				"allowed": []string{http.MethodPost},
			})
		return
	}
	if r.Body == nil || r.Body == http.NoBody {
		server.WriteError(w, r, http.StatusBadRequest, errors.ErrCodeInvalidRequest,
			"Request body cannot be empty", false, nil)
		return
	}
	defer r.Body.Close()

	detail, err := boolParam(r, "detail")
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Invalid query parameter", nil)
		return
	}
	withStyle, err := boolParam(r, "style")
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Invalid query parameter", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()

	recipes, err := parse(ctx, r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			err = errors.WrapWithContext(errors.ErrCodePayloadTooLarge, "Request body too large",
				err, map[string]any{"limit": tooLarge.Limit})
		}
		slog.Debug("recipe parse failed", "requestID", server.RequestID(r.Context()), "error", err)
		server.WriteErrorFromErr(w, r, err, "Failed to parse document", nil)
		return
	}

	kind := header.KindRecipeSummary
	if detail {
		kind = header.KindRecipeDetail
	}
	resp := RecipesResponse{
		Header:  header.New(kind, header.WithVersion(version)),
		Count:   len(recipes),
		Recipes: make([]RecipeResult, 0, len(recipes)),
	}
	for _, rec := range recipes {
		res := RecipeResult{Summary: rec.Summary()}
		if withStyle {
			res.Style = rec.CheckStyle()
		}
		if detail {
			res.Recipe = rec
		}
		resp.Recipes = append(resp.Recipes, res)
	}

	serializer.RespondJSON(w, http.StatusOK, resp)
}

// parse runs the parser until it finishes or ctx is done.
func parse(ctx context.Context, body io.Reader) ([]*recipe.Recipe, error) {
	done := make(chan parseResult, 1)
	go func() {
		recipes, err := beerxml.Parse(body)
		done <- parseResult{recipes: recipes, err: err}
	}()

	select {
	case res := <-done:
		return res.recipes, res.err
	case <-ctx.Done():
		return nil, errors.Wrap(errors.ErrCodeTimeout, "Parsing timed out", ctx.Err())
	}
}

func boolParam(r *http.Request, key string) (bool, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, errors.WrapWithContext(errors.ErrCodeInvalidRequest,
			"Invalid boolean query parameter", err, map[string]any{"parameter": key, "value": v})
	}
	return b, nil
}
