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


package beerxml

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/brewkit/beerxml/pkg/errors"
	"github.com/brewkit/beerxml/pkg/mapper"
	"github.com/brewkit/beerxml/pkg/node"
	"github.com/brewkit/beerxml/pkg/recipe"
)

// RecipeTag is the element that starts a recipe.
const RecipeTag = "recipe"

// defaultParallelism bounds ParseFiles when the caller passes no limit.
const defaultParallelism = 8

// Document is the result of parsing one file.
type Document struct {
	Path    string           `json:"path" yaml:"path"`
	Recipes []*recipe.Recipe `json:"recipes" yaml:"recipes"`
}

// Assemble maps every recipe element under root into a Recipe, in document
// order. The search does not descend into recipe elements. The result is
// never nil.
func Assemble(root node.Node) []*recipe.Recipe {
	recipes := make([]*recipe.Recipe, 0)
	node.Walk(root, func(n node.Node) bool {
		if mapper.ToLower(n.Tag()) != RecipeTag {
			return true
		}
		r := &recipe.Recipe{}
		mapper.Map(n, r)
		recipes = append(recipes, r)
		return false
	})
	return recipes
}

// Parse reads a BeerXML document and returns its recipes.
func Parse(r io.Reader) ([]*recipe.Recipe, error) {
	start := time.Now()
	root, err := node.Parse(r)
	if err != nil {
		parseTotal.WithLabelValues(statusError).Inc()
		return nil, errors.Wrap(errors.ErrCodeInvalidDocument, "failed to parse BeerXML document", err)
	}

	recipes := Assemble(root)
	parseDuration.Observe(time.Since(start).Seconds())
	parseTotal.WithLabelValues(statusSuccess).Inc()
	recipesParsed.Add(float64(len(recipes)))

	slog.Debug("parsed document", "recipes", len(recipes), "root", root.Tag())
	return recipes, nil
}

// ParseString parses a document held in memory.
func ParseString(doc string) ([]*recipe.Recipe, error) {
	return Parse(strings.NewReader(doc))
}

// ParseFile parses the document at path.
func ParseFile(path string) ([]*recipe.Recipe, error) {
	f, err := os.Open(path)
	if err != nil {
		code := errors.ErrCodeInternal
		if stderrors.Is(err, os.ErrNotExist) {
			code = errors.ErrCodeNotFound
		}
		return nil, errors.WrapWithContext(code, "failed to open document", err, map[string]any{"path": path})
	}
	defer f.Close()

	recipes, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return recipes, nil
}

// ParseFiles parses paths concurrently, with at most limit files in flight
// (a non-positive limit uses a default). Results keep the order of paths.
// The first failure cancels the remaining work and is returned.
func ParseFiles(ctx context.Context, paths []string, limit int) ([]Document, error) {
	if limit <= 0 {
		limit = defaultParallelism
	}

	docs := make([]Document, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return errors.Wrap(errors.ErrCodeTimeout, "parse canceled", err)
			}
			recipes, err := ParseFile(path)
			if err != nil {
				return err
			}
			docs[i] = Document{Path: path, Recipes: recipes}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return docs, nil
}
