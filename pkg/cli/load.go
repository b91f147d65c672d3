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


package cli

import (
	"context"
	"fmt"
	"slices"

	"github.com/brewkit/beerxml/pkg/beerxml"
	"github.com/brewkit/beerxml/pkg/errors"
	"github.com/brewkit/beerxml/pkg/recipe"
	"github.com/brewkit/beerxml/pkg/serializer"
)

// loadDocuments reads every source in order. When all sources are local files
// they are parsed concurrently; stdin and URLs force sequential reads.
func loadDocuments(ctx context.Context, sources []string, parallel int) ([]beerxml.Document, error) {
	if len(sources) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "at least one document is required")
	}
	if !slices.ContainsFunc(sources, isStream) {
		return beerxml.ParseFiles(ctx, sources, parallel)
	}

	fetcher := serializer.NewFetcher(serializer.WithUserAgent(name + "/" + version))
	docs := make([]beerxml.Document, 0, len(sources))
	for _, src := range sources {
		recipes, err := loadOne(ctx, src, fetcher)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", src, err)
		}
		docs = append(docs, beerxml.Document{Path: src, Recipes: recipes})
	}
	return docs, nil
}

func loadOne(ctx context.Context, src string, fetcher *serializer.Fetcher) ([]*recipe.Recipe, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeTimeout, "read canceled", err)
	}
	rc, err := serializer.Open(ctx, src, fetcher)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return beerxml.Parse(rc)
}

func isStream(src string) bool {
	return src == serializer.StdinSource || serializer.IsURL(src)
}
