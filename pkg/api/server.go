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
	"log/slog"
	"net/http"

	"github.com/brewkit/beerxml/pkg/logging"
	"github.com/brewkit/beerxml/pkg/server"
)

const (
	name           = "beerxmld"
	versionDefault = "dev"

	// RecipesPath is the route of the recipe endpoint.
	RecipesPath = "/v1/recipes"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/brewkit/beerxml/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Routes returns the application routes served by beerxmld.
func Routes() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		RecipesPath: HandleRecipes,
	}
}

// Serve starts the API server and blocks until shutdown.
func Serve() error {
	ctx := context.Background()

	logging.SetDefaultStructuredLogger(name, version)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	s := server.New(
		server.WithName(name),
		server.WithVersion(version),
		server.WithHandler(Routes()),
	)

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}
