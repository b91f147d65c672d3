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


// Package api wires the BeerXML recipe endpoint into the HTTP server.
//
// Usage:
//
//	import (
//	    "log"
//	    "github.com/brewkit/beerxml/pkg/api"
//	)
//
//	func main() {
//	    if err := api.Serve(); err != nil {
//	        log.Fatalf("server error: %v", err)
//	    }
//	}
//
// # Endpoints
//
// Application Endpoints (with rate limiting):
//   - POST /v1/recipes - Parse a BeerXML document and return recipe metrics
//
// System Endpoints (no rate limiting):
//   - GET /health  - Health check (liveness probe)
//   - GET /ready   - Readiness check
//   - GET /metrics - Prometheus metrics
//
// # Query Parameters (POST /v1/recipes)
//
//   - detail: Include the full parsed recipe next to its summary (true/false)
//   - style: Include style conformance checks (true/false)
//
// # Errors
//
// A malformed document answers 422 with code INVALID_DOCUMENT, a body
// over the configured limit answers 413 with code PAYLOAD_TOO_LARGE, and a
// parse that outlives the handler timeout answers 504 with code TIMEOUT.
package api
