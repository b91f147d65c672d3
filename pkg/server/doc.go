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


// Package server is the HTTP server shared by the beerxml API binaries.
//
// It provides the pieces every endpoint needs, so handlers only deal with
// their own request and response:
//
//   - token-bucket rate limiting (golang.org/x/time/rate)
//   - request ids, taken from a valid X-Request-Id header or generated
//   - panic recovery
//   - request body limits
//   - Prometheus RED metrics, exposed on /metrics
//   - liveness (/health) and readiness (/ready) probes
//   - graceful shutdown on SIGINT and SIGTERM
//
// # Usage
//
//	s := server.New(
//		server.WithName("beerxmld"),
//		server.WithVersion(version),
//		server.WithHandler(map[string]http.HandlerFunc{
//			"/v1/recipes": handler,
//		}),
//	)
//	if err := s.Run(ctx); err != nil {
//		return err
//	}
//
// # Configuration
//
// NewConfig starts from pkg/defaults and reads PORT, SHUTDOWN_TIMEOUT_SECONDS,
// MAX_DOCUMENT_BYTES and RATE_LIMIT from the environment. Start validates the
// result before listening.
//
// # Errors
//
// Every error reply is an ErrorResponse with a code, message, request id and
// retryable flag. WriteErrorFromErr maps pkg/errors codes onto HTTP statuses:
// INVALID_REQUEST is 400, INVALID_DOCUMENT 422, PAYLOAD_TOO_LARGE 413,
// NOT_FOUND 404, RATE_LIMIT_EXCEEDED 429, SERVICE_UNAVAILABLE 503,
// TIMEOUT 504 and anything else 500.
//
// # API Versioning
//
// Clients may ask for a version through the Accept header, for example
// application/vnd.beerxml.v1+json. The served version is echoed in
// X-API-Version.
package server
