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


package defaults

import "time"

// Handler timeouts for HTTP request processing.
const (
	// RecipeHandlerTimeout bounds one recipe analysis request.
	RecipeHandlerTimeout = 20 * time.Second
)

// Server timeouts for HTTP server configuration.
const (
	ServerReadTimeout       = 10 * time.Second
	ServerReadHeaderTimeout = 5 * time.Second
	ServerWriteTimeout      = 30 * time.Second
	ServerIdleTimeout       = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second
)

// HTTP client timeouts for document downloads.
const (
	HTTPClientTimeout         = 30 * time.Second
	HTTPConnectTimeout        = 5 * time.Second
	HTTPTLSHandshakeTimeout   = 5 * time.Second
	HTTPResponseHeaderTimeout = 10 * time.Second
	HTTPIdleConnTimeout       = 90 * time.Second
	HTTPKeepAlive             = 30 * time.Second
)

// CLI timeouts for command-line operations.
const (
	// CLIParseTimeout bounds a parse command across all of its documents.
	CLIParseTimeout = 2 * time.Minute
)
