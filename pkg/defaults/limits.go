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

// Size and concurrency limits.
const (
	// MaxDocumentBytes caps a BeerXML document accepted over HTTP or downloaded.
	MaxDocumentBytes int64 = 8 << 20

	// ParseParallelism is the number of documents parsed concurrently.
	ParseParallelism = 8

	// ServerRateLimit is the sustained request rate per second.
	ServerRateLimit = 50

	// ServerRateLimitBurst is the request burst allowance.
	ServerRateLimitBurst = 100

	// ServerPort is the default listen port.
	ServerPort = 8080
)
