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


// Package errors provides structured error types shared by the parser,
// the CLI and the HTTP server.
//
// A StructuredError carries an ErrorCode that the server maps onto HTTP
// status codes and the CLI reports verbatim:
//
//	doc, err := beerxml.ParseFile(path)
//	if err != nil {
//		if errors.HasCode(err, errors.ErrCodeInvalidDocument) {
//			// not well-formed XML
//		}
//	}
//
// Causes are preserved, so errors.Is and errors.As from the standard library
// work across the chain.
package errors
