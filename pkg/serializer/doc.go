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


// Package serializer writes results in the output formats the CLI and the
// HTTP server offer, and opens the documents they read.
//
// # Output Formats
//
//   - json: indented JSON
//   - yaml: YAML with two-space indentation
//   - table: aligned text; values implementing Tabular print one table per
//     sheet, anything else is flattened into FIELD/VALUE rows keyed by json tag
//   - xlsx: an Excel workbook built with excelize, one worksheet per Sheet
//
// Usage:
//
//	w, err := serializer.NewFileWriterOrStdout(serializer.FormatYAML, path)
//	if err != nil {
//		return err
//	}
//	defer w.Close()
//	if err := w.Serialize(ctx, report); err != nil {
//		return err
//	}
//
// # Inputs
//
// Open accepts a local path, "-" for stdin, or an http(s) URL. Downloads go
// through a Fetcher, which bounds both time and body size:
//
//	rc, err := serializer.Open(ctx, "https://example.com/stout.xml", serializer.NewFetcher())
//
// # HTTP Responses
//
// RespondJSON encodes into a buffer before writing headers, so an encoding
// failure yields a clean 500 rather than a truncated body.
package serializer
