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


// Package header provides the envelope shared by every report the tool emits.
//
// A Header names what a document is (Kind), the schema it follows
// (APIVersion) and when and by which build it was produced (Metadata):
//
//	kind: RecipeSummary
//	apiVersion: beerxml.brewkit.dev/v1
//	metadata:
//	  timestamp: "2026-01-30T10:30:00Z"
//	  version: v1.0.0
//
// Reports embed Header inline so the envelope fields sit at the top level.
package header
