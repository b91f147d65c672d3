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


// Package beerxml turns BeerXML documents into recipe.Recipe values.
//
// Parsing happens in two stages. The document is first read into a generic
// node tree (see pkg/node), then every RECIPE element found anywhere in the
// tree is mapped onto a fresh Recipe through its field table (see pkg/mapper).
// Nested RECIPE elements are not searched for further recipes.
//
//	recipes, err := beerxml.ParseFile("stout.xml")
//	if err != nil {
//		return err
//	}
//	for _, r := range recipes {
//		fmt.Printf("%s: OG %.3f, IBU %.1f\n", *r.Name, r.OG(), r.IBU())
//	}
//
// Documents that are not well-formed XML fail with an errors.StructuredError
// carrying ErrCodeInvalidDocument. Missing or unparseable values inside a
// well-formed document never fail; they surface as nil fields.
//
// ParseFiles reads several documents concurrently. Each Recipe is independent
// and owned by the caller; none is shared between parses.
package beerxml
