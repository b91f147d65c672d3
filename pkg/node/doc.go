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


// Package node provides the labeled document tree consumed by the recipe mapper.
//
// # Overview
//
// A tree is made of nodes that expose three things: a tag name, an optional text
// value, and an ordered list of children. Children may repeat tags, and their order
// is preserved exactly as it appeared in the source document.
//
// The mapper only depends on the Node interface, so a tree can come from anywhere:
// an XML document, a test fixture built by hand, or a network payload.
//
// # Building Trees
//
// Parse reads an XML document into an *Element tree:
//
//	root, err := node.Parse(file)
//	if err != nil {
//	    return err
//	}
//
// Documents that declare a non UTF-8 encoding (BeerXML exports frequently use
// ISO-8859-1 or Windows-1252) are decoded through golang.org/x/text before
// tokenization.
//
// Trees can also be assembled directly, which is convenient in tests:
//
//	hop := node.New("HOP",
//	    node.NewText("NAME", "Simcoe"),
//	    node.NewText("ALPHA", "13"),
//	)
//
// # Text Values
//
// Text reports whether a node carries a value. Empty elements such as <BREWER/>
// have no value, which lets callers distinguish "absent" from "present but empty".
package node
