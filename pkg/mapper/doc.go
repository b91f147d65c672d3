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


// Package mapper populates typed entities from a node tree.
//
// Each entity declares a field table: a map from canonical (lowercase) tag name to a
// Field describing how a matching child node is assigned. Map walks the direct
// children of a node, folds each tag with ToLower, looks the result up in the table
// and assigns the field. Tags with no entry are ignored, so richer documents map
// cleanly onto a smaller vocabulary.
//
// Field kinds:
//   - KindNumber: text coerced to float64
//   - KindBool: text coerced from a fixed token set, case-insensitively
//   - KindText: text stored verbatim
//   - KindObject: a nested entity mapped recursively from the child node
//   - KindCollection: the child is a container; every one of its children becomes
//     a new entity, appended in document order
//
// Scalars are stored through pointers. A nil pointer is the "no value" marker: it
// is what an absent tag leaves behind, and what a value that fails coercion resolves
// to. Mapping never fails and never stops early because of one bad field.
//
// Usage:
//
//	type Hop struct {
//	    Name  *string
//	    Alpha *float64
//	}
//
//	func (h *Hop) Fields() mapper.Fields {
//	    return mapper.Fields{
//	        "name":  mapper.Text(&h.Name),
//	        "alpha": mapper.Number(&h.Alpha),
//	    }
//	}
//
//	hop := &Hop{}
//	mapper.Map(hopNode, hop)
package mapper
