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


package mapper

// Kind classifies how a field is populated from a node.
type Kind int

const (
	KindUnknown Kind = iota
	KindNumber
	KindBool
	KindText
	KindObject
	KindCollection
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindText:
		return "text"
	case KindObject:
		return "object"
	case KindCollection:
		return "collection"
	default:
		return "unknown"
	}
}

// IsScalar reports whether the kind holds a single coerced text value.
func (k Kind) IsScalar() bool {
	return k == KindNumber || k == KindBool || k == KindText
}
