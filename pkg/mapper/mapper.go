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

import (
	"log/slog"

	"github.com/brewkit/beerxml/pkg/node"
)

// Target is an entity that can be populated by Map.
type Target interface {
	// Fields returns the entity's field table keyed by canonical tag name.
	Fields() Fields
}

// Fields maps canonical lowercase tag names to field assignments.
type Fields map[string]Field

// Field describes how one child node populates an entity field.
type Field struct {
	Kind   Kind
	assign func(n node.Node)
}

// Map populates target from the direct children of n.
// Children without a matching field are skipped; later duplicates of a scalar
// tag overwrite earlier ones, while collections accumulate.
func Map(n node.Node, target Target) {
	if n == nil || target == nil {
		return
	}

	fields := target.Fields()
	for _, child := range n.Children() {
		key := ToLower(child.Tag())
		f, ok := fields[key]
		if !ok || f.assign == nil {
			slog.Debug("ignoring unmapped tag", "parent", n.Tag(), "tag", child.Tag())
			continue
		}
		f.assign(child)
	}
}

// Number declares a numeric field. Unparseable text resolves to nil.
func Number(dst **float64) Field {
	return Field{
		Kind: KindNumber,
		assign: func(n node.Node) {
			text, ok := n.Text()
			if !ok {
				*dst = nil
				return
			}
			v, ok := ParseFloat(text)
			if !ok {
				slog.Debug("numeric coercion failed", "tag", n.Tag(), "value", text)
				*dst = nil
				return
			}
			*dst = &v
		},
	}
}

// Bool declares a boolean field. Unrecognized tokens resolve to nil.
func Bool(dst **bool) Field {
	return Field{
		Kind: KindBool,
		assign: func(n node.Node) {
			text, ok := n.Text()
			if !ok {
				*dst = nil
				return
			}
			v, ok := ParseBool(text)
			if !ok {
				slog.Debug("boolean coercion failed", "tag", n.Tag(), "value", text)
				*dst = nil
				return
			}
			*dst = &v
		},
	}
}

// Text declares a text field. Elements without a value resolve to nil.
func Text(dst **string) Field {
	return Field{
		Kind: KindText,
		assign: func(n node.Node) {
			text, ok := n.Text()
			if !ok {
				*dst = nil
				return
			}
			*dst = &text
		},
	}
}

// Object declares a nested entity field. A fresh entity is created for the
// child node and mapped recursively before assignment.
func Object[T any, P interface {
	*T
	Target
}](dst *P) Field {
	return Field{
		Kind: KindObject,
		assign: func(n node.Node) {
			v := P(new(T))
			Map(n, v)
			*dst = v
		},
	}
}

// Collection declares a repeated nested entity field. The matched child is the
// container; each of its children yields one new entity, appended in order.
func Collection[T any, P interface {
	*T
	Target
}](dst *[]P) Field {
	return Field{
		Kind: KindCollection,
		assign: func(n node.Node) {
			for _, item := range n.Children() {
				v := P(new(T))
				Map(item, v)
				*dst = append(*dst, v)
			}
		},
	}
}
