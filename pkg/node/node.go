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


package node

import "strings"

// Node is a labeled tree node with an optional text value and ordered children.
type Node interface {
	// Tag returns the node's tag name as written in the source.
	Tag() string
	// Text returns the node's text value and whether one is present.
	Text() (string, bool)
	// Children returns the node's direct children in document order.
	Children() []Node
}

// Element is the concrete Node produced by Parse and the builder helpers.
type Element struct {
	Name  string
	Value *string
	Nodes []*Element
}

// New creates an element without a text value.
func New(tag string, children ...*Element) *Element {
	return &Element{
		Name:  tag,
		Nodes: children,
	}
}

// NewText creates a leaf element carrying the given text value.
func NewText(tag, text string) *Element {
	return &Element{
		Name:  tag,
		Value: &text,
	}
}

// Tag implements Node.
func (e *Element) Tag() string {
	if e == nil {
		return ""
	}
	return e.Name
}

// Text implements Node.
func (e *Element) Text() (string, bool) {
	if e == nil || e.Value == nil {
		return "", false
	}
	return *e.Value, true
}

// Children implements Node.
func (e *Element) Children() []Node {
	if e == nil || len(e.Nodes) == 0 {
		return nil
	}
	out := make([]Node, 0, len(e.Nodes))
	for _, c := range e.Nodes {
		if c != nil {
			out = append(out, c)
		}
	}
	return out
}

// Append adds children to the element and returns it for chaining.
func (e *Element) Append(children ...*Element) *Element {
	e.Nodes = append(e.Nodes, children...)
	return e
}

// Find returns the first direct child whose tag matches name, ignoring case.
func (e *Element) Find(name string) *Element {
	if e == nil {
		return nil
	}
	for _, c := range e.Nodes {
		if c != nil && strings.EqualFold(c.Name, name) {
			return c
		}
	}
	return nil
}

// Walk visits n and its descendants depth-first in document order.
// Returning false from fn skips the descendants of the visited node.
func Walk(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, c := range n.Children() {
		Walk(c, fn)
	}
}
