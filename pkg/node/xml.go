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

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/ianaindex"
)

// ErrEmptyDocument is returned when the input holds no root element.
var ErrEmptyDocument = errors.New("document has no root element")

// Parse reads an XML document and returns its root element.
// Text is attached only to elements that carry character data; container
// elements whose only content is indentation have no value.
func Parse(r io.Reader) (*Element, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charsetReader

	var (
		root  *Element
		stack []*Element
		texts []*strings.Builder
	)

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read XML token: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			el := &Element{Name: t.Name.Local}
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.Nodes = append(parent.Nodes, el)
			} else if root == nil {
				root = el
			}
			stack = append(stack, el)
			texts = append(texts, &strings.Builder{})
		case xml.CharData:
			if len(stack) > 0 {
				texts[len(texts)-1].Write(t)
			}
		case xml.EndElement:
			el := stack[len(stack)-1]
			setText(el, texts[len(texts)-1].String())
			stack = stack[:len(stack)-1]
			texts = texts[:len(texts)-1]
		}
	}

	if root == nil {
		return nil, ErrEmptyDocument
	}
	return root, nil
}

func setText(el *Element, text string) {
	if text == "" {
		return
	}
	if len(el.Nodes) > 0 && strings.TrimSpace(text) == "" {
		return
	}
	el.Value = &text
}

// charsetReader decodes documents declaring a non UTF-8 encoding.
func charsetReader(label string, input io.Reader) (io.Reader, error) {
	enc, err := ianaindex.IANA.Encoding(label)
	if err != nil {
		return nil, fmt.Errorf("unsupported document encoding %q: %w", label, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("unsupported document encoding %q", label)
	}
	return enc.NewDecoder().Reader(input), nil
}
