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


package header

import (
	"time"
)

// APIVersion is the schema version of every report kind.
const APIVersion = "beerxml.brewkit.dev/v1"

// Kind identifies a report type.
type Kind string

const (
	KindRecipeSummary Kind = "RecipeSummary"
	KindRecipeDetail  Kind = "RecipeDetail"
	KindStyleCheck    Kind = "StyleCheck"
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	return string(k)
}

// IsValid reports whether k is a known kind.
func (k Kind) IsValid() bool {
	switch k {
	case KindRecipeSummary, KindRecipeDetail, KindStyleCheck:
		return true
	default:
		return false
	}
}

// Option configures a Header.
type Option func(*Header)

// WithMetadata adds a metadata key-value pair.
func WithMetadata(key, value string) Option {
	return func(h *Header) {
		if h.Metadata == nil {
			h.Metadata = make(map[string]string)
		}
		h.Metadata[key] = value
	}
}

// WithVersion records the version of the build that produced the report.
func WithVersion(version string) Option {
	return func(h *Header) {
		if version != "" {
			WithMetadata("version", version)(h)
		}
	}
}

// Header is the envelope of a report.
type Header struct {
	Kind       Kind              `json:"kind,omitempty" yaml:"kind,omitempty"`
	APIVersion string            `json:"apiVersion,omitempty" yaml:"apiVersion,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// New creates a header of the given kind stamped with the current UTC time.
func New(kind Kind, opts ...Option) Header {
	h := Header{
		Kind:       kind,
		APIVersion: APIVersion,
		Metadata: map[string]string{
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		},
	}
	for _, opt := range opts {
		opt(&h)
	}
	return h
}
