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


package recipe

import "github.com/brewkit/beerxml/pkg/mapper"

// Misc is a miscellaneous additive such as finings, spices or water agents.
// Amount is kilograms when AmountIsWeight is true, liters otherwise.
type Misc struct {
	Name           *string  `json:"name,omitempty" yaml:"name,omitempty"`
	Version        *float64 `json:"version,omitempty" yaml:"version,omitempty"`
	Type           *string  `json:"type,omitempty" yaml:"type,omitempty"`
	Use            *string  `json:"use,omitempty" yaml:"use,omitempty"`
	Time           *float64 `json:"time,omitempty" yaml:"time,omitempty"`
	Amount         *float64 `json:"amount,omitempty" yaml:"amount,omitempty"`
	AmountIsWeight *bool    `json:"amount_is_weight,omitempty" yaml:"amount_is_weight,omitempty"`
	UseFor         *string  `json:"use_for,omitempty" yaml:"use_for,omitempty"`
	Notes          *string  `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// Fields implements mapper.Target.
func (m *Misc) Fields() mapper.Fields {
	return mapper.Fields{
		"name":             mapper.Text(&m.Name),
		"version":          mapper.Number(&m.Version),
		"type":             mapper.Text(&m.Type),
		"use":              mapper.Text(&m.Use),
		"time":             mapper.Number(&m.Time),
		"amount":           mapper.Number(&m.Amount),
		"amount_is_weight": mapper.Bool(&m.AmountIsWeight),
		"use_for":          mapper.Text(&m.UseFor),
		"notes":            mapper.Text(&m.Notes),
	}
}
