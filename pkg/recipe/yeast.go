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

// Yeast is a yeast culture. Attenuation is the expected apparent attenuation in percent.
type Yeast struct {
	Name           *string  `json:"name,omitempty" yaml:"name,omitempty"`
	Version        *float64 `json:"version,omitempty" yaml:"version,omitempty"`
	Type           *string  `json:"type,omitempty" yaml:"type,omitempty"`
	Form           *string  `json:"form,omitempty" yaml:"form,omitempty"`
	Amount         *float64 `json:"amount,omitempty" yaml:"amount,omitempty"`
	AmountIsWeight *bool    `json:"amount_is_weight,omitempty" yaml:"amount_is_weight,omitempty"`
	Laboratory     *string  `json:"laboratory,omitempty" yaml:"laboratory,omitempty"`
	ProductID      *string  `json:"product_id,omitempty" yaml:"product_id,omitempty"`
	MinTemperature *float64 `json:"min_temperature,omitempty" yaml:"min_temperature,omitempty"`
	MaxTemperature *float64 `json:"max_temperature,omitempty" yaml:"max_temperature,omitempty"`
	Flocculation   *string  `json:"flocculation,omitempty" yaml:"flocculation,omitempty"`
	Attenuation    *float64 `json:"attenuation,omitempty" yaml:"attenuation,omitempty"`
	Notes          *string  `json:"notes,omitempty" yaml:"notes,omitempty"`
	BestFor        *string  `json:"best_for,omitempty" yaml:"best_for,omitempty"`
	TimesCultured  *float64 `json:"times_cultured,omitempty" yaml:"times_cultured,omitempty"`
	MaxReuse       *float64 `json:"max_reuse,omitempty" yaml:"max_reuse,omitempty"`
	AddToSecondary *bool    `json:"add_to_secondary,omitempty" yaml:"add_to_secondary,omitempty"`
}

// Fields implements mapper.Target.
func (y *Yeast) Fields() mapper.Fields {
	return mapper.Fields{
		"name":             mapper.Text(&y.Name),
		"version":          mapper.Number(&y.Version),
		"type":             mapper.Text(&y.Type),
		"form":             mapper.Text(&y.Form),
		"amount":           mapper.Number(&y.Amount),
		"amount_is_weight": mapper.Bool(&y.AmountIsWeight),
		"laboratory":       mapper.Text(&y.Laboratory),
		"product_id":       mapper.Text(&y.ProductID),
		"min_temperature":  mapper.Number(&y.MinTemperature),
		"max_temperature":  mapper.Number(&y.MaxTemperature),
		"flocculation":     mapper.Text(&y.Flocculation),
		"attenuation":      mapper.Number(&y.Attenuation),
		"notes":            mapper.Text(&y.Notes),
		"best_for":         mapper.Text(&y.BestFor),
		"times_cultured":   mapper.Number(&y.TimesCultured),
		"max_reuse":        mapper.Number(&y.MaxReuse),
		"add_to_secondary": mapper.Bool(&y.AddToSecondary),
	}
}
