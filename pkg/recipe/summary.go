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

// Summary is a point-in-time snapshot of a recipe's metadata and metrics.
type Summary struct {
	Name        string   `json:"name" yaml:"name"`
	Brewer      *string  `json:"brewer,omitempty" yaml:"brewer,omitempty"`
	Style       string   `json:"style,omitempty" yaml:"style,omitempty"`
	BatchSize   *float64 `json:"batch_size,omitempty" yaml:"batch_size,omitempty"`
	BoilTime    *float64 `json:"boil_time,omitempty" yaml:"boil_time,omitempty"`
	Efficiency  *float64 `json:"efficiency,omitempty" yaml:"efficiency,omitempty"`
	OG          float64  `json:"og" yaml:"og"`
	OGPlato     float64  `json:"og_plato" yaml:"og_plato"`
	FG          float64  `json:"fg" yaml:"fg"`
	FGPlato     float64  `json:"fg_plato" yaml:"fg_plato"`
	IBU         float64  `json:"ibu" yaml:"ibu"`
	ABV         float64  `json:"abv" yaml:"abv"`
	Color       float64  `json:"color" yaml:"color"`
	Attenuation float64  `json:"attenuation" yaml:"attenuation"`
}

// Summary computes every metric once and returns them with the recipe metadata.
func (r *Recipe) Summary() Summary {
	og := r.OG()
	fg := r.fg(og)
	return Summary{
		Name:        text(r.Name),
		Brewer:      r.Brewer,
		Style:       r.StyleName(),
		BatchSize:   r.BatchSize,
		BoilTime:    r.BoilTime,
		Efficiency:  r.Efficiency,
		OG:          og,
		OGPlato:     Plato(og),
		FG:          fg,
		FGPlato:     Plato(fg),
		IBU:         r.IBU(),
		ABV:         abv(og, fg),
		Color:       r.Color(),
		Attenuation: r.AverageAttenuation(),
	}
}

// CheckStyle compares the recipe's metrics against its style ranges.
func (r *Recipe) CheckStyle() []Conformance {
	return r.Style.Check(r.Summary())
}
