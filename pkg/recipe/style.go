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

// Style is a style guideline target. Its ranges are metadata only; they never
// feed the metric formulas.
type Style struct {
	Name           *string  `json:"name,omitempty" yaml:"name,omitempty"`
	Version        *float64 `json:"version,omitempty" yaml:"version,omitempty"`
	Category       *string  `json:"category,omitempty" yaml:"category,omitempty"`
	CategoryNumber *string  `json:"category_number,omitempty" yaml:"category_number,omitempty"`
	StyleLetter    *string  `json:"style_letter,omitempty" yaml:"style_letter,omitempty"`
	StyleGuide     *string  `json:"style_guide,omitempty" yaml:"style_guide,omitempty"`
	Type           *string  `json:"type,omitempty" yaml:"type,omitempty"`
	OGMin          *float64 `json:"og_min,omitempty" yaml:"og_min,omitempty"`
	OGMax          *float64 `json:"og_max,omitempty" yaml:"og_max,omitempty"`
	FGMin          *float64 `json:"fg_min,omitempty" yaml:"fg_min,omitempty"`
	FGMax          *float64 `json:"fg_max,omitempty" yaml:"fg_max,omitempty"`
	IBUMin         *float64 `json:"ibu_min,omitempty" yaml:"ibu_min,omitempty"`
	IBUMax         *float64 `json:"ibu_max,omitempty" yaml:"ibu_max,omitempty"`
	ColorMin       *float64 `json:"color_min,omitempty" yaml:"color_min,omitempty"`
	ColorMax       *float64 `json:"color_max,omitempty" yaml:"color_max,omitempty"`
	CarbMin        *float64 `json:"carb_min,omitempty" yaml:"carb_min,omitempty"`
	CarbMax        *float64 `json:"carb_max,omitempty" yaml:"carb_max,omitempty"`
	ABVMin         *float64 `json:"abv_min,omitempty" yaml:"abv_min,omitempty"`
	ABVMax         *float64 `json:"abv_max,omitempty" yaml:"abv_max,omitempty"`
	Notes          *string  `json:"notes,omitempty" yaml:"notes,omitempty"`
	Profile        *string  `json:"profile,omitempty" yaml:"profile,omitempty"`
	Ingredients    *string  `json:"ingredients,omitempty" yaml:"ingredients,omitempty"`
	Examples       *string  `json:"examples,omitempty" yaml:"examples,omitempty"`
}

// Fields implements mapper.Target.
func (s *Style) Fields() mapper.Fields {
	return mapper.Fields{
		"name":            mapper.Text(&s.Name),
		"version":         mapper.Number(&s.Version),
		"category":        mapper.Text(&s.Category),
		"category_number": mapper.Text(&s.CategoryNumber),
		"style_letter":    mapper.Text(&s.StyleLetter),
		"style_guide":     mapper.Text(&s.StyleGuide),
		"type":            mapper.Text(&s.Type),
		"og_min":          mapper.Number(&s.OGMin),
		"og_max":          mapper.Number(&s.OGMax),
		"fg_min":          mapper.Number(&s.FGMin),
		"fg_max":          mapper.Number(&s.FGMax),
		"ibu_min":         mapper.Number(&s.IBUMin),
		"ibu_max":         mapper.Number(&s.IBUMax),
		"color_min":       mapper.Number(&s.ColorMin),
		"color_max":       mapper.Number(&s.ColorMax),
		"carb_min":        mapper.Number(&s.CarbMin),
		"carb_max":        mapper.Number(&s.CarbMax),
		"abv_min":         mapper.Number(&s.ABVMin),
		"abv_max":         mapper.Number(&s.ABVMax),
		"notes":           mapper.Text(&s.Notes),
		"profile":         mapper.Text(&s.Profile),
		"ingredients":     mapper.Text(&s.Ingredients),
		"examples":        mapper.Text(&s.Examples),
	}
}

// Conformance reports where one computed metric sits against a style range.
type Conformance struct {
	Metric string   `json:"metric" yaml:"metric"`
	Value  float64  `json:"value" yaml:"value"`
	Min    *float64 `json:"min,omitempty" yaml:"min,omitempty"`
	Max    *float64 `json:"max,omitempty" yaml:"max,omitempty"`
	Within bool     `json:"within" yaml:"within"`
}

// Check compares the summary against every range the style declares.
// A range with only one bound is checked against that bound alone.
func (s *Style) Check(sum Summary) []Conformance {
	if s == nil {
		return nil
	}

	ranges := []struct {
		metric   string
		value    float64
		min, max *float64
	}{
		{"og", sum.OG, s.OGMin, s.OGMax},
		{"fg", sum.FG, s.FGMin, s.FGMax},
		{"ibu", sum.IBU, s.IBUMin, s.IBUMax},
		{"color", sum.Color, s.ColorMin, s.ColorMax},
		{"abv", sum.ABV, s.ABVMin, s.ABVMax},
	}

	out := make([]Conformance, 0, len(ranges))
	for _, r := range ranges {
		if r.min == nil && r.max == nil {
			continue
		}
		within := (r.min == nil || r.value >= *r.min) && (r.max == nil || r.value <= *r.max)
		out = append(out, Conformance{
			Metric: r.metric,
			Value:  r.value,
			Min:    r.min,
			Max:    r.max,
			Within: within,
		})
	}
	return out
}
