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

import (
	"regexp"
	"strings"

	"github.com/brewkit/beerxml/pkg/mapper"
)

// Addition is the point in the brew day where a fermentable releases its extract.
type Addition string

const (
	// AdditionMash extracts at the recipe's mash efficiency.
	AdditionMash Addition = "mash"
	// AdditionSteep extracts at the fixed steeping efficiency.
	AdditionSteep Addition = "steep"
	// AdditionBoil dissolves completely.
	AdditionBoil Addition = "boil"
)

// Fermentable types as spelled by BeerXML.
const (
	FermentableGrain      = "Grain"
	FermentableSugar      = "Sugar"
	FermentableExtract    = "Extract"
	FermentableDryExtract = "Dry Extract"
	FermentableAdjunct    = "Adjunct"
)

var additionRules = []struct {
	pattern  *regexp.Regexp
	addition Addition
}{
	// explicit hints in the name win over ingredient keywords
	{regexp.MustCompile(`(?i)mash`), AdditionMash},
	{regexp.MustCompile(`(?i)steep`), AdditionSteep},
	{regexp.MustCompile(`(?i)boil`), AdditionBoil},
	{regexp.MustCompile(`(?i)biscuit|black|cara|chocolate|crystal|munich|roast|special|toast|victory|vienna`), AdditionSteep},
	{regexp.MustCompile(`(?i)candi|candy|dme|dry|extract|honey|lme|liquid|sugar|syrup|turbinado`), AdditionBoil},
}

// Fermentable is an extract source. Amount is kilograms, Yield percent dry basis,
// Color degrees Lovibond.
type Fermentable struct {
	Name           *string  `json:"name,omitempty" yaml:"name,omitempty"`
	Version        *float64 `json:"version,omitempty" yaml:"version,omitempty"`
	Type           *string  `json:"type,omitempty" yaml:"type,omitempty"`
	Amount         *float64 `json:"amount,omitempty" yaml:"amount,omitempty"`
	Yield          *float64 `json:"yield,omitempty" yaml:"yield,omitempty"`
	Color          *float64 `json:"color,omitempty" yaml:"color,omitempty"`
	AddAfterBoil   *bool    `json:"add_after_boil,omitempty" yaml:"add_after_boil,omitempty"`
	Origin         *string  `json:"origin,omitempty" yaml:"origin,omitempty"`
	Supplier       *string  `json:"supplier,omitempty" yaml:"supplier,omitempty"`
	Notes          *string  `json:"notes,omitempty" yaml:"notes,omitempty"`
	CoarseFineDiff *float64 `json:"coarse_fine_diff,omitempty" yaml:"coarse_fine_diff,omitempty"`
	Moisture       *float64 `json:"moisture,omitempty" yaml:"moisture,omitempty"`
	DiastaticPower *float64 `json:"diastatic_power,omitempty" yaml:"diastatic_power,omitempty"`
	Protein        *float64 `json:"protein,omitempty" yaml:"protein,omitempty"`
	MaxInBatch     *float64 `json:"max_in_batch,omitempty" yaml:"max_in_batch,omitempty"`
	RecommendMash  *bool    `json:"recommend_mash,omitempty" yaml:"recommend_mash,omitempty"`
	IBUGalPerLb    *float64 `json:"ibu_gal_per_lb,omitempty" yaml:"ibu_gal_per_lb,omitempty"`
}

// Fields implements mapper.Target.
func (f *Fermentable) Fields() mapper.Fields {
	return mapper.Fields{
		"name":             mapper.Text(&f.Name),
		"version":          mapper.Number(&f.Version),
		"type":             mapper.Text(&f.Type),
		"amount":           mapper.Number(&f.Amount),
		"yield":            mapper.Number(&f.Yield),
		"color":            mapper.Number(&f.Color),
		"add_after_boil":   mapper.Bool(&f.AddAfterBoil),
		"origin":           mapper.Text(&f.Origin),
		"supplier":         mapper.Text(&f.Supplier),
		"notes":            mapper.Text(&f.Notes),
		"coarse_fine_diff": mapper.Number(&f.CoarseFineDiff),
		"moisture":         mapper.Number(&f.Moisture),
		"diastatic_power":  mapper.Number(&f.DiastaticPower),
		"protein":          mapper.Number(&f.Protein),
		"max_in_batch":     mapper.Number(&f.MaxInBatch),
		"recommend_mash":   mapper.Bool(&f.RecommendMash),
		"ibu_gal_per_lb":   mapper.Number(&f.IBUGalPerLb),
	}
}

// Addition classifies how the fermentable is used. Extracts, sugars and late
// additions dissolve in full; otherwise the name decides, defaulting to mash.
func (f *Fermentable) Addition() Addition {
	if f == nil {
		return AdditionMash
	}
	if f.AddAfterBoil != nil && *f.AddAfterBoil {
		return AdditionBoil
	}
	switch strings.ToLower(strings.TrimSpace(text(f.Type))) {
	case "extract", "dry extract", "sugar":
		return AdditionBoil
	}
	name := text(f.Name)
	for _, rule := range additionRules {
		if rule.pattern.MatchString(name) {
			return rule.addition
		}
	}
	return AdditionMash
}

// PPG returns the extract potential in gravity points per pound per US gallon.
func (f *Fermentable) PPG() float64 {
	if f == nil {
		return 0
	}
	return value(f.Yield) * ppgPerYieldPercent
}

// GravityUnits returns the gravity points the full extract would add to the
// given volume in liters, before efficiency losses.
func (f *Fermentable) GravityUnits(liters float64) float64 {
	if f == nil || liters <= 0 {
		return 0
	}
	return f.PPG() * KilogramsToPounds(value(f.Amount)) / LitersToGallons(liters)
}

// ColorUnits returns the malt color units the fermentable adds to the given
// volume in liters.
func (f *Fermentable) ColorUnits(liters float64) float64 {
	if f == nil || f.Amount == nil || f.Color == nil || liters <= 0 {
		return 0
	}
	return *f.Amount * *f.Color * kgPerLiterToLbPerGallon / liters
}
