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

// Recipe is the root of the BeerXML vocabulary.
// BatchSize and BoilSize are liters, BoilTime minutes, Efficiency percent.
// MeasuredOG and MeasuredFG hold the gravities recorded in the document (the OG and
// FG tags); the computed values are returned by OG and FG.
type Recipe struct {
	Name               *string  `json:"name,omitempty" yaml:"name,omitempty"`
	Version            *float64 `json:"version,omitempty" yaml:"version,omitempty"`
	Type               *string  `json:"type,omitempty" yaml:"type,omitempty"`
	Brewer             *string  `json:"brewer,omitempty" yaml:"brewer,omitempty"`
	AsstBrewer         *string  `json:"asst_brewer,omitempty" yaml:"asst_brewer,omitempty"`
	BatchSize          *float64 `json:"batch_size,omitempty" yaml:"batch_size,omitempty"`
	BoilSize           *float64 `json:"boil_size,omitempty" yaml:"boil_size,omitempty"`
	BoilTime           *float64 `json:"boil_time,omitempty" yaml:"boil_time,omitempty"`
	Efficiency         *float64 `json:"efficiency,omitempty" yaml:"efficiency,omitempty"`
	Notes              *string  `json:"notes,omitempty" yaml:"notes,omitempty"`
	TasteNotes         *string  `json:"taste_notes,omitempty" yaml:"taste_notes,omitempty"`
	TasteRating        *float64 `json:"taste_rating,omitempty" yaml:"taste_rating,omitempty"`
	MeasuredOG         *float64 `json:"measured_og,omitempty" yaml:"measured_og,omitempty"`
	MeasuredFG         *float64 `json:"measured_fg,omitempty" yaml:"measured_fg,omitempty"`
	FermentationStages *float64 `json:"fermentation_stages,omitempty" yaml:"fermentation_stages,omitempty"`
	PrimaryAge         *float64 `json:"primary_age,omitempty" yaml:"primary_age,omitempty"`
	PrimaryTemp        *float64 `json:"primary_temp,omitempty" yaml:"primary_temp,omitempty"`
	SecondaryAge       *float64 `json:"secondary_age,omitempty" yaml:"secondary_age,omitempty"`
	SecondaryTemp      *float64 `json:"secondary_temp,omitempty" yaml:"secondary_temp,omitempty"`
	TertiaryAge        *float64 `json:"tertiary_age,omitempty" yaml:"tertiary_age,omitempty"`
	TertiaryTemp       *float64 `json:"tertiary_temp,omitempty" yaml:"tertiary_temp,omitempty"`
	Age                *float64 `json:"age,omitempty" yaml:"age,omitempty"`
	AgeTemp            *float64 `json:"age_temp,omitempty" yaml:"age_temp,omitempty"`
	Date               *string  `json:"date,omitempty" yaml:"date,omitempty"`
	Carbonation        *float64 `json:"carbonation,omitempty" yaml:"carbonation,omitempty"`
	ForcedCarbonation  *bool    `json:"forced_carbonation,omitempty" yaml:"forced_carbonation,omitempty"`
	PrimingSugarName   *string  `json:"priming_sugar_name,omitempty" yaml:"priming_sugar_name,omitempty"`
	CarbonationTemp    *float64 `json:"carbonation_temp,omitempty" yaml:"carbonation_temp,omitempty"`
	PrimingSugarEquiv  *float64 `json:"priming_sugar_equiv,omitempty" yaml:"priming_sugar_equiv,omitempty"`
	KegPrimingFactor   *float64 `json:"keg_priming_factor,omitempty" yaml:"keg_priming_factor,omitempty"`

	Style        *Style         `json:"style,omitempty" yaml:"style,omitempty"`
	Mash         *Mash          `json:"mash,omitempty" yaml:"mash,omitempty"`
	Hops         []*Hop         `json:"hops,omitempty" yaml:"hops,omitempty"`
	Fermentables []*Fermentable `json:"fermentables,omitempty" yaml:"fermentables,omitempty"`
	Yeasts       []*Yeast       `json:"yeasts,omitempty" yaml:"yeasts,omitempty"`
	Miscs        []*Misc        `json:"miscs,omitempty" yaml:"miscs,omitempty"`
}

// Fields implements mapper.Target.
func (r *Recipe) Fields() mapper.Fields {
	return mapper.Fields{
		"name":                mapper.Text(&r.Name),
		"version":             mapper.Number(&r.Version),
		"type":                mapper.Text(&r.Type),
		"brewer":              mapper.Text(&r.Brewer),
		"asst_brewer":         mapper.Text(&r.AsstBrewer),
		"batch_size":          mapper.Number(&r.BatchSize),
		"boil_size":           mapper.Number(&r.BoilSize),
		"boil_time":           mapper.Number(&r.BoilTime),
		"efficiency":          mapper.Number(&r.Efficiency),
		"notes":               mapper.Text(&r.Notes),
		"taste_notes":         mapper.Text(&r.TasteNotes),
		"taste_rating":        mapper.Number(&r.TasteRating),
		"og":                  mapper.Number(&r.MeasuredOG),
		"fg":                  mapper.Number(&r.MeasuredFG),
		"fermentation_stages": mapper.Number(&r.FermentationStages),
		"primary_age":         mapper.Number(&r.PrimaryAge),
		"primary_temp":        mapper.Number(&r.PrimaryTemp),
		"secondary_age":       mapper.Number(&r.SecondaryAge),
		"secondary_temp":      mapper.Number(&r.SecondaryTemp),
		"tertiary_age":        mapper.Number(&r.TertiaryAge),
		"tertiary_temp":       mapper.Number(&r.TertiaryTemp),
		"age":                 mapper.Number(&r.Age),
		"age_temp":            mapper.Number(&r.AgeTemp),
		"date":                mapper.Text(&r.Date),
		"carbonation":         mapper.Number(&r.Carbonation),
		"forced_carbonation":  mapper.Bool(&r.ForcedCarbonation),
		"priming_sugar_name":  mapper.Text(&r.PrimingSugarName),
		"carbonation_temp":    mapper.Number(&r.CarbonationTemp),
		"priming_sugar_equiv": mapper.Number(&r.PrimingSugarEquiv),
		"keg_priming_factor":  mapper.Number(&r.KegPrimingFactor),
		"style":               mapper.Object(&r.Style),
		"mash":                mapper.Object(&r.Mash),
		"hops":                mapper.Collection(&r.Hops),
		"fermentables":        mapper.Collection(&r.Fermentables),
		"yeasts":              mapper.Collection(&r.Yeasts),
		"miscs":               mapper.Collection(&r.Miscs),
	}
}

// BoilHops returns the hops added to the boil, in document order.
func (r *Recipe) BoilHops() []*Hop {
	var out []*Hop
	for _, h := range r.Hops {
		if h.IsBoil() {
			out = append(out, h)
		}
	}
	return out
}

// TotalGrainWeight returns the summed fermentable weight in kilograms.
func (r *Recipe) TotalGrainWeight() float64 {
	var total float64
	for _, f := range r.Fermentables {
		if f != nil {
			total += value(f.Amount)
		}
	}
	return total
}

// StyleName returns the style's name, or "" when the recipe has none.
func (r *Recipe) StyleName() string {
	if r.Style == nil {
		return ""
	}
	return text(r.Style.Name)
}

func value(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

func text(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
