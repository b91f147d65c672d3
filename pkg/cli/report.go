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


package cli

import (
	"github.com/brewkit/beerxml/pkg/beerxml"
	"github.com/brewkit/beerxml/pkg/header"
	"github.com/brewkit/beerxml/pkg/recipe"
	"github.com/brewkit/beerxml/pkg/serializer"
)

// SummaryReport is the output of the parse command.
type SummaryReport struct {
	header.Header `json:",inline" yaml:",inline"`

	Documents []DocumentSummary `json:"documents" yaml:"documents"`
}

// DocumentSummary holds the recipe summaries of one document.
type DocumentSummary struct {
	Source  string           `json:"source" yaml:"source"`
	Recipes []recipe.Summary `json:"recipes" yaml:"recipes"`
}

func newSummaryReport(docs []beerxml.Document) *SummaryReport {
	report := &SummaryReport{
		Header:    header.New(header.KindRecipeSummary, header.WithVersion(version)),
		Documents: make([]DocumentSummary, 0, len(docs)),
	}
	for _, d := range docs {
		ds := DocumentSummary{Source: d.Path, Recipes: make([]recipe.Summary, 0, len(d.Recipes))}
		for _, r := range d.Recipes {
			ds.Recipes = append(ds.Recipes, r.Summary())
		}
		report.Documents = append(report.Documents, ds)
	}
	return report
}

// Sheets implements serializer.Tabular.
func (r *SummaryReport) Sheets() []serializer.Sheet {
	s := serializer.Sheet{Name: "summary", Header: summaryHeader}
	for _, d := range r.Documents {
		for _, sum := range d.Recipes {
			s.Rows = append(s.Rows, summaryRow(d.Source, sum))
		}
	}
	return []serializer.Sheet{s}
}

var summaryHeader = []string{
	"source", "name", "brewer", "style", "og", "og_plato", "fg", "fg_plato",
	"abv", "ibu", "color", "attenuation",
}

func summaryRow(source string, s recipe.Summary) []any {
	return []any{
		source, s.Name, str(s.Brewer), s.Style, s.OG, s.OGPlato, s.FG, s.FGPlato,
		s.ABV, s.IBU, s.Color, s.Attenuation,
	}
}

// RecipeReport is the output of the show command.
type RecipeReport struct {
	header.Header `json:",inline" yaml:",inline"`

	Documents []DocumentRecipes `json:"documents" yaml:"documents"`
}

// DocumentRecipes holds the full recipes of one document.
type DocumentRecipes struct {
	Source  string         `json:"source" yaml:"source"`
	Recipes []RecipeDetail `json:"recipes" yaml:"recipes"`
}

// RecipeDetail pairs a parsed recipe with its computed summary.
type RecipeDetail struct {
	Summary recipe.Summary `json:"summary" yaml:"summary"`
	Recipe  *recipe.Recipe `json:"recipe" yaml:"recipe"`
}

func newRecipeReport(docs []beerxml.Document) *RecipeReport {
	report := &RecipeReport{
		Header:    header.New(header.KindRecipeDetail, header.WithVersion(version)),
		Documents: make([]DocumentRecipes, 0, len(docs)),
	}
	for _, d := range docs {
		dr := DocumentRecipes{Source: d.Path, Recipes: make([]RecipeDetail, 0, len(d.Recipes))}
		for _, r := range d.Recipes {
			dr.Recipes = append(dr.Recipes, RecipeDetail{Summary: r.Summary(), Recipe: r})
		}
		report.Documents = append(report.Documents, dr)
	}
	return report
}

// Sheets implements serializer.Tabular with one sheet per ingredient kind.
func (r *RecipeReport) Sheets() []serializer.Sheet {
	summary := serializer.Sheet{Name: "summary", Header: summaryHeader}
	fermentables := serializer.Sheet{Name: "fermentables", Header: []string{
		"source", "recipe", "name", "type", "amount_kg", "yield", "color", "addition"}}
	hops := serializer.Sheet{Name: "hops", Header: []string{
		"source", "recipe", "name", "alpha", "amount_kg", "use", "time", "form", "ibu"}}
	yeasts := serializer.Sheet{Name: "yeasts", Header: []string{
		"source", "recipe", "name", "laboratory", "product_id", "attenuation"}}
	miscs := serializer.Sheet{Name: "miscs", Header: []string{
		"source", "recipe", "name", "type", "use", "amount", "time"}}
	steps := serializer.Sheet{Name: "mash_steps", Header: []string{
		"source", "recipe", "name", "type", "step_temp", "step_time", "ramp_time"}}

	for _, d := range r.Documents {
		for _, rd := range d.Recipes {
			summary.Rows = append(summary.Rows, summaryRow(d.Source, rd.Summary))

			rec := rd.Recipe
			if rec == nil {
				continue
			}
			prefix := []any{d.Source, rd.Summary.Name}
			row := func(cells ...any) []any {
				return append(append([]any{}, prefix...), cells...)
			}

			for _, f := range rec.Fermentables {
				fermentables.Rows = append(fermentables.Rows, row(
					str(f.Name), str(f.Type), num(f.Amount), num(f.Yield), num(f.Color), string(f.Addition())))
			}
			liters := 0.0
			if rec.BatchSize != nil {
				liters = *rec.BatchSize
			}
			for _, h := range rec.Hops {
				hops.Rows = append(hops.Rows, row(
					str(h.Name), num(h.Alpha), num(h.Amount), str(h.Use), num(h.Time), str(h.Form),
					h.Bitterness(rd.Summary.OG, liters)))
			}
			for _, y := range rec.Yeasts {
				yeasts.Rows = append(yeasts.Rows, row(
					str(y.Name), str(y.Laboratory), str(y.ProductID), num(y.Attenuation)))
			}
			for _, m := range rec.Miscs {
				miscs.Rows = append(miscs.Rows, row(
					str(m.Name), str(m.Type), str(m.Use), num(m.Amount), num(m.Time)))
			}
			if rec.Mash != nil {
				for _, s := range rec.Mash.Steps {
					steps.Rows = append(steps.Rows, row(
						str(s.Name), str(s.Type), num(s.StepTemp), num(s.StepTime), num(s.RampTime)))
				}
			}
		}
	}

	return []serializer.Sheet{summary, fermentables, hops, yeasts, miscs, steps}
}

// StyleReport is the output of the check command.
type StyleReport struct {
	header.Header `json:",inline" yaml:",inline"`

	Documents []DocumentStyle `json:"documents" yaml:"documents"`
}

// DocumentStyle holds the style checks of one document.
type DocumentStyle struct {
	Source  string        `json:"source" yaml:"source"`
	Recipes []StyleResult `json:"recipes" yaml:"recipes"`
}

// StyleResult is the conformance of one recipe to its declared style.
// Within is true when every declared range holds; a recipe without a style
// has no checks and is within.
type StyleResult struct {
	Name   string               `json:"name" yaml:"name"`
	Style  string               `json:"style,omitempty" yaml:"style,omitempty"`
	Within bool                 `json:"within" yaml:"within"`
	Checks []recipe.Conformance `json:"checks" yaml:"checks"`
}

func newStyleReport(docs []beerxml.Document) *StyleReport {
	report := &StyleReport{
		Header:    header.New(header.KindStyleCheck, header.WithVersion(version)),
		Documents: make([]DocumentStyle, 0, len(docs)),
	}
	for _, d := range docs {
		ds := DocumentStyle{Source: d.Path, Recipes: make([]StyleResult, 0, len(d.Recipes))}
		for _, r := range d.Recipes {
			checks := r.CheckStyle()
			if checks == nil {
				checks = []recipe.Conformance{}
			}
			res := StyleResult{
				Name:   r.Summary().Name,
				Style:  r.StyleName(),
				Within: true,
				Checks: checks,
			}
			for _, c := range checks {
				res.Within = res.Within && c.Within
			}
			ds.Recipes = append(ds.Recipes, res)
		}
		report.Documents = append(report.Documents, ds)
	}
	return report
}

// OutOfRange counts recipes with at least one metric outside its style range.
func (r *StyleReport) OutOfRange() int {
	n := 0
	for _, d := range r.Documents {
		for _, res := range d.Recipes {
			if !res.Within {
				n++
			}
		}
	}
	return n
}

// Sheets implements serializer.Tabular.
func (r *StyleReport) Sheets() []serializer.Sheet {
	s := serializer.Sheet{Name: "style", Header: []string{
		"source", "recipe", "style", "metric", "value", "min", "max", "within"}}
	for _, d := range r.Documents {
		for _, res := range d.Recipes {
			for _, c := range res.Checks {
				s.Rows = append(s.Rows, []any{
					d.Source, res.Name, res.Style, c.Metric, c.Value, num(c.Min), num(c.Max), c.Within})
			}
		}
	}
	return []serializer.Sheet{s}
}

// str and num turn optional values into cells; absent values stay nil.
func str(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}

func num(p *float64) any {
	if p == nil {
		return nil
	}
	return *p
}
