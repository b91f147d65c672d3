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
	"strings"

	"github.com/brewkit/beerxml/pkg/mapper"
)

// Hop uses as spelled by BeerXML.
const (
	HopUseBoil      = "Boil"
	HopUseDryHop    = "Dry Hop"
	HopUseMash      = "Mash"
	HopUseFirstWort = "First Wort"
	HopUseAroma     = "Aroma"
)

// Hop is a hop addition. Alpha is percent, Amount kilograms, Time minutes.
type Hop struct {
	Name          *string  `json:"name,omitempty" yaml:"name,omitempty"`
	Version       *float64 `json:"version,omitempty" yaml:"version,omitempty"`
	Alpha         *float64 `json:"alpha,omitempty" yaml:"alpha,omitempty"`
	Amount        *float64 `json:"amount,omitempty" yaml:"amount,omitempty"`
	Use           *string  `json:"use,omitempty" yaml:"use,omitempty"`
	Time          *float64 `json:"time,omitempty" yaml:"time,omitempty"`
	Notes         *string  `json:"notes,omitempty" yaml:"notes,omitempty"`
	Type          *string  `json:"type,omitempty" yaml:"type,omitempty"`
	Form          *string  `json:"form,omitempty" yaml:"form,omitempty"`
	Beta          *float64 `json:"beta,omitempty" yaml:"beta,omitempty"`
	HSI           *float64 `json:"hsi,omitempty" yaml:"hsi,omitempty"`
	Origin        *string  `json:"origin,omitempty" yaml:"origin,omitempty"`
	Substitutes   *string  `json:"substitutes,omitempty" yaml:"substitutes,omitempty"`
	Humulene      *float64 `json:"humulene,omitempty" yaml:"humulene,omitempty"`
	Caryophyllene *float64 `json:"caryophyllene,omitempty" yaml:"caryophyllene,omitempty"`
	Cohumulone    *float64 `json:"cohumulone,omitempty" yaml:"cohumulone,omitempty"`
	Myrcene       *float64 `json:"myrcene,omitempty" yaml:"myrcene,omitempty"`
}

// Fields implements mapper.Target.
func (h *Hop) Fields() mapper.Fields {
	return mapper.Fields{
		"name":          mapper.Text(&h.Name),
		"version":       mapper.Number(&h.Version),
		"alpha":         mapper.Number(&h.Alpha),
		"amount":        mapper.Number(&h.Amount),
		"use":           mapper.Text(&h.Use),
		"time":          mapper.Number(&h.Time),
		"notes":         mapper.Text(&h.Notes),
		"type":          mapper.Text(&h.Type),
		"form":          mapper.Text(&h.Form),
		"beta":          mapper.Number(&h.Beta),
		"hsi":           mapper.Number(&h.HSI),
		"origin":        mapper.Text(&h.Origin),
		"substitutes":   mapper.Text(&h.Substitutes),
		"humulene":      mapper.Number(&h.Humulene),
		"caryophyllene": mapper.Number(&h.Caryophyllene),
		"cohumulone":    mapper.Number(&h.Cohumulone),
		"myrcene":       mapper.Number(&h.Myrcene),
	}
}

// IsBoil reports whether the hop is added to the boil.
func (h *Hop) IsBoil() bool {
	return h != nil && strings.EqualFold(strings.TrimSpace(text(h.Use)), HopUseBoil)
}

// Bitterness returns the hop's IBU contribution to a wort of the given original
// gravity and volume in liters. Hops outside the boil, or without an alpha
// rating, contribute nothing.
func (h *Hop) Bitterness(og, liters float64) float64 {
	if !h.IsBoil() || h.Alpha == nil || liters <= 0 {
		return 0
	}
	mgPerLiter := (*h.Alpha / 100 * value(h.Amount) * milligramsPerKilogram) / liters
	return TinsethUtilization(og, value(h.Time)) * mgPerLiter
}
