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

// OG returns the estimated original gravity.
func (r *Recipe) OG() float64 {
	og := 1.0
	liters := value(r.BatchSize)
	if liters <= 0 {
		return og
	}
	for _, f := range r.Fermentables {
		if f == nil {
			continue
		}
		og += f.GravityUnits(liters) * r.efficiency(f.Addition()) / 1000
	}
	return og
}

// OGPlato returns OG in degrees Plato.
func (r *Recipe) OGPlato() float64 {
	return Plato(r.OG())
}

// FG returns the estimated final gravity after the average yeast attenuation.
func (r *Recipe) FG() float64 {
	return r.fg(r.OG())
}

// FGPlato returns FG in degrees Plato.
func (r *Recipe) FGPlato() float64 {
	return Plato(r.FG())
}

// AverageAttenuation returns the mean attenuation in percent across the yeasts
// that declare one, or 0 when none does.
func (r *Recipe) AverageAttenuation() float64 {
	var (
		sum float64
		n   int
	)
	for _, y := range r.Yeasts {
		if y == nil || y.Attenuation == nil {
			continue
		}
		sum += *y.Attenuation
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// IBU returns the total bitterness of the boil hops (Tinseth). The value is not
// rounded.
func (r *Recipe) IBU() float64 {
	liters := value(r.BatchSize)
	if liters <= 0 {
		return 0
	}
	og := r.OG()
	var ibu float64
	for _, h := range r.Hops {
		ibu += h.Bitterness(og, liters)
	}
	return ibu
}

// ABV returns the alcohol by volume in percent.
func (r *Recipe) ABV() float64 {
	og := r.OG()
	fg := r.fg(og)
	return abv(og, fg)
}

// ABVSimple returns the alcohol by volume using the linear 131.25 approximation.
func (r *Recipe) ABVSimple() float64 {
	og := r.OG()
	return (og - r.fg(og)) * 131.25
}

// Color returns the beer color in SRM (Morey).
func (r *Recipe) Color() float64 {
	liters := value(r.BatchSize)
	if liters <= 0 {
		return 0
	}
	var mcu float64
	for _, f := range r.Fermentables {
		mcu += f.ColorUnits(liters)
	}
	return Morey(mcu)
}

func (r *Recipe) fg(og float64) float64 {
	return og - (og-1)*r.AverageAttenuation()/100
}

// efficiency returns the extraction fraction for an addition.
func (r *Recipe) efficiency(a Addition) float64 {
	switch a {
	case AdditionSteep:
		return steepEfficiency / 100
	case AdditionBoil:
		return 1
	default:
		if r.Efficiency != nil && *r.Efficiency > 0 {
			return *r.Efficiency / 100
		}
		return defaultMashEfficiency / 100
	}
}

func abv(og, fg float64) float64 {
	if fg <= 0 {
		return 0
	}
	return ((1.05 * (og - fg)) / fg) / 0.79 * 100
}
