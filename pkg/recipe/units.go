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

import "math"

const (
	poundsPerKilogram       = 2.20462
	gallonsPerLiter         = 0.264172
	kgPerLiterToLbPerGallon = 8.3454
	milligramsPerKilogram   = 1000000

	// ppgPerYieldPercent converts a dry-basis yield percentage into gravity
	// points per pound per gallon (sucrose yields 46.214 PPG).
	ppgPerYieldPercent = 0.46214

	defaultMashEfficiency = 75.0
	steepEfficiency       = 50.0

	moreyCoefficient = 1.4922
	moreyExponent    = 0.6859
)

// KilogramsToPounds converts a weight in kilograms to pounds.
func KilogramsToPounds(kg float64) float64 {
	return kg * poundsPerKilogram
}

// LitersToGallons converts a volume in liters to US gallons.
func LitersToGallons(l float64) float64 {
	return l * gallonsPerLiter
}

// Plato converts a specific gravity to degrees Plato.
func Plato(sg float64) float64 {
	return -616.868 + 1111.14*sg - 630.272*sg*sg + 135.997*sg*sg*sg
}

// TinsethUtilization returns the fraction of alpha acids isomerized after boiling
// for the given minutes in wort of the given gravity.
func TinsethUtilization(og, minutes float64) float64 {
	bigness := 1.65 * math.Pow(0.000125, og-1)
	boilFactor := (1 - math.Exp(-0.04*minutes)) / 4.15
	return bigness * boilFactor
}

// Morey converts a malt color unit sum to SRM.
func Morey(mcu float64) float64 {
	if mcu <= 0 {
		return 0
	}
	return moreyCoefficient * math.Pow(mcu, moreyExponent)
}
