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


// Package recipe defines the BeerXML recipe vocabulary and the brewing metrics
// derived from it.
//
// # Entities
//
// Recipe is the root entity. It exclusively owns its Style, Mash and the ordered
// Hop, Fermentable, Yeast and Misc collections. Every optional scalar is a pointer;
// nil means the document did not provide a usable value, which is distinct from a
// present zero or an empty string.
//
// All entities implement mapper.Target, so a node tree can be mapped onto them
// with mapper.Map. Tags follow the BeerXML v1 vocabulary (NAME, BATCH_SIZE,
// MASH_STEPS, ...) folded to lowercase.
//
// # Metrics
//
// Metrics are methods on *Recipe and are recomputed on every call from the
// current field values; editing a collection between reads changes the result.
//
//	og := rec.OG()           // specific gravity
//	plato := rec.OGPlato()   // degrees Plato
//	fg := rec.FG()           // after average yeast attenuation
//	ibu := rec.IBU()         // Tinseth
//	abv := rec.ABV()         // percent by volume
//	srm := rec.Color()       // Morey
//
// Weights are kilograms and volumes liters. The gravity and color formulas are
// defined per pound per US gallon, so the conversions in units.go are applied
// internally. Missing inputs contribute nothing: no fermentables gives OG 1.0, no
// boil hops gives 0 IBU, no yeast leaves FG equal to OG.
package recipe
