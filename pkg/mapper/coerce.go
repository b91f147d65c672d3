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


package mapper

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	truthy = map[string]struct{}{"true": {}, "t": {}, "yes": {}, "y": {}, "on": {}, "1": {}}
	falsy  = map[string]struct{}{"false": {}, "f": {}, "no": {}, "n": {}, "off": {}, "0": {}}
)

// ToLower returns the lowercase form of a text input.
// Anything that is not text (nil, numbers, nil string pointers) yields "".
func ToLower(v any) string {
	switch s := v.(type) {
	case string:
		return lower(s)
	case *string:
		if s == nil {
			return ""
		}
		return lower(*s)
	default:
		return ""
	}
}

func lower(s string) string {
	if s == "" {
		return ""
	}
	// Casers keep state between calls and cannot be shared across goroutines.
	return cases.Lower(language.Und).String(s)
}

// ParseFloat coerces integer or decimal text to a float64.
// Surrounding whitespace is ignored. NaN and infinities are rejected.
func ParseFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// ParseBool coerces a truthy or falsy token (true/false, yes/no, on/off, t/f,
// y/n, 1/0) to a bool, ignoring case and surrounding whitespace.
func ParseBool(s string) (bool, bool) {
	token := ToLower(strings.TrimSpace(s))
	if _, ok := truthy[token]; ok {
		return true, true
	}
	if _, ok := falsy[token]; ok {
		return false, true
	}
	return false, false
}
