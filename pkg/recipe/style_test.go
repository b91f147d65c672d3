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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStyleCheck(t *testing.T) {
	s := &Style{
		Name:     ptr("Dry Stout"),
		OGMin:    ptr(1.036),
		OGMax:    ptr(1.050),
		IBUMin:   ptr(30.0),
		ColorMax: ptr(40.0),
	}

	got := s.Check(Summary{OG: 1.059, IBU: 35, Color: 38})
	require.Len(t, got, 3)

	assert.Equal(t, "og", got[0].Metric)
	assert.False(t, got[0].Within)
	assert.Equal(t, "ibu", got[1].Metric)
	assert.True(t, got[1].Within)
	assert.Nil(t, got[1].Max)
	assert.Equal(t, "color", got[2].Metric)
	assert.True(t, got[2].Within)
}

func TestStyleCheckWithoutStyle(t *testing.T) {
	var s *Style
	assert.Nil(t, s.Check(Summary{}))
	assert.Nil(t, (&Recipe{}).CheckStyle())
}

func TestMashTotalTime(t *testing.T) {
	m := &Mash{Steps: []*MashStep{
		{StepTime: ptr(60.0), RampTime: ptr(2.0)},
		{StepTime: ptr(10.0)},
		nil,
	}}

	assert.InDelta(t, 72.0, m.TotalTime(), 0)

	var missing *Mash
	assert.InDelta(t, 0.0, missing.TotalTime(), 0)
}
