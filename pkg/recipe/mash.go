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

// MashStep is one rest of a mash schedule. Temperatures are Celsius, times minutes.
type MashStep struct {
	Name         *string  `json:"name,omitempty" yaml:"name,omitempty"`
	Version      *float64 `json:"version,omitempty" yaml:"version,omitempty"`
	Type         *string  `json:"type,omitempty" yaml:"type,omitempty"`
	InfuseAmount *float64 `json:"infuse_amount,omitempty" yaml:"infuse_amount,omitempty"`
	StepTemp     *float64 `json:"step_temp,omitempty" yaml:"step_temp,omitempty"`
	StepTime     *float64 `json:"step_time,omitempty" yaml:"step_time,omitempty"`
	RampTime     *float64 `json:"ramp_time,omitempty" yaml:"ramp_time,omitempty"`
	EndTemp      *float64 `json:"end_temp,omitempty" yaml:"end_temp,omitempty"`
}

// Fields implements mapper.Target.
func (s *MashStep) Fields() mapper.Fields {
	return mapper.Fields{
		"name":          mapper.Text(&s.Name),
		"version":       mapper.Number(&s.Version),
		"type":          mapper.Text(&s.Type),
		"infuse_amount": mapper.Number(&s.InfuseAmount),
		"step_temp":     mapper.Number(&s.StepTemp),
		"step_time":     mapper.Number(&s.StepTime),
		"ramp_time":     mapper.Number(&s.RampTime),
		"end_temp":      mapper.Number(&s.EndTemp),
	}
}

// Mash is a mash profile with its ordered steps.
type Mash struct {
	Name            *string     `json:"name,omitempty" yaml:"name,omitempty"`
	Version         *float64    `json:"version,omitempty" yaml:"version,omitempty"`
	GrainTemp       *float64    `json:"grain_temp,omitempty" yaml:"grain_temp,omitempty"`
	TunTemp         *float64    `json:"tun_temp,omitempty" yaml:"tun_temp,omitempty"`
	SpargeTemp      *float64    `json:"sparge_temp,omitempty" yaml:"sparge_temp,omitempty"`
	PH              *float64    `json:"ph,omitempty" yaml:"ph,omitempty"`
	TunWeight       *float64    `json:"tun_weight,omitempty" yaml:"tun_weight,omitempty"`
	TunSpecificHeat *float64    `json:"tun_specific_heat,omitempty" yaml:"tun_specific_heat,omitempty"`
	EquipAdjust     *bool       `json:"equip_adjust,omitempty" yaml:"equip_adjust,omitempty"`
	Notes           *string     `json:"notes,omitempty" yaml:"notes,omitempty"`
	Steps           []*MashStep `json:"steps,omitempty" yaml:"steps,omitempty"`
}

// Fields implements mapper.Target.
func (m *Mash) Fields() mapper.Fields {
	return mapper.Fields{
		"name":              mapper.Text(&m.Name),
		"version":           mapper.Number(&m.Version),
		"grain_temp":        mapper.Number(&m.GrainTemp),
		"tun_temp":          mapper.Number(&m.TunTemp),
		"sparge_temp":       mapper.Number(&m.SpargeTemp),
		"ph":                mapper.Number(&m.PH),
		"tun_weight":        mapper.Number(&m.TunWeight),
		"tun_specific_heat": mapper.Number(&m.TunSpecificHeat),
		"equip_adjust":      mapper.Bool(&m.EquipAdjust),
		"notes":             mapper.Text(&m.Notes),
		"mash_steps":        mapper.Collection(&m.Steps),
	}
}

// TotalTime returns the summed step and ramp time in minutes.
func (m *Mash) TotalTime() float64 {
	if m == nil {
		return 0
	}
	var total float64
	for _, s := range m.Steps {
		if s == nil {
			continue
		}
		total += value(s.StepTime) + value(s.RampTime)
	}
	return total
}
