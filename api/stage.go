// Copyright (C) 2017 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package api

// Stages lists every ShaderStage in pipeline order.
var Stages = []ShaderStage{
	ShaderStageVertex,
	ShaderStageHull,
	ShaderStageDomain,
	ShaderStageGeometry,
	ShaderStagePixel,
	ShaderStageCompute,
}

// Mask returns the ShaderStageMask holding only s.
func (s ShaderStage) Mask() ShaderStageMask { return ShaderStageMask(1 << s) }

// Contains returns true if s is part of the mask.
func (m ShaderStageMask) Contains(s ShaderStage) bool { return m&s.Mask() != 0 }

// ShaderStageMaskAll holds every stage.
const ShaderStageMaskAll = ShaderStageMaskVertex | ShaderStageMaskHull | ShaderStageMaskDomain |
	ShaderStageMaskGeometry | ShaderStageMaskPixel | ShaderStageMaskCompute
