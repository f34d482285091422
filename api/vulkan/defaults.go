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

package vulkan

import "github.com/google/pipestate/api"

// DefaultSampler returns the sampler reported for a sampler binding element
// with no sampler written, and the base for samplers missing from the object
// tables.
func DefaultSampler() SamplerDescriptor {
	return SamplerDescriptor{Comparison: api.CompareFuncAlwaysTrue}
}

// DefaultDepthStencil returns the depth-stencil state reported when no
// graphics pipeline is bound.
func DefaultDepthStencil() DepthStencil {
	face := StencilFace{
		FailOp:      api.StencilOpKeep,
		DepthFailOp: api.StencilOpKeep,
		PassOp:      api.StencilOpKeep,
		Func:        api.CompareFuncAlwaysTrue,
	}
	return DepthStencil{DepthCompareOp: api.CompareFuncAlwaysTrue, Front: face, Back: face}
}
