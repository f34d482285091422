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

package d3d11

import "github.com/google/pipestate/api"

// DefaultRasterizerState returns the state used when no rasterizer state
// object is bound.
func DefaultRasterizerState() RasterizerState {
	return RasterizerState{
		FillMode:  api.FillModeSolid,
		CullMode:  api.CullModeBack,
		DepthClip: true,
	}
}

// DefaultDepthStencilState returns the state used when no depth-stencil state
// object is bound.
func DefaultDepthStencilState() DepthStencilState {
	face := StencilFace{
		FailOp:      api.StencilOpKeep,
		DepthFailOp: api.StencilOpKeep,
		PassOp:      api.StencilOpKeep,
		Func:        api.CompareFuncAlwaysTrue,
	}
	return DepthStencilState{
		DepthEnable:      true,
		DepthFunc:        api.CompareFuncLess,
		DepthWrites:      true,
		StencilReadMask:  0xff,
		StencilWriteMask: 0xff,
		FrontFace:        face,
		BackFace:         face,
	}
}

// DefaultBlend returns the blend of a render target with blending disabled.
func DefaultBlend() Blend {
	eq := BlendEquation{
		Source:      api.BlendMultiplierOne,
		Destination: api.BlendMultiplierZero,
		Operation:   api.BlendOpAdd,
	}
	return Blend{Color: eq, Alpha: eq, Logic: api.LogicOpNoOp, WriteMask: 0xf}
}

// DefaultBlendState returns the state used when no blend state object is
// bound.
func DefaultBlendState() BlendState {
	blends := make([]Blend, RenderTargetSlotCount)
	for i := range blends {
		blends[i] = DefaultBlend()
	}
	return BlendState{Blends: blends}
}

// UnboundView returns the view reported for a slot with no view bound, and
// the base for views missing from the object tables.
func UnboundView() View {
	return View{NumElements: 1, ArraySize: 1}
}

// UnboundSampler returns the sampler reported for a slot with no sampler
// bound, and the base for samplers missing from the object tables.
func UnboundSampler() Sampler {
	return Sampler{Comparison: api.CompareFuncAlwaysTrue}
}
