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

// DeviceState is the live binding state of one device context at one event, as
// tracked by the capture backend. Slot bindings are sparse maps from slot number
// to binding. Objects referenced by identifier are described in Objects.
type DeviceState struct {
	Objects           Objects
	InputLayout       api.ID
	VertexBuffers     map[uint32]VertexBuffer
	IndexBuffer       IndexBuffer
	VS                StageBindings
	HS                StageBindings
	DS                StageBindings
	GS                StageBindings
	PS                StageBindings
	CS                StageBindings
	StreamOut         map[uint32]StreamOutBind
	Viewports         []Viewport
	Scissors          []Scissor
	RasterizerState   api.ID
	DepthStencilState api.ID
	StencilRef        uint32
	BlendState        api.ID
	BlendFactor       [4]float32
	SampleMask        uint32
	RenderTargets     map[uint32]api.ID
	DepthTarget       api.ID
	DepthReadOnly     bool
	StencilReadOnly   bool
	UAVStartSlot      uint32
	UAVs              map[uint32]api.ID
}

// StageBindings holds the bindings of one programmable stage.
type StageBindings struct {
	Shader          api.ID
	SRVs            map[uint32]api.ID
	UAVs            map[uint32]api.ID
	Samplers        map[uint32]api.ID
	ConstantBuffers map[uint32]ConstantBufferBinding
	ClassInstances  []string
}

// ConstantBufferBinding is a constant buffer bound to a slot.
// A VecCount of zero is a binding of the whole buffer with no range.
type ConstantBufferBinding struct {
	Buffer    api.ID
	VecOffset uint32
	VecCount  uint32
}

// Objects holds the description of every live device object, keyed by identifier.
type Objects struct {
	InputLayouts       map[api.ID]InputLayoutObject
	Shaders            map[api.ID]ShaderObject
	Views              map[api.ID]View
	Samplers           map[api.ID]Sampler
	RasterizerStates   map[api.ID]RasterizerState
	DepthStencilStates map[api.ID]DepthStencilState
	BlendStates        map[api.ID]BlendState
}

// InputLayoutObject describes an input layout object.
type InputLayoutObject struct {
	Elements []Layout
	Bytecode api.ID
}

// ShaderObject describes a shader object.
type ShaderObject struct {
	Reflection       api.ID
	BindpointMapping api.BindpointMapping
}

// Stage returns the bindings of the given programmable stage, or nil.
func (d *DeviceState) Stage(stage api.ShaderStage) *StageBindings {
	switch stage {
	case api.ShaderStageVertex:
		return &d.VS
	case api.ShaderStageHull:
		return &d.HS
	case api.ShaderStageDomain:
		return &d.DS
	case api.ShaderStageGeometry:
		return &d.GS
	case api.ShaderStagePixel:
		return &d.PS
	case api.ShaderStageCompute:
		return &d.CS
	}
	return nil
}
