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

import (
	"context"

	"github.com/google/pipestate/api"
	"github.com/google/pipestate/core/data/deep"
	"github.com/google/pipestate/core/log"
)

// BuildState returns the complete pipeline state described by d.
//
// Every stage record is populated and every slot list has its API slot count.
// Identifiers that are missing from the object tables are kept in the
// returned state with default-valued details. The returned State shares no
// memory with d.
func BuildState(ctx context.Context, d *DeviceState) *State {
	b := builder{ctx: ctx, d: d}
	return &State{
		InputAssembly: b.inputAssembly(),
		VS:            b.shader(api.ShaderStageVertex),
		HS:            b.shader(api.ShaderStageHull),
		DS:            b.shader(api.ShaderStageDomain),
		GS:            b.shader(api.ShaderStageGeometry),
		PS:            b.shader(api.ShaderStagePixel),
		CS:            b.shader(api.ShaderStageCompute),
		StreamOut:     b.streamOut(),
		Rasterizer:    b.rasterizer(),
		OutputMerger:  b.outputMerger(),
	}
}

type builder struct {
	ctx context.Context
	d   *DeviceState
}

func (b builder) stale(kind string, id api.ID) {
	log.D(log.V{"id": id}.Bind(b.ctx), "%s not found in the device object tables", kind)
}

func (b builder) outOfRange(kind string, slot uint32, count int) bool {
	if int(slot) < count {
		return false
	}
	log.W(b.ctx, "%s slot %d is outside the %d API slots. Ignored.", kind, slot, count)
	return true
}

func (b builder) inputAssembly() InputAssembly {
	d := b.d
	ia := InputAssembly{
		Layout:        d.InputLayout,
		VertexBuffers: make([]VertexBuffer, VertexBufferSlotCount),
		IndexBuffer:   d.IndexBuffer,
	}
	if !d.InputLayout.IsNull() {
		if o, ok := d.Objects.InputLayouts[d.InputLayout]; ok {
			ia.Layouts = deep.MustClone(o.Elements).([]Layout)
			for i := range ia.Layouts {
				// Backends may hand over the serialized sentinel.
				l := &ia.Layouts[i]
				l.ByteOffset = LayoutByteOffset(l.RawByteOffset())
			}
			ia.Bytecode = o.Bytecode
		} else {
			b.stale("Input layout", d.InputLayout)
		}
	}
	for slot, vb := range d.VertexBuffers {
		if !b.outOfRange("Vertex buffer", slot, VertexBufferSlotCount) {
			ia.VertexBuffers[slot] = vb
		}
	}
	return ia
}

func (b builder) view(id api.ID) View {
	if id.IsNull() {
		return UnboundView()
	}
	v, ok := b.d.Objects.Views[id]
	if !ok {
		b.stale("View", id)
		v = UnboundView()
	}
	v.Object = id
	return v
}

func (b builder) views(kind string, bound map[uint32]api.ID, count int) []View {
	out := make([]View, count)
	for i := range out {
		out[i] = UnboundView()
	}
	for slot, id := range bound {
		if !b.outOfRange(kind, slot, count) {
			out[slot] = b.view(id)
		}
	}
	return out
}

func (b builder) sampler(id api.ID) Sampler {
	if id.IsNull() {
		return UnboundSampler()
	}
	s, ok := b.d.Objects.Samplers[id]
	if !ok {
		b.stale("Sampler", id)
		s = UnboundSampler()
	}
	s.Sampler = id
	return s
}

func (b builder) shader(stage api.ShaderStage) Shader {
	in := b.d.Stage(stage)
	s := Shader{
		Object:          in.Shader,
		Stage:           stage,
		SRVs:            b.views("SRV", in.SRVs, SRVSlotCount),
		Samplers:        make([]Sampler, SamplerSlotCount),
		ConstantBuffers: make([]ConstantBuffer, ConstantBufferSlotCount),
		ClassInstances:  deep.MustClone(in.ClassInstances).([]string),
	}
	for i := range s.Samplers {
		s.Samplers[i] = UnboundSampler()
	}
	if !in.Shader.IsNull() {
		if o, ok := b.d.Objects.Shaders[in.Shader]; ok {
			s.Reflection = o.Reflection
			s.BindpointMapping = deep.MustClone(o.BindpointMapping).(api.BindpointMapping)
		} else {
			b.stale("Shader", in.Shader)
		}
	}
	for slot, id := range in.Samplers {
		if !b.outOfRange("Sampler", slot, SamplerSlotCount) {
			s.Samplers[slot] = b.sampler(id)
		}
	}
	for slot, cb := range in.ConstantBuffers {
		if b.outOfRange("Constant buffer", slot, ConstantBufferSlotCount) || cb.Buffer.IsNull() {
			continue
		}
		s.ConstantBuffers[slot] = ConstantBuffer{Buffer: cb.Buffer, VecOffset: cb.VecOffset, VecCount: cb.VecCount}
		if cb.VecCount == 0 {
			s.ConstantBuffers[slot].VecOffset = 0
			s.ConstantBuffers[slot].VecCount = WholeBufferVecCount
		}
	}
	switch {
	case stage == api.ShaderStageCompute:
		s.UAVs = b.views("UAV", in.UAVs, UAVSlotCount)
	case len(in.UAVs) > 0:
		log.W(b.ctx, "%v stage has UAV bindings. Only the compute stage binds UAVs. Ignored.", stage)
	}
	return s
}

func (b builder) streamOut() StreamOut {
	so := StreamOut{Outputs: make([]StreamOutBind, StreamOutSlotCount)}
	for slot, bind := range b.d.StreamOut {
		if !b.outOfRange("Stream-out", slot, StreamOutSlotCount) {
			so.Outputs[slot] = bind
		}
	}
	return so
}

func (b builder) rasterizer() Rasterizer {
	d := b.d
	rs := Rasterizer{
		Viewports: make([]Viewport, ViewportSlotCount),
		Scissors:  make([]Scissor, ViewportSlotCount),
		State:     DefaultRasterizerState(),
	}
	if !d.RasterizerState.IsNull() {
		if o, ok := d.Objects.RasterizerStates[d.RasterizerState]; ok {
			rs.State = o
		} else {
			b.stale("Rasterizer state", d.RasterizerState)
		}
	}
	rs.State.State = d.RasterizerState
	for i, v := range d.Viewports {
		if !b.outOfRange("Viewport", uint32(i), ViewportSlotCount) {
			v.Enabled = true
			rs.Viewports[i] = v
		}
	}
	for i, sc := range d.Scissors {
		if !b.outOfRange("Scissor", uint32(i), ViewportSlotCount) {
			sc.Enabled = rs.State.ScissorEnable
			rs.Scissors[i] = sc
		}
	}
	return rs
}

func (b builder) outputMerger() OutputMerger {
	d := b.d
	om := OutputMerger{
		DepthStencilState: DefaultDepthStencilState(),
		BlendState:        DefaultBlendState(),
		RenderTargets:     b.views("Render target", d.RenderTargets, RenderTargetSlotCount),
		UAVStartSlot:      d.UAVStartSlot,
		UAVs:              b.views("UAV", d.UAVs, UAVSlotCount),
		DepthTarget:       b.view(d.DepthTarget),
		DepthReadOnly:     d.DepthReadOnly,
		StencilReadOnly:   d.StencilReadOnly,
	}
	if !d.DepthStencilState.IsNull() {
		if o, ok := d.Objects.DepthStencilStates[d.DepthStencilState]; ok {
			om.DepthStencilState = o
		} else {
			b.stale("Depth-stencil state", d.DepthStencilState)
		}
	}
	om.DepthStencilState.State = d.DepthStencilState
	om.DepthStencilState.StencilRef = d.StencilRef

	if !d.BlendState.IsNull() {
		if o, ok := d.Objects.BlendStates[d.BlendState]; ok {
			om.BlendState = o
			om.BlendState.Blends = make([]Blend, RenderTargetSlotCount)
			for i := range om.BlendState.Blends {
				if i < len(o.Blends) {
					om.BlendState.Blends[i] = o.Blends[i]
				} else {
					om.BlendState.Blends[i] = DefaultBlend()
				}
			}
		} else {
			b.stale("Blend state", d.BlendState)
		}
	}
	om.BlendState.State = d.BlendState
	om.BlendState.BlendFactor = d.BlendFactor
	om.BlendState.SampleMask = d.SampleMask
	return om
}
