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

package d3d11_test

import (
	"testing"

	"github.com/google/pipestate/api"
	"github.com/google/pipestate/api/d3d11"
	"github.com/google/pipestate/core/assert"
	"github.com/google/pipestate/core/log"
)

const (
	layoutID  = api.ID(100)
	vsID      = api.ID(200)
	psID      = api.ID(201)
	csID      = api.ID(202)
	srvID     = api.ID(300)
	rtvID     = api.ID(301)
	dsvID     = api.ID(302)
	uavID     = api.ID(303)
	staleID   = api.ID(399)
	samplerID = api.ID(400)
	rsID      = api.ID(500)
	blendID   = api.ID(501)
	bufferID  = api.ID(600)
	textureID = api.ID(601)
)

func testDevice() *d3d11.DeviceState {
	rgba8 := api.ResourceFormat{Name: "R8G8B8A8_UNORM", CompCount: 4, CompByteWidth: 1, CompType: api.CompTypeUNorm}
	return &d3d11.DeviceState{
		Objects: d3d11.Objects{
			InputLayouts: map[api.ID]d3d11.InputLayoutObject{
				layoutID: {
					Elements: []d3d11.Layout{
						{SemanticName: "POSITION", Format: rgba8, ByteOffset: d3d11.LayoutByteOffset(0)},
						{SemanticName: "TEXCOORD", Format: rgba8, ByteOffset: d3d11.LayoutByteOffset(d3d11.TightlyPacked)},
					},
					Bytecode: vsID,
				},
			},
			Shaders: map[api.ID]d3d11.ShaderObject{
				vsID: {Reflection: 700, BindpointMapping: api.BindpointMapping{InputAttributes: []int32{0, 1}}},
				psID: {Reflection: 701},
			},
			Views: map[api.ID]d3d11.View{
				srvID: {Resource: textureID, Type: api.TextureDimTexture2D, Format: rgba8, NumMipLevels: 4, ArraySize: 1},
				rtvID: {Resource: textureID, Type: api.TextureDimTexture2D, Format: rgba8},
				dsvID: {Resource: 602, Type: api.TextureDimTexture2D},
				uavID: {Resource: bufferID, Type: api.TextureDimBuffer, NumElements: 64, Flags: api.BufferViewFlagsRaw},
			},
			Samplers: map[api.ID]d3d11.Sampler{
				samplerID: {AddressU: api.AddressModeClampBorder, BorderColor: [4]float32{1, 0, 0, 1}},
			},
			RasterizerStates: map[api.ID]d3d11.RasterizerState{
				rsID: {FillMode: api.FillModeWireframe, CullMode: api.CullModeFront, ScissorEnable: true},
			},
			BlendStates: map[api.ID]d3d11.BlendState{
				blendID: {AlphaToCoverage: true, Blends: []d3d11.Blend{{Enabled: true, WriteMask: 0x7}}},
			},
		},
		InputLayout:   layoutID,
		VertexBuffers: map[uint32]d3d11.VertexBuffer{3: {Buffer: bufferID, Stride: 32}},
		IndexBuffer:   d3d11.IndexBuffer{Buffer: bufferID, Offset: 16},
		VS: d3d11.StageBindings{
			Shader: vsID,
			ConstantBuffers: map[uint32]d3d11.ConstantBufferBinding{
				0: {Buffer: bufferID},
				2: {Buffer: bufferID, VecOffset: 16, VecCount: 32},
			},
		},
		PS: d3d11.StageBindings{
			Shader:         psID,
			SRVs:           map[uint32]api.ID{5: srvID, 9: staleID},
			Samplers:       map[uint32]api.ID{1: samplerID},
			ClassInstances: []string{"g_lighting"},
		},
		CS: d3d11.StageBindings{
			Shader: csID,
			UAVs:   map[uint32]api.ID{2: uavID},
		},
		Viewports:         []d3d11.Viewport{{Width: 1920, Height: 1080, MaxDepth: 1}},
		Scissors:          []d3d11.Scissor{{Right: 1920, Bottom: 1080}},
		RasterizerState:   rsID,
		DepthStencilState: staleID,
		StencilRef:        3,
		BlendState:        blendID,
		BlendFactor:       [4]float32{1, 1, 1, 1},
		SampleMask:        0xffffffff,
		RenderTargets:     map[uint32]api.ID{0: rtvID},
		DepthTarget:       dsvID,
	}
}

func TestBuildEmptyDevice(t *testing.T) {
	ctx := log.Testing(t)
	s := d3d11.BuildState(ctx, &d3d11.DeviceState{})
	for _, stage := range api.Stages {
		sh := s.Stage(stage)
		assert.For(ctx, "%v stage", stage).That(sh.Stage).Equals(stage)
		assert.For(ctx, "%v active", stage).ThatBoolean(sh.IsActive()).IsFalse()
		assert.For(ctx, "%v SRVs", stage).ThatSlice(sh.SRVs).IsLength(d3d11.SRVSlotCount)
		assert.For(ctx, "%v samplers", stage).ThatSlice(sh.Samplers).IsLength(d3d11.SamplerSlotCount)
		assert.For(ctx, "%v CBs", stage).ThatSlice(sh.ConstantBuffers).IsLength(d3d11.ConstantBufferSlotCount)
	}
	assert.For(ctx, "CS UAVs").ThatSlice(s.CS.UAVs).IsLength(d3d11.UAVSlotCount)
	assert.For(ctx, "PS UAVs").ThatSlice(s.PS.UAVs).IsEmpty()
	assert.For(ctx, "VBs").ThatSlice(s.InputAssembly.VertexBuffers).IsLength(d3d11.VertexBufferSlotCount)
	assert.For(ctx, "layouts").ThatSlice(s.InputAssembly.Layouts).IsEmpty()
	assert.For(ctx, "SO").ThatSlice(s.StreamOut.Outputs).IsLength(d3d11.StreamOutSlotCount)
	assert.For(ctx, "viewports").ThatSlice(s.Rasterizer.Viewports).IsLength(d3d11.ViewportSlotCount)
	assert.For(ctx, "RTs").ThatSlice(s.OutputMerger.RenderTargets).IsLength(d3d11.RenderTargetSlotCount)
	assert.For(ctx, "rasterizer").That(s.Rasterizer.State).DeepEquals(d3d11.DefaultRasterizerState())
	assert.For(ctx, "depth").That(s.OutputMerger.DepthStencilState).DeepEquals(d3d11.DefaultDepthStencilState())
	assert.For(ctx, "blend").That(s.OutputMerger.BlendState).DeepEquals(d3d11.DefaultBlendState())
}

func TestBuildUnboundDefaults(t *testing.T) {
	ctx := log.Testing(t)
	d := &d3d11.DeviceState{
		PS: d3d11.StageBindings{
			SRVs:     map[uint32]api.ID{2: api.ID(77)},
			Samplers: map[uint32]api.ID{3: api.ID(78)},
		},
	}
	s := d3d11.BuildState(ctx, d)
	for _, test := range []struct {
		name string
		view d3d11.View
	}{
		{"unbound SRV", s.PS.SRVs[0]},
		{"stale SRV", s.PS.SRVs[2]},
		{"unbound RT", s.OutputMerger.RenderTargets[0]},
		{"unbound UAV", s.CS.UAVs[0]},
		{"depth target", s.OutputMerger.DepthTarget},
	} {
		assert.For(ctx, "%s elements", test.name).That(test.view.NumElements).Equals(uint32(1))
		assert.For(ctx, "%s array size", test.name).That(test.view.ArraySize).Equals(uint32(1))
	}
	assert.For(ctx, "stale SRV id").That(s.PS.SRVs[2].Object).Equals(api.ID(77))
	for _, slot := range []int{0, 3} {
		smp := s.PS.Samplers[slot]
		assert.For(ctx, "sampler %d comparison", slot).That(smp.Comparison).Equals(api.CompareFuncAlwaysTrue)
		assert.For(ctx, "sampler %d address", slot).That(smp.AddressU).Equals(api.AddressModeWrap)
	}
	assert.For(ctx, "stale sampler id").That(s.PS.Samplers[3].Sampler).Equals(api.ID(78))
}

func TestBuildSlotAlignment(t *testing.T) {
	ctx := log.Testing(t)
	s := d3d11.BuildState(ctx, testDevice())

	ia := s.InputAssembly
	assert.For(ctx, "layout").That(ia.Layout).Equals(layoutID)
	assert.For(ctx, "bytecode").That(ia.Bytecode).Equals(vsID)
	assert.For(ctx, "layouts").ThatSlice(ia.Layouts).IsLength(2)
	assert.For(ctx, "packed").ThatBoolean(ia.Layouts[1].IsTightlyPacked()).IsTrue()
	assert.For(ctx, "vb 3").That(ia.VertexBuffers[3]).Equals(d3d11.VertexBuffer{Buffer: bufferID, Stride: 32})
	assert.For(ctx, "vb 0").That(ia.VertexBuffers[0].Buffer.IsNull()).Equals(true)

	assert.For(ctx, "VS reflection").That(s.VS.Reflection).Equals(api.ID(700))
	assert.For(ctx, "VS mapping").That(s.VS.BindpointMapping.InputAttributes).DeepEquals([]int32{0, 1})
	assert.For(ctx, "unranged CB").That(s.VS.ConstantBuffers[0]).Equals(
		d3d11.ConstantBuffer{Buffer: bufferID, VecOffset: 0, VecCount: d3d11.WholeBufferVecCount})
	assert.For(ctx, "ranged CB").That(s.VS.ConstantBuffers[2]).Equals(
		d3d11.ConstantBuffer{Buffer: bufferID, VecOffset: 16, VecCount: 32})
	assert.For(ctx, "unbound CB").That(s.VS.ConstantBuffers[1]).Equals(d3d11.ConstantBuffer{})

	ps := s.PS
	assert.For(ctx, "SRV 5").That(ps.SRVs[5].Object).Equals(srvID)
	assert.For(ctx, "SRV 5 resource").That(ps.SRVs[5].Resource).Equals(textureID)
	assert.For(ctx, "SRV 4").That(ps.SRVs[4]).Equals(d3d11.UnboundView())
	assert.For(ctx, "sampler 1").That(ps.Samplers[1].Sampler).Equals(samplerID)
	assert.For(ctx, "sampler 1 border").ThatBoolean(ps.Samplers[1].UsesBorderColor()).IsTrue()
	assert.For(ctx, "class instances").ThatSlice(ps.ClassInstances).Equals([]string{"g_lighting"})

	assert.For(ctx, "CS UAV").That(s.CS.UAVs[2].Object).Equals(uavID)
	assert.For(ctx, "CS stale shader").That(s.CS.Object).Equals(csID)
	assert.For(ctx, "CS reflection").That(s.CS.Reflection.IsNull()).Equals(true)

	rs := s.Rasterizer
	assert.For(ctx, "fill").That(rs.State.FillMode).Equals(api.FillModeWireframe)
	assert.For(ctx, "rs id").That(rs.State.State).Equals(rsID)
	assert.For(ctx, "viewport 0").ThatBoolean(rs.Viewports[0].Enabled).IsTrue()
	assert.For(ctx, "viewport 1").ThatBoolean(rs.Viewports[1].Enabled).IsFalse()
	assert.For(ctx, "scissor 0").ThatBoolean(rs.Scissors[0].Enabled).IsTrue()

	om := s.OutputMerger
	assert.For(ctx, "RT 0").That(om.RenderTargets[0].Object).Equals(rtvID)
	assert.For(ctx, "depth target").That(om.DepthTarget.Object).Equals(dsvID)
	assert.For(ctx, "blend").ThatBoolean(om.BlendState.AlphaToCoverage).IsTrue()
	assert.For(ctx, "blends").ThatSlice(om.BlendState.Blends).IsLength(d3d11.RenderTargetSlotCount)
	assert.For(ctx, "blend 0").That(om.BlendState.Blends[0].WriteMask).Equals(uint8(0x7))
	assert.For(ctx, "blend 7").That(om.BlendState.Blends[7]).Equals(d3d11.DefaultBlend())
	assert.For(ctx, "sample mask").That(om.BlendState.SampleMask).Equals(uint32(0xffffffff))
}

func TestBuildStaleReferences(t *testing.T) {
	ctx := log.Testing(t)
	s := d3d11.BuildState(ctx, testDevice())

	// The identifiers are kept, with default-valued details.
	stale := d3d11.UnboundView()
	stale.Object = staleID
	assert.For(ctx, "stale SRV").That(s.PS.SRVs[9]).Equals(stale)
	ds := d3d11.DefaultDepthStencilState()
	ds.State, ds.StencilRef = staleID, 3
	assert.For(ctx, "stale depth-stencil").That(s.OutputMerger.DepthStencilState).DeepEquals(ds)

	// Queries against them resolve to not found.
	table := api.NewTable(api.Resource{ID: srvID}, api.Resource{ID: staleID})
	table.Remove(staleID)
	_, ok := table.Resolve(s.PS.SRVs[9].Object)
	assert.For(ctx, "resolve stale").ThatBoolean(ok).IsFalse()
	_, ok = table.Resolve(s.PS.SRVs[5].Object)
	assert.For(ctx, "resolve live").ThatBoolean(ok).IsTrue()
}

func TestBuildIdempotent(t *testing.T) {
	ctx := log.Testing(t)
	d := testDevice()
	a := d3d11.BuildState(ctx, d)
	b := d3d11.BuildState(ctx, d)
	assert.For(ctx, "rebuild").That(a).DeepEquals(b)
}

func TestBuildSharesNoMemory(t *testing.T) {
	ctx := log.Testing(t)
	d := testDevice()
	s := d3d11.BuildState(ctx, d)
	d.Objects.InputLayouts[layoutID].Elements[0].SemanticName = "CHANGED"
	d.Objects.Shaders[vsID].BindpointMapping.InputAttributes[0] = 9
	d.PS.ClassInstances[0] = "changed"
	assert.For(ctx, "layout").ThatString(s.InputAssembly.Layouts[0].SemanticName).Equals("POSITION")
	assert.For(ctx, "mapping").That(s.VS.BindpointMapping.InputAttributes[0]).Equals(int32(0))
	assert.For(ctx, "class instances").ThatString(s.PS.ClassInstances[0]).Equals("g_lighting")
}

func TestBuildIgnoresOutOfRangeSlots(t *testing.T) {
	ctx := log.Testing(t)
	d := &d3d11.DeviceState{
		PS: d3d11.StageBindings{SRVs: map[uint32]api.ID{d3d11.SRVSlotCount: srvID}},
		VS: d3d11.StageBindings{UAVs: map[uint32]api.ID{0: uavID}},
	}
	s := d3d11.BuildState(log.PutFilter(ctx, log.Error), d)
	assert.For(ctx, "SRVs").ThatSlice(s.PS.SRVs).IsLength(d3d11.SRVSlotCount)
	assert.For(ctx, "VS UAVs").ThatSlice(s.VS.UAVs).IsEmpty()
}

func TestBuildNormalizesPackedSentinel(t *testing.T) {
	ctx := log.Testing(t)
	raw := d3d11.TightlyPacked
	d := &d3d11.DeviceState{
		Objects: d3d11.Objects{InputLayouts: map[api.ID]d3d11.InputLayoutObject{
			layoutID: {Elements: []d3d11.Layout{{SemanticName: "COLOR", ByteOffset: &raw}}},
		}},
		InputLayout: layoutID,
	}
	s := d3d11.BuildState(ctx, d)
	assert.For(ctx, "packed").ThatBoolean(s.InputAssembly.Layouts[0].IsTightlyPacked()).IsTrue()
	assert.For(ctx, "source").That(*d.Objects.InputLayouts[layoutID].Elements[0].ByteOffset).Equals(d3d11.TightlyPacked)
}
