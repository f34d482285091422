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

// Package d3d11 is the register-slot pipeline state schema.
//
// Resources are bound to numbered slots on each shader stage. Every slot list
// in a State is indexed by slot number and sized to the API slot count, so an
// unbound slot holds a record with a null ID. State objects are described by
// value with their ResourceId kept alongside.
package d3d11

import "github.com/google/pipestate/api"

// Layout describes a single input layout element for one vertex input.
type Layout struct {
	SemanticName         string             `doc:"The semantic name for this input."`
	SemanticIndex        uint32             `doc:"The semantic index for this input."`
	Format               api.ResourceFormat `doc:"The ResourceFormat describing how the input data is interpreted."`
	InputSlot            uint32             `doc:"The vertex buffer input slot where the data is sourced from."`
	ByteOffset           *uint32            `doc:"The byte offset from the start of the vertex data in the vertex buffer at InputSlot. Null if the element is packed tightly after the previous element, or at 0 if it is the first element."`
	PerInstance          bool               `doc:"True if the vertex data is instance-rate."`
	InstanceDataStepRate uint32             `doc:"If PerInstance is true, the number of instances drawn with each element of instance data before advancing to the next."`
}

// VertexBuffer describes a single vertex buffer binding.
type VertexBuffer struct {
	Buffer api.ID `doc:"The ResourceId of the buffer bound to this slot."`
	Stride uint32 `doc:"The byte stride between the start of one set of vertex data and the next."`
	Offset uint32 `doc:"The byte offset from the start of the buffer to the beginning of the vertex data."`
}

// IndexBuffer describes the index buffer binding.
type IndexBuffer struct {
	Buffer api.ID `doc:"The ResourceId of the index buffer."`
	Offset uint32 `doc:"The byte offset from the start of the buffer to the beginning of the index data."`
}

// InputAssembly describes the input assembler stage.
type InputAssembly struct {
	Layouts       []Layout       `doc:"The elements of the bound input layout."`
	Layout        api.ID         `doc:"The ResourceId of the input layout object."`
	Bytecode      api.ID         `doc:"The ResourceId of the shader reflection data for the bytecode the input layout was created with."`
	VertexBuffers []VertexBuffer `doc:"The vertex buffer bindings, indexed by slot."`
	IndexBuffer   IndexBuffer    `doc:"The index buffer binding."`
}

// View describes a resource view: a shader resource, unordered access, render target or depth-stencil view.
type View struct {
	Object            api.ID              `doc:"The ResourceId of the view itself."`
	Resource          api.ID              `doc:"The ResourceId of the underlying resource the view refers to."`
	Type              api.TextureDim      `doc:"The TextureDim of the view type."`
	Format            api.ResourceFormat  `doc:"The ResourceFormat that the view uses."`
	Structured        bool                `doc:"True if this view describes a structured buffer."`
	BufferStructCount uint32              `doc:"If the view has a hidden counter, the current value of the counter."`
	ElementSize       uint32              `doc:"The byte size of a single element in the view. Either the byte size of Format or the structured buffer element size, as appropriate."`
	FirstElement      uint32              `doc:"Valid for buffers. The first element to be used in the view."`
	NumElements       uint32              `doc:"Valid for buffers. The number of elements to be used in the view."`
	Flags             api.BufferViewFlags `doc:"Valid for buffers. The flags for additional view properties."`
	HighestMip        uint32              `doc:"Valid for textures. The highest mip that is available through the view."`
	NumMipLevels      uint32              `doc:"Valid for textures. The number of mip levels in the view."`
	ArraySize         uint32              `doc:"Valid for texture arrays or 3D textures. The number of slices in the view."`
	FirstArraySlice   uint32              `doc:"Valid for texture arrays or 3D textures. The first slice available through the view."`
}

// Sampler describes a sampler state object.
type Sampler struct {
	Sampler       api.ID            `doc:"The ResourceId of the sampler state object."`
	AddressU      api.AddressMode   `doc:"The AddressMode in the U direction."`
	AddressV      api.AddressMode   `doc:"The AddressMode in the V direction."`
	AddressW      api.AddressMode   `doc:"The AddressMode in the W direction."`
	BorderColor   [4]float32        `doc:"The RGBA border color."`
	Comparison    api.CompareFunc   `doc:"The CompareFunc for comparison samplers."`
	Filter        api.TextureFilter `doc:"The TextureFilter describing the filtering mode."`
	MaxAnisotropy uint32            `doc:"The maximum anisotropic filtering level to use."`
	MaxLOD        float32           `doc:"The maximum mip level that can be used."`
	MinLOD        float32           `doc:"The minimum mip level that can be used."`
	MipLODBias    float32           `doc:"A bias to apply to the calculated mip level before sampling."`
}

// ConstantBuffer describes a constant buffer binding.
type ConstantBuffer struct {
	Buffer    api.ID `doc:"The ResourceId of the buffer."`
	VecOffset uint32 `doc:"The offset of the buffer binding, in units of float4 (16 bytes). Zero unless the binding specified a range."`
	VecCount  uint32 `doc:"The size of the buffer binding, in units of float4 (16 bytes). 4096 (64 KiB) unless the binding specified a range."`
}

// Shader describes one programmable shader stage.
type Shader struct {
	Object           api.ID               `doc:"The ResourceId of the shader object itself."`
	Reflection       api.ID               `doc:"The ResourceId of the reflection data for this shader."`
	BindpointMapping api.BindpointMapping `doc:"The BindpointMapping matching the reflection data with the bound slots."`
	Stage            api.ShaderStage      `doc:"The ShaderStage this shader is bound to."`
	SRVs             []View               `doc:"The bound shader resource views, indexed by slot."`
	UAVs             []View               `doc:"The bound unordered access views, indexed by slot. Only valid for the compute stage."`
	Samplers         []Sampler            `doc:"The bound samplers, indexed by slot."`
	ConstantBuffers  []ConstantBuffer     `doc:"The bound constant buffers, indexed by slot."`
	ClassInstances   []string             `doc:"The names of the bound class instances."`
}

// StreamOutBind describes a binding on the stream-out stage.
type StreamOutBind struct {
	Buffer api.ID `doc:"The ResourceId of the buffer."`
	Offset uint32 `doc:"The byte offset of the stream-output binding."`
}

// StreamOut describes the stream-out stage bindings.
type StreamOut struct {
	Outputs []StreamOutBind `doc:"The bound buffers, indexed by slot."`
}

// Viewport describes a single viewport.
type Viewport struct {
	X        float32 `doc:"Top-left X co-ordinate of the viewport."`
	Y        float32 `doc:"Top-left Y co-ordinate of the viewport."`
	Width    float32 `doc:"The width of the viewport."`
	Height   float32 `doc:"The height of the viewport."`
	MinDepth float32 `doc:"The minimum depth of the viewport."`
	MaxDepth float32 `doc:"The maximum depth of the viewport."`
	Enabled  bool    `doc:"True if this viewport is enabled."`
}

// Scissor describes a single scissor rect.
type Scissor struct {
	Left    int32 `doc:"Top-left X co-ordinate of the scissor region."`
	Top     int32 `doc:"Top-left Y co-ordinate of the scissor region."`
	Right   int32 `doc:"Bottom-right X co-ordinate of the scissor region."`
	Bottom  int32 `doc:"Bottom-right Y co-ordinate of the scissor region."`
	Enabled bool  `doc:"True if this scissor region is enabled."`
}

// RasterizerState describes a rasterizer state object.
type RasterizerState struct {
	State                     api.ID       `doc:"The ResourceId of the rasterizer state object."`
	FillMode                  api.FillMode `doc:"The polygon fill mode."`
	CullMode                  api.CullMode `doc:"The polygon culling mode."`
	FrontCCW                  bool         `doc:"True if counter-clockwise polygons are front-facing. False if clockwise polygons are front-facing."`
	DepthBias                 int32        `doc:"The fixed depth bias value to apply to z-values."`
	DepthBiasClamp            float32      `doc:"The clamp value for the depth bias calculated from DepthBias and SlopeScaledDepthBias."`
	SlopeScaledDepthBias      float32      `doc:"The slope-scaled depth bias value to apply to z-values."`
	DepthClip                 bool         `doc:"True if pixels outside of the near and far depth planes should be clipped."`
	ScissorEnable             bool         `doc:"True if the scissor test should be applied."`
	MultisampleEnable         bool         `doc:"True if the quadrilateral MSAA algorithm should be used on MSAA targets."`
	AntialiasedLineEnable     bool         `doc:"True if lines should be anti-aliased. Ignored if MultisampleEnable is false."`
	ForcedSampleCount         uint32       `doc:"A sample count to force rasterization to when UAV rendering or rasterizing, or 0 to not force any sample count."`
	ConservativeRasterization bool         `doc:"True if a conservative rasterization algorithm should be used."`
}

// Rasterizer describes the rasterizer stage.
type Rasterizer struct {
	Viewports []Viewport      `doc:"The viewports, indexed by slot."`
	Scissors  []Scissor       `doc:"The scissor regions, indexed by slot."`
	State     RasterizerState `doc:"The details of the rasterization state."`
}

// StencilFace describes the stencil operations for one polygon facing.
type StencilFace struct {
	FailOp      api.StencilOp   `doc:"The StencilOp to apply if the stencil-test fails."`
	DepthFailOp api.StencilOp   `doc:"The StencilOp to apply if the depth-test fails."`
	PassOp      api.StencilOp   `doc:"The StencilOp to apply if the stencil-test passes."`
	Func        api.CompareFunc `doc:"The CompareFunc to use for testing stencil values."`
}

// DepthStencilState describes a depth-stencil state object.
type DepthStencilState struct {
	State            api.ID          `doc:"The ResourceId of the depth-stencil state object."`
	DepthEnable      bool            `doc:"True if depth testing should be performed."`
	DepthFunc        api.CompareFunc `doc:"The CompareFunc to use for testing depth values."`
	DepthWrites      bool            `doc:"True if depth values should be written to the depth target."`
	StencilEnable    bool            `doc:"True if stencil operations should be performed."`
	StencilReadMask  uint8           `doc:"The mask for reading stencil values."`
	StencilWriteMask uint8           `doc:"The mask for writing stencil values."`
	FrontFace        StencilFace     `doc:"What happens to the stencil for front-facing polygons."`
	BackFace         StencilFace     `doc:"What happens to the stencil for back-facing polygons."`
	StencilRef       uint32          `doc:"The current stencil reference value."`
}

// BlendEquation describes one blend operation.
type BlendEquation struct {
	Source      api.BlendMultiplier `doc:"The BlendMultiplier for the source blend value."`
	Destination api.BlendMultiplier `doc:"The BlendMultiplier for the destination blend value."`
	Operation   api.BlendOp         `doc:"The BlendOp to use in the blend calculation."`
}

// Blend describes the blend configuration for one render target.
type Blend struct {
	Color        BlendEquation `doc:"The blending for color values."`
	Alpha        BlendEquation `doc:"The blending for alpha values."`
	Logic        api.LogicOp   `doc:"The LogicOp to use for logic operations, if LogicEnabled is true."`
	Enabled      bool          `doc:"True if blending is enabled for this target."`
	LogicEnabled bool          `doc:"True if the logic operation in Logic should be used."`
	WriteMask    uint8         `doc:"The mask for writes to the render target."`
}

// BlendState describes a blend state object.
type BlendState struct {
	State            api.ID     `doc:"The ResourceId of the blend state object."`
	AlphaToCoverage  bool       `doc:"True if alpha-to-coverage should be used when blending to an MSAA target."`
	IndependentBlend bool       `doc:"True if each target uses its own blend. False if the first blend applies to all targets."`
	Blends           []Blend    `doc:"The blend operations for each target."`
	BlendFactor      [4]float32 `doc:"The constant blend factor to use in blend equations."`
	SampleMask       uint32     `doc:"The mask determining which samples are written to."`
}

// OutputMerger describes the output-merger stage.
type OutputMerger struct {
	DepthStencilState DepthStencilState `doc:"The details of the depth-stencil state."`
	BlendState        BlendState        `doc:"The details of the blend state."`
	RenderTargets     []View            `doc:"The bound render targets, indexed by slot."`
	UAVStartSlot      uint32            `doc:"The first output slot that holds a UAV."`
	UAVs              []View            `doc:"The bound unordered access views, indexed by slot."`
	DepthTarget       View              `doc:"The bound depth-stencil target."`
	DepthReadOnly     bool              `doc:"True if depth access to the depth-stencil target is read-only."`
	StencilReadOnly   bool              `doc:"True if stencil access to the depth-stencil target is read-only."`
}

// State is the full pipeline state at one event.
// Every stage record is present, even when the stage is inactive.
type State struct {
	InputAssembly InputAssembly `doc:"The input assembly stage."`
	VS            Shader        `doc:"The vertex shader stage."`
	HS            Shader        `doc:"The hull shader stage."`
	DS            Shader        `doc:"The domain shader stage."`
	GS            Shader        `doc:"The geometry shader stage."`
	PS            Shader        `doc:"The pixel shader stage."`
	CS            Shader        `doc:"The compute shader stage."`
	StreamOut     StreamOut     `doc:"The stream-out stage."`
	Rasterizer    Rasterizer    `doc:"The rasterizer stage."`
	OutputMerger  OutputMerger  `doc:"The output-merger stage."`
}
