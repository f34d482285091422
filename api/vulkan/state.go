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

// Package vulkan is the descriptor-set pipeline state schema.
//
// Resources reach shaders through descriptor sets bound to a pipeline. Each
// set holds a BindingTable indexed by binding number, and each binding holds
// one BindingElement per array element. Image state is tracked per
// subresource range in ImageData.
package vulkan

import "github.com/google/pipestate/api"

// BufferDescriptor is the payload of a buffer or texel buffer binding element.
type BufferDescriptor struct {
	View   api.ID             `doc:"For texel buffers, the ResourceId of the buffer view. Null for other buffer bindings."`
	Buffer api.ID             `doc:"The ResourceId of the underlying buffer."`
	Format api.ResourceFormat `doc:"For texel buffers, the ResourceFormat that the view uses."`
	Offset uint64             `doc:"The byte offset where the bound range starts in the underlying buffer."`
	Size   uint64             `doc:"The number of bytes in the bound range."`
}

// ImageDescriptor is the payload of an image binding element.
type ImageDescriptor struct {
	View      api.ID                `doc:"The ResourceId of the image view."`
	Image     api.ID                `doc:"The ResourceId of the underlying image."`
	Format    api.ResourceFormat    `doc:"The ResourceFormat that the view uses."`
	Swizzle   [4]api.TextureSwizzle `doc:"The TextureSwizzle applied to each of the four channels."`
	BaseMip   uint32                `doc:"The first mip level used in the view."`
	BaseLayer uint32                `doc:"For 3D textures and texture arrays, the first slice used in the view."`
	NumMips   uint32                `doc:"The number of mip levels in the view."`
	NumLayers uint32                `doc:"For 3D textures and texture arrays, the number of array slices in the view."`
}

// SamplerDescriptor is the payload of a sampler binding element.
type SamplerDescriptor struct {
	Sampler       api.ID            `doc:"The ResourceId of the sampler object."`
	Immutable     bool              `doc:"True if this is an immutable sampler baked into the set layout."`
	Filter        api.TextureFilter `doc:"The TextureFilter describing the filtering mode."`
	AddressU      api.AddressMode   `doc:"The AddressMode in the U direction."`
	AddressV      api.AddressMode   `doc:"The AddressMode in the V direction."`
	AddressW      api.AddressMode   `doc:"The AddressMode in the W direction."`
	MipLODBias    float32           `doc:"A bias to apply to the calculated mip level before sampling."`
	MaxAnisotropy float32           `doc:"The maximum anisotropic filtering level to use."`
	Comparison    api.CompareFunc   `doc:"The CompareFunc for comparison samplers."`
	MinLOD        float32           `doc:"The minimum mip level that can be used."`
	MaxLOD        float32           `doc:"The maximum mip level that can be used."`
	BorderColor   [4]float32        `doc:"The RGBA border color."`
	Unnormalized  bool              `doc:"True if unnormalized co-ordinates are used in this sampler."`
}

// BindingElement is the contents of one element of a descriptor binding.
// Only the payloads implied by the Type of the owning DescriptorBinding are
// meaningful. Use DescriptorBinding.BufferAt, ImageAt and SamplerAt to read them.
type BindingElement struct {
	Buffer  *BufferDescriptor  `doc:"The buffer payload, for buffer and texel buffer bindings. Null for other binding types."`
	Image   *ImageDescriptor   `doc:"The image payload, for image, combined image-sampler and input attachment bindings. Null for other binding types."`
	Sampler *SamplerDescriptor `doc:"The sampler payload, for sampler and combined image-sampler bindings. Null for other binding types."`
}

// DescriptorBinding is the contents of one binding within a descriptor set.
type DescriptorBinding struct {
	DescriptorCount uint32              `doc:"How many descriptors are in this binding array. Zero if the binding is declared by the layout but was never written."`
	Type            api.BindType        `doc:"The BindType of this binding. This decides which payloads of each element are meaningful."`
	StageFlags      api.ShaderStageMask `doc:"The ShaderStageMask of the stages where this binding is visible."`
	Elements        []BindingElement    `doc:"The binding elements. Holds DescriptorCount elements, so a non-array binding has one."`
}

// DescriptorSet is the contents of one bound descriptor set.
type DescriptorSet struct {
	Layout   api.ID       `doc:"The ResourceId of the descriptor set layout that matches this set."`
	Set      api.ID       `doc:"The ResourceId of the descriptor set object. Null if no set is bound at this index."`
	Bindings BindingTable `doc:"The bindings within this set, indexed by binding number. Holds one entry per binding number up to the highest one the layout declares."`
}

// Pipeline describes a pipeline object and its descriptor set bindings.
type Pipeline struct {
	Object         api.ID          `doc:"The ResourceId of the pipeline object."`
	Flags          uint32          `doc:"The flags used to create the pipeline object."`
	DescriptorSets []DescriptorSet `doc:"The descriptor sets, indexed by set number as declared by the pipeline layout."`
}

// IndexBuffer describes the index buffer binding.
type IndexBuffer struct {
	Buffer api.ID `doc:"The ResourceId of the index buffer."`
	Offset uint64 `doc:"The byte offset from the start of the buffer to the beginning of the index data."`
}

// InputAssembly describes the input assembly configuration.
type InputAssembly struct {
	PrimitiveRestartEnable bool        `doc:"True if primitive restart is enabled for strip primitives."`
	IndexBuffer            IndexBuffer `doc:"The index buffer binding."`
}

// VertexAttribute describes the configuration of a single vertex attribute.
type VertexAttribute struct {
	Location   uint32             `doc:"The location in the shader that is bound to this attribute."`
	Binding    uint32             `doc:"The vertex binding where data will be sourced from."`
	Format     api.ResourceFormat `doc:"The ResourceFormat describing how each input element will be interpreted."`
	ByteOffset uint32             `doc:"The byte offset from the start of each vertex in the binding to this attribute."`
}

// VertexBinding describes a vertex binding.
type VertexBinding struct {
	Binding     uint32 `doc:"The vertex buffer binding number where data will be sourced from."`
	ByteStride  uint32 `doc:"The byte stride between the start of one set of vertex data and the next."`
	PerInstance bool   `doc:"True if the vertex data is instance-rate."`
}

// VertexBuffer describes a single vertex buffer binding.
type VertexBuffer struct {
	Buffer api.ID `doc:"The ResourceId of the buffer bound to this binding."`
	Offset uint64 `doc:"The byte offset from the start of the buffer to the beginning of the vertex data."`
}

// VertexInput describes the fixed-function vertex input fetch setup.
type VertexInput struct {
	Attributes    []VertexAttribute `doc:"The vertex attributes."`
	Bindings      []VertexBinding   `doc:"The vertex bindings."`
	VertexBuffers []VertexBuffer    `doc:"The vertex buffers, indexed by binding number."`
}

// SpecInfo is the provided value for a specialization constant.
type SpecInfo struct {
	SpecID uint32 `doc:"The specialization constant ID."`
	Data   []byte `doc:"The contents of the constant."`
}

// Shader describes one programmable shader stage.
type Shader struct {
	Object           api.ID               `doc:"The ResourceId of the shader module object."`
	EntryPoint       string               `doc:"The name of the entry point in the shader module that is used."`
	Reflection       api.ID               `doc:"The ResourceId of the reflection data for this shader."`
	BindpointMapping api.BindpointMapping `doc:"The BindpointMapping matching the reflection data with the descriptor bindings."`
	Stage            api.ShaderStage      `doc:"The ShaderStage this shader is bound to."`
	Specialization   []SpecInfo           `doc:"The provided specialization constants."`
}

// Tessellation describes the state of the fixed-function tessellator.
type Tessellation struct {
	NumControlPoints uint32 `doc:"The number of control points in each input patch."`
}

// Viewport describes a single viewport.
type Viewport struct {
	X        float32 `doc:"The X co-ordinate of the viewport."`
	Y        float32 `doc:"The Y co-ordinate of the viewport."`
	Width    float32 `doc:"The width of the viewport."`
	Height   float32 `doc:"The height of the viewport."`
	MinDepth float32 `doc:"The minimum depth of the viewport."`
	MaxDepth float32 `doc:"The maximum depth of the viewport."`
}

// Scissor describes a single scissor region.
type Scissor struct {
	X      int32 `doc:"The X co-ordinate of the scissor region."`
	Y      int32 `doc:"The Y co-ordinate of the scissor region."`
	Width  int32 `doc:"The width of the scissor region."`
	Height int32 `doc:"The height of the scissor region."`
}

// ViewportScissor is a viewport paired with its scissor region.
type ViewportScissor struct {
	Viewport Viewport `doc:"The viewport."`
	Scissor  Scissor  `doc:"The scissor region."`
}

// ViewState describes the viewport setup.
type ViewState struct {
	ViewportScissors []ViewportScissor `doc:"The viewports and their scissor regions."`
}

// Raster describes the rasterization state.
type Raster struct {
	DepthClampEnable        bool         `doc:"True if pixels outside of the near and far depth planes should be clamped to 0.0 to 1.0 and not clipped."`
	RasterizerDiscardEnable bool         `doc:"True if primitives should be discarded during rasterization."`
	FrontCCW                bool         `doc:"True if counter-clockwise polygons are front-facing. False if clockwise polygons are front-facing."`
	FillMode                api.FillMode `doc:"The polygon fill mode."`
	CullMode                api.CullMode `doc:"The polygon culling mode."`
	DepthBias               float32      `doc:"The fixed depth bias value to apply to z-values."`
	DepthBiasClamp          float32      `doc:"The clamp value for the depth bias calculated from DepthBias and SlopeScaledDepthBias."`
	SlopeScaledDepthBias    float32      `doc:"The slope-scaled depth bias value to apply to z-values."`
	LineWidth               float32      `doc:"The fixed line width in pixels."`
}

// MultiSample describes the multisampling state.
type MultiSample struct {
	RasterSamples       uint32  `doc:"How many samples to use when rasterizing."`
	SampleShadingEnable bool    `doc:"True if rendering should happen at sample-rate frequency."`
	MinSampleShading    float32 `doc:"The minimum sample shading rate."`
	SampleMask          uint32  `doc:"A mask that generated samples are combined with using a bitwise AND."`
}

// BlendEquation describes one blend operation.
type BlendEquation struct {
	Source      api.BlendMultiplier `doc:"The BlendMultiplier for the source blend value."`
	Destination api.BlendMultiplier `doc:"The BlendMultiplier for the destination blend value."`
	Operation   api.BlendOp         `doc:"The BlendOp to use in the blend calculation."`
}

// Blend describes the blend configuration for one attachment.
type Blend struct {
	Enabled   bool          `doc:"True if blending is enabled for this attachment."`
	Color     BlendEquation `doc:"The blending for color values."`
	Alpha     BlendEquation `doc:"The blending for alpha values."`
	WriteMask uint8         `doc:"The mask for writes to the attachment."`
}

// ColorBlend describes the pipeline blending state.
type ColorBlend struct {
	AlphaToCoverageEnable bool        `doc:"True if alpha-to-coverage should be used when blending to an MSAA target."`
	AlphaToOneEnable      bool        `doc:"True if alpha-to-one should be used when blending to an MSAA target."`
	LogicOpEnable         bool        `doc:"True if the logic operation in Logic should be used."`
	Logic                 api.LogicOp `doc:"The LogicOp to use for logic operations, if LogicOpEnable is true."`
	Attachments           []Blend     `doc:"The blending configuration for each color attachment."`
	BlendConstants        [4]float32  `doc:"The constant blend factor to use in blend equations."`
}

// StencilFace describes the stencil operations for one polygon facing.
type StencilFace struct {
	FailOp      api.StencilOp   `doc:"The StencilOp to apply if the stencil-test fails."`
	DepthFailOp api.StencilOp   `doc:"The StencilOp to apply if the depth-test fails."`
	PassOp      api.StencilOp   `doc:"The StencilOp to apply if the stencil-test passes."`
	Func        api.CompareFunc `doc:"The CompareFunc to use for testing stencil values."`
	Reference   uint32          `doc:"The current stencil reference value."`
	CompareMask uint32          `doc:"The mask for testing stencil values."`
	WriteMask   uint32          `doc:"The mask for writing stencil values."`
}

// DepthStencil describes the pipeline depth-stencil state.
type DepthStencil struct {
	DepthTestEnable   bool            `doc:"True if depth testing should be performed."`
	DepthWriteEnable  bool            `doc:"True if depth values should be written to the depth target."`
	DepthBoundsEnable bool            `doc:"True if depth bounds tests should be applied."`
	DepthCompareOp    api.CompareFunc `doc:"The CompareFunc to use for testing depth values."`
	StencilTestEnable bool            `doc:"True if stencil operations should be performed."`
	Front             StencilFace     `doc:"What happens to the stencil for front-facing polygons."`
	Back              StencilFace     `doc:"What happens to the stencil for back-facing polygons."`
	MinDepthBounds    float32         `doc:"The near plane bounding value."`
	MaxDepthBounds    float32         `doc:"The far plane bounding value."`
}

// RenderPass describes the setup of a render pass and its current subpass.
type RenderPass struct {
	Object                 api.ID   `doc:"The ResourceId of the render pass."`
	InputAttachments       []uint32 `doc:"Indices into the framebuffer attachments for input attachments."`
	ColorAttachments       []uint32 `doc:"Indices into the framebuffer attachments for color attachments."`
	ResolveAttachments     []uint32 `doc:"Indices into the framebuffer attachments for resolve attachments."`
	DepthStencilAttachment *uint32  `doc:"The index into the framebuffer attachments for the depth-stencil attachment. Null if there is no depth-stencil attachment."`
}

// Attachment describes a single attachment in a framebuffer object.
type Attachment struct {
	View      api.ID                `doc:"The ResourceId of the image view itself."`
	Image     api.ID                `doc:"The ResourceId of the underlying image that the view refers to."`
	Format    api.ResourceFormat    `doc:"The ResourceFormat that the view uses."`
	Swizzle   [4]api.TextureSwizzle `doc:"The TextureSwizzle applied to each of the four channels."`
	BaseMip   uint32                `doc:"The first mip level used in the attachment."`
	BaseLayer uint32                `doc:"For 3D textures and texture arrays, the first slice used in the attachment."`
	NumMips   uint32                `doc:"The number of mip levels in the attachment."`
	NumLayers uint32                `doc:"For 3D textures and texture arrays, the number of array slices in the attachment."`
}

// Framebuffer describes a framebuffer object and its attachments.
type Framebuffer struct {
	Object      api.ID       `doc:"The ResourceId of the framebuffer object."`
	Attachments []Attachment `doc:"The attachments of this framebuffer."`
	Width       uint32       `doc:"The width of this framebuffer in pixels."`
	Height      uint32       `doc:"The height of this framebuffer in pixels."`
	Layers      uint32       `doc:"The number of layers in this framebuffer."`
}

// RenderArea describes the render area of a render pass instance.
type RenderArea struct {
	X      int32 `doc:"The X co-ordinate of the render area."`
	Y      int32 `doc:"The Y co-ordinate of the render area."`
	Width  int32 `doc:"The width of the render area."`
	Height int32 `doc:"The height of the render area."`
}

// CurrentPass describes the render pass instance active at the event.
type CurrentPass struct {
	RenderPass  RenderPass  `doc:"The render pass that is currently active."`
	Framebuffer Framebuffer `doc:"The framebuffer that is currently being used."`
	RenderArea  RenderArea  `doc:"The area that is currently being rendered to."`
}

// ImageLayout is the layout of a range of subresources in an image.
type ImageLayout struct {
	BaseMip   uint32 `doc:"The first mip level in the range."`
	BaseLayer uint32 `doc:"For 3D textures and texture arrays, the first slice in the range."`
	NumMips   uint32 `doc:"The number of mip levels in the range."`
	NumLayers uint32 `doc:"For 3D textures and texture arrays, the number of array slices in the range."`
	Name      string `doc:"The name of the current image state."`
}

// ImageData is the current layout of every tracked subresource of an image.
// The ranges in Layouts never overlap.
type ImageData struct {
	Image   api.ID        `doc:"The ResourceId of the image."`
	Layouts []ImageLayout `doc:"The disjoint subresource ranges of the image and their states, sorted by first mip then first layer."`
}

// State is the full pipeline state at one event.
// Every stage record is present, even when the stage is inactive.
type State struct {
	Compute       Pipeline      `doc:"The currently bound compute pipeline, if any."`
	Graphics      Pipeline      `doc:"The currently bound graphics pipeline, if any."`
	InputAssembly InputAssembly `doc:"The input assembly stage."`
	VertexInput   VertexInput   `doc:"The vertex input stage."`
	VS            Shader        `doc:"The vertex shader stage."`
	TCS           Shader        `doc:"The tessellation control shader stage."`
	TES           Shader        `doc:"The tessellation evaluation shader stage."`
	GS            Shader        `doc:"The geometry shader stage."`
	FS            Shader        `doc:"The fragment shader stage."`
	CS            Shader        `doc:"The compute shader stage."`
	Tessellation  Tessellation  `doc:"The tessellation stage."`
	ViewState     ViewState     `doc:"The viewport setup."`
	Raster        Raster        `doc:"The rasterization state."`
	MultiSample   MultiSample   `doc:"The multisample setup."`
	ColorBlend    ColorBlend    `doc:"The color blending state."`
	DepthStencil  DepthStencil  `doc:"The depth-stencil state."`
	CurrentPass   CurrentPass   `doc:"The current render pass, subpass and framebuffer."`
	Images        []ImageData   `doc:"The subresource layouts of every tracked image, sorted by image."`
}
