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

// DeviceState is the live state of one queue's command buffer at one event, as
// tracked by the capture backend. Objects referenced by identifier are described
// in Objects.
type DeviceState struct {
	Objects               Objects
	Graphics              PipelineBinding
	Compute               PipelineBinding
	IndexBuffer           IndexBuffer
	VertexBuffers         map[uint32]VertexBuffer
	Viewports             []Viewport
	Scissors              []Scissor
	BlendConstants        [4]float32
	FrontStencilReference uint32
	BackStencilReference  uint32
	RenderPass            api.ID
	Subpass               uint32
	Framebuffer           api.ID
	RenderArea            RenderArea
	Images                []ImageData
}

// PipelineBinding is a pipeline bound to a bind point and its descriptor sets.
type PipelineBinding struct {
	Pipeline       api.ID
	DescriptorSets []api.ID
}

// Objects holds the description of every live device object, keyed by identifier.
type Objects struct {
	Pipelines      map[api.ID]PipelineObject
	SetLayouts     map[api.ID]SetLayoutObject
	DescriptorSets map[api.ID]DescriptorSetObject
	ImageViews     map[api.ID]ImageViewObject
	BufferViews    map[api.ID]BufferViewObject
	Samplers       map[api.ID]SamplerDescriptor
	RenderPasses   map[api.ID]RenderPassObject
	Framebuffers   map[api.ID]FramebufferObject
}

// PipelineObject describes a pipeline object. Shaders holds one record per stage
// the pipeline was created with. Compute pipelines only use Flags, SetLayouts and
// Shaders.
type PipelineObject struct {
	Flags                  uint32
	SetLayouts             []api.ID
	Shaders                []Shader
	PrimitiveRestartEnable bool
	VertexAttributes       []VertexAttribute
	VertexBindings         []VertexBinding
	Tessellation           Tessellation
	Raster                 Raster
	MultiSample            MultiSample
	ColorBlend             ColorBlend
	DepthStencil           DepthStencil
}

// SetLayoutObject describes a descriptor set layout object.
type SetLayoutObject struct {
	Bindings []LayoutBinding
}

// LayoutBinding is one binding declared by a descriptor set layout.
// ImmutableSamplers, if not empty, holds one sampler per array element.
type LayoutBinding struct {
	Binding           uint32
	Type              api.BindType
	Count             uint32
	StageFlags        api.ShaderStageMask
	ImmutableSamplers []api.ID
}

// DescriptorSetObject describes a descriptor set object and the descriptors
// written to it, keyed by binding number.
type DescriptorSetObject struct {
	Layout   api.ID
	Bindings map[uint32][]Descriptor
}

// Descriptor is one written descriptor. Which fields are used depends on the
// type of the binding it was written to.
type Descriptor struct {
	ImageView  api.ID
	BufferView api.ID
	Buffer     api.ID
	Offset     uint64
	Size       uint64
	Sampler    api.ID
}

// ImageViewObject describes an image view object.
type ImageViewObject struct {
	Image     api.ID
	Format    api.ResourceFormat
	Swizzle   [4]api.TextureSwizzle
	BaseMip   uint32
	BaseLayer uint32
	NumMips   uint32
	NumLayers uint32
}

// BufferViewObject describes a buffer view object.
type BufferViewObject struct {
	Buffer api.ID
	Format api.ResourceFormat
	Offset uint64
	Size   uint64
}

// RenderPassObject describes a render pass object.
type RenderPassObject struct {
	Subpasses []SubpassObject
}

// SubpassObject is one subpass of a render pass. A nil
// DepthStencilAttachment means the subpass has none.
type SubpassObject struct {
	InputAttachments       []uint32
	ColorAttachments       []uint32
	ResolveAttachments     []uint32
	DepthStencilAttachment *uint32
}

// FramebufferObject describes a framebuffer object. Attachments are image views.
type FramebufferObject struct {
	Attachments []api.ID
	Width       uint32
	Height      uint32
	Layers      uint32
}

// BindingCount returns the number of binding numbers the layout covers: one
// more than the highest declared binding number.
func (l SetLayoutObject) BindingCount() int {
	n := 0
	for _, b := range l.Bindings {
		if int(b.Binding) >= n {
			n = int(b.Binding) + 1
		}
	}
	return n
}
