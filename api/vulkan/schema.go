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

import "github.com/google/pipestate/service/schema"

// Prefix is the namespace prefix of every type registered by this package.
const Prefix = "VK_"

func init() {
	ns := schema.Global
	ns.AddStruct(Prefix, BufferDescriptor{}, "The payload of a buffer or texel buffer binding element.")
	ns.AddStruct(Prefix, ImageDescriptor{}, "The payload of an image binding element.")
	ns.AddStruct(Prefix, SamplerDescriptor{}, "The payload of a sampler binding element.")
	ns.AddStruct(Prefix, BindingElement{}, "The contents of one element of a descriptor binding.")
	ns.AddStruct(Prefix, DescriptorBinding{}, "The contents of one binding within a descriptor set.")
	ns.AddStruct(Prefix, DescriptorSet{}, "The contents of one bound descriptor set.")
	ns.AddStruct(Prefix, Pipeline{}, "Describes a pipeline object and its descriptor set bindings.")
	ns.AddStruct(Prefix, IndexBuffer{}, "Describes the index buffer binding.")
	ns.AddStruct(Prefix, InputAssembly{}, "Describes the input assembly configuration.")
	ns.AddStruct(Prefix, VertexAttribute{}, "Describes the configuration of a single vertex attribute.")
	ns.AddStruct(Prefix, VertexBinding{}, "Describes a vertex binding.")
	ns.AddStruct(Prefix, VertexBuffer{}, "Describes a single vertex buffer binding.")
	ns.AddStruct(Prefix, VertexInput{}, "Describes the fixed-function vertex input fetch setup.")
	ns.AddStruct(Prefix, SpecInfo{}, "The provided value for a specialization constant.")
	ns.AddStruct(Prefix, Shader{}, "Describes one programmable shader stage.")
	ns.AddStruct(Prefix, Tessellation{}, "Describes the state of the fixed-function tessellator.")
	ns.AddStruct(Prefix, Viewport{}, "Describes a single viewport.")
	ns.AddStruct(Prefix, Scissor{}, "Describes a single scissor region.")
	ns.AddStruct(Prefix, ViewportScissor{}, "A viewport paired with its scissor region.")
	ns.AddStruct(Prefix, ViewState{}, "Describes the viewport setup.")
	ns.AddStruct(Prefix, Raster{}, "Describes the rasterization state.")
	ns.AddStruct(Prefix, MultiSample{}, "Describes the multisampling state.")
	ns.AddStruct(Prefix, BlendEquation{}, "Describes one blend operation.")
	ns.AddStruct(Prefix, Blend{}, "Describes the blend configuration for one attachment.")
	ns.AddStruct(Prefix, ColorBlend{}, "Describes the pipeline blending state.")
	ns.AddStruct(Prefix, StencilFace{}, "Describes the stencil operations for one polygon facing.")
	ns.AddStruct(Prefix, DepthStencil{}, "Describes the pipeline depth-stencil state.")
	ns.AddStruct(Prefix, RenderPass{}, "Describes the setup of a render pass and its current subpass.")
	ns.AddStruct(Prefix, Attachment{}, "Describes a single attachment in a framebuffer object.")
	ns.AddStruct(Prefix, Framebuffer{}, "Describes a framebuffer object and its attachments.")
	ns.AddStruct(Prefix, RenderArea{}, "Describes the render area of a render pass instance.")
	ns.AddStruct(Prefix, CurrentPass{}, "Describes the render pass instance active at the event.")
	ns.AddStruct(Prefix, ImageLayout{}, "The layout of a range of subresources in an image.")
	ns.AddStruct(Prefix, ImageData{}, "The current layout of every tracked subresource of an image.")
	ns.AddStruct(Prefix, State{}, "The full pipeline state at one event.")
}
