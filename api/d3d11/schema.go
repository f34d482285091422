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

import "github.com/google/pipestate/service/schema"

// Prefix is the namespace prefix of every type registered by this package.
const Prefix = "D3D11_"

func init() {
	ns := schema.Global
	ns.AddStruct(Prefix, Layout{}, "Describes a single input layout element for one vertex input.")
	ns.AddStruct(Prefix, VertexBuffer{}, "Describes a single vertex buffer binding.")
	ns.AddStruct(Prefix, IndexBuffer{}, "Describes the index buffer binding.")
	ns.AddStruct(Prefix, InputAssembly{}, "Describes the input assembler stage.")
	ns.AddStruct(Prefix, View{}, "Describes a resource view: a shader resource, unordered access, render target or depth-stencil view.")
	ns.AddStruct(Prefix, Sampler{}, "Describes a sampler state object.")
	ns.AddStruct(Prefix, ConstantBuffer{}, "Describes a constant buffer binding.")
	ns.AddStruct(Prefix, Shader{}, "Describes one programmable shader stage.")
	ns.AddStruct(Prefix, StreamOutBind{}, "Describes a binding on the stream-out stage.")
	ns.AddStruct(Prefix, StreamOut{}, "Describes the stream-out stage bindings.")
	ns.AddStruct(Prefix, Viewport{}, "Describes a single viewport.")
	ns.AddStruct(Prefix, Scissor{}, "Describes a single scissor rect.")
	ns.AddStruct(Prefix, RasterizerState{}, "Describes a rasterizer state object.")
	ns.AddStruct(Prefix, Rasterizer{}, "Describes the rasterizer stage.")
	ns.AddStruct(Prefix, StencilFace{}, "Describes the stencil operations for one polygon facing.")
	ns.AddStruct(Prefix, DepthStencilState{}, "Describes a depth-stencil state object.")
	ns.AddStruct(Prefix, BlendEquation{}, "Describes one blend operation.")
	ns.AddStruct(Prefix, Blend{}, "Describes the blend configuration for one render target.")
	ns.AddStruct(Prefix, BlendState{}, "Describes a blend state object.")
	ns.AddStruct(Prefix, OutputMerger{}, "Describes the output-merger stage.")
	ns.AddStruct(Prefix, State{}, "The full pipeline state at one event.")
}
