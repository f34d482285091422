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

import (
	"context"

	"github.com/google/pipestate/api"
	"github.com/google/pipestate/core/data/deep"
	"github.com/google/pipestate/core/log"
)

// graphicsStages are the stages fed by the graphics pipeline, in the order of
// their State records.
var graphicsStages = []api.ShaderStage{
	api.ShaderStageVertex,
	api.ShaderStageHull,
	api.ShaderStageDomain,
	api.ShaderStageGeometry,
	api.ShaderStagePixel,
}

// BuildState returns the complete pipeline state described by d.
//
// Each descriptor set's bindings are laid out from its set layout: every
// declared binding gets an entry, and entries that were never written keep a
// DescriptorCount of zero. Identifiers that are missing from the object
// tables are kept in the returned state with default-valued details. The
// returned State shares no memory with d.
func BuildState(ctx context.Context, d *DeviceState) *State {
	b := builder{ctx: ctx, d: d}
	s := &State{}

	var gfx, comp *PipelineObject
	s.Graphics, gfx = b.pipeline("Graphics", d.Graphics)
	s.Compute, comp = b.pipeline("Compute", d.Compute)

	for _, stage := range graphicsStages {
		*s.Stage(stage) = b.shader(stage, gfx)
	}
	s.CS = b.shader(api.ShaderStageCompute, comp)

	s.InputAssembly.IndexBuffer = d.IndexBuffer
	s.VertexInput.VertexBuffers = b.vertexBuffers()
	s.DepthStencil = DefaultDepthStencil()
	if gfx != nil {
		p := deep.MustClone(*gfx).(PipelineObject)
		s.InputAssembly.PrimitiveRestartEnable = p.PrimitiveRestartEnable
		s.VertexInput.Attributes = p.VertexAttributes
		s.VertexInput.Bindings = p.VertexBindings
		s.Tessellation = p.Tessellation
		s.Raster = p.Raster
		s.MultiSample = p.MultiSample
		s.ColorBlend = p.ColorBlend
		s.DepthStencil = p.DepthStencil
	}
	s.ColorBlend.BlendConstants = d.BlendConstants
	s.DepthStencil.Front.Reference = d.FrontStencilReference
	s.DepthStencil.Back.Reference = d.BackStencilReference
	s.ViewState = b.viewState()
	s.CurrentPass = b.currentPass()

	s.Images = deep.MustClone(d.Images).([]ImageData)
	sortImages(s.Images)
	return s
}

type builder struct {
	ctx context.Context
	d   *DeviceState
}

func (b builder) stale(kind string, id api.ID) {
	log.D(log.V{"id": id}.Bind(b.ctx), "%s not found in the device object tables", kind)
}

func (b builder) pipeline(kind string, bind PipelineBinding) (Pipeline, *PipelineObject) {
	p := Pipeline{Object: bind.Pipeline}
	if bind.Pipeline.IsNull() {
		return p, nil
	}
	obj, ok := b.d.Objects.Pipelines[bind.Pipeline]
	if !ok {
		b.stale(kind+" pipeline", bind.Pipeline)
		return p, nil
	}
	p.Flags = obj.Flags
	p.DescriptorSets = make([]DescriptorSet, len(obj.SetLayouts))
	for i, layout := range obj.SetLayouts {
		set := api.NullID
		if i < len(bind.DescriptorSets) {
			set = bind.DescriptorSets[i]
		}
		p.DescriptorSets[i] = b.descriptorSet(layout, set)
	}
	if len(bind.DescriptorSets) > len(obj.SetLayouts) {
		log.W(b.ctx, "%d descriptor sets bound to a pipeline layout with %d sets. Extra sets ignored.",
			len(bind.DescriptorSets), len(obj.SetLayouts))
	}
	return p, &obj
}

// descriptorSet builds the contents of the set bound against the pipeline
// layout's set layout. A bound set's own layout takes precedence.
func (b builder) descriptorSet(layoutID, setID api.ID) DescriptorSet {
	var set *DescriptorSetObject
	if !setID.IsNull() {
		if o, ok := b.d.Objects.DescriptorSets[setID]; ok {
			set = &o
			if !o.Layout.IsNull() {
				layoutID = o.Layout
			}
		} else {
			b.stale("Descriptor set", setID)
		}
	}
	ds := DescriptorSet{Layout: layoutID, Set: setID}
	layout, ok := b.d.Objects.SetLayouts[layoutID]
	if !ok {
		if !layoutID.IsNull() {
			b.stale("Descriptor set layout", layoutID)
		}
		return ds
	}

	// One placeholder per binding number, then overlay the written bindings.
	ds.Bindings = make(BindingTable, layout.BindingCount())
	for _, lb := range layout.Bindings {
		ds.Bindings[lb.Binding] = DescriptorBinding{Type: lb.Type, StageFlags: lb.StageFlags}
	}
	for _, lb := range layout.Bindings {
		var written []Descriptor
		if set != nil {
			written = set.Bindings[lb.Binding]
		}
		if lb.Count == 0 || (len(written) == 0 && len(lb.ImmutableSamplers) == 0) {
			continue
		}
		if uint32(len(written)) > lb.Count {
			log.W(b.ctx, "Binding %d has %d descriptors written to %d array elements. Extra descriptors ignored.",
				lb.Binding, len(written), lb.Count)
		}
		binding := &ds.Bindings[lb.Binding]
		binding.DescriptorCount = lb.Count
		binding.Elements = make([]BindingElement, lb.Count)
		for i := range binding.Elements {
			desc := Descriptor{}
			if i < len(written) {
				desc = written[i]
			}
			binding.Elements[i] = b.element(lb, uint32(i), desc)
		}
	}
	if set != nil {
		for n := range set.Bindings {
			if int(n) >= len(ds.Bindings) || ds.Bindings[n].Type == api.BindUnknown {
				log.W(b.ctx, "Descriptors written to binding %d, which the set layout does not declare. Ignored.", n)
			}
		}
	}
	return ds
}

// element builds the payloads that the binding's declared type carries.
func (b builder) element(lb LayoutBinding, i uint32, desc Descriptor) BindingElement {
	kind := lb.Type.Kind()
	e := BindingElement{}
	if kind.Has(api.KindBuffer) {
		e.Buffer = b.buffer(lb.Type, desc)
	}
	if kind.Has(api.KindImage) {
		e.Image = b.image(desc.ImageView)
	}
	if kind.Has(api.KindSampler) {
		if int(i) < len(lb.ImmutableSamplers) && !lb.ImmutableSamplers[i].IsNull() {
			e.Sampler = b.sampler(lb.ImmutableSamplers[i])
			e.Sampler.Immutable = true
		} else {
			e.Sampler = b.sampler(desc.Sampler)
		}
	}
	return e
}

func (b builder) buffer(t api.BindType, desc Descriptor) *BufferDescriptor {
	if !t.IsTexelBuffer() {
		return &BufferDescriptor{Buffer: desc.Buffer, Offset: desc.Offset, Size: desc.Size}
	}
	out := &BufferDescriptor{View: desc.BufferView}
	if desc.BufferView.IsNull() {
		return out
	}
	if v, ok := b.d.Objects.BufferViews[desc.BufferView]; ok {
		out.Buffer, out.Format, out.Offset, out.Size = v.Buffer, v.Format, v.Offset, v.Size
	} else {
		b.stale("Buffer view", desc.BufferView)
	}
	return out
}

func (b builder) image(view api.ID) *ImageDescriptor {
	out := &ImageDescriptor{View: view, Swizzle: identitySwizzle}
	if view.IsNull() {
		return out
	}
	v, ok := b.d.Objects.ImageViews[view]
	if !ok {
		b.stale("Image view", view)
		return out
	}
	out.Image, out.Format, out.Swizzle = v.Image, v.Format, v.Swizzle
	out.BaseMip, out.BaseLayer, out.NumMips, out.NumLayers = v.BaseMip, v.BaseLayer, v.NumMips, v.NumLayers
	return out
}

var identitySwizzle = [4]api.TextureSwizzle{
	api.TextureSwizzleRed,
	api.TextureSwizzleGreen,
	api.TextureSwizzleBlue,
	api.TextureSwizzleAlpha,
}

func (b builder) sampler(id api.ID) *SamplerDescriptor {
	s := DefaultSampler()
	if !id.IsNull() {
		if o, ok := b.d.Objects.Samplers[id]; ok {
			s = o
		} else {
			b.stale("Sampler", id)
		}
	}
	s.Sampler = id
	return &s
}

func (b builder) shader(stage api.ShaderStage, p *PipelineObject) Shader {
	if p != nil {
		for _, s := range p.Shaders {
			if s.Stage == stage {
				return deep.MustClone(s).(Shader)
			}
		}
	}
	return Shader{Stage: stage}
}

func (b builder) vertexBuffers() []VertexBuffer {
	n := 0
	for binding := range b.d.VertexBuffers {
		if int(binding) >= n {
			n = int(binding) + 1
		}
	}
	if n == 0 {
		return nil
	}
	out := make([]VertexBuffer, n)
	for binding, vb := range b.d.VertexBuffers {
		out[binding] = vb
	}
	return out
}

func (b builder) viewState() ViewState {
	n := max(len(b.d.Viewports), len(b.d.Scissors))
	if n == 0 {
		return ViewState{}
	}
	vs := ViewState{ViewportScissors: make([]ViewportScissor, n)}
	for i := range vs.ViewportScissors {
		if i < len(b.d.Viewports) {
			vs.ViewportScissors[i].Viewport = b.d.Viewports[i]
		}
		if i < len(b.d.Scissors) {
			vs.ViewportScissors[i].Scissor = b.d.Scissors[i]
		}
	}
	return vs
}

func (b builder) currentPass() CurrentPass {
	d := b.d
	p := CurrentPass{
		RenderPass:  RenderPass{Object: d.RenderPass},
		Framebuffer: Framebuffer{Object: d.Framebuffer},
		RenderArea:  d.RenderArea,
	}
	if !d.RenderPass.IsNull() {
		rp, ok := d.Objects.RenderPasses[d.RenderPass]
		switch {
		case !ok:
			b.stale("Render pass", d.RenderPass)
		case int(d.Subpass) >= len(rp.Subpasses):
			log.W(b.ctx, "Subpass %d is outside the %d subpasses of the render pass", d.Subpass, len(rp.Subpasses))
		default:
			sp := deep.MustClone(rp.Subpasses[d.Subpass]).(SubpassObject)
			p.RenderPass.InputAttachments = sp.InputAttachments
			p.RenderPass.ColorAttachments = sp.ColorAttachments
			p.RenderPass.ResolveAttachments = sp.ResolveAttachments
			p.RenderPass.DepthStencilAttachment = sp.DepthStencilAttachment
		}
	}
	if !d.Framebuffer.IsNull() {
		if fb, ok := d.Objects.Framebuffers[d.Framebuffer]; ok {
			p.Framebuffer.Width, p.Framebuffer.Height, p.Framebuffer.Layers = fb.Width, fb.Height, fb.Layers
			p.Framebuffer.Attachments = make([]Attachment, len(fb.Attachments))
			for i, view := range fb.Attachments {
				p.Framebuffer.Attachments[i] = b.attachment(view)
			}
		} else {
			b.stale("Framebuffer", d.Framebuffer)
		}
	}
	return p
}

func (b builder) attachment(view api.ID) Attachment {
	img := b.image(view)
	if _, ok := b.d.Objects.ImageViews[view]; !ok {
		// Unresolved attachments cover a single subresource.
		img.NumMips, img.NumLayers = 1, 1
	}
	return Attachment{
		View:      img.View,
		Image:     img.Image,
		Format:    img.Format,
		Swizzle:   img.Swizzle,
		BaseMip:   img.BaseMip,
		BaseLayer: img.BaseLayer,
		NumMips:   img.NumMips,
		NumLayers: img.NumLayers,
	}
}
