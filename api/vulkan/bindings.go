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

// BindingTable is the bindings of a descriptor set, indexed by binding number.
// Its length is one more than the highest binding number the set layout
// declares. Binding numbers the layout skips, and declared bindings that were
// never written, hold entries with a DescriptorCount of zero.
type BindingTable []DescriptorBinding

// BindingStatus is the result of a BindingTable lookup.
type BindingStatus int

const (
	// BindingOutOfRange means the binding number is beyond the layout's
	// declared bindings.
	BindingOutOfRange BindingStatus = iota
	// BindingUnwritten means the binding number is within the layout but has
	// no descriptors.
	BindingUnwritten
	// BindingWritten means the binding holds at least one descriptor.
	BindingWritten
)

func (s BindingStatus) String() string {
	switch s {
	case BindingOutOfRange:
		return "OutOfRange"
	case BindingUnwritten:
		return "Unwritten"
	case BindingWritten:
		return "Written"
	}
	return "BindingStatus(?)"
}

// Len returns the number of binding numbers covered by the table.
func (t BindingTable) Len() int { return len(t) }

// Lookup returns the binding with the given binding number.
// An out of range lookup returns a zero DescriptorBinding.
func (t BindingTable) Lookup(binding uint32) (DescriptorBinding, BindingStatus) {
	if uint64(binding) >= uint64(len(t)) {
		return DescriptorBinding{}, BindingOutOfRange
	}
	b := t[binding]
	if b.DescriptorCount == 0 {
		return b, BindingUnwritten
	}
	return b, BindingWritten
}

// Each calls f with every binding number in ascending order, including
// unwritten ones. Iteration stops if f returns false.
func (t BindingTable) Each(f func(binding uint32, b *DescriptorBinding) bool) {
	for i := range t {
		if !f(uint32(i), &t[i]) {
			return
		}
	}
}

// Written returns the binding numbers that hold at least one descriptor.
func (t BindingTable) Written() []uint32 {
	out := []uint32{}
	t.Each(func(n uint32, b *DescriptorBinding) bool {
		if b.DescriptorCount > 0 {
			out = append(out, n)
		}
		return true
	})
	return out
}

func (b *DescriptorBinding) element(i uint32, kind api.DescriptorKind) (*BindingElement, bool) {
	if !b.Type.Kind().Has(kind) || i >= b.DescriptorCount || int(i) >= len(b.Elements) {
		return nil, false
	}
	return &b.Elements[i], true
}

// BufferAt returns the buffer payload of element i.
// It returns false if the binding's type carries no buffer payload, or if i is
// not a valid element.
func (b *DescriptorBinding) BufferAt(i uint32) (BufferDescriptor, bool) {
	e, ok := b.element(i, api.KindBuffer)
	if !ok {
		return BufferDescriptor{}, false
	}
	if e.Buffer == nil {
		return BufferDescriptor{}, true
	}
	return *e.Buffer, true
}

// ImageAt returns the image payload of element i.
// It returns false if the binding's type carries no image payload, or if i is
// not a valid element.
func (b *DescriptorBinding) ImageAt(i uint32) (ImageDescriptor, bool) {
	e, ok := b.element(i, api.KindImage)
	if !ok {
		return ImageDescriptor{}, false
	}
	if e.Image == nil {
		return ImageDescriptor{}, true
	}
	return *e.Image, true
}

// SamplerAt returns the sampler payload of element i.
// It returns false if the binding's type carries no sampler payload, or if i
// is not a valid element.
func (b *DescriptorBinding) SamplerAt(i uint32) (SamplerDescriptor, bool) {
	e, ok := b.element(i, api.KindSampler)
	if !ok {
		return SamplerDescriptor{}, false
	}
	if e.Sampler == nil {
		return SamplerDescriptor{}, true
	}
	return *e.Sampler, true
}

// UsesBorderColor returns true if the border color is used by this sampler.
func (s SamplerDescriptor) UsesBorderColor() bool {
	return s.AddressU == api.AddressModeClampBorder ||
		s.AddressV == api.AddressModeClampBorder ||
		s.AddressW == api.AddressModeClampBorder
}

// NoAttachment is the serialized DepthStencilAttachment of a render pass with
// no depth-stencil attachment.
const NoAttachment = int32(-1)

// DepthStencilIndex converts a serialized attachment index, where NoAttachment
// marks no attachment, into the optional form stored in RenderPass.
func DepthStencilIndex(raw int32) *uint32 {
	if raw < 0 {
		return nil
	}
	v := uint32(raw)
	return &v
}

// RawDepthStencilAttachment returns the serialized form of
// p.DepthStencilAttachment.
func (p RenderPass) RawDepthStencilAttachment() int32 {
	if p.DepthStencilAttachment == nil {
		return NoAttachment
	}
	return int32(*p.DepthStencilAttachment)
}

// IsActive returns true if a shader module is bound to the stage.
func (s *Shader) IsActive() bool { return !s.Object.IsNull() }

// Stage returns the record for the given programmable stage, or nil if s is
// not a valid stage.
func (s *State) Stage(stage api.ShaderStage) *Shader {
	switch stage {
	case api.ShaderStageVertex:
		return &s.VS
	case api.ShaderStageHull:
		return &s.TCS
	case api.ShaderStageDomain:
		return &s.TES
	case api.ShaderStageGeometry:
		return &s.GS
	case api.ShaderStagePixel:
		return &s.FS
	case api.ShaderStageCompute:
		return &s.CS
	}
	return nil
}

// Stages returns every programmable stage record in pipeline order.
func (s *State) Stages() []*Shader {
	return []*Shader{&s.VS, &s.TCS, &s.TES, &s.GS, &s.FS, &s.CS}
}

// Pipeline returns the pipeline that feeds the given stage.
func (s *State) Pipeline(stage api.ShaderStage) *Pipeline {
	if stage == api.ShaderStageCompute {
		return &s.Compute
	}
	return &s.Graphics
}
