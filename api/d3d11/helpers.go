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

// API slot counts. Slot-indexed lists in a State have exactly these lengths.
const (
	SRVSlotCount            = 128
	SamplerSlotCount        = 16
	ConstantBufferSlotCount = 14
	UAVSlotCount            = 64
	VertexBufferSlotCount   = 32
	StreamOutSlotCount      = 4
	RenderTargetSlotCount   = 8
	ViewportSlotCount       = 16
)

// WholeBufferVecCount is the VecCount of a constant buffer bound without a
// range: 4096 float4 vectors, or 64 KiB.
const WholeBufferVecCount = 4096

// TightlyPacked is the serialized ByteOffset of a tightly packed element.
const TightlyPacked = ^uint32(0)

// LayoutByteOffset converts a serialized byte offset, where TightlyPacked
// marks a packed element, into the optional form stored in Layout.
func LayoutByteOffset(raw uint32) *uint32 {
	if raw == TightlyPacked {
		return nil
	}
	return &raw
}

// RawByteOffset returns the serialized form of l.ByteOffset.
func (l Layout) RawByteOffset() uint32 {
	if l.ByteOffset == nil {
		return TightlyPacked
	}
	return *l.ByteOffset
}

// IsTightlyPacked returns true if the element follows the previous element
// with no explicit offset.
func (l Layout) IsTightlyPacked() bool { return l.ByteOffset == nil }

// UsesBorderColor returns true if the border color is used by this sampler.
func (s Sampler) UsesBorderColor() bool {
	return s.AddressU == api.AddressModeClampBorder ||
		s.AddressV == api.AddressModeClampBorder ||
		s.AddressW == api.AddressModeClampBorder
}

// IsActive returns true if a shader is bound to the stage.
func (s *Shader) IsActive() bool { return !s.Object.IsNull() }

// Stage returns the record for the given programmable stage, or nil if s is
// not a valid stage.
func (s *State) Stage(stage api.ShaderStage) *Shader {
	switch stage {
	case api.ShaderStageVertex:
		return &s.VS
	case api.ShaderStageHull:
		return &s.HS
	case api.ShaderStageDomain:
		return &s.DS
	case api.ShaderStageGeometry:
		return &s.GS
	case api.ShaderStagePixel:
		return &s.PS
	case api.ShaderStageCompute:
		return &s.CS
	}
	return nil
}

// Stages returns every programmable stage record in pipeline order.
func (s *State) Stages() []*Shader {
	return []*Shader{&s.VS, &s.HS, &s.DS, &s.GS, &s.PS, &s.CS}
}
