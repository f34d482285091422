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

package box_test

import (
	"context"
	"math"
	"testing"

	"github.com/golang/protobuf/proto"
	"github.com/google/pipestate/api"
	"github.com/google/pipestate/api/d3d11"
	"github.com/google/pipestate/api/vulkan"
	"github.com/google/pipestate/core/assert"
	"github.com/google/pipestate/core/log"
	"github.com/google/pipestate/service/box"
	"github.com/google/pipestate/service/schema"
	"google.golang.org/protobuf/types/known/structpb"
)

type mode uint32

type flags uint8

type sample struct {
	Big   uint64   `doc:"A 64-bit count."`
	Neg   int64    `doc:"A signed 64-bit value."`
	Small int32    `doc:"A 32-bit value."`
	Ratio float32  `doc:"A ratio."`
	Blob  []byte   `doc:"Raw bytes."`
	Opt   *uint32  `doc:"An optional count."`
	Mode  mode     `doc:"A mode."`
	Flags flags    `doc:"Some flags."`
	Names []string `doc:"Some names."`
}

type unregistered struct {
	X int32
}

func newCodec() box.Codec {
	ns := schema.NewNamespace()
	ns.AddEnum("T_", mode(0), "A mode.", "A", "B")
	ns.AddFlags("T_", flags(0), "Some flags.",
		schema.EnumValue{Name: "X", Value: 1},
		schema.EnumValue{Name: "Y", Value: 2})
	ns.AddStruct("T_", sample{}, "A sample record.")
	return box.Codec{Namespace: ns}
}

func str(s string) *structpb.Value { return structpb.NewStringValue(s) }

func num(f float64) *structpb.Value { return structpb.NewNumberValue(f) }

func list(v ...*structpb.Value) *structpb.Value {
	return structpb.NewListValue(&structpb.ListValue{Values: v})
}

func TestNewValue(t *testing.T) {
	ctx := log.Testing(t)
	c := newCodec()
	v := sample{
		Big:   1 << 63,
		Neg:   -5,
		Small: 7,
		Ratio: float32(math.Inf(1)),
		Blob:  []byte{1, 2, 3},
		Mode:  1,
		Flags: 1 | 2 | 8,
	}
	got, err := c.NewValue(v)
	assert.For(ctx, "err").ThatError(err).Succeeded()
	expect := structpb.NewStructValue(&structpb.Struct{Fields: map[string]*structpb.Value{
		"Big":   str("9223372036854775808"),
		"Neg":   str("-5"),
		"Small": num(7),
		"Ratio": str("Infinity"),
		"Blob":  str("AQID"),
		"Opt":   structpb.NewNullValue(),
		"Mode":  str("B"),
		"Flags": list(str("X"), str("Y"), str("0x8")),
		"Names": structpb.NewNullValue(),
	}})
	assert.For(ctx, "boxed").ThatBoolean(proto.Equal(got, expect)).IsTrue()

	var back sample
	assert.For(ctx, "assign").ThatError(c.AssignTo(got, &back)).Succeeded()
	assert.For(ctx, "round trip").That(back).DeepEquals(v)
}

func TestOmitZero(t *testing.T) {
	ctx := log.Testing(t)
	c := newCodec()
	c.OmitZero = true
	v := sample{Small: 3, Names: []string{}}
	got, err := c.NewValue(v)
	assert.For(ctx, "err").ThatError(err).Succeeded()
	fields := got.GetStructValue().GetFields()
	assert.For(ctx, "fields").ThatInteger(len(fields)).Equals(2)
	assert.For(ctx, "small").ThatBoolean(proto.Equal(fields["Small"], num(3))).IsTrue()

	var back sample
	assert.For(ctx, "assign").ThatError(c.AssignTo(got, &back)).Succeeded()
	assert.For(ctx, "round trip").That(back).DeepEquals(v)
}

func TestNonFiniteFloats(t *testing.T) {
	ctx := log.Testing(t)
	c := newCodec()
	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		data, err := c.Marshal(sample{Ratio: float32(f)}, "")
		assert.For(ctx, "%v marshal", f).ThatError(err).Succeeded()
		var back sample
		assert.For(ctx, "%v unmarshal", f).ThatError(c.Unmarshal(data, &back)).Succeeded()
		if math.IsNaN(f) {
			assert.For(ctx, "NaN").ThatBoolean(math.IsNaN(float64(back.Ratio))).IsTrue()
		} else {
			assert.For(ctx, "%v", f).That(float64(back.Ratio)).Equals(f)
		}
	}
}

func TestAssignToErrors(t *testing.T) {
	ctx := log.Testing(t)
	c := newCodec()
	for _, test := range []struct {
		name   string
		fields map[string]*structpb.Value
		cause  error
		path   string
	}{
		{"unknown field", map[string]*structpb.Value{"Nope": num(1)}, box.ErrUnknownField, "T_sample.Nope"},
		{"bool for integer", map[string]*structpb.Value{"Small": structpb.NewBoolValue(true)}, box.ErrTypeMismatch, "T_sample.Small"},
		{"overflow", map[string]*structpb.Value{"Small": num(1 << 40)}, box.ErrTypeMismatch, "T_sample.Small"},
		{"fraction", map[string]*structpb.Value{"Big": num(1.5)}, box.ErrTypeMismatch, "T_sample.Big"},
		{"bad enum", map[string]*structpb.Value{"Mode": str("Z")}, box.ErrTypeMismatch, "T_sample.Mode"},
		{"bad flag", map[string]*structpb.Value{"Flags": list(str("X"), str("Q"))}, box.ErrTypeMismatch, "T_sample.Flags[1]"},
		{"bad base64", map[string]*structpb.Value{"Blob": str("!!")}, box.ErrTypeMismatch, "T_sample.Blob"},
		{"bad list element", map[string]*structpb.Value{"Names": list(str("a"), num(1))}, box.ErrTypeMismatch, "T_sample.Names[1]"},
	} {
		var out sample
		err := c.AssignTo(structpb.NewStructValue(&structpb.Struct{Fields: test.fields}), &out)
		assert.For(ctx, "%s cause", test.name).ThatError(err).HasCause(test.cause)
		if err != nil {
			assert.For(ctx, "%s path", test.name).ThatString(err.Error()).Contains(test.path)
		}
	}

	err := c.AssignTo(num(1), sample{})
	assert.For(ctx, "non pointer").ThatError(err).HasCause(box.ErrTypeMismatch)
}

func TestUnregisteredType(t *testing.T) {
	ctx := log.Testing(t)
	_, err := box.NewValue(unregistered{X: 1})
	assert.For(ctx, "box").ThatError(err).HasCause(box.ErrUnregisteredType)
	var out unregistered
	err = box.AssignTo(structpb.NewStructValue(&structpb.Struct{}), &out)
	assert.For(ctx, "unbox").ThatError(err).HasCause(box.ErrUnregisteredType)
}

func TestEnumsByNameOrNumber(t *testing.T) {
	ctx := log.Testing(t)
	var f api.FillMode
	assert.For(ctx, "name").ThatError(box.AssignTo(str("Wireframe"), &f)).Succeeded()
	assert.For(ctx, "by name").That(f).Equals(api.FillModeWireframe)
	assert.For(ctx, "number").ThatError(box.AssignTo(num(0), &f)).Succeeded()
	assert.For(ctx, "by number").That(f).Equals(api.FillModeSolid)

	b, err := box.NewValue(api.ShaderStageMaskVertex | api.ShaderStageMaskPixel)
	assert.For(ctx, "mask err").ThatError(err).Succeeded()
	assert.For(ctx, "mask").ThatBoolean(proto.Equal(b, list(str("Vertex"), str("Pixel")))).IsTrue()
}

// roundTrip checks that v survives every encoding.
func roundTrip[T any](ctx context.Context, name string, v T) {
	boxed, err := box.NewValue(v)
	assert.For(ctx, "%s box", name).ThatError(err).Succeeded()
	var fromValue T
	assert.For(ctx, "%s assign", name).ThatError(box.AssignTo(boxed, &fromValue)).Succeeded()
	assert.For(ctx, "%s structpb", name).That(fromValue).DeepEquals(v)

	data, err := box.Marshal(v)
	assert.For(ctx, "%s marshal", name).ThatError(err).Succeeded()
	var fromJSON T
	assert.For(ctx, "%s unmarshal", name).ThatError(box.Unmarshal(data, &fromJSON)).Succeeded()
	assert.For(ctx, "%s json", name).That(fromJSON).DeepEquals(v)

	data, err = box.MarshalBinary(v)
	assert.For(ctx, "%s marshal binary", name).ThatError(err).Succeeded()
	var fromProto T
	assert.For(ctx, "%s unmarshal binary", name).ThatError(box.UnmarshalBinary(data, &fromProto)).Succeeded()
	assert.For(ctx, "%s proto", name).That(fromProto).DeepEquals(v)
}

func TestRoundTripD3D11(t *testing.T) {
	ctx := log.Testing(t)
	d := &d3d11.DeviceState{
		Objects: d3d11.Objects{
			InputLayouts: map[api.ID]d3d11.InputLayoutObject{
				1: {Elements: []d3d11.Layout{{SemanticName: "POSITION", ByteOffset: d3d11.LayoutByteOffset(d3d11.TightlyPacked)}}},
			},
			Samplers: map[api.ID]d3d11.Sampler{
				2: {AddressU: api.AddressModeClampBorder, MaxLOD: math.MaxFloat32, MipLODBias: -0.5},
			},
		},
		InputLayout: 1,
		PS:          d3d11.StageBindings{Shader: 3, Samplers: map[uint32]api.ID{4: 2}},
		Viewports:   []d3d11.Viewport{{Width: 640, Height: 480, MaxDepth: 1}},
		SampleMask:  0xffffffff,
	}
	s := d3d11.BuildState(ctx, d)
	roundTrip(ctx, "d3d11", *s)
}

func TestRoundTripVulkan(t *testing.T) {
	ctx := log.Testing(t)
	count := uint32(2)
	s := vulkan.State{
		Graphics: vulkan.Pipeline{Object: 1<<40 + 1, DescriptorSets: []vulkan.DescriptorSet{{
			Layout: 5,
			Set:    6,
			Bindings: vulkan.BindingTable{
				{Type: api.BindConstantBuffer},
				{DescriptorCount: 1, Type: api.BindImageSampler, StageFlags: api.ShaderStageMaskPixel,
					Elements: []vulkan.BindingElement{{
						Image:   &vulkan.ImageDescriptor{View: 7, Image: 8, NumMips: 4},
						Sampler: &vulkan.SamplerDescriptor{Sampler: 9, BorderColor: [4]float32{0, 0, 0, 1}},
					}}},
			},
		}}},
		CurrentPass: vulkan.CurrentPass{RenderPass: vulkan.RenderPass{ColorAttachments: []uint32{}, DepthStencilAttachment: &count}},
		FS:          vulkan.Shader{Stage: api.ShaderStagePixel, Specialization: []vulkan.SpecInfo{{SpecID: 1, Data: []byte{0xff}}}},
		Images:      []vulkan.ImageData{{Image: 8, Layouts: []vulkan.ImageLayout{{NumMips: vulkan.RemainingRange, NumLayers: 1, Name: "General"}}}},
	}
	roundTrip(ctx, "vulkan", s)
}
