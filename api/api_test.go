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

package api_test

import (
	"reflect"
	"testing"

	"github.com/google/pipestate/api"
	"github.com/google/pipestate/core/assert"
	"github.com/google/pipestate/core/log"
	"github.com/google/pipestate/service/schema"
	"github.com/pkg/errors"
)

func TestTableResolve(t *testing.T) {
	ctx := log.Testing(t)
	table := api.NewTable(
		api.Resource{ID: 10, Name: "Backbuffer"},
		api.Resource{ID: 20, Name: "Depth"},
		api.Resource{ID: api.NullID, Name: "ignored"},
	)
	r, ok := table.Resolve(10)
	assert.For(ctx, "live").ThatBoolean(ok).IsTrue()
	assert.For(ctx, "live").ThatString(r.Name).Equals("Backbuffer")

	_, ok = table.Resolve(api.NullID)
	assert.For(ctx, "null").ThatBoolean(ok).IsFalse()

	table.Remove(10)
	_, ok = table.Resolve(10)
	assert.For(ctx, "removed").ThatBoolean(ok).IsFalse()
	assert.For(ctx, "ids").ThatSlice(table.IDs()).Equals([]api.ID{20})
}

func TestIDText(t *testing.T) {
	ctx := log.Testing(t)
	id := api.ID(42)
	text, err := id.MarshalText()
	assert.For(ctx, "marshal").ThatError(err).Succeeded()
	assert.For(ctx, "marshal").ThatString(string(text)).Equals("ResourceId::42")
	for _, in := range []string{"ResourceId::42", "42", "0x2a"} {
		var got api.ID
		assert.For(ctx, "unmarshal %v", in).ThatError(got.UnmarshalText([]byte(in))).Succeeded()
		assert.For(ctx, "unmarshal %v", in).That(got).Equals(id)
	}
	var bad api.ID
	err = bad.UnmarshalText([]byte("Texture"))
	assert.For(ctx, "bad").ThatError(err).HasCause(api.ErrBadID)
	assert.For(ctx, "bad cause").That(errors.Cause(err)).Equals(api.ErrBadID)
	assert.For(ctx, "bad text").ThatString(err.Error()).Contains(`"Texture"`)
}

func TestEnumText(t *testing.T) {
	ctx := log.Testing(t)
	assert.For(ctx, "string").ThatString(api.AddressModeClampBorder.String()).Equals("ClampBorder")
	assert.For(ctx, "string").ThatString(api.BlendMultiplierInvSrc1Alpha.String()).Equals("InvSrc1Alpha")
	assert.For(ctx, "mask").ThatString(
		(api.ShaderStageMaskVertex | api.ShaderStageMaskPixel).String()).Equals("Vertex|Pixel")
	assert.For(ctx, "flags").ThatString(api.BufferViewFlagsNoFlags.String()).Equals("NoFlags")

	var op api.StencilOp
	assert.For(ctx, "parse").ThatError(op.UnmarshalText([]byte("DecWrap"))).Succeeded()
	assert.For(ctx, "parse").That(op).Equals(api.StencilOpDecWrap)
	assert.For(ctx, "parse bad").ThatError(op.UnmarshalText([]byte("Explode"))).HasCause(schema.ErrBadEnumValue)

	var mask api.ShaderStageMask
	assert.For(ctx, "parse mask").ThatError(mask.UnmarshalText([]byte("Compute|Hull"))).Succeeded()
	assert.For(ctx, "parse mask").That(mask).Equals(api.ShaderStageMaskCompute | api.ShaderStageMaskHull)
}

func TestStageMask(t *testing.T) {
	ctx := log.Testing(t)
	for _, s := range api.Stages {
		assert.For(ctx, "%v", s).ThatBoolean(api.ShaderStageMaskAll.Contains(s)).IsTrue()
		assert.For(ctx, "%v", s).ThatString(s.Mask().String()).Equals(s.String())
	}
	assert.For(ctx, "none").ThatBoolean(api.ShaderStageMaskUnknown.Contains(api.ShaderStageVertex)).IsFalse()
}

func TestBindTypeKind(t *testing.T) {
	ctx := log.Testing(t)
	for _, test := range []struct {
		typ     api.BindType
		buffer  bool
		image   bool
		sampler bool
	}{
		{api.BindUnknown, false, false, false},
		{api.BindConstantBuffer, true, false, false},
		{api.BindReadWriteBuffer, true, false, false},
		{api.BindSampler, false, false, true},
		{api.BindImageSampler, false, true, true},
		{api.BindReadOnlyImage, false, true, false},
		{api.BindReadWriteTBuffer, true, false, false},
		{api.BindInputAttachment, false, true, false},
	} {
		k := test.typ.Kind()
		assert.For(ctx, "%v buffer", test.typ).ThatBoolean(k.Has(api.KindBuffer)).Equals(test.buffer)
		assert.For(ctx, "%v image", test.typ).ThatBoolean(k.Has(api.KindImage)).Equals(test.image)
		assert.For(ctx, "%v sampler", test.typ).ThatBoolean(k.Has(api.KindSampler)).Equals(test.sampler)
	}
}

func TestFormat(t *testing.T) {
	ctx := log.Testing(t)
	rgba8 := api.ResourceFormat{CompCount: 4, CompByteWidth: 1, CompType: api.CompTypeUNorm}
	assert.For(ctx, "size").That(rgba8.ElementSize()).Equals(uint32(4))
	assert.For(ctx, "string").ThatString(rgba8.String()).Equals("4x8 UNorm")
	bc1 := api.ResourceFormat{Special: true, SpecialFormat: api.SpecialFormatBC1, CompCount: 4}
	assert.For(ctx, "special size").That(bc1.ElementSize()).Equals(uint32(0))
	assert.For(ctx, "special string").ThatString(bc1.String()).Equals("BC1")
}

func TestSharedTypesRegistered(t *testing.T) {
	ctx := log.Testing(t)
	for _, v := range []interface{}{
		api.ResourceFormat{}, api.TextureFilter{}, api.BindpointMapping{},
	} {
		typ := reflect.TypeOf(v)
		assert.For(ctx, "%v", typ).ThatError(schema.Global.Validate(typ)).Succeeded()
	}
	for _, v := range []interface{}{api.AddressMode(0), api.BindType(0), api.ShaderStageMask(0)} {
		assert.For(ctx, "%T", v).That(schema.Global.Enum(reflect.TypeOf(v))).IsNotNil()
	}
	e := schema.Global.Enum(reflect.TypeOf(api.ShaderStageMask(0)))
	assert.For(ctx, "bitmask").ThatBoolean(e.Bitmask).IsTrue()
}
