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

package d3d11_test

import (
	"reflect"
	"testing"

	"github.com/google/pipestate/api"
	"github.com/google/pipestate/api/d3d11"
	"github.com/google/pipestate/core/assert"
	"github.com/google/pipestate/core/log"
	"github.com/google/pipestate/service/schema"
)

func TestUsesBorderColor(t *testing.T) {
	ctx := log.Testing(t)
	mode := func(border bool) api.AddressMode {
		if border {
			return api.AddressModeClampBorder
		}
		return api.AddressModeMirror
	}
	for i := 0; i < 8; i++ {
		u, v, w := i&1 != 0, i&2 != 0, i&4 != 0
		s := d3d11.Sampler{AddressU: mode(u), AddressV: mode(v), AddressW: mode(w)}
		assert.For(ctx, "U:%v V:%v W:%v", u, v, w).ThatBoolean(s.UsesBorderColor()).Equals(u || v || w)
	}
}

func TestLayoutByteOffset(t *testing.T) {
	ctx := log.Testing(t)
	packed := d3d11.Layout{ByteOffset: d3d11.LayoutByteOffset(d3d11.TightlyPacked)}
	assert.For(ctx, "packed").ThatBoolean(packed.IsTightlyPacked()).IsTrue()
	assert.For(ctx, "packed raw").That(packed.RawByteOffset()).Equals(d3d11.TightlyPacked)

	explicit := d3d11.Layout{ByteOffset: d3d11.LayoutByteOffset(12)}
	assert.For(ctx, "explicit").ThatBoolean(explicit.IsTightlyPacked()).IsFalse()
	assert.For(ctx, "explicit raw").That(explicit.RawByteOffset()).Equals(uint32(12))

	zero := d3d11.Layout{ByteOffset: d3d11.LayoutByteOffset(0)}
	assert.For(ctx, "zero").ThatBoolean(zero.IsTightlyPacked()).IsFalse()
}

func TestStages(t *testing.T) {
	ctx := log.Testing(t)
	s := &d3d11.State{}
	stages := s.Stages()
	assert.For(ctx, "count").ThatSlice(stages).IsLength(len(api.Stages))
	for i, stage := range api.Stages {
		assert.For(ctx, "%v", stage).That(s.Stage(stage)).Equals(stages[i])
	}
	assert.For(ctx, "vertex").That(s.Stage(api.ShaderStageVertex)).Equals(&s.VS)
	assert.For(ctx, "compute").That(s.Stage(api.ShaderStageCompute)).Equals(&s.CS)
	assert.For(ctx, "invalid").That(s.Stage(api.ShaderStage(42))).IsNil()
}

func TestMetadataComplete(t *testing.T) {
	ctx := log.Testing(t)
	assert.For(ctx, "validate").ThatError(schema.Global.Validate(reflect.TypeOf(d3d11.State{}))).Succeeded()
	for _, e := range schema.Global.Entities() {
		if e.Type.PkgPath() != reflect.TypeOf(d3d11.State{}).PkgPath() {
			continue
		}
		assert.For(ctx, "%v prefix", e.Name).ThatString(e.Name).HasPrefix(d3d11.Prefix)
		assert.For(ctx, "%v doc", e.Name).ThatString(e.Doc).NotEquals("")
		for _, f := range e.Fields {
			assert.For(ctx, "%v.%v doc", e.Name, f.Name).ThatString(f.Doc).NotEquals("")
		}
	}
	e := schema.Global.EntityByName("D3D11_Layout")
	assert.For(ctx, "layout").That(e).IsNotNil()
	assert.For(ctx, "byte offset").ThatString(schema.Global.TypeName(e.Field("ByteOffset").Type)).Equals("optional uint32")
}
