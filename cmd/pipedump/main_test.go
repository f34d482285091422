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

package main

import (
	"bytes"
	"testing"

	"github.com/google/pipestate/capture/fixture"
	"github.com/google/pipestate/core/assert"
	"github.com/google/pipestate/core/log"
	"github.com/google/pipestate/service/box"
)

func TestDump(t *testing.T) {
	ctx := log.Testing(t)
	for _, test := range []struct {
		path   string
		event  int64
		expect []string
	}{
		{"d3d11.yaml", 10, []string{`"Wireframe"`, `"Texture2D"`}},
		{"d3d11.yaml", -1, []string{"// Event 10", "// Event 20"}},
		{"vulkan.yaml", 1, []string{`"ImageSampler"`, `"General"`, `"main"`}},
	} {
		*event = test.event
		out := &bytes.Buffer{}
		d := &dumper{
			path:  "../../capture/fixture/testdata/" + test.path,
			codec: box.Codec{OmitZero: true},
			out:   out,
		}
		assert.For(ctx, "%s load", test.path).ThatError(d.load(ctx)).Succeeded()
		assert.For(ctx, "%s dump", test.path).ThatError(d.dump(ctx)).Succeeded()
		for _, s := range test.expect {
			assert.For(ctx, "%s event %d", test.path, test.event).ThatString(out.String()).Contains(s)
		}
	}
	*event = -1
}

func TestDumpMissingEvent(t *testing.T) {
	ctx := log.Testing(t)
	*event = 15
	defer func() { *event = -1 }()
	d := &dumper{path: "../../capture/fixture/testdata/d3d11.yaml", out: &bytes.Buffer{}}
	assert.For(ctx, "load").ThatError(d.load(ctx)).Succeeded()
	assert.For(ctx, "dump").ThatError(d.dump(ctx)).Failed()
}

func TestReloadKeepsAPI(t *testing.T) {
	ctx := log.Testing(t)
	d := &dumper{path: "../../capture/fixture/testdata/d3d11.yaml", out: &bytes.Buffer{}}
	assert.For(ctx, "load").ThatError(d.load(ctx)).Succeeded()
	d.path = "../../capture/fixture/testdata/vulkan.yaml"
	err := d.load(ctx)
	assert.For(ctx, "reload").ThatError(err).Failed()
	assert.For(ctx, "message").ThatString(err.Error()).Contains("d3d11 to vulkan")
	assert.For(ctx, "kept").That(d.fixture.Load().API).Equals(fixture.D3D11)
}
