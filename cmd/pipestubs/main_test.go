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

	"github.com/google/pipestate/core/assert"
	"github.com/google/pipestate/core/log"
	"github.com/google/pipestate/service/stub"
)

func TestSplitList(t *testing.T) {
	ctx := log.Testing(t)
	for _, test := range []struct {
		in     string
		expect []string
	}{
		{"", nil},
		{"D3D11_", []string{"D3D11_"}},
		{" D3D11_, VK_ ,,", []string{"D3D11_", "VK_"}},
	} {
		assert.For(ctx, "%q", test.in).ThatSlice(splitList(test.in)).Equals(test.expect)
	}
}

func TestGenerate(t *testing.T) {
	ctx := log.Testing(t)
	out := &bytes.Buffer{}
	err := generate(out, stub.Options{Module: "pipestate", Prefixes: []string{"VK_"}})
	assert.For(ctx, "err").ThatError(err).Succeeded()
	assert.For(ctx, "stub").ThatString(out.String()).Contains("class VK_State:")
	assert.For(ctx, "stub").ThatString(out.String()).Contains("class BindType(IntEnum):")
}
