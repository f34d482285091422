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

package vulkan_test

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/google/pipestate/api"
	"github.com/google/pipestate/api/vulkan"
	"github.com/google/pipestate/core/assert"
	"github.com/google/pipestate/core/log"
)

const image = api.ID(42)

func TestImageLayoutQueries(t *testing.T) {
	ctx := log.Testing(t)
	tracker := vulkan.NewLayoutTracker()
	tracker.Transition(image, vulkan.Subresource{BaseMip: 0, NumMips: 4, BaseLayer: 0, NumLayers: 1}, "ShaderRead")
	tracker.Transition(image, vulkan.Subresource{BaseMip: 0, NumMips: 1, BaseLayer: 1, NumLayers: 1}, "RenderTarget")
	s := vulkan.State{Images: tracker.Images()}

	for _, test := range []struct {
		mip, layer uint32
		expect     string
	}{
		{2, 0, "ShaderRead"},
		{0, 0, "ShaderRead"},
		{3, 0, "ShaderRead"},
		{4, 0, vulkan.UnknownLayout},
		{0, 1, "RenderTarget"},
		{1, 1, vulkan.UnknownLayout},
		{5, 5, vulkan.UnknownLayout},
	} {
		assert.For(ctx, "(%d, %d)", test.mip, test.layer).
			ThatString(s.ImageLayout(image, test.mip, test.layer)).Equals(test.expect)
	}
	assert.For(ctx, "untracked").ThatString(s.ImageLayout(image+1, 0, 0)).Equals(vulkan.UnknownLayout)
}

func TestTransitionSplitsRanges(t *testing.T) {
	ctx := log.Testing(t)
	tracker := vulkan.NewLayoutTracker()
	all := vulkan.Subresource{NumMips: vulkan.RemainingRange, NumLayers: vulkan.RemainingRange}
	tracker.Transition(image, all, "General")
	tracker.Transition(image, vulkan.Subresource{BaseMip: 1, NumMips: 1, BaseLayer: 2, NumLayers: 1}, "TransferDst")

	assert.For(ctx, "cut").ThatString(tracker.LayoutAt(image, 1, 2)).Equals("TransferDst")
	for _, p := range [][2]uint32{{0, 2}, {1, 1}, {1, 3}, {2, 2}, {1000, 1000}} {
		assert.For(ctx, "%v", p).ThatString(tracker.LayoutAt(image, p[0], p[1])).Equals("General")
	}
	checkDisjoint(ctx, tracker.Images())

	// Transitioning back restores the single range.
	tracker.Transition(image, vulkan.Subresource{BaseMip: 1, NumMips: 1, BaseLayer: 2, NumLayers: 1}, "General")
	images := tracker.Images()
	assert.For(ctx, "images").ThatSlice(images).IsLength(1)
	assert.For(ctx, "coalesced").ThatSlice(images[0].Layouts).IsLength(1)
	assert.For(ctx, "whole").That(images[0].Layouts[0]).Equals(vulkan.ImageLayout{
		NumMips: vulkan.RemainingRange, NumLayers: vulkan.RemainingRange, Name: "General",
	})
}

func TestTransitionIgnoresEmpty(t *testing.T) {
	ctx := log.Testing(t)
	tracker := vulkan.NewLayoutTracker()
	tracker.Transition(image, vulkan.Subresource{NumMips: 0, NumLayers: 1}, "General")
	tracker.Transition(api.NullID, vulkan.Subresource{NumMips: 1, NumLayers: 1}, "General")
	assert.For(ctx, "images").ThatSlice(tracker.Images()).IsEmpty()

	tracker.Transition(image, vulkan.Subresource{NumMips: 1, NumLayers: 1}, "General")
	tracker.Forget(image)
	assert.For(ctx, "forgotten").ThatString(tracker.LayoutAt(image, 0, 0)).Equals(vulkan.UnknownLayout)
}

// TestTransitionModel checks random transitions against a per-subresource
// model of a small image.
func TestTransitionModel(t *testing.T) {
	ctx := log.Testing(t)
	const mips, layers = 6, 5
	names := []string{"General", "ShaderRead", "RenderTarget", "TransferSrc"}
	rng := rand.New(rand.NewSource(1))

	for run := 0; run < 20; run++ {
		tracker := vulkan.NewLayoutTracker()
		model := [mips][layers]string{}
		for i := range model {
			for j := range model[i] {
				model[i][j] = vulkan.UnknownLayout
			}
		}
		for step := 0; step < 30; step++ {
			r := vulkan.Subresource{
				BaseMip:   uint32(rng.Intn(mips)),
				BaseLayer: uint32(rng.Intn(layers)),
			}
			r.NumMips = uint32(rng.Intn(mips-int(r.BaseMip))) + 1
			r.NumLayers = uint32(rng.Intn(layers-int(r.BaseLayer))) + 1
			if rng.Intn(4) == 0 {
				r.NumMips = vulkan.RemainingRange
			}
			if rng.Intn(4) == 0 {
				r.NumLayers = vulkan.RemainingRange
			}
			name := names[rng.Intn(len(names))]
			tracker.Transition(image, r, name)
			for m := r.BaseMip; m < mips && uint64(m) < uint64(r.BaseMip)+uint64(r.NumMips); m++ {
				for l := r.BaseLayer; l < layers && uint64(l) < uint64(r.BaseLayer)+uint64(r.NumLayers); l++ {
					model[m][l] = name
				}
			}
		}
		for m := uint32(0); m < mips; m++ {
			for l := uint32(0); l < layers; l++ {
				assert.For(ctx, "run %d (%d, %d)", run, m, l).
					ThatString(tracker.LayoutAt(image, m, l)).Equals(model[m][l])
			}
		}
		checkDisjoint(ctx, tracker.Images())
	}
}

func checkDisjoint(ctx context.Context, images []vulkan.ImageData) {
	for _, d := range images {
		for i, a := range d.Layouts {
			for _, b := range d.Layouts[i+1:] {
				assert.For(ctx, "%v and %v", describe(a), describe(b)).ThatBoolean(overlaps(a, b)).IsFalse()
			}
		}
	}
}

func overlaps(a, b vulkan.ImageLayout) bool {
	end := func(base, count uint32) uint64 { return uint64(base) + uint64(count) }
	return uint64(a.BaseMip) < end(b.BaseMip, b.NumMips) && uint64(b.BaseMip) < end(a.BaseMip, a.NumMips) &&
		uint64(a.BaseLayer) < end(b.BaseLayer, b.NumLayers) && uint64(b.BaseLayer) < end(a.BaseLayer, a.NumLayers)
}

func describe(l vulkan.ImageLayout) string {
	return fmt.Sprintf("%s mips [%d+%d] layers [%d+%d]", l.Name, l.BaseMip, l.NumMips, l.BaseLayer, l.NumLayers)
}
