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

// RemainingRange as a Subresource count covers every level or layer from the
// base onwards.
const RemainingRange = ^uint32(0)

// Subresource is a range of mip levels and array layers of an image.
type Subresource struct {
	BaseMip   uint32
	NumMips   uint32
	BaseLayer uint32
	NumLayers uint32
}

// LayoutTracker records image layout transitions as the backend replays
// commands, keeping the ranges of each image disjoint.
// It is not safe for concurrent use.
type LayoutTracker struct {
	images map[api.ID][]ImageLayout
}

// NewLayoutTracker returns a tracker with no images.
func NewLayoutTracker() *LayoutTracker {
	return &LayoutTracker{images: map[api.ID][]ImageLayout{}}
}

// rect is a half-open range in (mip, layer) space.
type rect struct {
	mip0, mip1     uint64
	layer0, layer1 uint64
}

// span clamps the end so that every range's count fits in a uint32.
func span(base, count uint32) (uint64, uint64) {
	end := uint64(base) + uint64(count)
	if end > maxCount {
		end = maxCount
	}
	return uint64(base), end
}

func rectOf(l ImageLayout) rect {
	r := rect{}
	r.mip0, r.mip1 = span(l.BaseMip, l.NumMips)
	r.layer0, r.layer1 = span(l.BaseLayer, l.NumLayers)
	return r
}

func (r rect) empty() bool { return r.mip0 >= r.mip1 || r.layer0 >= r.layer1 }

func (r rect) overlaps(o rect) bool {
	return r.mip0 < o.mip1 && o.mip0 < r.mip1 && r.layer0 < o.layer1 && o.layer0 < r.layer1
}

func (r rect) layout(name string) ImageLayout {
	return ImageLayout{
		BaseMip:   uint32(r.mip0),
		NumMips:   uint32(r.mip1 - r.mip0),
		BaseLayer: uint32(r.layer0),
		NumLayers: uint32(r.layer1 - r.layer0),
		Name:      name,
	}
}

// Transition records that the subresources r of image are now in the state
// name. Parts of existing ranges covered by r are replaced.
func (t *LayoutTracker) Transition(image api.ID, r Subresource, name string) {
	cut := rectOf(ImageLayout{BaseMip: r.BaseMip, NumMips: r.NumMips, BaseLayer: r.BaseLayer, NumLayers: r.NumLayers})
	if image.IsNull() || cut.empty() {
		return
	}
	existing := t.images[image]
	out := make([]ImageLayout, 0, len(existing)+4)
	for _, l := range existing {
		out = appendOutside(out, l, cut)
	}
	out = append(out, cut.layout(name))
	t.images[image] = coalesce(out)
}

// appendOutside appends the parts of l that are not covered by cut.
func appendOutside(out []ImageLayout, l ImageLayout, cut rect) []ImageLayout {
	r := rectOf(l)
	if !r.overlaps(cut) {
		return append(out, l)
	}
	add := func(p rect) {
		if !p.empty() {
			out = append(out, p.layout(l.Name))
		}
	}
	// The mips either side of the cut keep every layer of l.
	add(rect{r.mip0, cut.mip0, r.layer0, r.layer1})
	add(rect{cut.mip1, r.mip1, r.layer0, r.layer1})
	// Within the cut's mips only the layers either side of it remain.
	m0, m1 := max(r.mip0, cut.mip0), min(r.mip1, cut.mip1)
	add(rect{m0, m1, r.layer0, cut.layer0})
	add(rect{m0, m1, cut.layer1, r.layer1})
	return out
}

// coalesce merges pairs of ranges with the same state that together form a
// rectangle.
func coalesce(ls []ImageLayout) []ImageLayout {
	for merged := true; merged; {
		merged = false
		for i := 0; i < len(ls) && !merged; i++ {
			for j := i + 1; j < len(ls); j++ {
				if m, ok := merge(ls[i], ls[j]); ok {
					ls[i] = m
					ls = append(ls[:j], ls[j+1:]...)
					merged = true
					break
				}
			}
		}
	}
	return ls
}

func merge(a, b ImageLayout) (ImageLayout, bool) {
	if a.Name != b.Name {
		return ImageLayout{}, false
	}
	ra, rb := rectOf(a), rectOf(b)
	var m rect
	switch {
	case ra.layer0 == rb.layer0 && ra.layer1 == rb.layer1 && (ra.mip1 == rb.mip0 || rb.mip1 == ra.mip0):
		m = rect{min(ra.mip0, rb.mip0), max(ra.mip1, rb.mip1), ra.layer0, ra.layer1}
	case ra.mip0 == rb.mip0 && ra.mip1 == rb.mip1 && (ra.layer1 == rb.layer0 || rb.layer1 == ra.layer0):
		m = rect{ra.mip0, ra.mip1, min(ra.layer0, rb.layer0), max(ra.layer1, rb.layer1)}
	default:
		return ImageLayout{}, false
	}
	if m.mip1-m.mip0 > maxCount || m.layer1-m.layer0 > maxCount {
		return ImageLayout{}, false
	}
	return m.layout(a.Name), true
}

// maxCount is the largest range a uint32 count can describe.
const maxCount = uint64(^uint32(0))

// Forget stops tracking image, for example when it is destroyed.
func (t *LayoutTracker) Forget(image api.ID) { delete(t.images, image) }

// LayoutAt returns the state of the subresource (mip, layer) of image, or
// UnknownLayout.
func (t *LayoutTracker) LayoutAt(image api.ID, mip, layer uint32) string {
	return ImageData{Image: image, Layouts: t.images[image]}.LayoutAt(mip, layer)
}

// Images returns a copy of the tracked layouts of every image, sorted by image
// identifier and each image's ranges by first mip then first layer.
func (t *LayoutTracker) Images() []ImageData {
	out := make([]ImageData, 0, len(t.images))
	for id, ls := range t.images {
		out = append(out, ImageData{Image: id, Layouts: append([]ImageLayout(nil), ls...)})
	}
	sortImages(out)
	return out
}
