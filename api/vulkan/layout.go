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
	"sort"

	"github.com/google/pipestate/api"
)

// UnknownLayout is the state of a subresource that has never been
// transitioned.
const UnknownLayout = "UNKNOWN"

// Contains returns true if the subresource (mip, layer) is within the range.
func (l ImageLayout) Contains(mip, layer uint32) bool {
	return within(mip, l.BaseMip, l.NumMips) && within(layer, l.BaseLayer, l.NumLayers)
}

func within(v, base, count uint32) bool {
	return v >= base && uint64(v) < uint64(base)+uint64(count)
}

// Lookup returns the range that holds the subresource (mip, layer).
func (d ImageData) Lookup(mip, layer uint32) (ImageLayout, bool) {
	for _, l := range d.Layouts {
		if l.Contains(mip, layer) {
			return l, true
		}
	}
	return ImageLayout{}, false
}

// LayoutAt returns the name of the state of the subresource (mip, layer), or
// UnknownLayout if it was never transitioned.
func (d ImageData) LayoutAt(mip, layer uint32) string {
	if l, ok := d.Lookup(mip, layer); ok {
		return l.Name
	}
	return UnknownLayout
}

// Image returns the tracked layouts of image.
func (s *State) Image(image api.ID) (ImageData, bool) {
	i := sort.Search(len(s.Images), func(i int) bool { return s.Images[i].Image >= image })
	if i < len(s.Images) && s.Images[i].Image == image {
		return s.Images[i], true
	}
	return ImageData{}, false
}

// ImageLayout returns the name of the state of the subresource (mip, layer) of
// image, or UnknownLayout if the image is untracked or the subresource was
// never transitioned.
func (s *State) ImageLayout(image api.ID, mip, layer uint32) string {
	d, ok := s.Image(image)
	if !ok {
		return UnknownLayout
	}
	return d.LayoutAt(mip, layer)
}

// sortImages orders images by identifier and each image's ranges by first mip
// then first layer.
func sortImages(images []ImageData) {
	sort.Slice(images, func(i, j int) bool { return images[i].Image < images[j].Image })
	for _, d := range images {
		sort.Slice(d.Layouts, func(i, j int) bool {
			a, b := d.Layouts[i], d.Layouts[j]
			if a.BaseMip != b.BaseMip {
				return a.BaseMip < b.BaseMip
			}
			return a.BaseLayer < b.BaseLayer
		})
	}
}
