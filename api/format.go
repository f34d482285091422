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

package api

import "fmt"

// ResourceFormat describes the layout of the data in a resource or view.
type ResourceFormat struct {
	Name          string        `doc:"The display name of the format."`
	Special       bool          `doc:"True if the format is not described by CompCount, CompByteWidth and CompType."`
	SpecialFormat SpecialFormat `doc:"The SpecialFormat of the format, if Special is true."`
	CompCount     uint32        `doc:"The number of components in each element."`
	CompByteWidth uint32        `doc:"The width in bytes of each component."`
	CompType      CompType      `doc:"The CompType describing how each component is interpreted."`
	BGRAOrder     bool          `doc:"True if the components are stored in BGRA order."`
	SRGBCorrected bool          `doc:"True if the components are stored with sRGB gamma correction."`
}

// ElementSize returns the size in bytes of one element, or 0 for special
// formats.
func (f ResourceFormat) ElementSize() uint32 {
	if f.Special {
		return 0
	}
	return f.CompCount * f.CompByteWidth
}

func (f ResourceFormat) String() string {
	if f.Name != "" {
		return f.Name
	}
	if f.Special {
		return f.SpecialFormat.String()
	}
	return fmt.Sprintf("%dx%d %v", f.CompCount, f.CompByteWidth*8, f.CompType)
}

// TextureFilter describes the filtering of a sampler.
type TextureFilter struct {
	Minify   FilterMode `doc:"The FilterMode to use when minifying the texture."`
	Magnify  FilterMode `doc:"The FilterMode to use when magnifying the texture."`
	Mip      FilterMode `doc:"The FilterMode to use when interpolating between mips."`
	Function FilterFunc `doc:"The FilterFunc applied to the filtered samples."`
}
