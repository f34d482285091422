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

import "github.com/google/pipestate/service/schema"

// BindType is the declared kind of a shader resource binding.
type BindType uint32

const (
	BindUnknown BindType = iota
	BindConstantBuffer
	BindSampler
	BindImageSampler
	BindReadOnlyImage
	BindReadWriteImage
	BindReadOnlyTBuffer
	BindReadWriteTBuffer
	BindReadOnlyBuffer
	BindReadWriteBuffer
	BindInputAttachment
)

// DescriptorKind is the set of descriptor payloads a BindType carries.
type DescriptorKind uint32

const (
	// KindBuffer descriptors reference a range of a buffer, or a texel buffer
	// view of one.
	KindBuffer DescriptorKind = 1 << iota
	// KindImage descriptors reference an image view.
	KindImage
	// KindSampler descriptors reference a sampler.
	KindSampler
)

// Has returns true if every kind in o is part of k.
func (k DescriptorKind) Has(o DescriptorKind) bool { return o != 0 && k&o == o }

// Kind returns the payloads that a binding of type t carries.
func (t BindType) Kind() DescriptorKind {
	switch t {
	case BindConstantBuffer, BindReadOnlyBuffer, BindReadWriteBuffer, BindReadOnlyTBuffer, BindReadWriteTBuffer:
		return KindBuffer
	case BindSampler:
		return KindSampler
	case BindImageSampler:
		return KindImage | KindSampler
	case BindReadOnlyImage, BindReadWriteImage, BindInputAttachment:
		return KindImage
	default:
		return 0
	}
}

var bindTypeEnum = schema.Global.AddEnum("", BindType(0), "The declared kind of a shader resource binding.",
	"Unknown", "ConstantBuffer", "Sampler", "ImageSampler", "ReadOnlyImage", "ReadWriteImage",
	"ReadOnlyTBuffer", "ReadWriteTBuffer", "ReadOnlyBuffer", "ReadWriteBuffer", "InputAttachment")

func (t BindType) String() string { return bindTypeEnum.Format(uint64(t)) }

// MarshalText encodes the value as its name.
func (t BindType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// UnmarshalText decodes a value name or number.
func (t *BindType) UnmarshalText(text []byte) error {
	v, err := bindTypeEnum.Parse(string(text))
	*t = BindType(v)
	return err
}

// Bindpoint maps a shader resource to the API binding it reads from.
type Bindpoint struct {
	BindSet   int32  `doc:"The binding set, for APIs that bind in sets. Zero otherwise."`
	Bind      int32  `doc:"The binding index or register slot."`
	Used      bool   `doc:"True if the shader statically uses this resource."`
	ArraySize uint32 `doc:"The number of array elements bound, or 1 for a non-array binding."`
}

// BindpointMapping maps each resource a shader declares to its Bindpoint.
type BindpointMapping struct {
	InputAttributes    []int32     `doc:"For each shader input, the vertex attribute index it reads, or -1 if it is not used."`
	ConstantBlocks     []Bindpoint `doc:"The Bindpoint of each constant block, in reflection order."`
	ReadOnlyResources  []Bindpoint `doc:"The Bindpoint of each read-only resource, in reflection order."`
	ReadWriteResources []Bindpoint `doc:"The Bindpoint of each read-write resource, in reflection order."`
}

// IsTexelBuffer returns true if t binds a formatted view of a buffer.
func (t BindType) IsTexelBuffer() bool {
	return t == BindReadOnlyTBuffer || t == BindReadWriteTBuffer
}
