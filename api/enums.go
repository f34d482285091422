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

// AddressMode is the addressing mode used for a sampler co-ordinate outside the [0, 1] range.
type AddressMode uint32

const (
	AddressModeWrap AddressMode = iota
	AddressModeMirror
	AddressModeMirrorOnce
	AddressModeClampEdge
	AddressModeClampBorder
)

// CompareFunc is a comparison used in depth, stencil and sampler comparison tests.
type CompareFunc uint32

const (
	CompareFuncNever CompareFunc = iota
	CompareFuncAlwaysTrue
	CompareFuncLess
	CompareFuncLessEqual
	CompareFuncGreater
	CompareFuncGreaterEqual
	CompareFuncEqual
	CompareFuncNotEqual
)

// FillMode is the polygon fill mode.
type FillMode uint32

const (
	FillModeSolid FillMode = iota
	FillModeWireframe
	FillModePoint
)

// CullMode is the polygon culling mode.
type CullMode uint32

const (
	CullModeNoCull CullMode = iota
	CullModeFront
	CullModeBack
	CullModeFrontAndBack
)

// BlendMultiplier is the factor a blend source or destination value is multiplied by.
type BlendMultiplier uint32

const (
	BlendMultiplierZero BlendMultiplier = iota
	BlendMultiplierOne
	BlendMultiplierSrcCol
	BlendMultiplierInvSrcCol
	BlendMultiplierDstCol
	BlendMultiplierInvDstCol
	BlendMultiplierSrcAlpha
	BlendMultiplierInvSrcAlpha
	BlendMultiplierDstAlpha
	BlendMultiplierInvDstAlpha
	BlendMultiplierSrcAlphaSat
	BlendMultiplierFactorRGB
	BlendMultiplierInvFactorRGB
	BlendMultiplierFactorAlpha
	BlendMultiplierInvFactorAlpha
	BlendMultiplierSrc1Col
	BlendMultiplierInvSrc1Col
	BlendMultiplierSrc1Alpha
	BlendMultiplierInvSrc1Alpha
)

// BlendOp is the operation combining the source and destination blend terms.
type BlendOp uint32

const (
	BlendOpAdd BlendOp = iota
	BlendOpSubtract
	BlendOpReversedSubtract
	BlendOpMinimum
	BlendOpMaximum
)

// LogicOp is a logic operation applied to render target writes.
type LogicOp uint32

const (
	LogicOpNoOp LogicOp = iota
	LogicOpClear
	LogicOpSet
	LogicOpCopy
	LogicOpCopyInverted
	LogicOpInvert
	LogicOpAnd
	LogicOpNand
	LogicOpOr
	LogicOpXor
	LogicOpNor
	LogicOpEquivalent
	LogicOpAndReverse
	LogicOpAndInverted
	LogicOpOrReverse
	LogicOpOrInverted
)

// StencilOp is the operation applied to a stencil value after a test.
type StencilOp uint32

const (
	StencilOpKeep StencilOp = iota
	StencilOpZero
	StencilOpReplace
	StencilOpIncSat
	StencilOpDecSat
	StencilOpIncWrap
	StencilOpDecWrap
	StencilOpInvert
)

// FilterMode is the filter used for minification, magnification or mip selection.
type FilterMode uint32

const (
	FilterModeNoFilter FilterMode = iota
	FilterModePoint
	FilterModeLinear
	FilterModeCubic
	FilterModeAnisotropic
)

// FilterFunc is the function used to combine filtered samples.
type FilterFunc uint32

const (
	FilterFuncNormal FilterFunc = iota
	FilterFuncComparison
	FilterFuncMinimum
	FilterFuncMaximum
)

// TextureDim is the dimensionality of a texture or view.
type TextureDim uint32

const (
	TextureDimUnknown TextureDim = iota
	TextureDimBuffer
	TextureDimTexture1D
	TextureDimTexture1DArray
	TextureDimTexture2D
	TextureDimTextureRect
	TextureDimTexture2DArray
	TextureDimTexture2DMS
	TextureDimTexture2DMSArray
	TextureDimTexture3D
	TextureDimTextureCube
	TextureDimTextureCubeArray
)

// TextureSwizzle is the source of one channel of a swizzled view.
type TextureSwizzle uint32

const (
	TextureSwizzleRed TextureSwizzle = iota
	TextureSwizzleGreen
	TextureSwizzleBlue
	TextureSwizzleAlpha
	TextureSwizzleZero
	TextureSwizzleOne
)

// CompType is how the components of a format are interpreted.
type CompType uint32

const (
	CompTypeTypeless CompType = iota
	CompTypeFloat
	CompTypeUNorm
	CompTypeSNorm
	CompTypeUInt
	CompTypeSInt
	CompTypeUScaled
	CompTypeSScaled
	CompTypeDepth
	CompTypeDouble
)

// SpecialFormat identifies formats that are not described by component count and width.
type SpecialFormat uint32

const (
	SpecialFormatUnknown SpecialFormat = iota
	SpecialFormatBC1
	SpecialFormatBC2
	SpecialFormatBC3
	SpecialFormatBC4
	SpecialFormatBC5
	SpecialFormatBC6
	SpecialFormatBC7
	SpecialFormatETC2
	SpecialFormatEAC
	SpecialFormatASTC
	SpecialFormatR10G10B10A2
	SpecialFormatR11G11B10
	SpecialFormatR5G6B5
	SpecialFormatR5G5B5A1
	SpecialFormatR9G9B9E5
	SpecialFormatR4G4B4A4
	SpecialFormatR4G4
	SpecialFormatD16S8
	SpecialFormatD24S8
	SpecialFormatD32S8
	SpecialFormatS8
	SpecialFormatYUV
)

// ShaderStage identifies one programmable pipeline stage.
type ShaderStage uint32

const (
	ShaderStageVertex ShaderStage = iota
	ShaderStageHull
	ShaderStageDomain
	ShaderStageGeometry
	ShaderStagePixel
	ShaderStageCompute
)

// ShaderStageMask is a set of ShaderStage values.
type ShaderStageMask uint32

const (
	ShaderStageMaskUnknown ShaderStageMask = 0
	ShaderStageMaskVertex ShaderStageMask = 1
	ShaderStageMaskHull ShaderStageMask = 2
	ShaderStageMaskDomain ShaderStageMask = 4
	ShaderStageMaskGeometry ShaderStageMask = 8
	ShaderStageMaskPixel ShaderStageMask = 16
	ShaderStageMaskCompute ShaderStageMask = 32
)

// BufferViewFlags holds additional properties of a buffer view.
type BufferViewFlags uint32

const (
	BufferViewFlagsNoFlags BufferViewFlags = 0
	BufferViewFlagsRaw BufferViewFlags = 1
	BufferViewFlagsAppend BufferViewFlags = 2
	BufferViewFlagsCounter BufferViewFlags = 4
)

var (
	addressModeEnum = schema.Global.AddEnum("", AddressMode(0), "The addressing mode used for a sampler co-ordinate outside the [0, 1] range.",
		"Wrap", "Mirror", "MirrorOnce", "ClampEdge", "ClampBorder")
	compareFuncEnum = schema.Global.AddEnum("", CompareFunc(0), "A comparison used in depth, stencil and sampler comparison tests.",
		"Never", "AlwaysTrue", "Less", "LessEqual", "Greater", "GreaterEqual", "Equal", "NotEqual")
	fillModeEnum = schema.Global.AddEnum("", FillMode(0), "The polygon fill mode.",
		"Solid", "Wireframe", "Point")
	cullModeEnum = schema.Global.AddEnum("", CullMode(0), "The polygon culling mode.",
		"NoCull", "Front", "Back", "FrontAndBack")
	blendMultiplierEnum = schema.Global.AddEnum("", BlendMultiplier(0), "The factor a blend source or destination value is multiplied by.",
		"Zero", "One", "SrcCol", "InvSrcCol", "DstCol", "InvDstCol", "SrcAlpha", "InvSrcAlpha", "DstAlpha", "InvDstAlpha", "SrcAlphaSat", "FactorRGB", "InvFactorRGB", "FactorAlpha", "InvFactorAlpha", "Src1Col", "InvSrc1Col", "Src1Alpha", "InvSrc1Alpha")
	blendOpEnum = schema.Global.AddEnum("", BlendOp(0), "The operation combining the source and destination blend terms.",
		"Add", "Subtract", "ReversedSubtract", "Minimum", "Maximum")
	logicOpEnum = schema.Global.AddEnum("", LogicOp(0), "A logic operation applied to render target writes.",
		"NoOp", "Clear", "Set", "Copy", "CopyInverted", "Invert", "And", "Nand", "Or", "Xor", "Nor", "Equivalent", "AndReverse", "AndInverted", "OrReverse", "OrInverted")
	stencilOpEnum = schema.Global.AddEnum("", StencilOp(0), "The operation applied to a stencil value after a test.",
		"Keep", "Zero", "Replace", "IncSat", "DecSat", "IncWrap", "DecWrap", "Invert")
	filterModeEnum = schema.Global.AddEnum("", FilterMode(0), "The filter used for minification, magnification or mip selection.",
		"NoFilter", "Point", "Linear", "Cubic", "Anisotropic")
	filterFuncEnum = schema.Global.AddEnum("", FilterFunc(0), "The function used to combine filtered samples.",
		"Normal", "Comparison", "Minimum", "Maximum")
	textureDimEnum = schema.Global.AddEnum("", TextureDim(0), "The dimensionality of a texture or view.",
		"Unknown", "Buffer", "Texture1D", "Texture1DArray", "Texture2D", "TextureRect", "Texture2DArray", "Texture2DMS", "Texture2DMSArray", "Texture3D", "TextureCube", "TextureCubeArray")
	textureSwizzleEnum = schema.Global.AddEnum("", TextureSwizzle(0), "The source of one channel of a swizzled view.",
		"Red", "Green", "Blue", "Alpha", "Zero", "One")
	compTypeEnum = schema.Global.AddEnum("", CompType(0), "How the components of a format are interpreted.",
		"Typeless", "Float", "UNorm", "SNorm", "UInt", "SInt", "UScaled", "SScaled", "Depth", "Double")
	specialFormatEnum = schema.Global.AddEnum("", SpecialFormat(0), "Identifies formats that are not described by component count and width.",
		"Unknown", "BC1", "BC2", "BC3", "BC4", "BC5", "BC6", "BC7", "ETC2", "EAC", "ASTC", "R10G10B10A2", "R11G11B10", "R5G6B5", "R5G5B5A1", "R9G9B9E5", "R4G4B4A4", "R4G4", "D16S8", "D24S8", "D32S8", "S8", "YUV")
	shaderStageEnum = schema.Global.AddEnum("", ShaderStage(0), "Identifies one programmable pipeline stage.",
		"Vertex", "Hull", "Domain", "Geometry", "Pixel", "Compute")
	shaderStageMaskEnum = schema.Global.AddFlags("", ShaderStageMask(0), "A set of ShaderStage values.",
		schema.EnumValue{Name: "Unknown", Value: 0},
		schema.EnumValue{Name: "Vertex", Value: 1},
		schema.EnumValue{Name: "Hull", Value: 2},
		schema.EnumValue{Name: "Domain", Value: 4},
		schema.EnumValue{Name: "Geometry", Value: 8},
		schema.EnumValue{Name: "Pixel", Value: 16},
		schema.EnumValue{Name: "Compute", Value: 32},
	)
	bufferViewFlagsEnum = schema.Global.AddFlags("", BufferViewFlags(0), "Holds additional properties of a buffer view.",
		schema.EnumValue{Name: "NoFlags", Value: 0},
		schema.EnumValue{Name: "Raw", Value: 1},
		schema.EnumValue{Name: "Append", Value: 2},
		schema.EnumValue{Name: "Counter", Value: 4},
	)
)

func (a AddressMode) String() string { return addressModeEnum.Format(uint64(a)) }

// MarshalText encodes the value as its name.
func (a AddressMode) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

// UnmarshalText decodes a value name or number.
func (a *AddressMode) UnmarshalText(text []byte) error {
	v, err := addressModeEnum.Parse(string(text))
	*a = AddressMode(v)
	return err
}

func (c CompareFunc) String() string { return compareFuncEnum.Format(uint64(c)) }

// MarshalText encodes the value as its name.
func (c CompareFunc) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// UnmarshalText decodes a value name or number.
func (c *CompareFunc) UnmarshalText(text []byte) error {
	v, err := compareFuncEnum.Parse(string(text))
	*c = CompareFunc(v)
	return err
}

func (f FillMode) String() string { return fillModeEnum.Format(uint64(f)) }

// MarshalText encodes the value as its name.
func (f FillMode) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

// UnmarshalText decodes a value name or number.
func (f *FillMode) UnmarshalText(text []byte) error {
	v, err := fillModeEnum.Parse(string(text))
	*f = FillMode(v)
	return err
}

func (c CullMode) String() string { return cullModeEnum.Format(uint64(c)) }

// MarshalText encodes the value as its name.
func (c CullMode) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// UnmarshalText decodes a value name or number.
func (c *CullMode) UnmarshalText(text []byte) error {
	v, err := cullModeEnum.Parse(string(text))
	*c = CullMode(v)
	return err
}

func (b BlendMultiplier) String() string { return blendMultiplierEnum.Format(uint64(b)) }

// MarshalText encodes the value as its name.
func (b BlendMultiplier) MarshalText() ([]byte, error) { return []byte(b.String()), nil }

// UnmarshalText decodes a value name or number.
func (b *BlendMultiplier) UnmarshalText(text []byte) error {
	v, err := blendMultiplierEnum.Parse(string(text))
	*b = BlendMultiplier(v)
	return err
}

func (b BlendOp) String() string { return blendOpEnum.Format(uint64(b)) }

// MarshalText encodes the value as its name.
func (b BlendOp) MarshalText() ([]byte, error) { return []byte(b.String()), nil }

// UnmarshalText decodes a value name or number.
func (b *BlendOp) UnmarshalText(text []byte) error {
	v, err := blendOpEnum.Parse(string(text))
	*b = BlendOp(v)
	return err
}

func (l LogicOp) String() string { return logicOpEnum.Format(uint64(l)) }

// MarshalText encodes the value as its name.
func (l LogicOp) MarshalText() ([]byte, error) { return []byte(l.String()), nil }

// UnmarshalText decodes a value name or number.
func (l *LogicOp) UnmarshalText(text []byte) error {
	v, err := logicOpEnum.Parse(string(text))
	*l = LogicOp(v)
	return err
}

func (s StencilOp) String() string { return stencilOpEnum.Format(uint64(s)) }

// MarshalText encodes the value as its name.
func (s StencilOp) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText decodes a value name or number.
func (s *StencilOp) UnmarshalText(text []byte) error {
	v, err := stencilOpEnum.Parse(string(text))
	*s = StencilOp(v)
	return err
}

func (f FilterMode) String() string { return filterModeEnum.Format(uint64(f)) }

// MarshalText encodes the value as its name.
func (f FilterMode) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

// UnmarshalText decodes a value name or number.
func (f *FilterMode) UnmarshalText(text []byte) error {
	v, err := filterModeEnum.Parse(string(text))
	*f = FilterMode(v)
	return err
}

func (f FilterFunc) String() string { return filterFuncEnum.Format(uint64(f)) }

// MarshalText encodes the value as its name.
func (f FilterFunc) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

// UnmarshalText decodes a value name or number.
func (f *FilterFunc) UnmarshalText(text []byte) error {
	v, err := filterFuncEnum.Parse(string(text))
	*f = FilterFunc(v)
	return err
}

func (t TextureDim) String() string { return textureDimEnum.Format(uint64(t)) }

// MarshalText encodes the value as its name.
func (t TextureDim) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// UnmarshalText decodes a value name or number.
func (t *TextureDim) UnmarshalText(text []byte) error {
	v, err := textureDimEnum.Parse(string(text))
	*t = TextureDim(v)
	return err
}

func (t TextureSwizzle) String() string { return textureSwizzleEnum.Format(uint64(t)) }

// MarshalText encodes the value as its name.
func (t TextureSwizzle) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// UnmarshalText decodes a value name or number.
func (t *TextureSwizzle) UnmarshalText(text []byte) error {
	v, err := textureSwizzleEnum.Parse(string(text))
	*t = TextureSwizzle(v)
	return err
}

func (c CompType) String() string { return compTypeEnum.Format(uint64(c)) }

// MarshalText encodes the value as its name.
func (c CompType) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// UnmarshalText decodes a value name or number.
func (c *CompType) UnmarshalText(text []byte) error {
	v, err := compTypeEnum.Parse(string(text))
	*c = CompType(v)
	return err
}

func (s SpecialFormat) String() string { return specialFormatEnum.Format(uint64(s)) }

// MarshalText encodes the value as its name.
func (s SpecialFormat) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText decodes a value name or number.
func (s *SpecialFormat) UnmarshalText(text []byte) error {
	v, err := specialFormatEnum.Parse(string(text))
	*s = SpecialFormat(v)
	return err
}

func (s ShaderStage) String() string { return shaderStageEnum.Format(uint64(s)) }

// MarshalText encodes the value as its name.
func (s ShaderStage) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText decodes a value name or number.
func (s *ShaderStage) UnmarshalText(text []byte) error {
	v, err := shaderStageEnum.Parse(string(text))
	*s = ShaderStage(v)
	return err
}

func (s ShaderStageMask) String() string { return shaderStageMaskEnum.Format(uint64(s)) }

// MarshalText encodes the value as its name.
func (s ShaderStageMask) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText decodes a value name or number.
func (s *ShaderStageMask) UnmarshalText(text []byte) error {
	v, err := shaderStageMaskEnum.Parse(string(text))
	*s = ShaderStageMask(v)
	return err
}

func (b BufferViewFlags) String() string { return bufferViewFlagsEnum.Format(uint64(b)) }

// MarshalText encodes the value as its name.
func (b BufferViewFlags) MarshalText() ([]byte, error) { return []byte(b.String()), nil }

// UnmarshalText decodes a value name or number.
func (b *BufferViewFlags) UnmarshalText(text []byte) error {
	v, err := bufferViewFlagsEnum.Parse(string(text))
	*b = BufferViewFlags(v)
	return err
}
