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

// Package box converts snapshot values to and from a dynamically typed
// structpb.Value, using the reflection metadata of package schema.
//
// Structs become Struct values keyed by field name. Enums are written by name
// and bitmasks as lists of flag names. 64-bit integers are written as decimal
// strings so that JSON consumers do not lose precision. Non-finite floats are
// written as the strings "NaN", "Infinity" and "-Infinity". Byte slices are
// written as base64 strings. Nil pointers and nil slices become null.
package box

import (
	"encoding/base64"
	"fmt"
	"math"
	"reflect"
	"strconv"

	"github.com/google/pipestate/core/fault"
	"github.com/google/pipestate/service/schema"
	"github.com/pkg/errors"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	// ErrUnregisteredType is returned when a value holds a struct type with no
	// registered metadata, or a kind that cannot be boxed.
	ErrUnregisteredType = fault.Const("Type has no registered metadata")
	// ErrTypeMismatch is returned when a boxed value does not fit the type it
	// is assigned to.
	ErrTypeMismatch = fault.Const("Boxed value does not match the type")
	// ErrUnknownField is returned when a boxed struct holds a field that the
	// entity does not declare.
	ErrUnknownField = fault.Const("Unknown field")
)

// Codec boxes and unboxes values using the metadata in a namespace.
type Codec struct {
	// Namespace holds the metadata. Nil means schema.Global.
	Namespace *schema.Namespace
	// OmitZero drops struct fields holding their zero value when boxing.
	// Unboxing leaves missing fields zero, so round trips are unaffected.
	OmitZero bool
}

// NewValue boxes v using the metadata in schema.Global.
func NewValue(v interface{}) (*structpb.Value, error) { return Codec{}.NewValue(v) }

// AssignTo unboxes v into the value pointed to by p using the metadata in
// schema.Global.
func AssignTo(v *structpb.Value, p interface{}) error { return Codec{}.AssignTo(v, p) }

func (c Codec) ns() *schema.Namespace {
	if c.Namespace == nil {
		return schema.Global
	}
	return c.Namespace
}

// NewValue boxes v.
func (c Codec) NewValue(v interface{}) (*structpb.Value, error) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return structpb.NewNullValue(), nil
	}
	return c.box(c.ns().TypeName(rv.Type()), rv)
}

// AssignTo unboxes v into the value pointed to by p.
func (c Codec) AssignTo(v *structpb.Value, p interface{}) error {
	rv := reflect.ValueOf(p)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return errors.Wrapf(ErrTypeMismatch, "AssignTo requires a non-nil pointer, got %T", p)
	}
	dst := reflect.New(rv.Elem().Type()).Elem()
	if err := c.unbox(c.ns().TypeName(dst.Type()), v, dst); err != nil {
		return err
	}
	rv.Elem().Set(dst)
	return nil
}

func (c Codec) box(path string, v reflect.Value) (*structpb.Value, error) {
	t := v.Type()
	if e := c.ns().Enum(t); e != nil {
		return boxEnum(e, v), nil
	}
	switch t.Kind() {
	case reflect.Bool:
		return structpb.NewBoolValue(v.Bool()), nil
	case reflect.Int8, reflect.Int16, reflect.Int32:
		return structpb.NewNumberValue(float64(v.Int())), nil
	case reflect.Uint8, reflect.Uint16, reflect.Uint32:
		return structpb.NewNumberValue(float64(v.Uint())), nil
	case reflect.Int, reflect.Int64:
		return structpb.NewStringValue(strconv.FormatInt(v.Int(), 10)), nil
	case reflect.Uint, reflect.Uint64:
		return structpb.NewStringValue(strconv.FormatUint(v.Uint(), 10)), nil
	case reflect.Float32, reflect.Float64:
		return boxFloat(v.Float()), nil
	case reflect.String:
		return structpb.NewStringValue(v.String()), nil
	case reflect.Ptr:
		if v.IsNil() {
			return structpb.NewNullValue(), nil
		}
		return c.box(path, v.Elem())
	case reflect.Slice:
		if v.IsNil() {
			return structpb.NewNullValue(), nil
		}
		if t.Elem().Kind() == reflect.Uint8 {
			return structpb.NewStringValue(base64.StdEncoding.EncodeToString(v.Bytes())), nil
		}
		return c.boxList(path, v)
	case reflect.Array:
		return c.boxList(path, v)
	case reflect.Struct:
		e := c.ns().Entity(t)
		if e == nil {
			return nil, errors.Wrapf(ErrUnregisteredType, "%s: %v", path, t)
		}
		fields := make(map[string]*structpb.Value, len(e.Fields))
		for _, f := range e.Fields {
			fv := v.Field(f.Index)
			if c.OmitZero && fv.IsZero() {
				continue
			}
			b, err := c.box(path+"."+f.Name, fv)
			if err != nil {
				return nil, err
			}
			fields[f.Name] = b
		}
		return structpb.NewStructValue(&structpb.Struct{Fields: fields}), nil
	}
	return nil, errors.Wrapf(ErrUnregisteredType, "%s: %v has unsupported kind %v", path, t, t.Kind())
}

func (c Codec) boxList(path string, v reflect.Value) (*structpb.Value, error) {
	list := make([]*structpb.Value, v.Len())
	for i := range list {
		b, err := c.box(fmt.Sprintf("%s[%d]", path, i), v.Index(i))
		if err != nil {
			return nil, err
		}
		list[i] = b
	}
	return structpb.NewListValue(&structpb.ListValue{Values: list}), nil
}

func boxEnum(e *schema.Enum, v reflect.Value) *structpb.Value {
	n := enumBits(v)
	if !e.Bitmask {
		return structpb.NewStringValue(e.Format(n))
	}
	names, rest := e.Split(n)
	list := make([]*structpb.Value, 0, len(names)+1)
	for _, name := range names {
		list = append(list, structpb.NewStringValue(name))
	}
	if rest != 0 {
		list = append(list, structpb.NewStringValue(fmt.Sprintf("0x%x", rest)))
	}
	return structpb.NewListValue(&structpb.ListValue{Values: list})
}

func enumBits(v reflect.Value) uint64 {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return uint64(v.Int())
	default:
		return v.Uint()
	}
}

func boxFloat(f float64) *structpb.Value {
	switch {
	case math.IsNaN(f):
		return structpb.NewStringValue("NaN")
	case math.IsInf(f, 1):
		return structpb.NewStringValue("Infinity")
	case math.IsInf(f, -1):
		return structpb.NewStringValue("-Infinity")
	}
	return structpb.NewNumberValue(f)
}
