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

package box

import (
	"encoding/base64"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"

	"github.com/google/pipestate/service/schema"
	"github.com/pkg/errors"
	"google.golang.org/protobuf/types/known/structpb"
)

func mismatch(path string, expect string, got *structpb.Value) error {
	return errors.Wrapf(ErrTypeMismatch, "%s: expected %s, got %s", path, expect, kindOf(got))
}

func kindOf(v *structpb.Value) string {
	switch v.GetKind().(type) {
	case *structpb.Value_NullValue:
		return "null"
	case *structpb.Value_NumberValue:
		return "number"
	case *structpb.Value_StringValue:
		return "string"
	case *structpb.Value_BoolValue:
		return "bool"
	case *structpb.Value_StructValue:
		return "struct"
	case *structpb.Value_ListValue:
		return "list"
	}
	return "no value"
}

func isNull(v *structpb.Value) bool {
	_, ok := v.GetKind().(*structpb.Value_NullValue)
	return ok
}

func (c Codec) unbox(path string, v *structpb.Value, dst reflect.Value) error {
	t := dst.Type()
	if e := c.ns().Enum(t); e != nil {
		return unboxEnum(path, e, v, dst)
	}
	switch t.Kind() {
	case reflect.Bool:
		b, ok := v.GetKind().(*structpb.Value_BoolValue)
		if !ok {
			return mismatch(path, "bool", v)
		}
		dst.SetBool(b.BoolValue)
		return nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return unboxInt(path, v, dst)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return unboxUint(path, v, dst)
	case reflect.Float32, reflect.Float64:
		return unboxFloat(path, v, dst)
	case reflect.String:
		s, ok := v.GetKind().(*structpb.Value_StringValue)
		if !ok {
			return mismatch(path, "string", v)
		}
		dst.SetString(s.StringValue)
		return nil
	case reflect.Ptr:
		if isNull(v) {
			dst.Set(reflect.Zero(t))
			return nil
		}
		p := reflect.New(t.Elem())
		if err := c.unbox(path, v, p.Elem()); err != nil {
			return err
		}
		dst.Set(p)
		return nil
	case reflect.Slice:
		if isNull(v) {
			dst.Set(reflect.Zero(t))
			return nil
		}
		if t.Elem().Kind() == reflect.Uint8 {
			s, ok := v.GetKind().(*structpb.Value_StringValue)
			if !ok {
				return mismatch(path, "base64 string", v)
			}
			b, err := base64.StdEncoding.DecodeString(s.StringValue)
			if err != nil {
				return errors.Wrapf(ErrTypeMismatch, "%s: %v", path, err)
			}
			dst.Set(reflect.ValueOf(b).Convert(t))
			return nil
		}
		list, ok := v.GetKind().(*structpb.Value_ListValue)
		if !ok {
			return mismatch(path, "list", v)
		}
		values := list.ListValue.GetValues()
		dst.Set(reflect.MakeSlice(t, len(values), len(values)))
		return c.unboxList(path, values, dst)
	case reflect.Array:
		list, ok := v.GetKind().(*structpb.Value_ListValue)
		if !ok {
			return mismatch(path, "list", v)
		}
		values := list.ListValue.GetValues()
		if len(values) != t.Len() {
			return errors.Wrapf(ErrTypeMismatch, "%s: expected %d elements, got %d", path, t.Len(), len(values))
		}
		return c.unboxList(path, values, dst)
	case reflect.Struct:
		e := c.ns().Entity(t)
		if e == nil {
			return errors.Wrapf(ErrUnregisteredType, "%s: %v", path, t)
		}
		s, ok := v.GetKind().(*structpb.Value_StructValue)
		if !ok {
			return mismatch(path, e.Name, v)
		}
		fields := s.StructValue.GetFields()
		names := make([]string, 0, len(fields))
		for name := range fields {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			f := e.Field(name)
			if f == nil {
				return errors.Wrapf(ErrUnknownField, "%s.%s", path, name)
			}
			if err := c.unbox(path+"."+name, fields[name], dst.Field(f.Index)); err != nil {
				return err
			}
		}
		return nil
	}
	return errors.Wrapf(ErrUnregisteredType, "%s: %v has unsupported kind %v", path, t, t.Kind())
}

func (c Codec) unboxList(path string, values []*structpb.Value, dst reflect.Value) error {
	for i, e := range values {
		if err := c.unbox(fmt.Sprintf("%s[%d]", path, i), e, dst.Index(i)); err != nil {
			return err
		}
	}
	return nil
}

func unboxEnum(path string, e *schema.Enum, v *structpb.Value, dst reflect.Value) error {
	var n uint64
	switch k := v.GetKind().(type) {
	case *structpb.Value_StringValue:
		var err error
		if n, err = e.Parse(k.StringValue); err != nil {
			return errors.Wrapf(ErrTypeMismatch, "%s: %v", path, err)
		}
	case *structpb.Value_NumberValue:
		f := k.NumberValue
		if f < 0 || f != math.Trunc(f) || f > math.MaxUint32 {
			return errors.Wrapf(ErrTypeMismatch, "%s: %v is not a %s value", path, f, e.Name)
		}
		n = uint64(f)
	case *structpb.Value_ListValue:
		if !e.Bitmask {
			return mismatch(path, e.Name, v)
		}
		for i, flag := range k.ListValue.GetValues() {
			s, ok := flag.GetKind().(*structpb.Value_StringValue)
			if !ok {
				return mismatch(fmt.Sprintf("%s[%d]", path, i), e.Name+" flag", flag)
			}
			bits, err := e.Parse(s.StringValue)
			if err != nil {
				return errors.Wrapf(ErrTypeMismatch, "%s[%d]: %v", path, i, err)
			}
			n |= bits
		}
	default:
		return mismatch(path, e.Name, v)
	}
	switch dst.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if dst.OverflowInt(int64(n)) {
			return errors.Wrapf(ErrTypeMismatch, "%s: %d overflows %s", path, n, e.Name)
		}
		dst.SetInt(int64(n))
	default:
		if dst.OverflowUint(n) {
			return errors.Wrapf(ErrTypeMismatch, "%s: %d overflows %s", path, n, e.Name)
		}
		dst.SetUint(n)
	}
	return nil
}

func unboxInt(path string, v *structpb.Value, dst reflect.Value) error {
	var n int64
	switch k := v.GetKind().(type) {
	case *structpb.Value_StringValue:
		var err error
		if n, err = strconv.ParseInt(k.StringValue, 10, 64); err != nil {
			return errors.Wrapf(ErrTypeMismatch, "%s: %v", path, err)
		}
	case *structpb.Value_NumberValue:
		f := k.NumberValue
		if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
			return errors.Wrapf(ErrTypeMismatch, "%s: %v is not an integer", path, f)
		}
		n = int64(f)
	default:
		return mismatch(path, "integer", v)
	}
	if dst.OverflowInt(n) {
		return errors.Wrapf(ErrTypeMismatch, "%s: %d overflows %v", path, n, dst.Type())
	}
	dst.SetInt(n)
	return nil
}

func unboxUint(path string, v *structpb.Value, dst reflect.Value) error {
	var n uint64
	switch k := v.GetKind().(type) {
	case *structpb.Value_StringValue:
		var err error
		if n, err = strconv.ParseUint(k.StringValue, 10, 64); err != nil {
			return errors.Wrapf(ErrTypeMismatch, "%s: %v", path, err)
		}
	case *structpb.Value_NumberValue:
		f := k.NumberValue
		if f != math.Trunc(f) || f < 0 || f >= math.MaxUint64 {
			return errors.Wrapf(ErrTypeMismatch, "%s: %v is not an unsigned integer", path, f)
		}
		n = uint64(f)
	default:
		return mismatch(path, "unsigned integer", v)
	}
	if dst.OverflowUint(n) {
		return errors.Wrapf(ErrTypeMismatch, "%s: %d overflows %v", path, n, dst.Type())
	}
	dst.SetUint(n)
	return nil
}

func unboxFloat(path string, v *structpb.Value, dst reflect.Value) error {
	switch k := v.GetKind().(type) {
	case *structpb.Value_NumberValue:
		dst.SetFloat(k.NumberValue)
	case *structpb.Value_StringValue:
		switch k.StringValue {
		case "NaN":
			dst.SetFloat(math.NaN())
		case "Infinity":
			dst.SetFloat(math.Inf(1))
		case "-Infinity":
			dst.SetFloat(math.Inf(-1))
		default:
			return errors.Wrapf(ErrTypeMismatch, "%s: %q is not a number", path, k.StringValue)
		}
	default:
		return mismatch(path, "number", v)
	}
	return nil
}
