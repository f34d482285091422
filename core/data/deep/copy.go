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

// Package deep provides reflection based deep copying of values.
package deep

import (
	"fmt"
	"reflect"
)

// Clone makes a deep copy of v.
func Clone(v interface{}) (interface{}, error) {
	s := reflect.ValueOf(v)
	d := reflect.New(s.Type())
	if err := reflectCopy(d.Elem(), s, "val", map[reflect.Value]reflect.Value{}); err != nil {
		return nil, err
	}
	return d.Elem().Interface(), nil
}

// MustClone makes a deep copy of v, or panics if it could not.
func MustClone(v interface{}) interface{} {
	out, err := Clone(v)
	if err != nil {
		panic(err)
	}
	return out
}

// Copy recursively copies all fields, map and slice elements from the value
// src to the pointer dst.
// Fields missing from src are left untouched in dst.
func Copy(dst, src interface{}) error {
	d, s := reflect.ValueOf(dst), reflect.ValueOf(src)
	if d.Kind() != reflect.Ptr {
		return fmt.Errorf("dst should be a pointer, got %T", dst)
	}
	if s.Kind() == reflect.Ptr && s.Type() == d.Type() {
		s = s.Elem()
	}
	return reflectCopy(d.Elem(), s, "val", map[reflect.Value]reflect.Value{})
}

func reflectCopy(d, s reflect.Value, path string, seen map[reflect.Value]reflect.Value) error {
	if !d.CanSet() {
		return fmt.Errorf("Cannot assign to %v", path)
	}
	if d.Kind() != s.Kind() && d.Kind() != reflect.Interface {
		return fmt.Errorf("Kind mismatch at %v. %v (%v) != %v (%v)",
			path, d.Kind(), d.Type(), s.Kind(), s.Type())
	}

	switch d.Kind() {
	case reflect.Struct:
		for i, c := 0, d.Type().NumField(); i < c; i++ {
			f := d.Type().Field(i)
			if f.PkgPath != "" {
				continue // Unexported.
			}
			s := s.FieldByName(f.Name)
			if !s.IsValid() {
				continue // Source is missing field
			}
			if err := reflectCopy(d.Field(i), s, path+"."+f.Name, seen); err != nil {
				return err
			}
		}
		return nil
	case reflect.Map:
		if s.IsNil() {
			d.Set(reflect.Zero(d.Type()))
			return nil
		}
		d.Set(reflect.MakeMapWithSize(d.Type(), s.Len()))
		for _, k := range s.MapKeys() {
			v := reflect.New(d.Type().Elem()).Elem()
			if err := reflectCopy(v, s.MapIndex(k), fmt.Sprintf("%v[%v]", path, k.Interface()), seen); err != nil {
				return err
			}
			d.SetMapIndex(k, v)
		}
		return nil
	case reflect.Slice:
		if s.IsNil() {
			d.Set(reflect.Zero(d.Type()))
			return nil
		}
		d.Set(reflect.MakeSlice(d.Type(), s.Len(), s.Len()))
		for i, c := 0, s.Len(); i < c; i++ {
			if err := reflectCopy(d.Index(i), s.Index(i), fmt.Sprintf("%v[%d]", path, i), seen); err != nil {
				return err
			}
		}
		return nil
	case reflect.Array:
		if d.Len() != s.Len() {
			return fmt.Errorf("Array length mismatch at %v. %d != %d", path, d.Len(), s.Len())
		}
		for i, c := 0, s.Len(); i < c; i++ {
			if err := reflectCopy(d.Index(i), s.Index(i), fmt.Sprintf("%v[%d]", path, i), seen); err != nil {
				return err
			}
		}
		return nil
	case reflect.Ptr:
		if s.IsNil() {
			d.Set(reflect.Zero(d.Type()))
			return nil
		}
		if c, cyclic := seen[s]; cyclic {
			d.Set(c)
			return nil
		}
		d.Set(reflect.New(d.Type().Elem()))
		seen[s] = d
		return reflectCopy(d.Elem(), s.Elem(), path, seen)
	case reflect.Interface:
		if !s.IsValid() || (s.Kind() == reflect.Interface && s.IsNil()) {
			d.Set(reflect.Zero(d.Type()))
			return nil
		}
		if s.Kind() == reflect.Interface {
			s = s.Elem()
		}
		v := reflect.New(s.Type()).Elem()
		if err := reflectCopy(v, s, path, seen); err != nil {
			return err
		}
		d.Set(v)
		return nil
	default:
		if !s.Type().ConvertibleTo(d.Type()) {
			return fmt.Errorf("Cannot convert %v to %v at %v", s.Type(), d.Type(), path)
		}
		d.Set(s.Convert(d.Type()))
		return nil
	}
}
