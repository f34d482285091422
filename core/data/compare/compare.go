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

// Package compare provides reflection based deep comparison of values,
// reporting the paths at which two values differ.
package compare

import (
	"fmt"
	"reflect"
)

// Difference describes a single difference found between two values.
type Difference struct {
	Path   string      // The path to the differing value, e.g. "val.Stages[2].Object"
	Got    interface{} // The value found in the first value
	Expect interface{} // The value found in the second value
}

func (d Difference) String() string {
	return fmt.Sprintf("%v: %v != %v", d.Path, d.Got, d.Expect)
}

// DeepEqual returns true if a and b are deeply equal.
func DeepEqual(a, b interface{}) bool {
	return len(Diff(a, b, 1)) == 0
}

// Diff returns up to limit differences between a and b.
// A limit of 0 or less reports every difference.
func Diff(a, b interface{}, limit int) []Difference {
	c := &comparator{limit: limit, seen: map[visit]bool{}}
	c.compare("val", reflect.ValueOf(a), reflect.ValueOf(b))
	return c.diffs
}

type visit struct {
	a, b uintptr
	t    reflect.Type
}

type comparator struct {
	limit int
	diffs []Difference
	seen  map[visit]bool
}

func (c *comparator) full() bool {
	return c.limit > 0 && len(c.diffs) >= c.limit
}

func (c *comparator) add(path string, a, b reflect.Value) {
	c.diffs = append(c.diffs, Difference{path, printable(a), printable(b)})
}

func printable(v reflect.Value) interface{} {
	if !v.IsValid() {
		return nil
	}
	if v.CanInterface() {
		return v.Interface()
	}
	return v.String()
}

func (c *comparator) compare(path string, a, b reflect.Value) {
	if c.full() {
		return
	}
	if !a.IsValid() || !b.IsValid() {
		if a.IsValid() != b.IsValid() {
			c.add(path, a, b)
		}
		return
	}
	if a.Type() != b.Type() {
		c.add(path+".(type)", reflect.ValueOf(a.Type()), reflect.ValueOf(b.Type()))
		return
	}

	switch a.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice:
		if a.IsNil() || b.IsNil() {
			if a.IsNil() != b.IsNil() {
				c.add(path, a, b)
			}
			return
		}
		if a.Kind() != reflect.Slice {
			v := visit{a.Pointer(), b.Pointer(), a.Type()}
			if c.seen[v] {
				return
			}
			c.seen[v] = true
		}
	}

	switch a.Kind() {
	case reflect.Ptr, reflect.Interface:
		if a.Kind() == reflect.Interface && (a.IsNil() || b.IsNil()) {
			if a.IsNil() != b.IsNil() {
				c.add(path, a, b)
			}
			return
		}
		c.compare(path, a.Elem(), b.Elem())
	case reflect.Struct:
		t := a.Type()
		for i, n := 0, t.NumField(); i < n; i++ {
			c.compare(path+"."+t.Field(i).Name, a.Field(i), b.Field(i))
		}
	case reflect.Slice, reflect.Array:
		if a.Len() != b.Len() {
			c.add(path+".Len()", reflect.ValueOf(a.Len()), reflect.ValueOf(b.Len()))
			return
		}
		for i, n := 0, a.Len(); i < n; i++ {
			c.compare(fmt.Sprintf("%v[%d]", path, i), a.Index(i), b.Index(i))
		}
	case reflect.Map:
		if a.Len() != b.Len() {
			c.add(path+".Len()", reflect.ValueOf(a.Len()), reflect.ValueOf(b.Len()))
			return
		}
		for _, k := range a.MapKeys() {
			bv := b.MapIndex(k)
			if !bv.IsValid() {
				c.add(fmt.Sprintf("%v[%v]", path, printable(k)), a.MapIndex(k), bv)
				continue
			}
			c.compare(fmt.Sprintf("%v[%v]", path, printable(k)), a.MapIndex(k), bv)
		}
	case reflect.Func:
		if !a.IsNil() || !b.IsNil() {
			c.add(path, a, b)
		}
	case reflect.Bool:
		if a.Bool() != b.Bool() {
			c.add(path, a, b)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if a.Int() != b.Int() {
			c.add(path, a, b)
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if a.Uint() != b.Uint() {
			c.add(path, a, b)
		}
	case reflect.Float32, reflect.Float64:
		if a.Float() != b.Float() {
			c.add(path, a, b)
		}
	case reflect.Complex64, reflect.Complex128:
		if a.Complex() != b.Complex() {
			c.add(path, a, b)
		}
	case reflect.String:
		if a.String() != b.String() {
			c.add(path, a, b)
		}
	default:
		if a.Interface() != b.Interface() {
			c.add(path, a, b)
		}
	}
}
