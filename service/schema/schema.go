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

// Package schema holds the reflection metadata for every snapshot type.
//
// Each struct that can appear in a snapshot is registered as an Entity with a
// stable name, a description and one Field per exported Go field. Field
// descriptions come from the `doc:"..."` struct tag. Enumerated state values are
// registered as an Enum with the names of their values. Consumers such as the
// scripting layer, the stub generator and the serializer in package box walk
// this metadata instead of hand-writing per-field bindings.
package schema

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Field describes a single field of an Entity.
type Field struct {
	Name  string       // The stable name of the field.
	Type  reflect.Type // The Go type of the field. Use Namespace.TypeName for the stable name.
	Doc   string       // The human-readable description of the field.
	Index int          // The index of the field in the Go struct.
}

// Entity describes a registered struct type.
type Entity struct {
	Name   string       // The stable name of the type, including any namespace prefix.
	Doc    string       // The human-readable description of the type.
	Type   reflect.Type // The Go type.
	Fields []Field      // The documented fields, in declaration order.
}

// Field returns the field with the given stable name, or nil.
func (e *Entity) Field(name string) *Field {
	for i := range e.Fields {
		if e.Fields[i].Name == name {
			return &e.Fields[i]
		}
	}
	return nil
}

func (e *Entity) String() string { return e.Name }

// EnumValue is a single named value of an Enum.
type EnumValue struct {
	Name  string
	Value uint64
}

// Enum describes a registered enumerated type.
type Enum struct {
	Name    string       // The stable name of the enum, including any namespace prefix.
	Doc     string       // The human-readable description of the enum.
	Type    reflect.Type // The Go type.
	Bitmask bool         // If true, values are bit flags that may be combined.
	Values  []EnumValue  // The named values, in declaration order.
}

func (e *Enum) String() string { return e.Name }

// NameOf returns the name of the value v.
func (e *Enum) NameOf(v uint64) (string, bool) {
	for _, ev := range e.Values {
		if ev.Value == v {
			return ev.Name, true
		}
	}
	return "", false
}

// ValueOf returns the value with the given name.
func (e *Enum) ValueOf(name string) (uint64, bool) {
	for _, ev := range e.Values {
		if ev.Name == name {
			return ev.Value, true
		}
	}
	return 0, false
}

// Split returns the names of the flags set in v, and any remaining bits that
// have no name. Zero-valued flags are only reported when v is zero.
func (e *Enum) Split(v uint64) (names []string, rest uint64) {
	rest = v
	for _, ev := range e.Values {
		switch {
		case ev.Value == 0:
			if v == 0 {
				names = append(names, ev.Name)
			}
		case rest&ev.Value == ev.Value:
			names = append(names, ev.Name)
			rest &^= ev.Value
		}
	}
	return names, rest
}

// Format returns the display string for the value v.
func (e *Enum) Format(v uint64) string {
	if !e.Bitmask {
		if name, ok := e.NameOf(v); ok {
			return name
		}
		return fmt.Sprintf("%s(%d)", e.Name, v)
	}
	names, rest := e.Split(v)
	if rest != 0 || len(names) == 0 {
		names = append(names, fmt.Sprintf("0x%x", rest))
	}
	return strings.Join(names, "|")
}

// Parse returns the value for the display string s. It accepts value names,
// "|" separated flag names for bitmasks, numbers and the "Name(n)" form produced
// by Format for unnamed values.
func (e *Enum) Parse(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	if v, ok := e.ValueOf(s); ok {
		return v, nil
	}
	if strings.HasPrefix(s, e.Name+"(") && strings.HasSuffix(s, ")") {
		s = s[len(e.Name)+1 : len(s)-1]
	}
	if v, err := strconv.ParseUint(s, 0, 64); err == nil {
		return v, nil
	}
	if e.Bitmask && s != "" {
		var v uint64
		for _, part := range strings.Split(s, "|") {
			part = strings.TrimSpace(part)
			if bit, ok := e.ValueOf(part); ok {
				v |= bit
				continue
			}
			bit, err := strconv.ParseUint(part, 0, 64)
			if err != nil {
				return 0, errors.Wrapf(ErrBadEnumValue, "%s %q", e.Name, part)
			}
			v |= bit
		}
		return v, nil
	}
	return 0, errors.Wrapf(ErrBadEnumValue, "%s %q", e.Name, s)
}
