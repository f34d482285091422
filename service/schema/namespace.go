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

package schema

import (
	"fmt"
	"reflect"
	"sort"
	"sync"

	"github.com/google/pipestate/core/fault"
	"github.com/pkg/errors"
)

const (
	// ErrUnregistered is returned by Validate for types with no metadata.
	ErrUnregistered = fault.Const("Type has no reflection metadata")
	// ErrBadEnumValue is returned by Enum.Parse for strings that name no value.
	ErrBadEnumValue = fault.Const("Invalid enum value")
	// DocTag is the struct tag holding a field's description.
	DocTag = "doc"
)

// Namespace is a set of registered entities and enums.
// Registration normally happens from package init functions. Queries are safe
// for concurrent use.
type Namespace struct {
	mutex    sync.RWMutex
	entities map[reflect.Type]*Entity
	enums    map[reflect.Type]*Enum
	names    map[string]reflect.Type
	scalars  map[reflect.Type]bool
}

// Global is the namespace that every snapshot package registers into.
var Global = NewNamespace()

// NewNamespace returns a new empty namespace.
func NewNamespace() *Namespace {
	return &Namespace{
		entities: map[reflect.Type]*Entity{},
		enums:    map[reflect.Type]*Enum{},
		names:    map[string]reflect.Type{},
		scalars:  map[reflect.Type]bool{},
	}
}

// typeOf returns the type of example, dereferencing a typed nil pointer such as
// (*T)(nil).
func typeOf(example interface{}) reflect.Type {
	t := reflect.TypeOf(example)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}

func (n *Namespace) claim(name string, t reflect.Type) {
	if _, dup := n.names[name]; dup {
		panic(fmt.Errorf("Type name %s already registered", name))
	}
	if n.entities[t] != nil || n.enums[t] != nil {
		panic(fmt.Errorf("Type %v already registered", t))
	}
	n.names[name] = t
}

// AddStruct registers the struct type of example, which may be a value or a
// typed nil pointer, under the name prefix+TypeName.
// It panics if any exported field has no doc tag.
func (n *Namespace) AddStruct(prefix string, example interface{}, doc string) *Entity {
	t := typeOf(example)
	if t.Kind() != reflect.Struct {
		panic(fmt.Errorf("Type %v is not struct-kind (kind = %v)", t, t.Kind()))
	}
	e := &Entity{Name: prefix + t.Name(), Doc: doc, Type: t}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.PkgPath != "" {
			continue // Unexported.
		}
		fieldDoc := f.Tag.Get(DocTag)
		if fieldDoc == "" {
			panic(fmt.Errorf("Field %v.%v has no %s tag", t, f.Name, DocTag))
		}
		e.Fields = append(e.Fields, Field{Name: f.Name, Type: f.Type, Doc: fieldDoc, Index: i})
	}

	n.mutex.Lock()
	defer n.mutex.Unlock()
	n.claim(e.Name, t)
	n.entities[t] = e
	return e
}

// AddEnum registers a sequential enum whose values are the indices of names.
func (n *Namespace) AddEnum(prefix string, example interface{}, doc string, names ...string) *Enum {
	values := make([]EnumValue, len(names))
	for i, name := range names {
		values[i] = EnumValue{Name: name, Value: uint64(i)}
	}
	return n.addEnum(prefix, example, doc, false, values)
}

// AddFlags registers a bitmask enum with the given named flags.
func (n *Namespace) AddFlags(prefix string, example interface{}, doc string, values ...EnumValue) *Enum {
	return n.addEnum(prefix, example, doc, true, values)
}

func (n *Namespace) addEnum(prefix string, example interface{}, doc string, bitmask bool, values []EnumValue) *Enum {
	t := typeOf(example)
	switch t.Kind() {
	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
	default:
		panic(fmt.Errorf("Enum type %v is not integer-kind (kind = %v)", t, t.Kind()))
	}
	e := &Enum{Name: prefix + t.Name(), Doc: doc, Type: t, Bitmask: bitmask, Values: values}

	n.mutex.Lock()
	defer n.mutex.Unlock()
	n.claim(e.Name, t)
	n.enums[t] = e
	return e
}

// Entity returns the entity registered for t, or nil.
func (n *Namespace) Entity(t reflect.Type) *Entity {
	n.mutex.RLock()
	defer n.mutex.RUnlock()
	return n.entities[t]
}

// Enum returns the enum registered for t, or nil.
func (n *Namespace) Enum(t reflect.Type) *Enum {
	n.mutex.RLock()
	defer n.mutex.RUnlock()
	return n.enums[t]
}

// EntityByName returns the entity with the stable name, or nil.
func (n *Namespace) EntityByName(name string) *Entity {
	n.mutex.RLock()
	defer n.mutex.RUnlock()
	return n.entities[n.names[name]]
}

// EnumByName returns the enum with the stable name, or nil.
func (n *Namespace) EnumByName(name string) *Enum {
	n.mutex.RLock()
	defer n.mutex.RUnlock()
	return n.enums[n.names[name]]
}

// Entities returns all the registered entities sorted by name.
func (n *Namespace) Entities() []*Entity {
	n.mutex.RLock()
	defer n.mutex.RUnlock()
	out := make([]*Entity, 0, len(n.entities))
	for _, e := range n.entities {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Enums returns all the registered enums sorted by name.
func (n *Namespace) Enums() []*Enum {
	n.mutex.RLock()
	defer n.mutex.RUnlock()
	out := make([]*Enum, 0, len(n.enums))
	for _, e := range n.enums {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// TypeName returns the stable name of the type t, as exposed to consumers.
// Registered types use their registered name. Slices, arrays and pointers are
// written as "[]T", "[N]T" and "optional T".
func (n *Namespace) TypeName(t reflect.Type) string {
	if e := n.Entity(t); e != nil {
		return e.Name
	}
	if e := n.Enum(t); e != nil {
		return e.Name
	}
	switch t.Kind() {
	case reflect.Slice:
		if t.Elem().Kind() == reflect.Uint8 {
			return "bytes"
		}
		return "[]" + n.TypeName(t.Elem())
	case reflect.Array:
		return fmt.Sprintf("[%d]%s", t.Len(), n.TypeName(t.Elem()))
	case reflect.Ptr:
		return "optional " + n.TypeName(t.Elem())
	case reflect.Struct:
		return "unregistered " + t.String()
	default:
		return t.Kind().String()
	}
}

// Validate checks that every struct type reachable from root, and every named
// integer type, has metadata registered.
func (n *Namespace) Validate(root reflect.Type) error {
	errs := fault.List{}
	n.validate(root, map[reflect.Type]bool{}, &errs)
	return errs.Err()
}

func (n *Namespace) validate(t reflect.Type, seen map[reflect.Type]bool, errs *fault.List) {
	if seen[t] {
		return
	}
	seen[t] = true
	switch t.Kind() {
	case reflect.Slice, reflect.Array, reflect.Ptr:
		n.validate(t.Elem(), seen, errs)
	case reflect.Struct:
		e := n.Entity(t)
		if e == nil {
			errs.Collect(errors.Wrapf(ErrUnregistered, "%v", t))
			return
		}
		for _, f := range e.Fields {
			n.validate(f.Type, seen, errs)
		}
	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if t.PkgPath() != "" && n.Enum(t) == nil && !n.isScalar(t) {
			errs.Collect(errors.Wrapf(ErrUnregistered, "%v", t))
		}
	}
}

// AddScalar marks the named integer type of example as a plain value type that
// needs no enum metadata, such as an opaque identifier.
func (n *Namespace) AddScalar(example interface{}) {
	n.mutex.Lock()
	defer n.mutex.Unlock()
	n.scalars[typeOf(example)] = true
}

func (n *Namespace) isScalar(t reflect.Type) bool {
	n.mutex.RLock()
	defer n.mutex.RUnlock()
	return n.scalars[t]
}
