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

// Package api holds the primitive types shared by the pipeline state schemas:
// resource identifiers, format descriptions, enumerated state values and
// shader bindpoint mappings.
package api

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/google/pipestate/core/fault"
	"github.com/pkg/errors"
)

// ErrBadID is returned when parsing a malformed resource identifier.
const ErrBadID = fault.Const("Malformed resource identifier")

// ID is a weak reference to a GPU object owned by the capture backend.
// Holding an ID never keeps the object alive. The zero ID means unbound.
type ID uint64

// NullID is the unbound resource identifier.
const NullID ID = 0

// IsNull returns true if the identifier is the unbound value.
func (id ID) IsNull() bool { return id == NullID }

func (id ID) String() string { return fmt.Sprintf("ResourceId::%d", uint64(id)) }

// MarshalText encodes the identifier in its display form.
func (id ID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }

// UnmarshalText accepts either the display form or a bare number.
func (id *ID) UnmarshalText(text []byte) error {
	s := strings.TrimPrefix(string(text), "ResourceId::")
	v, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return errors.Wrapf(ErrBadID, "%q", text)
	}
	*id = ID(v)
	return nil
}

// Resource is the backend's description of a live GPU object.
type Resource struct {
	ID   ID     // The identifier of the object.
	Name string // The debug name of the object.
}

// Resolver looks up the objects that snapshot identifiers refer to.
// A lookup against an identifier whose object no longer exists, or against the
// null identifier, returns false.
type Resolver interface {
	Resolve(ID) (Resource, bool)
}

// Table is a Resolver backed by a map. It is safe for concurrent use.
type Table struct {
	mutex     sync.RWMutex
	resources map[ID]Resource
}

// NewTable returns a table holding the given resources.
func NewTable(resources ...Resource) *Table {
	t := &Table{resources: map[ID]Resource{}}
	for _, r := range resources {
		t.Add(r)
	}
	return t
}

// Add records r as live. Adding the null identifier is ignored.
func (t *Table) Add(r Resource) {
	if r.ID.IsNull() {
		return
	}
	t.mutex.Lock()
	defer t.mutex.Unlock()
	if t.resources == nil {
		t.resources = map[ID]Resource{}
	}
	t.resources[r.ID] = r
}

// Remove forgets the object with the given identifier.
func (t *Table) Remove(id ID) {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	delete(t.resources, id)
}

// Resolve implements Resolver.
func (t *Table) Resolve(id ID) (Resource, bool) {
	t.mutex.RLock()
	defer t.mutex.RUnlock()
	r, ok := t.resources[id]
	return r, ok
}

// IDs returns the identifiers of every live object in ascending order.
func (t *Table) IDs() []ID {
	t.mutex.RLock()
	defer t.mutex.RUnlock()
	out := make([]ID, 0, len(t.resources))
	for id := range t.resources {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
