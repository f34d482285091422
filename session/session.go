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

// Package session holds the current pipeline-state snapshot of an analysis
// session.
//
// Snapshots are never modified once built. Advancing to a new event builds a
// complete new snapshot and swaps it in, so readers may keep and traverse any
// snapshot they obtained from Current without locking.
package session

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/google/pipestate/api/d3d11"
	"github.com/google/pipestate/api/vulkan"
	"github.com/google/pipestate/core/fault"
	"github.com/google/pipestate/core/log"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrNoBackendState is returned by Advance when the backend has no device
// state for the requested event.
const ErrNoBackendState = fault.Const("No backend state for the event")

// Snapshot is the pipeline state at one event.
type Snapshot[T any] struct {
	Event uint64
	State *T
}

// FetchFunc pulls the backend's device state at event.
type FetchFunc[S any] func(ctx context.Context, event uint64) (S, error)

// BuildFunc builds a snapshot state from the device state.
type BuildFunc[S, T any] func(ctx context.Context, device S) *T

// Session holds the current snapshot of one schema.
type Session[S, T any] struct {
	// ID identifies the session in logs.
	ID uuid.UUID

	fetch   FetchFunc[S]
	build   BuildFunc[S, T]
	advance sync.Mutex
	current atomic.Pointer[Snapshot[T]]
}

// New returns a session with no current snapshot.
func New[S, T any](fetch FetchFunc[S], build BuildFunc[S, T]) *Session[S, T] {
	return &Session[S, T]{ID: uuid.New(), fetch: fetch, build: build}
}

// Current returns the current snapshot, or nil if Advance has not yet
// succeeded. It never blocks.
func (s *Session[S, T]) Current() *Snapshot[T] {
	return s.current.Load()
}

// Advance builds the snapshot for event and makes it current. On error the
// current snapshot is left unchanged. Calls to Advance are serialized.
func (s *Session[S, T]) Advance(ctx context.Context, event uint64) (*Snapshot[T], error) {
	s.advance.Lock()
	defer s.advance.Unlock()

	ctx = log.V{"session": s.ID, "event": event}.Bind(ctx)
	device, err := s.fetch(ctx, event)
	if err != nil {
		return nil, errors.Wrapf(err, "Fetching device state at event %d", event)
	}
	snap := &Snapshot[T]{Event: event, State: s.build(ctx, device)}
	if old := s.current.Swap(snap); old != nil {
		log.D(ctx, "Replaced snapshot of event %d", old.Event)
	}
	log.I(ctx, "Advanced")
	return snap, nil
}

// D3D11 is a session over the register-slot schema.
type D3D11 = Session[*d3d11.DeviceState, d3d11.State]

// Vulkan is a session over the descriptor-set schema.
type Vulkan = Session[*vulkan.DeviceState, vulkan.State]

// NewD3D11 returns a D3D11 session that pulls device state with fetch.
// A nil device state is reported as ErrNoBackendState.
func NewD3D11(fetch FetchFunc[*d3d11.DeviceState]) *D3D11 {
	return New(requireState(fetch), d3d11.BuildState)
}

// NewVulkan returns a Vulkan session that pulls device state with fetch.
// A nil device state is reported as ErrNoBackendState.
func NewVulkan(fetch FetchFunc[*vulkan.DeviceState]) *Vulkan {
	return New(requireState(fetch), vulkan.BuildState)
}

func requireState[D any](fetch FetchFunc[*D]) FetchFunc[*D] {
	return func(ctx context.Context, event uint64) (*D, error) {
		d, err := fetch(ctx, event)
		if err == nil && d == nil {
			err = log.Err(ctx, ErrNoBackendState, "")
		}
		return d, err
	}
}
