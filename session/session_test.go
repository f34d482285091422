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

package session_test

import (
	"context"
	"sync"
	"testing"

	"github.com/google/pipestate/api"
	"github.com/google/pipestate/api/d3d11"
	"github.com/google/pipestate/api/vulkan"
	"github.com/google/pipestate/core/assert"
	"github.com/google/pipestate/core/fault"
	"github.com/google/pipestate/core/log"
	"github.com/google/pipestate/session"
)

const errBackend = fault.Const("Backend failure")

// deviceAt returns a device whose vertex shader identifier is the event.
func deviceAt(ctx context.Context, event uint64) (*d3d11.DeviceState, error) {
	switch event {
	case 0:
		return nil, nil
	case 13:
		return nil, errBackend
	}
	return &d3d11.DeviceState{VS: d3d11.StageBindings{Shader: api.ID(event)}}, nil
}

func TestAdvance(t *testing.T) {
	ctx := log.Testing(t)
	s := session.NewD3D11(deviceAt)
	assert.For(ctx, "initial").That(s.Current()).IsNil()

	first, err := s.Advance(ctx, 1)
	assert.For(ctx, "advance 1").ThatError(err).Succeeded()
	assert.For(ctx, "current 1").That(s.Current()).Equals(first)
	assert.For(ctx, "event 1").That(first.Event).Equals(uint64(1))

	second, err := s.Advance(ctx, 2)
	assert.For(ctx, "advance 2").ThatError(err).Succeeded()
	assert.For(ctx, "current 2").That(s.Current()).Equals(second)

	// The earlier snapshot is untouched.
	assert.For(ctx, "held").That(first.State.VS.Object).Equals(api.ID(1))
	assert.For(ctx, "new").That(second.State.VS.Object).Equals(api.ID(2))
	assert.For(ctx, "distinct").ThatBoolean(first.State != second.State).IsTrue()
}

func TestAdvanceFailure(t *testing.T) {
	ctx := log.Testing(t)
	s := session.NewD3D11(deviceAt)
	good, err := s.Advance(ctx, 5)
	assert.For(ctx, "advance").ThatError(err).Succeeded()

	_, err = s.Advance(ctx, 13)
	assert.For(ctx, "backend error").ThatError(err).HasCause(errBackend)
	assert.For(ctx, "unchanged").That(s.Current()).Equals(good)

	_, err = s.Advance(ctx, 0)
	assert.For(ctx, "no state").ThatError(err).HasCause(session.ErrNoBackendState)
	assert.For(ctx, "still unchanged").That(s.Current()).Equals(good)
}

func TestConcurrentReaders(t *testing.T) {
	ctx := log.PutFilter(log.Testing(t), log.Warning)
	s := session.NewD3D11(deviceAt)
	_, err := s.Advance(ctx, 1)
	assert.For(ctx, "advance").ThatError(err).Succeeded()

	wg := sync.WaitGroup{}
	stop := make(chan struct{})
	bad := make(chan uint64, 4)
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				snap := s.Current()
				if snap.State.VS.Object != api.ID(snap.Event) || len(snap.State.VS.SRVs) != d3d11.SRVSlotCount {
					bad <- snap.Event
					return
				}
			}
		}()
	}
	for event := uint64(2); event < 50; event++ {
		if event == 13 {
			continue
		}
		if _, err := s.Advance(ctx, event); err != nil {
			t.Errorf("Advance(%d) failed: %v", event, err)
		}
	}
	close(stop)
	wg.Wait()
	close(bad)
	for event := range bad {
		t.Errorf("Inconsistent snapshot at event %d", event)
	}
}

func TestSessionIDs(t *testing.T) {
	ctx := log.Testing(t)
	a := session.NewD3D11(deviceAt)
	b := session.NewD3D11(deviceAt)
	assert.For(ctx, "distinct").That(a.ID).NotEquals(b.ID)
}

func TestVulkanSession(t *testing.T) {
	ctx := log.Testing(t)
	s := session.NewVulkan(func(ctx context.Context, event uint64) (*vulkan.DeviceState, error) {
		return &vulkan.DeviceState{RenderPass: api.ID(event)}, nil
	})
	snap, err := s.Advance(ctx, 9)
	assert.For(ctx, "advance").ThatError(err).Succeeded()
	assert.For(ctx, "render pass").That(snap.State.CurrentPass.RenderPass.Object).Equals(api.ID(9))
	assert.For(ctx, "stage").That(snap.State.FS.Stage).Equals(api.ShaderStagePixel)
}
