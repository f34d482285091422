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

// Package fixture loads backend device state from YAML files.
//
// A fixture stands in for the replay backend: it holds the device state of a
// single graphics API at a list of events, from which snapshots can be built.
//
//	api: vulkan
//	events:
//	  - event: 10
//	    vulkan:
//	      renderpass: 800
//	    transitions:
//	      - {image: 500, nummips: 4, layout: ShaderRead}
//
// Device state fields are written as their lower-cased Go names. Enumerated
// values may be written by name or by number. Vulkan image layout transitions
// accumulate in event order.
package fixture

import (
	"bytes"
	"context"
	"os"
	"sort"

	"github.com/google/pipestate/api"
	"github.com/google/pipestate/api/d3d11"
	"github.com/google/pipestate/api/vulkan"
	"github.com/google/pipestate/core/data/deep"
	"github.com/google/pipestate/core/fault"
	"github.com/google/pipestate/core/log"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	// ErrNoEvent is returned when the fixture holds no state for an event.
	ErrNoEvent = fault.Const("No state for the event")
	// ErrBadFixture is returned when a fixture file is malformed.
	ErrBadFixture = fault.Const("Malformed fixture")
)

// API identifies the graphics API of a fixture.
type API string

const (
	D3D11  API = "d3d11"
	Vulkan API = "vulkan"
)

// Transition is a layout transition of a range of image subresources.
// A zero count covers every remaining mip or layer.
type Transition struct {
	Image     api.ID `yaml:"image"`
	BaseMip   uint32 `yaml:"basemip"`
	NumMips   uint32 `yaml:"nummips"`
	BaseLayer uint32 `yaml:"baselayer"`
	NumLayers uint32 `yaml:"numlayers"`
	Layout    string `yaml:"layout"`
}

func (t Transition) subresource() vulkan.Subresource {
	r := vulkan.Subresource{BaseMip: t.BaseMip, NumMips: t.NumMips, BaseLayer: t.BaseLayer, NumLayers: t.NumLayers}
	if r.NumMips == 0 {
		r.NumMips = vulkan.RemainingRange
	}
	if r.NumLayers == 0 {
		r.NumLayers = vulkan.RemainingRange
	}
	return r
}

// Event is the device state at one event.
type Event struct {
	Event       uint64              `yaml:"event"`
	D3D11       *d3d11.DeviceState  `yaml:"d3d11"`
	Vulkan      *vulkan.DeviceState `yaml:"vulkan"`
	Transitions []Transition        `yaml:"transitions"`
	images      []vulkan.ImageData
}

type file struct {
	API    API     `yaml:"api"`
	Events []Event `yaml:"events"`
}

// Fixture is a parsed fixture file.
type Fixture struct {
	API    API
	events []Event
}

// Load reads and parses the fixture file at path.
func Load(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "Reading fixture %v", path)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "Fixture %v", path)
	}
	return f, nil
}

// Parse parses a fixture from YAML. Unknown keys are an error.
func Parse(data []byte) (*Fixture, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	in := file{}
	if err := dec.Decode(&in); err != nil {
		return nil, errors.Wrapf(ErrBadFixture, "%v", err)
	}
	f := &Fixture{API: in.API, events: in.Events}
	if err := f.check(); err != nil {
		return nil, err
	}
	sort.Slice(f.events, func(i, j int) bool { return f.events[i].Event < f.events[j].Event })
	if f.API == Vulkan {
		tracker := vulkan.NewLayoutTracker()
		for i := range f.events {
			e := &f.events[i]
			for _, t := range e.Transitions {
				tracker.Transition(t.Image, t.subresource(), t.Layout)
			}
			e.images = tracker.Images()
		}
	}
	return f, nil
}

func (f *Fixture) check() error {
	switch f.API {
	case D3D11, Vulkan:
	default:
		return errors.Wrapf(ErrBadFixture, "Unknown api %q", f.API)
	}
	seen := map[uint64]bool{}
	for _, e := range f.events {
		if seen[e.Event] {
			return errors.Wrapf(ErrBadFixture, "Event %d is listed twice", e.Event)
		}
		seen[e.Event] = true
		switch {
		case f.API == D3D11 && e.D3D11 == nil:
			return errors.Wrapf(ErrBadFixture, "Event %d has no d3d11 state", e.Event)
		case f.API == D3D11 && (e.Vulkan != nil || len(e.Transitions) > 0):
			return errors.Wrapf(ErrBadFixture, "Event %d has vulkan state in a d3d11 fixture", e.Event)
		case f.API == Vulkan && e.Vulkan == nil:
			return errors.Wrapf(ErrBadFixture, "Event %d has no vulkan state", e.Event)
		case f.API == Vulkan && e.D3D11 != nil:
			return errors.Wrapf(ErrBadFixture, "Event %d has d3d11 state in a vulkan fixture", e.Event)
		}
	}
	return nil
}

// Events returns the events of the fixture in ascending order.
func (f *Fixture) Events() []uint64 {
	out := make([]uint64, len(f.events))
	for i, e := range f.events {
		out[i] = e.Event
	}
	return out
}

func (f *Fixture) find(ctx context.Context, want API, event uint64) (*Event, error) {
	if f.API != want {
		return nil, log.Errf(ctx, ErrNoEvent, "Fixture holds %s state, not %s", f.API, want)
	}
	i := sort.Search(len(f.events), func(i int) bool { return f.events[i].Event >= event })
	if i == len(f.events) || f.events[i].Event != event {
		return nil, log.Errf(ctx, ErrNoEvent, "Event %d", event)
	}
	return &f.events[i], nil
}

// D3D11At returns a copy of the D3D11 device state at event.
// It has the signature of a session fetch function.
func (f *Fixture) D3D11At(ctx context.Context, event uint64) (*d3d11.DeviceState, error) {
	e, err := f.find(ctx, D3D11, event)
	if err != nil {
		return nil, err
	}
	return deep.MustClone(e.D3D11).(*d3d11.DeviceState), nil
}

// VulkanAt returns a copy of the Vulkan device state at event. Unless the
// event lists its image layouts explicitly, they are the result of every
// transition up to and including the event.
// It has the signature of a session fetch function.
func (f *Fixture) VulkanAt(ctx context.Context, event uint64) (*vulkan.DeviceState, error) {
	e, err := f.find(ctx, Vulkan, event)
	if err != nil {
		return nil, err
	}
	d := deep.MustClone(e.Vulkan).(*vulkan.DeviceState)
	if len(d.Images) == 0 {
		d.Images = deep.MustClone(e.images).([]vulkan.ImageData)
	}
	return d, nil
}
