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

// The pipedump command prints the pipeline state snapshots of a fixture file
// as JSON.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/google/pipestate/api/d3d11"
	"github.com/google/pipestate/api/vulkan"
	"github.com/google/pipestate/capture/fixture"
	"github.com/google/pipestate/core/app"
	"github.com/google/pipestate/core/log"
	"github.com/google/pipestate/service/box"
	"github.com/google/pipestate/session"
	"github.com/pkg/errors"
)

var (
	fixturePath = flag.String("fixture", "", "The fixture file to load")
	event       = flag.Int64("event", -1, "The event to dump, or -1 for every event")
	indent      = flag.String("indent", "  ", "The indentation of the JSON output, empty for compact output")
	defaults    = flag.Bool("defaults", false, "Emit fields that hold their zero value")
	watch       = flag.Bool("watch", false, "Dump again whenever the fixture file changes")
)

func main() {
	app.ShortHelp = "pipedump prints pipeline state snapshots as JSON"
	app.Name = "pipedump"
	app.Run(run)
}

func run(ctx context.Context) error {
	if *fixturePath == "" {
		return app.ErrUsage
	}
	d := &dumper{
		path:   *fixturePath,
		codec:  box.Codec{OmitZero: !*defaults},
		indent: *indent,
		out:    os.Stdout,
	}
	if err := d.load(ctx); err != nil {
		return err
	}
	if err := d.dump(ctx); err != nil {
		return err
	}
	if !*watch {
		return nil
	}
	return d.watch(ctx)
}

type dumper struct {
	path    string
	codec   box.Codec
	indent  string
	out     io.Writer
	api     fixture.API
	fixture atomic.Pointer[fixture.Fixture]
	advance func(ctx context.Context, event uint64) (interface{}, error)
}

// load reads the fixture file and, on the first call, opens the session that
// pulls device state from it.
func (d *dumper) load(ctx context.Context) error {
	f, err := fixture.Load(d.path)
	if err != nil {
		return err
	}
	if d.advance != nil && f.API != d.api {
		return errors.Errorf("Fixture api changed from %s to %s", d.api, f.API)
	}
	d.fixture.Store(f)
	if d.advance != nil {
		return nil
	}
	d.api = f.API
	switch f.API {
	case fixture.D3D11:
		s := session.NewD3D11(func(ctx context.Context, event uint64) (*d3d11.DeviceState, error) {
			return d.fixture.Load().D3D11At(ctx, event)
		})
		log.I(ctx, "Opened D3D11 session %v", s.ID)
		d.advance = func(ctx context.Context, event uint64) (interface{}, error) {
			snap, err := s.Advance(ctx, event)
			if err != nil {
				return nil, err
			}
			return snap.State, nil
		}
	case fixture.Vulkan:
		s := session.NewVulkan(func(ctx context.Context, event uint64) (*vulkan.DeviceState, error) {
			return d.fixture.Load().VulkanAt(ctx, event)
		})
		log.I(ctx, "Opened Vulkan session %v", s.ID)
		d.advance = func(ctx context.Context, event uint64) (interface{}, error) {
			snap, err := s.Advance(ctx, event)
			if err != nil {
				return nil, err
			}
			return snap.State, nil
		}
	}
	return nil
}

func (d *dumper) events() []uint64 {
	if *event >= 0 {
		return []uint64{uint64(*event)}
	}
	return d.fixture.Load().Events()
}

func (d *dumper) dump(ctx context.Context) error {
	for _, e := range d.events() {
		state, err := d.advance(ctx, e)
		if err != nil {
			return err
		}
		data, err := d.codec.Marshal(state, d.indent)
		if err != nil {
			return errors.Wrapf(err, "Encoding event %d", e)
		}
		if *event < 0 {
			fmt.Fprintf(d.out, "// Event %d\n", e)
		}
		fmt.Fprintf(d.out, "%s\n", data)
	}
	return nil
}

// watch dumps the fixture again each time it is written, until ctx is
// cancelled. A fixture that fails to load or dump is reported and skipped.
func (d *dumper) watch(ctx context.Context) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "Creating file watcher")
	}
	defer w.Close()
	// Editors often replace the file, so watch its directory.
	path := filepath.Clean(d.path)
	if err := w.Add(filepath.Dir(path)); err != nil {
		return errors.Wrapf(err, "Watching %v", path)
	}
	log.I(ctx, "Watching %v", path)
	for {
		select {
		case <-ctx.Done():
			return nil
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.W(ctx, "Watcher error: %v", err)
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != path || !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if err := d.load(ctx); err != nil {
				log.W(ctx, "Reload failed: %v", err)
				continue
			}
			if err := d.dump(ctx); err != nil {
				log.W(ctx, "Dump failed: %v", err)
			}
		}
	}
}
