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

// The pipestubs command writes Python type stubs for the pipeline state
// snapshot types.
package main

import (
	"bufio"
	"context"
	"flag"
	"io"
	"os"
	"strings"

	_ "github.com/google/pipestate/api/d3d11"
	_ "github.com/google/pipestate/api/vulkan"
	"github.com/google/pipestate/core/app"
	"github.com/google/pipestate/core/log"
	"github.com/google/pipestate/service/schema"
	"github.com/google/pipestate/service/stub"
	"github.com/pkg/errors"
)

var (
	module   = flag.String("module", "pipestate", "The name of the Python module")
	header   = flag.String("header", "Generated by pipestubs. Do not edit.", "The comment at the top of the stub")
	prefixes = flag.String("prefixes", "", "Comma separated type name prefixes to restrict the output to")
	out      = flag.String("out", "", "The file to write, or stdout if empty")
)

func main() {
	app.ShortHelp = "pipestubs writes Python type stubs for the snapshot types"
	app.Name = "pipestubs"
	app.Run(run)
}

func run(ctx context.Context) error {
	opts := stub.Options{Module: *module, Header: *header, Prefixes: splitList(*prefixes)}
	if *out == "" {
		return generate(os.Stdout, opts)
	}
	f, err := os.Create(*out)
	if err != nil {
		return errors.Wrap(err, "Creating stub file")
	}
	if err := generate(f, opts); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(err, "Closing stub file")
	}
	log.I(ctx, "Wrote %v", *out)
	return nil
}

func generate(w io.Writer, opts stub.Options) error {
	b := bufio.NewWriter(w)
	if err := stub.Generate(b, schema.Global, opts); err != nil {
		return err
	}
	return b.Flush()
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
