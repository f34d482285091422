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

// Package app provides the common entry point for the command line tools.
package app

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/google/pipestate/core/fault"
	"github.com/google/pipestate/core/log"
)

var (
	// Name is the name of the application.
	Name = strings.TrimSuffix(filepath.Base(os.Args[0]), filepath.Ext(os.Args[0]))
	// ShortHelp should be set to add a help message to the usage text.
	ShortHelp = ""
	// ShortUsage is usage text for the additional non-flag arguments.
	ShortUsage = ""
	// ExitFuncForTesting can be set to change the behaviour when the main task
	// fails. It defaults to os.Exit.
	ExitFuncForTesting = os.Exit
)

// ErrUsage is returned by a main task to print the usage text and fail.
const ErrUsage = fault.Const("Invalid usage")

// Task is the signature of the main function of a tool.
type Task func(ctx context.Context) error

// Run parses the command line, loads the -config file, builds the root
// context with logging configured from the resulting flags, and then runs main.
// The context is cancelled on interrupt.
func Run(main Task) {
	flags := AppFlags{Log: logDefaults()}
	flags.Register(flag.CommandLine)
	flag.CommandLine.Usage = func() { Usage(os.Stderr) }
	flag.Parse()

	ctx, err := flags.Setup(context.Background(), flag.CommandLine)
	if err != nil {
		fail(ctx, err)
		return
	}
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	if err := main(ctx); err != nil {
		fail(ctx, err)
	}
}

func fail(ctx context.Context, err error) {
	if err == ErrUsage {
		Usage(os.Stderr)
	} else {
		log.E(ctx, "Main failed\nError: %v", err)
	}
	ExitFuncForTesting(1)
}

// Usage prints the usage text of the application to w.
func Usage(w io.Writer) {
	if ShortHelp != "" {
		fmt.Fprintf(w, "%s: %s\n", Name, ShortHelp)
	}
	fmt.Fprintf(w, "Usage: %s [flags] %s\n", Name, ShortUsage)
	flag.CommandLine.SetOutput(w)
	flag.PrintDefaults()
}
