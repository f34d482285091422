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

package app

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/pipestate/core/log"
)

// AppFlags are the flags shared by every tool.
type AppFlags struct {
	Log    LogFlags
	Config string
}

// LogFlags control the logging of the root context.
type LogFlags struct {
	Level log.Severity
	Style log.Style
}

func logDefaults() LogFlags {
	return LogFlags{Level: log.Info, Style: log.Normal}
}

// Register adds the flags to set.
func (f *AppFlags) Register(set *flag.FlagSet) {
	set.Var(&f.Log.Level, "log-level", "The minimum severity of logged messages")
	set.Var(styleFlag{&f.Log.Style}, "log-style", "The style of log output: brief, normal, detailed or pretty")
	set.StringVar(&f.Config, "config", "", "A TOML file of settings. Flags given explicitly take precedence")
}

// Setup applies the config file named by f.Config to set, which must hold the
// registered flags, and then returns ctx with logging configured from them.
// Config loading errors are logged with the command line logging settings.
func (f *AppFlags) Setup(ctx context.Context, set *flag.FlagSet) (context.Context, error) {
	if f.Config != "" {
		if err := LoadConfig(f.Log.context(ctx), set, f.Config); err != nil {
			return f.Log.context(ctx), err
		}
	}
	return f.Log.context(ctx), nil
}

func (f LogFlags) context(ctx context.Context) context.Context {
	ctx = log.PutHandler(ctx, f.Style.Handler(os.Stderr))
	return log.PutFilter(ctx, f.Level)
}

type styleFlag struct{ s *log.Style }

func (f styleFlag) String() string {
	if f.s == nil {
		return ""
	}
	return f.s.Name
}

func (f styleFlag) Set(name string) error {
	s, ok := log.FindStyle(name)
	if !ok {
		return fmt.Errorf("Unknown log style %q", name)
	}
	*f.s = s
	return nil
}
