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
	"sort"
	"strings"

	"github.com/google/pipestate/core/fault"
	"github.com/google/pipestate/core/log"
	"github.com/pelletier/go-toml/v2"
)

// ErrUnknownSetting is returned when a config file names a setting that is
// not a flag of the tool.
const ErrUnknownSetting = fault.Const("Unknown setting")

// LoadConfig reads the TOML file at path and applies each top-level key to
// the flag of set with the same name. Flags that were given explicitly on the
// command line are left alone. Array values are joined with commas.
func LoadConfig(ctx context.Context, set *flag.FlagSet, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return log.Errf(ctx, err, "Reading config %v", path)
	}
	ctx = log.V{"config": path}.Bind(ctx)
	return ApplyConfig(ctx, set, data)
}

// ApplyConfig applies the TOML document data to set, as LoadConfig does.
func ApplyConfig(ctx context.Context, set *flag.FlagSet, data []byte) error {
	settings := map[string]interface{}{}
	if err := toml.Unmarshal(data, &settings); err != nil {
		return log.Err(ctx, err, "Parsing config")
	}
	explicit := map[string]bool{}
	set.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	names := make([]string, 0, len(settings))
	for name := range settings {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if set.Lookup(name) == nil {
			return log.Errf(ctx, ErrUnknownSetting, "%q", name)
		}
		if explicit[name] {
			log.D(ctx, "Setting %v overridden on the command line", name)
			continue
		}
		value, err := settingString(settings[name])
		if err != nil {
			return log.Errf(ctx, err, "Setting %v", name)
		}
		if err := set.Set(name, value); err != nil {
			return log.Errf(ctx, err, "Setting %v", name)
		}
	}
	return nil
}

func settingString(v interface{}) (string, error) {
	switch v := v.(type) {
	case string:
		return v, nil
	case []interface{}:
		parts := make([]string, len(v))
		for i, e := range v {
			s, err := settingString(e)
			if err != nil {
				return "", err
			}
			parts[i] = s
		}
		return strings.Join(parts, ","), nil
	case map[string]interface{}:
		return "", fmt.Errorf("Tables are not supported")
	default:
		return fmt.Sprint(v), nil
	}
}
