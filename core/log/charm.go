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

package log

import (
	"io"

	charm "github.com/charmbracelet/log"
)

// Pretty prints through a charmbracelet logger. It has no effect on Print.
var Pretty = Style{Name: "pretty", Timestamp: true, Severity: true, Tag: true, Values: true}

// Styles lists the styles that can be selected by name.
var Styles = []Style{Brief, Normal, Detailed, Pretty}

// Charm returns a Handler that prints each message to w with a charmbracelet
// logger. Bound values become the logger's key-value pairs.
func Charm(w io.Writer) Handler {
	l := charm.NewWithOptions(w, charm.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.000",
		Level:           charm.DebugLevel,
	})
	return HandlerFunc(func(m *Message) {
		kv := make([]interface{}, 0, 2*len(m.Values)+2)
		if m.Tag != "" {
			kv = append(kv, "tag", m.Tag)
		}
		for _, v := range m.Values {
			kv = append(kv, v.Name, v.Value)
		}
		l.Log(charmLevel(m.Severity), m.Text, kv...)
	})
}

func charmLevel(s Severity) charm.Level {
	switch {
	case s >= Fatal:
		return charm.FatalLevel
	case s >= Error:
		return charm.ErrorLevel
	case s >= Warning:
		return charm.WarnLevel
	case s >= Info:
		return charm.InfoLevel
	default:
		return charm.DebugLevel
	}
}

// Handler returns the Handler that prints messages to w in the style s.
func (s Style) Handler(w io.Writer) Handler {
	if s.Name == Pretty.Name {
		return Charm(w)
	}
	return Writer(s, w)
}

// FindStyle returns the style in Styles with the given name.
func FindStyle(name string) (Style, bool) {
	for _, s := range Styles {
		if s.Name == name {
			return s, true
		}
	}
	return Style{}, false
}
