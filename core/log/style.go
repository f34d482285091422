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
	"bytes"
	"fmt"
)

// Style provides customization for printing messages.
type Style struct {
	Name      string // Name of the style.
	Timestamp bool   // If true, the timestamp will be printed.
	Severity  bool   // If true, the short severity will be printed.
	Tag       bool   // If true, the tag will be printed if set.
	Values    bool   // If true, the bound values will be printed.
}

var (
	// Brief prints only the text and values of the message.
	Brief = Style{Name: "brief", Values: true}
	// Normal prints the severity, tag, text and values of the message.
	Normal = Style{Name: "normal", Severity: true, Tag: true, Values: true}
	// Detailed prints everything in the message.
	Detailed = Style{Name: "detailed", Timestamp: true, Severity: true, Tag: true, Values: true}
)

// Print returns the message formatted with the style.
func (s Style) Print(m *Message) string {
	buf := &bytes.Buffer{}
	if s.Timestamp {
		buf.WriteString(m.Time.Format("15:04:05.000 "))
	}
	if s.Severity {
		buf.WriteString(m.Severity.Short())
		buf.WriteString(": ")
	}
	if s.Tag && m.Tag != "" {
		fmt.Fprintf(buf, "[%s] ", m.Tag)
	}
	buf.WriteString(m.Text)
	if s.Values && len(m.Values) > 0 {
		buf.WriteString(" (")
		for i, v := range m.Values {
			if i > 0 {
				buf.WriteString(", ")
			}
			fmt.Fprintf(buf, "%v: %v", v.Name, v.Value)
		}
		buf.WriteString(")")
	}
	return buf.String()
}
