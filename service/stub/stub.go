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

// Package stub writes Python type stubs that describe the registered snapshot
// types, for scripting consumers and their editors.
package stub

import (
	"fmt"
	"io"
	"reflect"
	"sort"
	"strings"
	"text/template"

	"github.com/google/pipestate/service/schema"
	"github.com/pkg/errors"
)

// Options control the generated stub.
type Options struct {
	// Module is the name of the Python module the stub describes.
	Module string
	// Header is emitted as comment lines at the top of the file.
	Header string
	// Prefixes restricts the output to the entities whose names start with
	// one of the prefixes, plus every type they reference. Empty means all.
	Prefixes []string
}

type stubField struct {
	Name, Type, Doc string
}

type stubClass struct {
	Name, Doc string
	Fields    []stubField
}

type stubEnumValue struct {
	Name  string
	Value uint64
}

type stubEnum struct {
	Name, Doc string
	Base      string
	Values    []stubEnumValue
}

type stubFile struct {
	Module  string
	Header  []string
	Enums   []stubEnum
	Classes []stubClass
}

var stubTemplate = template.Must(template.New("stub").Funcs(template.FuncMap{
	"doc": docstring,
}).Parse(`{{range .Header}}# {{.}}
{{end}}"""Type stubs for the {{.Module}} module."""

from __future__ import annotations

from enum import IntEnum, IntFlag
from typing import List, Optional
{{range .Enums}}

class {{.Name}}({{.Base}}):
    {{doc .Doc "    "}}
{{range .Values}}    {{.Name}} = {{.Value}}
{{end}}{{end}}{{range .Classes}}

class {{.Name}}:
    {{doc .Doc "    "}}
{{range .Fields}}
    {{.Name}}: {{.Type}}
    {{doc .Doc "    "}}
{{else}}    pass
{{end}}{{end}}`))

// Generate writes the stub for the types registered in ns to w.
// The output is deterministic: enums and classes are written sorted by name.
func Generate(w io.Writer, ns *schema.Namespace, opts Options) error {
	entities, enums := collect(ns, opts.Prefixes)
	file := stubFile{Module: opts.Module}
	if opts.Header != "" {
		file.Header = strings.Split(strings.TrimRight(opts.Header, "\n"), "\n")
	}
	for _, e := range enums {
		out := stubEnum{Name: e.Name, Doc: e.Doc, Base: "IntEnum"}
		if e.Bitmask {
			out.Base = "IntFlag"
		}
		for _, v := range e.Values {
			out.Values = append(out.Values, stubEnumValue{Name: identifier(v.Name), Value: v.Value})
		}
		file.Enums = append(file.Enums, out)
	}
	for _, e := range entities {
		out := stubClass{Name: e.Name, Doc: e.Doc}
		for _, f := range e.Fields {
			out.Fields = append(out.Fields, stubField{Name: identifier(f.Name), Type: pyType(ns, f.Type), Doc: f.Doc})
		}
		file.Classes = append(file.Classes, out)
	}
	if err := stubTemplate.Execute(w, file); err != nil {
		return errors.Wrap(err, "Writing stub")
	}
	return nil
}

// collect returns the entities matching prefixes and every entity and enum
// reachable from their fields, each sorted by name.
func collect(ns *schema.Namespace, prefixes []string) ([]*schema.Entity, []*schema.Enum) {
	entities := map[string]*schema.Entity{}
	enums := map[string]*schema.Enum{}
	var visit func(t reflect.Type)
	visit = func(t reflect.Type) {
		switch t.Kind() {
		case reflect.Slice, reflect.Array, reflect.Ptr:
			visit(t.Elem())
			return
		}
		if e := ns.Enum(t); e != nil {
			enums[e.Name] = e
			return
		}
		e := ns.Entity(t)
		if e == nil || entities[e.Name] != nil {
			return
		}
		entities[e.Name] = e
		for _, f := range e.Fields {
			visit(f.Type)
		}
	}
	for _, e := range ns.Entities() {
		if matches(e.Name, prefixes) {
			visit(e.Type)
		}
	}
	if len(prefixes) == 0 {
		for _, e := range ns.Enums() {
			enums[e.Name] = e
		}
	}
	outEntities := make([]*schema.Entity, 0, len(entities))
	for _, e := range entities {
		outEntities = append(outEntities, e)
	}
	sort.Slice(outEntities, func(i, j int) bool { return outEntities[i].Name < outEntities[j].Name })
	outEnums := make([]*schema.Enum, 0, len(enums))
	for _, e := range enums {
		outEnums = append(outEnums, e)
	}
	sort.Slice(outEnums, func(i, j int) bool { return outEnums[i].Name < outEnums[j].Name })
	return outEntities, outEnums
}

func matches(name string, prefixes []string) bool {
	if len(prefixes) == 0 {
		return true
	}
	for _, p := range prefixes {
		if strings.HasPrefix(name, p) {
			return true
		}
	}
	return false
}

func pyType(ns *schema.Namespace, t reflect.Type) string {
	if e := ns.Entity(t); e != nil {
		return e.Name
	}
	if e := ns.Enum(t); e != nil {
		return e.Name
	}
	switch t.Kind() {
	case reflect.Bool:
		return "bool"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "int"
	case reflect.Float32, reflect.Float64:
		return "float"
	case reflect.String:
		return "str"
	case reflect.Slice:
		if t.Elem().Kind() == reflect.Uint8 {
			return "bytes"
		}
		return fmt.Sprintf("List[%s]", pyType(ns, t.Elem()))
	case reflect.Array:
		return fmt.Sprintf("List[%s]", pyType(ns, t.Elem()))
	case reflect.Ptr:
		return fmt.Sprintf("Optional[%s]", pyType(ns, t.Elem()))
	}
	return "object"
}

var keywords = map[string]bool{
	"False": true, "None": true, "True": true, "and": true, "as": true, "assert": true,
	"async": true, "await": true, "break": true, "class": true, "continue": true,
	"def": true, "del": true, "elif": true, "else": true, "except": true, "finally": true,
	"for": true, "from": true, "global": true, "if": true, "import": true, "in": true,
	"is": true, "lambda": true, "nonlocal": true, "not": true, "or": true, "pass": true,
	"raise": true, "return": true, "try": true, "while": true, "with": true, "yield": true,
}

// identifier returns name, adjusted if it is a Python keyword.
func identifier(name string) string {
	if keywords[name] {
		return name + "_"
	}
	return name
}

// docstring returns doc as a Python docstring. Continuation lines are indented
// with indent.
func docstring(doc, indent string) string {
	doc = strings.ReplaceAll(doc, `\`, `\\`)
	doc = strings.ReplaceAll(doc, `"""`, `\"\"\"`)
	doc = strings.TrimSpace(doc)
	if strings.HasSuffix(doc, `"`) {
		doc += " "
	}
	return `"""` + strings.ReplaceAll(doc, "\n", "\n"+indent) + `"""`
}
