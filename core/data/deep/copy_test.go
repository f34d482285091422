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

package deep_test

import (
	"testing"

	"github.com/google/pipestate/core/data/compare"
	"github.com/google/pipestate/core/data/deep"
)

type node struct {
	Name     string
	Children []*node
	Attrs    map[string]uint32
	Color    [4]float32
	Optional *uint32
}

func TestCloneIsIndependent(t *testing.T) {
	seven := uint32(7)
	src := node{
		Name:     "root",
		Children: []*node{{Name: "a"}, {Name: "b"}},
		Attrs:    map[string]uint32{"x": 1},
		Color:    [4]float32{1, 0, 0, 1},
		Optional: &seven,
	}
	got := deep.MustClone(src).(node)
	if !compare.DeepEqual(got, src) {
		t.Fatalf("Clone differs: %v", compare.Diff(got, src, 0))
	}

	got.Children[0].Name = "changed"
	got.Attrs["x"] = 2
	*got.Optional = 8
	if src.Children[0].Name != "a" || src.Attrs["x"] != 1 || *src.Optional != 7 {
		t.Errorf("Mutating the clone modified the source: %+v", src)
	}
}

func TestCopyKindMismatch(t *testing.T) {
	var dst struct{ Name int }
	src := struct{ Name string }{"x"}
	if err := deep.Copy(&dst, src); err == nil {
		t.Errorf("Expected an error copying a string into an int")
	}
}

func TestCopyRequiresPointer(t *testing.T) {
	if err := deep.Copy(node{}, node{}); err == nil {
		t.Errorf("Expected an error when dst is not a pointer")
	}
}
