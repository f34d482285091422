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

package api

import "github.com/google/pipestate/service/schema"

func init() {
	schema.Global.AddScalar(ID(0))
	schema.Global.AddStruct("", ResourceFormat{}, "Describes the layout of the data in a resource or view.")
	schema.Global.AddStruct("", TextureFilter{}, "Describes the filtering of a sampler.")
	schema.Global.AddStruct("", Bindpoint{}, "Maps a shader resource to the API binding it reads from.")
	schema.Global.AddStruct("", BindpointMapping{}, "Maps each resource a shader declares to its Bindpoint.")
}
