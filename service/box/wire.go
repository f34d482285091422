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

package box

import (
	"bytes"

	"github.com/golang/protobuf/jsonpb"
	"github.com/golang/protobuf/proto"
	"github.com/pkg/errors"
	"google.golang.org/protobuf/types/known/structpb"
)

// Marshal returns the JSON encoding of v, boxed using schema.Global.
func Marshal(v interface{}) ([]byte, error) { return Codec{}.Marshal(v, "") }

// Unmarshal decodes the JSON produced by Marshal into the value pointed to by p.
func Unmarshal(data []byte, p interface{}) error { return Codec{}.Unmarshal(data, p) }

// MarshalBinary returns the proto wire encoding of v, boxed using schema.Global.
func MarshalBinary(v interface{}) ([]byte, error) { return Codec{}.MarshalBinary(v) }

// UnmarshalBinary decodes the bytes produced by MarshalBinary into the value
// pointed to by p.
func UnmarshalBinary(data []byte, p interface{}) error { return Codec{}.UnmarshalBinary(data, p) }

// Marshal returns the JSON encoding of v. Each nesting level is indented with
// indent, or the output is compact if indent is empty.
func (c Codec) Marshal(v interface{}, indent string) ([]byte, error) {
	boxed, err := c.NewValue(v)
	if err != nil {
		return nil, err
	}
	buf := &bytes.Buffer{}
	m := jsonpb.Marshaler{Indent: indent}
	if err := m.Marshal(buf, boxed); err != nil {
		return nil, errors.Wrap(err, "Encoding JSON")
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes JSON into the value pointed to by p.
func (c Codec) Unmarshal(data []byte, p interface{}) error {
	boxed := &structpb.Value{}
	if err := jsonpb.Unmarshal(bytes.NewReader(data), boxed); err != nil {
		return errors.Wrap(err, "Decoding JSON")
	}
	return c.AssignTo(boxed, p)
}

// MarshalBinary returns the proto wire encoding of v.
func (c Codec) MarshalBinary(v interface{}) ([]byte, error) {
	boxed, err := c.NewValue(v)
	if err != nil {
		return nil, err
	}
	data, err := proto.Marshal(boxed)
	if err != nil {
		return nil, errors.Wrap(err, "Encoding proto")
	}
	return data, nil
}

// UnmarshalBinary decodes proto wire bytes into the value pointed to by p.
func (c Codec) UnmarshalBinary(data []byte, p interface{}) error {
	boxed := &structpb.Value{}
	if err := proto.Unmarshal(data, boxed); err != nil {
		return errors.Wrap(err, "Decoding proto")
	}
	return c.AssignTo(boxed, p)
}
