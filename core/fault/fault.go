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

// Package fault provides the sentinel error type and error collectors shared
// by the rest of the module.
package fault

import "strings"

// Const is the type for constant error values.
// Declare sentinel errors as
//
//	const ErrSomething = fault.Const("Something went wrong")
type Const string

func (e Const) Error() string { return string(e) }

type (
	// List collects every error passed to Collect.
	List []error
	// One collects only the first non-nil error passed to Collect.
	One struct{ err error }
)

// Collect appends err to the list if it is not nil.
func (l *List) Collect(err error) {
	if err != nil {
		*l = append(*l, err)
	}
}

// First returns the first collected error, or nil.
func (l List) First() error {
	if len(l) == 0 {
		return nil
	}
	return l[0]
}

// Err returns the list as a single error, or nil if the list is empty.
func (l List) Err() error {
	if len(l) == 0 {
		return nil
	}
	return l
}

func (l List) Error() string {
	msgs := make([]string, len(l))
	for i, err := range l {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "\n")
}

// Collect stores err if no error has been stored yet.
func (o *One) Collect(err error) {
	if o.err == nil {
		o.err = err
	}
}

// First returns the stored error, or nil.
func (o *One) First() error { return o.err }
