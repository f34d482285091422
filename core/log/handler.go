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
	"context"
	"fmt"
	"io"
	"os"
	"sync"
)

// Handler is the handler of log messages.
type Handler interface {
	Handle(*Message)
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(*Message)

// Handle calls f(m).
func (f HandlerFunc) Handle(m *Message) { f(m) }

type handlerKeyTy string

const handlerKey handlerKeyTy = "log.handlerKey"

// PutHandler returns a new context with the Handler assigned to h.
func PutHandler(ctx context.Context, h Handler) context.Context {
	return context.WithValue(ctx, handlerKey, h)
}

// GetHandler returns the Handler assigned to ctx.
func GetHandler(ctx context.Context) Handler {
	out, _ := ctx.Value(handlerKey).(Handler)
	return out
}

// Writer returns a Handler that prints each message to w using the style s.
// Writes are serialized so the handler may be shared between goroutines.
func Writer(s Style, w io.Writer) Handler {
	mutex := &sync.Mutex{}
	return HandlerFunc(func(m *Message) {
		mutex.Lock()
		defer mutex.Unlock()
		fmt.Fprintln(w, s.Print(m))
	})
}

// Stderr returns a Handler that writes to os.Stderr.
func Stderr(s Style) Handler { return Writer(s, os.Stderr) }

type filterKeyTy string

const filterKey filterKeyTy = "log.filterKey"

// PutFilter returns a new context with the minimum severity that will be
// passed to the handler.
func PutFilter(ctx context.Context, min Severity) context.Context {
	return context.WithValue(ctx, filterKey, min)
}

// GetFilter returns the minimum severity assigned to ctx.
// The default is Info.
func GetFilter(ctx context.Context) Severity {
	if s, ok := ctx.Value(filterKey).(Severity); ok {
		return s
	}
	return Info
}

type tagKeyTy string

const tagKey tagKeyTy = "log.tagKey"

// PutTag returns a new context with the tag assigned to t.
func PutTag(ctx context.Context, t string) context.Context {
	return context.WithValue(ctx, tagKey, t)
}

// GetTag returns the tag assigned to ctx.
func GetTag(ctx context.Context) string {
	out, _ := ctx.Value(tagKey).(string)
	return out
}
