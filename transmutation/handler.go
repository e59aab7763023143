/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package transmutation

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"dirpx.dev/rtti/apis"
	"dirpx.dev/rtti/necromancy"
)

// ErrDuplicateConcrete is raised when a concrete type is included twice in
// the same LibraryHandler.
var ErrDuplicateConcrete = errors.New("rtti(transmutation): concrete type already included in handler")

// LibraryHandler is the handler a library registers with the router of I:
// an ordered list of the library's concrete types that implement I, each
// with the function that widens it to I.
//
// Types are included during initialization, before the handler is used.
type LibraryHandler[I any] struct {
	reg apis.Registry

	mu    sync.RWMutex
	cases []extractor[I]
}

// extractor narrows one concrete type and widens it to I.
type extractor[I any] struct {
	concrete reflect.Type
	id       apis.TypeIdentifier
	extract  func(apis.Object) (I, bool)
}

// Ensure LibraryHandler implements apis.Handler.
var _ apis.Handler[any] = (*LibraryHandler[any])(nil)

// NewLibraryHandler returns an empty handler for the target interface I
// whose concrete types are identified through reg.
func NewLibraryHandler[I any](reg apis.Registry) *LibraryHandler[I] {
	return &LibraryHandler[I]{reg: reg}
}

// Include appends concrete type C to h. upcast widens *C to I, which the
// compiler checks when it is written as a plain conversion:
//
//	transmutation.Include(h, func(c *Checkbox) IUIElement { return c })
//
// C must be registered. Including the same type twice panics.
func Include[C, I any](h *LibraryHandler[I], upcast func(*C) I) {
	t := reflect.TypeFor[C]()
	id := h.reg.IdentifierOf(t)

	h.mu.Lock()
	defer h.mu.Unlock()

	for _, c := range h.cases {
		if c.id == id {
			panic(fmt.Errorf("%w: %s", ErrDuplicateConcrete, t))
		}
	}
	reg := h.reg
	h.cases = append(h.cases, extractor[I]{
		concrete: t,
		id:       id,
		extract: func(obj apis.Object) (I, bool) {
			c, ok := necromancy.Unearth[C](reg, obj)
			if !ok {
				var zero I
				return zero, false
			}
			return upcast(c), true
		},
	})
}

// Downcast tries the included types in order and widens the first one obj
// is exactly.
func (h *LibraryHandler[I]) Downcast(obj apis.Object) (I, bool) {
	var zero I
	if obj == nil {
		return zero, false
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, c := range h.cases {
		if obj.Is(c.id) {
			return c.extract(obj)
		}
	}
	return zero, false
}

// Types returns the included concrete types in order.
func (h *LibraryHandler[I]) Types() []reflect.Type {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]reflect.Type, len(h.cases))
	for i, c := range h.cases {
		out[i] = c.concrete
	}
	return out
}
