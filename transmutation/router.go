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
	"path"
	"reflect"
	"slices"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"dirpx.dev/rtti/apis"
	uref "dirpx.dev/rtti/utils/reflect"
)

var (
	// ErrDuplicateHandler is raised when a library registers a second handler
	// with the same router.
	ErrDuplicateHandler = errors.New("rtti(transmutation): handler already registered for library")
	// ErrNilHandler is raised when a nil handler or a zero library is registered.
	ErrNilHandler = errors.New("rtti(transmutation): nil handler or library")
)

// Option configures a Router.
type Option func(*options)

type options struct {
	log zerolog.Logger
}

// WithLogger sets the logger used for handler registration records and
// fatal registration errors.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.log = l
	}
}

// Router is the downcast routing table of one target interface I: at most
// one Handler per library.
//
// Handlers are registered during library initialization; Downcast may be
// called concurrently with other Downcast calls.
type Router[I any] struct {
	target string
	log    zerolog.Logger

	mu       sync.RWMutex
	handlers map[apis.LibraryIdentifier]apis.Handler[I]

	hits   atomic.Uint64
	misses atomic.Uint64
}

// Ensure Router implements apis.RouterInfo.
var _ apis.RouterInfo = (*Router[any])(nil)

// NewRouter returns an empty router for the target interface I.
func NewRouter[I any](opts ...Option) *Router[I] {
	o := options{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	target := targetName(reflect.TypeFor[I]())
	return &Router[I]{
		target:   target,
		log:      o.log.With().Str("component", "rtti.router").Str("target", target).Logger(),
		handlers: make(map[apis.LibraryIdentifier]apis.Handler[I]),
	}
}

// RegisterHandler binds h to lib. Registering a second handler for the same
// library, a nil handler or a zero library panics.
func (r *Router[I]) RegisterHandler(lib apis.LibraryIdentifier, h apis.Handler[I]) {
	if lib.IsZero() || h == nil {
		r.fatal(fmt.Errorf("%w: library %s", ErrNilHandler, lib))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.handlers[lib]; ok {
		r.fatal(fmt.Errorf("%w: %s in router %s", ErrDuplicateHandler, lib, r.target))
	}
	r.handlers[lib] = h

	r.log.Debug().Str("library", lib.String()).Msg("registered downcast handler")
}

// Downcast narrows obj to I using the handler registered by the library of
// obj's concrete type. It reports false for nil handles, for libraries
// without a handler and for objects the handler does not cover.
func (r *Router[I]) Downcast(obj apis.Object) (I, bool) {
	var zero I
	if obj == nil {
		r.misses.Add(1)
		return zero, false
	}

	r.mu.RLock()
	h, ok := r.handlers[obj.ConcreteLibraryIdentifier()]
	r.mu.RUnlock()

	if !ok {
		r.misses.Add(1)
		return zero, false
	}
	v, ok := h.Downcast(obj)
	if !ok {
		r.misses.Add(1)
		return zero, false
	}
	r.hits.Add(1)
	return v, true
}

// Target returns the Go name of the target interface.
func (r *Router[I]) Target() string { return r.target }

// Libraries returns the libraries with a registered handler, sorted.
func (r *Router[I]) Libraries() []apis.LibraryIdentifier {
	r.mu.RLock()
	libs := make([]apis.LibraryIdentifier, 0, len(r.handlers))
	for lib := range r.handlers {
		libs = append(libs, lib)
	}
	r.mu.RUnlock()

	slices.SortFunc(libs, func(a, b apis.LibraryIdentifier) int {
		return strings.Compare(a.String(), b.String())
	})
	return libs
}

// HandlerCount returns the number of registered handlers.
func (r *Router[I]) HandlerCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.handlers)
}

// Stats returns the number of successful and failed downcasts so far.
func (r *Router[I]) Stats() (hits, misses uint64) {
	return r.hits.Load(), r.misses.Load()
}

// fatal logs err and panics with it.
func (r *Router[I]) fatal(err error) {
	r.log.Error().Err(err).Msg("fatal downcast routing error")
	panic(err)
}

// targetName renders t as "pkg.Name", falling back to t.String() for
// unnamed targets.
func targetName(t reflect.Type) string {
	if t.Name() == "" {
		return t.String()
	}
	name := uref.BareName(t.String())
	if p := t.PkgPath(); p != "" {
		return path.Base(p) + "." + name
	}
	return name
}
