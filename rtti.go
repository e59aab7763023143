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

package rtti

import (
	"errors"
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"dirpx.dev/rtti/apis"
	"dirpx.dev/rtti/builder"
	"dirpx.dev/rtti/config"
	"dirpx.dev/rtti/divination"
	"dirpx.dev/rtti/necromancy"
	"dirpx.dev/rtti/transmutation"
)

// init initializes the global rtti state.
func init() {
	s := &state{cfg: config.DefaultConfig()}
	b := builder.New()
	s.res = b.BuildResolver(s.cfg)
	s.reg = b.BuildRegistry(s.cfg, s.res, nil)
	s.bld = b
	st.Store(s)
}

var (
	// ErrNilRegistry is raised when a builder returns a nil registry.
	ErrNilRegistry = errors.New("rtti: builder returned nil registry")
	// ErrNilResolver is raised when a builder returns a nil resolver.
	ErrNilResolver = errors.New("rtti: builder returned nil resolver")
)

// Register binds the named type T to (typeUUID, libraryUUID) in the global
// registry. Violations of the registration rules panic.
func Register[T any](typeUUID, libraryUUID uuid.UUID) {
	st.Load().reg.Register(reflect.TypeFor[T](), typeUUID, libraryUUID)
}

// TypeIdentifierOf returns the identifier of T. Panics if T is not registered.
func TypeIdentifierOf[T any]() apis.TypeIdentifier {
	return st.Load().reg.IdentifierOf(reflect.TypeFor[T]())
}

// LibraryIdentifierOf returns the library of T. Panics if T is not registered.
func LibraryIdentifierOf[T any]() apis.LibraryIdentifier {
	return st.Load().reg.LibraryOf(reflect.TypeFor[T]())
}

// Divine returns the Divinator of the static type through which v is passed.
// For a value held in an interface variable that is the interface, not the
// concrete type behind it.
func Divine[T any](v T) apis.Divinator {
	return divination.Static[T](st.Load().reg)
}

// TypeIdentifier is shorthand for Divine(v).TypeIdentifier().
func TypeIdentifier[T any](v T) apis.TypeIdentifier {
	return Divine(v).TypeIdentifier()
}

// LibraryIdentifier is shorthand for Divine(v).LibraryIdentifier().
func LibraryIdentifier[T any](v T) apis.LibraryIdentifier {
	return Divine(v).LibraryIdentifier()
}

// AsConcrete returns obj as *C when obj's concrete type is exactly C.
func AsConcrete[C any](obj apis.Object) (*C, bool) {
	return necromancy.Unearth[C](st.Load().reg, obj)
}

// Upcast returns v viewed as I.
func Upcast[I any](v I) I {
	return transmutation.Upcast[I](v)
}

// NewClass declares the capability set of a concrete type against the
// global registry. Identifiers are resolved on the first query, from the
// registry current at that time.
func NewClass(concrete, introducing reflect.Type, inherited ...reflect.Type) *divination.Class {
	return divination.NewLazyClass(Registry, concrete, introducing, inherited...)
}

// NewLibraryHandler returns an empty downcast handler for I backed by the
// global registry.
func NewLibraryHandler[I any]() *transmutation.LibraryHandler[I] {
	return transmutation.NewLibraryHandler[I](st.Load().reg)
}

// NewRouter returns a downcast router for I that logs to the global
// configuration's logger.
func NewRouter[I any]() *transmutation.Router[I] {
	return transmutation.NewRouter[I](transmutation.WithLogger(st.Load().cfg.Logger))
}

// TypeName returns the canonical name the global resolver derives for t,
// whether or not t is registered.
func TypeName(t reflect.Type) string {
	s := st.Load()
	return s.res.ResolveType(t, s.cfg)
}

// SetAll explicitly sets all global rtti state components.
//
// Nil arguments leave the corresponding component unchanged, except that a
// nil reg or res is rebuilt by the (new) builder. Passing reg pins it.
func SetAll(cfg *apis.Config, reg apis.Registry, res apis.Resolver, bld apis.Builder) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()

	ncfg := old.cfg
	if cfg != nil {
		ncfg = *cfg
	}
	nbld := old.bld
	if bld != nil {
		nbld = bld
	}

	nres := res
	if nres == nil {
		nres = nbld.BuildResolver(ncfg)
	}
	nreg := reg
	if nreg == nil {
		nreg = nbld.BuildRegistry(ncfg, nres, nil)
	}

	publish(&state{cfg: ncfg, reg: nreg, res: nres, bld: nbld, preg: reg != nil})
}

// Config returns the global rtti configuration.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig sets the global configuration and rebuilds the resolver and, if
// not pinned, the registry. Registered types keep their identifiers.
func SetConfig(cfg apis.Config) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	nres := old.bld.BuildResolver(cfg)
	nreg := old.reg
	if !old.preg {
		nreg = old.bld.BuildRegistry(cfg, nres, old.reg)
	}

	publish(&state{cfg: cfg, reg: nreg, res: nres, bld: old.bld, preg: old.preg})
}

// Registry returns the global registry.
func Registry() apis.Registry {
	return st.Load().reg
}

// SetRegistry replaces and pins the global registry.
func SetRegistry(reg apis.Registry) {
	if reg == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	publish(&state{cfg: old.cfg, reg: reg, res: old.res, bld: old.bld, preg: true})
}

// Resolver returns the global naming resolver.
func Resolver() apis.Resolver {
	return st.Load().res
}

// Builder returns the global builder.
func Builder() apis.Builder {
	return st.Load().bld
}

// SetBuilder sets the global builder and rebuilds the resolver and, if not
// pinned, the registry with it.
func SetBuilder(b apis.Builder) {
	if b == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	nres := b.BuildResolver(old.cfg)
	nreg := old.reg
	if !old.preg {
		nreg = b.BuildRegistry(old.cfg, nres, old.reg)
	}

	publish(&state{cfg: old.cfg, reg: nreg, res: nres, bld: b, preg: old.preg})
}

// IsRegistryPinned reports whether the global registry is pinned.
func IsRegistryPinned() bool {
	return st.Load().preg
}

// PinRegistry keeps the current registry across later SetConfig/SetBuilder
// calls.
func PinRegistry() {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	publish(&state{cfg: old.cfg, reg: old.reg, res: old.res, bld: old.bld, preg: true})
}

// UnpinRegistry lets later SetConfig/SetBuilder calls rebuild the registry.
func UnpinRegistry() {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	publish(&state{cfg: old.cfg, reg: old.reg, res: old.res, bld: old.bld, preg: false})
}

// publish stores s after checking that it is complete. Callers hold buildMu.
func publish(s *state) {
	if s.reg == nil {
		panic(ErrNilRegistry)
	}
	if s.res == nil {
		panic(ErrNilResolver)
	}
	st.Store(s)
}

// buildMu serializes writers (reconfigurations/swaps) so we never publish
// partially-built snapshots.
var buildMu sync.Mutex

// st is the global rtti state.
var st atomic.Pointer[state]

// state is the global rtti state snapshot.
// Immutable snapshot published atomically via st.Store; never mutate fields
// of a published state. Writers create a new state and swap it atomically.
type state struct {
	// cfg is the global configuration.
	cfg apis.Config
	// reg is the global registry.
	reg apis.Registry
	// res is the global naming resolver.
	res apis.Resolver
	// bld is the global builder.
	bld apis.Builder
	// preg indicates whether reg is pinned.
	preg bool
}
