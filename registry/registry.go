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

package registry

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"dirpx.dev/rtti/apis"
	"dirpx.dev/rtti/config"
	"dirpx.dev/rtti/resolver"
	uref "dirpx.dev/rtti/utils/reflect"
)

var (
	// ErrNilType is raised when a nil reflect.Type is provided.
	ErrNilType = errors.New("rtti(registry): nil reflect.Type provided")
	// ErrTypeNotNamed is raised when a type has no canonical name
	// (anonymous struct, slice, func, ...).
	ErrTypeNotNamed = errors.New("rtti(registry): type has no canonical name")
	// ErrNilDiscriminator is raised when uuid.Nil is used as a discriminator.
	ErrNilDiscriminator = errors.New("rtti(registry): nil discriminator")
	// ErrDuplicateName is raised when a type name is registered twice.
	ErrDuplicateName = errors.New("rtti(registry): type already registered")
	// ErrDuplicateDiscriminator is raised when a type discriminator is
	// already bound to a different type.
	ErrDuplicateDiscriminator = errors.New("rtti(registry): discriminator already registered to a different type")
	// ErrDiscriminatorCollision is raised when a type discriminator equals a
	// library discriminator or the other way around.
	ErrDiscriminatorCollision = errors.New("rtti(registry): discriminator collides across the type/library namespace")
	// ErrNotRegistered is raised when an identifier is requested for an
	// unregistered type.
	ErrNotRegistered = errors.New("rtti(registry): type not registered")
)

// New constructs the type registry. Types are keyed by the canonical name
// res derives for them under cfg; a nil res means resolver.Default().
//
// Every violation of the registration rules is a programmer error detected
// at startup: it is logged at Error level on cfg.Logger and then panics with
// one of the package's sentinel errors wrapped with the offending name.
func New(cfg apis.Config, res apis.Resolver) apis.Registry {
	if cfg.MaxUnwrap <= 0 {
		cfg.MaxUnwrap = config.DefaultMaxUnwrap
	}
	if res == nil {
		res = resolver.Default()
	}
	return &registry{
		cfg:    cfg,
		res:    res,
		log:    cfg.Logger.With().Str("component", "rtti.registry").Logger(),
		byName: make(map[string]apis.Entry),
		byUUID: make(map[uuid.UUID]string),
		libs:   make(map[uuid.UUID]int),
	}
}

// registry is the reader/writer-locked type registry.
//
// The lock policy is deliberately simple and is a placeholder for a
// retry-capable lock: callers block for as long as it takes to acquire the
// lock (no timeout, no retry, no backoff), and any failure inside a critical
// section is fatal.
type registry struct {
	// cfg is the configuration used for naming.
	cfg apis.Config
	// res derives canonical names.
	res apis.Resolver
	// log receives registration records.
	log zerolog.Logger
	// names memoizes reflect.Type -> canonical name ("" for unnamed types).
	names sync.Map

	// mu guards the maps below.
	mu sync.RWMutex
	// byName maps canonical name to its entry.
	byName map[string]apis.Entry
	// byUUID maps type discriminator to canonical name.
	byUUID map[uuid.UUID]string
	// libs counts registered types per library discriminator.
	libs map[uuid.UUID]int
}

// Register binds the canonical name of t to (typeUUID, libraryUUID).
func (r *registry) Register(t reflect.Type, typeUUID, libraryUUID uuid.UUID) {
	name := r.mustName("Register", t)
	base, _ := uref.Normalize(t, r.cfg)

	if typeUUID == uuid.Nil || libraryUUID == uuid.Nil {
		r.fatal("Register", fmt.Errorf("%w: registering %s", ErrNilDiscriminator, name))
	}
	if typeUUID == libraryUUID {
		r.fatal("Register", fmt.Errorf("%w: %s uses %s as both type and library discriminator",
			ErrDiscriminatorCollision, name, typeUUID))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Make sure the name hasn't already been registered...
	if prev, ok := r.byName[name]; ok {
		r.fatal("Register", fmt.Errorf("%w: %s (as %s)", ErrDuplicateName, name, prev.Type))
	}
	// ...nor the discriminator, under any name or as a library.
	if other, ok := r.byUUID[typeUUID]; ok {
		r.fatal("Register", fmt.Errorf("%w: %s is bound to %s, not %s",
			ErrDuplicateDiscriminator, typeUUID, other, name))
	}
	if _, ok := r.libs[typeUUID]; ok {
		r.fatal("Register", fmt.Errorf("%w: type discriminator %s of %s is a library discriminator",
			ErrDiscriminatorCollision, typeUUID, name))
	}
	if other, ok := r.byUUID[libraryUUID]; ok {
		r.fatal("Register", fmt.Errorf("%w: library discriminator %s of %s is bound to type %s",
			ErrDiscriminatorCollision, libraryUUID, name, other))
	}

	id := apis.NewTypeIdentifier(typeUUID, apis.NewLibraryIdentifier(libraryUUID))
	r.byName[name] = apis.Entry{Name: name, Type: base, ID: id}
	r.byUUID[typeUUID] = name
	r.libs[libraryUUID]++

	r.log.Debug().
		Str("name", name).
		Str("type_uuid", typeUUID.String()).
		Str("library_uuid", libraryUUID.String()).
		Msg("registered type")
}

// IdentifierOf returns the identifier bound to t or panics with ErrNotRegistered.
func (r *registry) IdentifierOf(t reflect.Type) apis.TypeIdentifier {
	name := r.mustName("IdentifierOf", t)

	r.mu.RLock()
	e, ok := r.byName[name]
	r.mu.RUnlock()

	if !ok {
		r.fatal("IdentifierOf", fmt.Errorf("%w: %s", ErrNotRegistered, name))
	}
	return e.ID
}

// LibraryOf returns the library of t or panics with ErrNotRegistered.
func (r *registry) LibraryOf(t reflect.Type) apis.LibraryIdentifier {
	return r.IdentifierOf(t).Library()
}

// Lookup returns the identifier bound to t, if any.
func (r *registry) Lookup(t reflect.Type) (apis.TypeIdentifier, bool) {
	name := r.nameOf(t)
	if name == "" {
		return apis.TypeIdentifier{}, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.byName[name]
	return e.ID, ok
}

// NameOf returns the canonical name the registry uses for t, or "".
func (r *registry) NameOf(t reflect.Type) string {
	return r.nameOf(t)
}

// Entries returns a snapshot sorted by name.
func (r *registry) Entries() []apis.Entry {
	r.mu.RLock()
	entries := make([]apis.Entry, 0, len(r.byName))
	for _, e := range r.byName {
		entries = append(entries, e)
	}
	r.mu.RUnlock()

	slices.SortFunc(entries, func(a, b apis.Entry) int {
		return strings.Compare(a.Name, b.Name)
	})
	return entries
}

// Libraries returns the distinct libraries that registered types, sorted.
func (r *registry) Libraries() []apis.LibraryIdentifier {
	r.mu.RLock()
	libs := make([]apis.LibraryIdentifier, 0, len(r.libs))
	for id := range r.libs {
		libs = append(libs, apis.NewLibraryIdentifier(id))
	}
	r.mu.RUnlock()

	slices.SortFunc(libs, func(a, b apis.LibraryIdentifier) int {
		return strings.Compare(a.String(), b.String())
	})
	return libs
}

// Count returns the number of registered types.
func (r *registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byName)
}

// nameOf derives (and memoizes) the canonical name of t.
func (r *registry) nameOf(t reflect.Type) string {
	if t == nil {
		return ""
	}
	if v, ok := r.names.Load(t); ok {
		return v.(string)
	}

	var name string
	if base, err := uref.Normalize(t, r.cfg); err == nil {
		name = r.res.ResolveType(base, r.cfg)
	}
	r.names.Store(t, name)
	return name
}

// mustName returns the canonical name of t, or panics.
func (r *registry) mustName(op string, t reflect.Type) string {
	if t == nil {
		r.fatal(op, ErrNilType)
	}
	name := r.nameOf(t)
	if name == "" {
		r.fatal(op, fmt.Errorf("%w: %s", ErrTypeNotNamed, t))
	}
	return name
}

// fatal logs err and panics with it.
func (r *registry) fatal(op string, err error) {
	r.log.Error().Err(err).Str("op", op).Msg("fatal type registry error")
	panic(err)
}
