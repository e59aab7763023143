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

package apis

import (
	"reflect"

	"github.com/google/uuid"
)

// Registry is the authoritative map from types to their identifiers.
//
// It is populated once, during the initialization phase, and read-only
// afterwards. Registration mistakes are programmer errors: Register,
// IdentifierOf and LibraryOf panic instead of returning errors.
type Registry interface {
	// Register binds the canonical name of t to a new TypeIdentifier made of
	// typeUUID and libraryUUID. It panics if the name is already bound, if
	// typeUUID is already bound to another name, or if the discriminators
	// collide with the type/library namespace.
	Register(t reflect.Type, typeUUID, libraryUUID uuid.UUID)

	// IdentifierOf returns the identifier bound to t. It panics if t was never registered.
	IdentifierOf(t reflect.Type) TypeIdentifier

	// LibraryOf returns the library of the type bound to t. It panics if t was never registered.
	LibraryOf(t reflect.Type) LibraryIdentifier

	// Lookup is the non-fatal form of IdentifierOf.
	Lookup(t reflect.Type) (id TypeIdentifier, ok bool)

	// NameOf returns the canonical name the registry uses for t, or "".
	NameOf(t reflect.Type) string

	// Entries returns a snapshot sorted by name.
	Entries() []Entry

	// Libraries returns the distinct libraries that registered types, sorted.
	Libraries() []LibraryIdentifier

	// Count returns the number of registered types.
	Count() int
}

// Entry is a single registration in a Registry snapshot.
type Entry struct {
	// Name is the canonical name the type is keyed by.
	Name string
	// Type is the normalized reflect.Type that was registered.
	Type reflect.Type
	// ID is the identifier bound to the name.
	ID TypeIdentifier
}
