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
	"github.com/google/uuid"
)

// LibraryIdentifier names one independently built library (a Go package or
// group of packages that registers types together). It is the routing key
// for downcast dispatch. The zero value names no library.
type LibraryIdentifier struct {
	uuid uuid.UUID
}

// NewLibraryIdentifier wraps a library discriminator.
func NewLibraryIdentifier(id uuid.UUID) LibraryIdentifier {
	return LibraryIdentifier{uuid: id}
}

// UUID returns the library discriminator. Intended for diagnostics only.
func (l LibraryIdentifier) UUID() uuid.UUID {
	return l.uuid
}

// IsZero reports whether l names no library.
func (l LibraryIdentifier) IsZero() bool {
	return l.uuid == uuid.Nil
}

// String returns the canonical textual form of the discriminator.
func (l LibraryIdentifier) String() string {
	return l.uuid.String()
}

// TypeIdentifier uniquely names one registered type, interface or concrete.
//
// Consumers treat it as an opaque token: compare with Equal (or ==) and never
// take decisions based on its parts. Two identifiers are equal iff their type
// discriminators are equal; since a discriminator is bound to exactly one
// library at registration time, == agrees with Equal.
type TypeIdentifier struct {
	uuid    uuid.UUID
	library LibraryIdentifier
}

// NewTypeIdentifier is used by Registry implementations to mint identifiers.
func NewTypeIdentifier(typeUUID uuid.UUID, library LibraryIdentifier) TypeIdentifier {
	return TypeIdentifier{uuid: typeUUID, library: library}
}

// Equal reports whether t and o name the same type.
func (t TypeIdentifier) Equal(o TypeIdentifier) bool {
	return t.uuid == o.uuid
}

// UUID returns the type discriminator. Intended for diagnostics only.
func (t TypeIdentifier) UUID() uuid.UUID {
	return t.uuid
}

// Library returns the identifier of the library that owns the type.
func (t TypeIdentifier) Library() LibraryIdentifier {
	return t.library
}

// IsZero reports whether t is the zero identifier (never issued by a registry).
func (t TypeIdentifier) IsZero() bool {
	return t.uuid == uuid.Nil
}

// String renders "<type uuid>@<library uuid>".
func (t TypeIdentifier) String() string {
	return t.uuid.String() + "@" + t.library.String()
}
