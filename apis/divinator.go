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

// Divinator answers "which type is named here": the identifier of the
// statically named type through which it was obtained, not the type of the
// object underneath. A Divinator obtained for an interface type reports the
// interface's identifier even when the value behind it is concrete.
type Divinator interface {
	// TypeIdentifier returns the identifier of the statically named type.
	TypeIdentifier() TypeIdentifier
	// LibraryIdentifier returns the library that defines the statically named type.
	LibraryIdentifier() LibraryIdentifier
}

// ConcreteDivinator exposes the identity of the concrete type underlying a
// value, regardless of the interface through which the value is held.
//
// Every concrete type of a hierarchy implements it with its own methods.
// Go promotes methods of embedded fields, so a type that embeds its
// ancestor must still declare all four methods itself; otherwise it would
// answer with the ancestor's identity.
type ConcreteDivinator interface {
	// ConcreteTypeIdentifier returns the identifier of the concrete type.
	ConcreteTypeIdentifier() TypeIdentifier

	// ConcreteLibraryIdentifier returns the library defining the concrete type.
	ConcreteLibraryIdentifier() LibraryIdentifier

	// Implements reports whether the concrete type declares the interface
	// identified by interfaceID: its introducing interface or one of the
	// interfaces inherited from the types it encompasses.
	Implements(interfaceID TypeIdentifier) bool

	// Is reports whether typeID is exactly the concrete type's identifier.
	//
	// Is is not "is-a". It is false for ancestors and for implemented
	// interfaces: narrowing yields a different reference than the handle it
	// started from, so exact identity and capability membership are kept
	// apart. Use Implements to ask whether a value "is a" Vehicle.
	Is(typeID TypeIdentifier) bool
}

// Object is the abstract root handle understood by the casting machinery:
// any value that can report its concrete identity.
type Object interface {
	ConcreteDivinator
}
