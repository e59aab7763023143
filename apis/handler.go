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

// Handler attempts to downcast an abstract handle to the interface I.
//
// A library registers one Handler per target interface with that
// interface's router. The handler only ever sees objects whose concrete type
// belongs to its own library.
type Handler[I any] interface {
	// Downcast returns obj viewed as I, or (zero, false) when obj's concrete
	// type is not one the handler knows how to narrow.
	Downcast(obj Object) (I, bool)
}

// HandlerFunc adapts an ordinary function to Handler.
type HandlerFunc[I any] func(obj Object) (I, bool)

// Downcast calls f(obj).
func (f HandlerFunc[I]) Downcast(obj Object) (I, bool) {
	return f(obj)
}

// RouterInfo is the read-only view of a downcast router used by diagnostics.
type RouterInfo interface {
	// Target returns the canonical Go name of the target interface.
	Target() string
	// Libraries returns the libraries with a registered handler.
	Libraries() []LibraryIdentifier
	// Stats returns the number of downcasts that succeeded and failed.
	Stats() (hits, misses uint64)
}
