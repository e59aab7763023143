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

package divination

import (
	"reflect"

	"dirpx.dev/rtti/apis"
)

// Static returns the Divinator of the statically named type T.
//
// T is the type at the call site, not the dynamic type of any value: for an
// interface type T the answer is the interface's identifier. Panics (via
// reg.IdentifierOf) if T is not registered.
func Static[T any](reg apis.Registry) apis.Divinator {
	return divinator{id: reg.IdentifierOf(reflect.TypeFor[T]())}
}

// divinator is a resolved static identity.
type divinator struct {
	id apis.TypeIdentifier
}

// Ensure divinator implements apis.Divinator.
var _ apis.Divinator = divinator{}

func (d divinator) TypeIdentifier() apis.TypeIdentifier       { return d.id }
func (d divinator) LibraryIdentifier() apis.LibraryIdentifier { return d.id.Library() }
