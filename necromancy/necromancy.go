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

// Package necromancy narrows abstract handles to their concrete types.
package necromancy

import (
	"reflect"

	"dirpx.dev/rtti/apis"
)

// Unearth returns obj as *C when obj's concrete type is exactly C.
//
// The identity check runs first; the type assertion only happens once
// obj.Is has confirmed C. An object that claims C's identity but is not held
// as *C is reported as absent. Nil handles are absent. Panics (via
// reg.IdentifierOf) if C is not registered.
func Unearth[C any](reg apis.Registry, obj apis.Object) (*C, bool) {
	if isNil(obj) {
		return nil, false
	}
	if !obj.Is(reg.IdentifierOf(reflect.TypeFor[C]())) {
		return nil, false
	}
	c, ok := any(obj).(*C)
	return c, ok
}

// isNil reports whether obj is a nil interface or a typed nil pointer.
func isNil(obj apis.Object) bool {
	if obj == nil {
		return true
	}
	v := reflect.ValueOf(obj)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
