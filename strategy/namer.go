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

package strategy

import (
	"reflect"

	"dirpx.dev/rtti/apis"
	uref "dirpx.dev/rtti/utils/reflect"
)

// NewNamerStrategy creates an apis.Strategy that uses apis.Namer.
func NewNamerStrategy() apis.Strategy {
	return &namerStrategy{}
}

// namerStrategy lets a type pick its own canonical name: if T or *T
// implements apis.Namer, the name comes from TypeName() on a zero value.
type namerStrategy struct{}

// Ensure namerStrategy implements apis.Strategy.
var _ apis.Strategy = (*namerStrategy)(nil)

var namerType = reflect.TypeFor[apis.Namer]()

// TryResolveType checks whether t (after pointer normalization) or a pointer
// to it implements apis.Namer and returns its TypeName().
func (*namerStrategy) TryResolveType(t reflect.Type, cfg apis.Config) (string, bool) {
	if t == nil {
		return "", false
	}
	base, err := uref.Normalize(t, cfg)
	if err != nil {
		return "", false
	}
	// Interfaces have no zero value to call TypeName on.
	if base.Kind() == reflect.Interface || base.Kind() == reflect.Pointer {
		return "", false
	}

	var n apis.Namer
	switch {
	case base.Implements(namerType):
		n = reflect.Zero(base).Interface().(apis.Namer)
	case reflect.PointerTo(base).Implements(namerType):
		n = reflect.New(base).Interface().(apis.Namer)
	default:
		return "", false
	}

	if name := n.TypeName(); name != "" {
		return name, true
	}
	return "", false
}
