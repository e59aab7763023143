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

package strategy_test

import (
	"reflect"
	"testing"

	"dirpx.dev/rtti/apis"
	"dirpx.dev/rtti/strategy"
)

type namedType struct{}

func (namedType) TypeName() string { return "custom.Name" } // implements apis.Namer

type ptrNamedType struct{ n int }

func (*ptrNamedType) TypeName() string { return "custom.PtrName" }

type emptyNamed struct{}

func (emptyNamed) TypeName() string { return "" }

type namerIface interface {
	apis.Namer
	Other()
}

func TestNamerStrategy_TryResolveType(t *testing.T) {
	s := strategy.NewNamerStrategy()
	conf := apis.Config{MaxUnwrap: 8}

	cases := []struct {
		name string
		typ  reflect.Type
		want string
		ok   bool
	}{
		{"value receiver", reflect.TypeOf(namedType{}), "custom.Name", true},
		{"value receiver via pointer", reflect.TypeOf(&namedType{}), "custom.Name", true},
		{"pointer receiver", reflect.TypeOf(ptrNamedType{}), "custom.PtrName", true},
		{"pointer receiver via pointer", reflect.TypeOf(&ptrNamedType{}), "custom.PtrName", true},
		{"empty name falls through", reflect.TypeOf(emptyNamed{}), "", false},
		{"non-namer", reflect.TypeOf(struct{ X int }{}), "", false},
		{"interface is skipped", reflect.TypeFor[namerIface](), "", false},
		{"nil", nil, "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := s.TryResolveType(tc.typ, conf)
			if ok != tc.ok || got != tc.want {
				t.Fatalf("TryResolveType(%v) = (%q,%v), want (%q,%v)", tc.typ, got, ok, tc.want, tc.ok)
			}
		})
	}
}

// Ensure the local types actually satisfy apis.Namer (compile-time).
var (
	_ apis.Namer = (*namedType)(nil)
	_ apis.Namer = (*ptrNamedType)(nil)
)
