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

package reflect_test

import (
	"reflect"
	"testing"

	uref "dirpx.dev/rtti/utils/reflect"
)

func TestBareName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Construct", "Construct"},
		{"construct.Construct", "Construct"},
		{"*construct.Construct", "Construct"},
		{"**widgets.Checkbox", "Checkbox"},
		{"widgets.Box[int]", "Box"},
		{"widgets.Box[dirpx.dev/rtti/widgets.Item]", "Box"},
		{"reflect_test.I", "I"},
		{"pkg.Über", "Über"},
		{"pkg.snake_case_1", "snake_case_1"},
		{"", ""},
		{"*", ""},
		{"func()", ""},
		{"[]", ""},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			if got := uref.BareName(tc.in); got != tc.want {
				t.Fatalf("BareName(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestBareName_FromReflect(t *testing.T) {
	cases := []struct {
		typ  reflect.Type
		want string
	}{
		{reflect.TypeOf(A{}), "A"},
		{reflect.TypeOf(&A{}), "A"},
		{reflect.TypeOf(G[A]{}), "G"},
		{reflect.TypeFor[I](), "I"},
	}
	for _, tc := range cases {
		if got := uref.BareName(tc.typ.String()); got != tc.want {
			t.Fatalf("BareName(%q) = %q, want %q", tc.typ.String(), got, tc.want)
		}
	}
}

func BenchmarkBareName(b *testing.B) {
	s := reflect.TypeOf(&G[A]{}).String()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = uref.BareName(s)
	}
}
