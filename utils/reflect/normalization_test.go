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
	"errors"
	"reflect"
	"runtime"
	"sync"
	"testing"

	"dirpx.dev/rtti/apis"
	uref "dirpx.dev/rtti/utils/reflect"
)

// Local test types.
type A struct{}
type G[T any] struct{}
type I interface{ M() }
type PA *A

// cfg returns a convenient baseline Config for tests.
func cfg(opts ...func(*apis.Config)) apis.Config {
	c := apis.Config{MaxUnwrap: 8}
	for _, o := range opts {
		o(&c)
	}
	return c
}

func TestNormalize_Pointers(t *testing.T) {
	conf := cfg()

	cases := []struct {
		name string
		typ  reflect.Type
		want reflect.Type
	}{
		{"plain", reflect.TypeOf(A{}), reflect.TypeOf(A{})},
		{"ptr", reflect.TypeOf(&A{}), reflect.TypeOf(A{})},
		{"ptr ptr", reflect.TypeOf((**A)(nil)), reflect.TypeOf(A{})},
		{"interface", reflect.TypeFor[I](), reflect.TypeFor[I]()},
		{"generic", reflect.TypeOf(&G[int]{}), reflect.TypeOf(G[int]{})},
		{"named pointer stays", reflect.TypeFor[PA](), reflect.TypeFor[PA]()},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := uref.Normalize(tc.typ, conf)
			if err != nil {
				t.Fatalf("Normalize(%v) returned error: %v", tc.typ, err)
			}
			if got != tc.want {
				t.Fatalf("Normalize(%v) = %v, want %v", tc.typ, got, tc.want)
			}
		})
	}
}

func TestNormalize_ContainersAreNotUnwrapped(t *testing.T) {
	conf := cfg()

	for _, typ := range []reflect.Type{
		reflect.TypeOf([]A{}),
		reflect.TypeOf([2]A{}),
		reflect.TypeOf(map[string]A{}),
		reflect.TypeOf((chan A)(nil)),
		reflect.TypeOf(struct{}{}),
		reflect.TypeOf(func() {}),
		reflect.TypeFor[any](),
	} {
		if _, err := uref.Normalize(typ, conf); !errors.Is(err, uref.ErrReflectTypeNotNamed) {
			t.Fatalf("Normalize(%v) error = %v, want ErrReflectTypeNotNamed", typ, err)
		}
	}
}

func TestNormalize_NilType(t *testing.T) {
	if _, err := uref.Normalize(nil, cfg()); !errors.Is(err, uref.ErrReflectNilType) {
		t.Fatalf("Normalize(nil) error = %v, want ErrReflectNilType", err)
	}
}

func TestNormalize_MaxUnwrap(t *testing.T) {
	ppp := reflect.TypeOf((***A)(nil))

	tight := cfg(func(c *apis.Config) { c.MaxUnwrap = 2 })
	if _, err := uref.Normalize(ppp, tight); !errors.Is(err, uref.ErrReflectTypeNotNamed) {
		t.Fatalf("MaxUnwrap=2: error = %v, want ErrReflectTypeNotNamed", err)
	}

	exact := cfg(func(c *apis.Config) { c.MaxUnwrap = 3 })
	if got, err := uref.Normalize(ppp, exact); err != nil || got != reflect.TypeOf(A{}) {
		t.Fatalf("MaxUnwrap=3: got (%v, %v), want (A, nil)", got, err)
	}

	// Non-positive values fall back to the default.
	zero := cfg(func(c *apis.Config) { c.MaxUnwrap = 0 })
	if got, err := uref.Normalize(ppp, zero); err != nil || got != reflect.TypeOf(A{}) {
		t.Fatalf("MaxUnwrap=0: got (%v, %v), want (A, nil)", got, err)
	}
}

func TestNormalize_Concurrent(t *testing.T) {
	conf := cfg()
	types := []reflect.Type{
		reflect.TypeOf(A{}),
		reflect.TypeOf(&A{}),
		reflect.TypeOf((**A)(nil)),
		reflect.TypeOf(G[int]{}),
	}
	want := []reflect.Type{
		reflect.TypeOf(A{}),
		reflect.TypeOf(A{}),
		reflect.TypeOf(A{}),
		reflect.TypeOf(G[int]{}),
	}

	workers := runtime.GOMAXPROCS(0) * 4
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < 2000; i++ {
				idx := i % len(types)
				got, err := uref.Normalize(types[idx], conf)
				if err != nil || got != want[idx] {
					t.Errorf("Normalize(%v) = (%v, %v), want %v", types[idx], got, err, want[idx])
					return
				}
			}
		}()
	}
	wg.Wait()
}
