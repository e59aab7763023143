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
	"runtime"
	"sync"
	"testing"

	"dirpx.dev/rtti/apis"
)

// Local test types.
type A struct{}
type G[T any] struct{}
type W[T any] struct{ V T }
type I interface{ M() }

// cfg returns a convenient baseline Config for tests.
func cfg(opts ...func(*apis.Config)) apis.Config {
	c := apis.Config{MaxUnwrap: 8}
	for _, o := range opts {
		o(&c)
	}
	return c
}

func qualified(c *apis.Config) { c.QualifiedNames = true }

func TestReflectStrategy_ByType(t *testing.T) {
	s := NewReflectStrategy()

	cases := []struct {
		name     string
		typ      reflect.Type
		cfg      apis.Config
		expected string
		ok       bool
	}{
		{"plain", reflect.TypeOf(A{}), cfg(), "A", true},
		{"ptr", reflect.TypeOf(&A{}), cfg(), "A", true},
		{"ptr ptr", reflect.TypeOf((**A)(nil)), cfg(), "A", true},
		{"interface", reflect.TypeFor[I](), cfg(), "I", true},
		{"generic strips params", reflect.TypeOf(G[int]{}), cfg(), "G", true},
		{"nested generic", reflect.TypeOf(&W[G[int]]{}), cfg(), "W", true},
		{"qualified", reflect.TypeOf(&A{}), cfg(qualified), "strategy.A", true},
		{"qualified generic", reflect.TypeOf(G[A]{}), cfg(qualified), "strategy.G", true},
		{"builtin qualified stays bare", reflect.TypeOf(0), cfg(qualified), "int", true},
		{"slice not named", reflect.TypeOf([]A{}), cfg(), "", false},
		{"map not named", reflect.TypeOf(map[string]A{}), cfg(), "", false},
		{"anonymous struct", reflect.TypeOf(struct{}{}), cfg(), "", false},
		{"nil", nil, cfg(), "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := s.TryResolveType(tc.typ, tc.cfg)
			if ok != tc.ok || got != tc.expected {
				t.Fatalf("got (%q,%v), want (%q,%v)", got, ok, tc.expected, tc.ok)
			}
		})
	}
}

func TestReflectStrategy_MaxUnwrap(t *testing.T) {
	s := NewReflectStrategy()

	type PPP = ***A
	tt := reflect.TypeOf((*PPP)(nil)).Elem() // ***A type (not a value)

	// Too small MaxUnwrap -> cannot reach the named A.
	t.Run("tight limit", func(t *testing.T) {
		cfgTight := cfg(func(c *apis.Config) { c.MaxUnwrap = 1 })
		got, ok := s.TryResolveType(tt, cfgTight)
		if ok || got != "" {
			t.Fatalf("MaxUnwrap=1: expected failed resolution, got %q", got)
		}
	})

	// Large enough -> success.
	t.Run("wide limit", func(t *testing.T) {
		cfgWide := cfg(func(c *apis.Config) { c.MaxUnwrap = 8 })
		got, ok := s.TryResolveType(tt, cfgWide)
		if !ok || got != "A" {
			t.Fatalf("MaxUnwrap=8: got (%q,%v), want (A,true)", got, ok)
		}
	})
}

// This test stresses the memoization and Normalize path under concurrency.
func TestReflectStrategy_Concurrent(t *testing.T) {
	s := NewReflectStrategy()
	conf := cfg()

	types := []reflect.Type{
		reflect.TypeOf(A{}),
		reflect.TypeOf(&A{}),
		reflect.TypeOf(G[int]{}),
		reflect.TypeOf(W[G[int]]{}),
		reflect.TypeFor[I](),
		reflect.TypeOf(0),
	}
	expect := []string{"A", "A", "G", "W", "I", "int"}

	workers := runtime.GOMAXPROCS(0) * 4
	iters := 2000

	var wg sync.WaitGroup
	wg.Add(workers)
	errCh := make(chan string, workers)

	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < iters; i++ {
				idx := i % len(types)
				got, ok := s.TryResolveType(types[idx], conf)
				if !ok || got != expect[idx] {
					errCh <- got
					return
				}
			}
		}()
	}

	wg.Wait()
	close(errCh)
	for e := range errCh {
		t.Fatalf("concurrent resolve mismatch: got=%q", e)
	}
}

// ---- Benchmarks ----

func BenchmarkReflectStrategy_ByType(b *testing.B) {
	s := NewReflectStrategy()

	types := []reflect.Type{
		reflect.TypeOf(A{}),
		reflect.TypeOf(&A{}),
		reflect.TypeOf(G[int]{}),
		reflect.TypeOf(W[G[int]]{}),
		reflect.TypeFor[I](),
	}

	configs := []struct {
		name string
		cfg  apis.Config
	}{
		{"default", cfg()},
		{"qualified", cfg(qualified)},
		{"low_maxunwrap", cfg(func(c *apis.Config) { c.MaxUnwrap = 1 })},
	}

	for _, cc := range configs {
		b.Run(cc.name, func(b *testing.B) {
			// Warm-up cache
			for _, t0 := range types {
				s.TryResolveType(t0, cc.cfg)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				t0 := types[i%len(types)]
				s.TryResolveType(t0, cc.cfg)
			}
		})
	}
}
