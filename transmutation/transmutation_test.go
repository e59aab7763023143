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

package transmutation_test

import (
	"bytes"
	"errors"
	"reflect"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/rtti/apis"
	"dirpx.dev/rtti/config"
	"dirpx.dev/rtti/divination"
	"dirpx.dev/rtti/registry"
	"dirpx.dev/rtti/transmutation"
)

// Three libraries: R is the root, A and B extend it independently, C
// extends A.

type IR interface {
	apis.Object
	Root() string
}

type IA interface {
	IR
	Alpha() string
}

type IB interface {
	IR
	Beta() string
}

type IC interface {
	IA
	Gamma() string
}

type A struct{ tag string }

func (a *A) Root() string  { return "root:" + a.tag }
func (a *A) Alpha() string { return "alpha:" + a.tag }

type B struct{}

func (*B) Root() string { return "root:b" }
func (*B) Beta() string { return "beta" }

type C struct{ A }

func (*C) Gamma() string { return "gamma" }

var (
	libR = uuid.MustParse("7a000000-0000-4000-8000-000000000001")
	libA = uuid.MustParse("7a000000-0000-4000-8000-000000000002")
	libB = uuid.MustParse("7a000000-0000-4000-8000-000000000003")
	libC = uuid.MustParse("7a000000-0000-4000-8000-000000000004")

	reg = func() apis.Registry {
		r := registry.New(config.DefaultConfig(), nil)
		r.Register(reflect.TypeFor[IR](), uuid.MustParse("7a000000-0000-4000-8000-0000000000f1"), libR)
		r.Register(reflect.TypeFor[IA](), uuid.MustParse("7a000000-0000-4000-8000-0000000000a1"), libA)
		r.Register(reflect.TypeFor[A](), uuid.MustParse("7a000000-0000-4000-8000-0000000000a2"), libA)
		r.Register(reflect.TypeFor[IB](), uuid.MustParse("7a000000-0000-4000-8000-0000000000b1"), libB)
		r.Register(reflect.TypeFor[B](), uuid.MustParse("7a000000-0000-4000-8000-0000000000b2"), libB)
		r.Register(reflect.TypeFor[IC](), uuid.MustParse("7a000000-0000-4000-8000-0000000000c1"), libC)
		r.Register(reflect.TypeFor[C](), uuid.MustParse("7a000000-0000-4000-8000-0000000000c2"), libC)
		return r
	}()

	aClass = divination.NewClass(reg, reflect.TypeFor[A](), reflect.TypeFor[IA](), reflect.TypeFor[IR]())
	bClass = divination.NewClass(reg, reflect.TypeFor[B](), reflect.TypeFor[IB](), reflect.TypeFor[IR]())
	cClass = divination.NewClass(reg, reflect.TypeFor[C](), reflect.TypeFor[IC](),
		reflect.TypeFor[IA](), reflect.TypeFor[IR]())

	iaRouter = transmutation.NewRouter[IA]()
	ibRouter = transmutation.NewRouter[IB]()
	icRouter = transmutation.NewRouter[IC]()
)

func init() {
	// Library A.
	ha := transmutation.NewLibraryHandler[IA](reg)
	transmutation.Include(ha, func(a *A) IA { return a })
	iaRouter.RegisterHandler(apis.NewLibraryIdentifier(libA), ha)

	// Library B.
	hb := transmutation.NewLibraryHandler[IB](reg)
	transmutation.Include(hb, func(b *B) IB { return b })
	ibRouter.RegisterHandler(apis.NewLibraryIdentifier(libB), hb)

	// Library C, which A knows nothing about.
	hca := transmutation.NewLibraryHandler[IA](reg)
	transmutation.Include(hca, func(c *C) IA { return c })
	iaRouter.RegisterHandler(apis.NewLibraryIdentifier(libC), hca)

	hcc := transmutation.NewLibraryHandler[IC](reg)
	transmutation.Include(hcc, func(c *C) IC { return c })
	icRouter.RegisterHandler(apis.NewLibraryIdentifier(libC), hcc)
}

func (*A) ConcreteTypeIdentifier() apis.TypeIdentifier       { return aClass.TypeIdentifier() }
func (*A) ConcreteLibraryIdentifier() apis.LibraryIdentifier { return aClass.LibraryIdentifier() }
func (*A) Implements(id apis.TypeIdentifier) bool            { return aClass.Implements(id) }
func (*A) Is(id apis.TypeIdentifier) bool                    { return aClass.Is(id) }

func (*B) ConcreteTypeIdentifier() apis.TypeIdentifier       { return bClass.TypeIdentifier() }
func (*B) ConcreteLibraryIdentifier() apis.LibraryIdentifier { return bClass.LibraryIdentifier() }
func (*B) Implements(id apis.TypeIdentifier) bool            { return bClass.Implements(id) }
func (*B) Is(id apis.TypeIdentifier) bool                    { return bClass.Is(id) }

func (*C) ConcreteTypeIdentifier() apis.TypeIdentifier       { return cClass.TypeIdentifier() }
func (*C) ConcreteLibraryIdentifier() apis.LibraryIdentifier { return cClass.LibraryIdentifier() }
func (*C) Implements(id apis.TypeIdentifier) bool            { return cClass.Implements(id) }
func (*C) Is(id apis.TypeIdentifier) bool                    { return cClass.Is(id) }

func TestUpcast(t *testing.T) {
	a := &A{tag: "x"}

	r := transmutation.Upcast[IR](a)
	assert.Equal(t, "root:x", r.Root())

	// Interface to interface.
	var ia IA = a
	r = transmutation.Upcast[IR](ia)
	assert.Same(t, a, r.(*A))
	assert.Equal(t, a.ConcreteTypeIdentifier(), r.ConcreteTypeIdentifier())
}

func TestDowncast_TwoIndependentLibraries(t *testing.T) {
	a := &A{tag: "one"}
	var root IR = transmutation.Upcast[IR](a)

	_, ok := ibRouter.Downcast(root)
	assert.False(t, ok, "A does not implement IB")

	ia, ok := iaRouter.Downcast(root)
	require.True(t, ok)
	assert.Same(t, a, ia.(*A))
	assert.Equal(t, "alpha:one", ia.Alpha())
	assert.Equal(t, root.ConcreteTypeIdentifier(), ia.ConcreteTypeIdentifier())
}

func TestDowncast_ThroughAncestorInterfaceAcrossLibraries(t *testing.T) {
	c := &C{A: A{tag: "c"}}
	var root IR = c

	ia, ok := iaRouter.Downcast(root)
	require.True(t, ok)
	assert.Same(t, c, ia.(*C))

	ic, ok := icRouter.Downcast(ia)
	require.True(t, ok)
	assert.Equal(t, "gamma", ic.Gamma())

	_, ok = ibRouter.Downcast(root)
	assert.False(t, ok)
}

func TestDowncast_AbsentTargets(t *testing.T) {
	// No handler for library A in the IC router.
	_, ok := icRouter.Downcast(&A{})
	assert.False(t, ok)

	// Library B has a handler with the IB router, but B is not in the IA one.
	_, ok = iaRouter.Downcast(&B{})
	assert.False(t, ok)

	_, ok = iaRouter.Downcast(nil)
	assert.False(t, ok)
}

func TestDowncast_HandlerSeesUncoveredTypeFromItsLibrary(t *testing.T) {
	// An object claiming library A but not included in A's handler.
	obj := apis.Object(&fakeObject{lib: apis.NewLibraryIdentifier(libA)})
	_, ok := iaRouter.Downcast(obj)
	assert.False(t, ok)
}

func TestRouter_Diagnostics(t *testing.T) {
	r := transmutation.NewRouter[IA]()
	assert.Equal(t, "transmutation_test.IA", r.Target())
	assert.Equal(t, 0, r.HandlerCount())

	h := transmutation.NewLibraryHandler[IA](reg)
	transmutation.Include(h, func(a *A) IA { return a })
	transmutation.Include(h, func(c *C) IA { return c })
	r.RegisterHandler(apis.NewLibraryIdentifier(libA), h)
	r.RegisterHandler(apis.NewLibraryIdentifier(libC), h)

	assert.Equal(t, 2, r.HandlerCount())
	assert.Equal(t, []reflect.Type{reflect.TypeFor[A](), reflect.TypeFor[C]()}, h.Types())
	assert.ElementsMatch(t,
		[]apis.LibraryIdentifier{apis.NewLibraryIdentifier(libA), apis.NewLibraryIdentifier(libC)},
		r.Libraries())

	_, _ = r.Downcast(&A{})
	_, _ = r.Downcast(&C{})
	_, _ = r.Downcast(&B{})
	hits, misses := r.Stats()
	assert.Equal(t, uint64(2), hits)
	assert.Equal(t, uint64(1), misses)
}

func TestRouter_RegistrationErrors(t *testing.T) {
	var buf bytes.Buffer
	r := transmutation.NewRouter[IA](transmutation.WithLogger(zerolog.New(&buf)))
	h := transmutation.NewLibraryHandler[IA](reg)
	r.RegisterHandler(apis.NewLibraryIdentifier(libA), h)

	tests := []struct {
		name string
		fn   func()
		want error
	}{
		{"duplicate library", func() { r.RegisterHandler(apis.NewLibraryIdentifier(libA), h) }, transmutation.ErrDuplicateHandler},
		{"nil handler", func() { r.RegisterHandler(apis.NewLibraryIdentifier(libB), nil) }, transmutation.ErrNilHandler},
		{"zero library", func() { r.RegisterHandler(apis.LibraryIdentifier{}, h) }, transmutation.ErrNilHandler},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				err, _ := recover().(error)
				if !errors.Is(err, tt.want) {
					t.Fatalf("panic = %v, want %v", err, tt.want)
				}
			}()
			tt.fn()
		})
	}

	assert.Equal(t, 1, r.HandlerCount())
	assert.Contains(t, buf.String(), `"level":"error"`)
}

func TestInclude_DuplicateConcretePanics(t *testing.T) {
	h := transmutation.NewLibraryHandler[IA](reg)
	transmutation.Include(h, func(a *A) IA { return a })

	defer func() {
		err, _ := recover().(error)
		require.ErrorIs(t, err, transmutation.ErrDuplicateConcrete)
	}()
	transmutation.Include(h, func(a *A) IA { return a })
}

func TestHandlerFunc(t *testing.T) {
	r := transmutation.NewRouter[IB]()
	r.RegisterHandler(apis.NewLibraryIdentifier(libB), apis.HandlerFunc[IB](func(obj apis.Object) (IB, bool) {
		b, ok := obj.(*B)
		return b, ok
	}))

	got, ok := r.Downcast(&B{})
	require.True(t, ok)
	assert.Equal(t, "beta", got.Beta())
}

func TestRouter_ConcurrentDowncast(t *testing.T) {
	objs := []apis.Object{&A{}, &B{}, &C{}}

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				obj := objs[(i+w)%len(objs)]
				_, ok := iaRouter.Downcast(obj)
				if want := !obj.Is(reg.IdentifierOf(reflect.TypeFor[B]())); ok != want {
					t.Errorf("Downcast(%T) = %v, want %v", obj, ok, want)
					return
				}
			}
		}(w)
	}
	wg.Wait()
}

// fakeObject claims a library without being any of its included types.
type fakeObject struct {
	lib apis.LibraryIdentifier
}

func (f *fakeObject) ConcreteTypeIdentifier() apis.TypeIdentifier {
	return apis.NewTypeIdentifier(uuid.MustParse("7a000000-0000-4000-8000-0000000000ee"), f.lib)
}
func (f *fakeObject) ConcreteLibraryIdentifier() apis.LibraryIdentifier { return f.lib }
func (*fakeObject) Implements(apis.TypeIdentifier) bool                  { return false }
func (*fakeObject) Is(apis.TypeIdentifier) bool                          { return false }
