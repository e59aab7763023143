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

// Package construct is the core library of the example hierarchy. It
// defines IConstruct, the capability every type of the hierarchy has, and
// Construct, its root concrete type.
package construct

import (
	"fmt"
	"io"
	"reflect"
	"sync"

	"github.com/google/uuid"

	"dirpx.dev/rtti"
	"dirpx.dev/rtti/apis"
	"dirpx.dev/rtti/transmutation"
)

var (
	// LibraryUUID identifies this library.
	LibraryUUID = uuid.MustParse("4235edd8-888b-46ae-a616-630fbbef6fe2")
	// IConstructUUID identifies IConstruct.
	IConstructUUID = uuid.MustParse("261c4be3-74d6-495b-b389-e6fbbdd11495")
	// ConstructUUID identifies Construct.
	ConstructUUID = uuid.MustParse("cfc16542-4031-4030-bd8f-7a86626f44e5")
)

// DefaultName is the name of a new Construct.
const DefaultName = "my construct"

// IConstruct is implemented by every type of the hierarchy.
type IConstruct interface {
	apis.Object

	// Name returns the construct's current name.
	Name() string
	// SetName replaces the construct's name.
	SetName(name string)
	// OnClick handles a click, reporting what it did to w. Types that embed
	// a Construct extend the handling of the type they embed.
	OnClick(w io.Writer)
}

// Construct is the root concrete type of the hierarchy.
type Construct struct {
	name string
}

// New returns a Construct named DefaultName.
func New() *Construct {
	return &Construct{name: DefaultName}
}

func (c *Construct) Name() string        { return c.name }
func (c *Construct) SetName(name string) { c.name = name }

func (c *Construct) OnClick(w io.Writer) {
	fmt.Fprintln(w, "on_click handled by Construct implementation!")
}

var class = rtti.NewClass(reflect.TypeFor[Construct](), reflect.TypeFor[IConstruct]())

func (*Construct) ConcreteTypeIdentifier() apis.TypeIdentifier       { return class.TypeIdentifier() }
func (*Construct) ConcreteLibraryIdentifier() apis.LibraryIdentifier { return class.LibraryIdentifier() }
func (*Construct) Implements(id apis.TypeIdentifier) bool            { return class.Implements(id) }
func (*Construct) Is(id apis.TypeIdentifier) bool                    { return class.Is(id) }

// router narrows abstract handles to IConstruct.
var router = rtti.NewRouter[IConstruct]()

// Router returns the IConstruct downcast router. Libraries that define
// concrete types of the hierarchy register a handler with it.
func Router() *transmutation.Router[IConstruct] {
	return router
}

// AsIConstruct narrows obj to IConstruct.
func AsIConstruct(obj apis.Object) (IConstruct, bool) {
	return router.Downcast(obj)
}

var once sync.Once

// Init registers this library's types and handlers with the global
// registry. It is safe to call more than once.
func Init() {
	once.Do(func() {
		rtti.Register[IConstruct](IConstructUUID, LibraryUUID)
		rtti.Register[Construct](ConstructUUID, LibraryUUID)

		h := rtti.NewLibraryHandler[IConstruct]()
		transmutation.Include(h, func(c *Construct) IConstruct { return c })
		router.RegisterHandler(rtti.LibraryIdentifierOf[Construct](), h)
	})
}
