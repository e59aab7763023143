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
	"errors"
	"fmt"
	"reflect"
	"slices"
	"sync"
	"sync/atomic"

	"dirpx.dev/rtti/apis"
)

var (
	// ErrNilClassType is raised when a class is declared with a nil type.
	ErrNilClassType = errors.New("rtti(divination): nil type in class declaration")
	// ErrNotInterface is raised when a declared capability is not an interface.
	ErrNotInterface = errors.New("rtti(divination): capability is not an interface type")
	// ErrNotImplemented is raised when the concrete type does not implement a
	// declared capability.
	ErrNotImplemented = errors.New("rtti(divination): concrete type does not implement declared capability")
)

// Class is the fixed capability set of one concrete type: the interface it
// introduces plus the interfaces it inherits from the types it embeds.
//
// A concrete type C declares one package-level Class and forwards its
// apis.ConcreteDivinator methods to it:
//
//	var checkboxClass = divination.NewClass(rtti.Registry(),
//		reflect.TypeFor[Checkbox](), reflect.TypeFor[ICheckbox](),
//		reflect.TypeFor[IUIElement](), reflect.TypeFor[construct.IConstruct]())
//
//	func (*Checkbox) ConcreteTypeIdentifier() apis.TypeIdentifier {
//		return checkboxClass.TypeIdentifier()
//	}
//
// Identifiers are looked up once, on the first query, so a Class may be
// declared before its library registers the types. Querying a Class whose
// types are not registered yet panics; the lookup is retried on the next
// query, so the Class works once registration completes.
type Class struct {
	concrete   reflect.Type
	interfaces []reflect.Type
	src        func() apis.Registry

	mu       sync.Mutex
	resolved atomic.Pointer[classIDs]
}

// classIDs is the resolved form of a Class.
type classIDs struct {
	self       apis.TypeIdentifier
	interfaces []apis.TypeIdentifier
}

// NewClass declares the class of concrete against reg. introducing is the
// interface the concrete type introduces; inherited lists the interfaces of
// the types it encompasses, nearest ancestor first.
//
// Declaration errors (nil or non-interface capabilities, capabilities the
// concrete type does not implement through *concrete) panic immediately.
func NewClass(reg apis.Registry, concrete, introducing reflect.Type, inherited ...reflect.Type) *Class {
	return NewLazyClass(func() apis.Registry { return reg }, concrete, introducing, inherited...)
}

// NewLazyClass is NewClass with the registry obtained from src at the time
// of the first query.
func NewLazyClass(src func() apis.Registry, concrete, introducing reflect.Type, inherited ...reflect.Type) *Class {
	if concrete == nil || introducing == nil {
		panic(ErrNilClassType)
	}
	ifaces := make([]reflect.Type, 0, 1+len(inherited))
	ifaces = append(ifaces, introducing)
	ifaces = append(ifaces, inherited...)

	ptr := reflect.PointerTo(concrete)
	for _, it := range ifaces {
		switch {
		case it == nil:
			panic(ErrNilClassType)
		case it.Kind() != reflect.Interface:
			panic(fmt.Errorf("%w: %s", ErrNotInterface, it))
		case !ptr.Implements(it):
			panic(fmt.Errorf("%w: %s does not implement %s", ErrNotImplemented, ptr, it))
		}
	}

	return &Class{concrete: concrete, interfaces: ifaces, src: src}
}

// ids returns the resolved identifiers, resolving them on first success.
// A failed resolution is not recorded.
func (c *Class) ids() classIDs {
	if p := c.resolved.Load(); p != nil {
		return *p
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if p := c.resolved.Load(); p != nil {
		return *p
	}
	reg := c.src()
	out := classIDs{
		self:       reg.IdentifierOf(c.concrete),
		interfaces: make([]apis.TypeIdentifier, len(c.interfaces)),
	}
	for i, it := range c.interfaces {
		out.interfaces[i] = reg.IdentifierOf(it)
	}
	c.resolved.Store(&out)
	return out
}

// Type returns the concrete type of the class.
func (c *Class) Type() reflect.Type { return c.concrete }

// TypeIdentifier returns the concrete type's identifier.
func (c *Class) TypeIdentifier() apis.TypeIdentifier { return c.ids().self }

// LibraryIdentifier returns the library that defines the concrete type.
func (c *Class) LibraryIdentifier() apis.LibraryIdentifier { return c.ids().self.Library() }

// Implements reports whether interfaceID is one of the declared capabilities.
// The concrete type's own identifier is not a capability.
func (c *Class) Implements(interfaceID apis.TypeIdentifier) bool {
	return slices.Contains(c.ids().interfaces, interfaceID)
}

// Is reports whether typeID is exactly the concrete type's identifier.
func (c *Class) Is(typeID apis.TypeIdentifier) bool {
	return c.ids().self == typeID
}

// Interfaces returns the declared capabilities, introducing interface first.
func (c *Class) Interfaces() []apis.TypeIdentifier {
	return slices.Clone(c.ids().interfaces)
}
