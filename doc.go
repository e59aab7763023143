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

// Package rtti provides runtime type identity and safe casting across
// independently built libraries.
//
// Every participating type, interface or struct, is registered once with a
// pair of caller-chosen UUIDs: its own discriminator and the discriminator
// of the library that defines it. From then on any value can answer two
// identity questions:
//
//   - Divine(v) reports the identity of the static type through which v is
//     reached. A value held in an IConstruct variable answers IConstruct.
//
//   - v.ConcreteTypeIdentifier() reports the identity of the concrete type
//     underneath, whatever the view. Together with Is and Implements it is
//     provided by apis.ConcreteDivinator, which every concrete type forwards
//     to its divination.Class.
//
// Is is exact type equality and is false for ancestors and interfaces.
// Implements asks whether the concrete type declares a capability.
//
// # Casting
//
// Upcast widens to an interface and is checked by the compiler.
// AsConcrete narrows an abstract handle to *C, and succeeds exactly when
// obj.Is(C). Downcasts to an intermediate interface go through a
// transmutation.Router, one per target interface, keyed by the library of
// the object's concrete type. Each library registers one handler per router
// it contributes to, so a library can narrow to a capability implemented by
// a module it has never heard of.
//
// # Global state
//
// The package holds a read-mostly snapshot of configuration, registry,
// naming resolver and builder. Readers load it atomically and never lock.
// Writers (SetConfig, SetBuilder, SetRegistry, SetAll) build a new snapshot
// under a mutex and swap it in. A rebuilt registry keeps every registered
// type and its identifiers. SetRegistry and PinRegistry pin the registry so
// later reconfiguration leaves it alone until UnpinRegistry.
//
// All components also take an explicit apis.Registry, so tests and
// embedders can use isolated registries without touching the global state.
//
// # Initialization
//
// A library exposes an Init function guarded by sync.Once. Init first calls
// the Init of the library it extends, then registers its types and finally
// its downcast handlers:
//
//	func Init() {
//		once.Do(func() {
//			construct.Init()
//			rtti.Register[IUIElement](IUIElementUUID, LibraryUUID)
//			rtti.Register[UIElement](UIElementUUID, LibraryUUID)
//			...
//		})
//	}
//
// Registration errors (duplicate names, reused discriminators) are
// programmer errors: they are logged and panic during startup.
package rtti
