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

// Package widgets extends the construct library with UI types. It knows
// construct, but construct does not know it: abstract handles are narrowed
// to IUIElement and ICheckbox through this package's routers, and the
// construct router learns about UIElement and Checkbox from Init.
package widgets

import (
	"sync"

	"github.com/google/uuid"

	"dirpx.dev/rtti"
	"dirpx.dev/rtti/hierarchy/construct"
	"dirpx.dev/rtti/transmutation"
)

var (
	// LibraryUUID identifies this library.
	LibraryUUID = uuid.MustParse("1f210cc2-799f-4bd0-9669-ea80610818b8")
	// IUIElementUUID identifies IUIElement.
	IUIElementUUID = uuid.MustParse("e17c2f16-707f-430c-9489-b31ee9334742")
	// UIElementUUID identifies UIElement.
	UIElementUUID = uuid.MustParse("a2a200a8-de27-4bf9-934f-44626ae3873f")
	// ICheckboxUUID identifies ICheckbox.
	ICheckboxUUID = uuid.MustParse("36917d90-759b-0f4e-9a8b-ed040aaa902b")
	// CheckboxUUID identifies Checkbox.
	CheckboxUUID = uuid.MustParse("0fa46ec9-27fc-a74b-a732-0ea673cd5d68")
)

var once sync.Once

// Init initializes construct, then registers this library's types and its
// downcast handlers. It is safe to call more than once.
func Init() {
	once.Do(func() {
		construct.Init()

		rtti.Register[IUIElement](IUIElementUUID, LibraryUUID)
		rtti.Register[UIElement](UIElementUUID, LibraryUUID)
		rtti.Register[ICheckbox](ICheckboxUUID, LibraryUUID)
		rtti.Register[Checkbox](CheckboxUUID, LibraryUUID)

		lib := rtti.LibraryIdentifierOf[UIElement]()

		hc := rtti.NewLibraryHandler[construct.IConstruct]()
		transmutation.Include(hc, func(u *UIElement) construct.IConstruct { return u })
		transmutation.Include(hc, func(c *Checkbox) construct.IConstruct { return c })
		construct.Router().RegisterHandler(lib, hc)

		hu := rtti.NewLibraryHandler[IUIElement]()
		transmutation.Include(hu, func(u *UIElement) IUIElement { return u })
		transmutation.Include(hu, func(c *Checkbox) IUIElement { return c })
		uiElementRouter.RegisterHandler(lib, hu)

		hx := rtti.NewLibraryHandler[ICheckbox]()
		transmutation.Include(hx, func(c *Checkbox) ICheckbox { return c })
		checkboxRouter.RegisterHandler(lib, hx)
	})
}
