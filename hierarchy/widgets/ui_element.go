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

package widgets

import (
	"fmt"
	"io"
	"reflect"

	"dirpx.dev/rtti"
	"dirpx.dev/rtti/apis"
	"dirpx.dev/rtti/hierarchy/construct"
	"dirpx.dev/rtti/transmutation"
)

// IUIElement is a construct that can be shown or hidden.
type IUIElement interface {
	construct.IConstruct

	Visible() bool
	SetVisible(visible bool)
}

// UIElement is a visible Construct.
type UIElement struct {
	construct.Construct
	hidden bool
}

// NewUIElement returns a visible UIElement named construct.DefaultName.
func NewUIElement() *UIElement {
	return &UIElement{Construct: *construct.New()}
}

func (u *UIElement) Visible() bool           { return !u.hidden }
func (u *UIElement) SetVisible(visible bool) { u.hidden = !visible }

// OnClick lets Construct handle the click first.
func (u *UIElement) OnClick(w io.Writer) {
	u.Construct.OnClick(w)
	fmt.Fprintln(w, `on_click handled by UIElement implementation! "Inheritance" FTW!`)
}

var uiElementClass = rtti.NewClass(reflect.TypeFor[UIElement](),
	reflect.TypeFor[IUIElement](), reflect.TypeFor[construct.IConstruct]())

func (*UIElement) ConcreteTypeIdentifier() apis.TypeIdentifier {
	return uiElementClass.TypeIdentifier()
}
func (*UIElement) ConcreteLibraryIdentifier() apis.LibraryIdentifier {
	return uiElementClass.LibraryIdentifier()
}
func (*UIElement) Implements(id apis.TypeIdentifier) bool { return uiElementClass.Implements(id) }
func (*UIElement) Is(id apis.TypeIdentifier) bool         { return uiElementClass.Is(id) }

var uiElementRouter = rtti.NewRouter[IUIElement]()

// UIElementRouter returns the IUIElement downcast router.
func UIElementRouter() *transmutation.Router[IUIElement] {
	return uiElementRouter
}

// AsIUIElement narrows obj to IUIElement.
func AsIUIElement(obj apis.Object) (IUIElement, bool) {
	return uiElementRouter.Downcast(obj)
}
