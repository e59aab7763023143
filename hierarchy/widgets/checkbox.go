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

// ICheckbox is a UI element with a checked state.
type ICheckbox interface {
	IUIElement

	Checked() bool
	SetChecked(checked bool)
}

// Checkbox is a UIElement with a checked state.
type Checkbox struct {
	UIElement
	checked bool
}

// NewCheckbox returns an unchecked, visible Checkbox.
func NewCheckbox() *Checkbox {
	return &Checkbox{UIElement: *NewUIElement()}
}

func (c *Checkbox) Checked() bool           { return c.checked }
func (c *Checkbox) SetChecked(checked bool) { c.checked = checked }

// OnClick lets UIElement handle the click first.
func (c *Checkbox) OnClick(w io.Writer) {
	c.UIElement.OnClick(w)
	fmt.Fprintln(w, `on_click handled by Checkbox implementation! "Inheritance" FTW!`)
}

var checkboxClass = rtti.NewClass(reflect.TypeFor[Checkbox](),
	reflect.TypeFor[ICheckbox](),
	reflect.TypeFor[IUIElement](), reflect.TypeFor[construct.IConstruct]())

func (*Checkbox) ConcreteTypeIdentifier() apis.TypeIdentifier {
	return checkboxClass.TypeIdentifier()
}
func (*Checkbox) ConcreteLibraryIdentifier() apis.LibraryIdentifier {
	return checkboxClass.LibraryIdentifier()
}
func (*Checkbox) Implements(id apis.TypeIdentifier) bool { return checkboxClass.Implements(id) }
func (*Checkbox) Is(id apis.TypeIdentifier) bool         { return checkboxClass.Is(id) }

var checkboxRouter = rtti.NewRouter[ICheckbox]()

// CheckboxRouter returns the ICheckbox downcast router.
func CheckboxRouter() *transmutation.Router[ICheckbox] {
	return checkboxRouter
}

// AsICheckbox narrows obj to ICheckbox.
func AsICheckbox(obj apis.Object) (ICheckbox, bool) {
	return checkboxRouter.Downcast(obj)
}
