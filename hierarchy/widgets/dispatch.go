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
	"errors"
	"fmt"
	"io"

	"dirpx.dev/rtti"
	"dirpx.dev/rtti/hierarchy/construct"
)

var (
	// ErrUnsupportedType is returned when an object's concrete type has no
	// handler in a dispatch by concrete type.
	ErrUnsupportedType = errors.New("widgets: object does not correspond to a supported concrete type")
	// ErrCastFailed is returned when a cast fails after the target type was
	// positively identified.
	ErrCastFailed = errors.New("widgets: cast failed for an identified type")
)

// DispatchByConcreteType narrows obj to its concrete type and hands it to
// the processor of that type. Every supported type needs its own case;
// objects of any other type are rejected with ErrUnsupportedType.
func DispatchByConcreteType(w io.Writer, obj construct.IConstruct) error {
	switch {
	case obj.Is(rtti.TypeIdentifierOf[Checkbox]()):
		c, ok := rtti.AsConcrete[Checkbox](obj)
		if !ok {
			return fmt.Errorf("%w: Checkbox", ErrCastFailed)
		}
		processCheckbox(w, c)
	case obj.Is(rtti.TypeIdentifierOf[UIElement]()):
		u, ok := rtti.AsConcrete[UIElement](obj)
		if !ok {
			return fmt.Errorf("%w: UIElement", ErrCastFailed)
		}
		processUIElement(w, u)
	case obj.Is(rtti.TypeIdentifierOf[construct.Construct]()):
		c, ok := rtti.AsConcrete[construct.Construct](obj)
		if !ok {
			return fmt.Errorf("%w: Construct", ErrCastFailed)
		}
		processConstruct(w, c)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedType, obj.ConcreteTypeIdentifier())
	}
	return nil
}

// DispatchByImplementedInterface buckets obj by the most specific interface
// it implements. Cases run from most to least specific: every ICheckbox is
// also an IUIElement.
func DispatchByImplementedInterface(w io.Writer, obj construct.IConstruct) error {
	switch {
	case obj.Implements(rtti.TypeIdentifierOf[ICheckbox]()):
		c, ok := AsICheckbox(obj)
		if !ok {
			return fmt.Errorf("%w: ICheckbox", ErrCastFailed)
		}
		processAnyICheckbox(w, c)
	case obj.Implements(rtti.TypeIdentifierOf[IUIElement]()):
		u, ok := AsIUIElement(obj)
		if !ok {
			return fmt.Errorf("%w: IUIElement", ErrCastFailed)
		}
		processAnyIUIElement(w, u)
	default:
		// Every object of the hierarchy is an IConstruct already.
		processAnyIConstruct(w, obj)
	}
	return nil
}

func processCheckbox(w io.Writer, c *Checkbox) {
	fmt.Fprintln(w, "Processing a Checkbox instance!")
	c.OnClick(w)
}

func processUIElement(w io.Writer, u *UIElement) {
	fmt.Fprintln(w, "Processing a UIElement instance!")
	u.OnClick(w)
}

func processConstruct(w io.Writer, c *construct.Construct) {
	fmt.Fprintln(w, "Processing a Construct instance!")
	c.OnClick(w)
}

func processAnyICheckbox(w io.Writer, c ICheckbox) {
	fmt.Fprintln(w, "Processing a Checkbox instance OF ANY KIND!")
	c.OnClick(w)
}

func processAnyIUIElement(w io.Writer, u IUIElement) {
	fmt.Fprintln(w, "Processing a UIElement instance OF ANY KIND!")
	u.OnClick(w)
}

func processAnyIConstruct(w io.Writer, c construct.IConstruct) {
	fmt.Fprintln(w, "Processing a Construct instance OF ANY KIND!")
	c.OnClick(w)
}
