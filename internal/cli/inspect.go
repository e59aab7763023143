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

package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"dirpx.dev/rtti"
	"dirpx.dev/rtti/apis"
	"dirpx.dev/rtti/hierarchy/construct"
	"dirpx.dev/rtti/hierarchy/widgets"
)

// IdentityRow is the identity of one view of a demo object.
type IdentityRow struct {
	View            string `json:"view" yaml:"view"`
	StaticType      string `json:"static_type" yaml:"static_type"`
	StaticLibrary   string `json:"static_library" yaml:"static_library"`
	ConcreteType    string `json:"concrete_type" yaml:"concrete_type"`
	ConcreteLibrary string `json:"concrete_library" yaml:"concrete_library"`
}

// CheckRow is the answer of one view to Implements and Is for one type.
type CheckRow struct {
	View       string `json:"view" yaml:"view"`
	Target     string `json:"target" yaml:"target"`
	Implements bool   `json:"implements" yaml:"implements"`
	Is         bool   `json:"is" yaml:"is"`
}

// InspectResult is the output of the inspect command.
type InspectResult struct {
	Identities []IdentityRow `json:"identities" yaml:"identities"`
	Checks     []CheckRow    `json:"checks" yaml:"checks"`
}

// Text implements Texter.
func (r InspectResult) Text(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "VIEW\tSTATIC TYPE\tCONCRETE TYPE")
	for _, row := range r.Identities {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", row.View, row.StaticType, row.ConcreteType)
	}
	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "VIEW\tTARGET\tIMPLEMENTS\tIS")
	for _, row := range r.Checks {
		fmt.Fprintf(tw, "%s\t%s\t%t\t%t\n", row.View, row.Target, row.Implements, row.Is)
	}
	return tw.Flush()
}

// NewInspectCommand creates the inspect command.
func NewInspectCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect",
		Short: "Show static and concrete identities of the demo objects",
		Long: `Build a Construct, a UIElement and a Checkbox and query each of them
through every interface it can be held as: static identity (Divine),
concrete identity, and Implements / Is against every registered type.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			return formatter.Write(inspect())
		},
	}
}

// view is one way of holding a demo object.
type view struct {
	name   string
	obj    apis.Object
	static apis.Divinator
}

// demoViews returns every demo object under every static type it can be
// held as. The static divinator is taken at the point where the static type
// is known.
func demoViews() []view {
	c := construct.New()
	u := widgets.NewUIElement()
	x := widgets.NewCheckbox()

	var cAsI construct.IConstruct = c
	var uAsC construct.IConstruct = u
	var uAsU widgets.IUIElement = u
	var xAsC construct.IConstruct = x
	var xAsU widgets.IUIElement = x
	var xAsX widgets.ICheckbox = x

	return []view{
		{"*Construct", c, rtti.Divine(c)},
		{"*Construct as IConstruct", cAsI, rtti.Divine(cAsI)},
		{"*UIElement", u, rtti.Divine(u)},
		{"*UIElement as IConstruct", uAsC, rtti.Divine(uAsC)},
		{"*UIElement as IUIElement", uAsU, rtti.Divine(uAsU)},
		{"*Checkbox", x, rtti.Divine(x)},
		{"*Checkbox as IConstruct", xAsC, rtti.Divine(xAsC)},
		{"*Checkbox as IUIElement", xAsU, rtti.Divine(xAsU)},
		{"*Checkbox as ICheckbox", xAsX, rtti.Divine(xAsX)},
	}
}

func inspect() InspectResult {
	reg := rtti.Registry()
	entries := reg.Entries()
	names := make(map[apis.TypeIdentifier]string, len(entries))
	for _, e := range entries {
		names[e.ID] = e.Name
	}

	var res InspectResult
	for _, v := range demoViews() {
		res.Identities = append(res.Identities, IdentityRow{
			View:            v.name,
			StaticType:      names[v.static.TypeIdentifier()],
			StaticLibrary:   v.static.LibraryIdentifier().String(),
			ConcreteType:    names[v.obj.ConcreteTypeIdentifier()],
			ConcreteLibrary: v.obj.ConcreteLibraryIdentifier().String(),
		})
		for _, e := range entries {
			res.Checks = append(res.Checks, CheckRow{
				View:       v.name,
				Target:     e.Name,
				Implements: v.obj.Implements(e.ID),
				Is:         v.obj.Is(e.ID),
			})
		}
	}
	return res
}
