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
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"dirpx.dev/rtti/hierarchy/construct"
	"dirpx.dev/rtti/hierarchy/widgets"
)

// Dispatch modes.
const (
	ModeConcrete  = "concrete"
	ModeInterface = "interface"
)

// DispatchRun is the transcript of dispatching one demo object.
type DispatchRun struct {
	Mode   string   `json:"mode" yaml:"mode"`
	Object string   `json:"object" yaml:"object"`
	Output []string `json:"output" yaml:"output"`
}

// DispatchResult is the output of the dispatch command.
type DispatchResult struct {
	Runs []DispatchRun `json:"runs" yaml:"runs"`
}

// Text implements Texter.
func (r DispatchResult) Text(w io.Writer) error {
	for _, run := range r.Runs {
		if _, err := fmt.Fprintf(w, "[%s] %s\n", run.Mode, run.Object); err != nil {
			return err
		}
		for _, line := range run.Output {
			if _, err := fmt.Fprintf(w, "  %s\n", line); err != nil {
				return err
			}
		}
	}
	return nil
}

// DispatchOptions holds flags for the dispatch command.
type DispatchOptions struct {
	Mode string
}

// NewDispatchCommand creates the dispatch command.
func NewDispatchCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DispatchOptions{}

	cmd := &cobra.Command{
		Use:   "dispatch",
		Short: "Run the type dispatch examples over the demo objects",
		Long: `Dispatch a Construct, a UIElement and a Checkbox, all held as IConstruct.

  concrete   narrow each object to its exact concrete type (Is + AsConcrete)
  interface  bucket each object by the most specific interface it implements
             (Implements + downcast router)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := runDispatch(opts.Mode)
			if err != nil {
				return err
			}
			formatter := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			return formatter.Write(res)
		},
	}

	cmd.Flags().StringVarP(&opts.Mode, "mode", "m", "",
		fmt.Sprintf("dispatch mode (%s|%s); both when empty", ModeConcrete, ModeInterface))

	return cmd
}

type dispatchFunc func(io.Writer, construct.IConstruct) error

func runDispatch(mode string) (DispatchResult, error) {
	modes := []string{ModeConcrete, ModeInterface}
	switch mode {
	case "":
	case ModeConcrete, ModeInterface:
		modes = []string{mode}
	default:
		return DispatchResult{}, NewExitError(ExitCommandError,
			fmt.Sprintf("invalid mode %q: must be %s or %s", mode, ModeConcrete, ModeInterface))
	}

	var res DispatchResult
	for _, m := range modes {
		fn := dispatchFunc(widgets.DispatchByConcreteType)
		if m == ModeInterface {
			fn = widgets.DispatchByImplementedInterface
		}
		for _, obj := range demoObjects() {
			var buf bytes.Buffer
			if err := fn(&buf, obj.obj); err != nil {
				return DispatchResult{}, WrapExitError(ExitFailure, "dispatch "+obj.name, err)
			}
			res.Runs = append(res.Runs, DispatchRun{
				Mode:   m,
				Object: obj.name,
				Output: strings.Split(strings.TrimRight(buf.String(), "\n"), "\n"),
			})
		}
	}
	return res, nil
}

type demoObject struct {
	name string
	obj  construct.IConstruct
}

func demoObjects() []demoObject {
	return []demoObject{
		{"Construct", construct.New()},
		{"UIElement", widgets.NewUIElement()},
		{"Checkbox", widgets.NewCheckbox()},
	}
}
