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
)

// TypeRow describes one registered type.
type TypeRow struct {
	Name    string `json:"name" yaml:"name"`
	GoType  string `json:"go_type" yaml:"go_type"`
	Kind    string `json:"kind" yaml:"kind"`
	Type    string `json:"type_uuid" yaml:"type_uuid"`
	Library string `json:"library_uuid" yaml:"library_uuid"`
}

// TypesResult is the output of the types command.
type TypesResult struct {
	Types []TypeRow `json:"types" yaml:"types"`
}

// Text implements Texter.
func (r TypesResult) Text(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tKIND\tTYPE UUID\tLIBRARY UUID")
	for _, t := range r.Types {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", t.Name, t.Kind, t.Type, t.Library)
	}
	return tw.Flush()
}

// NewTypesCommand creates the types command.
func NewTypesCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the registered types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			return formatter.Write(listTypes())
		},
	}
}

func listTypes() TypesResult {
	var res TypesResult
	for _, e := range rtti.Registry().Entries() {
		res.Types = append(res.Types, TypeRow{
			Name:    e.Name,
			GoType:  e.Type.String(),
			Kind:    e.Type.Kind().String(),
			Type:    e.ID.UUID().String(),
			Library: e.ID.Library().String(),
		})
	}
	return res
}
