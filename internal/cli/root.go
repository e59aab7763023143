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

// Package cli implements the rdh command line: a tour of the example
// hierarchy through the identity and casting API.
package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"dirpx.dev/rtti"
	"dirpx.dev/rtti/config"
	"dirpx.dev/rtti/hierarchy/widgets"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
	LogLevel   string
	Format     string // "text" | "json" | "yaml"
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json", "yaml"}

// NewRootCommand creates the root command for the rdh CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "rdh",
		Short: "rdh - runtime type identity explorer",
		Long: `Explore the example type hierarchy through the rtti identity and casting API.

The hierarchy spans two libraries: construct (IConstruct, Construct) and
widgets (IUIElement, UIElement, ICheckbox, Checkbox), each with its own
library identifier.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			return setup(opts, cmd)
		},
	}

	// Global flags
	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "path to a YAML configuration file")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "log level (overrides the configuration file)")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|json|yaml)")

	// Add subcommands
	cmd.AddCommand(NewTypesCommand(opts))
	cmd.AddCommand(NewInspectCommand(opts))
	cmd.AddCommand(NewDispatchCommand(opts))
	cmd.AddCommand(NewMetricsCommand(opts))

	return cmd
}

// setup applies the configuration to the global rtti state and initializes
// the example hierarchy.
func setup(opts *RootOptions, cmd *cobra.Command) error {
	file := config.DefaultFile()
	if opts.ConfigPath != "" {
		f, err := config.Load(opts.ConfigPath)
		if err != nil {
			return WrapExitError(ExitCommandError, "load configuration", err)
		}
		file = f
	}
	if opts.LogLevel != "" {
		file.Logging.Level = opts.LogLevel
	}

	cfgOpts, err := file.Options(cmd.ErrOrStderr())
	if err != nil {
		return WrapExitError(ExitCommandError, "configure logging", err)
	}
	rtti.SetConfig(config.NewConfig(cfgOpts...))
	widgets.Init()
	return nil
}
