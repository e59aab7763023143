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
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"dirpx.dev/rtti"
	"dirpx.dev/rtti/hierarchy/construct"
	"dirpx.dev/rtti/hierarchy/widgets"
	"dirpx.dev/rtti/metrics"
)

// MetricsOptions holds flags for the metrics command.
type MetricsOptions struct {
	Exercise bool
}

// NewMetricsCommand creates the metrics command.
func NewMetricsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &MetricsOptions{}

	cmd := &cobra.Command{
		Use:   "metrics",
		Short: "Print the registry and router metrics in Prometheus text format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Exercise {
				if _, err := runDispatch(""); err != nil {
					return err
				}
			}
			if err := writeMetrics(cmd.OutOrStdout()); err != nil {
				return WrapExitError(ExitFailure, "gather metrics", err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.Exercise, "exercise", true, "run the dispatch examples before gathering")

	return cmd
}

func writeMetrics(w io.Writer) error {
	c := metrics.NewCollector(rtti.Registry(),
		construct.Router(),
		widgets.UIElementRouter(),
		widgets.CheckboxRouter(),
	)

	reg := prometheus.NewRegistry()
	if err := reg.Register(c); err != nil {
		return err
	}
	families, err := reg.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
