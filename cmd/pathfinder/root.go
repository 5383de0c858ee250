// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-pathfinder/internal/cpuinfo"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "pathfinder",
		Short:         "Minimum-cost grid path benchmark with scalar and vector solvers",
		SilenceUsage:  true,
	}
	root.AddCommand(newRunCmd(), newCPUInfoCmd())
	return root
}

func newCPUInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cpuinfo",
		Short: "Print the detected dispatch target and CPU features",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cpuinfo.Write(cmd.OutOrStdout())
		},
	}
}
