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
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ajroetker/go-pathfinder/hwy"
	"github.com/ajroetker/go-pathfinder/hwy/contrib/pathfinder"
)

var errMismatch = errors.New("scalar and vector results differ")

type runOptions struct {
	rows   int
	cols   int
	runs   int
	lanes  int
	seed   uint64
	method string
}

func newRunCmd() *cobra.Command {
	var opts runOptions
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Solve a random grid and compare the solvers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPathfinder(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.IntVar(&opts.rows, "rows", 100, "number of grid rows")
	f.IntVar(&opts.cols, "cols", 10000, "number of grid columns")
	f.IntVar(&opts.runs, "runs", 1, "repetitions of the full computation per solver")
	f.IntVar(&opts.lanes, "lanes", 0, "vector group width in int32 lanes (0 = detected)")
	f.Uint64Var(&opts.seed, "seed", 1, "seed for the grid generator")
	f.StringVar(&opts.method, "method", "both", "solver to run: scalar, vector or both")
	return cmd
}

// parseMethods expands "both" to scalar then vector.
func parseMethods(s string) ([]pathfinder.Method, error) {
	if strings.EqualFold(strings.TrimSpace(s), "both") {
		return []pathfinder.Method{pathfinder.MethodScalar, pathfinder.MethodVector}, nil
	}
	m, err := pathfinder.ParseMethod(s)
	if err != nil {
		return nil, err
	}
	return []pathfinder.Method{m}, nil
}

func runPathfinder(cmd *cobra.Command, o runOptions) error {
	if o.rows <= 0 || o.cols <= 0 {
		return fmt.Errorf("%w: got %dx%d", pathfinder.ErrEmptyGrid, o.rows, o.cols)
	}
	methods, err := parseMethods(o.method)
	if err != nil {
		return err
	}

	lanes := o.lanes
	if lanes == 0 {
		lanes = hwy.MaxLanes[int32]()
	}
	out := cmd.OutOrStdout()
	upper := cases.Upper(language.English)
	title := cases.Title(language.English)

	fmt.Fprintf(out, "grid: %d x %d, seed %d, runs %d\n", o.rows, o.cols, o.seed, max(o.runs, 1))
	fmt.Fprintf(out, "dispatch: %s (%d bytes), vector lanes: %d\n",
		upper.String(hwy.CurrentName()), hwy.CurrentWidth(), lanes)

	g := pathfinder.RandomGrid(o.rows, o.cols, o.seed)
	rows := make([][]int32, len(methods))
	for i, m := range methods {
		start := time.Now()
		row, err := pathfinder.Solve(g, pathfinder.Options{Method: m, Runs: o.runs, Lanes: o.lanes})
		if err != nil {
			return fmt.Errorf("%s solver: %w", m, err)
		}
		elapsed := time.Since(start)
		rows[i] = row

		fmt.Fprintf(out, "%-7s min cost %d, %v total, %v per run\n",
			title.String(m.String()), pathfinder.MinCost(row), elapsed, elapsed/time.Duration(max(o.runs, 1)))
	}

	if len(rows) == 2 {
		if i := pathfinder.Diff(rows[0], rows[1]); i >= 0 {
			return fmt.Errorf("%w at column %d: %s=%d %s=%d",
				errMismatch, i, methods[0], rows[0][i], methods[1], rows[1][i])
		}
		fmt.Fprintln(out, "results match")
	}
	return nil
}
