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

package pathfinder

import (
	"fmt"
	"strings"

	"github.com/ajroetker/go-pathfinder/hwy"
)

// Method selects the solver used by Solve.
type Method int

const (
	MethodVector Method = iota
	MethodScalar
)

func (m Method) String() string {
	switch m {
	case MethodVector:
		return "vector"
	case MethodScalar:
		return "scalar"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod maps "scalar" or "vector" (case-insensitive) to a Method.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "vector":
		return MethodVector, nil
	case "scalar":
		return MethodScalar, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
}

// Options configures Solve.
type Options struct {
	// Method selects the solver.
	Method Method
	// Runs is the repetition count; values below 1 are treated as 1.
	Runs int
	// Lanes is the maximum vector group width. Zero means
	// hwy.MaxLanes[int32](). Ignored by MethodScalar.
	Lanes int
}

// DefaultOptions returns a single vector run at the detected lane width.
func DefaultOptions() Options {
	return Options{Method: MethodVector, Runs: 1}
}

// Solve validates g, allocates the row buffers and returns the final row.
func Solve(g Grid, opts Options) ([]int32, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if opts.Lanes < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadLanes, opts.Lanes)
	}

	switch opts.Method {
	case MethodScalar:
		result := make([]int32, g.Cols)
		scratch := make([]int32, g.Cols)
		return Scalar(g.Data, g.Rows, g.Cols, opts.Runs, result, scratch), nil
	case MethodVector:
		lanes := opts.Lanes
		if lanes == 0 {
			lanes = hwy.MaxLanes[int32]()
		}
		result := make([]int32, g.Cols)
		return VectorLanes(g.Data, g.Rows, g.Cols, opts.Runs, lanes, result), nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownMethod, opts.Method)
	}
}

// Diff returns the index of the first position where a and b differ, or
// -1 if they are equal. Slices of different length differ at the length of
// the shorter one.
func Diff(a, b []int32) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	if len(a) != len(b) {
		return n
	}
	return -1
}

// MinCost returns the cheapest path cost in a final row, using the same
// lane groups as the vector solver.
// Returns 0 for an empty row.
func MinCost(row []int32) int32 {
	if len(row) == 0 {
		return 0
	}
	lanes := hwy.MaxLanes[int32]()
	best := row[0]
	for i := 0; i < len(row); i += lanes {
		best = min(best, hwy.ReduceMin(hwy.Load(row[i:])))
	}
	return best
}
