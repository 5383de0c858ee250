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
	"math/rand/v2"
	"testing"

	"github.com/ajroetker/go-pathfinder/hwy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// referencePath fills the full rows x cols cost matrix and returns its last
// row. It shares no code with the solvers.
func referencePath(wall []int32, rows, cols int) []int32 {
	cost := make([][]int32, rows)
	for t := range cost {
		cost[t] = make([]int32, cols)
	}
	copy(cost[0], wall[:cols])
	for t := 1; t < rows; t++ {
		for n := 0; n < cols; n++ {
			best := cost[t-1][n]
			for _, d := range []int{-1, 1} {
				if k := n + d; k >= 0 && k < cols && cost[t-1][k] < best {
					best = cost[t-1][k]
				}
			}
			cost[t][n] = wall[t*cols+n] + best
		}
	}
	return cost[rows-1]
}

func randomWall(rng *rand.Rand, rows, cols int) []int32 {
	wall := make([]int32, rows*cols)
	for i := range wall {
		wall[i] = int32(rng.IntN(2001) - 1000)
	}
	return wall
}

func runScalar(wall []int32, rows, cols, runs int) []int32 {
	return Scalar(wall, rows, cols, runs, make([]int32, cols), make([]int32, cols))
}

func runVector(wall []int32, rows, cols, runs, lanes int) []int32 {
	return VectorLanes(wall, rows, cols, runs, lanes, make([]int32, cols))
}

func TestBoundaryExample(t *testing.T) {
	wall := []int32{
		5, 2, 9, 1, 7,
		1, 1, 1, 1, 1,
	}
	want := []int32{3, 3, 2, 2, 2}

	assert.Equal(t, want, runScalar(wall, 2, 5, 1), "scalar")
	for lanes := 1; lanes <= 6; lanes++ {
		assert.Equal(t, want, runVector(wall, 2, 5, 1, lanes), "vector lanes=%d", lanes)
	}
}

func TestSingleRow(t *testing.T) {
	wall := []int32{4, -3, 8, 0, 2, 11, 7}

	assert.Equal(t, wall, runScalar(wall, 1, len(wall), 1))
	for _, lanes := range []int{1, 2, 4, 8} {
		assert.Equal(t, wall, runVector(wall, 1, len(wall), 1, lanes), "lanes=%d", lanes)
	}
}

func TestSingleColumn(t *testing.T) {
	// With one column there are no neighbors, so the result is the column sum.
	wall := []int32{3, 1, 4, 1, 5}
	want := []int32{14}

	assert.Equal(t, want, runScalar(wall, 5, 1, 1))
	assert.Equal(t, want, runVector(wall, 5, 1, 1, 4))
}

func TestMatchesReference(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	sizes := []struct{ rows, cols int }{
		{2, 2}, {3, 7}, {5, 16}, {8, 17}, {16, 33}, {20, 100}, {4, 255},
	}

	for _, sz := range sizes {
		t.Run(fmt.Sprintf("%dx%d", sz.rows, sz.cols), func(t *testing.T) {
			wall := randomWall(rng, sz.rows, sz.cols)
			want := referencePath(wall, sz.rows, sz.cols)

			assert.Equal(t, want, runScalar(wall, sz.rows, sz.cols, 1), "scalar")
			assert.Equal(t, want, runVector(wall, sz.rows, sz.cols, 1, hwy.MaxLanes[int32]()), "vector")
		})
	}
}

func TestLaneWidthInvariance(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	for _, cols := range []int{1, 2, 3, 5, 8, 9, 31, 64, 67} {
		rows := 1 + rng.IntN(12)
		wall := randomWall(rng, rows, cols)
		want := runScalar(wall, rows, cols, 1)

		for _, lanes := range []int{1, 2, 3, 4, 8, 16, cols, cols + 5} {
			got := runVector(wall, rows, cols, 1, lanes)
			require.Equal(t, -1, Diff(want, got), "rows=%d cols=%d lanes=%d", rows, cols, lanes)
		}
	}
}

func TestRowZeroUnchanged(t *testing.T) {
	g := RandomGrid(6, 13, 3)
	row0 := append([]int32(nil), g.Row(0)...)

	runScalar(g.Data, g.Rows, g.Cols, 2)
	runVector(g.Data, g.Rows, g.Cols, 2, 4)

	assert.Equal(t, row0, g.Row(0), "solvers must not write to the grid")
}

func TestRunsIdempotent(t *testing.T) {
	g := RandomGrid(9, 21, 5)
	once := runScalar(g.Data, g.Rows, g.Cols, 1)

	for _, runs := range []int{0, 2, 5} {
		assert.Equal(t, once, runScalar(g.Data, g.Rows, g.Cols, runs), "scalar runs=%d", runs)
		assert.Equal(t, once, runVector(g.Data, g.Rows, g.Cols, runs, 4), "vector runs=%d", runs)
	}
}

func TestScalarReturnedBuffer(t *testing.T) {
	tests := []struct {
		rows      int
		inScratch bool
	}{
		{1, false},
		{2, true},
		{3, false},
		{4, true},
	}

	for _, tt := range tests {
		for _, runs := range []int{1, 2, 3} {
			g := RandomGrid(tt.rows, 6, 9)
			result := make([]int32, 6)
			scratch := make([]int32, 6)
			row := Scalar(g.Data, g.Rows, g.Cols, runs, result, scratch)

			want := &result[0]
			if tt.inScratch {
				want = &scratch[0]
			}
			assert.Same(t, want, &row[0], "rows=%d runs=%d", tt.rows, runs)
		}
	}
}

func TestVectorInPlace(t *testing.T) {
	g := RandomGrid(4, 10, 2)
	result := make([]int32, 12)
	row := Vector(g.Data, g.Rows, g.Cols, 1, result)

	assert.Len(t, row, g.Cols)
	assert.Same(t, &result[0], &row[0])
	assert.Equal(t, []int32{0, 0}, result[10:], "elements past cols are untouched")
}

func TestEmptyGrid(t *testing.T) {
	result := []int32{9, 9}
	scratch := []int32{9, 9}

	assert.Empty(t, Scalar(nil, 0, 2, 1, result, scratch))
	assert.Empty(t, Scalar(nil, 3, 0, 1, result, scratch))
	assert.Empty(t, VectorLanes(nil, 0, 2, 1, 4, result))
	assert.Empty(t, Vector(nil, 2, 0, 1, nil))
	assert.Equal(t, []int32{9, 9}, result)
}

func TestPanics(t *testing.T) {
	wall := make([]int32, 12)

	assert.PanicsWithValue(t, "wall slice too small", func() {
		runScalar(wall, 4, 4, 1)
	})
	assert.PanicsWithValue(t, "result slice too small", func() {
		Scalar(wall, 3, 4, 1, make([]int32, 3), make([]int32, 4))
	})
	assert.PanicsWithValue(t, "scratch slice too small", func() {
		Scalar(wall, 3, 4, 1, make([]int32, 4), nil)
	})
	assert.PanicsWithValue(t, "result slice too small", func() {
		VectorLanes(wall, 3, 4, 1, 2, make([]int32, 2))
	})
	assert.PanicsWithValue(t, "lanes must be positive", func() {
		VectorLanes(wall, 3, 4, 1, 0, make([]int32, 4))
	})
}

func TestBaseStepRow(t *testing.T) {
	row := []int32{5, 2, 9, 1, 7, 3, 3}
	next := []int32{1, 2, 3, 4, 5, 6, 7}
	// min over neighbors: [2, 2, 1, 1, 1, 3, 3]
	want := []int32{3, 4, 4, 5, 6, 9, 10}

	for lanes := 1; lanes <= 8; lanes++ {
		got := append([]int32(nil), row...)
		BaseStepRow(got, next, lanes)
		assert.Equal(t, want, got, "lanes=%d", lanes)
	}

	BaseStepRow(nil, nil, 4)
}

func TestRowBuffers(t *testing.T) {
	a := make([]int32, 1)
	b := make([]int32, 1)
	var bufs rowBuffers

	bufs.reset(a, b)
	assert.Same(t, &a[0], &bufs.dst[0])
	assert.Same(t, &b[0], &bufs.src[0])

	bufs.swap()
	assert.Same(t, &b[0], &bufs.dst[0])
	assert.Same(t, &a[0], &bufs.src[0])
}

func BenchmarkScalar(b *testing.B) {
	for _, cols := range []int{256, 4096, 65536} {
		g := RandomGrid(100, cols, 1)
		result := make([]int32, cols)
		scratch := make([]int32, cols)
		b.Run(fmt.Sprintf("cols_%d", cols), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				Scalar(g.Data, g.Rows, g.Cols, 1, result, scratch)
			}
		})
	}
}

func BenchmarkVector(b *testing.B) {
	for _, cols := range []int{256, 4096, 65536} {
		g := RandomGrid(100, cols, 1)
		result := make([]int32, cols)
		b.Run(fmt.Sprintf("cols_%d", cols), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				Vector(g.Data, g.Rows, g.Cols, 1, result)
			}
		})
	}
}
