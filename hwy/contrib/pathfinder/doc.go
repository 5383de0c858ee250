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

// Package pathfinder computes the minimum-cost path through a 2D grid of
// int32 weights using dynamic programming (the Rodinia "pathfinder"
// benchmark).
//
// # Recurrence
//
// The grid is stored row-major with rows*cols elements. Row 0 of the result
// is row 0 of the grid. Every following row is
//
//	dst[n] = grid[(t+1)*cols + n] + min(src[n-1], src[n], src[n+1])
//
// where neighbors outside the row are dropped from the minimum. After the
// last row, each element holds the cost of the cheapest top-to-bottom path
// ending in that column.
//
// # Solvers
//
// Two solvers produce identical results:
//   - Scalar(wall, rows, cols, runs, result, scratch) - reference loop that
//     double-buffers the previous and current row
//   - VectorLanes(wall, rows, cols, runs, lanes, result) - processes each row
//     in groups of up to lanes elements with hwy lane operations; Vector uses
//     hwy.MaxLanes[int32]()
//
// The vector solver reconstructs each element's left and right neighbor by
// sliding the group one lane up and one lane down. The lanes that fall off
// the group edges are refilled with two carried values: the last element of
// the previous group (aux) and the first element of the next group (aux2).
// At the row edges an element is its own missing neighbor, which leaves the
// minimum unchanged. Groups within a row must run left to right because aux
// is read from the previous group before that group is overwritten.
//
// # Example Usage
//
//	g := pathfinder.RandomGrid(100, 10000, 1)
//	result := make([]int32, g.Cols)
//	row := pathfinder.Vector(g.Data, g.Rows, g.Cols, 1, result)
//	cost := pathfinder.MinCost(row)
package pathfinder
