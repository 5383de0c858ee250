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

import "github.com/ajroetker/go-pathfinder/hwy"

// Scalar computes the final row of the recurrence with the reference
// scalar loop and returns the buffer holding it, either result[:cols] or
// scratch[:cols].
//
// Parameters:
//   - wall: grid in row-major order with shape [rows, cols]
//   - rows, cols: grid dimensions
//   - numRuns: number of times to repeat the whole computation; every run
//     restarts from row 0 and values below 1 are treated as 1
//   - result, scratch: two caller-owned row buffers of length >= cols
//
// An empty grid (rows or cols <= 0) returns result[:0] without touching
// either buffer.
//
// Panics if:
//   - len(wall) < rows * cols
//   - len(result) < cols
//   - len(scratch) < cols
//
// Example:
//
//	wall := []int32{
//		5, 2, 9, 1, 7,
//		1, 1, 1, 1, 1,
//	}
//	result := make([]int32, 5)
//	scratch := make([]int32, 5)
//	row := Scalar(wall, 2, 5, 1, result, scratch)  // row = [3, 3, 2, 2, 2]
func Scalar(wall []int32, rows, cols, numRuns int, result, scratch []int32) []int32 {
	if rows <= 0 || cols <= 0 {
		return result[:0]
	}
	checkSizes(wall, rows, cols, result)
	if len(scratch) < cols {
		panic("scratch slice too small")
	}

	return scalarImpl(wall, rows, cols, max(numRuns, 1), result[:cols], scratch[:cols])
}

// Vector computes the same final row as Scalar, processing each row in
// groups of hwy.MaxLanes[int32]() elements. The computation runs in place
// in result, and result[:cols] is returned.
func Vector(wall []int32, rows, cols, numRuns int, result []int32) []int32 {
	return VectorLanes(wall, rows, cols, numRuns, hwy.MaxLanes[int32](), result)
}

// VectorLanes is Vector with an explicit maximum group width. Each group
// starting at column n holds min(lanes, cols-n) elements, so lanes does not
// need to divide cols. The result is independent of lanes.
//
// Panics if lanes < 1, or under the same conditions as Scalar for wall and
// result.
func VectorLanes(wall []int32, rows, cols, numRuns, lanes int, result []int32) []int32 {
	if lanes < 1 {
		panic("lanes must be positive")
	}
	if rows <= 0 || cols <= 0 {
		return result[:0]
	}
	checkSizes(wall, rows, cols, result)

	return vectorImpl(wall, rows, cols, max(numRuns, 1), lanes, result[:cols])
}

func checkSizes(wall []int32, rows, cols int, result []int32) {
	if len(wall) < rows*cols {
		panic("wall slice too small")
	}
	if len(result) < cols {
		panic("result slice too small")
	}
}
