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

// vectorImpl runs the recurrence in place in row.
func vectorImpl(wall []int32, rows, cols, numRuns, lanes int, row []int32) []int32 {
	for range numRuns {
		for n := 0; n < cols; n += lanes {
			hwy.Store(hwy.LoadN(wall[n:cols], lanes), row[n:])
		}

		for t := 0; t < rows-1; t++ {
			BaseStepRow(row, wall[(t+1)*cols:(t+2)*cols], lanes)
		}
	}
	return row
}

// BaseStepRow replaces row with the next row of the recurrence:
//
//	row[n] = next[n] + min(row[n-1], row[n], row[n+1])
//
// processing groups of up to lanes elements from left to right.
// PRECONDITION: len(next) >= len(row), lanes >= 1.
//
// row is updated in place. aux holds the last element of the previous
// group as it was before that group was stored, and aux2 is read from the
// next group, which has not been written yet.
func BaseStepRow(row, next []int32, lanes int) {
	cols := len(row)
	if cols == 0 {
		return
	}

	// row[0] has no left neighbor; using itself leaves the minimum unchanged.
	aux := row[0]
	for n := 0; n < cols; {
		x := hwy.LoadN(row[n:], lanes)
		gvl := x.NumLanes()

		var aux2 int32
		if n+gvl >= cols {
			aux2 = row[n+gvl-1]
		} else {
			aux2 = row[n+gvl]
		}

		left := hwy.Slide1Up(x, aux)
		right := hwy.Slide1Down(x, aux2)
		m := hwy.Min(hwy.Min(x, left), right)
		sum := hwy.Add(hwy.LoadN(next[n:], gvl), m)

		aux = hwy.GetLane(x, gvl-1)
		hwy.Store(sum, row[n:])
		n += gvl
	}
}
