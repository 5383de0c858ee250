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
)

// Grid is a dense row-major matrix of path weights. Solvers treat it as
// read-only.
type Grid struct {
	Data []int32
	Rows int
	Cols int
}

// NewGrid wraps data as a rows x cols grid without copying it.
func NewGrid(data []int32, rows, cols int) (Grid, error) {
	g := Grid{Data: data, Rows: rows, Cols: cols}
	if err := g.Validate(); err != nil {
		return Grid{}, err
	}
	return g, nil
}

// Validate checks the grid dimensions against its backing slice.
func (g Grid) Validate() error {
	if g.Rows <= 0 || g.Cols <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrEmptyGrid, g.Rows, g.Cols)
	}
	if len(g.Data) < g.Rows*g.Cols {
		return fmt.Errorf("%w: len %d < %d*%d", ErrShortGrid, len(g.Data), g.Rows, g.Cols)
	}
	return nil
}

// Row returns row t as a subslice of the grid data.
func (g Grid) Row(t int) []int32 {
	return g.Data[t*g.Cols : (t+1)*g.Cols]
}

// RandomGrid builds a rows x cols grid with weights in [0, 10), drawn from
// a PCG generator seeded with seed. The same seed always yields the same grid.
func RandomGrid(rows, cols int, seed uint64) Grid {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	data := make([]int32, rows*cols)
	for i := range data {
		data[i] = int32(rng.IntN(10))
	}
	return Grid{Data: data, Rows: rows, Cols: cols}
}
