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

// scalarImpl is the reference implementation. Every run resets the buffer
// roles, so the buffer returned depends only on rows and never on numRuns.
func scalarImpl(wall []int32, rows, cols, numRuns int, result, scratch []int32) []int32 {
	var bufs rowBuffers
	for range numRuns {
		bufs.reset(result, scratch)
		copy(bufs.dst, wall[:cols])

		for t := 0; t < rows-1; t++ {
			bufs.swap()
			src, dst := bufs.src, bufs.dst
			next := wall[(t+1)*cols : (t+2)*cols]
			for n := 0; n < cols; n++ {
				m := src[n]
				if n > 0 {
					m = min(m, src[n-1])
				}
				if n < cols-1 {
					m = min(m, src[n+1])
				}
				dst[n] = next[n] + m
			}
		}
	}
	return bufs.dst
}
