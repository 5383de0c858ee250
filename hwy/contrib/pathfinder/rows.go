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

// rowBuffers tracks which of two row buffers is being read (src) and which
// is being written (dst). Roles swap before every row is computed.
type rowBuffers struct {
	src []int32
	dst []int32
}

// reset restores the initial roles: first is the destination holding row 0
// and second is the spare buffer.
func (b *rowBuffers) reset(first, second []int32) {
	b.dst = first
	b.src = second
}

func (b *rowBuffers) swap() {
	b.src, b.dst = b.dst, b.src
}
