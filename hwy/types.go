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

// Package hwy provides portable SIMD-style lane operations with runtime
// width dispatch.
//
// Kernels are written once against Vec[T] and process data in chunks of
// MaxLanes[T]() elements. The lane width is decided at init from the CPU
// features of the host (AVX-512, AVX2, SSE2, NEON) or falls back to a
// 16-byte scalar emulation.
//
// Basic usage:
//
//	lanes := hwy.MaxLanes[int32]()
//	for i := 0; i < len(src); i += lanes {
//		v := hwy.Load(src[i:])
//		hwy.Store(hwy.Add(v, v), dst[i:])
//	}
package hwy

// Floats is a constraint for floating-point lane types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in SIMD lanes.
type Lanes interface {
	Floats | Integers
}

// Vec is a portable vector handle. In base (scalar) mode it wraps a slice
// whose length is the active lane count of the vector. A vector loaded from
// the tail of a slice may hold fewer than MaxLanes[T]() lanes, the same way
// a RISC-V vsetvl shortens the last group.
//
// Vec instances should not be created directly; use Load, LoadN, Set or Zero.
type Vec[T Lanes] struct {
	data []T
}

// NumLanes returns the number of active lanes in this vector.
func (v Vec[T]) NumLanes() int {
	return len(v.data)
}

// Data returns the underlying slice representation of the vector.
// This is primarily for testing and should not be used in performance-critical code.
func (v Vec[T]) Data() []T {
	return v.data
}
