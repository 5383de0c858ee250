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

package hwy

// This file provides pure Go (scalar) implementations of the lane
// operations. Every operation returns a vector with the lane count of its
// shortest operand, so kernels can run the last, shorter group of a row
// through the same code path as full groups.

// Load creates a vector from the first min(MaxLanes[T](), len(src))
// elements of src.
func Load[T Lanes](src []T) Vec[T] {
	return LoadN(src, MaxLanes[T]())
}

// LoadN creates a vector from the first min(n, len(src)) elements of src.
// It is the equivalent of setting the active vector length to n before a
// load; n may be smaller or larger than MaxLanes[T]().
func LoadN[T Lanes](src []T, n int) Vec[T] {
	if len(src) < n {
		n = len(src)
	}
	if n < 0 {
		n = 0
	}
	data := make([]T, n)
	copy(data, src[:n])
	return Vec[T]{data: data}
}

// Store writes a vector's data to a slice.
func Store[T Lanes](v Vec[T], dst []T) {
	n := len(v.data)
	if len(dst) < n {
		n = len(dst)
	}
	copy(dst[:n], v.data[:n])
}

// Set creates a vector with all lanes set to the same value.
func Set[T Lanes](value T) Vec[T] {
	data := make([]T, MaxLanes[T]())
	for i := range data {
		data[i] = value
	}
	return Vec[T]{data: data}
}

// Zero creates a vector with all lanes set to zero.
func Zero[T Lanes]() Vec[T] {
	return Vec[T]{data: make([]T, MaxLanes[T]())}
}

// Add performs element-wise addition. Integer lanes wrap on overflow.
func Add[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = a.data[i] + b.data[i]
	}
	return Vec[T]{data: result}
}

// Min returns element-wise minimum.
func Min[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		if a.data[i] < b.data[i] {
			result[i] = a.data[i]
		} else {
			result[i] = b.data[i]
		}
	}
	return Vec[T]{data: result}
}

// Max returns element-wise maximum.
func Max[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		if a.data[i] > b.data[i] {
			result[i] = a.data[i]
		} else {
			result[i] = b.data[i]
		}
	}
	return Vec[T]{data: result}
}

// ReduceMin returns the minimum value across all lanes.
// Returns the zero value for an empty vector.
func ReduceMin[T Lanes](v Vec[T]) T {
	if len(v.data) == 0 {
		var zero T
		return zero
	}
	m := v.data[0]
	for _, x := range v.data[1:] {
		if x < m {
			m = x
		}
	}
	return m
}

// GetLane returns the value in lane i.
// PRECONDITION: 0 <= i < v.NumLanes().
func GetLane[T Lanes](v Vec[T], i int) T {
	return v.data[i]
}

// Slide1Up shifts every lane up by one position and inserts fill into
// lane 0; the value in the last lane is dropped:
//
//	result = [fill, v[0], v[1], ..., v[n-2]]
//
// This matches RISC-V vslide1up.vx.
func Slide1Up[T Lanes](v Vec[T], fill T) Vec[T] {
	n := len(v.data)
	result := make([]T, n)
	if n == 0 {
		return Vec[T]{data: result}
	}
	result[0] = fill
	copy(result[1:], v.data[:n-1])
	return Vec[T]{data: result}
}

// Slide1Down shifts every lane down by one position and inserts fill into
// the last lane; the value in lane 0 is dropped:
//
//	result = [v[1], v[2], ..., v[n-1], fill]
//
// This matches RISC-V vslide1down.vx.
func Slide1Down[T Lanes](v Vec[T], fill T) Vec[T] {
	n := len(v.data)
	result := make([]T, n)
	if n == 0 {
		return Vec[T]{data: result}
	}
	copy(result, v.data[1:])
	result[n-1] = fill
	return Vec[T]{data: result}
}
