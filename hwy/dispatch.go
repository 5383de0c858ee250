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

import (
	"os"
	"unsafe"
)

// DispatchLevel identifies the instruction set the lane width was derived from.
type DispatchLevel int

const (
	DispatchScalar DispatchLevel = iota
	DispatchSSE2
	DispatchAVX2
	DispatchAVX512
	DispatchNEON
	DispatchRVV
)

func (l DispatchLevel) String() string {
	switch l {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	case DispatchRVV:
		return "rvv"
	default:
		return "unknown"
	}
}

// noSimdEnvVar disables width detection when set to any non-empty value.
const noSimdEnvVar = "HWY_NO_SIMD"

var (
	currentLevel DispatchLevel
	currentWidth int
	currentName  string
)

// CurrentLevel returns the dispatch level selected at init.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the vector width in bytes.
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns a short name for the selected target.
func CurrentName() string {
	return currentName
}

// NoSimdEnv reports whether HWY_NO_SIMD is set.
func NoSimdEnv() bool {
	return os.Getenv(noSimdEnvVar) != ""
}

// MaxLanes returns the number of T elements that fit in one vector at the
// current dispatch width. It is always at least 1.
//
// For example, with AVX2 (32 bytes):
//   - int32: 8
//   - int64: 4
func MaxLanes[T Lanes]() int {
	var zero T
	n := currentWidth / int(unsafe.Sizeof(zero))
	if n < 1 {
		return 1
	}
	return n
}

func setScalarMode() {
	currentLevel = DispatchScalar
	currentWidth = 16 // Use 16-byte vectors even in scalar mode for consistency
	currentName = "scalar"
}
