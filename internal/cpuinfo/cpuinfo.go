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

// Package cpuinfo reports the lane width the pathfinder kernels will use
// and the CPU features it was derived from.
package cpuinfo

import (
	"fmt"
	"io"
	"runtime"

	"golang.org/x/sys/cpu"

	"github.com/ajroetker/go-pathfinder/hwy"
)

// Feature is a single named CPU capability.
type Feature struct {
	Name    string
	Present bool
	Note    string
}

// Features returns the x/sys/cpu flags relevant to dispatch on goarch.
// Unsupported architectures return nil.
func Features(goarch string) []Feature {
	switch goarch {
	case "amd64":
		return []Feature{
			{"HasSSE2", cpu.X86.HasSSE2, "baseline"},
			{"HasSSE41", cpu.X86.HasSSE41, ""},
			{"HasAVX", cpu.X86.HasAVX, ""},
			{"HasAVX2", cpu.X86.HasAVX2, "32-byte lanes"},
			{"HasAVX512F", cpu.X86.HasAVX512F, "64-byte lanes with BW"},
			{"HasAVX512BW", cpu.X86.HasAVX512BW, ""},
		}
	case "arm64":
		return []Feature{
			{"HasASIMD", cpu.ARM64.HasASIMD, "NEON baseline"},
			{"HasSVE", cpu.ARM64.HasSVE, "Scalable Vector Extension"},
			{"HasSVE2", cpu.ARM64.HasSVE2, ""},
		}
	case "riscv64":
		return []Feature{
			{"HasV", cpu.RISCV64.HasV, "Vector extension"},
		}
	}
	return nil
}

// Write prints the dispatch decision and CPU features to w.
func Write(w io.Writer) error {
	ew := &errWriter{w: w}

	ew.printf("GOOS: %s\n", runtime.GOOS)
	ew.printf("GOARCH: %s\n", runtime.GOARCH)
	ew.printf("NumCPU: %d\n", runtime.NumCPU())
	ew.printf("\n")

	ew.printf("Highway dispatch level: %s\n", hwy.CurrentLevel())
	ew.printf("Highway dispatch width: %d bytes\n", hwy.CurrentWidth())
	ew.printf("Highway dispatch name: %s\n", hwy.CurrentName())
	ew.printf("int32 lanes: %d\n", hwy.MaxLanes[int32]())
	ew.printf("HWY_NO_SIMD: %v\n", hwy.NoSimdEnv())

	features := Features(runtime.GOARCH)
	if len(features) == 0 {
		return ew.err
	}
	ew.printf("\n=== golang.org/x/sys/cpu ===\n")
	for _, f := range features {
		if f.Note != "" {
			ew.printf("  %-12s %v (%s)\n", f.Name+":", f.Present, f.Note)
		} else {
			ew.printf("  %-12s %v\n", f.Name+":", f.Present)
		}
	}
	return ew.err
}

// errWriter keeps the first write error so Write can report it once.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}
