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

import "errors"

var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("pathfinder: grid must have at least one row and one column")
	// ErrShortGrid indicates the backing slice holds fewer than rows*cols elements.
	ErrShortGrid = errors.New("pathfinder: grid data shorter than rows*cols")
	// ErrBadLanes indicates a negative lane width.
	ErrBadLanes = errors.New("pathfinder: lane width must not be negative")
	// ErrUnknownMethod indicates an unrecognized solver name.
	ErrUnknownMethod = errors.New("pathfinder: unknown method")
)
