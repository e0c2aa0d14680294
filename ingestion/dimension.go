// Copyright 2025 Poiesic Systems
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

package ingestion

import (
	"fmt"
	"sync"
)

// DimensionGuard pins the embedding dimension to whatever the first
// successful embedding produced and rejects anything that disagrees.
// The corpus must stay dimension-consistent for cosine ranking to work.
type DimensionGuard struct {
	mu        sync.Mutex
	dimension int
}

// NewDimensionGuard returns a guard with no dimension fixed yet. A positive
// dimension fixes it up front, which is how an existing corpus seeds the
// guard on startup.
func NewDimensionGuard(dimension int) *DimensionGuard {
	if dimension < 0 {
		dimension = 0
	}
	return &DimensionGuard{dimension: dimension}
}

// Check validates that got matches the fixed dimension, fixing it if this is
// the first observation.
func (g *DimensionGuard) Check(got int) error {
	if got <= 0 {
		return fmt.Errorf("embedding has no components")
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.dimension == 0 {
		g.dimension = got
		return nil
	}
	if got != g.dimension {
		return fmt.Errorf("embedding dimension %d does not match established dimension %d", got, g.dimension)
	}
	return nil
}

// Dimension reports the fixed dimension, or 0 when none has been observed.
func (g *DimensionGuard) Dimension() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.dimension
}
