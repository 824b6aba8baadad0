/*
 * Copyright 2022 CloudWeGo Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package debug

import (
	"github.com/cloudwego/kempe/internal/atm/ralloc"
)

// A Stats records statistics about the register allocator.
type Stats struct {
	Runs     int
	Failures int
	Coalesce CoalesceStats
	Spill    SpillStats
}

// A CoalesceStats records statistics about copy coalescing.
type CoalesceStats struct {
	Copies int
}

// A SpillStats records statistics about spilling.
type SpillStats struct {
	Rounds    int
	Registers int
}

// GetStats returns statistics of the register allocator.
func GetStats() Stats {
	return Stats{
		Runs:     int(ralloc.RunCount.Load()),
		Failures: int(ralloc.FailureCount.Load()),
		Coalesce: CoalesceStats{
			Copies: int(ralloc.CoalesceCount.Load()),
		},
		Spill: SpillStats{
			Rounds:    int(ralloc.SpillRounds.Load()),
			Registers: int(ralloc.SpillCount.Load()),
		},
	}
}
