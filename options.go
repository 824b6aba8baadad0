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

package kempe

import (
	"fmt"

	"github.com/cloudwego/kempe/internal/atm/ralloc"
	"github.com/cloudwego/kempe/internal/opts"
)

// Option is the property setter function for opts.Options.
type Option func(*opts.Options)

// WithMaxSpillRounds sets the maximum number of spill-and-retry rounds before
// giving up.
//
// The default value of this option is "1".
func WithMaxSpillRounds(rounds int) Option {
	if rounds < 1 {
		panic(fmt.Sprintf("kempe: invalid spill rounds: %d", rounds))
	} else {
		return func(o *opts.Options) { o.MaxSpillRounds = rounds }
	}
}

// WithColorPicker sets how a color is chosen among the ones not used by any
// neighbor.
//
// The default picker always chooses the first free color in the order they
// are given to Allocate, which makes the allocation reproducible.
func WithColorPicker(pick ColorPicker) Option {
	if pick == nil {
		panic("kempe: nil color picker")
	} else {
		return func(o *opts.Options) { o.ColorPicker = pick }
	}
}

// WithRandomColors chooses a random free color for every register.
func WithRandomColors() Option {
	return WithColorPicker(ralloc.RandomPicker{})
}

// WithVerify controls whether the final coloring is checked against the
// interference graph before returning.
//
// The default value of this option is "true".
func WithVerify(verify bool) Option {
	return func(o *opts.Options) { o.Verify = verify }
}

// SetMaxSpillRounds sets the default maximum spill rounds for all allocations
// from now on.
//
// This value can also be configured with the `KEMPE_MAX_SPILL_ROUNDS`
// environment variable.
//
// The default value of this option is "1".
//
// Returns the old opts.MaxSpillRounds value.
func SetMaxSpillRounds(rounds int) int {
	if rounds < 1 {
		panic(fmt.Sprintf("kempe: invalid spill rounds: %d", rounds))
	}
	rounds, opts.MaxSpillRounds = opts.MaxSpillRounds, rounds
	return rounds
}
