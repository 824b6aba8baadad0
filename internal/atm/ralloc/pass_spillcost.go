/*
 * Copyright 2022 ByteDance Inc.
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

package ralloc

import (
    `github.com/cloudwego/kempe/internal/atm/ir`
)

// Cost is the estimated cost of spilling each register.
type Cost map[ir.Reg]float64

// EstimateCosts charges every register the execution frequency of it's
// enclosing block, once for each instruction that references it. Block
// boundaries are not counted as references, and instructions before the first
// boundary run with frequency 0.
func EstimateCosts(il *ir.IL) Cost {
    freq := 0.0
    cost := make(Cost)
    seen := make(RegSet)

    /* scan every instruction */
    for _, p := range il.Ins {
        if p.IsBlock() {
            freq = p.Freq
            continue
        }

        /* a register is charged once per instruction */
        clear(seen)
        charge(cost, seen, p.Defs, freq)
        charge(cost, seen, p.Uses, freq)
    }

    /* all done */
    return cost
}

func charge(cost Cost, seen RegSet, ops []ir.Operand, freq float64) {
    for _, v := range ops {
        if !seen.Has(v.R) {
            seen.Add(v.R)
            cost[v.R] += freq
        }
    }
}
