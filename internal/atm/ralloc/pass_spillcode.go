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

// InsertSpillCode rewrites il so that every spilled register lives in memory
// across instructions. Each spilled usage is preceded by a reload and becomes
// the last use of the reloaded value, and each spilled definition is followed
// by a spill. Spilled registers are also removed from the block live-in sets.
//
// The input IL is left untouched.
func InsertSpillCode(il *ir.IL, spilled RegSet) *ir.IL {
    ret := make([]*ir.Instr, 0, il.Len())

    /* nothing to spill */
    if len(spilled) == 0 {
        return il.Clone()
    }

    /* rewrite every instruction */
    for _, v := range il.Ins {
        p := v.Clone()

        /* spilled registers are no longer live across blocks */
        if p.IsBlock() {
            ret = append(ret, dropSpilled(p, spilled))
            continue
        }

        /* reload before the spilled usages */
        for i, u := range p.Uses {
            if spilled.Has(u.R) {
                p.Uses[i].Dead = true
                ret = append(ret, &ir.Instr { Op: ir.OP_reload, Defs: []ir.Operand {{ R: u.R }} })
            }
        }

        /* the instruction itself */
        ret = append(ret, p)

        /* spill after the spilled definitions */
        for i, d := range p.Defs {
            if spilled.Has(d.R) {
                p.Defs[i].Dead = false
                ret = append(ret, &ir.Instr { Op: ir.OP_spill, Uses: []ir.Operand {{ R: d.R, Dead: true }} })
            }
        }
    }

    /* all done */
    return &ir.IL { Ins: ret }
}

func dropSpilled(p *ir.Instr, spilled RegSet) *ir.Instr {
    defs := p.Defs[:0]
    for _, v := range p.Defs {
        if !spilled.Has(v.R) {
            defs = append(defs, v)
        }
    }
    p.Defs = defs
    return p
}
