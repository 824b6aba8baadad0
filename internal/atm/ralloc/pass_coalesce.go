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

func coalescable(p *ir.Instr, g *Graph) bool {
    if !p.IsCopy() {
        return false
    } else {
        return p.Defs[0].R != p.Uses[0].R && !g.HasEdge(p.Uses[0].R, p.Defs[0].R)
    }
}

func findCopy(il *ir.IL, g *Graph) *ir.Instr {
    for _, p := range il.Ins {
        if coalescable(p, g) {
            return p
        }
    }
    return nil
}

// Coalesce eliminates register copies by merging the source register into the
// target register when they do not interfere, rewriting both the IL and the
// graph in place. The copies themselves are left as "x := x".
//
// The merge is unconditional, the merged node might have a degree higher than
// the available colors, which could turn a colorable graph into an uncolorable
// one.
func Coalesce(il *ir.IL, g *Graph) (n int) {
    for p := findCopy(il, g); p != nil; p = findCopy(il, g) {
        src := p.Uses[0].R
        dst := p.Defs[0].R

        /* merge the nodes, then rewrite the IL */
        n++
        g.Rename(src, dst)
        il.Rename(src, dst)
    }
    return
}
