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
    `github.com/oleiade/lane`
)

type _Frame struct {
    r   ir.Reg
    adj []ir.Reg
}

// ColorGraph colors the subgraph of g induced by regs with Kempe's simplify/select
// heuristic. Nodes with fewer neighbors than colors are removed one by one and
// pushed onto a stack together with their edges, then popped in reverse order,
// restoring the edges and picking a color unused by any neighbor.
//
// It fails when every remaining node has at least len(colors) neighbors, even
// though the graph might still be colorable.
func ColorGraph(g *Graph, regs []ir.Reg, colors []Color, pick ColorPicker) (Coloring, bool) {
    cc := UniqueColors(colors)
    st := lane.NewStack()
    wg := subgraph(g, regs)
    sp := newSimplifier(wg, len(cc))

    /* use the default picker if not specified */
    if pick == nil {
        pick = LowestPicker{}
    }

    /* Phase 1: simplify */
    for wg.Len() != 0 {
        if r, ok := sp.next(); !ok {
            return nil, false
        } else {
            st.Push(&_Frame { r: r, adj: sp.remove(r) })
        }
    }

    /* Phase 2: select */
    ret := make(Coloring, len(regs))
    buf := make([]Color, 0, len(cc))

    /* undo the removals in reverse order */
    for !st.Empty() {
        fr := st.Pop().(*_Frame)
        wg.AddNode(fr.r)

        /* restore the edges */
        for _, v := range fr.adj {
            wg.AddEdge(fr.r, v)
        }

        /* all the neighbors are colored at this point */
        buf = freeColors(buf[:0], cc, ret, fr.adj)
        ret[fr.r] = pick.Pick(fr.r, buf)
    }

    /* all done */
    return ret, true
}

func freeColors(buf []Color, cc []Color, cm Coloring, adj []ir.Reg) []Color {
    used := make(map[Color]struct{}, len(adj))
    for _, v := range adj { used[cm[v]] = struct{}{} }

    /* keep only the unused colors */
    for _, c := range cc {
        if _, ok := used[c]; !ok {
            buf = append(buf, c)
        }
    }

    /* all done */
    return buf
}
