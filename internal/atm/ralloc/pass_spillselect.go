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
    `nikand.dev/go/heap`
)

type _Candidate struct {
    r ir.Reg
    c float64
}

func candidateLess(d []_Candidate, i int, j int) bool {
    if d[i].c != d[j].c {
        return d[i].c < d[j].c
    } else {
        return d[i].r < d[j].r
    }
}

// SelectSpills picks the registers to spill so that the rest of g becomes
// k-colorable by simplification. It runs the same simplification as Color on
// a copy of g, and whenever every remaining node has at least k neighbors, the
// cheapest one is evicted into the spill set. Registers without a cost are
// free to spill, equal costs are ordered by name.
func SelectSpills(g *Graph, k int, cost Cost) RegSet {
    ret := make(RegSet)
    wg := g.Clone()
    sp := newSimplifier(wg, k)
    mq := heap.Heap[_Candidate] { Less: candidateLess }

    /* order all the nodes by cost */
    for _, r := range wg.Nodes() {
        mq.Push(_Candidate { r: r, c: cost[r] })
    }

    /* simplify the graph, evicting nodes when stuck */
    for wg.Len() != 0 {
        if r, ok := sp.next(); ok {
            sp.remove(r)
            continue
        }

        /* nodes already simplified are skipped */
        for mq.Len() != 0 {
            if v := mq.Pop(); wg.HasNode(v.r) {
                ret.Add(v.r)
                sp.remove(v.r)
                break
            }
        }
    }

    /* all done */
    return ret
}
