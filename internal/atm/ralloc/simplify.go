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

// _Simplifier hands out nodes with degree less than k from a shrinking graph.
// Degrees never increase while simplifying, so once a node is queued it stays
// trivially colorable.
type _Simplifier struct {
    g *Graph
    k int
    q *lane.Queue
}

func newSimplifier(g *Graph, k int) *_Simplifier {
    ret := &_Simplifier {
        g: g,
        k: k,
        q: lane.NewQueue(),
    }

    /* find all the initial candidates */
    for _, r := range g.Nodes() {
        if g.Degree(r) < k {
            ret.q.Enqueue(r)
        }
    }

    /* all done */
    return ret
}

func (self *_Simplifier) next() (ir.Reg, bool) {
    for !self.q.Empty() {
        if r := self.q.Dequeue().(ir.Reg); self.g.HasNode(r) {
            return r, true
        }
    }
    return "", false
}

// remove removes r from the graph and returns it's neighbors right before the
// removal. Neighbors whose degree just dropped below k are queued.
func (self *_Simplifier) remove(r ir.Reg) []ir.Reg {
    adj := self.g.Neighbors(r)
    self.g.RemoveNode(r)

    /* check for new candidates */
    for _, v := range adj {
        if self.g.Degree(v) == self.k - 1 {
            self.q.Enqueue(v)
        }
    }

    /* all done */
    return adj
}

func subgraph(g *Graph, regs []ir.Reg) *Graph {
    rs := regset(regs...)
    ret := NewGraph()

    /* keep only the edges between the selected nodes */
    for _, r := range regs {
        ret.AddNode(r)
        for v := range g.adj[r] {
            if rs.Has(v) {
                ret.AddEdge(r, v)
            }
        }
    }

    /* all done */
    return ret
}
