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
    `sort`

    `github.com/cloudwego/kempe/internal/atm/ir`
    `gonum.org/v1/gonum/graph`
    `gonum.org/v1/gonum/graph/simple`
    `gonum.org/v1/gonum/graph/topo`
)

// MaxClique returns the registers of one maximum clique of g, sorted by name.
// The size of the clique is a lower bound of the number of colors g needs.
//
// Finding it is exponential in the worst case, it is only meant for analysis.
func MaxClique(g *Graph) []ir.Reg {
    var rr []ir.Reg
    var best []graph.Node

    /* convert to the gonum representation */
    ug := toUndirected(g)
    nn := g.Nodes()

    /* pick the largest maximal clique */
    for _, c := range topo.BronKerbosch(ug) {
        if len(c) > len(best) {
            best = c
        }
    }

    /* map the nodes back to registers */
    for _, v := range best {
        rr = append(rr, nn[v.ID()])
    }

    /* sort by name */
    sort.Slice(rr, func(i int, j int) bool { return rr[i] < rr[j] })
    return rr
}

func toUndirected(g *Graph) *simple.UndirectedGraph {
    nn := g.Nodes()
    id := make(map[ir.Reg]int64, len(nn))
    ug := simple.NewUndirectedGraph()

    /* node IDs are indexes into the sorted node list */
    for i, r := range nn {
        id[r] = int64(i)
        ug.AddNode(simple.Node(i))
    }

    /* add all the edges */
    for _, e := range g.Edges() {
        ug.SetEdge(simple.Edge { F: simple.Node(id[e.X]), T: simple.Node(id[e.Y]) })
    }

    /* all done */
    return ug
}
