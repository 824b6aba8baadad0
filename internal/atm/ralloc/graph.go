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
    `fmt`
    `sort`
    `strings`

    `github.com/cloudwego/kempe/internal/atm/ir`
)

type Edge struct {
    X ir.Reg
    Y ir.Reg
}

func (self Edge) String() string {
    return fmt.Sprintf("%s -- %s", self.X, self.Y)
}

// Graph is the register interference graph, an undirected simple graph whose
// edges mean "must not share the same color". Adjacency is kept symmetric.
type Graph struct {
    adj map[ir.Reg]RegSet
}

func NewGraph() *Graph {
    return &Graph { adj: make(map[ir.Reg]RegSet) }
}

func (self *Graph) Len() int {
    return len(self.adj)
}

func (self *Graph) AddNode(r ir.Reg) {
    if _, ok := self.adj[r]; !ok {
        self.adj[r] = make(RegSet)
    }
}

func (self *Graph) HasNode(r ir.Reg) bool {
    _, ok := self.adj[r]
    return ok
}

// AddEdge adds an interference edge between x and y, self loops are ignored.
func (self *Graph) AddEdge(x ir.Reg, y ir.Reg) {
    if x != y {
        self.AddNode(x)
        self.AddNode(y)
        self.adj[x].Add(y)
        self.adj[y].Add(x)
    }
}

func (self *Graph) HasEdge(x ir.Reg, y ir.Reg) bool {
    return self.adj[x].Has(y)
}

func (self *Graph) Degree(r ir.Reg) int {
    return len(self.adj[r])
}

// Neighbors returns the neighbors of r sorted by name, or nil if r is not in
// the graph.
func (self *Graph) Neighbors(r ir.Reg) []ir.Reg {
    if rs, ok := self.adj[r]; !ok {
        return nil
    } else {
        return rs.Slice()
    }
}

// RemoveNode removes r and all of it's incident edges.
func (self *Graph) RemoveNode(r ir.Reg) {
    for v := range self.adj[r] {
        self.adj[v].Remove(r)
    }
    delete(self.adj, r)
}

// Rename merges node `from` into node `to`: `to` inherits every neighbor of
// `from` except itself, then `from` is removed. Renaming a node to itself does
// nothing.
func (self *Graph) Rename(from ir.Reg, to ir.Reg) {
    var ok bool
    var rs RegSet

    /* nothing to do */
    if from == to {
        return
    }

    /* the target always exists after renaming */
    if self.AddNode(to); self.HasEdge(from, to) {
        self.adj[to].Remove(from)
    }

    /* move all the edges */
    if rs, ok = self.adj[from]; ok {
        for v := range rs {
            if v != to {
                self.adj[v].Remove(from)
                self.AddEdge(to, v)
            }
        }
    }

    /* remove the old name */
    delete(self.adj, from)
}

func (self *Graph) Clone() *Graph {
    ret := &Graph { adj: make(map[ir.Reg]RegSet, len(self.adj)) }
    for r, rs := range self.adj { ret.adj[r] = rs.Clone() }
    return ret
}

// Nodes returns all the nodes sorted by name.
func (self *Graph) Nodes() []ir.Reg {
    rr := make([]ir.Reg, 0, len(self.adj))
    for r := range self.adj { rr = append(rr, r) }
    sort.Slice(rr, func(i int, j int) bool { return rr[i] < rr[j] })
    return rr
}

// Edges returns every edge exactly once, with X < Y, sorted.
func (self *Graph) Edges() []Edge {
    var ret []Edge
    for _, x := range self.Nodes() {
        for _, y := range self.adj[x].Slice() {
            if x < y {
                ret = append(ret, Edge { X: x, Y: y })
            }
        }
    }
    return ret
}

func (self *Graph) String() string {
    nb := len(self.adj)
    buf := make([]string, 0, nb)

    /* dump every node with it's neighbors */
    for _, r := range self.Nodes() {
        buf = append(buf, fmt.Sprintf("    %s: %s", r, self.adj[r]))
    }

    /* join them together */
    return fmt.Sprintf(
        "Graph {\n%s\n}",
        strings.Join(buf, "\n"),
    )
}
