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

// _Liveness tracks the live registers while scanning an IL forward. Registers
// are reference counted, since one instruction may use a register more than
// once.
type _Liveness struct {
    live map[ir.Reg]int
    peak int
    miss int
}

func newLiveness() *_Liveness {
    return &_Liveness { live: make(map[ir.Reg]int) }
}

func (self *_Liveness) mark() {
    if len(self.live) > self.peak {
        self.peak = len(self.live)
    }
}

func (self *_Liveness) enter(bb *ir.Instr) {
    clear(self.live)
    for _, v := range bb.Defs {
        if !v.Dead {
            self.live[v.R]++
        }
    }
    self.mark()
}

func (self *_Liveness) kill(p *ir.Instr) {
    for _, v := range p.Uses {
        if v.Dead {
            if n, ok := self.live[v.R]; !ok {
                self.miss++
            } else if n > 1 {
                self.live[v.R] = n - 1
            } else {
                delete(self.live, v.R)
            }
        }
    }
}

func (self *_Liveness) define(p *ir.Instr, g *Graph) {
    for _, v := range p.Defs {
        if g != nil {
            for r := range self.live {
                g.AddEdge(v.R, r)
            }
        }
        if !v.Dead {
            self.live[v.R]++
        }
    }
    self.mark()
}

func (self *_Liveness) scan(il *ir.IL, g *Graph) {
    for _, p := range il.Ins {
        if p.IsBlock() {
            self.enter(p)
        } else {
            self.kill(p)
            self.define(p, g)
        }
    }
}

// Build constructs the interference graph of il. Every register in il becomes
// a node, and a definition interferes with everything live just before it.
//
// Dead usages of registers which are not live are ignored.
func Build(il *ir.IL) *Graph {
    g, _ := build(il)
    return g
}

func build(il *ir.IL) (*Graph, int) {
    g := NewGraph()
    lv := newLiveness()

    /* every register is a node, even it does not interfere with anything */
    for _, r := range il.Registers() {
        g.AddNode(r)
    }

    /* scan the instructions */
    lv.scan(il, g)
    return g, lv.miss
}

// Pressure returns the maximum number of simultaneously live registers.
func Pressure(il *ir.IL) int {
    lv := newLiveness()
    lv.scan(il, nil)
    return lv.peak
}
