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

package ir

// Builder assembles an IL instruction by instruction. Instructions returned
// by the builder methods can be chained with D / X / U / K to add operands:
//
//     p := CreateBuilder()
//     p.BB(1, "a")
//     p.OP("b = a + 2").D("b").U("a")
//     p.OP("c = b * b").D("c").K("b")
//
type Builder struct {
    bb  int
    ins []*Instr
}

func CreateBuilder() *Builder {
    return new(Builder)
}

func (self *Builder) add(ins *Instr) *Instr {
    self.ins = append(self.ins, ins)
    return ins
}

// BB starts a new basic block with execution frequency `freq` and the live-in
// registers `live`.
func (self *Builder) BB(freq float64, live ...Reg) *Instr {
    self.bb++
    return self.add(&Instr { Op: OP_bb, Freq: freq }).D(live...)
}

func (self *Builder) OP(name string) *Instr {
    return self.add(&Instr { Op: OP_generic, Name: name })
}

// COPY adds `def := use`, `kill` marks the last use of `use`.
func (self *Builder) COPY(def Reg, use Reg, kill bool) *Instr {
    if p := self.add(&Instr { Op: OP_copy }).D(def); kill {
        return p.K(use)
    } else {
        return p.U(use)
    }
}

func (self *Builder) RELOAD(r Reg) *Instr {
    return self.add(&Instr { Op: OP_reload }).D(r)
}

func (self *Builder) SPILL(r Reg) *Instr {
    return self.add(&Instr { Op: OP_spill }).K(r)
}

// Blocks returns the number of basic blocks started so far.
func (self *Builder) Blocks() int {
    return self.bb
}

func (self *Builder) Build() *IL {
    ret := &IL { Ins: self.ins }
    self.bb, self.ins = 0, nil
    return ret
}
