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

import (
    `sort`
    `strconv`
    `strings`
)

// Reg is a symbolic register. It has no numeric meaning, two registers are
// the same register if and only if they have the same name.
type Reg string

func (self Reg) String() string {
    return string(self)
}

// Valid checks if the name reads back as the same register from the textual
// form of an IL.
func (self Reg) Valid() bool {
    if self == "" || self == "<-" || self[len(self) - 1] == '!' {
        return false
    } else {
        return !strings.ContainsAny(string(self), " \t\r\n#\"")
    }
}

type OpCode byte

const (
    OP_generic OpCode = iota    // opaque operation, identified by Instr.Name
    OP_bb                       // basic block boundary, defs = live-in set
    OP_copy                     // Def[0] := Use[0]
    OP_reload                   // memory -> Def[0]
    OP_spill                    // Use[0] -> memory
)

var _OpNames = [...]string {
    OP_generic : "op",
    OP_bb      : "bb",
    OP_copy    : "copy",
    OP_reload  : "reload",
    OP_spill   : "spill",
}

func (self OpCode) String() string {
    if int(self) < len(_OpNames) {
        return _OpNames[self]
    } else {
        return "op?"
    }
}

// Operand is a register reference of an instruction.
//
// On a usage, Dead means this is the last reference to the current value of R.
// On a definition it means the defined value is never used.
type Operand struct {
    R    Reg
    Dead bool
}

func (self Operand) String() string {
    if self.Dead {
        return string(self.R) + "!"
    } else {
        return string(self.R)
    }
}

type Instr struct {
    Op   OpCode
    Name string
    Defs []Operand
    Uses []Operand
    Freq float64
}

func (self *Instr) IsBlock() bool {
    return self.Op == OP_bb
}

// IsCopy reports whether this is a well-formed copy, which is a single
// register-to-register move.
func (self *Instr) IsCopy() bool {
    return self.Op == OP_copy && len(self.Defs) == 1 && len(self.Uses) == 1
}

func (self *Instr) D(rr ...Reg) *Instr { self.Defs = appendOperands(self.Defs, false, rr); return self }
func (self *Instr) X(rr ...Reg) *Instr { self.Defs = appendOperands(self.Defs, true, rr); return self }
func (self *Instr) U(rr ...Reg) *Instr { self.Uses = appendOperands(self.Uses, false, rr); return self }
func (self *Instr) K(rr ...Reg) *Instr { self.Uses = appendOperands(self.Uses, true, rr); return self }

func (self *Instr) Clone() *Instr {
    return &Instr {
        Op   : self.Op,
        Name : self.Name,
        Defs : append([]Operand(nil), self.Defs...),
        Uses : append([]Operand(nil), self.Uses...),
        Freq : self.Freq,
    }
}

// Replace rewrites every operand register with fn, returns the number of
// operands that have been changed.
func (self *Instr) Replace(fn func(Reg) Reg) (n int) {
    n += replaceOperands(self.Defs, fn)
    n += replaceOperands(self.Uses, fn)
    return
}

func (self *Instr) String() string {
    buf := make([]string, 0, len(self.Defs) + len(self.Uses) + 3)
    buf = append(buf, self.Op.String())

    /* operation name or block frequency */
    switch self.Op {
        case OP_generic : buf = append(buf, quote(self.Name))
        case OP_bb      : buf = append(buf, formatFreq(self.Freq))
    }

    /* definitions */
    for _, v := range self.Defs {
        buf = append(buf, v.String())
    }

    /* usages, if any */
    if len(self.Uses) != 0 {
        buf = append(buf, _T_arrow)
        for _, v := range self.Uses {
            buf = append(buf, v.String())
        }
    }

    /* join them together */
    return strings.Join(buf, " ")
}

// IL is an ordered sequence of instructions, it is owned by exactly one
// allocation at a time.
type IL struct {
    Ins []*Instr
}

func (self *IL) Len() int {
    return len(self.Ins)
}

func (self *IL) Add(ins ...*Instr) {
    self.Ins = append(self.Ins, ins...)
}

func (self *IL) Clone() *IL {
    ret := make([]*Instr, len(self.Ins))
    for i, p := range self.Ins { ret[i] = p.Clone() }
    return &IL { Ins: ret }
}

// Registers returns every register appearing anywhere in the IL, sorted by name.
func (self *IL) Registers() []Reg {
    rs := make(map[Reg]struct{})
    rr := make([]Reg, 0, 16)

    /* collect from both definitions and usages */
    for _, p := range self.Ins {
        for _, v := range p.Defs { rs[v.R] = struct{}{} }
        for _, v := range p.Uses { rs[v.R] = struct{}{} }
    }

    /* dump all the registers */
    for r := range rs {
        rr = append(rr, r)
    }

    /* sort by name */
    sort.Slice(rr, func(i int, j int) bool { return rr[i] < rr[j] })
    return rr
}

// Rename replaces every reference of register `from` with `to`.
func (self *IL) Rename(from Reg, to Reg) int {
    checkReg(to)

    /* nothing to rename */
    if from == to {
        return 0
    } else {
        return self.Replace(func(r Reg) Reg { if r == from { return to } else { return r } })
    }
}

func (self *IL) Replace(fn func(Reg) Reg) (n int) {
    for _, p := range self.Ins {
        n += p.Replace(fn)
    }
    return
}

func (self *IL) String() string {
    buf := make([]string, 0, len(self.Ins))
    for _, p := range self.Ins {
        if p.Op == OP_bb {
            buf = append(buf, p.String())
        } else {
            buf = append(buf, "    " + p.String())
        }
    }
    return strings.Join(buf, "\n")
}

func appendOperands(p []Operand, dead bool, rr []Reg) []Operand {
    for _, r := range rr {
        checkReg(r)
        p = append(p, Operand { R: r, Dead: dead })
    }
    return p
}

func checkReg(r Reg) {
    if !r.Valid() {
        panic("invalid register name: " + strconv.Quote(string(r)))
    }
}

func replaceOperands(p []Operand, fn func(Reg) Reg) (n int) {
    for i := range p {
        if r := fn(p[i].R); r != p[i].R {
            n++
            p[i].R = r
        }
    }
    return
}
