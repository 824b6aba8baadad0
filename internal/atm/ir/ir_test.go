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
    `testing`

    `github.com/stretchr/testify/require`
)

func buildBasic() *IL {
    p := CreateBuilder()
    p.BB(1, "a")
    p.OP("b = a + 2").D("b").U("a")
    p.OP("c = b * b").D("c").K("b")
    p.COPY("d", "c", true)
    p.OP("b = d + 1").D("b").K("d")
    p.OP("return b * a").K("a", "b")
    return p.Build()
}

func TestIL_Builder(t *testing.T) {
    p := CreateBuilder()
    p.BB(1, "a")
    p.OP("x").D("b").U("a")
    p.BB(0.5, "a", "b")
    p.RELOAD("c")
    p.SPILL("c")
    require.Equal(t, 2, p.Blocks())
    il := p.Build()
    require.Equal(t, 5, il.Len())
    require.True(t, il.Ins[0].IsBlock())
    require.Equal(t, 0.5, il.Ins[2].Freq)
    require.Equal(t, []Operand {{ R: "c" }}, il.Ins[3].Defs)
    require.Equal(t, []Operand {{ R: "c", Dead: true }}, il.Ins[4].Uses)
    require.Equal(t, 0, p.Blocks())
}

func TestIL_Registers(t *testing.T) {
    il := buildBasic()
    require.Equal(t, []Reg { "a", "b", "c", "d" }, il.Registers())
    require.Empty(t, new(IL).Registers())
}

func TestIL_IsCopy(t *testing.T) {
    require.True(t, (&Instr { Op: OP_copy }).D("a").U("b").IsCopy())
    require.False(t, (&Instr { Op: OP_copy }).D("a", "b").U("c").IsCopy())
    require.False(t, (&Instr { Op: OP_copy }).D("a").IsCopy())
    require.False(t, (&Instr { Op: OP_generic, Name: "copy" }).D("a").U("b").IsCopy())
}

func TestIL_Rename(t *testing.T) {
    il := buildBasic()
    require.Equal(t, 0, il.Rename("c", "c"))
    require.Equal(t, 2, il.Rename("c", "d"))
    require.Equal(t, []Reg { "a", "b", "d" }, il.Registers())
    require.Equal(t, Operand { R: "d", Dead: true }, il.Ins[3].Uses[0])
    require.Equal(t, 0, il.Rename("c", "x"))
}

func TestIL_InvalidRegister(t *testing.T) {
    for _, r := range []Reg { "x", "x.1", "%rax", "<", "-" } {
        require.True(t, r.Valid(), r)
    }
    for _, r := range []Reg { "", "x!", "a b", "a\tb", "#", "a#b", `"q"`, "<-" } {
        require.False(t, r.Valid(), r)
        require.Panics(t, func() { (&Instr { Op: OP_generic }).D(r) }, r)
        require.Panics(t, func() { (&Instr { Op: OP_generic }).K(r) }, r)
        require.Panics(t, func() { buildBasic().Rename("a", r) }, r)
    }
}

func TestIL_Clone(t *testing.T) {
    il := buildBasic()
    cc := il.Clone()
    cc.Rename("a", "z")
    cc.Ins[1].Uses[0].Dead = true
    require.Equal(t, Reg("a"), il.Ins[0].Defs[0].R)
    require.False(t, il.Ins[1].Uses[0].Dead)
    require.Equal(t, []Reg { "b", "c", "d", "z" }, cc.Registers())
}

func TestIL_String(t *testing.T) {
    require.Equal(t,
        "bb 1 a\n" +
        `    op "b = a + 2" b <- a` + "\n" +
        `    op "c = b * b" c <- b!` + "\n" +
        "    copy d <- c!\n" +
        `    op "b = d + 1" b <- d!` + "\n" +
        `    op "return b * a" <- a! b!`,
        buildBasic().String(),
    )
}
