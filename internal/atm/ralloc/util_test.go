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
    `os`
    `path/filepath`
    `testing`

    `github.com/brianvoe/gofakeit/v6`
    `github.com/cloudwego/kempe/internal/atm/ir`
    `github.com/stretchr/testify/require`
)

func mustParse(t *testing.T, src string) *ir.IL {
    il, err := ir.Parse(src)
    require.NoError(t, err)
    return il
}

func loadIL(t *testing.T, name string) *ir.IL {
    src, err := os.ReadFile(filepath.Join("..", "..", "..", "testdata", name))
    require.NoError(t, err)
    return mustParse(t, string(src))
}

func colors(names ...string) []Color {
    ret := make([]Color, len(names))
    for i, v := range names { ret[i] = Color(v) }
    return ret
}

func genericColors(k int) []Color {
    ret := make([]Color, k)
    for i := range ret { ret[i] = Color(fmt.Sprintf("r%d", i)) }
    return ret
}

func edges(g *Graph) []string {
    var ret []string
    for _, e := range g.Edges() { ret = append(ret, e.String()) }
    return ret
}

func pickFree(f *gofakeit.Faker, regs []ir.Reg, live map[ir.Reg]bool) (ir.Reg, bool) {
    var rr []ir.Reg
    for _, r := range regs {
        if !live[r] {
            rr = append(rr, r)
        }
    }
    if len(rr) == 0 {
        return "", false
    } else {
        return rr[f.IntRange(0, len(rr) - 1)], true
    }
}

func randomInstr(f *gofakeit.Faker, p *ir.Builder, regs []ir.Reg, live map[ir.Reg]bool) {
    var uses []ir.Reg
    for _, r := range regs {
        if live[r] {
            uses = append(uses, r)
        }
    }

    /* register copies */
    if len(uses) != 0 && f.IntRange(0, 3) == 0 {
        src := uses[f.IntRange(0, len(uses) - 1)]
        kill := f.Bool()

        /* the source might die */
        if kill {
            delete(live, src)
        }

        /* copy into a register which is not live */
        if dst, ok := pickFree(f, regs, live); ok {
            p.COPY(dst, src, kill)
            live[dst] = true
            return
        }

        /* no free registers, emit an ordinary operation instead */
        if kill {
            live[src] = true
        }
    }

    /* use some of the live registers */
    ins := p.OP("op")
    for _, r := range uses {
        switch f.IntRange(0, 3) {
            case 0: ins.U(r)
            case 1: ins.K(r); delete(live, r)
        }
    }

    /* define a register which is not live */
    if d, ok := pickFree(f, regs, live); ok {
        if f.IntRange(0, 5) == 0 {
            ins.X(d)
        } else {
            ins.D(d)
            live[d] = true
        }
    }
}

// randomIL generates a well-formed IL, every dead usage refers to a live
// register, and a register is never redefined while it is live.
func randomIL(f *gofakeit.Faker) *ir.IL {
    p := ir.CreateBuilder()
    regs := make([]ir.Reg, f.IntRange(2, 12))

    /* register names */
    for i := range regs {
        regs[i] = ir.Reg(fmt.Sprintf("v%d", i))
    }

    /* generate the blocks */
    for nb := f.IntRange(1, 4); nb > 0; nb-- {
        var in []ir.Reg
        live := make(map[ir.Reg]bool)

        /* live-in registers */
        for _, r := range regs {
            if f.IntRange(0, 3) == 0 {
                in = append(in, r)
                live[r] = true
            }
        }

        /* block body */
        p.BB(f.Float64Range(0.1, 10), in...)
        for n := f.IntRange(1, 12); n > 0; n-- {
            randomInstr(f, p, regs, live)
        }
    }

    /* all done */
    return p.Build()
}

func genericRegs(n int) []ir.Reg {
    ret := make([]ir.Reg, n)
    for i := range ret { ret[i] = ir.Reg(fmt.Sprintf("v%02d", i)) }
    return ret
}
