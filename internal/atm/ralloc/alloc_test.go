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
    `context`
    `testing`

    `github.com/brianvoe/gofakeit/v6`
    `github.com/cloudwego/kempe/internal/atm/ir`
    `github.com/stretchr/testify/require`
)

func allocate(t *testing.T, il *ir.IL, cc []Color, rounds int) (*Graph, Coloring, error) {
    return Allocator { MaxSpillRounds: rounds, Verify: true }.Allocate(context.Background(), il, cc)
}

func countOps(il *ir.IL, op ir.OpCode) (n int) {
    for _, p := range il.Ins {
        if p.Op == op {
            n++
        }
    }
    return
}

func TestAlloc_Chain(t *testing.T) {
    il := loadIL(t, "basic.il")
    g, rs, err := allocate(t, il, colors("red", "blue"), 0)
    require.NoError(t, err)
    require.Equal(t, Coloring { "a": "red", "b": "blue", "c": "blue" }, rs)
    require.Equal(t, []string { "a -- b", "a -- c" }, edges(g))
}

func TestAlloc_CopyElimination(t *testing.T) {
    il := loadIL(t, "subsumption.il")
    g, rs, err := allocate(t, il, colors("red", "blue"), 0)
    require.NoError(t, err)
    require.Equal(t, Coloring { "a": "red", "b": "blue", "d": "blue" }, rs)
    require.Equal(t, il.Registers(), g.Nodes())
    require.Contains(t, il.String(), "copy d <- d!")
}

func TestAlloc_MultipleBlocks(t *testing.T) {
    il := loadIL(t, "blocks.il")
    src := il.String()
    g, rs, err := allocate(t, il, genericColors(4), 0)
    require.NoError(t, err)
    require.Equal(t, src, il.String())
    require.Len(t, rs, 6)
    require.NoError(t, Verify(g, rs))
}

func TestAlloc_ForcedSpill(t *testing.T) {
    for _, tc := range []struct {
        file  string
        spill ir.Reg
    } {
        { file: "spill.il"     , spill: "c" },
        { file: "frequency.il" , spill: "f" },
    } {
        il := loadIL(t, tc.file)
        _, ok := ColorGraph(Build(il), il.Registers(), genericColors(3), nil)
        require.False(t, ok, tc.file)
        g, rs, err := allocate(t, il, colors("red", "blue", "green"), 1)
        require.NoError(t, err, tc.file)
        require.NotZero(t, countOps(il, ir.OP_reload), tc.file)
        require.Contains(t, rs, tc.spill, tc.file)
        require.Equal(t, il.Registers(), g.Nodes(), tc.file)
        require.NoError(t, Verify(Build(il), rs), tc.file)
        for _, p := range il.Ins {
            if p.IsBlock() {
                require.NotContains(t, p.Defs, ir.Operand { R: tc.spill }, tc.file)
            }
        }
    }
}

func TestAlloc_Uncolorable(t *testing.T) {
    il := loadIL(t, "clique.il")
    g, rs, err := allocate(t, il, colors("red", "blue"), 1)
    require.Nil(t, rs)
    require.Equal(t, UncolorableError { Spilled: []ir.Reg { "a", "b" }, Colors: 2, Rounds: 1 }, err)
    require.Len(t, g.Edges(), 6)
    require.Equal(t, 2, countOps(il, ir.OP_spill))
    require.Equal(t, 2, countOps(il, ir.OP_reload))
}

func TestAlloc_UncolorableMoreRounds(t *testing.T) {
    il := loadIL(t, "clique.il")
    _, rs, err := allocate(t, il, colors("red", "blue"), 2)
    require.Nil(t, rs)
    require.Equal(t, UncolorableError { Spilled: []ir.Reg { "a", "b", "c", "d" }, Colors: 2, Rounds: 2 }, err)
    require.EqualError(t, err, "UncolorableError(2 colors): still uncolorable after 2 spill round(s), spilled: a, b, c, d")
}

func TestAlloc_NoColors(t *testing.T) {
    il := loadIL(t, "basic.il")
    g, rs, err := allocate(t, il, nil, 1)
    require.ErrorIs(t, err, ErrNoColors)
    require.Nil(t, g)
    require.Nil(t, rs)
}

func TestAlloc_EmptyIL(t *testing.T) {
    g, rs, err := allocate(t, new(ir.IL), colors("x"), 1)
    require.NoError(t, err)
    require.Zero(t, g.Len())
    require.Empty(t, rs)
}

func TestAlloc_Stats(t *testing.T) {
    runs := RunCount.Load()
    fails := FailureCount.Load()
    spills := SpillCount.Load()
    _, _, err := allocate(t, loadIL(t, "spill.il"), genericColors(3), 1)
    require.NoError(t, err)
    _, _, err = allocate(t, loadIL(t, "clique.il"), genericColors(2), 1)
    require.Error(t, err)
    require.Equal(t, runs + 2, RunCount.Load())
    require.Equal(t, fails + 1, FailureCount.Load())
    require.Equal(t, spills + 3, SpillCount.Load())
}

func TestAlloc_RandomPrograms(t *testing.T) {
    f := gofakeit.New(20221104)
    for i := 0; i < 300; i++ {
        il := randomIL(f)
        cc := genericColors(f.IntRange(1, 5))
        alloc := Allocator { MaxSpillRounds: f.IntRange(1, 4), Verify: true }

        /* random colors sometimes */
        if f.Bool() {
            alloc.Picker = RandomPicker{}
        }

        /* allocation might fail after spilling */
        g, rs, err := alloc.Allocate(context.Background(), il, cc)
        if err != nil {
            var e UncolorableError
            require.ErrorAs(t, err, &e)
            require.Nil(t, rs)
            continue
        }

        /* the coloring must be total and valid */
        require.NoError(t, Verify(g, rs))
        require.NoError(t, Verify(Build(il), rs))
        for _, r := range il.Registers() {
            require.Contains(t, cc, rs[r])
        }
    }
}
