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

func TestText_Parse(t *testing.T) {
    il, err := Parse(`
# comment line
bb 0.25 a b!    # trailing comment
    op "x = #a" c! <- a b!
    copy d <- c
    reload e
    spill <- e!
    op "nothing"
`)
    require.NoError(t, err)
    require.Equal(t, 6, il.Len())
    require.Equal(t, &Instr { Op: OP_bb, Freq: 0.25, Defs: []Operand {{ R: "a" }, { R: "b", Dead: true }} }, il.Ins[0])
    require.Equal(t, "x = #a", il.Ins[1].Name)
    require.Equal(t, []Operand {{ R: "c", Dead: true }}, il.Ins[1].Defs)
    require.Equal(t, []Operand {{ R: "a" }, { R: "b", Dead: true }}, il.Ins[1].Uses)
    require.True(t, il.Ins[2].IsCopy())
    require.Equal(t, OP_reload, il.Ins[3].Op)
    require.Equal(t, OP_spill, il.Ins[4].Op)
    require.Empty(t, il.Ins[5].Defs)
    require.Empty(t, il.Ins[5].Uses)
}

func TestText_RoundTrip(t *testing.T) {
    src := "bb -0.1 c e\n" +
        `    op "f := 2 + e" f <- e!` + "\n" +
        "    reload c\n" +
        "    spill <- f!\n" +
        "    copy g <- c!\n" +
        "bb 1"
    il, err := Parse(src)
    require.NoError(t, err)
    require.Equal(t, src, il.String())
    again, err := Parse(il.String())
    require.NoError(t, err)
    require.Equal(t, il, again)
}

func TestText_Errors(t *testing.T) {
    tests := []struct {
        src  string
        line int
    } {
        { src: "foo a", line: 1 },
        { src: "bb", line: 1 },
        { src: "bb x a", line: 1 },
        { src: "\nop a <- b", line: 2 },
        { src: `"bb" 1`, line: 1 },
        { src: `op "x" a <- b <- c`, line: 1 },
        { src: `op "x" ! <- b`, line: 1 },
        { src: `op "x" a!! <- b`, line: 1 },
        { src: `op "x" a <- b!!`, line: 1 },
        { src: `op "unterminated`, line: 1 },
        { src: "bb 1\n\ncopy a b", line: 3 },
        { src: "copy a <- b c", line: 1 },
        { src: "reload <- a", line: 1 },
        { src: "spill a", line: 1 },
    }
    for _, tc := range tests {
        _, err := Parse(tc.src)
        require.Error(t, err, tc.src)
        se, ok := err.(SyntaxError)
        require.True(t, ok, tc.src)
        require.Equal(t, tc.line, se.Line, tc.src)
    }
}
