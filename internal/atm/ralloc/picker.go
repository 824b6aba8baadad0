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
    `github.com/bytedance/gopkg/lang/fastrand`
    `github.com/cloudwego/kempe/internal/atm/ir`
    `tlog.app/go/errors`
)

// Color is an opaque physical register label.
type Color string

// Coloring maps every register to it's color.
type Coloring map[ir.Reg]Color

// ColorPicker chooses one of the colors that are not used by any neighbor of r.
// `free` is never empty, and is in the same order as the available colors.
type ColorPicker interface {
    Pick(r ir.Reg, free []Color) Color
}

type (
    LowestPicker struct{}
    RandomPicker struct{}
)

// Pick always chooses the first free color, which makes the coloring
// reproducible.
func (LowestPicker) Pick(_ ir.Reg, free []Color) Color {
    return free[0]
}

func (RandomPicker) Pick(_ ir.Reg, free []Color) Color {
    return free[fastrand.Intn(len(free))]
}

const (
    PickLowest = "lowest"
    PickRandom = "random"
)

func PickerByName(name string) (ColorPicker, error) {
    switch name {
        case ""         : return LowestPicker{}, nil
        case PickLowest : return LowestPicker{}, nil
        case PickRandom : return RandomPicker{}, nil
        default         : return nil, errors.New("unknown color picker: %q", name)
    }
}

// UniqueColors removes the duplicated colors while keeping the order. The
// allocator only ever counts the distinct colors.
func UniqueColors(cc []Color) []Color {
    ret := make([]Color, 0, len(cc))
    dup := make(map[Color]struct{}, len(cc))

    /* keep only the first occurance */
    for _, c := range cc {
        if _, ok := dup[c]; !ok {
            dup[c] = struct{}{}
            ret = append(ret, c)
        }
    }

    /* all done */
    return ret
}
