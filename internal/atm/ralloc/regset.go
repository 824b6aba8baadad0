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

type RegSet map[ir.Reg]struct{}

func regset(rr ...ir.Reg) (rs RegSet) {
    rs = make(RegSet, len(rr))
    for _, r := range rr { rs.Add(r) }
    return
}

func (self RegSet) Add(r ir.Reg) {
    self[r] = struct{}{}
}

func (self RegSet) Has(r ir.Reg) bool {
    _, ok := self[r]
    return ok
}

func (self RegSet) Remove(r ir.Reg) {
    delete(self, r)
}

func (self RegSet) union(rs RegSet) {
    for r := range rs {
        self.Add(r)
    }
}

func (self RegSet) Clone() (rs RegSet) {
    rs = make(RegSet, len(self))
    for r := range self { rs.Add(r) }
    return
}

// Slice returns all the registers sorted by name.
func (self RegSet) Slice() []ir.Reg {
    nb := len(self)
    rr := make([]ir.Reg, 0, nb)

    /* extract all registers */
    for r := range self {
        rr = append(rr, r)
    }

    /* sort by register name */
    sort.Slice(rr, func(i int, j int) bool { return rr[i] < rr[j] })
    return rr
}

func (self RegSet) String() string {
    nb := len(self)
    rs := make([]string, 0, nb)

    /* convert every register */
    for _, r := range self.Slice() {
        rs = append(rs, r.String())
    }

    /* join them together */
    return fmt.Sprintf(
        "{%s}",
        strings.Join(rs, ", "),
    )
}
