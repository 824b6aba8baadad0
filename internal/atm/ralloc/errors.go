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
    `strings`

    `github.com/cloudwego/kempe/internal/atm/ir`
    `tlog.app/go/errors`
)

// ErrNoColors is returned when there are no colors to allocate from.
var ErrNoColors = errors.New("no colors to allocate from")

// UncolorableError occures when the IL still can not be colored after the
// last spill round.
type UncolorableError struct {
    Spilled []ir.Reg
    Colors  int
    Rounds  int
}

func (self UncolorableError) Error() string {
    return fmt.Sprintf(
        "UncolorableError(%d colors): still uncolorable after %d spill round(s), spilled: %s",
        self.Colors,
        self.Rounds,
        joinRegs(self.Spilled),
    )
}

// ConflictError occures when two interfering registers share the same color,
// or when a register is left uncolored.
type ConflictError struct {
    X     ir.Reg
    Y     ir.Reg
    Color Color
}

func (self ConflictError) Error() string {
    if self.Y == "" {
        return fmt.Sprintf("ConflictError(%s): register is not colored", self.X)
    } else {
        return fmt.Sprintf("ConflictError(%s, %s): both colored with %s", self.X, self.Y, self.Color)
    }
}

func joinRegs(rr []ir.Reg) string {
    buf := make([]string, len(rr))
    for i, r := range rr { buf[i] = string(r) }
    return strings.Join(buf, ", ")
}
