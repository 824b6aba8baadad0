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

    `github.com/cloudwego/kempe/internal/atm/ir`
    `github.com/davecgh/go-spew/spew`
    `tlog.app/go/errors`
    `tlog.app/go/tlog`
)

const (
    DefaultMaxSpillRounds = 1
)

// Allocator holds the parameters of an allocation. The zero value is usable,
// and means one spill round, lowest color first, and no verification.
type Allocator struct {
    MaxSpillRounds int
    Picker         ColorPicker
    Verify         bool
}

type _Run struct {
    tr      tlog.Span
    il      *ir.IL
    cc      []Color
    pick    ColorPicker
    ok      bool
    rounds  int
    g       *Graph
    rs      Coloring
    cost    Cost
    spill   RegSet
    spilled RegSet
}

type _Pass interface {
    Apply(*_Run)
}

type _PassDescriptor struct {
    Pass _Pass
    Name string
}

type (
    _GraphBuild     struct{}
    _CopyCoalesce   struct{}
    _GraphColor     struct{}
    _SpillCost      struct{}
    _SpillSelect    struct{}
    _SpillInsertion struct{}
)

var colorPasses = [...]_PassDescriptor {
    { Name: "Interference Graph Construction" , Pass: new(_GraphBuild) },
    { Name: "Copy Coalescing"                 , Pass: new(_CopyCoalesce) },
    { Name: "Graph Coloring"                  , Pass: new(_GraphColor) },
}

var spillPasses = [...]_PassDescriptor {
    { Name: "Spill Cost Estimation" , Pass: new(_SpillCost) },
    { Name: "Spill Selection"       , Pass: new(_SpillSelect) },
    { Name: "Spill Code Insertion"  , Pass: new(_SpillInsertion) },
}

func (self _GraphBuild) Apply(rt *_Run) {
    g, miss := build(rt.il)
    rt.g = g

    /* dead usages of registers that are not live are ignored */
    if miss != 0 && rt.tr.If("liveness") {
        rt.tr.Printw("ignored dead usages of non-live registers", "count", miss)
    }

    /* dump the graph if needed */
    if rt.tr.If("dump_graph") {
        rt.tr.Printw("interference graph", "graph", g.String())
    }
}

func (self _CopyCoalesce) Apply(rt *_Run) {
    if n := Coalesce(rt.il, rt.g); n != 0 {
        CoalesceCount.Add(int64(n))
        rt.tr.Printw("coalesced copies", "count", n, "nodes", rt.g.Len())
    }
}

func (self _GraphColor) Apply(rt *_Run) {
    rt.rs, rt.ok = ColorGraph(rt.g, rt.il.Registers(), rt.cc, rt.pick)
    rt.tr.Printw("graph coloring", "ok", rt.ok, "nodes", rt.g.Len(), "colors", len(rt.cc))
}

func (self _SpillCost) Apply(rt *_Run) {
    rt.cost = EstimateCosts(rt.il)
}

func (self _SpillSelect) Apply(rt *_Run) {
    rt.spill = SelectSpills(rt.g, len(rt.cc), rt.cost)
    rt.tr.Printw("spill selection", "round", rt.rounds, "spill", rt.spill.String())

    /* accumulate the spilled registers */
    rt.spilled.union(rt.spill)
}

func (self _SpillInsertion) Apply(rt *_Run) {
    rt.il.Ins = InsertSpillCode(rt.il, rt.spill).Ins
    SpillCount.Add(int64(len(rt.spill)))

    /* dump the rewritten IL if needed */
    if rt.tr.If("dump_il") {
        rt.tr.Printw("spill code inserted", "il", rt.il.String())
    }
}

func (self *_Run) run(passes []_PassDescriptor) {
    for _, p := range passes {
        if self.tr.If("passes") {
            self.tr.Printw("run pass", "name", p.Name)
        }
        p.Pass.Apply(self)
    }
}

func (self Allocator) rounds() int {
    if self.MaxSpillRounds <= 0 {
        return DefaultMaxSpillRounds
    } else {
        return self.MaxSpillRounds
    }
}

func (self Allocator) picker() ColorPicker {
    if self.Picker == nil {
        return LowestPicker{}
    } else {
        return self.Picker
    }
}

// Allocate colors every register in il with one of the colors. When the
// registers can not be colored, some of them are spilled to memory, and the
// allocation is retried at most MaxSpillRounds times.
//
// The IL is modified in place, copies are coalesced, spill code is inserted,
// and spilled registers are removed from the block boundaries. The final
// interference graph is always returned, together with either a coloring that
// covers every register of the rewritten IL, or an UncolorableError.
func (self Allocator) Allocate(ctx context.Context, il *ir.IL, colors []Color) (g *Graph, rs Coloring, err error) {
    tr, _ := tlog.SpawnFromContextAndWrap(ctx, "ralloc: allocate", "instrs", il.Len(), "colors", len(colors))
    defer tr.Finish("err", &err)

    /* need at least one color */
    cc := UniqueColors(colors)
    if len(cc) == 0 {
        return nil, nil, ErrNoColors
    }

    /* allocation state */
    rt := &_Run {
        tr      : tr,
        il      : il,
        cc      : cc,
        pick    : self.picker(),
        spilled : make(RegSet),
    }

    /* the first attempt */
    RunCount.Add(1)
    rt.run(colorPasses[:])

    /* spill and retry */
    for !rt.ok && rt.rounds < self.rounds() {
        rt.rounds++
        SpillRounds.Add(1)
        rt.run(spillPasses[:])
        rt.run(colorPasses[:])
    }

    /* still failed after spilling */
    if !rt.ok {
        FailureCount.Add(1)
        return rt.g, nil, UncolorableError {
            Spilled : rt.spilled.Slice(),
            Colors  : len(cc),
            Rounds  : rt.rounds,
        }
    }

    /* dump the coloring if needed */
    if tr.If("dump_coloring") {
        tr.Printw("coloring", "coloring", spew.Sdump(rt.rs))
    }

    /* verify the coloring if needed */
    if self.Verify {
        if err = Verify(rt.g, rt.rs); err != nil {
            return rt.g, nil, errors.Wrap(err, "verify coloring")
        }
    }

    /* all done */
    return rt.g, rt.rs, nil
}
