/*
 * Copyright 2022 CloudWeGo Authors
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

// Package kempe is a graph coloring register allocator for a linear IR, where
// every operand carries it's own liveness flag.
package kempe

import (
	"context"

	"github.com/cloudwego/kempe/internal/atm/ir"
	"github.com/cloudwego/kempe/internal/atm/ralloc"
	"github.com/cloudwego/kempe/internal/opts"
	"github.com/cloudwego/kempe/internal/palette"
	"tlog.app/go/errors"
)

type (
	Reg         = ir.Reg
	Operand     = ir.Operand
	Instr       = ir.Instr
	IL          = ir.IL
	Builder     = ir.Builder
	Graph       = ralloc.Graph
	Color       = ralloc.Color
	Coloring    = ralloc.Coloring
	ColorPicker = ralloc.ColorPicker
)

// NewBuilder creates a builder to assemble IL programmatically.
func NewBuilder() *Builder {
	return ir.CreateBuilder()
}

// Parse parses the textual representation of an IL.
func Parse(src string) (*IL, error) {
	return ir.Parse(src)
}

// Colors converts register names into colors.
func Colors(names ...string) []Color {
	ret := make([]Color, len(names))
	for i, v := range names {
		ret[i] = Color(v)
	}
	return ret
}

// Palette returns the colors of a named register palette, see Palettes.
func Palette(name string) ([]Color, error) {
	regs, err := palette.Lookup(name)
	if err != nil {
		return nil, errors.Wrap(err, "lookup palette")
	}
	return Colors(regs...), nil
}

// Palettes returns the names of the builtin register palettes. "generic:N"
// is also accepted by Palette.
func Palettes() []string {
	return palette.Names()
}

// Allocate colors every register of il with one of colors, inserting spill
// code when needed. il is rewritten in place.
//
// On success it returns the final interference graph and a coloring covering
// every register of the rewritten il. When il is still uncolorable after the
// last spill round, the coloring is nil and the error is an UncolorableError.
func Allocate(ctx context.Context, il *IL, colors []Color, options ...Option) (*Graph, Coloring, error) {
	o := opts.GetDefaultOptions()
	for _, fn := range options {
		fn(&o)
	}
	return o.Allocator().Allocate(ctx, il, colors)
}

// Rewrite returns a copy of il with every colored register replaced by it's
// color.
func Rewrite(il *IL, c Coloring) *IL {
	ret := il.Clone()
	ret.Replace(func(r Reg) Reg {
		if v, ok := c[r]; ok {
			return Reg(v)
		} else {
			return r
		}
	})
	return ret
}

// Report describes the register demand of an IL.
type Report struct {
	Registers int  // number of registers
	Edges     int  // number of interference edges
	Pressure  int  // maximum number of simultaneously live registers
	MaxClique int  // lower bound of the colors needed without spilling
	Colors    int  // number of distinct colors offered
	Colorable bool // whether the colors suffice without spilling
}

// Analyze measures the register demand of il without modifying it.
func Analyze(il *IL, colors []Color) Report {
	il = il.Clone()
	g := ralloc.Build(il)
	colors = ralloc.UniqueColors(colors)

	/* measure before coalescing */
	ret := Report{
		Registers: g.Len(),
		Edges:     len(g.Edges()),
		Pressure:  ralloc.Pressure(il),
		MaxClique: len(ralloc.MaxClique(g)),
		Colors:    len(colors),
	}

	/* then try the first allocation attempt */
	ralloc.Coalesce(il, g)
	_, ret.Colorable = ralloc.ColorGraph(g, il.Registers(), colors, nil)
	return ret
}
