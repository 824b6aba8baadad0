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

package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"nikand.dev/go/cli"
	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/cloudwego/kempe"
	"github.com/cloudwego/kempe/internal/atm/ralloc"
)

func main() {
	colorFlags := []*cli.Flag{
		cli.NewFlag("colors", "", "comma separated color names"),
		cli.NewFlag("palette", "", "builtin register palette (see palettes)"),
		cli.NewFlag("k", 0, "use k generic colors"),
	}

	allocCmd := &cli.Command{
		Name:        "alloc",
		Description: "allocate registers for an IL file",
		Action:      allocAct,
		Args:        cli.Args{},
		Flags: append([]*cli.Flag{
			cli.NewFlag("picker", ralloc.PickLowest, "color picker: lowest or random"),
			cli.NewFlag("rounds", ralloc.DefaultMaxSpillRounds, "maximum spill rounds"),
			cli.NewFlag("rewrite", false, "print the IL with registers replaced by colors"),
		}, colorFlags...),
	}

	analyzeCmd := &cli.Command{
		Name:        "analyze",
		Description: "report the register demand of an IL file",
		Action:      analyzeAct,
		Args:        cli.Args{},
		Flags:       colorFlags,
	}

	palettesCmd := &cli.Command{
		Name:        "palettes",
		Description: "list the builtin register palettes",
		Action:      palettesAct,
	}

	app := &cli.Command{
		Name:        "kempe",
		Description: "kempe is a graph coloring register allocator",
		Commands: []*cli.Command{
			allocCmd,
			analyzeCmd,
			palettesCmd,
		},
	}

	cli.RunAndExit(app, os.Args, os.Environ())
}

func allocAct(c *cli.Command) (err error) {
	ctx := context.Background()
	ctx = tlog.ContextWithSpan(ctx, tlog.Root())

	colors, err := colorsFlag(c)
	if err != nil {
		return err
	}

	pick, err := ralloc.PickerByName(c.String("picker"))
	if err != nil {
		return errors.Wrap(err, "picker")
	}

	for _, a := range c.Args {
		il, err := readIL(a)
		if err != nil {
			return err
		}

		_, rs, err := kempe.Allocate(ctx, il, colors,
			kempe.WithColorPicker(pick),
			kempe.WithMaxSpillRounds(c.Int("rounds")),
		)
		if err != nil {
			return errors.Wrap(err, "allocate %v", a)
		}

		if c.Bool("rewrite") {
			fmt.Printf("%v\n", kempe.Rewrite(il, rs))
		} else {
			fmt.Printf("%v\n", il)
		}

		fmt.Printf("\n%s", formatColoring(rs))
	}

	return nil
}

func analyzeAct(c *cli.Command) (err error) {
	colors, err := colorsFlag(c)
	if err != nil {
		return err
	}

	for _, a := range c.Args {
		il, err := readIL(a)
		if err != nil {
			return err
		}

		r := kempe.Analyze(il, colors)

		fmt.Printf("file:       %s\n", a)
		fmt.Printf("registers:  %d\n", r.Registers)
		fmt.Printf("edges:      %d\n", r.Edges)
		fmt.Printf("pressure:   %d\n", r.Pressure)
		fmt.Printf("max clique: %d\n", r.MaxClique)
		fmt.Printf("colors:     %d\n", r.Colors)
		fmt.Printf("colorable:  %v\n", r.Colorable)
	}

	return nil
}

func palettesAct(c *cli.Command) error {
	for _, name := range kempe.Palettes() {
		colors, err := kempe.Palette(name)
		if err != nil {
			return errors.Wrap(err, "palette %v", name)
		}

		fmt.Printf("%-8s %2d  %s\n", name, len(colors), joinColors(colors))
	}

	return nil
}

func colorsFlag(c *cli.Command) ([]kempe.Color, error) {
	switch {
	case c.String("colors") != "":
		return kempe.Colors(strings.Split(c.String("colors"), ",")...), nil
	case c.String("palette") != "":
		return kempe.Palette(c.String("palette"))
	case c.Int("k") > 0:
		return kempe.Palette(fmt.Sprintf("generic:%d", c.Int("k")))
	default:
		return nil, errors.New("one of --colors, --palette or --k is required")
	}
}

func readIL(name string) (*kempe.IL, error) {
	src, err := os.ReadFile(name)
	if err != nil {
		return nil, errors.Wrap(err, "read file")
	}

	il, err := kempe.Parse(string(src))
	if err != nil {
		return nil, errors.Wrap(err, "parse %v", name)
	}

	return il, nil
}

func formatColoring(rs kempe.Coloring) string {
	rr := make([]string, 0, len(rs))

	for r := range rs {
		rr = append(rr, string(r))
	}

	sort.Strings(rr)

	var b strings.Builder

	for _, r := range rr {
		fmt.Fprintf(&b, "%s = %s\n", r, rs[kempe.Reg(r)])
	}

	return b.String()
}

func joinColors(cc []kempe.Color) string {
	s := make([]string, len(cc))

	for i, c := range cc {
		s[i] = string(c)
	}

	return strings.Join(s, " ")
}
