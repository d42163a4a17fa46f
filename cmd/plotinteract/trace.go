// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"slices"

	"cogentcore.org/plotinteract/interact"
	"cogentcore.org/plotinteract/scenario"
	"github.com/muesli/termenv"
)

// printer prints replay results, coloring the dispatch stages when the
// output is a color capable terminal.
type printer struct {
	out  *termenv.Output
	only []interact.Stage
}

func newPrinter(w io.Writer, only []string, opts ...termenv.OutputOption) (*printer, error) {
	p := &printer{out: termenv.NewOutput(w, opts...)}
	for _, nm := range only {
		st, ok := interact.ParseStage(nm)
		if !ok {
			return nil, fmt.Errorf("unknown stage %q", nm)
		}
		p.only = append(p.only, st)
	}
	return p, nil
}

// stageColor returns the color used for the given stage.
func stageColor(st interact.Stage) termenv.Color {
	switch st {
	case interact.StageActive:
		return termenv.ANSIMagenta
	case interact.StageOverlay, interact.StageUnderlay:
		return termenv.ANSICyan
	case interact.StageSelf:
		return termenv.ANSIBlue
	default:
		return termenv.ANSIGreen
	}
}

func (p *printer) result(res *scenario.Result) {
	fmt.Fprintln(p.out, p.out.String(fmt.Sprintf("%d: %s", res.Step.Line, res.Step)).Bold())
	for _, d := range res.Deliveries {
		if len(p.only) > 0 && !slices.Contains(p.only, d.Stage) {
			continue
		}
		p.delivery(d)
	}
}

func (p *printer) delivery(d interact.Delivery) {
	stage := p.out.String(fmt.Sprintf("%-8s", d.Stage)).Foreground(stageColor(d.Stage))
	line := fmt.Sprintf("  %s %s %s %v (%d,%d)", stage, d.Path, d.Target, d.Type, d.Pos.X, d.Pos.Y)
	if d.Handled {
		line += " " + p.out.String("handled").Faint().String()
	}
	if d.Err != nil {
		line += " " + p.out.String("error: "+d.Err.Error()).Foreground(termenv.ANSIRed).String()
	}
	fmt.Fprintln(p.out, line)
}

func (p *printer) status(lines []string) {
	fmt.Fprintln(p.out, p.out.String("status").Bold())
	for _, ln := range lines {
		fmt.Fprintln(p.out, "  "+ln)
	}
}
