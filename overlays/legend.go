// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package overlays provides decorations drawn over plot components
// that take part in event dispatch.
package overlays

import (
	"fmt"
	"image"
	"slices"
	"strings"

	"cogentcore.org/plotinteract/events"
	"cogentcore.org/plotinteract/interact"
)

// Alignments are the corners of a component a legend can be placed in.
type Alignments int32

const (
	UpperRight Alignments = iota
	UpperLeft
	LowerLeft
	LowerRight
)

var alignNames = [...]string{"ur", "ul", "ll", "lr"}

func (al Alignments) String() string {
	if al < 0 || int(al) >= len(alignNames) {
		return fmt.Sprintf("Alignments(%d)", int32(al))
	}
	return alignNames[al]
}

// ParseAlignment returns the alignment with the given short name.
func ParseAlignment(s string) (Alignments, error) {
	if i := slices.Index(alignNames[:], strings.ToLower(s)); i >= 0 {
		return Alignments(i), nil
	}
	return UpperRight, fmt.Errorf("overlays: unknown alignment %q", s)
}

func (al Alignments) MarshalText() ([]byte, error) {
	return []byte(al.String()), nil
}

func (al *Alignments) UnmarshalText(text []byte) error {
	v, err := ParseAlignment(string(text))
	if err != nil {
		return err
	}
	*al = v
	return nil
}

// Legend is an overlay listing labeled entries in a box aligned to a
// corner of its component. Pointer events over the box are consumed so
// that they do not reach the plot beneath, unless PassThrough is set.
type Legend struct {

	// Align is the corner the legend is placed in.
	Align Alignments

	// Padding is the distance from the component edges, and the
	// space around the labels inside the box.
	Padding int

	// Size is the box size. If zero, it is computed from the labels.
	Size image.Point

	// Labels are the legend entries, one per line.
	Labels []string

	// CharSize is the size of one character of label text, used to lay
	// out the labels when Size is zero.
	CharSize image.Point

	// Visible is whether the legend is shown. Hidden legends ignore events.
	Visible bool

	// PassThrough lets pointer events over the box continue to the
	// component and its underlays.
	PassThrough bool

	// OnSelect is called with the entry index when an entry is clicked.
	OnSelect func(l *Legend, idx int)

	// comp is the component the legend is drawn over.
	comp *interact.Component
}

// NewLegend returns a visible upper right legend with the given labels.
func NewLegend(labels ...string) *Legend {
	return &Legend{Padding: 5, Labels: labels, CharSize: image.Pt(7, 14), Visible: true}
}

// Attach sets the component of the legend and adds the legend
// as an overlay of it.
func (l *Legend) Attach(c *interact.Component) *Legend {
	l.SetComponent(c)
	c.AddOverlay(l)
	return l
}

// SetComponent sets the component the legend is drawn over, whose
// size determines the legend box.
func (l *Legend) SetComponent(c *interact.Component) {
	l.comp = c
}

// LayoutSize returns the box size: Size if set, or otherwise the size
// needed for the labels.
func (l *Legend) LayoutSize() image.Point {
	if l.Size != (image.Point{}) {
		return l.Size
	}
	wd := 0
	for _, lb := range l.Labels {
		wd = max(wd, len([]rune(lb)))
	}
	return image.Pt(wd*l.CharSize.X+2*l.Padding, len(l.Labels)*l.CharSize.Y+2*l.Padding)
}

// Box returns the legend box for a component of the given size.
func (l *Legend) Box(size image.Point) image.Rectangle {
	sz := l.LayoutSize()
	var pos image.Point
	switch l.Align {
	case UpperLeft:
		pos = image.Pt(l.Padding, l.Padding)
	case LowerLeft:
		pos = image.Pt(l.Padding, size.Y-l.Padding-sz.Y)
	case LowerRight:
		pos = image.Pt(size.X-l.Padding-sz.X, size.Y-l.Padding-sz.Y)
	default:
		pos = image.Pt(size.X-l.Padding-sz.X, l.Padding)
	}
	return image.Rectangle{Min: pos, Max: pos.Add(sz)}
}

// EntryAt returns the index of the label at the given point in component
// coordinates, or -1.
func (l *Legend) EntryAt(p image.Point) int {
	if l.comp == nil || l.CharSize.Y <= 0 {
		return -1
	}
	box := l.Box(l.comp.Size)
	if !p.In(box) {
		return -1
	}
	idx := (p.Y - box.Min.Y - l.Padding) / l.CharSize.Y
	if p.Y-box.Min.Y < l.Padding || idx >= len(l.Labels) {
		return -1
	}
	return idx
}

// HandleEvent consumes pointer events over the legend box.
func (l *Legend) HandleEvent(e events.Event) {
	if !l.Visible || l.comp == nil || !e.Type().IsMouse() {
		return
	}
	if !e.Pos().In(l.Box(l.comp.Size)) {
		return
	}
	if e.Type() == events.MouseDown && l.OnSelect != nil {
		if idx := l.EntryAt(e.Pos()); idx >= 0 {
			l.OnSelect(l, idx)
		}
	}
	if !l.PassThrough {
		e.SetHandled()
	}
}
