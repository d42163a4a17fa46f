// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scenario

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"

	"cogentcore.org/plotinteract/events"
	"github.com/mattn/go-shellwords"
)

// Step is one line of an input script.
type Step struct {

	// Source is the line the step was parsed from.
	Source string

	// Line is the 1-based line number in the script.
	Line int

	// Type is the type of event to send.
	Type events.Types

	// Pos is the pointer position, in scene coordinates.
	Pos image.Point

	// HasPos is whether the line gave a position. If not, the
	// last pointer position is used.
	HasPos bool

	// Args are the remaining positional arguments.
	Args []string

	// NameValue are the key=value arguments.
	NameValue map[string]string
}

// String returns the step in canonical script form.
func (st *Step) String() string {
	if st == nil {
		return "<nil>"
	}
	parts := []string{scriptName(st.Type)}
	if st.HasPos {
		parts = append(parts, strconv.Itoa(st.Pos.X), strconv.Itoa(st.Pos.Y))
	}
	parts = append(parts, st.Args...)
	for _, k := range slices.Sorted(maps.Keys(st.NameValue)) {
		parts = append(parts, k+"="+st.NameValue[k])
	}
	return strings.Join(parts, " ")
}

var scriptNames = map[events.Types]string{
	events.MouseDown:  "down",
	events.MouseUp:    "up",
	events.MouseMove:  "move",
	events.MouseDrag:  "drag",
	events.Scroll:     "scroll",
	events.MouseEnter: "enter",
	events.MouseLeave: "leave",
	events.KeyChord:   "key",
}

func scriptName(tp events.Types) string {
	if nm, ok := scriptNames[tp]; ok {
		return nm
	}
	return tp.String()
}

// ParseStep parses a script line and returns the [Step] in it, or nil
// for blank and comment lines. Lines are of the form:
//
//	type [x y] arg0 key0=value0 arg1 key1=value1
//
// where type is one of down, up, move, drag, scroll, enter, leave and key,
// and the positional and key-value arguments can be in any order after
// the optional position. A key step only has a position when the key is
// given with name=, so that "key 1" and "key 1 2" name digit keys.
// Arguments are split with shell quoting rules, and everything after
// a # is a comment.
func ParseStep(line string) (*Step, error) {
	words, err := shellwords.Parse(stripComment(line))
	if err != nil {
		return nil, fmt.Errorf("error parsing args %w", err)
	}
	if len(words) == 0 {
		return nil, nil
	}
	st := &Step{Source: strings.TrimSpace(line), NameValue: map[string]string{}}
	tp, ok := events.ParseType(words[0])
	if !ok || tp == events.UnknownType {
		return nil, fmt.Errorf("%w %q", ErrUnknownEvent, words[0])
	}
	st.Type = tp
	words = words[1:]
	if len(words) >= 2 && (tp != events.KeyChord || hasName(words)) {
		x, xerr := strconv.Atoi(words[0])
		y, yerr := strconv.Atoi(words[1])
		if xerr == nil && yerr == nil {
			st.Pos = image.Pt(x, y)
			st.HasPos = true
			words = words[2:]
		}
	}
	for _, w := range words {
		if k, v, found := strings.Cut(w, "="); found {
			st.NameValue[k] = v
			continue
		}
		st.Args = append(st.Args, w)
	}
	return st, nil
}

// hasName returns whether the words have a name= argument.
func hasName(words []string) bool {
	return slices.ContainsFunc(words, func(w string) bool {
		return strings.HasPrefix(w, "name=")
	})
}

// stripComment removes a # comment that is not inside quotes.
func stripComment(line string) string {
	var quote rune
	for i, r := range line {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			}
		case r == '"' || r == '\'':
			quote = r
		case r == '#':
			return line[:i]
		}
	}
	return line
}

// ParseScript parses all of the steps in the script.
func ParseScript(r io.Reader) ([]*Step, error) {
	var steps []*Step
	sc := bufio.NewScanner(r)
	ln := 0
	for sc.Scan() {
		ln++
		st, err := ParseStep(sc.Text())
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", ln, err)
		}
		if st == nil {
			continue
		}
		st.Line = ln
		steps = append(steps, st)
	}
	return steps, sc.Err()
}
