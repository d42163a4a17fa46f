// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scenario

import (
	"fmt"
	"image"
	"strings"

	"cogentcore.org/plotinteract/base/errors"
	"cogentcore.org/plotinteract/events"
	"cogentcore.org/plotinteract/events/key"
	"cogentcore.org/plotinteract/interact"
	"cogentcore.org/plotinteract/overlays"
	"cogentcore.org/plotinteract/tools"
	"github.com/jinzhu/copier"
)

var (
	// ErrUnknownKind is returned for an unknown tool or decoration kind.
	ErrUnknownKind = errors.New("scenario: unknown kind")

	// ErrUnknownEvent is returned for an unknown event type name.
	ErrUnknownEvent = errors.New("scenario: unknown event type")

	// ErrBadGeometry is returned for a malformed rect or size.
	ErrBadGeometry = errors.New("scenario: bad geometry")
)

// Built is a component hierarchy built from a [File].
type Built struct {
	Scene *interact.Scene
	Root  *interact.Container

	// paths are the component paths in depth first order.
	paths []string
	nodes map[string]interact.Dispatcher
}

// Build builds the scene described by the file.
func Build(f *File) (*Built, error) {
	if len(f.Root.Size) != 2 {
		return nil, fmt.Errorf("%w: root size must be [width, height]", ErrBadGeometry)
	}
	b := &Built{nodes: map[string]interact.Dispatcher{}}
	root := interact.NewContainer(f.Root.Name, image.Pt(f.Root.Size[0], f.Root.Size[1]))
	if err := b.setup(f, &f.Root, root); err != nil {
		return nil, err
	}
	b.Root = root
	b.Scene = interact.NewScene(root)
	return b, nil
}

// Component returns the component at the given slash separated path, or nil.
func (b *Built) Component(path string) *interact.Component {
	d, ok := b.nodes[path]
	if !ok {
		return nil
	}
	return d.AsComponent()
}

// Paths returns the component paths in depth first order.
func (b *Built) Paths() []string {
	return b.paths
}

// Status returns one line per component with its active tool and the
// state of each of its tools.
func (b *Built) Status() []string {
	res := make([]string, 0, len(b.paths))
	for _, p := range b.paths {
		c := b.nodes[p].AsComponent()
		var sb strings.Builder
		sb.WriteString(p)
		sb.WriteString(" active=")
		if at := c.ActiveTool(); at != nil {
			sb.WriteString(at.AsToolBase().Name)
		} else {
			sb.WriteString("-")
		}
		for _, t := range c.Tools() {
			tb := t.AsToolBase()
			fmt.Fprintf(&sb, " %s:%v", tb.Name, tb.State())
		}
		res = append(res, sb.String())
	}
	return res
}

func (b *Built) setup(f *File, ns *NodeSpec, d interact.Dispatcher) error {
	c := d.AsComponent()
	path := c.Path()
	b.paths = append(b.paths, path)
	b.nodes[path] = d

	if len(ns.Handle) > 0 {
		handle, err := parseTypes(ns.Handle)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		for _, tp := range handle {
			c.On(tp, handler(handle))
		}
	}
	for _, ts := range ns.Tools {
		if err := b.addTool(f, c, ts); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	for _, ds := range ns.Overlays {
		dec, err := decoration(c, ds, true)
		if err != nil {
			return fmt.Errorf("%s: overlay: %w", path, err)
		}
		c.AddOverlay(dec)
	}
	for _, ds := range ns.Underlays {
		dec, err := decoration(c, ds, false)
		if err != nil {
			return fmt.Errorf("%s: underlay: %w", path, err)
		}
		c.AddUnderlay(dec)
	}
	if len(ns.Children) == 0 {
		return nil
	}
	ct, ok := d.(*interact.Container)
	if !ok {
		return fmt.Errorf("%s: children on a non-container", path)
	}
	for i := range ns.Children {
		cs := &ns.Children[i]
		if len(cs.Rect) != 4 {
			return fmt.Errorf("%w: %s/%s: rect must be [x0, y0, x1, y1]", ErrBadGeometry, path, cs.Name)
		}
		rect := image.Rect(cs.Rect[0], cs.Rect[1], cs.Rect[2], cs.Rect[3])
		var cd interact.Dispatcher
		if cs.Container || len(cs.Children) > 0 {
			cd = interact.NewContainer(cs.Name, rect.Size())
		} else {
			cd = interact.NewComponent(cs.Name, rect.Size())
		}
		if err := ct.AddChild(cd, rect); err != nil {
			return fmt.Errorf("%s/%s: %w", path, cs.Name, err)
		}
		if err := b.setup(f, cs, cd); err != nil {
			return err
		}
	}
	return nil
}

// mergeDefaults returns the tool spec with the empty fields filled in
// from the file defaults.
func (f *File) mergeDefaults(ts ToolSpec) (ToolSpec, error) {
	var merged ToolSpec
	if err := copier.CopyWithOption(&merged, &f.Defaults, copier.Option{DeepCopy: true}); err != nil {
		return merged, err
	}
	if err := copier.CopyWithOption(&merged, &ts, copier.Option{IgnoreEmpty: true, DeepCopy: true}); err != nil {
		return merged, err
	}
	if ts.Name == "" {
		merged.Name = merged.Kind
	}
	return merged, nil
}

func (b *Built) addTool(f *File, c *interact.Component, spec ToolSpec) error {
	ts, err := f.mergeDefaults(spec)
	if err != nil {
		return err
	}
	t, err := newTool(ts)
	if err != nil {
		return err
	}
	if err := c.AddTool(t); err != nil {
		return fmt.Errorf("tool %q: %w", ts.Name, err)
	}
	if ts.Active {
		if err := c.SetActiveTool(t); err != nil {
			return fmt.Errorf("tool %q: %w", ts.Name, err)
		}
	}
	return nil
}

func newTool(ts ToolSpec) (interact.Tool, error) {
	switch ts.Kind {
	case "drag":
		d := tools.NewDrag(ts.Name)
		if ts.Button != "" {
			but, ok := events.ParseButton(ts.Button)
			if !ok {
				return nil, fmt.Errorf("tool %q: unknown button %q", ts.Name, ts.Button)
			}
			d.Button = but
		}
		mods, err := parseMods(ts.Mods)
		if err != nil {
			return nil, fmt.Errorf("tool %q: %w", ts.Name, err)
		}
		d.Mods = mods
		if ts.Threshold > 0 {
			d.Threshold = ts.Threshold
		}
		if ts.CancelKey != "" {
			sp, err := key.NewSpec(ts.CancelKey)
			if err != nil {
				return nil, fmt.Errorf("tool %q: %w", ts.Name, err)
			}
			d.CancelKey = sp
		}
		d.CancelOnLeave = ts.CancelOnLeave
		if ts.EnableKey != "" {
			if err := toggled(d, ts); err != nil {
				return nil, fmt.Errorf("tool %q: %w", ts.Name, err)
			}
		}
		return d, nil
	case "tracker":
		return tools.NewTracker(ts.Name), nil
	case "recorder":
		var caps interact.Capabilities
		if ts.Listener {
			caps |= interact.Listener
		}
		if ts.Captive {
			caps |= interact.Captive
		}
		if caps == 0 {
			caps = interact.Listener
		}
		handle, err := parseTypes(ts.Handle)
		if err != nil {
			return nil, fmt.Errorf("tool %q: %w", ts.Name, err)
		}
		return NewRecorder(ts.Name, caps, handle...), nil
	}
	return nil, fmt.Errorf("%w %q for tool %q", ErrUnknownKind, ts.Kind, ts.Name)
}

// toggled sets up a drag that must be enabled by key.
func toggled(d *tools.Drag, ts ToolSpec) error {
	enable, err := key.NewSpec(ts.EnableKey)
	if err != nil {
		return err
	}
	disable := enable
	if ts.DisableKey != "" {
		if disable, err = key.NewSpec(ts.DisableKey); err != nil {
			return err
		}
	}
	d.AlwaysOn = false
	d.EnableKey = enable
	d.DisableKey = disable
	d.DisableOnComplete = ts.DisableOnComplete
	return nil
}

func decoration(c *interact.Component, ds DecorationSpec, overlay bool) (interact.Decoration, error) {
	switch ds.Kind {
	case "legend":
		if !overlay {
			return nil, fmt.Errorf("%w: legends are overlays", ErrUnknownKind)
		}
		l := overlays.NewLegend(ds.Labels...)
		if ds.Align != "" {
			al, err := overlays.ParseAlignment(ds.Align)
			if err != nil {
				return nil, err
			}
			l.Align = al
		}
		if ds.Padding > 0 {
			l.Padding = ds.Padding
		}
		if len(ds.Size) == 2 {
			l.Size = image.Pt(ds.Size[0], ds.Size[1])
		}
		l.PassThrough = ds.PassThrough
		l.Visible = !ds.Hidden
		l.SetComponent(c)
		return l, nil
	case "recorder":
		handle, err := parseTypes(ds.Handle)
		if err != nil {
			return nil, err
		}
		return interact.DecorationFunc(handler(handle)), nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownKind, ds.Kind)
}

// parseMods parses "+" separated modifier names such as "shift+ctrl".
func parseMods(s string) (key.Modifiers, error) {
	var mods key.Modifiers
	if s == "" {
		return mods, nil
	}
	for _, part := range strings.Split(s, "+") {
		m, ok := key.ParseModifier(part)
		if !ok {
			return 0, fmt.Errorf("unknown modifier %q", part)
		}
		mods |= m
	}
	return mods, nil
}
