// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interact

import "cogentcore.org/plotinteract/events"

// Decoration is an overlay or underlay of a component. Decorations are
// drawn by the rendering system in list order; for dispatch, each one in
// turn gets a chance to handle the event, and the first that marks it
// handled stops delivery to the remaining decorations, the component's own
// listeners and (for overlays) the underlays.
type Decoration interface {
	HandleEvent(e events.Event)
}

// DecorationFunc adapts a function to the [Decoration] interface.
type DecorationFunc func(e events.Event)

func (df DecorationFunc) HandleEvent(e events.Event) {
	df(e)
}
