// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package interact routes input events to the tools, overlays and underlays
attached to plot components.

A [Component] owns an ordered collection of [Tool]s and at most one active
tool. [Component.Dispatch] delivers an event to the active tool first, and
stops there if it was handled. Otherwise the event goes to the overlays, the
component's own listeners and the underlays, stopping at the first one that
handles it, and then to every listener tool in registration order whether or
not the event was handled.

Captive tools move through the [Idle], [Listening] and [Active] states.
A listening tool becomes active only through [Component.TryActivate], which
never displaces a tool that already holds the active slot.

A [Container] is a component whose own handling forwards the event to the
children under the pointer, top-most first, each in its own coordinate space
and each through its full dispatch chain. A [Scene] pumps queued events into
the root container one at a time and supports pointer capture.
*/
package interact
