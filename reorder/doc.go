// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package reorder implements drag-and-drop reordering of ordered lists.

# Drag Gestures

A Manager follows one gesture at a time. BeginDrag records where the drag
started; Drop commits it:

	list := reorder.NewList(items)
	m := reorder.NewManager(list.Move)
	m.BeginDrag(0)
	m.Drop(2)

The states are Idle and Dragging:

	Idle     --BeginDrag(i)-->           Dragging(i)
	Dragging --BeginDrag(j)-->           Dragging(j)
	Dragging --Drop(i), i == origin-->   Idle
	Dragging --Drop(j), j != origin-->   Idle, onMove(origin, j)

Drop while Idle does nothing. A Manager never returns errors and does not
check indices; callers validate against their own sequence length.

# Splice Semantics

Move removes the element first and inserts it at the target index of the
shortened sequence:

	[A B C D]  Move(0, 2)  →  [B C A D]
	[A B C D]  Move(3, 0)  →  [D A B C]

# Ownership

Managers are not safe for concurrent use. Each request or dialog owns its own
instance; there is no package-level Manager.
*/
package reorder
