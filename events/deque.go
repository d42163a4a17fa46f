// Copyright 2018 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"sync"
	"sync/atomic"
)

// Queue is a lock-free FIFO freelist-based event queue.
// It is the only event structure that may be touched from goroutines other
// than the one dispatching: the external event loop calls [Queue.Send] and the
// dispatching goroutine drains it with [Queue.NextEvent] or [Queue.Drain].
// The zero value is ready to use.
// It is based on https://github.com/fyne-io/fyne/blob/master/internal/async/queue_canvasobject.go
type Queue struct {
	head atomic.Pointer[queueEvent]
	tail atomic.Pointer[queueEvent]
	len  atomic.Uint64
	once sync.Once
}

type queueEvent struct {
	next atomic.Pointer[queueEvent]
	v    Event
}

var queueEventPool = sync.Pool{
	New: func() any { return &queueEvent{} },
}

func (q *Queue) init() {
	q.once.Do(func() {
		head := &queueEvent{}
		q.head.Store(head)
		q.tail.Store(head)
	})
}

// NextEvent removes and returns the next event in the queue.
// It returns nil if the queue is empty.
func (q *Queue) NextEvent() Event {
	q.init()
	for {
		first := q.head.Load()
		last := q.tail.Load()
		firstnext := first.next.Load()
		if first != q.head.Load() {
			continue
		}
		if first == last {
			if firstnext == nil {
				return nil
			}
			q.tail.CompareAndSwap(last, firstnext)
			continue
		}
		v := firstnext.v
		if q.head.CompareAndSwap(first, firstnext) {
			q.len.Add(^uint64(0))
			first.v = nil
			queueEventPool.Put(first)
			return v
		}
	}
}

// Send adds an event to the end of the queue.
func (q *Queue) Send(ev Event) {
	q.init()
	i := queueEventPool.Get().(*queueEvent)
	i.next.Store(nil)
	i.v = ev
	for {
		last := q.tail.Load()
		lastnext := last.next.Load()
		if q.tail.Load() != last {
			continue
		}
		if lastnext != nil {
			q.tail.CompareAndSwap(last, lastnext)
			continue
		}
		if last.next.CompareAndSwap(lastnext, i) {
			q.tail.CompareAndSwap(last, i)
			q.len.Add(1)
			return
		}
	}
}

// Drain calls fun for each queued event in FIFO order until the queue is
// empty, including events sent while draining, and returns the number of
// events processed.
func (q *Queue) Drain(fun func(ev Event)) int {
	n := 0
	for ev := q.NextEvent(); ev != nil; ev = q.NextEvent() {
		fun(ev)
		n++
	}
	return n
}

// Len returns the length of the queue.
func (q *Queue) Len() uint64 {
	return q.len.Load()
}
