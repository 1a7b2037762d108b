package gxmonitor

// --------------------------------------------------------------------------
//
//	Gurux Ltd
//
// Filename:        $HeadURL$
//
// Version:         $Revision$,
//
//	$Date$
//	$Author$
//
// # Copyright (c) Gurux Ltd
//
// ---------------------------------------------------------------------------
//
//	DESCRIPTION
//
// This file is a part of Gurux Device Framework.
//
// Gurux Device Framework is Open Source software; you can redistribute it
// and/or modify it under the terms of the GNU General Public License
// as published by the Free Software Foundation; version 2 of the License.
// Gurux Device Framework is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU General Public License for more details.
//
// More information of Gurux products: https://www.gurux.org
//
// This code is licensed under the GNU General Public License v2.
// Full text may be retrieved at http://www.gnu.org/licenses/gpl-2.0.txt
// ---------------------------------------------------------------------------

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// EventKind identifies the type of a monitor event.
type EventKind int

const (
	// EventConnected is emitted once the transport is open and the read loop starts.
	EventConnected EventKind = iota
	// EventDisconnected is emitted when teardown has finished.
	EventDisconnected
	// EventData carries one decoded unit from the read loop.
	EventData
	// EventError carries a failure of connect, read, send or close.
	EventError
	// EventTrace carries a gxcommon.TraceEventArgs when tracing is enabled.
	EventTrace
)

func (k EventKind) String() string {
	switch k {
	case EventConnected:
		return "connected"
	case EventDisconnected:
		return "disconnected"
	case EventData:
		return "data"
	case EventError:
		return "error"
	case EventTrace:
		return "trace"
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event is a notification delivered to observers.
type Event struct {
	Kind EventKind
	// Data is []byte in raw byte mode, string in text and hex modes and
	// gxcommon.TraceEventArgs for trace events.
	Data any
	// Err is set for error events.
	Err error
	// Message is a localized description of the event.
	Message string
}

// Handler receives events. Handlers run on the goroutine that emitted the
// event, so long running work should be moved elsewhere.
type Handler func(Event)

// Subscription identifies a registered handler.
type Subscription struct {
	kind EventKind
	id   uint64
}

type registration struct {
	id uint64
	h  Handler
}

// emitter fans events out to handlers in registration order.
type emitter struct {
	mu       sync.RWMutex
	next     uint64
	handlers map[EventKind][]registration
	log      *zap.Logger
}

func newEmitter(log *zap.Logger) *emitter {
	return &emitter{handlers: make(map[EventKind][]registration), log: log}
}

func (e *emitter) subscribe(kind EventKind, h Handler) Subscription {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.next++
	e.handlers[kind] = append(e.handlers[kind], registration{id: e.next, h: h})
	return Subscription{kind: kind, id: e.next}
}

func (e *emitter) unsubscribe(s Subscription) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	list := e.handlers[s.kind]
	for i, r := range list {
		if r.id == s.id {
			// Copy so that a snapshot taken by emit stays intact.
			next := make([]registration, 0, len(list)-1)
			next = append(next, list[:i]...)
			e.handlers[s.kind] = append(next, list[i+1:]...)
			return true
		}
	}
	return false
}

func (e *emitter) emit(ev Event) {
	e.mu.RLock()
	list := e.handlers[ev.Kind]
	e.mu.RUnlock()
	for _, r := range list {
		e.dispatch(r, ev)
	}
}

func (e *emitter) dispatch(r registration, ev Event) {
	defer func() {
		if p := recover(); p != nil {
			e.log.Error("event handler panicked",
				zap.Stringer("event", ev.Kind),
				zap.Uint64("subscription", r.id),
				zap.Any("panic", p))
		}
	}()
	r.h(ev)
}
