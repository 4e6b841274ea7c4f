// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package connection

import (
	"encoding/json"
	"sync"
)

// Wildcard subscribes a handler to every dispatched event regardless of type.
const Wildcard = "*"

// Event is a typed message delivered to subscribers.
type Event struct {
	// Type is the event type, e.g. "report.progress".
	Type string
	// Data is the raw JSON payload of the originating envelope.
	Data json.RawMessage
}

// Handler consumes dispatched events. Handlers run on the read-loop
// goroutine and may re-enter the client (Send, Request, On) freely.
type Handler func(Event)

type subscription struct {
	id      int
	handler Handler
}

// subscriptionRegistry maps event types to handler lists, plus a wildcard
// list receiving every event. Dispatch iterates over a snapshot so handlers
// can subscribe or unsubscribe re-entrantly without corrupting the walk.
type subscriptionRegistry struct {
	mu     sync.Mutex
	nextID int
	subs   map[string][]subscription
}

func newSubscriptionRegistry() *subscriptionRegistry {
	return &subscriptionRegistry{subs: make(map[string][]subscription)}
}

// Subscribe registers handler for eventType (or [Wildcard]) and returns an
// unsubscribe function. Unsubscribing twice is a no-op.
func (r *subscriptionRegistry) Subscribe(eventType string, handler Handler) func() {
	r.mu.Lock()
	r.nextID++
	id := r.nextID
	r.subs[eventType] = append(r.subs[eventType], subscription{id: id, handler: handler})
	r.mu.Unlock()

	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()

		list := r.subs[eventType]
		for i, sub := range list {
			if sub.id == id {
				r.subs[eventType] = append(list[:i:i], list[i+1:]...)
				break
			}
		}
		if len(r.subs[eventType]) == 0 {
			delete(r.subs, eventType)
		}
	}
}

// Dispatch delivers ev to all handlers registered for ev.Type and to every
// wildcard handler.
func (r *subscriptionRegistry) Dispatch(ev Event) {
	r.mu.Lock()
	handlers := make([]Handler, 0, len(r.subs[ev.Type])+len(r.subs[Wildcard]))
	for _, sub := range r.subs[ev.Type] {
		handlers = append(handlers, sub.handler)
	}
	for _, sub := range r.subs[Wildcard] {
		handlers = append(handlers, sub.handler)
	}
	r.mu.Unlock()

	for _, h := range handlers {
		h(ev)
	}
}

// Clear removes every subscription. Called only on explicit teardown.
func (r *subscriptionRegistry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subs = make(map[string][]subscription)
}
