// Package event provides a simple synchronous event dispatcher. The terminal
// front-end fires events such as a completed sale; listeners like the session
// journal subscribe without the front-end knowing who is watching.
package event

import "sync"

// Handler is a function that receives an event payload.
type Handler func(payload any)

type entry struct {
	id int
	fn Handler
}

var (
	mu       sync.RWMutex
	nextID   int
	handlers = map[string][]entry{}
)

// Listen registers a handler for the given event name. The returned function
// unregisters it; listeners tied to one session call it when the session
// ends so a later session does not keep feeding them.
func Listen(name string, handler Handler) (off func()) {
	mu.Lock()
	defer mu.Unlock()
	nextID++
	id := nextID
	handlers[name] = append(handlers[name], entry{id: id, fn: handler})

	return func() {
		mu.Lock()
		defer mu.Unlock()
		hs := handlers[name]
		for i := range hs {
			if hs[i].id == id {
				handlers[name] = append(hs[:i], hs[i+1:]...)
				return
			}
		}
	}
}

// Fire dispatches an event synchronously to all registered listeners, in
// registration order.
func Fire(name string, payload any) {
	mu.RLock()
	hs := make([]entry, len(handlers[name]))
	copy(hs, handlers[name])
	mu.RUnlock()

	for _, e := range hs {
		e.fn(payload)
	}
}

// Flush removes all listeners. Useful in tests.
func Flush() {
	mu.Lock()
	defer mu.Unlock()
	handlers = map[string][]entry{}
}
