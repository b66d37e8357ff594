package events

import "sync"

// Handler processes specific event types
// Collaborators (audio, scheduler, session) implement this interface
type Handler interface {
	// HandleEvent processes a single event
	// Called on the dispatching goroutine, one event at a time
	HandleEvent(event GameEvent)

	// EventTypes returns the event types this handler processes
	// The router uses this for registration
	EventTypes() []EventType
}

// funcHandler adapts a plain function to Handler
type funcHandler struct {
	fn    func(GameEvent)
	types []EventType
}

func (h *funcHandler) HandleEvent(event GameEvent) { h.fn(event) }
func (h *funcHandler) EventTypes() []EventType     { return h.types }

// Router dispatches events to registered handlers
//
// Architecture:
//   - Synchronous dispatch on the caller's goroutine
//   - Multiple handlers can register for the same event type
//   - Handlers are invoked in registration order
//   - A panicking handler is recovered and reported, remaining handlers still run
type Router struct {
	mu       sync.RWMutex
	handlers map[EventType][]Handler
	onPanic  func(event GameEvent, recovered any)
}

// NewRouter creates an empty router
func NewRouter() *Router {
	return &Router{
		handlers: make(map[EventType][]Handler),
	}
}

// Register adds a handler for its declared event types
func (r *Router) Register(handler Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, t := range handler.EventTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// Subscribe registers fn for the given event types
func (r *Router) Subscribe(fn func(GameEvent), types ...EventType) {
	r.Register(&funcHandler{fn: fn, types: types})
}

// SetPanicHandler installs the hook invoked when a handler panics
func (r *Router) SetPanicHandler(fn func(event GameEvent, recovered any)) {
	r.mu.Lock()
	r.onPanic = fn
	r.mu.Unlock()
}

// Dispatch routes events to handlers in FIFO order
func (r *Router) Dispatch(events ...GameEvent) {
	for _, ev := range events {
		r.mu.RLock()
		handlers := r.handlers[ev.Type]
		onPanic := r.onPanic
		r.mu.RUnlock()

		for _, h := range handlers {
			r.invoke(h, ev, onPanic)
		}
	}
}

func (r *Router) invoke(h Handler, ev GameEvent, onPanic func(GameEvent, any)) {
	defer func() {
		if rec := recover(); rec != nil && onPanic != nil {
			onPanic(ev, rec)
		}
	}()
	h.HandleEvent(ev)
}

// HasHandlers returns true if any handlers are registered for the given type
func (r *Router) HasHandlers(t EventType) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.handlers[t]) > 0
}
