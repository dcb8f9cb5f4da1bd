package emitter

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	ErrInvalidHandler = errors.New("invalid handler") // ErrInvalidHandler is returned when binding a nil or non-comparable Handler.
	ErrHandlerFailed  = errors.New("handler failed")  // ErrHandlerFailed wraps an error returned from a Handler during dispatch.
)

// Param is a single argument forwarded from a dispatch call to each handler.
type Param any

// Event is the invocation context passed to a [Handler].
// Scope is the value given when the handler was bound, and is nil if none was given.
type Event struct {
	Name  string
	Scope any
}

// Handler handles events dispatched by an [Emitter].
//
// Handlers are identified by equality of the Handler value itself, so the same value must be passed to
// [Emitter.Unbind] that was passed to [Emitter.Bind] or [Emitter.Once].
// Pointer implementations compare by reference, which is almost always what's wanted.
type Handler interface {
	// HandleEvent is called for each dispatch of an event this Handler is bound to.
	// Returning an error stops the dispatch, and handlers after this one will not be called.
	HandleEvent(evt Event, params ...Param) error
}

// HandlerFunc adapts a function to the [Handler] interface.
// A HandlerFunc is not comparable, so it can't be bound directly. Use [Func] to give it an identity.
type HandlerFunc func(evt Event, params ...Param) error

func (f HandlerFunc) HandleEvent(evt Event, params ...Param) error {
	return f(evt, params...)
}

// FuncHandler is a pointer wrapper around a [HandlerFunc], so it can be bound and unbound by reference.
type FuncHandler struct {
	fn HandlerFunc
}

// Func wraps fn so that it can be used as a [Handler].
// Each call returns a distinct handler, so keep the result around if it needs to be unbound later.
func Func(fn HandlerFunc) *FuncHandler {
	return &FuncHandler{fn: fn}
}

func (h *FuncHandler) HandleEvent(evt Event, params ...Param) error {
	return h.fn(evt, params...)
}

func validateHandler(handler Handler) error {
	if handler == nil {
		return fmt.Errorf("%w: handler is nil", ErrInvalidHandler)
	}
	if fh, ok := handler.(*FuncHandler); ok && (fh == nil || fh.fn == nil) {
		return fmt.Errorf("%w: function handler has no function", ErrInvalidHandler)
	}
	if !isComparable(handler) {
		return fmt.Errorf("%w: handler of type %T is not comparable, wrap it with Func", ErrInvalidHandler, handler)
	}
	return nil
}

// isComparable checks the dynamic value, since a comparable struct type may still hold a func in an interface field.
func isComparable(handler Handler) bool {
	return handler != nil && reflect.ValueOf(handler).Comparable()
}

// binding is one registered handler under an event name.
// The original handler is kept for identity comparison, and invoke has the scope applied.
type binding struct {
	handler Handler
	scope   any
	once    bool
	invoke  func(name string, params []Param) error
}

func newBinding(handler Handler, scope any, once bool) *binding {
	return &binding{
		handler: handler,
		scope:   scope,
		once:    once,
		invoke: func(name string, params []Param) error {
			return handler.HandleEvent(Event{Name: name, Scope: scope}, params...)
		},
	}
}
