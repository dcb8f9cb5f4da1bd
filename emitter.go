package emitter

import (
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/saylorsolutions/emitter/internal/syncx"
)

// Emitter binds handlers to event names and dispatches events to them.
//
// The zero value is ready to use, so an Emitter may be embedded in another type to give it event semantics.
// Every registration and dispatch method returns the Emitter so calls can be chained.
//
// Registry changes are synchronized, but handlers are always called without holding the lock.
// This means a handler may bind, unbind, or dispatch on the same Emitter while it's being called.
// An Emitter must not be copied after first use.
type Emitter struct {
	mux      sync.Mutex
	conf     emitterConf
	bindings map[string][]*binding
}

// NewEmitter creates an [Emitter] with the given configuration.
// This will panic if any [ConfigFunc] returns an error.
func NewEmitter(configs ...ConfigFunc) *Emitter {
	conf := defaultConf()
	for _, config := range configs {
		if err := config(&conf); err != nil {
			panic(fmt.Sprintf("invalid emitter configuration: %v", err))
		}
	}
	return &Emitter{
		conf:     conf,
		bindings: map[string][]*binding{},
	}
}

// registry initializes the binding map if needed, so the zero value can be used.
// This must be called with the lock held.
func (e *Emitter) registry() map[string][]*binding {
	if e.bindings == nil {
		e.bindings = map[string][]*binding{}
	}
	return e.bindings
}

// Bind binds handler to the named event, optionally with a scope that is passed to the handler in [Event.Scope].
// If the handler is already bound to this event, then it will no longer be removed after being called once, and the original scope is kept.
//
// This will panic with an [ErrInvalidHandler] error if the handler is nil or can't be compared. Use [Emitter.TryBind] to get an error instead.
func (e *Emitter) Bind(name string, handler Handler, scope ...any) *Emitter {
	if err := e.TryBind(name, handler, scope...); err != nil {
		panic(err)
	}
	return e
}

// On is an alias for [Emitter.Bind].
func (e *Emitter) On(name string, handler Handler, scope ...any) *Emitter {
	return e.Bind(name, handler, scope...)
}

// TryBind is the same as [Emitter.Bind], but an invalid handler results in a returned error.
func (e *Emitter) TryBind(name string, handler Handler, scope ...any) error {
	return e.bind(name, handler, false, scope)
}

// Once binds handler to the named event such that it's unbound after it has been called once.
// If the handler is already bound to this event, then it will be unbound after its next call.
//
// This will panic with an [ErrInvalidHandler] error if the handler is nil or can't be compared. Use [Emitter.TryOnce] to get an error instead.
func (e *Emitter) Once(name string, handler Handler, scope ...any) *Emitter {
	if err := e.TryOnce(name, handler, scope...); err != nil {
		panic(err)
	}
	return e
}

// TryOnce is the same as [Emitter.Once], but an invalid handler results in a returned error.
func (e *Emitter) TryOnce(name string, handler Handler, scope ...any) error {
	return e.bind(name, handler, true, scope)
}

func (e *Emitter) bind(name string, handler Handler, once bool, scope []any) error {
	if err := validateHandler(handler); err != nil {
		return fmt.Errorf("failed to bind handler to event %q: %w", name, err)
	}
	var bindScope any
	if len(scope) > 0 {
		bindScope = scope[0]
	}
	syncx.LockFunc(&e.mux, func() {
		reg := e.registry()
		for _, b := range reg[name] {
			if b.handler == handler {
				b.once = once
				return
			}
		}
		reg[name] = append(reg[name], newBinding(handler, bindScope, once))
	})
	e.conf.log().Debug("Bound event handler", "event", name, "once", once)
	return nil
}

// Unbind removes handler from the named event.
// The handler must be the same value given to [Emitter.Bind] or [Emitter.Once].
// Nothing happens if the event or handler is unknown.
func (e *Emitter) Unbind(name string, handler Handler) *Emitter {
	if !isComparable(handler) {
		// Can't have been bound, and comparing it could panic.
		return e
	}
	removed := syncx.LockFuncT(&e.mux, func() bool {
		list := e.registry()[name]
		for i, b := range list {
			if b.handler == handler {
				e.setBindings(name, slices.Delete(list, i, i+1))
				return true
			}
		}
		return false
	})
	if removed {
		e.conf.log().Debug("Unbound event handler", "event", name)
	}
	return e
}

// Off is an alias for [Emitter.Unbind].
func (e *Emitter) Off(name string, handler Handler) *Emitter {
	return e.Unbind(name, handler)
}

// Un is an alias for [Emitter.Unbind].
func (e *Emitter) Un(name string, handler Handler) *Emitter {
	return e.Unbind(name, handler)
}

// UnbindAll removes every handler bound to the named event.
func (e *Emitter) UnbindAll(name string) *Emitter {
	syncx.LockFunc(&e.mux, func() {
		delete(e.registry(), name)
	})
	return e
}

// OffAll is an alias for [Emitter.UnbindAll].
func (e *Emitter) OffAll(name string) *Emitter {
	return e.UnbindAll(name)
}

// setBindings must be called with the lock held.
func (e *Emitter) setBindings(name string, list []*binding) {
	if len(list) == 0 {
		delete(e.registry(), name)
		return
	}
	e.registry()[name] = list
}

// Dispatch calls every handler bound to the named event, in the order they were bound, with the given params.
// Handlers bound with [Emitter.Once] are unbound after all handlers have been called.
//
// If a handler returns an error, then no more handlers are called for this dispatch, and the error is reported to the [ErrorHandler].
// Once handlers that completed before the failure are still unbound, while the failing handler and any after it stay bound.
// Use [Emitter.DispatchResult] to receive the error directly.
// Panics in handlers are not recovered.
func (e *Emitter) Dispatch(name string, params ...Param) *Emitter {
	if evt, err := e.dispatch(name, params); err != nil {
		e.reportError(evt, err)
	}
	return e
}

// Trigger is an alias for [Emitter.Dispatch].
func (e *Emitter) Trigger(name string, params ...Param) *Emitter {
	return e.Dispatch(name, params...)
}

// Emit is an alias for [Emitter.Dispatch].
func (e *Emitter) Emit(name string, params ...Param) *Emitter {
	return e.Dispatch(name, params...)
}

// DispatchResult works the same as [Emitter.Dispatch], except that the first error returned from a handler is returned to the caller.
// The returned error matches both [ErrHandlerFailed] and the handler's error with [errors.Is].
func (e *Emitter) DispatchResult(name string, params ...Param) error {
	_, err := e.dispatch(name, params)
	return err
}

func (e *Emitter) dispatch(name string, params []Param) (Event, error) {
	snapshot := syncx.LockFuncT(&e.mux, func() []*binding {
		return slices.Clone(e.registry()[name])
	})
	if len(snapshot) == 0 {
		return Event{Name: name}, nil
	}
	params = slices.Clone(params)

	fired := make(map[*binding]struct{}, len(snapshot))
	// Runs even if a handler panics, so once handlers that already completed are still removed.
	defer e.removeFiredOnce(name, fired)
	for _, b := range snapshot {
		if herr := b.invoke(name, params); herr != nil {
			return Event{Name: name, Scope: b.scope}, fmt.Errorf("%w for event %q: %w", ErrHandlerFailed, name, herr)
		}
		fired[b] = struct{}{}
	}
	return Event{Name: name}, nil
}

// removeFiredOnce removes bindings that were called in a dispatch and are flagged once.
// Bindings are matched by identity since the list may have changed while handlers were running.
func (e *Emitter) removeFiredOnce(name string, fired map[*binding]struct{}) {
	if len(fired) == 0 {
		return
	}
	syncx.LockFunc(&e.mux, func() {
		list := e.registry()[name]
		if len(list) == 0 {
			return
		}
		kept := make([]*binding, 0, len(list))
		for _, b := range list {
			if _, ok := fired[b]; ok && b.once {
				continue
			}
			kept = append(kept, b)
		}
		if len(kept) != len(list) {
			e.setBindings(name, kept)
		}
	})
}

func (e *Emitter) reportError(evt Event, err error) {
	if e.conf.errHandler != nil {
		e.conf.errHandler(evt, err)
		return
	}
	e.conf.log().Error("Event handler failed", "event", evt.Name, "error", err)
}

// Has reports whether any handler is bound to the named event.
func (e *Emitter) Has(name string) bool {
	return e.Count(name) > 0
}

// Count returns the number of handlers bound to the named event.
func (e *Emitter) Count(name string) int {
	return syncx.LockFuncT(&e.mux, func() int {
		return len(e.registry()[name])
	})
}

// Names returns the sorted names of all events that have at least one bound handler.
func (e *Emitter) Names() []string {
	return syncx.LockFuncT(&e.mux, func() []string {
		return slices.Sorted(maps.Keys(e.registry()))
	})
}
