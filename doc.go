/*
Package emitter provides a synchronous, named event registry that can be embedded in other types to give them publish/subscribe behavior.

# Handlers

A [Handler] is bound to an event name with [Emitter.Bind] (or [Emitter.On]), and is called each time that name is dispatched with [Emitter.Dispatch] (or [Emitter.Trigger] or [Emitter.Emit]).
Handlers are called in the order they were bound, and receive the dispatched parameters along with an [Event] describing the name and the scope given at bind time.

Handlers are identified by the value passed when binding them, and that same value is used with [Emitter.Unbind] (or [Emitter.Off] or [Emitter.Un]) to remove them.
Binding the same handler to the same event more than once doesn't add another binding, so a handler is called at most once per dispatch.
Functions aren't comparable in Go, so a plain function must be wrapped with [Func] to give it an identity.

A handler bound with [Emitter.Once] is removed after it's called.
Calling [Emitter.Bind] for a handler already bound with [Emitter.Once] makes it persistent again, and calling [Emitter.Once] for a persistent handler makes it fire only one more time.

# Dispatch semantics

Dispatching works over a snapshot of the handlers bound at the time of the call, so a handler can bind, unbind, or dispatch on the same [Emitter] without changing which handlers receive the current dispatch.
Once handlers are removed after all handlers have been called.

If a handler returns an error, then the dispatch stops and later handlers aren't called.
[Emitter.Dispatch] reports the error to the configured [ErrorHandler], and [Emitter.DispatchResult] returns it.
Panics are not recovered.

The [ParamSpec] and [MapParam] helpers make it easier to pull typed values out of dispatched parameters.

# Embedding

The zero value of [Emitter] is ready to use.

	type Button struct {
		emitter.Emitter
		Label string
	}

	btn := new(Button)
	clicked := emitter.Func(func(evt emitter.Event, params ...emitter.Param) error {
		fmt.Println("clicked", params[0])
		return nil
	})
	btn.On("click", clicked).Emit("click", 1)
*/
package emitter
