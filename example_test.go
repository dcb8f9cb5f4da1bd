package emitter_test

import (
	"fmt"

	"github.com/saylorsolutions/emitter"
)

type Door struct {
	emitter.Emitter
	Name string
}

func (d *Door) Open(by string) {
	d.Emit("open", by)
}

func ExampleEmitter() {
	door := &Door{Name: "front door"}

	greet := emitter.Func(func(evt emitter.Event, params ...emitter.Param) error {
		var who string
		if err := emitter.MapParam(&who, params); err != nil {
			return err
		}
		fmt.Printf("%s opened the %s\n", who, evt.Scope.(*Door).Name)
		return nil
	})
	firstVisit := emitter.Func(func(evt emitter.Event, params ...emitter.Param) error {
		fmt.Println("Welcome, first visitor!")
		return nil
	})

	// The door is passed as scope so handlers can refer back to it.
	door.On("open", greet, door).Once("open", firstVisit)

	door.Open("Alice")
	door.Open("Bob")
	door.Off("open", greet)
	door.Open("Carol")
	// Output:
	// Alice opened the front door
	// Welcome, first visitor!
	// Bob opened the front door
}

func ExampleEmitter_DispatchResult() {
	e := emitter.NewEmitter()
	e.Bind("save", emitter.Func(func(evt emitter.Event, params ...emitter.Param) error {
		return fmt.Errorf("disk full")
	}))
	if err := e.DispatchResult("save"); err != nil {
		fmt.Println(err)
	}
	// Output:
	// handler failed for event "save": disk full
}
