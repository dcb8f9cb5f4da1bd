package emitter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParamSpec(t *testing.T) {
	params := []Param{
		"A",
		nil,
		true,
		3,
		nil,
	}

	var (
		a   string
		b   bool
		c   int
		opt int
	)

	spec := ParamSpec(4,
		AssertAndStore(&a),
		nil,
		AssertAndStore(&b),
		AssertAndStore(&c),
		Optional(AssertAndStore(&opt)),
	)
	assert.NoError(t, spec(params))
	assert.Equal(t, "A", a)
	assert.Equal(t, true, b)
	assert.Equal(t, 3, c)
	assert.Equal(t, 0, opt)
}

func TestParamSpec_Errors(t *testing.T) {
	var (
		a string
		b int
	)
	err := ParamSpec(3, AssertAndStore(&a))([]Param{"A"})
	assert.ErrorIs(t, err, ErrNotEnoughParams)
	assert.Empty(t, a, "Assertions should not run when there aren't enough params")

	err = ParamSpec(2, AssertAndStore(&a), AssertAndStore(&b))([]Param{5, nil})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnexpectedTypeParam)
	assert.Contains(t, err.Error(), "parameter 1 is nil")
	assert.Contains(t, err.Error(), "expected string at position 0, but got int")

	var target *string
	assert.Error(t, AssertAndStore(target)(0, "A"))
}

func TestMapParam_InHandler(t *testing.T) {
	var (
		e        Emitter
		received string
	)
	e.Bind(testEvent, Func(func(_ Event, params ...Param) error {
		return MapParam(&received, params)
	}))
	assert.NoError(t, e.DispatchResult(testEvent, "hello"))
	assert.Equal(t, "hello", received)

	err := e.DispatchResult(testEvent, 42)
	assert.ErrorIs(t, err, ErrHandlerFailed)
	assert.ErrorIs(t, err, ErrUnexpectedTypeParam)

	err = e.DispatchResult(testEvent)
	assert.ErrorIs(t, err, ErrNotEnoughParams)
}
