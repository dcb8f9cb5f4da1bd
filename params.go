package emitter

import (
	"errors"
	"fmt"
)

var (
	ErrUnexpectedTypeParam = errors.New("unexpected parameter type")
	ErrNotEnoughParams     = errors.New("not enough parameters")
)

// ParamAssertion checks a single dispatched [Param] in a handler.
// The pos parameter is the position of the [Param] in the dispatch call, and is used for error messages.
type ParamAssertion func(pos int, p Param) error

// And chains assertions together, stopping at the first error.
func (a ParamAssertion) And(other ParamAssertion, more ...ParamAssertion) ParamAssertion {
	return func(pos int, p Param) error {
		for _, assertion := range append([]ParamAssertion{a, other}, more...) {
			if err := assertion(pos, p); err != nil {
				return err
			}
		}
		return nil
	}
}

// IsType asserts that a [Param] holds a T.
func IsType[T any]() ParamAssertion {
	return func(pos int, p Param) error {
		if _, ok := p.(T); !ok {
			var expected T
			return fmt.Errorf("%w: expected %T at position %d, but got %T", ErrUnexpectedTypeParam, expected, pos, p)
		}
		return nil
	}
}

// AssertAndStore asserts that a [Param] is a non-nil T, and stores it in target.
func AssertAndStore[T any](target *T) ParamAssertion {
	if target == nil {
		return func(pos int, _ Param) error {
			return fmt.Errorf("target for param %d is nil pointer", pos)
		}
	}
	return ParamAssertion(func(pos int, p Param) error {
		if p == nil {
			return fmt.Errorf("%w: parameter %d is nil", ErrUnexpectedTypeParam, pos)
		}
		return nil
	}).And(IsType[T](), func(_ int, p Param) error {
		*target = p.(T)
		return nil
	})
}

// Optional applies ifNotNil only when the [Param] is not nil.
func Optional(ifNotNil ParamAssertion) ParamAssertion {
	return func(pos int, p Param) error {
		if p == nil {
			return nil
		}
		return ifNotNil(pos, p)
	}
}

// ParamSpec creates a function that applies each assertion to the [Param] at the same position.
// A nil assertion skips its position, and params beyond the given assertions aren't checked.
// If fewer than minParams are given then [ErrNotEnoughParams] is returned without running any assertions.
// All assertion errors are joined together.
func ParamSpec(minParams int, assertions ...ParamAssertion) func(params []Param) error {
	return func(params []Param) error {
		if len(params) < minParams {
			return fmt.Errorf("%w: expected at least %d, got %d", ErrNotEnoughParams, minParams, len(params))
		}
		var errs []error
		for i := 0; i < len(assertions) && i < len(params); i++ {
			if assertions[i] == nil {
				continue
			}
			if err := assertions[i](i, params[i]); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	}
}

// MapParam stores the first [Param] in target, which is the common case for a handler of an event with a single argument.
func MapParam[T any](target *T, params []Param) error {
	return ParamSpec(1, AssertAndStore(target))(params)
}
