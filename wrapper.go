package veneer

import (
	"fmt"
	"reflect"

	"github.com/xmidt-org/veneer/internal/veneerwalk"
)

// Wrapper is the transparent access protocol.  Every decorator type
// implements it with a value receiver, returning the immediate inner
// value.  Chaining Unwrap calls reaches any layer of a stack, which is
// what makes nesting order irrelevant to capability access.
type Wrapper interface {
	Unwrap() any
}

// Opener is the mutable counterpart of Wrapper, implemented on every
// decorator's pointer type.  Open returns a pointer to the immediate
// inner value.  Construct and the builder functions use it to descend
// into a stack they own; it is not part of the read path.
type Opener interface {
	Open() any
}

// NoCapabilityError indicates that no layer of a stack offers the
// requested capability.
type NoCapabilityError struct {
	// Capability is the contract that could not be resolved, e.g. the
	// type of a capability interface or of a Setting.
	Capability reflect.Type
}

func (e *NoCapabilityError) Error() string {
	return fmt.Sprintf("No layer of the stack offers the capability %s", e.Capability)
}

// AmbiguousCapabilityError indicates that more than one layer of a
// stack offers the requested capability.  Duplicate capabilities have
// no defined resolution order and are always rejected.
type AmbiguousCapabilityError struct {
	// Capability is the contract that resolved more than once
	Capability reflect.Type

	// Count is the number of layers offering the capability
	Count int
}

func (e *AmbiguousCapabilityError) Error() string {
	return fmt.Sprintf("%d layers of the stack offer the capability %s", e.Count, e.Capability)
}

// DepthError indicates that a depth index does not match the shape of
// the stack type it was applied to.
type DepthError struct {
	// Hops is the hop count of the mismatched index
	Hops int

	// Stack is the type of the stack being traversed
	Stack reflect.Type
}

func (e *DepthError) Error() string {
	return fmt.Sprintf("Depth index %d does not match the shape of the stack type %s", e.Hops, e.Stack)
}

// PayloadError indicates that the innermost value of a stack was not of
// the requested payload type.
type PayloadError struct {
	// Expected is the requested payload type
	Expected reflect.Type

	// Actual is the type of the innermost value actually found
	Actual reflect.Type
}

func (e *PayloadError) Error() string {
	return fmt.Sprintf("The stack payload is of type %s, not %s", e.Actual, e.Expected)
}

// typeOf returns the reflect.Type of T without requiring a value of T.
func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Find resolves the capability contract C against a stack.  The stack
// is traversed outermost first, but exactly one layer must offer C:
// a stack with no such layer yields a *NoCapabilityError, and a stack
// with several yields an *AmbiguousCapabilityError.
//
// C is normally one of the capability host interfaces, such as
// LabelHost:
//
//	s := veneer.NewFlagged(veneer.NewLabeled(1234))
//	lh, err := veneer.Find[veneer.LabelHost](s)
func Find[C any](stack any) (c C, err error) {
	count := 0
	veneerwalk.Walk(stack, func(layer any) bool {
		if match, ok := layer.(C); ok {
			if count == 0 {
				c = match
			}

			count++
		}

		return true
	})

	switch {
	case count == 0:
		err = &NoCapabilityError{Capability: typeOf[C]()}

	case count > 1:
		err = &AmbiguousCapabilityError{Capability: typeOf[C](), Count: count}
	}

	return
}

// Payload returns the innermost value of a stack, which is the value
// the stack was originally built around.  A *PayloadError is returned
// if that value is not of type P.
func Payload[P any](stack any) (p P, err error) {
	innermost := stack
	veneerwalk.Walk(stack, func(layer any) bool {
		innermost = layer
		return true
	})

	p, ok := innermost.(P)
	if !ok {
		err = &PayloadError{
			Expected: typeOf[P](),
			Actual:   reflect.TypeOf(innermost),
		}
	}

	return
}

// At returns the layer of a stack selected by the depth index N,
// counting transparent access hops from the outermost layer.  At[Zero]
// returns the stack itself.  A *DepthError is returned if the stack
// has fewer layers than N selects.
func At[N Depth](stack any) (any, error) {
	layer := stack
	for i := 0; i < hopCount[N](); i++ {
		w, ok := layer.(Wrapper)
		if !ok {
			return nil, &DepthError{
				Hops:  hopCount[N](),
				Stack: reflect.TypeOf(stack),
			}
		}

		layer = w.Unwrap()
	}

	return layer, nil
}
