package veneer

import (
	"github.com/xmidt-org/veneer/internal/veneerwalk"
)

// Construct builds a decorator stack of type S around a payload.  The
// depth index N states how many transparent access hops separate S's
// outermost layer from the layer that directly wraps the payload:
// Zero means S is a single decorator around P, Succ[Zero] means one
// intermediate layer, and so on.
//
// Every layer of the returned stack carries its documented default
// capability state.  Construct is observably identical to nesting the
// NewXxx constructors by hand in S's declared order:
//
//	type Audit struct{}
//	type Stack = veneer.Tagged[Audit, veneer.Flagged[veneer.Labeled[int]]]
//
//	s, err := veneer.Construct[Stack, veneer.Succ[veneer.Succ[veneer.Zero]]](1234)
//
// An index that does not match the actual nesting depth of P within S
// yields a *DepthError and no usable stack value.
func Construct[S any, N Depth, P any](payload P) (S, error) {
	// the zero value of S is already a fully defaulted stack; all that
	// remains is to store the payload in the innermost slot
	var stack S

	layer, ok := veneerwalk.Descend(any(&stack), hopCount[N]())
	if !ok {
		return stack, constructErr[S, N]()
	}

	o, ok := layer.(Opener)
	if !ok {
		return stack, constructErr[S, N]()
	}

	slot, ok := o.Open().(*P)
	if !ok {
		return stack, constructErr[S, N]()
	}

	*slot = payload
	return stack, nil
}

func constructErr[S any, N Depth]() error {
	return &DepthError{
		Hops:  hopCount[N](),
		Stack: typeOf[S](),
	}
}

// MustConstruct is a Construct variant that panics on a depth mismatch.
// Useful in tests and in static initialization, where a mismatch is a
// programming error.
func MustConstruct[S any, N Depth, P any](payload P) S {
	s, err := Construct[S, N](payload)
	if err != nil {
		panic(err)
	}

	return s
}
