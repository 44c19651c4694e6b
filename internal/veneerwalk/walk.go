package veneerwalk

// wrapper is the structural form of the single-level unwrap protocol.
// It is declared locally so this package has no dependencies.
type wrapper interface {
	Unwrap() any
}

// opener is the structural form of the mutable unwrap protocol,
// implemented on decorator pointer types.
type opener interface {
	Open() any
}

// Walk visits each layer of a decorator chain, outermost first,
// finishing with the innermost non-wrapper value.  Walk stops early
// if visit returns false.
func Walk(stack any, visit func(layer any) bool) {
	for {
		if !visit(stack) {
			return
		}

		w, ok := stack.(wrapper)
		if !ok {
			return
		}

		stack = w.Unwrap()
	}
}

// WalkOpen visits each layer of a decorator chain by pointer, outermost
// first, finishing with a pointer to the innermost non-decorator value.
// WalkOpen stops early if visit returns false.
func WalkOpen(root any, visit func(layer any) bool) {
	for {
		if !visit(root) {
			return
		}

		o, ok := root.(opener)
		if !ok {
			return
		}

		root = o.Open()
	}
}

// Descend follows the pointer side of the protocol for exactly the
// given number of hops, returning the layer it lands on.  The second
// return is false if the chain runs out of openable layers first.
func Descend(root any, hops int) (any, bool) {
	for i := 0; i < hops; i++ {
		o, ok := root.(opener)
		if !ok {
			return nil, false
		}

		root = o.Open()
	}

	return root, true
}
