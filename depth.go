package veneer

// Depth is a compile-time selector describing how many transparent
// access hops separate the top of a stack from a target layer.  The
// only implementations are Zero and Succ.  Depth values carry no
// state; they exist purely to be used as type arguments.
type Depth interface {
	hops() int
}

// Zero selects the outermost layer of a stack.
type Zero struct{}

func (Zero) hops() int { return 0 }

// Succ selects the layer one transparent access hop inside the layer
// selected by N.  Nesting Succ builds arbitrary depths, e.g.
// Succ[Succ[Zero]] selects the layer two hops down.
type Succ[N Depth] struct{}

func (Succ[N]) hops() int {
	var n N
	return n.hops() + 1
}

// hopCount realizes a depth index as its hop count.
func hopCount[N Depth]() int {
	var n N
	return n.hops()
}
