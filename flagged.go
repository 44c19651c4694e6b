package veneer

// FlagHost is the read side of the changed flag capability, owned by
// Flagged.
type FlagHost interface {
	// Changed returns the current state of the changed flag
	Changed() bool
}

// FlagSetter is the mutable side of the changed flag capability,
// implemented on Flagged's pointer type.  The Changed setting targets
// this contract.
type FlagSetter interface {
	SetChanged(bool)
}

// Flagged adds a boolean changed flag to an inner value.  The flag of a
// freshly constructed Flagged is false.
type Flagged[T any] struct {
	inner   T
	changed bool
}

// NewFlagged wraps inner in a Flagged decorator with a false flag.
func NewFlagged[T any](inner T) Flagged[T] {
	return Flagged[T]{inner: inner}
}

// Inner returns the immediate inner value.
func (f Flagged[T]) Inner() T { return f.inner }

// Unwrap implements Wrapper.
func (f Flagged[T]) Unwrap() any { return f.inner }

// Open implements Opener.
func (f *Flagged[T]) Open() any { return &f.inner }

// Changed implements FlagHost.
func (f Flagged[T]) Changed() bool { return f.changed }

// SetChanged implements FlagSetter.
func (f *Flagged[T]) SetChanged(v bool) { f.changed = v }
