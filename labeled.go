package veneer

// LabelHost is the read side of the label capability, owned by Labeled.
type LabelHost interface {
	// Label returns the current label text
	Label() string
}

// LabelSetter is the mutable side of the label capability, implemented
// on Labeled's pointer type.  The Label setting targets this contract.
type LabelSetter interface {
	SetLabel(string)
}

// Labeled adds a text label to an inner value.  The label of a freshly
// constructed Labeled is the empty string.
type Labeled[T any] struct {
	inner T
	label string
}

// NewLabeled wraps inner in a Labeled decorator with an empty label.
func NewLabeled[T any](inner T) Labeled[T] {
	return Labeled[T]{inner: inner}
}

// Inner returns the immediate inner value.
func (l Labeled[T]) Inner() T { return l.inner }

// Unwrap implements Wrapper.
func (l Labeled[T]) Unwrap() any { return l.inner }

// Open implements Opener.
func (l *Labeled[T]) Open() any { return &l.inner }

// Label implements LabelHost.
func (l Labeled[T]) Label() string { return l.label }

// SetLabel implements LabelSetter.
func (l *Labeled[T]) SetLabel(v string) { l.label = v }
