package veneer

import "reflect"

// TagHost is the capability contract owned by Tagged.  Exactly one
// layer of a stack may implement it for Find resolution to succeed.
type TagHost interface {
	// Tag returns the identifier of the usage type this stack is
	// associated with
	Tag() reflect.Type
}

// Tagged associates a usage type U with an inner value.  U is phantom:
// no value of U is ever stored, it exists only in the stack's type.
// Tagging is purely type-level metadata, so Tagged has no Setting and
// cannot be the target of a builder update.
type Tagged[U, T any] struct {
	inner T
}

// NewTagged wraps inner in a Tagged decorator.
func NewTagged[U, T any](inner T) Tagged[U, T] {
	return Tagged[U, T]{inner: inner}
}

// Inner returns the immediate inner value.
func (tg Tagged[U, T]) Inner() T { return tg.inner }

// Unwrap implements Wrapper.
func (tg Tagged[U, T]) Unwrap() any { return tg.inner }

// Open implements Opener.
func (tg *Tagged[U, T]) Open() any { return &tg.inner }

// Tag implements TagHost.
func (tg Tagged[U, T]) Tag() reflect.Type {
	return reflect.TypeOf((*U)(nil)).Elem()
}
