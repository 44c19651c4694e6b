package veneer

import (
	"reflect"

	"github.com/xmidt-org/veneer/internal/veneerwalk"
	"go.uber.org/multierr"
)

// Setting is a piece of capability configuration that can be applied by
// the builder functions.  Apply is invoked with a pointer to a single
// stack layer and reports whether that layer owns the capability this
// setting configures.  A Setting never descends the stack itself; With
// and WithAt handle traversal.
type Setting interface {
	Apply(layer any) bool
}

// SettingFunc is a closure type that can act as a Setting.
type SettingFunc func(any) bool

func (sf SettingFunc) Apply(layer any) bool {
	return sf(layer)
}

// Changed is the Setting for the changed flag capability, applied to
// the layer implementing FlagSetter.
type Changed bool

// Apply implements Setting.
func (c Changed) Apply(layer any) bool {
	fs, ok := layer.(FlagSetter)
	if ok {
		fs.SetChanged(bool(c))
	}

	return ok
}

// Label is the Setting for the label capability, applied to the layer
// implementing LabelSetter.
type Label string

// Apply implements Setting.
func (l Label) Apply(layer any) bool {
	ls, ok := layer.(LabelSetter)
	if ok {
		ls.SetLabel(string(l))
	}

	return ok
}

// With returns a copy of stack with each setting applied to the unique
// layer that owns its capability.  The original stack value is never
// modified, and With resolves each setting's depth itself, so the same
// call works for every nesting order of the same decorator set:
//
//	s, err := veneer.With(s,
//	    veneer.Changed(true),
//	    veneer.Label("one"),
//	)
//
// A setting owned by no layer yields a *NoCapabilityError, and one
// owned by several layers yields an *AmbiguousCapabilityError; errors
// from multiple settings are aggregated with multierr.  If With returns
// a non-nil error, the returned stack is indeterminate and must be
// discarded.
func With[S any](stack S, settings ...Setting) (S, error) {
	var err error
	for _, s := range settings {
		err = multierr.Append(err, applyUnique(&stack, s))
	}

	return stack, err
}

// applyUnique applies s to every accepting layer of the stack rooted at
// root, then verifies exactly one layer accepted it.
func applyUnique(root any, s Setting) error {
	count := 0
	veneerwalk.WalkOpen(root, func(layer any) bool {
		if s.Apply(layer) {
			count++
		}

		return true
	})

	switch {
	case count == 0:
		return &NoCapabilityError{Capability: reflect.TypeOf(s)}

	case count > 1:
		return &AmbiguousCapabilityError{Capability: reflect.TypeOf(s), Count: count}
	}

	return nil
}

// WithAt is the depth-indexed form of With: the setting is applied to
// exactly the layer selected by N, with no search.  This is the only
// way to target one of several layers offering the same capability,
// a configuration With always rejects.
//
// A *DepthError is returned if the stack has fewer layers than N
// selects, and a *NoCapabilityError if the selected layer does not own
// the setting's capability.
func WithAt[N Depth, S any](stack S, s Setting) (S, error) {
	layer, ok := veneerwalk.Descend(any(&stack), hopCount[N]())
	if !ok {
		return stack, &DepthError{
			Hops:  hopCount[N](),
			Stack: typeOf[S](),
		}
	}

	if !s.Apply(layer) {
		return stack, &NoCapabilityError{Capability: reflect.TypeOf(s)}
	}

	return stack, nil
}
