package veneerfx

import "go.uber.org/fx"

// Conditional is a simple strategy for emitting options into an fx.App
type Conditional struct {
}

// Then returns all the given options if this Conditional is not nil.
// If this Conditional is nil, it returns an empty fx.Options.
func (c *Conditional) Then(o ...fx.Option) fx.Option {
	if c != nil {
		return fx.Options(o...)
	}

	return fx.Options()
}

// If returns a non-nil Conditional if its sole argument is true.  This
// allows stack configuration to be assembled from feature state:
//
//	fx.New(
//	  veneerfx.Provide[Stack, veneer.Succ[veneer.Zero]](payload),
//	  veneerfx.If(audited).Then(
//	    veneerfx.Supply(veneer.Label("audited")),
//	  ),
//	)
func If(f bool) *Conditional {
	if f {
		return new(Conditional)
	}

	return nil
}

// IfNot is the boolean inverse of If
func IfNot(f bool) *Conditional {
	if !f {
		return new(Conditional)
	}

	return nil
}
