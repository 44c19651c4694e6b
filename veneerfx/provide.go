// Package veneerfx integrates decorator stacks with uber/fx, allowing
// fully constructed and configured stacks to participate in an fx.App
// as components.
package veneerfx

import (
	"go.uber.org/dig"
	"go.uber.org/fx"

	"github.com/xmidt-org/veneer"
)

// SettingGroup is the name of the fx value group that capability
// settings are supplied to and consumed from.
const SettingGroup = "veneer.settings"

// SettingsIn is the set of dependencies for the stack constructors
// emitted by Provide.
type SettingsIn struct {
	fx.In

	// Settings are the capability settings present in the enclosing
	// fx.App's setting group.  Optional, as a stack with all defaults
	// is perfectly valid.
	Settings []veneer.Setting `group:"veneer.settings"`
}

// Supply places a capability setting into the setting group, where
// every stack emitted by Provide will consume it.
func Supply(s veneer.Setting) fx.Option {
	return fx.Provide(
		fx.Annotated{
			Group: SettingGroup,
			Target: func() veneer.Setting {
				return s
			},
		},
	)
}

// Provide emits a decorator stack component of type S into an fx.App.
// The stack is built around the given payload at the depth selected by
// N, then configured with the app's setting group followed by any
// explicitly passed settings.
//
// Construction and configuration failures abort app startup; use
// RootCause to recover veneer's typed errors from the app error.
func Provide[S any, N veneer.Depth, P any](payload P, settings ...veneer.Setting) fx.Option {
	return fx.Provide(
		func(in SettingsIn) (S, error) {
			s, err := veneer.Construct[S, N](payload)
			if err != nil {
				return s, err
			}

			s, err = veneer.With(s, in.Settings...)
			if err != nil {
				return s, err
			}

			return veneer.With(s, settings...)
		},
	)
}

// Decorate applies settings to a stack component already present in
// the app, replacing it with the updated stack in the manner of
// fx.Decorate.
func Decorate[S any](settings ...veneer.Setting) fx.Option {
	return fx.Decorate(
		func(s S) (S, error) {
			return veneer.With(s, settings...)
		},
	)
}

// RootCause unwraps the error chain that fx and dig build around a
// failed constructor, returning the underlying error.  Useful for
// asserting on veneer's typed errors after app startup fails.
func RootCause(err error) error {
	return dig.RootCause(err)
}
