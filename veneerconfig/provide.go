package veneerconfig

import (
	"github.com/spf13/viper"
	"go.uber.org/fx"

	"github.com/xmidt-org/veneer"
	"github.com/xmidt-org/veneer/veneerfx"
)

// UnmarshalIn is the set of dependencies for the setting constructors
// emitted by ProvideKey.
type UnmarshalIn struct {
	fx.In

	// Viper is the required viper component in the enclosing fx.App
	Viper *viper.Viper

	// DecodeOptions are an optional set of decoder options from the
	// enclosing fx.App, applied to every unmarshal
	DecodeOptions []viper.DecoderConfigOption `optional:"true"`
}

// ProvideKey unmarshals the capability settings at the given
// configuration key and emits them into the veneerfx setting group,
// where stacks provided through veneerfx consume them.
func ProvideKey(key string) fx.Option {
	return fx.Provide(
		fx.Annotated{
			Group: veneerfx.SettingGroup + ",flatten",
			Target: func(in UnmarshalIn) ([]veneer.Setting, error) {
				return Unmarshal(in.Viper, key, in.DecodeOptions...)
			},
		},
	)
}
