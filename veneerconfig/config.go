// Package veneerconfig sources capability settings from external
// configuration, so that a stack's label and changed flag can be
// driven by the same viper instance that configures the rest of an
// application.
package veneerconfig

import (
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"

	"github.com/xmidt-org/veneer"
)

// Config is the unmarshalable form of a group of capability settings.
// Pointer fields distinguish "not present in configuration" from a
// zero value, so configuration can set a flag back to false or a label
// back to empty explicitly.
type Config struct {
	// Label is the optional label capability text
	Label *string `mapstructure:"label"`

	// Changed is the optional changed flag capability state
	Changed *bool `mapstructure:"changed"`
}

// Settings converts this Config into the settings for its present
// fields, in a stable order.  An empty Config yields no settings.
func (c Config) Settings() (s []veneer.Setting) {
	if c.Changed != nil {
		s = append(s, veneer.Changed(*c.Changed))
	}

	if c.Label != nil {
		s = append(s, veneer.Label(*c.Label))
	}

	return
}

// FromMap decodes capability settings from a raw map, as produced by
// viper.Get or any other configuration source.
func FromMap(raw map[string]any) ([]veneer.Setting, error) {
	var c Config
	if err := mapstructure.Decode(raw, &c); err != nil {
		return nil, err
	}

	return c.Settings(), nil
}

// Merge combines groups of viper decoder options into a single option.
// Later groups are applied after, and can thus override, earlier ones.
func Merge(opts ...[]viper.DecoderConfigOption) viper.DecoderConfigOption {
	return func(dc *mapstructure.DecoderConfig) {
		for _, group := range opts {
			for _, o := range group {
				o(dc)
			}
		}
	}
}

// Unmarshal reads the capability settings at the given key of a viper
// instance.  A key absent from configuration yields no settings and no
// error.
func Unmarshal(v *viper.Viper, key string, opts ...viper.DecoderConfigOption) ([]veneer.Setting, error) {
	var c Config
	if err := v.UnmarshalKey(key, &c, Merge(opts)); err != nil {
		return nil, err
	}

	return c.Settings(), nil
}
