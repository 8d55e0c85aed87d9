package configloader

// overlay is the YAML shape of one config file. Pointer fields distinguish
// "unset" from a zero value, so a later file only overrides what it names.
type overlay struct {
	Display          *bool             `yaml:"display"`
	Strict           *string           `yaml:"strict"`
	Trust            *bool             `yaml:"trust"`
	TrustedProtocols []string          `yaml:"trusted_protocols"`
	Macros           map[string]string `yaml:"macros"`
	MaxSize          *float64          `yaml:"max_size"`
	MaxExpand        *int              `yaml:"max_expand"`
	MinRuleThickness *float64          `yaml:"min_rule_thickness"`
	LogLevel         *string           `yaml:"log_level"`
}

// apply merges one overlay into the configuration. Scalars replace; the
// protocol list replaces entirely; macros merge per name.
func (c *Config) apply(o *overlay) {
	if o == nil {
		return
	}
	if o.Display != nil {
		c.Display = *o.Display
	}
	if o.Strict != nil {
		c.Strict = *o.Strict
	}
	if o.Trust != nil {
		c.Trust = *o.Trust
	}
	if o.TrustedProtocols != nil {
		c.TrustedProtocols = o.TrustedProtocols
	}
	if o.MaxSize != nil {
		c.MaxSize = *o.MaxSize
	}
	if o.MaxExpand != nil {
		c.MaxExpand = *o.MaxExpand
	}
	if o.MinRuleThickness != nil {
		c.MinRuleThickness = *o.MinRuleThickness
	}
	if o.LogLevel != nil {
		c.LogLevel = *o.LogLevel
	}
	if len(o.Macros) > 0 {
		if c.Macros == nil {
			c.Macros = make(map[string]string, len(o.Macros))
		}
		for name, body := range o.Macros {
			c.Macros[name] = body
		}
	}
}
