// Package mask formats numeric input as masked currency strings and recovers
// the numeric value from a masked string.
package mask

// MaxPrecision is the largest number of fractional digits ever rendered.
const MaxPrecision = 20

// Config holds the formatting options applied to a value.
type Config struct {
	Precision int    `yaml:"precision" json:"precision"`
	Decimal   string `yaml:"decimal" json:"decimal"`
	Thousands string `yaml:"thousands" json:"thousands"`
	Prefix    string `yaml:"prefix" json:"prefix"`
	Suffix    string `yaml:"suffix" json:"suffix"`
	// Masked tells the binding layer to hand consumers the masked string
	// instead of the number.
	Masked bool `yaml:"masked" json:"masked"`
}

// DefaultConfig returns the default US-style configuration.
func DefaultConfig() Config {
	return Config{
		Precision: 2,
		Decimal:   ".",
		Thousands: ",",
	}
}

// Options is a partial Config. A nil field keeps the default; any non-nil
// field overrides it, including an empty string.
type Options struct {
	Precision *int    `yaml:"precision,omitempty" json:"precision,omitempty"`
	Decimal   *string `yaml:"decimal,omitempty" json:"decimal,omitempty"`
	Thousands *string `yaml:"thousands,omitempty" json:"thousands,omitempty"`
	Prefix    *string `yaml:"prefix,omitempty" json:"prefix,omitempty"`
	Suffix    *string `yaml:"suffix,omitempty" json:"suffix,omitempty"`
	Masked    *bool   `yaml:"masked,omitempty" json:"masked,omitempty"`
}

// Merge returns a copy of defaults with every field set in o applied on top.
// A nil o returns defaults unchanged.
func Merge(defaults Config, o *Options) Config {
	cfg := defaults
	if o == nil {
		return cfg
	}
	if o.Precision != nil {
		cfg.Precision = *o.Precision
	}
	if o.Decimal != nil {
		cfg.Decimal = *o.Decimal
	}
	if o.Thousands != nil {
		cfg.Thousands = *o.Thousands
	}
	if o.Prefix != nil {
		cfg.Prefix = *o.Prefix
	}
	if o.Suffix != nil {
		cfg.Suffix = *o.Suffix
	}
	if o.Masked != nil {
		cfg.Masked = *o.Masked
	}
	return cfg
}

// Overlay merges two partial option sets; fields set in top win.
func Overlay(base, top *Options) *Options {
	out := &Options{}
	for _, o := range []*Options{base, top} {
		if o == nil {
			continue
		}
		if o.Precision != nil {
			out.Precision = o.Precision
		}
		if o.Decimal != nil {
			out.Decimal = o.Decimal
		}
		if o.Thousands != nil {
			out.Thousands = o.Thousands
		}
		if o.Prefix != nil {
			out.Prefix = o.Prefix
		}
		if o.Suffix != nil {
			out.Suffix = o.Suffix
		}
		if o.Masked != nil {
			out.Masked = o.Masked
		}
	}
	return out
}

// Int returns a pointer to v, for building Options literals.
func Int(v int) *int { return &v }

// String returns a pointer to v, for building Options literals.
func String(v string) *string { return &v }

// Bool returns a pointer to v, for building Options literals.
func Bool(v bool) *bool { return &v }

func clampPrecision(p int) int {
	return max(0, min(p, MaxPrecision))
}
