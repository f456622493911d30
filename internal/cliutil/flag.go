package cliutil

import "github.com/spf13/pflag"

// FormatValue adapts Format to pflag.Value so --log-format rejects an
// unrecognized format at flag-parse time instead of at first use.
type FormatValue struct {
	f *Format
}

var _ pflag.Value = (*FormatValue)(nil)

// NewFormatValue returns a pflag.Value backed by f, defaulting it to
// def.
func NewFormatValue(def Format, f *Format) *FormatValue {
	*f = def
	return &FormatValue{f: f}
}

func (v *FormatValue) String() string { return string(*v.f) }

func (v *FormatValue) Set(s string) error {
	parsed, err := GetFormat(s)
	if err != nil {
		return err
	}
	*v.f = parsed
	return nil
}

func (v *FormatValue) Type() string { return "format" }
