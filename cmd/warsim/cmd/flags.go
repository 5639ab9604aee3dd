package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/pflag"
)

// warnings collects flag values that were ignored during parsing, before
// any logger exists to report them
type warnings []string

func (w *warnings) add(format string, v ...interface{}) {
	*w = append(*w, fmt.Sprintf(format, v...))
}

// lenientInt is an integer flag that keeps its previous value when given
// something that does not parse
type lenientInt struct {
	name     string
	value    int64
	set      bool
	warnings *warnings
}

var _ pflag.Value = (*lenientInt)(nil)

func newLenientInt(fs *pflag.FlagSet, name string, def int64, usage string, w *warnings) *lenientInt {
	f := &lenientInt{name: name, value: def, warnings: w}
	fs.Var(f, name, usage)
	return f
}

func (f *lenientInt) String() string {
	return strconv.FormatInt(f.value, 10)
}

func (f *lenientInt) Set(s string) error {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		f.warnings.add("--%s: ignoring malformed value %q", f.name, s)
		return nil
	}
	f.value = v
	f.set = true
	return nil
}

func (f *lenientInt) Type() string {
	return "int"
}

// Or returns the flag's value if it was given, otherwise fallback
func (f *lenientInt) Or(fallback int64) int64 {
	if f.set {
		return f.value
	}
	return fallback
}

// Ptr returns the flag's value if it was given, otherwise fallback
func (f *lenientInt) Ptr(fallback *int64) *int64 {
	if f.set {
		v := f.value
		return &v
	}
	return fallback
}
