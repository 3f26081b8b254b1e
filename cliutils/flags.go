package cliutils

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// MustMarkFlagRequired panics if the call to MarkFlagRequired() fails.
func MustMarkFlagRequired(flaggish interface{}, name string) {
	switch v := flaggish.(type) {
	case *cobra.Command:
		if err := v.MarkFlagRequired(name); err != nil {
			panic(err)
		}
	case *pflag.FlagSet:
		if err := cobra.MarkFlagRequired(v, name); err != nil {
			panic(err)
		}
	default:
		panic("unknown flag object type in call to MustMarkFlagRequired")
	}
}

// ChangedValues returns the flags set on the command line, keyed by the flag name with
// dashes replaced by underscores. Slice flags keep their elements.
func ChangedValues(flags *pflag.FlagSet) map[string]interface{} {
	values := map[string]interface{}{}
	flags.Visit(func(f *pflag.Flag) {
		key := strings.ReplaceAll(f.Name, "-", "_")
		if slice, ok := f.Value.(pflag.SliceValue); ok {
			values[key] = slice.GetSlice()
			return
		}
		values[key] = f.Value.String()
	})
	return values
}
