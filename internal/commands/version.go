package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/solo-io/release-utils/cliutils"
	"github.com/solo-io/release-utils/internal"
	"github.com/solo-io/release-utils/versionutils"
)

func VersionCommand(ctx context.Context, globalFlags *internal.GlobalFlags, runtime *internal.Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "calendar version helpers",
	}
	cmd.AddCommand(nextVersionCommand(ctx, globalFlags, runtime))
	return cmd
}

type nextVersionOptions struct {
	*internal.GlobalFlags

	previous string
	strict   bool
}

func (o *nextVersionOptions) addToFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&o.previous, "previous", "p", "", "tag of the latest release")
	flags.BoolVar(&o.strict, "strict", false, "fail when the previous tag is not a YYMM.BBBB calendar version")

	cliutils.MustMarkFlagRequired(flags, "previous")
}

func nextVersionCommand(ctx context.Context, globalFlags *internal.GlobalFlags, runtime *internal.Runtime) *cobra.Command {
	opts := &nextVersionOptions{
		GlobalFlags: globalFlags,
	}

	cmd := &cobra.Command{
		Use:   "next",
		Short: "print the version that follows the previous release",
		RunE: func(cmd *cobra.Command, args []string) error {
			return doNextVersion(cmd, opts, runtime)
		},
	}

	opts.addToFlags(cmd.Flags())

	return cmd
}

func doNextVersion(cmd *cobra.Command, opts *nextVersionOptions, runtime *internal.Runtime) error {
	if opts.strict {
		if _, err := versionutils.ParseCalendarVersion(opts.previous); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), versionutils.NextVersionAt(opts.previous, runtime.Clock.Now()))
	return err
}
