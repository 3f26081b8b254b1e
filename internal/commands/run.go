package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/solo-io/release-utils/configutils"
	"github.com/solo-io/release-utils/internal"
)

func RunCommand(ctx context.Context, globalFlags *internal.GlobalFlags, runtime *internal.Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "release and announce the release on slack",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(ctx, globalFlags, runtime, cmd.Flags(), configutils.StepRun)
			if err != nil {
				return err
			}
			info, err := publish(ctx, cfg, runtime)
			if err != nil {
				return err
			}
			message, err := notify(ctx, cfg, runtime, info)
			if err != nil {
				return err
			}
			return reportNotified(cmd, cfg, message, info.Version)
		},
	}

	internal.ConfigFlags{}.AddToFlags(cmd.Flags())

	return cmd
}
