package commands

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/solo-io/release-utils/configutils"
	"github.com/solo-io/release-utils/internal"
)

func ReleaseCommand(ctx context.Context, globalFlags *internal.GlobalFlags, runtime *internal.Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "release",
		Short: "create the next calendar versioned release of a repository",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(ctx, globalFlags, runtime, cmd.Flags(), configutils.StepRelease)
			if err != nil {
				return err
			}
			info, err := publish(ctx, cfg, runtime)
			if err != nil {
				return err
			}
			if cfg.DryRun {
				logrus.Infof("Would release %s (%d changes, %d stories)", info.Version, len(info.Changelog), len(info.TrackerLinks))
				return nil
			}
			logrus.Infof("Released %s: %s", info.Version, info.ReleaseUrl)
			return nil
		},
	}

	internal.ConfigFlags{}.AddToFlags(cmd.Flags())

	return cmd
}
