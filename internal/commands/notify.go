package commands

import (
	"context"
	"encoding/json"

	"github.com/sirupsen/logrus"
	"github.com/slack-go/slack"
	"github.com/spf13/cobra"

	"github.com/solo-io/release-utils/configutils"
	"github.com/solo-io/release-utils/internal"
)

func NotifyCommand(ctx context.Context, globalFlags *internal.GlobalFlags, runtime *internal.Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notify",
		Short: "announce a release on slack",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(ctx, globalFlags, runtime, cmd.Flags(), configutils.StepNotify)
			if err != nil {
				return err
			}
			info, err := loadReleaseInfo(cfg, runtime)
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

func reportNotified(cmd *cobra.Command, cfg *configutils.Config, message *slack.WebhookMessage, version string) error {
	if !cfg.DryRun {
		logrus.Infof("Announced %s on slack", version)
		return nil
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(message)
}
