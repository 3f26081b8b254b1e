package commands

import (
	"context"

	"github.com/slack-go/slack"
	"github.com/spf13/pflag"

	"github.com/solo-io/release-utils/changelogutils"
	"github.com/solo-io/release-utils/ciutils"
	"github.com/solo-io/release-utils/cliutils"
	"github.com/solo-io/release-utils/configutils"
	"github.com/solo-io/release-utils/contextutils"
	"github.com/solo-io/release-utils/githubutils"
	"github.com/solo-io/release-utils/internal"
	"github.com/solo-io/release-utils/releaseutils"
	"github.com/solo-io/release-utils/slackutils"
)

// loadConfig layers the flags set on the command line over the config file and the environment.
func loadConfig(ctx context.Context, globalFlags *internal.GlobalFlags, runtime *internal.Runtime, flags *pflag.FlagSet, step configutils.Step) (*configutils.Config, error) {
	cfg, err := configutils.Load(ctx, configutils.LoadOptions{
		Fs:        runtime.Fs,
		Path:      globalFlags.ConfigFile,
		Getenv:    runtime.Getenv,
		Overrides: cliutils.ChangedValues(flags),
	})
	if err != nil {
		return nil, err
	}
	if cfg.LogLevel != "" && !globalFlags.Verbose {
		contextutils.SetLogLevelFromString(cfg.LogLevel)
	}
	if err := cfg.Validate(step); err != nil {
		return nil, err
	}
	return cfg, nil
}

func publish(ctx context.Context, cfg *configutils.Config, runtime *internal.Runtime) (*changelogutils.ReleaseInfo, error) {
	client, err := githubutils.GetClient(ctx, cfg.GithubToken, cfg.GithubApiUrl)
	if err != nil {
		return nil, err
	}
	repoClient := githubutils.NewRepoClient(client, cfg.Owner, cfg.Repo)
	window, err := releaseutils.NewWindowStrategy(cfg.WindowStrategy, repoClient, runtime.Clock, cfg.GitDir)
	if err != nil {
		return nil, err
	}
	publisher, err := releaseutils.NewPublisher(repoClient, window, runtime.Clock, releaseutils.PublishOptions{
		BaseBranch:       cfg.BaseBranch,
		NotesMode:        cfg.NotesMode,
		Body:             cfg.ReleaseBody,
		DryRun:           cfg.DryRun,
		TrackerExtractor: changelogutils.NewTrackerLinkExtractor(cfg.TrackerPrefix),
	})
	if err != nil {
		return nil, err
	}
	info, err := publisher.Publish(ctx, cfg.TargetCommit)
	if err != nil {
		return nil, err
	}

	// a dry run has no release for later steps to consume
	if cfg.DryRun {
		return info, nil
	}
	if err := ciutils.NewOutputWriter(runtime.Getenv).Write(ctx, info); err != nil {
		return nil, err
	}
	if cfg.InfoFile != "" {
		if err := ciutils.NewInfoStore(runtime.Fs, cfg.InfoFile).Save(info); err != nil {
			return nil, err
		}
	}
	return info, nil
}

func notify(ctx context.Context, cfg *configutils.Config, runtime *internal.Runtime, info *changelogutils.ReleaseInfo) (*slack.WebhookMessage, error) {
	formatter, err := slackutils.NewFormatter(cfg.Format, cfg.Greeting)
	if err != nil {
		return nil, err
	}
	message, err := formatter.Format(info)
	if err != nil {
		return nil, err
	}
	if cfg.DryRun {
		return message, nil
	}
	if err := slackutils.NewSlackClient(cfg.SlackNotifications()).NotifyForRepo(ctx, cfg.Repo, message); err != nil {
		return nil, err
	}
	return message, nil
}

// loadReleaseInfo prefers the info file and falls back to the variables of the legacy release action.
func loadReleaseInfo(cfg *configutils.Config, runtime *internal.Runtime) (*changelogutils.ReleaseInfo, error) {
	if cfg.InfoFile != "" {
		return ciutils.NewInfoStore(runtime.Fs, cfg.InfoFile).Load()
	}
	return ciutils.ReadInfoFromEnv(runtime.Getenv)
}
