package internal

import (
	"io"
	"os"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
)

type GlobalFlags struct {
	Verbose    bool
	ConfigFile string
}

func (g *GlobalFlags) AddToFlags(flags *pflag.FlagSet) {
	flags.BoolVarP(&g.Verbose, "verbose", "v", false, "Enable verbose logging")
	flags.StringVarP(&g.ConfigFile, "config", "c", "", "Path to a yaml config file")
}

// ConfigFlags override values of the config file and the environment when set.
type ConfigFlags struct{}

func (ConfigFlags) AddToFlags(flags *pflag.FlagSet) {
	flags.String("owner", "", "owner of the repository to release")
	flags.String("repo", "", "name of the repository to release")
	flags.String("github-token", "", "token used against the github api, defaults to $GITHUB_TOKEN")
	flags.String("github-api-url", "", "base url of the github api, for github enterprise")
	flags.String("target-commit", "", "commit to release, defaults to $GITHUB_SHA")
	flags.String("base-branch", "", "branch pull requests are merged into (default main)")
	flags.String("slack-webhook", "", "slack incoming webhook url, defaults to $SLACK_WEBHOOK")
	flags.String("tracker-prefix", "", "url prefix of tracker links (default https://app.shortcut.com)")
	flags.String("notes-mode", "", "how release notes are written: changelog, generated or provided")
	flags.String("release-body", "", "release notes used with --notes-mode provided")
	flags.StringSlice("window-strategy", nil, "ordered strategies for the release window: publish, commit")
	flags.String("git-dir", "", "local clone used to look up commit times")
	flags.String("format", "", "slack message format: blocks, markdown or plain")
	flags.String("greeting", "", "greeting shown in the slack message")
	flags.String("info-file", "", "file the release info is saved to and loaded from")
	flags.Bool("dry-run", false, "compute the release without creating it or posting to slack")
	flags.String("log-level", "", "log level of library logs: debug, info, warn or error")
}

// Runtime is what commands need from the process they run in.
type Runtime struct {
	Fs     afero.Fs
	Getenv func(string) string
	Clock  clockwork.Clock
	Out    io.Writer
}

func DefaultRuntime() *Runtime {
	return &Runtime{
		Fs:     afero.NewOsFs(),
		Getenv: os.Getenv,
		Clock:  clockwork.NewRealClock(),
		Out:    os.Stdout,
	}
}
