package configutils

import (
	"github.com/solo-io/release-utils/changelogutils"
	"github.com/solo-io/release-utils/releaseutils"
	"github.com/solo-io/release-utils/slackutils"
)

// Config holds every setting of a release run. Keys are shared by the config file,
// the INPUT_<KEY> action inputs and the command line.
type Config struct {
	Owner        string `json:"owner,omitempty"`
	Repo         string `json:"repo,omitempty"`
	GithubToken  string `json:"github_token,omitempty"`
	GithubApiUrl string `json:"github_api_url,omitempty"`
	TargetCommit string `json:"target_commit,omitempty"`
	BaseBranch   string `json:"base_branch,omitempty"`

	SlackWebhook  string            `json:"slack_webhook,omitempty"`
	SlackRepoUrls map[string]string `json:"slack_repo_urls,omitempty"`

	TrackerPrefix  string   `json:"tracker_prefix,omitempty"`
	NotesMode      string   `json:"notes_mode,omitempty"`
	ReleaseBody    string   `json:"release_body,omitempty"`
	WindowStrategy []string `json:"window_strategy,omitempty"`
	GitDir         string   `json:"git_dir,omitempty"`

	Format   string `json:"format,omitempty"`
	Greeting string `json:"greeting,omitempty"`

	InfoFile string `json:"info_file,omitempty"`
	DryRun   bool   `json:"dry_run,omitempty"`
	LogLevel string `json:"log_level,omitempty"`
}

const (
	KeyOwner          = "owner"
	KeyRepo           = "repo"
	KeyGithubToken    = "github_token"
	KeyGithubApiUrl   = "github_api_url"
	KeyTargetCommit   = "target_commit"
	KeyBaseBranch     = "base_branch"
	KeySlackWebhook   = "slack_webhook"
	KeySlackRepoUrls  = "slack_repo_urls"
	KeyTrackerPrefix  = "tracker_prefix"
	KeyNotesMode      = "notes_mode"
	KeyReleaseBody    = "release_body"
	KeyWindowStrategy = "window_strategy"
	KeyGitDir         = "git_dir"
	KeyFormat         = "format"
	KeyGreeting       = "greeting"
	KeyInfoFile       = "info_file"
	KeyDryRun         = "dry_run"
	KeyLogLevel       = "log_level"
)

// InputAliases maps legacy action input names onto config keys.
var InputAliases = map[string]string{
	"target_commit_sha": KeyTargetCommit,
}

// Keys lists every config key, in the order they are documented.
var Keys = []string{
	KeyOwner, KeyRepo, KeyGithubToken, KeyGithubApiUrl, KeyTargetCommit, KeyBaseBranch,
	KeySlackWebhook, KeySlackRepoUrls,
	KeyTrackerPrefix, KeyNotesMode, KeyReleaseBody, KeyWindowStrategy, KeyGitDir,
	KeyFormat, KeyGreeting,
	KeyInfoFile, KeyDryRun, KeyLogLevel,
}

func (c *Config) applyDefaults() {
	if c.BaseBranch == "" {
		c.BaseBranch = releaseutils.DefaultBaseBranch
	}
	if c.TrackerPrefix == "" {
		c.TrackerPrefix = changelogutils.DefaultTrackerPrefix
	}
	if c.NotesMode == "" {
		c.NotesMode = releaseutils.NotesModeChangelog
	}
	if len(c.WindowStrategy) == 0 {
		c.WindowStrategy = releaseutils.DefaultWindowStrategies
	}
	if c.Format == "" {
		c.Format = slackutils.FormatBlocks
	}
	if c.Greeting == "" {
		c.Greeting = slackutils.DefaultGreeting
	}
}

// SlackNotifications routes messages for Repo to its own channel when one is configured.
func (c *Config) SlackNotifications() *slackutils.SlackNotifications {
	return &slackutils.SlackNotifications{
		DefaultUrl: c.SlackWebhook,
		RepoUrls:   c.SlackRepoUrls,
	}
}
