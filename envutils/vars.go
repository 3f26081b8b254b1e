package envutils

import (
	"context"

	"github.com/sethvargo/go-githubactions"
	"go.uber.org/zap"

	"github.com/solo-io/release-utils/contextutils"
)

const (
	GithubTokenEnv      = "GITHUB_TOKEN"
	GithubRepositoryEnv = "GITHUB_REPOSITORY"
	GithubShaEnv        = "GITHUB_SHA"
	GithubApiUrlEnv     = "GITHUB_API_URL"
	GithubWorkspaceEnv  = "GITHUB_WORKSPACE"
	SlackWebhookEnv     = "SLACK_WEBHOOK"
)

// GetInput returns the trimmed value of an action input, or empty when it was not given.
func GetInput(ctx context.Context, getenv func(string) string, name string) string {
	value := githubactions.New(githubactions.WithGetenv(getenv)).GetInput(name)
	if value != "" {
		contextutils.LoggerFrom(ctx).Debugw("Found action input", zap.String("input", name))
	}
	return value
}

// Lookup returns the value of an environment variable. Values are never logged.
func Lookup(ctx context.Context, getenv func(string) string, name string) string {
	value := getenv(name)
	if value != "" {
		contextutils.LoggerFrom(ctx).Debugw("Found environment variable", zap.String("name", name))
	}
	return value
}
