package slackutils

import (
	"context"

	"github.com/slack-go/slack"
	"go.uber.org/zap"

	"github.com/solo-io/release-utils/contextutils"
	"github.com/solo-io/release-utils/errors"
)

var _ SlackClient = new(slackClient)

type SlackNotifications struct {
	DefaultUrl string            `yaml:"default_url" json:"defaultUrl"`
	RepoUrls   map[string]string `yaml:"repo_urls" json:"repoUrls"`
}

type SlackClient interface {
	// Use repo-specific channel, if exists
	NotifyForRepo(ctx context.Context, repo string, message *slack.WebhookMessage) error
	// Use default channel
	Notify(ctx context.Context, message *slack.WebhookMessage) error
}

func NewSlackClient(notifications *SlackNotifications) *slackClient {
	return NewSlackClientForHttpClient(NewDefaultHttpClient(), notifications)
}

func NewSlackClientForHttpClient(httpClient HttpClient, notifications *SlackNotifications) *slackClient {
	return &slackClient{
		httpClient:    httpClient,
		notifications: notifications,
	}
}

type slackClient struct {
	httpClient    HttpClient
	notifications *SlackNotifications
}

func (s *slackClient) getSlackUrl(repo string) string {
	if s.notifications == nil {
		return ""
	}
	if repoUrl, ok := s.notifications.RepoUrls[repo]; ok && repo != "" {
		return repoUrl
	}
	return s.notifications.DefaultUrl
}

func (s *slackClient) Notify(ctx context.Context, message *slack.WebhookMessage) error {
	return s.NotifyForRepo(ctx, "", message)
}

func (s *slackClient) NotifyForRepo(ctx context.Context, repo string, message *slack.WebhookMessage) error {
	slackUrl := s.getSlackUrl(repo)
	if slackUrl == "" {
		return errors.MalformedInputError("no slack webhook configured for repo %q", repo)
	}
	blocks := 0
	if message.Blocks != nil {
		blocks = len(message.Blocks.BlockSet)
	}
	contextutils.LoggerFrom(ctx).Infow("Notifying slack",
		zap.String("repo", repo),
		zap.Int("blocks", blocks))
	return s.httpClient.PostWebhook(ctx, slackUrl, message)
}
