package slackutils

import (
	"context"
	"net/http"
	"net/url"

	"github.com/slack-go/slack"
	"go.uber.org/zap"

	"github.com/solo-io/release-utils/contextutils"
	"github.com/solo-io/release-utils/errors"
)

type HttpClient interface {
	PostWebhook(ctx context.Context, webhookUrl string, message *slack.WebhookMessage) error
}

var _ HttpClient = new(DefaultHttpClient)

// DefaultHttpClient posts once and awaits the response; it never retries.
type DefaultHttpClient struct {
	Client *http.Client
}

func NewDefaultHttpClient() *DefaultHttpClient {
	return &DefaultHttpClient{Client: http.DefaultClient}
}

func (c *DefaultHttpClient) PostWebhook(ctx context.Context, webhookUrl string, message *slack.WebhookMessage) error {
	logger := contextutils.LoggerFrom(ctx)
	if u, err := url.Parse(webhookUrl); err != nil || u.Scheme == "" || u.Host == "" {
		return errors.MalformedInputError("invalid slack webhook url %q", webhookUrl)
	}

	client := c.Client
	if client == nil {
		client = http.DefaultClient
	}
	err := slack.PostWebhookCustomHTTPContext(ctx, webhookUrl, client, message)
	if err == nil {
		return nil
	}
	logger.Errorw("Notifying slack failed", zap.Error(err))

	var (
		statusErr   slack.StatusCodeError
		rateLimited *slack.RateLimitedError
	)
	switch {
	case errors.As(err, &rateLimited):
		return errors.NetworkFailureError(err, "slack webhook rate limited, retry after %s", rateLimited.RetryAfter)
	case errors.As(err, &statusErr):
		return errors.UnexpectedError(err, "slack webhook responded %d", statusErr.Code)
	}
	return errors.NetworkFailureError(err, "could not post to slack webhook")
}
