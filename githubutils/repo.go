package githubutils

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/go-github/v52/github"
	"go.uber.org/zap"
	"golang.org/x/oauth2"

	"github.com/solo-io/release-utils/contextutils"
	"github.com/solo-io/release-utils/errors"
)

const (
	MAX_SEARCH_RESULTS_PER_PAGE = 100
)

// GetClient builds an authenticated client. An empty baseUrl talks to github.com,
// anything else is treated as a GitHub Enterprise (or test) API root.
func GetClient(ctx context.Context, token, baseUrl string) (*github.Client, error) {
	if token == "" {
		contextutils.LoggerFrom(ctx).Warnw("No github token provided, private repositories will be unavailable and a strict rate limit will be enforced.")
		return withBaseUrl(github.NewClient(nil), baseUrl)
	}
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)
	return withBaseUrl(github.NewClient(tc), baseUrl)
}

func withBaseUrl(client *github.Client, baseUrl string) (*github.Client, error) {
	if baseUrl == "" {
		return client, nil
	}
	if !strings.HasSuffix(baseUrl, "/") {
		baseUrl += "/"
	}
	u, err := url.Parse(baseUrl)
	if err != nil {
		return nil, errors.MalformedInputError("invalid github api url %s: %v", baseUrl, err)
	}
	client.BaseURL = u
	client.UploadURL = u
	return client, nil
}

// ParseRepository splits the owner/repo form used by GITHUB_REPOSITORY.
func ParseRepository(fullName string) (owner, repo string, err error) {
	parts := strings.Split(fullName, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", errors.MalformedInputError("repository %q must be of the form owner/repo", fullName)
	}
	return parts[0], parts[1], nil
}

func RepoAddress(owner, repo string) string {
	return fmt.Sprintf("github.com/%s/%s", owner, repo)
}

func toRelease(release *github.RepositoryRelease) *Release {
	return &Release{
		TagName:         release.GetTagName(),
		Name:            release.GetName(),
		TargetCommitish: release.GetTargetCommitish(),
		Body:            release.GetBody(),
		HtmlUrl:         release.GetHTMLURL(),
		CreatedAt:       release.GetCreatedAt().Time,
		PublishedAt:     release.GetPublishedAt().Time,
	}
}

// Search results are issues; merged pull requests close at their merge time.
func toMergedPullRequest(issue *github.Issue) *MergedPullRequest {
	return &MergedPullRequest{
		Number:   issue.GetNumber(),
		Title:    issue.GetTitle(),
		Author:   issue.GetUser().GetLogin(),
		HtmlUrl:  issue.GetHTMLURL(),
		Body:     issue.GetBody(),
		MergedAt: issue.GetClosedAt().Time,
	}
}

func logGithubError(ctx context.Context, err error, msg string, fields ...zap.Field) {
	var responseErr *github.ErrorResponse
	if errors.As(err, &responseErr) && responseErr.Response != nil {
		fields = append(fields, zap.Int("status", responseErr.Response.StatusCode))
	}
	contextutils.LoggerFrom(ctx).Desugar().Error(msg, append(fields, zap.Error(err))...)
}
