package githubutils

import (
	"context"
	"time"

	"github.com/google/go-github/v52/github"
	"go.uber.org/zap"

	"github.com/solo-io/release-utils/contextutils"
	"github.com/solo-io/release-utils/errors"
)

//go:generate mockgen -destination ./mocks/mock_repo_client.go -source repo_client.go

// RepoClient is the slice of the GitHub REST api a release run consumes.
type RepoClient interface {
	GetLatestRelease(ctx context.Context) (*Release, error)
	CreateRelease(ctx context.Context, spec ReleaseSpec) (*Release, error)
	GetCommitTime(ctx context.Context, ref string) (time.Time, error)
	FindMergeTime(ctx context.Context, sha string) (time.Time, error)
	SearchMergedPullRequests(ctx context.Context, query MergedPullRequestQuery) ([]*MergedPullRequest, error)
	Owner() string
	Repo() string
}

type repoClient struct {
	client *github.Client
	owner  string
	repo   string
}

func NewRepoClient(client *github.Client, owner, repo string) RepoClient {
	return &repoClient{
		client: client,
		owner:  owner,
		repo:   repo,
	}
}

func (c *repoClient) Owner() string {
	return c.owner
}

func (c *repoClient) Repo() string {
	return c.repo
}

func (c *repoClient) GetLatestRelease(ctx context.Context) (*Release, error) {
	release, _, err := c.client.Repositories.GetLatestRelease(ctx, c.owner, c.repo)
	if err != nil {
		logGithubError(ctx, err, "Error loading latest release", zap.String("repo", RepoAddress(c.owner, c.repo)))
		return nil, errors.ClassifyGithubError(err, "could not get latest release of %s", RepoAddress(c.owner, c.repo))
	}
	return toRelease(release), nil
}

func (c *repoClient) CreateRelease(ctx context.Context, spec ReleaseSpec) (*Release, error) {
	request := &github.RepositoryRelease{
		TagName:         github.String(spec.TagName),
		Name:            github.String(spec.Name),
		TargetCommitish: github.String(spec.TargetCommitish),
	}
	if spec.Body != "" {
		request.Body = github.String(spec.Body)
	}
	if spec.GenerateNotes {
		request.GenerateReleaseNotes = github.Bool(true)
	}
	release, _, err := c.client.Repositories.CreateRelease(ctx, c.owner, c.repo, request)
	if err != nil {
		logGithubError(ctx, err, "Error creating release", zap.String("tag", spec.TagName))
		return nil, errors.ClassifyGithubError(err, "could not create release %s", spec.TagName)
	}
	contextutils.LoggerFrom(ctx).Infow("Release created",
		zap.String("tag", release.GetTagName()),
		zap.String("url", release.GetHTMLURL()))
	return toRelease(release), nil
}

func (c *repoClient) GetCommitTime(ctx context.Context, ref string) (time.Time, error) {
	commit, _, err := c.client.Repositories.GetCommit(ctx, c.owner, c.repo, ref, nil)
	if err != nil {
		logGithubError(ctx, err, "Error loading commit", zap.String("ref", ref))
		return time.Time{}, errors.ClassifyGithubError(err, "could not get commit %s", ref)
	}
	date := commit.GetCommit().GetCommitter().GetDate()
	if date.IsZero() {
		return time.Time{}, errors.UnexpectedError(nil, "commit %s has no committer date", ref)
	}
	return date.Time, nil
}

func (c *repoClient) FindMergeTime(ctx context.Context, sha string) (time.Time, error) {
	result, _, err := c.client.Search.Issues(ctx, MergedCommitQuery(c.owner, c.repo, sha), nil)
	if err != nil {
		return time.Time{}, errors.ClassifyGithubError(err, "could not search for pull request merging %s", sha)
	}
	if len(result.Issues) == 0 {
		return time.Time{}, errors.NotFoundError(nil, "no merged pull request contains %s", sha)
	}
	closedAt := result.Issues[0].GetClosedAt()
	if closedAt.IsZero() {
		return time.Time{}, errors.UnexpectedError(nil, "pull request #%d merging %s has no merge time", result.Issues[0].GetNumber(), sha)
	}
	return closedAt.Time, nil
}

// SearchMergedPullRequests follows pagination until the search api stops returning pages.
func (c *repoClient) SearchMergedPullRequests(ctx context.Context, query MergedPullRequestQuery) ([]*MergedPullRequest, error) {
	logger := contextutils.LoggerFrom(ctx)
	q := query.String()
	logger.Debugw("Searching merged pull requests", zap.String("query", q))

	opts := &github.SearchOptions{
		ListOptions: github.ListOptions{PerPage: MAX_SEARCH_RESULTS_PER_PAGE},
	}
	var prs []*MergedPullRequest
	for {
		result, resp, err := c.client.Search.Issues(ctx, q, opts)
		if err != nil {
			logGithubError(ctx, err, "Error searching merged pull requests", zap.String("query", q))
			return nil, errors.ClassifyGithubError(err, "could not search merged pull requests")
		}
		for _, issue := range result.Issues {
			prs = append(prs, toMergedPullRequest(issue))
		}
		if resp == nil || resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	logger.Infow("Found merged pull requests", zap.Int("count", len(prs)))
	return prs, nil
}
