package releaseutils

import (
	"context"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/solo-io/release-utils/changelogutils"
	"github.com/solo-io/release-utils/contextutils"
	"github.com/solo-io/release-utils/errors"
	"github.com/solo-io/release-utils/githubutils"
	"github.com/solo-io/release-utils/versionutils"
)

const (
	// NotesModeChangelog writes release notes assembled from the merged pull requests
	NotesModeChangelog = "changelog"
	// NotesModeGenerated asks GitHub to generate the release notes
	NotesModeGenerated = "generated"
	// NotesModeProvided uses the body given in the options as is
	NotesModeProvided = "provided"

	DefaultBaseBranch = "main"
)

type PublishOptions struct {
	BaseBranch string
	NotesMode  string
	// Body is only used with NotesModeProvided
	Body string
	// DryRun computes everything but does not create the release
	DryRun           bool
	TrackerExtractor *changelogutils.TrackerLinkExtractor
}

// Publisher cuts the next calendar versioned release of one repository.
type Publisher struct {
	client githubutils.RepoClient
	window WindowStrategy
	clock  clockwork.Clock
	opts   PublishOptions
}

func NewPublisher(client githubutils.RepoClient, window WindowStrategy, clock clockwork.Clock, opts PublishOptions) (*Publisher, error) {
	switch opts.NotesMode {
	case "":
		opts.NotesMode = NotesModeChangelog
	case NotesModeChangelog, NotesModeGenerated:
	case NotesModeProvided:
		if opts.Body == "" {
			return nil, errors.MalformedInputError("notes mode %s requires a release body", NotesModeProvided)
		}
	default:
		return nil, errors.MalformedInputError("unknown notes mode %q, must be one of %s, %s, %s",
			opts.NotesMode, NotesModeChangelog, NotesModeGenerated, NotesModeProvided)
	}
	if opts.BaseBranch == "" {
		opts.BaseBranch = DefaultBaseBranch
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if window == nil {
		window = &PublishTimestampStrategy{Clock: clock}
	}
	return &Publisher{
		client: client,
		window: window,
		clock:  clock,
		opts:   opts,
	}, nil
}

// Publish creates the release following the latest one at targetCommit and reports what it contains.
// Any failure aborts the run; nothing is retried.
func (p *Publisher) Publish(ctx context.Context, targetCommit string) (*changelogutils.ReleaseInfo, error) {
	owner, repo := p.client.Owner(), p.client.Repo()
	ctx = contextutils.WithLoggerValues(ctx, zap.String("repo", githubutils.RepoAddress(owner, repo)))
	logger := contextutils.LoggerFrom(ctx)

	previous, err := p.client.GetLatestRelease(ctx)
	if err != nil {
		return nil, err
	}
	next := versionutils.NextCalendarVersionAt(previous.TagName, p.clock.Now())
	version := next.String()
	logger.Infow("Computed next version",
		zap.String("previous", previous.TagName),
		zap.String("version", version))

	window, err := p.window.Window(ctx, previous, targetCommit)
	if err != nil {
		return nil, err
	}
	prs, err := p.client.SearchMergedPullRequests(ctx, githubutils.MergedPullRequestQuery{
		Owner: owner,
		Repo:  repo,
		Base:  p.opts.BaseBranch,
		Since: window.Start,
		Until: window.End,
	})
	if err != nil {
		return nil, err
	}

	entries := changelogutils.NewEntries(prs, p.opts.TrackerExtractor)
	info := &changelogutils.ReleaseInfo{
		Version:         version,
		PreviousVersion: previous.TagName,
		Changelog:       changelogutils.Lines(entries),
		TrackerLinks:    changelogutils.TrackerLinks(entries),
	}

	spec := githubutils.ReleaseSpec{
		TagName:         version,
		Name:            next.ReleaseName(),
		TargetCommitish: targetCommit,
	}
	switch p.opts.NotesMode {
	case NotesModeChangelog:
		spec.Body, err = changelogutils.ReleaseBody(entries, owner, repo, previous.TagName, version)
		if err != nil {
			return nil, err
		}
	case NotesModeGenerated:
		spec.GenerateNotes = true
	case NotesModeProvided:
		spec.Body = p.opts.Body
	}
	info.ReleaseBody = spec.Body

	if p.opts.DryRun {
		logger.Infow("Dry run, not creating release",
			zap.String("tag", spec.TagName),
			zap.Int("changelogEntries", len(info.Changelog)),
			zap.Int("trackerLinks", len(info.TrackerLinks)))
		return info, nil
	}

	created, err := p.client.CreateRelease(ctx, spec)
	if err != nil {
		return nil, err
	}
	info.ReleaseUrl = created.HtmlUrl
	if created.Body != "" {
		info.ReleaseBody = created.Body
	}
	return info, nil
}
