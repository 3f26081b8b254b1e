package releaseutils

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/solo-io/release-utils/contextutils"
	"github.com/solo-io/release-utils/errors"
	"github.com/solo-io/release-utils/githubutils"
)

const (
	WindowStrategyPublish = "publish"
	WindowStrategyCommit  = "commit"

	// search bounds are inclusive at the start and exclusive at the end, so
	// commit based bounds are moved past the commit they were read from
	boundNudge = time.Millisecond
)

var DefaultWindowStrategies = []string{WindowStrategyPublish, WindowStrategyCommit}

// Window is the time range whose merged pull requests belong to a release.
type Window struct {
	Start time.Time
	End   time.Time
}

type WindowStrategy interface {
	Window(ctx context.Context, previous *githubutils.Release, targetCommit string) (*Window, error)
}

// FirstSuccess tries each strategy in order. When all of them fail the last failure is returned.
func FirstSuccess(strategies ...WindowStrategy) WindowStrategy {
	return firstSuccessWindow(strategies)
}

type firstSuccessWindow []WindowStrategy

func (s firstSuccessWindow) Window(ctx context.Context, previous *githubutils.Release, targetCommit string) (*Window, error) {
	logger := contextutils.LoggerFrom(ctx)
	err := errors.MalformedInputError("no release window strategy configured")
	for i, strategy := range s {
		var window *Window
		window, err = strategy.Window(ctx, previous, targetCommit)
		if err == nil {
			return window, nil
		}
		logger.Warnw("Release window strategy failed", zap.Int("strategy", i), zap.Error(err))
	}
	return nil, err
}

// PublishTimestampStrategy spans from the previous release's publish time until now.
type PublishTimestampStrategy struct {
	Clock clockwork.Clock
}

func (s *PublishTimestampStrategy) Window(ctx context.Context, previous *githubutils.Release, targetCommit string) (*Window, error) {
	start := previous.PublishedAt
	if start.IsZero() {
		start = previous.CreatedAt
	}
	if start.IsZero() {
		return nil, errors.UnexpectedError(nil, "release %s has no publish time", previous.TagName)
	}
	clock := s.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Window{Start: start, End: clock.Now()}, nil
}

// MergeOrCommitTimestampStrategy spans from the time the previous release's commit landed
// until the time the target commit landed.
type MergeOrCommitTimestampStrategy struct {
	Lookup TimestampLookup
}

func (s *MergeOrCommitTimestampStrategy) Window(ctx context.Context, previous *githubutils.Release, targetCommit string) (*Window, error) {
	start, err := s.Lookup.Timestamp(ctx, previous.TargetCommitish)
	if err != nil {
		return nil, errors.Wrapf(err, "could not determine when %s landed", previous.TargetCommitish)
	}
	end, err := s.Lookup.Timestamp(ctx, targetCommit)
	if err != nil {
		return nil, errors.Wrapf(err, "could not determine when %s landed", targetCommit)
	}
	return &Window{Start: start.Add(boundNudge), End: end.Add(boundNudge)}, nil
}

// TimestampLookup resolves the time a commit reached the default branch.
type TimestampLookup interface {
	Timestamp(ctx context.Context, ref string) (time.Time, error)
}

type TimestampLookupFunc func(ctx context.Context, ref string) (time.Time, error)

func (f TimestampLookupFunc) Timestamp(ctx context.Context, ref string) (time.Time, error) {
	return f(ctx, ref)
}

// FirstTimestamp returns the first lookup that succeeds, or the last failure.
func FirstTimestamp(lookups ...TimestampLookup) TimestampLookup {
	return TimestampLookupFunc(func(ctx context.Context, ref string) (time.Time, error) {
		err := errors.MalformedInputError("no timestamp lookup configured")
		for _, lookup := range lookups {
			var ts time.Time
			ts, err = lookup.Timestamp(ctx, ref)
			if err == nil {
				return ts, nil
			}
			contextutils.LoggerFrom(ctx).Debugw("Timestamp lookup failed", zap.String("ref", ref), zap.Error(err))
		}
		return time.Time{}, err
	})
}

// MergeTimeLookup reads the merge time of the pull request that brought ref in.
func MergeTimeLookup(client githubutils.RepoClient) TimestampLookup {
	return TimestampLookupFunc(client.FindMergeTime)
}

// CommitTimeLookup reads the committer date of ref.
func CommitTimeLookup(client githubutils.RepoClient) TimestampLookup {
	return TimestampLookupFunc(client.GetCommitTime)
}

// NewMergeOrCommitTimestampStrategy looks timestamps up by merge time, then commit time, then
// in the local clone at gitDir when one is given.
func NewMergeOrCommitTimestampStrategy(client githubutils.RepoClient, gitDir string) *MergeOrCommitTimestampStrategy {
	lookups := []TimestampLookup{MergeTimeLookup(client), CommitTimeLookup(client)}
	if gitDir != "" {
		lookups = append(lookups, NewLocalGitLookup(gitDir))
	}
	return &MergeOrCommitTimestampStrategy{Lookup: FirstTimestamp(lookups...)}
}

// NewWindowStrategy builds the ordered strategy list from names. No names means the default order.
func NewWindowStrategy(names []string, client githubutils.RepoClient, clock clockwork.Clock, gitDir string) (WindowStrategy, error) {
	if len(names) == 0 {
		names = DefaultWindowStrategies
	}
	var strategies []WindowStrategy
	for _, name := range names {
		switch name {
		case WindowStrategyPublish:
			strategies = append(strategies, &PublishTimestampStrategy{Clock: clock})
		case WindowStrategyCommit:
			strategies = append(strategies, NewMergeOrCommitTimestampStrategy(client, gitDir))
		default:
			return nil, errors.MalformedInputError("unknown window strategy %q, must be %s or %s",
				name, WindowStrategyPublish, WindowStrategyCommit)
		}
	}
	return FirstSuccess(strategies...), nil
}
