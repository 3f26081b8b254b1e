package releaseutils

import (
	"context"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/solo-io/release-utils/errors"
)

type localGitLookup struct {
	dir string
}

// NewLocalGitLookup reads committer dates from the clone at dir (or any parent of it).
// CI checkouts are often shallow, so older commits may be missing.
func NewLocalGitLookup(dir string) TimestampLookup {
	return &localGitLookup{dir: dir}
}

func (l *localGitLookup) Timestamp(_ context.Context, ref string) (time.Time, error) {
	repo, err := git.PlainOpenWithOptions(l.dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return time.Time{}, errors.NotFoundError(err, "no git repository at %s", l.dir)
	}
	hash, err := repo.ResolveRevision(plumbing.Revision(ref))
	if err != nil {
		return time.Time{}, errors.NotFoundError(err, "could not resolve %s in %s", ref, l.dir)
	}
	commit, err := repo.CommitObject(*hash)
	if err != nil {
		return time.Time{}, errors.NotFoundError(err, "could not read commit %s", hash.String())
	}
	return commit.Committer.When, nil
}
