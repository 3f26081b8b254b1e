package githubutils

import (
	"fmt"
	"strings"
	"time"
)

// search qualifiers take millisecond precision ISO-8601 timestamps
const searchTimeLayout = "2006-01-02T15:04:05.000Z"

func FormatSearchTime(t time.Time) string {
	return t.UTC().Format(searchTimeLayout)
}

// MergedPullRequestQuery selects pull requests merged into Base within [Since, Until).
type MergedPullRequestQuery struct {
	Owner string
	Repo  string
	Base  string
	Since time.Time
	Until time.Time
}

func (q MergedPullRequestQuery) String() string {
	parts := []string{
		fmt.Sprintf("repo:%s/%s", q.Owner, q.Repo),
		"is:pr",
		"is:merged",
		fmt.Sprintf("merged:%s..%s", FormatSearchTime(q.Since), FormatSearchTime(q.Until)),
	}
	if q.Base != "" {
		parts = append(parts, "base:"+q.Base)
	}
	return strings.Join(parts, " ")
}

// MergedCommitQuery finds the pull request that merged sha.
func MergedCommitQuery(owner, repo, sha string) string {
	return fmt.Sprintf("%s repo:%s/%s is:merged", sha, owner, repo)
}
