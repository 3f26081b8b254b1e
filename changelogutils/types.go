package changelogutils

import (
	"github.com/solo-io/release-utils/githubutils"
)

// ChangelogEntry is a merged pull request together with the tracker links found in its description.
type ChangelogEntry struct {
	PullRequest  *githubutils.MergedPullRequest
	TrackerLinks []string
}

// Line renders the entry the way GitHub's generated release notes do.
func (e *ChangelogEntry) Line() string {
	pr := e.PullRequest
	return pr.Title + " by @" + pr.Author + " in " + pr.HtmlUrl
}

// ReleaseInfo is everything the notify step needs to know about a release.
// It is passed in process, or serialized between the release and notify steps.
type ReleaseInfo struct {
	Version         string   `json:"version"`
	PreviousVersion string   `json:"previousVersion,omitempty"`
	ReleaseUrl      string   `json:"releaseUrl"`
	ReleaseBody     string   `json:"releaseBody,omitempty"`
	Changelog       []string `json:"changelog"`
	TrackerLinks    []string `json:"trackerLinks"`
}
