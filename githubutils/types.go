package githubutils

import "time"

// Release is the subset of a GitHub release a release run reads or writes.
type Release struct {
	TagName         string
	Name            string
	TargetCommitish string
	Body            string
	HtmlUrl         string
	CreatedAt       time.Time
	PublishedAt     time.Time
}

// ReleaseSpec describes a release to create.
type ReleaseSpec struct {
	TagName         string
	Name            string
	TargetCommitish string
	Body            string
	// GenerateNotes asks GitHub to write the body; Body is prepended when set.
	GenerateNotes bool
}

// MergedPullRequest is a read-only snapshot of a pull request from the search api.
type MergedPullRequest struct {
	Number   int
	Title    string
	Author   string
	HtmlUrl  string
	Body     string
	MergedAt time.Time
}
