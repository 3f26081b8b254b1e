package changelogutils

import (
	"bytes"
	"text/template"

	"github.com/solo-io/release-utils/githubutils"
)

func NewEntries(prs []*githubutils.MergedPullRequest, extractor *TrackerLinkExtractor) []*ChangelogEntry {
	if extractor == nil {
		extractor = defaultExtractor
	}
	entries := make([]*ChangelogEntry, 0, len(prs))
	for _, pr := range prs {
		entries = append(entries, &ChangelogEntry{
			PullRequest:  pr,
			TrackerLinks: extractor.ExtractLinks(pr.Body),
		})
	}
	return entries
}

func Lines(entries []*ChangelogEntry) []string {
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, e.Line())
	}
	return lines
}

// TrackerLinks flattens the links of all entries, keeping pull request order.
func TrackerLinks(entries []*ChangelogEntry) []string {
	links := []string{}
	for _, e := range entries {
		links = append(links, e.TrackerLinks...)
	}
	return links
}

type releaseBodyTmplData struct {
	Lines       []string
	CompareLink string
}

var releaseBodyTmpl = template.Must(template.New("release body").Parse(
	`## What's Changed
{{- range .Lines }}
* {{ . }}
{{- end }}

**Full Changelog**: {{ .CompareLink }}`))

// ReleaseBody assembles release notes in the same shape GitHub generates them.
func ReleaseBody(entries []*ChangelogEntry, owner, repo, previousTag, newTag string) (string, error) {
	var buf bytes.Buffer
	err := releaseBodyTmpl.Execute(&buf, releaseBodyTmplData{
		Lines:       Lines(entries),
		CompareLink: CompareLink(owner, repo, previousTag, newTag),
	})
	if err != nil {
		return "", GenerateReleaseBodyError(err)
	}
	return buf.String(), nil
}

func CompareLink(owner, repo, previousTag, newTag string) string {
	return "https://github.com/" + owner + "/" + repo + "/compare/" + previousTag + "..." + newTag
}
