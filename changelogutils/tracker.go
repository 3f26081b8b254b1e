package changelogutils

import (
	"regexp"
	"strings"
)

const DefaultTrackerPrefix = "https://app.shortcut.com"

// trackerPathChars is the character class allowed after the tracker host.
const trackerPathChars = `[-a-zA-Z0-9@:%_+.~#?&=/]*`

var defaultExtractor = NewTrackerLinkExtractor(DefaultTrackerPrefix)

type TrackerLinkExtractor struct {
	regex *regexp.Regexp
}

// NewTrackerLinkExtractor matches prefix, a word boundary, a slash and a path.
func NewTrackerLinkExtractor(prefix string) *TrackerLinkExtractor {
	prefix = strings.TrimSuffix(prefix, "/")
	return &TrackerLinkExtractor{
		regex: regexp.MustCompile(`(` + regexp.QuoteMeta(prefix) + `\b/` + trackerPathChars + `)`),
	}
}

// ExtractLinks returns every tracker link in text in order of appearance.
func (t *TrackerLinkExtractor) ExtractLinks(text string) []string {
	links := t.regex.FindAllString(text, -1)
	if links == nil {
		return []string{}
	}
	return links
}

// ExtractLinks uses the default Shortcut tracker.
func ExtractLinks(text string) []string {
	return defaultExtractor.ExtractLinks(text)
}
