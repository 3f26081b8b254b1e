package slackutils

import (
	"fmt"
	"strings"

	"github.com/slack-go/slack"

	"github.com/solo-io/release-utils/changelogutils"
	"github.com/solo-io/release-utils/errors"
)

const (
	FormatBlocks   = "blocks"
	FormatMarkdown = "markdown"
	FormatPlain    = "plain"

	DefaultGreeting = "Hey Maestros! See what brings in a new release :magic_wand:"

	NoTrackerLinks     = "None 🤷‍♀️ 🤷‍♂️"
	NoChangelogEntries = "None 🤷‍♂️ 🤷‍♀️"

	bullet = "• "
)

// Formatter turns release info into a webhook message.
// Empty lists render a placeholder rather than an empty section.
type Formatter interface {
	Format(info *changelogutils.ReleaseInfo) (*slack.WebhookMessage, error)
}

func NewFormatter(format, greeting string) (Formatter, error) {
	if greeting == "" {
		greeting = DefaultGreeting
	}
	switch format {
	case "", FormatBlocks:
		return &BlocksFormatter{Greeting: greeting}, nil
	case FormatMarkdown:
		return &MarkdownFormatter{Greeting: greeting}, nil
	case FormatPlain:
		return &PlainFormatter{}, nil
	}
	return nil, errors.MalformedInputError("unknown message format %q, must be one of %s, %s, %s",
		format, FormatBlocks, FormatMarkdown, FormatPlain)
}

func headline(info *changelogutils.ReleaseInfo) string {
	return fmt.Sprintf("New release v%s", info.Version)
}

func bulleted(items []string, placeholder string) []string {
	if len(items) == 0 {
		return []string{placeholder}
	}
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, bullet+item)
	}
	return lines
}

// BlocksFormatter builds a block kit message with one section per link and per changelog line.
// Nothing is truncated, so very long changelogs can exceed the webhook's block limit.
type BlocksFormatter struct {
	Greeting string
}

func (f *BlocksFormatter) Format(info *changelogutils.ReleaseInfo) (*slack.WebhookMessage, error) {
	blocks := []slack.Block{
		headerBlock(headline(info)+" :rocket:", true),
		sectionBlock(fmt.Sprintf("%s \n<%s>", f.Greeting, info.ReleaseUrl)),
		headerBlock("Released stories", false),
	}
	for _, line := range bulleted(info.TrackerLinks, NoTrackerLinks) {
		blocks = append(blocks, sectionBlock(line))
	}
	blocks = append(blocks, headerBlock("Changelog", false))
	for _, line := range bulleted(info.Changelog, NoChangelogEntries) {
		blocks = append(blocks, sectionBlock(line))
	}
	blocks = append(blocks, slack.NewDividerBlock())
	return &slack.WebhookMessage{Blocks: &slack.Blocks{BlockSet: blocks}}, nil
}

func headerBlock(text string, emoji bool) *slack.HeaderBlock {
	return slack.NewHeaderBlock(slack.NewTextBlockObject(slack.PlainTextType, text, emoji, false))
}

func sectionBlock(mrkdwn string) *slack.SectionBlock {
	return slack.NewSectionBlock(slack.NewTextBlockObject(slack.MarkdownType, mrkdwn, false, false), nil, nil)
}

// MarkdownFormatter sends a single mrkdwn text, converting the release body from GitHub markdown.
type MarkdownFormatter struct {
	Greeting string
}

func (f *MarkdownFormatter) Format(info *changelogutils.ReleaseInfo) (*slack.WebhookMessage, error) {
	sections := []string{
		fmt.Sprintf("*%s* :rocket:\n%s\n<%s>", headline(info), f.Greeting, info.ReleaseUrl),
		"*Released stories*\n" + strings.Join(bulleted(info.TrackerLinks, NoTrackerLinks), "\n"),
	}
	if strings.TrimSpace(info.ReleaseBody) != "" {
		sections = append(sections, MarkdownToMrkdwn(info.ReleaseBody))
	} else {
		sections = append(sections, "*Changelog*\n"+strings.Join(bulleted(info.Changelog, NoChangelogEntries), "\n"))
	}
	return &slack.WebhookMessage{Text: strings.Join(sections, "\n\n")}, nil
}

// PlainFormatter renders labelled sections of plain text.
type PlainFormatter struct{}

func (f *PlainFormatter) Format(info *changelogutils.ReleaseInfo) (*slack.WebhookMessage, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "Version: %s\n", info.Version)
	fmt.Fprintf(&b, "Release: %s\n", info.ReleaseUrl)
	b.WriteString("Released stories:\n")
	b.WriteString(strings.Join(bulleted(info.TrackerLinks, NoTrackerLinks), "\n"))
	b.WriteString("\nChangelog:\n")
	b.WriteString(strings.Join(bulleted(info.Changelog, NoChangelogEntries), "\n"))
	return &slack.WebhookMessage{Text: b.String()}, nil
}
