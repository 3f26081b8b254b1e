package slackutils

import (
	"strconv"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

var mrkdwnEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// MarkdownToMrkdwn converts GitHub flavoured markdown (as found in release bodies)
// into Slack's mrkdwn dialect. Raw html is dropped.
func MarkdownToMrkdwn(markdown string) string {
	source := []byte(markdown)
	root := goldmark.DefaultParser().Parse(text.NewReader(source))
	r := &mrkdwnRenderer{source: source}
	var blocks []string
	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		if s := r.block(n, ""); s != "" {
			blocks = append(blocks, s)
		}
	}
	return strings.Join(blocks, "\n\n")
}

type mrkdwnRenderer struct {
	source []byte
}

func (r *mrkdwnRenderer) block(n ast.Node, indent string) string {
	switch node := n.(type) {
	case *ast.Heading:
		return "*" + r.inlines(node) + "*"
	case *ast.Paragraph, *ast.TextBlock:
		return r.inlines(node)
	case *ast.List:
		return r.list(node, indent)
	case *ast.FencedCodeBlock, *ast.CodeBlock:
		return "```\n" + r.lines(n) + "```"
	case *ast.Blockquote:
		var parts []string
		for c := node.FirstChild(); c != nil; c = c.NextSibling() {
			parts = append(parts, r.block(c, ""))
		}
		return "> " + strings.ReplaceAll(strings.Join(parts, "\n"), "\n", "\n> ")
	case *ast.ThematicBreak, *ast.HTMLBlock:
		return ""
	}
	return r.inlines(n)
}

func (r *mrkdwnRenderer) list(list *ast.List, indent string) string {
	var items []string
	number := list.Start
	for item := list.FirstChild(); item != nil; item = item.NextSibling() {
		marker := "•"
		if list.IsOrdered() {
			marker = strconv.Itoa(number) + "."
			number++
		}
		var parts []string
		for c := item.FirstChild(); c != nil; c = c.NextSibling() {
			if nested, ok := c.(*ast.List); ok {
				parts = append(parts, r.list(nested, indent+"    "))
				continue
			}
			parts = append(parts, r.block(c, indent))
		}
		items = append(items, indent+marker+" "+strings.Join(parts, "\n"))
	}
	return strings.Join(items, "\n")
}

func (r *mrkdwnRenderer) lines(n ast.Node) string {
	var b strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		segment := lines.At(i)
		b.WriteString(mrkdwnEscaper.Replace(string(segment.Value(r.source))))
	}
	return b.String()
}

func (r *mrkdwnRenderer) inlines(n ast.Node) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		r.inline(&b, c)
	}
	return strings.TrimRight(b.String(), "\n")
}

func (r *mrkdwnRenderer) inline(b *strings.Builder, n ast.Node) {
	switch node := n.(type) {
	case *ast.Text:
		b.WriteString(mrkdwnEscaper.Replace(string(node.Segment.Value(r.source))))
		if node.SoftLineBreak() || node.HardLineBreak() {
			b.WriteString("\n")
		}
	case *ast.String:
		b.WriteString(mrkdwnEscaper.Replace(string(node.Value)))
	case *ast.CodeSpan:
		b.WriteString("`" + r.inlines(node) + "`")
	case *ast.Emphasis:
		mark := "_"
		if node.Level == 2 {
			mark = "*"
		}
		b.WriteString(mark + r.inlines(node) + mark)
	case *ast.Link:
		label, dest := r.inlines(node), string(node.Destination)
		if label == "" || label == dest {
			b.WriteString("<" + dest + ">")
		} else {
			b.WriteString("<" + dest + "|" + label + ">")
		}
	case *ast.AutoLink:
		b.WriteString("<" + string(node.URL(r.source)) + ">")
	case *ast.Image:
		b.WriteString("<" + string(node.Destination) + ">")
	case *ast.RawHTML:
	default:
		b.WriteString(r.inlines(n))
	}
}
