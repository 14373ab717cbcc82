package watch

import (
	"context"
	"fmt"
	"strings"

	"github.com/raykavin/tokenwatch/pkg/metrics"
)

const alertHeader = "**ALERT**"

// Reporter owns the tracked tokens and aggregates their results. The list
// is read-only after construction, so Report and Check can run
// concurrently from the command handler and the watcher.
type Reporter struct {
	tokens []*Token
}

func NewReporter(tokens []*Token) *Reporter {
	return &Reporter{tokens: tokens}
}

// Tokens returns the tracked tokens in report order.
func (r *Reporter) Tokens() []*Token {
	return r.tokens
}

// Report returns one newline-terminated status line per token, in
// configuration order. A failing token yields an error line in its slot;
// the report itself never fails.
func (r *Reporter) Report(ctx context.Context) string {
	var sb strings.Builder
	for _, token := range r.tokens {
		line, err := token.Report(ctx)
		if err != nil {
			metrics.FeedErrors.WithLabelValues(token.Feed.Name()).Inc()
			line = fmt.Sprintf("fail to diff pct for token: %s, got error: %v", token.Name, err)
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return sb.String()
}

// Check evaluates every token and returns an empty string when nothing
// alerted and nothing failed. Otherwise it returns the alert block: the
// alert header followed by the collected lines in a monospace code block.
// One failing token never prevents the remaining tokens from being
// evaluated.
func (r *Reporter) Check(ctx context.Context) string {
	var sb strings.Builder
	for _, token := range r.tokens {
		line, err := token.Check(ctx)
		if err != nil {
			metrics.FeedErrors.WithLabelValues(token.Feed.Name()).Inc()
			fmt.Fprintf(&sb, "fail to diff pct for token: %s, got error: %v\n", token.Name, err)
			continue
		}
		if line == "" {
			continue
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	if sb.Len() == 0 {
		return ""
	}

	return alertHeader + "\n" + codeBlock(sb.String())
}

func codeBlock(text string) string {
	return "```\n" + text + "```"
}
