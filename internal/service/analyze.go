package service

import (
	"fmt"
	"strings"
)

// AnalyzeSource classifies a pasted URL or reference into a citation draft.
// Papers are recognised by "pdf" or "arxiv", docs by "github"; anything else
// is treated as a blog post. Matching is case-sensitive.
func AnalyzeSource(input string) SourceDraft {
	input = strings.TrimSpace(input)
	typ := "BLOG"
	switch {
	case strings.Contains(input, "pdf"), strings.Contains(input, "arxiv"):
		typ = "PAPER"
	case strings.Contains(input, "github"):
		typ = "DOCS"
	}

	name := input
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	if name == "" {
		name = "Untitled Source"
	}
	return SourceDraft{
		Title:     "Scraped: " + name,
		Type:      typ,
		Relevance: "HIGH",
		URL:       input,
		Tags:      []string{"#AUTO", "#" + typ, "#ETH"},
	}
}

// AnswerQuestion produces the corpus summary answer for query. The subject is
// the last space-separated word, punctuation included.
func AnswerQuestion(query string) string {
	words := strings.Split(strings.TrimSpace(query), " ")
	subject := words[len(words)-1]
	if subject == "" {
		subject = "this topic"
	}
	return fmt.Sprintf("Based on analyzed sources, the consensus is that %s is critical for scalability, though 2 sources dissent regarding implementation specifics.", subject)
}
