package service

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAnalyzeSource(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input string
		typ   string
		title string
	}{
		{"https://arxiv.org/abs/2310.1234", "PAPER", "Scraped: 2310.1234"},
		{"https://example.com/whitepaper.pdf", "PAPER", "Scraped: whitepaper.pdf"},
		{"https://github.com/flashbots/mev-boost", "DOCS", "Scraped: mev-boost"},
		{"https://blog.example.com/posts/", "BLOG", "Scraped: Untitled Source"},
		{"rollup-notes", "BLOG", "Scraped: rollup-notes"},
		{"https://ArXiv.org/abs/2310.1234", "BLOG", "Scraped: 2310.1234"},
		{"https://example.com/paper.PDF", "BLOG", "Scraped: paper.PDF"},
		{"https://GitHub.com/org/repo", "BLOG", "Scraped: repo"},
	}
	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			d := AnalyzeSource(tc.input)
			require.Equal(t, tc.typ, d.Type)
			require.Equal(t, tc.title, d.Title)
			require.Equal(t, "HIGH", d.Relevance)
			require.Equal(t, []string{"#AUTO", "#" + tc.typ, "#ETH"}, d.Tags)
		})
	}
}

func TestAnswerQuestion(t *testing.T) {
	t.Parallel()

	require.Contains(t, AnswerQuestion("is sharding viable?"), "that viable? is critical")
	require.Contains(t, AnswerQuestion("Rollups"), "that Rollups is critical")
	require.Contains(t, AnswerQuestion("  what about MEV.  "), "that MEV. is critical")
	require.Contains(t, AnswerQuestion(""), "that this topic is critical")
}

func TestNewID(t *testing.T) {
	t.Parallel()

	a, b := NewID("USR"), NewID("USR")
	require.Len(t, a, len("USR-")+8)
	require.NotEqual(t, a, b)
}
