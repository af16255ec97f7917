// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package lexical

import (
	"sort"

	"github.com/pdiddy/paper-trends/pkg/types"
)

// Counter counts tokens and remembers the order in which each was first
// seen, which breaks ties in Top.
type Counter struct {
	index  map[string]int
	counts []types.TokenCount
}

// NewCounter returns an empty Counter.
func NewCounter() *Counter {
	return &Counter{index: make(map[string]int)}
}

// Add counts one occurrence of token.
func (c *Counter) Add(token string) {
	if i, ok := c.index[token]; ok {
		c.counts[i].Count++
		return
	}
	c.index[token] = len(c.counts)
	c.counts = append(c.counts, types.TokenCount{Token: token, Count: 1})
}

// Count returns the occurrences of token.
func (c *Counter) Count(token string) int {
	if i, ok := c.index[token]; ok {
		return c.counts[i].Count
	}
	return 0
}

// Len returns the number of distinct tokens.
func (c *Counter) Len() int {
	return len(c.counts)
}

// Top returns the n most frequent tokens by descending count, ties in
// first-seen order. n <= 0 returns all tokens.
func (c *Counter) Top(n int) []types.TokenCount {
	ranked := make([]types.TokenCount, len(c.counts))
	copy(ranked, c.counts)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// CountNGrams tokenizes every title and counts unigrams and adjacent
// bigrams. Bigrams never span two titles.
func CountNGrams(titles []string) (unigrams, bigrams *Counter) {
	unigrams, bigrams = NewCounter(), NewCounter()
	tok := NewTokenizer()
	for _, title := range titles {
		tokens := tok.Tokenize(title)
		for i, t := range tokens {
			unigrams.Add(t)
			if i > 0 {
				bigrams.Add(tokens[i-1] + " " + t)
			}
		}
	}
	return unigrams, bigrams
}
