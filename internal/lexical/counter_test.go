// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package lexical

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/paper-trends/pkg/types"
)

func TestCounterTopBreaksTiesByFirstSeen(t *testing.T) {
	c := NewCounter()
	for _, tok := range []string{"zeta", "alpha", "mid", "alpha", "zeta", "last"} {
		c.Add(tok)
	}

	want := []types.TokenCount{
		{Token: "zeta", Count: 2},
		{Token: "alpha", Count: 2},
		{Token: "mid", Count: 1},
		{Token: "last", Count: 1},
	}
	assert.Equal(t, want, c.Top(0))
	assert.Equal(t, want[:3], c.Top(3))
	assert.Equal(t, 4, c.Len())
	assert.Equal(t, 2, c.Count("alpha"))
	assert.Equal(t, 0, c.Count("missing"))
}

func TestCounterTopDoesNotReorderCounter(t *testing.T) {
	c := NewCounter()
	c.Add("b")
	c.Add("a")
	c.Add("a")
	_ = c.Top(0)
	c.Add("c")
	c.Add("c")
	c.Add("c")

	assert.Equal(t, []types.TokenCount{{Token: "c", Count: 3}, {Token: "a", Count: 2}, {Token: "b", Count: 1}}, c.Top(0))
}

func TestCountNGrams(t *testing.T) {
	uni, bi := CountNGrams([]string{
		"Vaccine trial results",
		"Trial results for the vaccine",
	})

	assert.Equal(t, 2, uni.Count("vaccine"))
	assert.Equal(t, 2, uni.Count("trial"))
	assert.Equal(t, 2, uni.Count("results"))
	assert.Equal(t, 0, uni.Count("the"))

	assert.Equal(t, 2, bi.Count("trial results"))
	assert.Equal(t, 1, bi.Count("vaccine trial"))
	assert.Equal(t, 1, bi.Count("results vaccine"), "stopwords are removed before pairing")
	assert.Equal(t, 0, bi.Count("results trial"), "bigrams do not cross titles")
}
