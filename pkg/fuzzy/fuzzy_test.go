package fuzzy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshteinDistance(t *testing.T) {
	assert.Equal(t, 0, LevenshteinDistance("Budget", "budget"))
	assert.Equal(t, 3, LevenshteinDistance("kitten", "sitting"))
	assert.Equal(t, 4, LevenshteinDistance("", "plan"))
	assert.Equal(t, 0, LevenshteinDistance("José", "jose"))
}

func TestFuzzyMatch(t *testing.T) {
	assert.True(t, FuzzyMatch("roadmap", "Q3 Roadmap Review", 2))
	assert.True(t, FuzzyMatch("roadmpa", "Q3 Roadmap Review", 2))
	assert.True(t, FuzzyMatch("rev", "Q3 Roadmap Review", 1))
	assert.False(t, FuzzyMatch("invoice", "Q3 Roadmap Review", 2))
}

func TestMatchExchange_Speakers(t *testing.T) {
	assert.True(t, MatchExchange("alice", "Weekly sync", []string{"Bob", "Alice Martin"}))
	assert.False(t, MatchExchange("zed", "Weekly sync", []string{"Bob", "Alice Martin"}))
}

func TestCalculateRelevanceScore_TitleBeatsSpeaker(t *testing.T) {
	titleHit := CalculateRelevanceScore("budget", "Budget planning", []string{"Carol"})
	speakerHit := CalculateRelevanceScore("carol", "Budget planning", []string{"Carol"})
	miss := CalculateRelevanceScore("xylophone", "Budget planning", []string{"Carol"})

	assert.Greater(t, titleHit, speakerHit)
	assert.Greater(t, speakerHit, miss)
	assert.Equal(t, 0.0, miss)
}
