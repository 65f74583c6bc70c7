package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"productionDate", "productiondate"},
		{"Production Date", "productiondate"},
		{"production_date", "productiondate"},
		{"production-date", "productiondate"},
		{" dsDescription ", "dsdescription"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeName(tt.input))
		})
	}
}

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"kitten", "sitting", 3},
		{"title", "titel", 2},
		{"café", "cafe", 1},
		{"same", "same", 0},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, Levenshtein(tt.a, tt.b))
			assert.Equal(t, tt.want, Levenshtein(tt.b, tt.a))
		})
	}
}

func TestSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, Similarity("Production Date", "productionDate"), 1e-9)
	assert.InDelta(t, 1.0, Similarity("", ""), 1e-9)
	assert.InDelta(t, 0.0, Similarity("abc", "xyz"), 1e-9)
}

func TestSuggest(t *testing.T) {
	known := []string{"title", "subtitle", "keyword", "productionDate"}

	c, ok := Suggest("keywords", known, DefaultThreshold)
	require.True(t, ok)
	assert.Equal(t, "keyword", c.Name)

	c, ok = Suggest("production_date", known, DefaultThreshold)
	require.True(t, ok)
	assert.Equal(t, "productionDate", c.Name)

	_, ok = Suggest("internalNotes", known, DefaultThreshold)
	assert.False(t, ok)

	_, ok = Suggest("anything", nil, DefaultThreshold)
	assert.False(t, ok)
}

func TestRankOrder(t *testing.T) {
	ranked := Rank("titel", []string{"subtitle", "title"})
	require.Len(t, ranked, 2)
	assert.Equal(t, "title", ranked[0].Name)
	assert.GreaterOrEqual(t, ranked[0].Score, ranked[1].Score)
}
