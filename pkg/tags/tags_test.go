package tags

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"lowercase", "Utilities", "utilities"},
		{"spaces to hyphen", "monthly bill", "monthly-bill"},
		{"collapse runs", "monthly   --  bill", "monthly-bill"},
		{"punctuation dropped", "p.g.&e.", "pge"},
		{"namespace colon survives", "Series:PGE", "series:pge"},
		{"underscore survives", "utility_bill", "utility_bill"},
		{"trim edges", "  -bill- ", "bill"},
		{"empty", "!!!", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"Utilities", "monthly bill", "p.g.&e.", "series:pge-monthly"}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "normalizing %q twice must not change it", in)
	}
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "pacific-gas-and-electric", Slug("Pacific Gas & Electric"))
	assert.Equal(t, "acme-corp", Slug("  ACME, Corp.  "))
	assert.Equal(t, "3m", Slug("3M"))
}

func TestSeriesTag(t *testing.T) {
	assert.Equal(t, "series:pacific-gas-and-electric", SeriesTag("Pacific Gas & Electric"))
}

func TestSignature(t *testing.T) {
	normalized, sig := Signature([]string{"Utilities", "PGE", "utilities", "  "})
	assert.Equal(t, []string{"pge", "utilities"}, normalized)
	assert.Equal(t, "pge:utilities", sig)

	// Order never matters.
	_, sig2 := Signature([]string{"pge", "utilities"})
	_, sig3 := Signature([]string{"utilities", "pge"})
	assert.Equal(t, sig2, sig3)
}

func TestSignatureEmpty(t *testing.T) {
	normalized, sig := Signature(nil)
	assert.Empty(t, normalized)
	assert.Equal(t, "", sig)
}

func TestIsSubset(t *testing.T) {
	assert.True(t, IsSubset([]string{"pge"}, []string{"pge", "utilities"}))
	assert.True(t, IsSubset(nil, []string{"pge"}))
	assert.False(t, IsSubset([]string{"pge", "water"}, []string{"pge", "utilities"}))
	// Both sides are normalized before comparison.
	assert.True(t, IsSubset([]string{"P.G.&E."}, []string{"pge"}))
}
