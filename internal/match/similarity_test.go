package match

import (
	"math"
	"testing"
)

func TestSimilarity(t *testing.T) {
	tests := []struct {
		name     string
		a, b     string
		expected float64
	}{
		{
			name:     "identical_strings",
			a:        "cnn",
			b:        "cnn",
			expected: 1.0,
		},
		{
			name:     "classic_kitten_sitting",
			a:        "kitten",
			b:        "sitting",
			expected: 10.0 / 13.0,
		},
		{
			name:     "completely_different",
			a:        "abc",
			b:        "xyz",
			expected: 0.5, // (6-3)/6
		},
		{
			name:     "both_empty",
			a:        "",
			b:        "",
			expected: 0.0,
		},
		{
			name:     "one_empty",
			a:        "",
			b:        "test",
			expected: 0.0,
		},
		{
			name:     "unicode_runes_counted_not_bytes",
			a:        "café",
			b:        "café",
			expected: 1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Similarity(tt.a, tt.b)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Similarity(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.expected)
			}
		})
	}
}

func TestSimilaritySymmetry(t *testing.T) {
	pairs := [][2]string{
		{"cnn", "cnn hd"},
		{"hbo east", "hbo west"},
		{"", "something"},
		{"kitten", "sitting"},
	}
	for _, p := range pairs {
		if ab, ba := Similarity(p[0], p[1]), Similarity(p[1], p[0]); ab != ba {
			t.Errorf("Similarity(%q, %q) = %v but reversed = %v", p[0], p[1], ab, ba)
		}
	}
}

func TestSimilaritySelfIsOne(t *testing.T) {
	for _, s := range []string{"a", "cnn", "fox sports 1", "ω"} {
		if got := Similarity(s, s); got != 1.0 {
			t.Errorf("Similarity(%q, %q) = %v, want 1.0", s, s, got)
		}
	}
}
