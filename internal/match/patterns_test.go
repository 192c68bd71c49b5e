package match

import "testing"

func TestQualityGroup(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"bracketed", "CNN [HD]", "CNN "},
		{"bracketed_lowercase", "CNN [fhd]", "CNN "},
		{"parenthesized", "CNN (SD)", "CNN "},
		{"bare_at_end", "CNN HD", "CNN"},
		{"bare_at_start", "HD CNN", "CNN"},
		{"bare_at_start_with_colon", "HD: CNN", "CNN"},
		{"bare_interior", "CNN HD East", "CNN East"},
		{"split_4k", "CNN 4 K", "CNN"},
		{"bracketed_4k", "[4K] CNN", " CNN"},
		{"word_not_destroyed", "Shadow Network", "Shadow Network"},
		{"backup_tag", "CNN (Backup)", "CNN "},
		{"dead_marker", "CNN [Dead]", "CNN "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := QualityGroup.Apply(tt.input); got != tt.expected {
				t.Errorf("QualityGroup.Apply(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestRegionalGroup(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"parenthesized", "HBO (East)", "HBO "},
		{"bare_at_end", "HBO West", "HBO"},
		{"bare_at_start", "Pacific Rim News", "Rim News"},
		{"bare_interior", "HBO East Feed", "HBO Feed"},
		{"not_inside_word", "Feast TV", "Feast TV"},
		{"case_insensitive", "HBO (east)", "HBO "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RegionalGroup.Apply(tt.input); got != tt.expected {
				t.Errorf("RegionalGroup.Apply(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestGeographicGroup(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"colon_prefix", "US: CNN", "CNN"},
		{"three_letter_colon", "USA: CNN", "CNN"},
		{"hyphen_prefix", "UK-ITV", "ITV"},
		{"pipe_wrapped", "|BR| Globo", "  Globo"},
		{"bracket_wrapped", "[DE] RTL", "  RTL"},
		{"lowercase_untouched", "us: cnn", "us: cnn"},
		{"four_letters_untouched", "ABCD: News", "ABCD: News"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GeographicGroup.Apply(tt.input); got != tt.expected {
				t.Errorf("GeographicGroup.Apply(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestMiscGroup(t *testing.T) {
	if got := MiscGroup.Apply("CNN (anything at all) News"); got != "CNN   News" {
		t.Errorf("MiscGroup.Apply = %q", got)
	}
	if got := MiscGroup.Apply("no parens here"); got != "no parens here" {
		t.Errorf("MiscGroup.Apply = %q", got)
	}
}
