package content

import (
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "empty input",
			in:   "",
			want: "",
		},
		{
			name: "whitespace only",
			in:   "   \n\t\n  ",
			want: "",
		},
		{
			name: "conversational preamble stripped",
			in:   "Certainly! Here is the script you asked for:\nINT. OFFICE - DAY",
			want: "INT. OFFICE - DAY",
		},
		{
			name: "preamble must not cross a line break",
			in:   "Here is the plan\nfor the shoot: tomorrow",
			want: "Here is the plan\nfor the shoot: tomorrow",
		},
		{
			name: "bold and italic markers removed pairwise",
			in:   "**Shot 1:** a *slow* push in",
			want: "Shot 1: a slow push in",
		},
		{
			name: "underline tags removed",
			in:   "<u>WAREHOUSE</u> at night",
			want: "WAREHOUSE at night",
		},
		{
			name: "fence delimiters dropped, content kept",
			in:   "```json\n{\"props\": []}\n```",
			want: "{\"props\": []}",
		},
		{
			name: "blank runs collapsed to one blank line",
			in:   "first\n\n\n\n\nsecond",
			want: "first\n\nsecond",
		},
		{
			name: "emphasis stripping exposes a fresh preamble",
			in:   "**Here is the list:**\n- candle",
			want: "- candle",
		},
		{
			name: "stacked preambles all fall",
			in:   strings.Repeat("Here is: ", 12) + "the content",
			want: "the content",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"Sure, here's the storyboard:\n\n**Shot 1:** open on the street",
		"```\nINT. KITCHEN - NIGHT\n```",
		"plain text with no artifacts at all",
		"**Here is the wardrobe list:**\n- red dress for Maria",
		strings.Repeat("Here is: ", 12) + "the content",
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}
