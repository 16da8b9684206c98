package services

import (
	"errors"
	"testing"
)

func TestExtractSubject(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "study_pattern",
			input: "I want to study Thermodynamics",
			want:  "Thermodynamics",
		},
		{
			name:  "learn_pattern",
			input: "I want to learn Organic Chemistry",
			want:  "Organic Chemistry",
		},
		{
			name:  "about_pattern",
			input: "tell me about the French Revolution",
			want:  "the French Revolution",
		},
		{
			name:  "no_pattern_uses_raw_input",
			input: "  Linear Algebra  ",
			want:  "Linear Algebra",
		},
		{
			name:  "study_beats_about",
			input: "study everything about calculus",
			want:  "everything about calculus",
		},
		{
			name:  "case_insensitive",
			input: "STUDY physics",
			want:  "physics",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ExtractSubject(tc.input)
			if got != tc.want {
				t.Fatalf("ExtractSubject(%q)=%q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestParseUnits(t *testing.T) {
	t.Run("plain_array", func(t *testing.T) {
		units, err := ParseUnits(`[{"title":"U1","topics":["a","b"]}]`)
		if err != nil {
			t.Fatalf("ParseUnits: %v", err)
		}
		if len(units) != 1 || units[0].Title != "U1" || len(units[0].Topics) != 2 {
			t.Fatalf("unexpected units: %+v", units)
		}
	})

	t.Run("fenced_array", func(t *testing.T) {
		raw := "```json\n[{\"title\":\"U1\",\"topics\":[\"a\",\"b\"]}]\n```"
		units, err := ParseUnits(raw)
		if err != nil {
			t.Fatalf("ParseUnits: %v", err)
		}
		if len(units) != 1 || units[0].Title != "U1" {
			t.Fatalf("unexpected units: %+v", units)
		}
	})

	t.Run("refusal_is_malformed", func(t *testing.T) {
		_, err := ParseUnits("Sorry, I can't do that")
		if !errors.Is(err, ErrMalformedStructuredOutput) {
			t.Fatalf("want ErrMalformedStructuredOutput, got %v", err)
		}
	})

	t.Run("object_not_array", func(t *testing.T) {
		_, err := ParseUnits(`{"title":"U1"}`)
		if !errors.Is(err, ErrMalformedStructuredOutput) {
			t.Fatalf("want ErrMalformedStructuredOutput, got %v", err)
		}
	})

	t.Run("empty_array", func(t *testing.T) {
		_, err := ParseUnits(`[]`)
		if !errors.Is(err, ErrMalformedStructuredOutput) {
			t.Fatalf("want ErrMalformedStructuredOutput, got %v", err)
		}
	})

	t.Run("invalid_json_inside_brackets", func(t *testing.T) {
		_, err := ParseUnits(`[{"title":}]`)
		if !errors.Is(err, ErrMalformedStructuredOutput) {
			t.Fatalf("want ErrMalformedStructuredOutput, got %v", err)
		}
	})
}
