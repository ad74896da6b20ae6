package text

import (
	"errors"
	"testing"

	"github.com/kailas-cloud/medanswer/internal/domain"
)

func TestNewStemmer(t *testing.T) {
	tests := []struct {
		in   string
		want Algorithm
	}{
		{"", Porter2},
		{"porter2", Porter2},
		{"snowball", Snowball},
		{"none", None},
	}
	for _, tc := range tests {
		t.Run("algorithm="+tc.in, func(t *testing.T) {
			s, err := NewStemmer(tc.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if s.Algorithm() != tc.want {
				t.Errorf("Algorithm() = %q, want %q", s.Algorithm(), tc.want)
			}
		})
	}
}

func TestNewStemmer_Invalid(t *testing.T) {
	_, err := NewStemmer("lancaster")
	if !errors.Is(err, domain.ErrInvalidStemmer) {
		t.Errorf("expected ErrInvalidStemmer, got %v", err)
	}
}

func TestStem_EnglishAlgorithms(t *testing.T) {
	cases := map[string]string{
		"symptoms":   "symptom",
		"symptom":    "symptom",
		"cancer":     "cancer",
		"treatments": "treatment",
		"treatment":  "treatment",
		"headaches":  "headach",
		"headache":   "headach",
	}
	for _, algo := range []string{"porter2", "snowball"} {
		s, err := NewStemmer(algo)
		if err != nil {
			t.Fatalf("NewStemmer(%q): %v", algo, err)
		}
		for word, want := range cases {
			if got := s.Stem(word); got != want {
				t.Errorf("%s: Stem(%q) = %q, want %q", algo, word, got, want)
			}
		}
	}
}

func TestStem_None(t *testing.T) {
	s, err := NewStemmer("none")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := s.Stem("headaches"); got != "headaches" {
		t.Errorf("Stem = %q, want unchanged", got)
	}
}
