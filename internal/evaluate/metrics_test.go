package evaluate

import (
	"math"
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"plain", "the good house", []string{"the", "good", "house"}},
		{"lowercased", "The Good HOUSE", []string{"the", "good", "house"}},
		{"edge punctuation stripped", ".The good house!", []string{"the", "good", "house"}},
		{"inner punctuation kept", "it's the king's house", []string{"it's", "the", "king's", "house"}},
		{"empty", "", nil},
		{"only punctuation", "...", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestExactMatch(t *testing.T) {
	predictions := [][]string{
		{"the", "good", "house"},
		{"a", "bad", "house"},
	}
	references := [][]string{
		{"the", "good", "house"},
		{"the", "bad", "house"},
	}

	if got := ExactMatch(predictions, references); got != 50 {
		t.Errorf("ExactMatch = %v, want 50", got)
	}
	if got := ExactMatch(nil, nil); got != 0 {
		t.Errorf("ExactMatch on empty = %v, want 0", got)
	}
}

func TestBLEU_PerfectMatch(t *testing.T) {
	pairs := [][]string{
		{"the", "scribe", "writes", "on", "papyrus"},
		{"the", "king", "gives", "an", "offering"},
	}

	got := BLEU(pairs, pairs)
	if math.Abs(got-100) > 1e-9 {
		t.Errorf("BLEU on identical corpora = %v, want 100", got)
	}
}

func TestBLEU_NoOverlap(t *testing.T) {
	predictions := [][]string{{"completely", "different", "words", "here"}}
	references := [][]string{{"the", "king", "gives", "offerings"}}

	if got := BLEU(predictions, references); got != 0 {
		t.Errorf("BLEU with no overlap = %v, want 0", got)
	}
}

func TestBLEU_BrevityPenalty(t *testing.T) {
	// A truncated prediction must score below a full-length one.
	reference := [][]string{{"the", "king", "gives", "an", "offering", "to", "osiris"}}
	full := BLEU(reference, reference)
	short := BLEU([][]string{{"the", "king", "gives", "an", "offering"}}, reference)

	if short >= full {
		t.Errorf("truncated prediction scored %v, full scored %v", short, full)
	}
	if short <= 0 {
		t.Errorf("truncated prediction scored %v, want > 0", short)
	}
}

func TestROUGEL(t *testing.T) {
	// pred "the good house", ref "the house": LCS = 2,
	// precision 2/3, recall 2/2, F1 = 0.8.
	predictions := [][]string{{"the", "good", "house"}}
	references := [][]string{{"the", "house"}}

	got := ROUGEL(predictions, references)
	if math.Abs(got-80) > 1e-9 {
		t.Errorf("ROUGEL = %v, want 80", got)
	}
}

func TestROUGEL_Identical(t *testing.T) {
	pairs := [][]string{{"the", "good", "house"}}
	if got := ROUGEL(pairs, pairs); math.Abs(got-100) > 1e-9 {
		t.Errorf("ROUGEL on identical = %v, want 100", got)
	}
}

func TestROUGEL_Empty(t *testing.T) {
	if got := ROUGEL([][]string{nil}, [][]string{{"word"}}); got != 0 {
		t.Errorf("ROUGEL with empty prediction = %v, want 0", got)
	}
	if got := ROUGEL(nil, nil); got != 0 {
		t.Errorf("ROUGEL on empty corpus = %v, want 0", got)
	}
}

func TestLCSLength(t *testing.T) {
	tests := []struct {
		a, b []string
		want int
	}{
		{[]string{"a", "b", "c"}, []string{"a", "b", "c"}, 3},
		{[]string{"a", "b", "c"}, []string{"a", "c"}, 2},
		{[]string{"a", "x", "b", "y"}, []string{"a", "b"}, 2},
		{[]string{"a"}, []string{"b"}, 0},
		{nil, []string{"a"}, 0},
	}

	for _, tt := range tests {
		if got := lcsLength(tt.a, tt.b); got != tt.want {
			t.Errorf("lcsLength(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
