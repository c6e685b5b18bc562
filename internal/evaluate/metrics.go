package evaluate

import (
	"math"
	"strings"
)

// punctuation mirrors the ASCII punctuation set stripped from
// prediction and reference ends before scoring.
const punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// Tokenize normalizes text for scoring: leading and trailing
// punctuation is stripped, the rest is lowercased and split on
// whitespace.
func Tokenize(text string) []string {
	text = strings.Trim(text, punctuation)
	return strings.Fields(strings.ToLower(text))
}

// ExactMatch returns the percentage of pairs whose normalized token
// sequences are identical.
func ExactMatch(predictions, references [][]string) float64 {
	if len(predictions) == 0 {
		return 0
	}
	matches := 0
	for i := range predictions {
		if equalTokens(predictions[i], references[i]) {
			matches++
		}
	}
	return 100 * float64(matches) / float64(len(predictions))
}

func equalTokens(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// BLEU computes corpus-level BLEU over tokenized pairs: modified n-gram
// precision up to 4-grams with uniform weights and a brevity penalty,
// scaled to 0-100. A corpus with no matching n-grams at any order
// scores zero.
func BLEU(predictions, references [][]string) float64 {
	const maxOrder = 4

	matches := make([]int, maxOrder)
	totals := make([]int, maxOrder)
	var predLen, refLen int

	for i := range predictions {
		pred, ref := predictions[i], references[i]
		predLen += len(pred)
		refLen += len(ref)

		for n := 1; n <= maxOrder; n++ {
			predCounts := ngramCounts(pred, n)
			refCounts := ngramCounts(ref, n)
			for gram, count := range predCounts {
				totals[n-1] += count
				if rc := refCounts[gram]; rc < count {
					matches[n-1] += rc
				} else {
					matches[n-1] += count
				}
			}
		}
	}

	logSum := 0.0
	for n := 0; n < maxOrder; n++ {
		if totals[n] == 0 || matches[n] == 0 {
			return 0
		}
		logSum += math.Log(float64(matches[n]) / float64(totals[n]))
	}
	score := math.Exp(logSum / maxOrder)

	// Brevity penalty for predictions shorter than their references.
	if predLen > 0 && predLen < refLen {
		score *= math.Exp(1 - float64(refLen)/float64(predLen))
	}
	return 100 * score
}

func ngramCounts(tokens []string, n int) map[string]int {
	counts := make(map[string]int)
	for i := 0; i+n <= len(tokens); i++ {
		counts[strings.Join(tokens[i:i+n], " ")]++
	}
	return counts
}

// ROUGEL computes the average ROUGE-L F1 over tokenized pairs, scaled
// to 0-100.
func ROUGEL(predictions, references [][]string) float64 {
	if len(predictions) == 0 {
		return 0
	}
	var sum float64
	for i := range predictions {
		sum += rougeLF1(predictions[i], references[i])
	}
	return 100 * sum / float64(len(predictions))
}

func rougeLF1(pred, ref []string) float64 {
	l := lcsLength(pred, ref)
	if l == 0 {
		return 0
	}
	precision := float64(l) / float64(len(pred))
	recall := float64(l) / float64(len(ref))
	return 2 * precision * recall / (precision + recall)
}

// lcsLength computes the longest common subsequence length with a
// rolling single-row table.
func lcsLength(a, b []string) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
			} else if prev[j] >= curr[j-1] {
				curr[j] = prev[j]
			} else {
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
