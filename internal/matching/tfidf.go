package matching

import (
	"math"
	"strings"
	"unicode"
)

// tfidfStopWords filters common English words that add noise to similarity
// scoring. Intentionally small; this is not a full stop-word list.
var tfidfStopWords = map[string]bool{
	"and": true, "the": true, "for": true, "with": true, "you": true,
	"are": true, "have": true, "will": true, "this": true, "that": true,
	"from": true, "our": true, "your": true, "their": true, "they": true,
	"about": true, "which": true, "what": true, "who": true, "how": true,
	"can": true, "not": true, "but": true, "all": true, "also": true,
	"more": true, "than": true, "into": true, "has": true, "its": true,
	"was": true, "were": true, "been": true, "each": true, "such": true,
}

// TFIDFSimilarity computes the cosine similarity between two texts using
// TF-IDF weights over the 2-document corpus formed by the inputs. Returns a
// value in [0, 1]; either side empty yields 0. Identical non-empty inputs
// score 1 (within floating point error).
func TFIDFSimilarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0.0
	}

	tokensA := tokenize(a)
	tokensB := tokenize(b)
	if len(tokensA) == 0 || len(tokensB) == 0 {
		return 0.0
	}

	tfA := termFrequency(tokensA)
	tfB := termFrequency(tokensB)

	// Document frequency across the 2-document corpus.
	df := make(map[string]int, len(tfA)+len(tfB))
	for term := range tfA {
		df[term]++
	}
	for term := range tfB {
		df[term]++
	}

	// Smoothed IDF: ln((1+N)/(1+df)) + 1 with N = 2. The +1 terms keep the
	// weight positive and avoid division by zero for corpus-wide terms.
	const totalDocs = 2
	idf := func(term string) float64 {
		return math.Log(float64(1+totalDocs)/float64(1+df[term])) + 1
	}

	var dot, normA, normB float64
	for term, tf := range tfA {
		w := tf * idf(term)
		normA += w * w
		if tfOther, ok := tfB[term]; ok {
			dot += w * tfOther * idf(term)
		}
	}
	for term, tf := range tfB {
		w := tf * idf(term)
		normB += w * w
	}

	if normA == 0 || normB == 0 {
		return 0.0
	}

	sim := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	if sim < 0 {
		return 0.0
	}
	if sim > 1 {
		return 1.0
	}
	return sim
}

// tokenize lowercases text and splits it on non-alphanumeric runes, keeping
// + # . so tech terms like "c++", "c#" and "node.js" survive intact. Tokens
// shorter than 2 runes and stop words are dropped; if that filtering removes
// everything, the unfiltered tokens are used so degenerate-but-identical
// inputs still compare equal.
func tokenize(text string) []string {
	var all, filtered []string
	var word strings.Builder
	flush := func() {
		if word.Len() == 0 {
			return
		}
		w := strings.TrimRight(word.String(), ".")
		word.Reset()
		if w == "" {
			return
		}
		all = append(all, w)
		if len([]rune(w)) >= 2 && !tfidfStopWords[w] {
			filtered = append(filtered, w)
		}
	}
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '+' || r == '#' || r == '.' {
			word.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()

	if len(filtered) == 0 {
		return all
	}
	return filtered
}

// termFrequency computes relative term frequency for a token slice.
func termFrequency(tokens []string) map[string]float64 {
	counts := make(map[string]int, len(tokens))
	for _, t := range tokens {
		counts[t]++
	}
	total := float64(len(tokens))
	freqs := make(map[string]float64, len(counts))
	for term, count := range counts {
		freqs[term] = float64(count) / total
	}
	return freqs
}
