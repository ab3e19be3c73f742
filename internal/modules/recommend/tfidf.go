package recommend

import (
	"math"
	"strings"
	"unicode/utf8"
)

// minTokenRunes drops very short tokens, which doubles as a crude stop-word
// filter for both English and Persian text. No stemming, no segmentation.
const minTokenRunes = 3

// Tokenize splits on whitespace and keeps tokens longer than two runes.
func Tokenize(text string) []string {
	fields := strings.Fields(text)
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if utf8.RuneCountInString(f) >= minTokenRunes {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// TermFrequency counts tokens and normalizes by token count, giving a
// term → [0,1] map.
func TermFrequency(tokens []string) map[string]float64 {
	tf := make(map[string]float64, len(tokens))
	if len(tokens) == 0 {
		return tf
	}
	for _, t := range tokens {
		tf[t]++
	}
	total := float64(len(tokens))
	for t, n := range tf {
		tf[t] = n / total
	}
	return tf
}

// DocumentFrequency counts, for each term, how many corpus documents contain
// it at least once. Returns the table and the document count. The table is
// rebuilt per call; callers bound the corpus size.
func DocumentFrequency(corpus []ContentItem) (map[string]int, int) {
	df := make(map[string]int)
	for _, item := range corpus {
		seen := make(map[string]struct{})
		for _, t := range Tokenize(ExtractTextContent(item)) {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			df[t]++
		}
	}
	return df, len(corpus)
}

// ComputeTFIDF weights each term of tf by log(totalDocs / df). Terms missing
// from the table count as df=1 so the log stays finite.
func ComputeTFIDF(tf map[string]float64, df map[string]int, totalDocs int) map[string]float64 {
	if totalDocs < 1 {
		totalDocs = 1
	}
	vec := make(map[string]float64, len(tf))
	for term, freq := range tf {
		d := df[term]
		if d < 1 {
			d = 1
		}
		vec[term] = freq * math.Log(float64(totalDocs)/float64(d))
	}
	return vec
}
