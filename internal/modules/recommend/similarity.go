package recommend

import (
	"fmt"
	"math"
	"time"
)

const recencyWindowDays = 365

// CosineSimilarity compares two sparse vectors over the union of their keys.
// Returns 0 when either vector has zero norm.
func CosineSimilarity(v1, v2 map[string]float64) float64 {
	keys := make(map[string]struct{}, len(v1)+len(v2))
	for k := range v1 {
		keys[k] = struct{}{}
	}
	for k := range v2 {
		keys[k] = struct{}{}
	}

	var dot, norm1, norm2 float64
	for k := range keys {
		x, y := v1[k], v2[k]
		dot += x * y
		norm1 += x * x
		norm2 += y * y
	}
	if norm1 == 0 || norm2 == 0 {
		return 0
	}
	return dot / (math.Sqrt(norm1) * math.Sqrt(norm2))
}

// TextSimilarity is the cosine similarity of the TF-IDF vectors of a and b,
// with document frequencies derived from the supplied corpus.
func TextSimilarity(a, b ContentItem, corpus []ContentItem) float64 {
	df, total := DocumentFrequency(corpus)
	va := ComputeTFIDF(TermFrequency(Tokenize(ExtractTextContent(a))), df, total)
	vb := ComputeTFIDF(TermFrequency(Tokenize(ExtractTextContent(b))), df, total)
	return CosineSimilarity(va, vb)
}

// ContentSimilarity scores how alike two items are from their structured
// metadata: a weighted sum of category, tag, author, reading-time and recency
// subscores, each clamped to [0,1]. This answers "how alike are these two
// items"; ranking against a reader's taste is GeneratePersonalizedRecommendations.
func ContentSimilarity(a, b ContentItem, opts *SimilarityOptions) Similarity {
	o := opts.resolved()

	var bd SimilarityBreakdown
	var score float64
	reasons := []string{}

	if !o.DisableCategory && a.CategoryID != "" && b.CategoryID != "" {
		if a.CategoryID == b.CategoryID {
			bd.Category = 1
		}
		bd.Category = clamp01(bd.Category)
		score += bd.Category * o.Weights.Category
		if bd.Category > 0 {
			reasons = append(reasons, "Same category")
		}
	}

	if !o.DisableTags && len(a.Tags) > 0 && len(b.Tags) > 0 {
		shared := 0
		bd.Tags, shared = jaccard(a.Tags, b.Tags)
		bd.Tags = clamp01(bd.Tags)
		score += bd.Tags * o.Weights.Tags
		if bd.Tags > 0.3 {
			reasons = append(reasons, fmt.Sprintf("%d shared tags", shared))
		}
	}

	if !o.DisableAuthor && a.AuthorID != "" && b.AuthorID != "" {
		if a.AuthorID == b.AuthorID {
			bd.Author = 1
		}
		bd.Author = clamp01(bd.Author)
		score += bd.Author * o.Weights.Author
		if bd.Author > 0 {
			reasons = append(reasons, "Same author")
		}
	}

	if !o.DisableReadingTime && a.ReadingTime > 0 && b.ReadingTime > 0 {
		longest := float64(max(a.ReadingTime, b.ReadingTime))
		delta := math.Abs(float64(a.ReadingTime - b.ReadingTime))
		bd.ReadingTime = clamp01(1 - delta/longest)
		score += bd.ReadingTime * o.Weights.ReadingTime
		if bd.ReadingTime > 0.7 {
			reasons = append(reasons, "Similar reading time")
		}
	}

	if !o.DisableRecency && a.PublishedAt != nil && b.PublishedAt != nil {
		gap := daysBetween(*a.PublishedAt, *b.PublishedAt)
		bd.Recency = clamp01(1 - gap/recencyWindowDays)
		score += bd.Recency * o.Weights.Recency
		if bd.Recency > 0.8 {
			reasons = append(reasons, "Published around the same time")
		}
	}

	return Similarity{Score: score, Reasons: reasons, Breakdown: bd}
}

// jaccard returns |intersection|/|union| over two tag sets plus the
// intersection size.
func jaccard(a, b []string) (float64, int) {
	setA := make(map[string]struct{}, len(a))
	for _, t := range a {
		setA[t] = struct{}{}
	}
	setB := make(map[string]struct{}, len(b))
	for _, t := range b {
		setB[t] = struct{}{}
	}

	shared := 0
	for t := range setA {
		if _, ok := setB[t]; ok {
			shared++
		}
	}
	union := len(setA) + len(setB) - shared
	if union == 0 {
		return 0, 0
	}
	return float64(shared) / float64(union), shared
}

func daysBetween(a, b time.Time) float64 {
	return math.Abs(a.Sub(b).Hours()) / 24
}

func clamp01(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}
