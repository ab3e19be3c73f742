package recommend

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ts(s string) *time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return &t
}

func TestCosineSimilarityIdentity(t *testing.T) {
	v := map[string]float64{"a": 0.3, "b": 0.7}
	assert.InDelta(t, 1, CosineSimilarity(v, v), 1e-9)
}

func TestCosineSimilarityZeroVector(t *testing.T) {
	v := map[string]float64{"a": 0.5}
	assert.Zero(t, CosineSimilarity(v, map[string]float64{}))
	assert.Zero(t, CosineSimilarity(map[string]float64{}, v))
	assert.Zero(t, CosineSimilarity(v, map[string]float64{"a": 0}))
}

func TestCosineSimilarityOrthogonal(t *testing.T) {
	a := map[string]float64{"x": 1}
	b := map[string]float64{"y": 1}
	assert.Zero(t, CosineSimilarity(a, b))
}

func TestTextSimilarityRange(t *testing.T) {
	a := ContentItem{ID: "a", Content: HTMLContent("golang concurrency channels patterns explained")}
	b := ContentItem{ID: "b", Content: HTMLContent("golang concurrency goroutines tutorial")}
	c := ContentItem{ID: "c", Content: HTMLContent("persian cooking saffron rice recipe")}
	corpus := []ContentItem{a, b, c}

	ab := TextSimilarity(a, b, corpus)
	ac := TextSimilarity(a, c, corpus)
	assert.Greater(t, ab, ac)
	assert.GreaterOrEqual(t, ab, 0.0)
	assert.LessOrEqual(t, ab, 1.0+1e-9)
	assert.Zero(t, ac)
}

func TestContentSimilarityJaccardTags(t *testing.T) {
	a := ContentItem{ID: "a", Tags: []string{"a", "b"}}
	b := ContentItem{ID: "b", Tags: []string{"b", "c"}}

	sim := ContentSimilarity(a, b, nil)
	assert.InDelta(t, 1.0/3.0, sim.Breakdown.Tags, 1e-9)
	assert.InDelta(t, (1.0/3.0)*0.30, sim.Score, 1e-9)
	// 1/3 crosses the 0.3 threshold.
	assert.Contains(t, sim.Reasons, "1 shared tags")
}

func TestContentSimilaritySameCategoryAndAuthor(t *testing.T) {
	a := ContentItem{ID: "a", CategoryID: "tech", AuthorID: "u1", Tags: []string{"go", "web"}}
	b := ContentItem{ID: "b", CategoryID: "tech", AuthorID: "u1", Tags: []string{"go", "cloud"}}

	sim := ContentSimilarity(a, b, nil)
	assert.Greater(t, sim.Score, 0.0)
	assert.Contains(t, sim.Reasons, "Same category")
	assert.Contains(t, sim.Reasons, "Same author")
	assert.Equal(t, 1.0, sim.Breakdown.Category)
	assert.Equal(t, 1.0, sim.Breakdown.Author)
}

func TestContentSimilarityMissingFieldsScoreZero(t *testing.T) {
	sim := ContentSimilarity(ContentItem{ID: "a"}, ContentItem{ID: "b"}, nil)
	assert.Zero(t, sim.Score)
	assert.Empty(t, sim.Reasons)
	assert.Equal(t, SimilarityBreakdown{}, sim.Breakdown)

	// One-sided category does not count.
	sim = ContentSimilarity(ContentItem{ID: "a", CategoryID: "tech"}, ContentItem{ID: "b"}, nil)
	assert.Zero(t, sim.Breakdown.Category)

	// Two items without authors are not "same author".
	sim = ContentSimilarity(ContentItem{ID: "a", Tags: []string{"x"}}, ContentItem{ID: "b", Tags: []string{"x"}}, nil)
	assert.Zero(t, sim.Breakdown.Author)
}

func TestContentSimilarityReadingTime(t *testing.T) {
	a := ContentItem{ID: "a", ReadingTime: 9}
	b := ContentItem{ID: "b", ReadingTime: 10}

	sim := ContentSimilarity(a, b, nil)
	assert.InDelta(t, 0.9, sim.Breakdown.ReadingTime, 1e-9)
	assert.Contains(t, sim.Reasons, "Similar reading time")

	far := ContentItem{ID: "c", ReadingTime: 60}
	sim = ContentSimilarity(a, far, nil)
	assert.InDelta(t, 1-51.0/60.0, sim.Breakdown.ReadingTime, 1e-9)
	assert.NotContains(t, sim.Reasons, "Similar reading time")
}

func TestContentSimilarityRecency(t *testing.T) {
	a := ContentItem{ID: "a", PublishedAt: ts("2026-01-10T00:00:00Z")}
	b := ContentItem{ID: "b", PublishedAt: ts("2026-01-20T00:00:00Z")}

	sim := ContentSimilarity(a, b, nil)
	assert.InDelta(t, 1-10.0/365.0, sim.Breakdown.Recency, 1e-9)
	assert.Contains(t, sim.Reasons, "Published around the same time")

	// Beyond the window the subscore clamps to zero instead of going negative.
	old := ContentItem{ID: "c", PublishedAt: ts("2020-01-01T00:00:00Z")}
	sim = ContentSimilarity(a, old, nil)
	assert.Zero(t, sim.Breakdown.Recency)
}

func TestContentSimilarityDisabledFactors(t *testing.T) {
	a := ContentItem{ID: "a", CategoryID: "tech", AuthorID: "u1", Tags: []string{"go"}}
	b := ContentItem{ID: "b", CategoryID: "tech", AuthorID: "u1", Tags: []string{"go"}}

	sim := ContentSimilarity(a, b, &SimilarityOptions{
		DisableCategory: true,
		DisableAuthor:   true,
	})
	assert.Zero(t, sim.Breakdown.Category)
	assert.Zero(t, sim.Breakdown.Author)
	assert.NotContains(t, sim.Reasons, "Same category")
	assert.NotContains(t, sim.Reasons, "Same author")
	// Tags still score with the default weight.
	assert.InDelta(t, 0.30, sim.Score, 1e-9)
}

func TestContentSimilarityCustomWeights(t *testing.T) {
	a := ContentItem{ID: "a", CategoryID: "tech"}
	b := ContentItem{ID: "b", CategoryID: "tech"}

	sim := ContentSimilarity(a, b, &SimilarityOptions{
		Weights: SimilarityWeights{Category: 1},
	})
	assert.InDelta(t, 1, sim.Score, 1e-9)
}

func TestContentSimilarityRanking(t *testing.T) {
	a := ContentItem{ID: "a", CategoryID: "tech", Tags: []string{"go", "web", "api"}}
	b := ContentItem{ID: "b", CategoryID: "tech", Tags: []string{"go", "web", "db"}}
	c := ContentItem{ID: "c", CategoryID: "sports", Tags: []string{"football"}}

	ab := ContentSimilarity(a, b, nil)
	ac := ContentSimilarity(a, c, nil)
	require.Greater(t, ab.Score, ac.Score)
}
