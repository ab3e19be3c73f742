package recommend

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// Bonus scales for the additive feed heuristic. Unlike ContentSimilarity's
// weighted sum, the total is unbounded.
const (
	categoryRankStep   = 0.1
	tagMatchBonus      = 0.05
	authorRankStep     = 0.2
	readingTimeBonus   = 0.1
	freshnessBonus     = 0.1
	popularityCeiling  = 0.1
	popularityDivisor  = 1000
	freshnessWindowDay = 30
)

// GeneratePersonalizedRecommendations ranks unseen corpus items against a
// reader's accumulated taste. Candidates already in pattern.ViewedPosts are
// excluded, candidates scoring 0 are dropped, and the result is sorted
// descending and truncated to limit (DefaultFeedLimit when limit <= 0).
func GeneratePersonalizedRecommendations(corpus []ContentItem, pattern ReadingPattern, limit int) []RecommendationScore {
	if limit <= 0 {
		limit = DefaultFeedLimit
	}

	viewed := make(map[string]struct{}, len(pattern.ViewedPosts))
	for _, id := range pattern.ViewedPosts {
		viewed[id] = struct{}{}
	}

	now := time.Now()
	scored := make([]RecommendationScore, 0, len(corpus))
	for _, item := range corpus {
		if _, ok := viewed[item.ID]; ok {
			continue
		}
		rec := scoreCandidate(item, pattern, now)
		if rec.Score <= 0 {
			continue
		}
		scored = append(scored, rec)
	}

	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })
	if len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}

func scoreCandidate(item ContentItem, pattern ReadingPattern, now time.Time) RecommendationScore {
	var score float64
	reasons := []string{}

	if item.CategoryID != "" {
		if rank := indexOf(pattern.FavoriteCategories, item.CategoryID); rank >= 0 {
			score += float64(MaxFavoriteCategories-rank) * categoryRankStep
			reasons = append(reasons, "Preferred category")
		}
	}

	if matches := countMatches(item.Tags, pattern.FavoriteTags); matches > 0 {
		score += float64(matches) * tagMatchBonus
		reasons = append(reasons, fmt.Sprintf("%d preferred tags", matches))
	}

	if item.AuthorID != "" {
		if rank := indexOf(pattern.FavoriteAuthors, item.AuthorID); rank >= 0 {
			if bonus := float64(5-rank) * authorRankStep; bonus > 0 {
				score += bonus
				reasons = append(reasons, "Preferred author")
			}
		}
	}

	if pattern.AverageReadingTime > 0 && item.ReadingTime > 0 {
		delta := math.Abs(float64(item.ReadingTime) - pattern.AverageReadingTime)
		closeness := math.Max(0, 1-delta/pattern.AverageReadingTime)
		score += closeness * readingTimeBonus
		if closeness > 0.7 {
			reasons = append(reasons, "Matches reading time preference")
		}
	}

	if item.PublishedAt != nil {
		freshness := math.Max(0, 1-daysBetween(now, *item.PublishedAt)/freshnessWindowDay)
		score += freshness * freshnessBonus
		if freshness > 0.8 {
			reasons = append(reasons, "Recently published")
		}
	}

	if item.ViewCount > 0 {
		score += math.Min(float64(item.ViewCount)/popularityDivisor, popularityCeiling)
	}

	return RecommendationScore{PostID: item.ID, Score: score, Reasons: reasons}
}

func indexOf(list []string, v string) int {
	for i, s := range list {
		if s == v {
			return i
		}
	}
	return -1
}

func countMatches(tags, favorites []string) int {
	if len(tags) == 0 || len(favorites) == 0 {
		return 0
	}
	fav := make(map[string]struct{}, len(favorites))
	for _, t := range favorites {
		fav[t] = struct{}{}
	}
	n := 0
	for _, t := range tags {
		if _, ok := fav[t]; ok {
			n++
		}
	}
	return n
}
