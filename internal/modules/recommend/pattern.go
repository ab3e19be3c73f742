package recommend

import "context"

// TrackPostView records one article view in the reader's implicit profile:
// the viewed list, the favorite category/tag/author LRU lists and the
// reading-time blend, then persists the pattern as a single blob. The viewed
// id list is mirrored under its own key.
func (e *Engine) TrackPostView(ctx context.Context, uid string, item ContentItem) {
	pattern := e.GetReadingPatterns(ctx, uid)

	pattern.ViewedPosts = frontInsert(pattern.ViewedPosts, item.ID, MaxViewedPosts)

	if item.CategoryID != "" {
		pattern.FavoriteCategories = frontInsert(pattern.FavoriteCategories, item.CategoryID, MaxFavoriteCategories)
	}
	for _, tag := range item.Tags {
		pattern.FavoriteTags = frontInsert(pattern.FavoriteTags, tag, MaxFavoriteTags)
	}
	if item.AuthorID != "" {
		pattern.FavoriteAuthors = frontInsert(pattern.FavoriteAuthors, item.AuthorID, MaxFavoriteAuthors)
	}

	if item.ReadingTime > 0 {
		// Running blend, not a true mean.
		if pattern.AverageReadingTime > 0 {
			pattern.AverageReadingTime = (pattern.AverageReadingTime + float64(item.ReadingTime)) / 2
		} else {
			pattern.AverageReadingTime = float64(item.ReadingTime)
		}
	}

	pattern.LastActivity = e.now()

	e.persist(ctx, e.patternKey(uid), pattern)
	e.persist(ctx, e.viewedKey(uid), pattern.ViewedPosts)
}

// GetReadingPatterns returns the stored pattern, or the empty default when
// nothing is stored or the blob does not parse.
func (e *Engine) GetReadingPatterns(ctx context.Context, uid string) ReadingPattern {
	pattern := DefaultPattern()
	if !e.load(ctx, e.patternKey(uid), &pattern) {
		return DefaultPattern()
	}
	if pattern.ViewedPosts == nil {
		pattern.ViewedPosts = []string{}
	}
	if pattern.FavoriteCategories == nil {
		pattern.FavoriteCategories = []string{}
	}
	if pattern.FavoriteTags == nil {
		pattern.FavoriteTags = []string{}
	}
	if pattern.FavoriteAuthors == nil {
		pattern.FavoriteAuthors = []string{}
	}
	return pattern
}

// GetViewedPosts returns the viewed article ids, most recent first.
func (e *Engine) GetViewedPosts(ctx context.Context, uid string) []string {
	viewed := []string{}
	if !e.load(ctx, e.viewedKey(uid), &viewed) || viewed == nil {
		return []string{}
	}
	return viewed
}

// ClearAllData wipes every blob kept for the reader.
func (e *Engine) ClearAllData(ctx context.Context, uid string) {
	e.remove(ctx, e.viewedKey(uid))
	e.remove(ctx, e.patternKey(uid))
	e.remove(ctx, e.bookmarksKey(uid))
}

// frontInsert puts id at the head of list, removing any previous occurrence
// and trimming to limit. Re-inserting an existing id moves it to the front.
func frontInsert(list []string, id string, limit int) []string {
	out := make([]string, 0, len(list)+1)
	out = append(out, id)
	for _, v := range list {
		if v != id {
			out = append(out, v)
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
