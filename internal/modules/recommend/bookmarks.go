package recommend

import "context"

// AddBookmark saves an article id to the reader's bookmark list,
// most-recent-first, deduplicated, capped at MaxBookmarks.
func (e *Engine) AddBookmark(ctx context.Context, uid, id string) {
	bookmarks := e.GetBookmarks(ctx, uid)
	bookmarks = frontInsert(bookmarks, id, MaxBookmarks)
	e.persist(ctx, e.bookmarksKey(uid), bookmarks)
}

// RemoveBookmark deletes an article id from the reader's bookmarks.
// Removing an id that is not bookmarked is a no-op.
func (e *Engine) RemoveBookmark(ctx context.Context, uid, id string) {
	bookmarks := e.GetBookmarks(ctx, uid)
	out := make([]string, 0, len(bookmarks))
	for _, v := range bookmarks {
		if v != id {
			out = append(out, v)
		}
	}
	e.persist(ctx, e.bookmarksKey(uid), out)
}

// GetBookmarks returns the saved article ids, most recent first.
func (e *Engine) GetBookmarks(ctx context.Context, uid string) []string {
	bookmarks := []string{}
	if !e.load(ctx, e.bookmarksKey(uid), &bookmarks) || bookmarks == nil {
		return []string{}
	}
	return bookmarks
}

// IsBookmarked reports whether the reader has saved the given article.
func (e *Engine) IsBookmarked(ctx context.Context, uid, id string) bool {
	return indexOf(e.GetBookmarks(ctx, uid), id) >= 0
}
