package recommend

import (
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/novinshop/core/internal/pkg/response"
)

// ReaderIDHeader carries the anonymous reader id generated by the storefront
// client. All personalization state is keyed by it.
const ReaderIDHeader = "X-Reader-ID"

const (
	defaultSimilarLimit = 5
	maxSimilarLimit     = 20
)

// CorpusProvider supplies candidate articles for similarity and feed
// computation. The article module implements it; the engine itself stays
// storage-free.
type CorpusProvider interface {
	Corpus(limit int) ([]ContentItem, error)
}

// ViewSink receives read-count bumps for viewed articles.
type ViewSink interface {
	IncrementReadCount(id string) error
}

// Handler exposes the engine over HTTP.
type Handler struct {
	engine      *Engine
	corpus      CorpusProvider
	views       ViewSink
	feedLimit   int
	corpusLimit int
	simOpts     SimilarityOptions
}

func NewHandler(engine *Engine, corpus CorpusProvider, views ViewSink, feedLimit, corpusLimit int, weights SimilarityWeights) *Handler {
	if feedLimit <= 0 {
		feedLimit = DefaultFeedLimit
	}
	return &Handler{
		engine:      engine,
		corpus:      corpus,
		views:       views,
		feedLimit:   feedLimit,
		corpusLimit: corpusLimit,
		simOpts:     SimilarityOptions{Weights: weights},
	}
}

// RegisterRoutes mounts recommendation routes onto the given router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/recommendations")

	g.GET("", h.feed)
	g.GET("/similar/:id", h.similar)
	g.POST("/view/:id", h.trackView)
	g.GET("/pattern", h.pattern)
	g.GET("/viewed", h.viewed)
	g.GET("/bookmarks", h.listBookmarks)
	g.GET("/bookmarks/:id", h.isBookmarked)
	g.POST("/bookmarks/:id", h.addBookmark)
	g.DELETE("/bookmarks/:id", h.removeBookmark)
	g.DELETE("/data", h.clearData)
}

// readerID extracts the anonymous reader id, aborting with 400 when absent.
func readerID(c *gin.Context) (string, bool) {
	uid := strings.TrimSpace(c.GetHeader(ReaderIDHeader))
	if uid == "" {
		response.BadRequest(c, ReaderIDHeader+" header is required")
		return "", false
	}
	return uid, true
}

func intQuery(c *gin.Context, name string, def int) int {
	if v := c.Query(name); v != "" {
		if i, err := strconv.Atoi(v); err == nil && i > 0 {
			return i
		}
	}
	return def
}

// feed GET /recommendations
func (h *Handler) feed(c *gin.Context) {
	uid, ok := readerID(c)
	if !ok {
		return
	}
	limit := intQuery(c, "limit", h.feedLimit)

	corpus, err := h.corpus.Corpus(h.corpusLimit)
	if err != nil {
		response.InternalError(c, err)
		return
	}

	recs := h.engine.Personalized(c.Request.Context(), uid, corpus, limit)
	response.OK(c, recs)
}

// similarEntry is one row of the related-articles response.
type similarEntry struct {
	RecommendationScore
	TextScore *float64 `json:"text_score,omitempty"`
}

// similar GET /recommendations/similar/:id
// Pass ?text=true to additionally compute TF-IDF text similarity.
func (h *Handler) similar(c *gin.Context) {
	id := c.Param("id")
	limit := intQuery(c, "limit", defaultSimilarLimit)
	if limit > maxSimilarLimit {
		limit = maxSimilarLimit
	}
	withText := c.Query("text") == "true"

	corpus, err := h.corpus.Corpus(h.corpusLimit)
	if err != nil {
		response.InternalError(c, err)
		return
	}

	var target *ContentItem
	for i := range corpus {
		if corpus[i].ID == id {
			target = &corpus[i]
			break
		}
	}
	if target == nil {
		response.NotFound(c)
		return
	}

	entries := make([]similarEntry, 0, len(corpus)-1)
	for i := range corpus {
		if corpus[i].ID == id {
			continue
		}
		sim := ContentSimilarity(*target, corpus[i], &h.simOpts)
		breakdown := sim.Breakdown
		entry := similarEntry{
			RecommendationScore: RecommendationScore{
				PostID:    corpus[i].ID,
				Score:     sim.Score,
				Reasons:   sim.Reasons,
				Breakdown: &breakdown,
			},
		}
		if withText {
			ts := TextSimilarity(*target, corpus[i], corpus)
			entry.TextScore = &ts
		}
		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Score > entries[j].Score })
	if len(entries) > limit {
		entries = entries[:limit]
	}
	response.OK(c, entries)
}

// trackView POST /recommendations/view/:id
func (h *Handler) trackView(c *gin.Context) {
	uid, ok := readerID(c)
	if !ok {
		return
	}
	id := c.Param("id")

	corpus, err := h.corpus.Corpus(h.corpusLimit)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	var item *ContentItem
	for i := range corpus {
		if corpus[i].ID == id {
			item = &corpus[i]
			break
		}
	}
	if item == nil {
		response.NotFound(c)
		return
	}

	h.engine.TrackPostView(c.Request.Context(), uid, *item)
	if h.views != nil {
		go func() { _ = h.views.IncrementReadCount(id) }()
	}
	response.NoContent(c)
}

// pattern GET /recommendations/pattern
func (h *Handler) pattern(c *gin.Context) {
	uid, ok := readerID(c)
	if !ok {
		return
	}
	response.OK(c, h.engine.GetReadingPatterns(c.Request.Context(), uid))
}

// viewed GET /recommendations/viewed
func (h *Handler) viewed(c *gin.Context) {
	uid, ok := readerID(c)
	if !ok {
		return
	}
	response.OK(c, h.engine.GetViewedPosts(c.Request.Context(), uid))
}

// listBookmarks GET /recommendations/bookmarks
func (h *Handler) listBookmarks(c *gin.Context) {
	uid, ok := readerID(c)
	if !ok {
		return
	}
	response.OK(c, h.engine.GetBookmarks(c.Request.Context(), uid))
}

// isBookmarked GET /recommendations/bookmarks/:id
func (h *Handler) isBookmarked(c *gin.Context) {
	uid, ok := readerID(c)
	if !ok {
		return
	}
	saved := h.engine.IsBookmarked(c.Request.Context(), uid, c.Param("id"))
	response.OK(c, gin.H{"bookmarked": saved})
}

// addBookmark POST /recommendations/bookmarks/:id
func (h *Handler) addBookmark(c *gin.Context) {
	uid, ok := readerID(c)
	if !ok {
		return
	}
	h.engine.AddBookmark(c.Request.Context(), uid, c.Param("id"))
	response.NoContent(c)
}

// removeBookmark DELETE /recommendations/bookmarks/:id
func (h *Handler) removeBookmark(c *gin.Context) {
	uid, ok := readerID(c)
	if !ok {
		return
	}
	h.engine.RemoveBookmark(c.Request.Context(), uid, c.Param("id"))
	response.NoContent(c)
}

// clearData DELETE /recommendations/data
func (h *Handler) clearData(c *gin.Context) {
	uid, ok := readerID(c)
	if !ok {
		return
	}
	h.engine.ClearAllData(c.Request.Context(), uid)
	response.NoContent(c)
}
