package recommend

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/novinshop/core/internal/pkg/kv"
)

type stubCorpus struct {
	items []ContentItem
}

func (s stubCorpus) Corpus(int) ([]ContentItem, error) { return s.items, nil }

func newTestRouter(t *testing.T, corpus []ContentItem, weights SimilarityWeights) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	engine := NewEngine(kv.NewMemory(), Options{})
	NewHandler(engine, stubCorpus{items: corpus}, nil, 10, 200, weights).
		RegisterRoutes(r.Group("/api/v2"))
	return r
}

type listBody struct {
	Data []RecommendationScore `json:"data"`
}

func doGET(t *testing.T, r *gin.Engine, path, reader string) (*httptest.ResponseRecorder, listBody) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if reader != "" {
		req.Header.Set(ReaderIDHeader, reader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var body listBody
	if w.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	}
	return w, body
}

func TestFeedRequiresReaderHeader(t *testing.T) {
	r := newTestRouter(t, nil, SimilarityWeights{})
	w, _ := doGET(t, r, "/api/v2/recommendations", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSimilarUnknownArticle(t *testing.T) {
	r := newTestRouter(t, []ContentItem{{ID: "a"}}, SimilarityWeights{})
	w, _ := doGET(t, r, "/api/v2/recommendations/similar/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSimilarUsesConfiguredWeights(t *testing.T) {
	corpus := []ContentItem{
		{ID: "target", CategoryID: "tech", AuthorID: "alice"},
		{ID: "same-author", CategoryID: "sports", AuthorID: "alice"},
		{ID: "same-category", CategoryID: "tech", AuthorID: "bob"},
	}

	// Stock weights: category (0.25) outranks author (0.15).
	r := newTestRouter(t, corpus, SimilarityWeights{})
	w, body := doGET(t, r, "/api/v2/recommendations/similar/target", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, body.Data, 2)
	assert.Equal(t, "same-category", body.Data[0].PostID)

	// An author-heavy override flips the order.
	r = newTestRouter(t, corpus, SimilarityWeights{Category: 0.1, Author: 0.8})
	w, body = doGET(t, r, "/api/v2/recommendations/similar/target", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, body.Data, 2)
	assert.Equal(t, "same-author", body.Data[0].PostID)
	assert.InDelta(t, 0.8, body.Data[0].Score, 1e-9)
}

func TestViewTrackingFeedsTheFeed(t *testing.T) {
	corpus := []ContentItem{
		{ID: "t1", CategoryID: "tech"},
		{ID: "t2", CategoryID: "tech"},
		{ID: "s1", CategoryID: "sports"},
	}
	r := newTestRouter(t, corpus, SimilarityWeights{})

	req := httptest.NewRequest(http.MethodPost, "/api/v2/recommendations/view/t1", nil)
	req.Header.Set(ReaderIDHeader, "u1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusNoContent, w.Code)

	w2, body := doGET(t, r, "/api/v2/recommendations", "u1")
	require.Equal(t, http.StatusOK, w2.Code)
	require.Len(t, body.Data, 1)
	assert.Equal(t, "t2", body.Data[0].PostID)
}
