package recommend

import "time"

// ContentItem is the engine's read-only view of one article. Callers own the
// record; the engine never mutates it. Optional fields use their zero value
// ("" / 0 / nil) to mean "absent".
type ContentItem struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Excerpt     string     `json:"excerpt,omitempty"`
	Content     Content    `json:"-"`
	CategoryID  string     `json:"category_id,omitempty"`
	AuthorID    string     `json:"author_id,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
	ReadingTime int        `json:"reading_time,omitempty"` // minutes
	PublishedAt *time.Time `json:"published_at,omitempty"`
	ViewCount   int        `json:"view_count,omitempty"`
}

// Content is the tagged variant of an article body. Exactly three shapes
// exist; the extractor matches them exhaustively.
type Content interface{ isContent() }

// HTMLContent is a rendered HTML (or plain text) body.
type HTMLContent string

// SectionContent is an ordered list of editor sections.
type SectionContent []Section

// Section is one block of a section-structured body.
type Section struct {
	Text    string `json:"text,omitempty"`
	Content string `json:"content,omitempty"`
}

// StructuredContent is a {title, description, body} shaped body.
type StructuredContent struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Body        string `json:"body,omitempty"`
}

func (HTMLContent) isContent()       {}
func (SectionContent) isContent()    {}
func (StructuredContent) isContent() {}

// SimilarityBreakdown holds the five pairwise subscores, each in [0,1].
type SimilarityBreakdown struct {
	Category    float64 `json:"category"`
	Tags        float64 `json:"tags"`
	Author      float64 `json:"author"`
	ReadingTime float64 `json:"reading_time"`
	Recency     float64 `json:"recency"`
}

// Similarity is the result of comparing two items with ContentSimilarity.
type Similarity struct {
	Score     float64             `json:"score"`
	Reasons   []string            `json:"reasons"`
	Breakdown SimilarityBreakdown `json:"breakdown"`
}

// RecommendationScore is one ranked entry of a feed or related-items list.
type RecommendationScore struct {
	PostID    string               `json:"post_id"`
	Score     float64              `json:"score"`
	Reasons   []string             `json:"reasons"`
	Breakdown *SimilarityBreakdown `json:"breakdown,omitempty"`
}

// ReadingPattern is the persisted implicit profile of one reader. Lists are
// most-recent-first, deduplicated and capped.
type ReadingPattern struct {
	ViewedPosts        []string  `json:"viewed_posts"`
	FavoriteCategories []string  `json:"favorite_categories"`
	FavoriteTags       []string  `json:"favorite_tags"`
	FavoriteAuthors    []string  `json:"favorite_authors"`
	AverageReadingTime float64   `json:"average_reading_time"`
	LastActivity       time.Time `json:"last_activity"`
}

// DefaultPattern is what a reader without history looks like.
func DefaultPattern() ReadingPattern {
	return ReadingPattern{
		ViewedPosts:        []string{},
		FavoriteCategories: []string{},
		FavoriteTags:       []string{},
		FavoriteAuthors:    []string{},
	}
}

// SimilarityWeights configures the weighted sum in ContentSimilarity.
// The defaults sum to 1.0.
type SimilarityWeights struct {
	Category    float64 `json:"category"    yaml:"category"`
	Tags        float64 `json:"tags"        yaml:"tags"`
	Author      float64 `json:"author"      yaml:"author"`
	ReadingTime float64 `json:"reading_time" yaml:"reading_time"`
	Recency     float64 `json:"recency"     yaml:"recency"`
}

// DefaultWeights returns the stock factor weights.
func DefaultWeights() SimilarityWeights {
	return SimilarityWeights{
		Category:    0.25,
		Tags:        0.30,
		Author:      0.15,
		ReadingTime: 0.15,
		Recency:     0.15,
	}
}

func (w SimilarityWeights) isZero() bool {
	return w.Category == 0 && w.Tags == 0 && w.Author == 0 && w.ReadingTime == 0 && w.Recency == 0
}

// SimilarityOptions tunes ContentSimilarity. The zero value enables every
// factor with the default weights; a disabled factor scores 0 and contributes
// no reason.
type SimilarityOptions struct {
	Weights            SimilarityWeights
	DisableCategory    bool
	DisableTags        bool
	DisableAuthor      bool
	DisableReadingTime bool
	DisableRecency     bool
}

func (o *SimilarityOptions) resolved() SimilarityOptions {
	var out SimilarityOptions
	if o != nil {
		out = *o
	}
	if out.Weights.isZero() {
		out.Weights = DefaultWeights()
	}
	return out
}

// List caps for the persisted profile blobs.
const (
	MaxViewedPosts        = 50
	MaxFavoriteCategories = 10
	MaxFavoriteTags       = 20
	MaxFavoriteAuthors    = 10
	MaxBookmarks          = 100
)

// DefaultFeedLimit is used when a feed request does not specify a limit.
const DefaultFeedLimit = 10
