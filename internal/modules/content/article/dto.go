package article

import (
	"time"

	"github.com/novinshop/core/internal/models"
)

// CreateArticleDTO is the ingest payload. The admin back office posts the
// already-edited article here; this service never edits content.
type CreateArticleDTO struct {
	Slug        string             `json:"slug"    binding:"required"`
	Title       string             `json:"title"   binding:"required"`
	Summary     string             `json:"summary"`
	Text        string             `json:"text"`
	Lang        string             `json:"lang"    binding:"omitempty,oneof=fa en"`
	CategoryID  *string            `json:"category_id"`
	AuthorID    *string            `json:"author_id"`
	Tags        models.StringArray `json:"tags"`
	ReadingTime int                `json:"reading_time"`
	IsPublished *bool              `json:"is_published"`
	PublishedAt *time.Time         `json:"published_at"`
}

// ListQuery holds article list filters.
type ListQuery struct {
	Lang     *string `form:"lang"`
	Category *string `form:"category"`
	Tag      *string `form:"tag"`
	Sort     string  `form:"sort"` // "" | "hot"
}
