package article

import (
	"errors"
	"fmt"

	"github.com/novinshop/core/internal/models"
	"github.com/novinshop/core/internal/modules/recommend"
	"github.com/novinshop/core/internal/pkg/pagination"
	"github.com/novinshop/core/internal/pkg/response"
	"gorm.io/gorm"
)

// Service handles article business logic.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// List returns a paginated list of published articles.
func (s *Service) List(q pagination.Query, lq ListQuery) ([]models.ArticleModel, response.Pagination, error) {
	tx := s.db.Model(&models.ArticleModel{}).Where("is_published = ?", true)

	if lq.Sort == "hot" {
		tx = tx.Order("read_count DESC, created_at DESC")
	} else {
		tx = tx.Order("published_at DESC, created_at DESC")
	}
	if lq.Lang != nil {
		tx = tx.Where("lang = ?", *lq.Lang)
	}
	if lq.Category != nil {
		tx = tx.Where("category_id = ?", *lq.Category)
	}
	if lq.Tag != nil {
		tx = tx.Where("JSON_CONTAINS(tags, ?)", fmt.Sprintf("%q", *lq.Tag))
	}

	var articles []models.ArticleModel
	pag, err := pagination.Paginate(tx, q, &articles)
	return articles, pag, err
}

// GetByID fetches a single article by ID.
func (s *Service) GetByID(id string) (*models.ArticleModel, error) {
	var a models.ArticleModel
	if err := s.db.First(&a, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

// GetBySlug fetches a single published article by slug.
func (s *Service) GetBySlug(slug string) (*models.ArticleModel, error) {
	var a models.ArticleModel
	if err := s.db.Where("slug = ? AND is_published = ?", slug, true).First(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

// GetByIdentifier fetches an article by ID first, then falls back to slug.
func (s *Service) GetByIdentifier(identifier string) (*models.ArticleModel, error) {
	if a, err := s.GetByID(identifier); err != nil {
		return nil, err
	} else if a != nil {
		return a, nil
	}
	return s.GetBySlug(identifier)
}

// Create inserts a new article.
func (s *Service) Create(dto *CreateArticleDTO) (*models.ArticleModel, error) {
	var count int64
	s.db.Model(&models.ArticleModel{}).Where("slug = ?", dto.Slug).Count(&count)
	if count > 0 {
		return nil, fmt.Errorf("slug already exists")
	}

	a := models.ArticleModel{
		Slug:        dto.Slug,
		Title:       dto.Title,
		Summary:     dto.Summary,
		Text:        dto.Text,
		CategoryID:  dto.CategoryID,
		AuthorID:    dto.AuthorID,
		Tags:        dto.Tags,
		ReadingTime: dto.ReadingTime,
		PublishedAt: dto.PublishedAt,
	}
	if dto.Lang != "" {
		a.Lang = dto.Lang
	}
	if dto.IsPublished != nil {
		a.IsPublished = *dto.IsPublished
	}

	if err := s.db.Create(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// Delete soft-deletes an article by ID.
func (s *Service) Delete(id string) error {
	return s.db.Delete(&models.ArticleModel{}, "id = ?", id).Error
}

// IncrementReadCount atomically increments the read counter.
func (s *Service) IncrementReadCount(id string) error {
	return s.db.Model(&models.ArticleModel{}).Where("id = ?", id).
		UpdateColumn("read_count", gorm.Expr("read_count + 1")).Error
}

// Corpus loads up to limit recent published articles as engine content items.
// The bound keeps per-request document-frequency recomputation cheap.
func (s *Service) Corpus(limit int) ([]recommend.ContentItem, error) {
	if limit <= 0 {
		limit = 200
	}
	var articles []models.ArticleModel
	if err := s.db.Where("is_published = ?", true).
		Order("published_at DESC, created_at DESC").
		Limit(limit).
		Find(&articles).Error; err != nil {
		return nil, err
	}

	items := make([]recommend.ContentItem, len(articles))
	for i := range articles {
		items[i] = ToContentItem(&articles[i])
	}
	return items, nil
}

// ToContentItem converts a stored article into the engine's read model,
// rendering the markdown body to HTML on the way.
func ToContentItem(a *models.ArticleModel) recommend.ContentItem {
	item := recommend.ContentItem{
		ID:          a.ID,
		Title:       a.Title,
		Excerpt:     a.Summary,
		Content:     recommend.HTMLContent(RenderHTML(a.Text)),
		Tags:        a.Tags,
		ReadingTime: a.ReadingTime,
		PublishedAt: a.PublishedAt,
		ViewCount:   a.ReadCount,
	}
	if a.CategoryID != nil {
		item.CategoryID = *a.CategoryID
	}
	if a.AuthorID != nil {
		item.AuthorID = *a.AuthorID
	}
	if item.PublishedAt == nil && !a.CreatedAt.IsZero() {
		created := a.CreatedAt
		item.PublishedAt = &created
	}
	return item
}
