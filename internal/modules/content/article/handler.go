package article

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/novinshop/core/internal/models"
	"github.com/novinshop/core/internal/pkg/pagination"
	"github.com/novinshop/core/internal/pkg/response"
)

// Handler handles article HTTP requests.
type Handler struct {
	svc *Service
	// purge invalidates the shared HTTP response cache after a write, so a
	// new or deleted article shows up in cached lists before the TTL lapses.
	purge func()
}

func NewHandler(svc *Service, purge func()) *Handler {
	return &Handler{svc: svc, purge: purge}
}

func (h *Handler) purgeCache() {
	if h.purge != nil {
		go h.purge()
	}
}

// RegisterRoutes mounts article routes onto the given router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	articles := rg.Group("/articles")

	articles.GET("", h.list)
	articles.GET("/:identifier", h.get)

	authed := articles.Group("", authMW)
	authed.POST("", h.create)
	authed.DELETE("/:id", h.delete)
}

type articleResponse struct {
	ID          string             `json:"id"`
	Slug        string             `json:"slug"`
	Title       string             `json:"title"`
	Summary     string             `json:"summary"`
	Text        string             `json:"text"`
	HTML        string             `json:"html,omitempty"`
	Lang        string             `json:"lang"`
	CategoryID  *string            `json:"category_id"`
	AuthorID    *string            `json:"author_id"`
	Tags        models.StringArray `json:"tags"`
	ReadingTime int                `json:"reading_time"`
	ReadCount   int                `json:"read"`
	IsPublished bool               `json:"is_published"`
	PublishedAt *time.Time         `json:"published_at"`
	Created     time.Time          `json:"created"`
}

func toResponse(a *models.ArticleModel, withHTML bool) articleResponse {
	resp := articleResponse{
		ID:          a.ID,
		Slug:        a.Slug,
		Title:       a.Title,
		Summary:     a.Summary,
		Text:        a.Text,
		Lang:        a.Lang,
		CategoryID:  a.CategoryID,
		AuthorID:    a.AuthorID,
		Tags:        a.Tags,
		ReadingTime: a.ReadingTime,
		ReadCount:   a.ReadCount,
		IsPublished: a.IsPublished,
		PublishedAt: a.PublishedAt,
		Created:     a.CreatedAt,
	}
	if withHTML {
		resp.HTML = RenderHTML(a.Text)
	}
	return resp
}

// list GET /articles
func (h *Handler) list(c *gin.Context) {
	q := pagination.FromContext(c)

	var lq ListQuery
	if err := c.ShouldBindQuery(&lq); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	articles, pag, err := h.svc.List(q, lq)
	if err != nil {
		response.InternalError(c, err)
		return
	}

	items := make([]articleResponse, len(articles))
	for i := range articles {
		items[i] = toResponse(&articles[i], false)
	}
	response.Paged(c, items, pag)
}

// get GET /articles/:identifier
func (h *Handler) get(c *gin.Context) {
	a, err := h.svc.GetByIdentifier(c.Param("identifier"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if a == nil || !a.IsPublished {
		response.NotFound(c)
		return
	}

	go func() { _ = h.svc.IncrementReadCount(a.ID) }()

	response.OK(c, toResponse(a, true))
}

// create POST /articles  [auth]
func (h *Handler) create(c *gin.Context) {
	var dto CreateArticleDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	a, err := h.svc.Create(&dto)
	if err != nil {
		if err.Error() == "slug already exists" {
			response.Conflict(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	h.purgeCache()
	response.Created(c, toResponse(a, false))
}

// delete DELETE /articles/:id  [auth]
func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		response.InternalError(c, err)
		return
	}
	h.purgeCache()
	response.NoContent(c)
}
