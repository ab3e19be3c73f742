package models

import "time"

// ArticleModel is a blog article of the storefront. Text holds the markdown
// source; rendering happens on the way out.
type ArticleModel struct {
	Base
	Slug        string      `json:"slug"         gorm:"uniqueIndex;not null"`
	Title       string      `json:"title"        gorm:"not null"`
	Summary     string      `json:"summary"`
	Text        string      `json:"text"         gorm:"type:longtext"`
	Lang        string      `json:"lang"         gorm:"type:char(2);default:'fa';index"` // fa | en
	CategoryID  *string     `json:"category_id"  gorm:"index"`
	AuthorID    *string     `json:"author_id"    gorm:"index"`
	Tags        StringArray `json:"tags"         gorm:"type:json"`
	ReadingTime int         `json:"reading_time"` // minutes
	ReadCount   int         `json:"read"         gorm:"column:read_count;default:0"`
	IsPublished bool        `json:"is_published" gorm:"default:false;index"`
	PublishedAt *time.Time  `json:"published_at" gorm:"index"`
}

func (ArticleModel) TableName() string { return "articles" }
