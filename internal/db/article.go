package db

import (
	"strings"
	"time"
)

// 文章状态常量
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusArchived  = "archived"
)

// Statuses 返回所有合法的文章状态
func Statuses() []string {
	return []string{StatusDraft, StatusPublished, StatusArchived}
}

// Article 定义了文章模型
type Article struct {
	ID            uint       `gorm:"primarykey" json:"id"`
	Title         string     `gorm:"size:255;not null" json:"title"`
	Content       string     `gorm:"type:text;not null" json:"content"`
	Summary       string     `gorm:"size:500" json:"summary"`
	Author        string     `gorm:"size:100;not null" json:"author"`
	CategoryID    uint       `gorm:"index;not null" json:"category_id"`
	Category      *Category  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Tags          string     `json:"tags"`
	Status        string     `gorm:"size:20;index" json:"status"`
	FeaturedImage string     `json:"featured_image"`
	Views         int        `json:"views"`
	IsFeatured    bool       `json:"is_featured"`
	PublishedAt   *time.Time `gorm:"index" json:"published_at"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`

	// 非持久化的派生字段，由 PopulateDerivedFields 填充
	TagsArray            []string `gorm:"-" json:"tags_array"`
	FormattedPublishedAt string   `gorm:"-" json:"formatted_published_at"`
}

// JoinTags joins tag values into the stored comma separated form.
// Commas inside a tag value are not supported.
func JoinTags(tags []string) string {
	return strings.Join(tags, ",")
}

// SplitTags splits the stored comma separated form back into a list.
// An empty input yields an empty list.
func SplitTags(tags string) []string {
	if tags == "" {
		return []string{}
	}
	return strings.Split(tags, ",")
}

// PopulateDerivedFields 填充标签列表和展示用的发布时间
func (a *Article) PopulateDerivedFields() {
	a.TagsArray = SplitTags(a.Tags)
	if a.PublishedAt != nil {
		a.FormattedPublishedAt = a.PublishedAt.Format("02 Jan 2006")
	} else {
		a.FormattedPublishedAt = ""
	}
}

// CategoryName resolves the display name of the owning category.
// A dangling reference falls back to "Uncategorized" instead of failing.
func (a *Article) CategoryName() string {
	if a.Category == nil || a.Category.Name == "" {
		return "Uncategorized"
	}
	return a.Category.Name
}
