package service

import (
	"errors"
	"strings"
	"time"

	"github.com/publicart/internal/db"
	"gorm.io/gorm"
)

var (
	ErrArticleNotFound = errors.New("article not found")
	ErrCategoryMissing = errors.New("referenced category does not exist")
)

// ArticleService wraps article related database operations.
type ArticleService struct {
	db *gorm.DB
}

// ArticleInput represents fields accepted when creating or updating an article.
type ArticleInput struct {
	Title         string
	Content       string
	Summary       string
	Author        string
	CategoryID    uint
	Tags          string
	Status        string
	FeaturedImage string
	IsFeatured    bool
	PublishedAt   *time.Time
}

// PublicFilter describes filters for the public article listing.
// CategoryID keeps the raw query value; "all" or empty disables the filter.
type PublicFilter struct {
	Search     string
	CategoryID string
}

// NewArticleService creates an ArticleService instance.
func NewArticleService(gdb *gorm.DB) *ArticleService {
	return &ArticleService{db: gdb}
}

// ResolvePublishedAt applies the status transition rules to the publication
// timestamp. prevStatus and prev describe the stored record (zero values on
// create); supplied is an explicit timestamp provided by the caller.
//
// Publishing stamps the current time unless a timestamp already exists or one
// was supplied. Dropping a published article back to draft clears the
// timestamp regardless of input. Archiving never touches it.
func ResolvePublishedAt(prevStatus string, prev *time.Time, newStatus string, supplied *time.Time) *time.Time {
	switch newStatus {
	case db.StatusPublished:
		if supplied != nil {
			return supplied
		}
		if prev != nil {
			return prev
		}
		now := time.Now()
		return &now
	case db.StatusDraft:
		if prevStatus == db.StatusPublished {
			return nil
		}
		if supplied != nil {
			return supplied
		}
		return prev
	default:
		return prev
	}
}

// ListAll returns all articles for the admin view, newest first, any status.
func (s *ArticleService) ListAll() ([]db.Article, error) {
	var articles []db.Article
	if err := s.db.Preload("Category").
		Order("created_at desc, id desc").
		Find(&articles).Error; err != nil {
		return nil, err
	}
	for i := range articles {
		articles[i].PopulateDerivedFields()
	}
	return articles, nil
}

// Get fetches an article by id regardless of status.
func (s *ArticleService) Get(id uint) (*db.Article, error) {
	var article db.Article
	if err := s.db.Preload("Category").First(&article, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}
	article.PopulateDerivedFields()
	return &article, nil
}

// Create persists a new article, stamping published_at per the status rules.
func (s *ArticleService) Create(input ArticleInput) (*db.Article, error) {
	if err := s.ensureCategory(input.CategoryID); err != nil {
		return nil, err
	}

	article := db.Article{
		Title:         strings.TrimSpace(input.Title),
		Content:       input.Content,
		Summary:       input.Summary,
		Author:        strings.TrimSpace(input.Author),
		CategoryID:    input.CategoryID,
		Tags:          input.Tags,
		Status:        input.Status,
		FeaturedImage: input.FeaturedImage,
		IsFeatured:    input.IsFeatured,
		PublishedAt:   ResolvePublishedAt("", nil, input.Status, input.PublishedAt),
	}

	if err := s.db.Create(&article).Error; err != nil {
		return nil, err
	}
	return s.Get(article.ID)
}

// Update applies a full-field update to an existing article. Concurrent
// updates are last-writer-wins; there is no conflict token.
func (s *ArticleService) Update(id uint, input ArticleInput) (*db.Article, error) {
	var existing db.Article
	if err := s.db.First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}

	if err := s.ensureCategory(input.CategoryID); err != nil {
		return nil, err
	}

	// 必须在覆盖 status 之前计算发布时间
	publishedAt := ResolvePublishedAt(existing.Status, existing.PublishedAt, input.Status, input.PublishedAt)

	existing.Title = strings.TrimSpace(input.Title)
	existing.Content = input.Content
	existing.Summary = input.Summary
	existing.Author = strings.TrimSpace(input.Author)
	existing.CategoryID = input.CategoryID
	existing.Tags = input.Tags
	existing.Status = input.Status
	existing.FeaturedImage = input.FeaturedImage
	existing.IsFeatured = input.IsFeatured
	existing.PublishedAt = publishedAt

	if err := s.db.Save(&existing).Error; err != nil {
		return nil, err
	}
	return s.Get(existing.ID)
}

// Delete removes an article by id.
func (s *ArticleService) Delete(id uint) error {
	var article db.Article
	if err := s.db.First(&article, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrArticleNotFound
		}
		return err
	}
	return s.db.Delete(&article).Error
}

// ListByCategory returns admin articles for one category, referenced by
// numeric id or by slug.
func (s *ArticleService) ListByCategory(ref string) ([]db.Article, error) {
	var category db.Category
	query := s.db.Where("slug = ?", ref)
	if id, err := parseUint(ref); err == nil {
		query = s.db.Where("id = ?", id)
	}
	if err := query.First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	var articles []db.Article
	if err := s.db.Preload("Category").
		Where("category_id = ?", category.ID).
		Order("created_at desc, id desc").
		Find(&articles).Error; err != nil {
		return nil, err
	}
	for i := range articles {
		articles[i].PopulateDerivedFields()
	}
	return articles, nil
}

// ListPublic returns published articles for the public site, newest
// publication first. Rows without a publication timestamp sort last.
func (s *ArticleService) ListPublic(filter PublicFilter) ([]db.Article, error) {
	query := s.db.Preload("Category").
		Where("status = ?", db.StatusPublished)

	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.Where(
			"(LOWER(title) LIKE ? OR LOWER(summary) LIKE ? OR LOWER(content) LIKE ?)",
			like, like, like,
		)
	}

	if filter.CategoryID != "" && filter.CategoryID != "all" {
		query = query.Where("category_id = ?", filter.CategoryID)
	}

	var articles []db.Article
	if err := query.
		Order("published_at IS NULL, published_at desc, id desc").
		Find(&articles).Error; err != nil {
		return nil, err
	}
	for i := range articles {
		articles[i].PopulateDerivedFields()
	}
	return articles, nil
}

// GetPublicByID fetches a single published article and counts the view.
// Draft, archived and nonexistent ids are indistinguishable to the caller.
func (s *ArticleService) GetPublicByID(id uint) (*db.Article, error) {
	var article db.Article
	if err := s.db.Preload("Category").
		Where("status = ?", db.StatusPublished).
		First(&article, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}

	if err := s.db.Model(&article).
		UpdateColumn("views", gorm.Expr("views + 1")).Error; err != nil {
		return nil, err
	}
	article.Views++

	article.PopulateDerivedFields()
	return &article, nil
}

func (s *ArticleService) ensureCategory(id uint) error {
	var count int64
	if err := s.db.Model(&db.Category{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrCategoryMissing
	}
	return nil
}
