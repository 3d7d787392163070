package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/publicart/internal/db"
	"github.com/publicart/internal/service"
)

type articleRequest struct {
	Title         string `json:"title" binding:"required,max=255"`
	Content       string `json:"content" binding:"required"`
	Summary       string `json:"summary" binding:"omitempty,max=500"`
	Author        string `json:"author" binding:"required,max=100"`
	CategoryID    uint   `json:"category_id" binding:"required"`
	Tags          string `json:"tags"`
	Status        string `json:"status" binding:"required,oneof=draft published archived"`
	FeaturedImage string `json:"featured_image" binding:"omitempty,url"`
	IsFeatured    bool   `json:"is_featured"`
	PublishedAt   string `json:"published_at"`
}

// 接受的发布时间格式，按顺序尝试
var publishedAtLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func (r articleRequest) toInput() (service.ArticleInput, map[string][]string) {
	input := service.ArticleInput{
		Title:         r.Title,
		Content:       r.Content,
		Summary:       r.Summary,
		Author:        r.Author,
		CategoryID:    r.CategoryID,
		Tags:          r.Tags,
		Status:        r.Status,
		FeaturedImage: r.FeaturedImage,
		IsFeatured:    r.IsFeatured,
	}

	if r.PublishedAt != "" {
		parsed, err := parsePublishedAt(r.PublishedAt)
		if err != nil {
			return input, map[string][]string{
				"published_at": {"The published at field must be a valid date."},
			}
		}
		input.PublishedAt = parsed
	}

	return input, nil
}

func parsePublishedAt(raw string) (*time.Time, error) {
	var lastErr error
	for _, layout := range publishedAtLayouts {
		parsed, err := time.Parse(layout, raw)
		if err == nil {
			return &parsed, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

func articleResponse(article *db.Article) gin.H {
	var publishedAt interface{}
	if article.PublishedAt != nil {
		publishedAt = article.PublishedAt.UTC().Format(time.RFC3339)
	}

	return gin.H{
		"id":                     article.ID,
		"title":                  article.Title,
		"content":                article.Content,
		"summary":                article.Summary,
		"author":                 article.Author,
		"category_id":            article.CategoryID,
		"category_name":          article.CategoryName(),
		"tags":                   article.Tags,
		"tags_array":             article.TagsArray,
		"status":                 article.Status,
		"featured_image":         article.FeaturedImage,
		"is_featured":            article.IsFeatured,
		"views":                  article.Views,
		"published_at":           publishedAt,
		"formatted_published_at": article.FormattedPublishedAt,
		"created_at":             article.CreatedAt.UTC().Format(time.RFC3339),
		"updated_at":             article.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// ListArticles 获取后台文章列表
func (a *API) ListArticles(c *gin.Context) {
	articles, err := a.articles.ListAll()
	if err != nil {
		a.respondInternal(c, "Failed to fetch articles", err)
		return
	}

	response := make([]gin.H, 0, len(articles))
	for i := range articles {
		response = append(response, articleResponse(&articles[i]))
	}

	respondSuccess(c, http.StatusOK, "Articles fetched successfully", response)
}

// GetArticle 获取单篇文章，任何状态都可见
func (a *API) GetArticle(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondBadRequest(c, "Invalid article ID")
		return
	}

	article, err := a.articles.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrArticleNotFound) {
			respondNotFound(c, "Article not found", "ARTICLE_NOT_FOUND")
			return
		}
		a.respondInternal(c, "Failed to fetch article", err)
		return
	}

	respondSuccess(c, http.StatusOK, "", articleResponse(article))
}

// CreateArticle 创建新文章
func (a *API) CreateArticle(c *gin.Context) {
	var req articleRequest
	if !bindJSON(c, &req) {
		return
	}

	input, fieldErrors := req.toInput()
	if fieldErrors != nil {
		respondValidation(c, fieldErrors)
		return
	}

	article, err := a.articles.Create(input)
	if err != nil {
		if errors.Is(err, service.ErrCategoryMissing) {
			respondValidation(c, map[string][]string{
				"category_id": {"The selected category id is invalid."},
			})
			return
		}
		a.respondInternal(c, "Failed to create article", err)
		return
	}

	respondSuccess(c, http.StatusCreated, "Article created successfully", articleResponse(article))
}

// UpdateArticle 全量更新文章，发布时间按状态转换规则推导
func (a *API) UpdateArticle(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondBadRequest(c, "Invalid article ID")
		return
	}

	var req articleRequest
	if !bindJSON(c, &req) {
		return
	}

	input, fieldErrors := req.toInput()
	if fieldErrors != nil {
		respondValidation(c, fieldErrors)
		return
	}

	article, err := a.articles.Update(id, input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrArticleNotFound):
			respondNotFound(c, "Article not found", "ARTICLE_NOT_FOUND")
		case errors.Is(err, service.ErrCategoryMissing):
			respondValidation(c, map[string][]string{
				"category_id": {"The selected category id is invalid."},
			})
		default:
			a.respondInternal(c, "Failed to update article", err)
		}
		return
	}

	respondSuccess(c, http.StatusOK, "Article updated successfully", articleResponse(article))
}

// DeleteArticle 删除文章
func (a *API) DeleteArticle(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondBadRequest(c, "Invalid article ID")
		return
	}

	if err := a.articles.Delete(id); err != nil {
		if errors.Is(err, service.ErrArticleNotFound) {
			respondNotFound(c, "Article not found", "ARTICLE_NOT_FOUND")
			return
		}
		a.respondInternal(c, "Failed to delete article", err)
		return
	}

	respondSuccess(c, http.StatusOK, "Article deleted successfully", nil)
}

// ListArticlesByCategory 按分类（ID 或 slug）过滤后台文章
func (a *API) ListArticlesByCategory(c *gin.Context) {
	ref := c.Param("category")

	articles, err := a.articles.ListByCategory(ref)
	if err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			respondNotFound(c, "Category not found", "CATEGORY_NOT_FOUND")
			return
		}
		a.respondInternal(c, "Failed to fetch articles by category", err)
		return
	}

	response := make([]gin.H, 0, len(articles))
	for i := range articles {
		response = append(response, articleResponse(&articles[i]))
	}

	respondSuccess(c, http.StatusOK, "Articles fetched successfully", response)
}
