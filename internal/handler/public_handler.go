package handler

import (
	"bytes"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
	"github.com/publicart/internal/db"
	"github.com/publicart/internal/service"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	markdownEngine = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify, extension.Table),
		goldmark.WithRendererOptions(html.WithHardWraps(), html.WithXHTML()),
	)
	sanitizer = bluemonday.UGCPolicy()
)

// renderContentHTML 将文章正文按 Markdown 渲染并消毒
func renderContentHTML(content string) string {
	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(content), &buf); err != nil {
		return ""
	}
	return string(sanitizer.SanitizeBytes(buf.Bytes()))
}

func publicArticleSummary(article *db.Article) gin.H {
	var publishedAt interface{}
	if article.PublishedAt != nil {
		publishedAt = article.PublishedAt.UTC().Format(time.RFC3339)
	}

	return gin.H{
		"id":             article.ID,
		"title":          article.Title,
		"summary":        article.Summary,
		"content":        article.Content,
		"author":         article.Author,
		"category_id":    article.CategoryID,
		"category_name":  article.CategoryName(),
		"featured_image": article.FeaturedImage,
		"published_at":   publishedAt,
		"created_at":     article.CreatedAt.UTC().Format(time.RFC3339),
		"updated_at":     article.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// ListPublicArticles 公开文章列表，只返回已发布的文章
func (a *API) ListPublicArticles(c *gin.Context) {
	filter := service.PublicFilter{
		Search:     strings.TrimSpace(c.Query("search")),
		CategoryID: strings.TrimSpace(c.Query("category_id")),
	}

	articles, err := a.articles.ListPublic(filter)
	if err != nil {
		a.respondInternal(c, "Failed to fetch articles for public view", err)
		return
	}

	response := make([]gin.H, 0, len(articles))
	for i := range articles {
		response = append(response, publicArticleSummary(&articles[i]))
	}

	respondSuccess(c, http.StatusOK, "Articles fetched successfully for public view", response)
}

// GetPublicArticle 公开文章详情。草稿、已归档和不存在的 ID 一律返回 404，
// 避免通过枚举 ID 探测未发布内容。
func (a *API) GetPublicArticle(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondNotFound(c, "Article not found or not published", "ARTICLE_NOT_FOUND")
		return
	}

	article, err := a.articles.GetPublicByID(id)
	if err != nil {
		if errors.Is(err, service.ErrArticleNotFound) {
			respondNotFound(c, "Article not found or not published", "ARTICLE_NOT_FOUND")
			return
		}
		a.respondInternal(c, "Failed to fetch public article", err)
		return
	}

	response := publicArticleSummary(article)
	response["tags"] = article.Tags
	response["tags_array"] = article.TagsArray
	response["views"] = article.Views
	response["content_html"] = renderContentHTML(article.Content)

	respondSuccess(c, http.StatusOK, "", response)
}

// ListPublicCategories 公开分类列表，仅返回启用的分类
func (a *API) ListPublicCategories(c *gin.Context) {
	categories, err := a.categories.ListActive()
	if err != nil {
		a.respondInternal(c, "Failed to fetch categories for public view", err)
		return
	}

	respondSuccess(c, http.StatusOK, "Active categories fetched successfully for public view", categories)
}
