package handler

import (
	"errors"
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"
	"github.com/publicart/internal/service"
)

var hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

type categoryRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Color       string `json:"color"`
	IsActive    *bool  `json:"is_active"`
}

func (r categoryRequest) validate() map[string][]string {
	if r.Color != "" && !hexColorPattern.MatchString(r.Color) {
		return map[string][]string{
			"color": {"The color format is invalid."},
		}
	}
	return nil
}

func (r categoryRequest) toInput() service.CategoryInput {
	return service.CategoryInput{
		Name:        r.Name,
		Slug:        r.Slug,
		Description: r.Description,
		Color:       r.Color,
		IsActive:    r.IsActive,
	}
}

// ListCategories 获取全部分类，后台视图不过滤启用状态
func (a *API) ListCategories(c *gin.Context) {
	categories, err := a.categories.List()
	if err != nil {
		a.respondInternal(c, "Failed to fetch categories", err)
		return
	}
	respondSuccess(c, http.StatusOK, "All categories fetched successfully", categories)
}

// GetCategory 获取单个分类
func (a *API) GetCategory(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondBadRequest(c, "Invalid category ID")
		return
	}

	category, err := a.categories.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			respondNotFound(c, "Category not found", "CATEGORY_NOT_FOUND")
			return
		}
		a.respondInternal(c, "Failed to fetch category", err)
		return
	}

	respondSuccess(c, http.StatusOK, "", category)
}

// CreateCategory 创建分类，slug 缺省时由名称派生
func (a *API) CreateCategory(c *gin.Context) {
	var req categoryRequest
	if !bindJSON(c, &req) {
		return
	}
	if fieldErrors := req.validate(); fieldErrors != nil {
		respondValidation(c, fieldErrors)
		return
	}

	category, err := a.categories.Create(req.toInput())
	if err != nil {
		if errors.Is(err, service.ErrCategoryNameTaken) {
			respondValidation(c, map[string][]string{
				"name": {"The name has already been taken."},
			})
			return
		}
		a.respondInternal(c, "Failed to create category", err)
		return
	}

	respondSuccess(c, http.StatusCreated, "Category created successfully", category)
}

// UpdateCategory 更新分类
func (a *API) UpdateCategory(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondBadRequest(c, "Invalid category ID")
		return
	}

	var req categoryRequest
	if !bindJSON(c, &req) {
		return
	}
	if fieldErrors := req.validate(); fieldErrors != nil {
		respondValidation(c, fieldErrors)
		return
	}

	category, err := a.categories.Update(id, req.toInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCategoryNotFound):
			respondNotFound(c, "Category not found", "CATEGORY_NOT_FOUND")
		case errors.Is(err, service.ErrCategoryNameTaken):
			respondValidation(c, map[string][]string{
				"name": {"The name has already been taken."},
			})
		default:
			a.respondInternal(c, "Failed to update category", err)
		}
		return
	}

	respondSuccess(c, http.StatusOK, "Category updated successfully", category)
}

// DeleteCategory 删除分类，关联文章由外键级联删除
func (a *API) DeleteCategory(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondBadRequest(c, "Invalid category ID")
		return
	}

	if err := a.categories.Delete(id); err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			respondNotFound(c, "Category not found", "CATEGORY_NOT_FOUND")
			return
		}
		a.respondInternal(c, "Failed to delete category", err)
		return
	}

	respondSuccess(c, http.StatusOK, "Category deleted successfully", nil)
}
