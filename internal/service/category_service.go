package service

import (
	"errors"
	"strconv"
	"strings"

	"github.com/publicart/internal/db"
	"gorm.io/gorm"
)

var (
	ErrCategoryNotFound  = errors.New("category not found")
	ErrCategoryNameTaken = errors.New("category name already in use")
)

// CategoryService wraps category related operations.
type CategoryService struct {
	db *gorm.DB
}

// CategoryInput represents fields accepted when creating or updating a category.
// A nil IsActive keeps the stored value on update and defaults to true on create.
type CategoryInput struct {
	Name        string
	Slug        string
	Description string
	Color       string
	IsActive    *bool
}

// NewCategoryService creates a CategoryService instance.
func NewCategoryService(gdb *gorm.DB) *CategoryService {
	return &CategoryService{db: gdb}
}

// List returns all categories for the admin view, ordered by name.
func (s *CategoryService) List() ([]db.Category, error) {
	var categories []db.Category
	if err := s.db.Order("name asc").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// ListActive returns categories visible on the public site, ordered by name.
func (s *CategoryService) ListActive() ([]db.Category, error) {
	var categories []db.Category
	if err := s.db.Where("is_active = ?", true).
		Order("name asc").
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// Get fetches a category by id.
func (s *CategoryService) Get(id uint) (*db.Category, error) {
	var category db.Category
	if err := s.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

// Create persists a category, deriving the slug from the name when absent.
// 替代原来挂在实体保存钩子上的自动 slug 逻辑
func (s *CategoryService) Create(input CategoryInput) (*db.Category, error) {
	name := strings.TrimSpace(input.Name)
	if err := s.ensureNameFree(name, 0); err != nil {
		return nil, err
	}

	category := db.Category{
		Name:        name,
		Slug:        resolveSlug(input.Slug, name),
		Description: input.Description,
		Color:       input.Color,
		IsActive:    true,
	}
	if input.IsActive != nil {
		category.IsActive = *input.IsActive
	}

	if err := s.db.Create(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// Update applies updates to an existing category. The slug is recomputed from
// the new name only when the caller leaves it empty.
func (s *CategoryService) Update(id uint, input CategoryInput) (*db.Category, error) {
	category, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	if err := s.ensureNameFree(name, id); err != nil {
		return nil, err
	}

	category.Name = name
	category.Slug = resolveSlug(input.Slug, name)
	category.Description = input.Description
	category.Color = input.Color
	if input.IsActive != nil {
		category.IsActive = *input.IsActive
	}

	if err := s.db.Save(category).Error; err != nil {
		return nil, err
	}
	return category, nil
}

// Delete removes a category. Articles referencing it are cascade-deleted by
// the store's foreign key constraint.
func (s *CategoryService) Delete(id uint) error {
	category, err := s.Get(id)
	if err != nil {
		return err
	}
	return s.db.Delete(category).Error
}

func (s *CategoryService) ensureNameFree(name string, selfID uint) error {
	var count int64
	query := s.db.Model(&db.Category{}).Where("name = ?", name)
	if selfID != 0 {
		query = query.Where("id <> ?", selfID)
	}
	if err := query.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrCategoryNameTaken
	}
	return nil
}

func resolveSlug(slug, name string) string {
	if trimmed := strings.TrimSpace(slug); trimmed != "" {
		return trimmed
	}
	return db.Slugify(name)
}

func parseUint(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	return uint(id), err
}
