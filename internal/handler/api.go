package handler

import (
	"github.com/publicart/internal/service"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db         *gorm.DB
	articles   *service.ArticleService
	categories *service.CategoryService
	log        zerolog.Logger
	debug      bool
	uploadDir  string
	uploadURL  string
}

// NewAPI constructs a handler set with shared services.
func NewAPI(gdb *gorm.DB, log zerolog.Logger, debug bool, uploadDir, uploadURL string) *API {
	return &API{
		db:         gdb,
		articles:   service.NewArticleService(gdb),
		categories: service.NewCategoryService(gdb),
		log:        log,
		debug:      debug,
		uploadDir:  uploadDir,
		uploadURL:  uploadURL,
	}
}

// DB exposes the underlying gorm instance.
func (a *API) DB() *gorm.DB {
	return a.db
}
