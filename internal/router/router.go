package router

import (
	"github.com/gin-gonic/gin"
	"github.com/publicart/internal/handler"
)

// SetupRouter 配置 Gin 引擎和路由
func SetupRouter(api *handler.API, uploadURLPath, uploadDir string) *gin.Engine {
	r := gin.Default()

	// 上传的题图走静态文件服务
	r.Static(uploadURLPath, uploadDir)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// 后台管理 API
	admin := r.Group("/api")
	{
		admin.GET("/articles", api.ListArticles)
		admin.GET("/articles/category/:category", api.ListArticlesByCategory)
		admin.GET("/articles/:id", api.GetArticle)
		admin.POST("/articles", api.CreateArticle)
		admin.PUT("/articles/:id", api.UpdateArticle)
		admin.PATCH("/articles/:id", api.UpdateArticle)
		admin.DELETE("/articles/:id", api.DeleteArticle)

		admin.GET("/categories", api.ListCategories)
		admin.GET("/categories/:id", api.GetCategory)
		admin.POST("/categories", api.CreateCategory)
		admin.PUT("/categories/:id", api.UpdateCategory)
		admin.PATCH("/categories/:id", api.UpdateCategory)
		admin.DELETE("/categories/:id", api.DeleteCategory)

		admin.POST("/uploads", api.UploadImage)
	}

	// 面向 PublicArt 前端的只读接口，仅暴露已发布内容
	public := r.Group("/public")
	{
		public.GET("/articles", api.ListPublicArticles)
		public.GET("/articles/:id", api.GetPublicArticle)
		public.GET("/categories", api.ListPublicCategories)
	}

	return r
}
