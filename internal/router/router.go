package router

import (
	"github.com/creatorcircle/internal/config"
	"github.com/creatorcircle/internal/content"
	"github.com/creatorcircle/internal/handler"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Setup 配置 Gin 引擎和路由。
func Setup(cfg config.AppConfig, store *content.Store, gdb *gorm.DB) *gin.Engine {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}
	r := gin.Default()

	// 配置会话中间件
	sessionStore := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("creatorcircle_session", sessionStore))

	// 静态文件服务（上传的照片）
	r.Static(cfg.UploadURLPath, cfg.UploadDir)

	api := handler.NewAPI(store, gdb, cfg.UploadDir, cfg.UploadURLPath)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	apiGroup := r.Group("/api")
	{
		// 内容查询接口，全部只读
		apiGroup.GET("/search", api.Search)
		apiGroup.GET("/tweets", api.GetTweets)
		apiGroup.GET("/tweets/:id", api.GetTweet)
		apiGroup.GET("/articles", api.GetArticles)
		apiGroup.GET("/articles/:slug", api.GetArticle)
		apiGroup.GET("/cases", api.GetCases)
		apiGroup.GET("/cases/:slug", api.GetCase)
		apiGroup.GET("/photos", api.GetPhotos)
		apiGroup.GET("/site", api.GetSite)

		// 互推墙公开可读
		apiGroup.GET("/boost", api.ListBoosts)

		auth := apiGroup.Group("/auth")
		{
			auth.POST("/register", api.Register)
			auth.POST("/login", api.Login)
			auth.POST("/logout", api.Logout)
		}

		// 需要登录的成员接口
		member := apiGroup.Group("")
		member.Use(handler.AuthRequired())
		{
			member.GET("/dashboard", api.ShowDashboard)
			member.POST("/dashboard/articles", api.CreateMemberArticle)
			member.GET("/dashboard/articles/:id", api.GetMemberArticle)
			member.POST("/dashboard/tweets", api.CreateHighlightTweet)
			member.POST("/dashboard/photos", api.UploadPhoto)
			member.POST("/boost", api.CreateBoostRequest)
			member.POST("/boost/:id/support", api.SupportBoost)
			member.PUT("/boost/:id/status", api.UpdateBoostStatus)
		}
	}

	return r
}
