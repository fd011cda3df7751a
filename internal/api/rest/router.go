package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/biblestudio/bible-studio-api/internal/ai"
	"github.com/biblestudio/bible-studio-api/internal/api/middleware"
	"github.com/biblestudio/bible-studio-api/internal/api/rest/handler"
	"github.com/biblestudio/bible-studio-api/internal/config"
	"github.com/biblestudio/bible-studio-api/internal/database"
	"github.com/biblestudio/bible-studio-api/internal/settings"
)

// sermonRPS throttles the AI generation routes far below the general
// limit; every request behind them is a paid model call.
const (
	sermonRPS   = 1.0
	sermonBurst = 3
)

// SetupRouter sets up the Gin router with all routes
func SetupRouter(cfg *config.Config, db *database.DB, repo *database.CachedRepository, svc *ai.Service, store *settings.Store) *gin.Engine {
	// Set Gin mode
	gin.SetMode(cfg.Server.Mode)

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// CORS middleware
	router.Use(middleware.CORS())

	// Rate limiting middleware
	if cfg.RateLimit.Enabled {
		rateLimiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
		router.Use(rateLimiter.Middleware())
	}

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", handler.HealthHandler(db))

		// Bible browsing routes
		bookHandler := handler.NewBookHandler(repo)
		v1.GET("/books", bookHandler.ListBooks)

		verseHandler := handler.NewVerseHandler(repo)
		v1.GET("/verses", verseHandler.ListVerses)
		v1.GET("/verses/search", verseHandler.SearchVerses)
		v1.GET("/verse", verseHandler.GetVerse)

		commentaryHandler := handler.NewCommentaryHandler(repo)
		v1.GET("/commentaries", commentaryHandler.ListCommentaries)

		// Translation management routes
		versionHandler := handler.NewVersionHandler(repo)
		v1.GET("/versions", versionHandler.ListVersions)
		v1.POST("/versions", versionHandler.AddVersion)
		v1.GET("/versions/display-names", versionHandler.ListDisplayNames)
		v1.DELETE("/versions/:id", versionHandler.DeleteVersion)
		v1.PUT("/versions/:id/name", versionHandler.RenameVersion)
		v1.GET("/versions/:id/stats", versionHandler.VersionStats)
		v1.GET("/versions/:id/display-name", versionHandler.GetDisplayName)
		v1.PUT("/versions/:id/display-name", versionHandler.SetDisplayName)
		v1.DELETE("/versions/:id/display-name", versionHandler.RemoveDisplayName)
		v1.GET("/database/info", versionHandler.DatabaseInfo)

		// Prompt management routes
		promptHandler := handler.NewPromptHandler(repo)
		v1.GET("/prompts", promptHandler.ListPrompts)
		v1.GET("/prompts/:id", promptHandler.GetPrompt)
		v1.PUT("/prompts/:id", promptHandler.UpdatePrompt)
		v1.POST("/prompts/:id/reset", promptHandler.ResetPrompt)

		// Settings routes
		settingsHandler := handler.NewSettingsHandler(store, svc)
		v1.GET("/settings", settingsHandler.GetSettings)
		v1.PUT("/settings", settingsHandler.UpdateSettings)

		// Sermon drafting routes, throttled separately
		sermonHandler := handler.NewSermonHandler(svc)
		sermon := v1.Group("/sermon")
		if cfg.RateLimit.Enabled {
			sermonLimiter := middleware.NewRateLimiter(sermonRPS, sermonBurst)
			sermon.Use(sermonLimiter.Middleware())
		}
		{
			sermon.POST("/topics", sermonHandler.GenerateTopics)
			sermon.POST("/outline", sermonHandler.GenerateOutline)
			sermon.POST("/section", sermonHandler.GenerateSection)
			sermon.POST("/draft", sermonHandler.GenerateDraft)
			sermon.POST("/image-prompt", sermonHandler.GenerateImagePrompt)
			sermon.POST("/image/download", sermonHandler.DownloadImage)
			sermon.POST("/test", sermonHandler.TestConnection)
		}
	}

	return router
}
