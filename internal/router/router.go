package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/evalhub/qbank-ingest/internal/config"
	"github.com/evalhub/qbank-ingest/internal/handler"
	"github.com/evalhub/qbank-ingest/internal/middleware"
	"github.com/evalhub/qbank-ingest/internal/response"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Question *handler.QuestionHandler
	Ingest   *handler.IngestHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(handlers *Handlers, cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Classified previews run to hundreds of rows; compress them.
	router.Use(middleware.Brotli())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")

	// ─── Question Banks ────────────────────────────────────────────────
	banks := api.Group("/banks")
	{
		banks.GET("", handlers.Question.ListBanks)
		banks.POST("", handlers.Question.CreateBank)
		banks.GET("/:id", handlers.Question.GetBank)
		banks.GET("/:id/questions", handlers.Question.ListQuestions)
	}

	// ─── Imports ───────────────────────────────────────────────────────
	// Uploads are rate-limited per IP; a single upload already costs a
	// full pipeline run.
	importLimiter := middleware.NewRateLimiter(cfg.ImportRatePerMin, time.Minute)
	banks.POST("/:id/imports", importLimiter.Middleware(), handlers.Ingest.StageImport)

	imports := api.Group("/imports")
	{
		imports.POST("/:token/commit", handlers.Ingest.CommitImport)
	}

	return router
}
