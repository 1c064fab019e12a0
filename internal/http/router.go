package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/feedback_ai/backend/internal/config"
	"github.com/feedback_ai/backend/internal/http/handlers"
	"github.com/feedback_ai/backend/internal/http/middleware"
	"github.com/feedback_ai/backend/internal/metrics"
	"github.com/feedback_ai/backend/internal/service"
	"github.com/feedback_ai/backend/internal/web"

	_ "github.com/feedback_ai/backend/docs"
)

func Router(cfg config.Config, svc *service.FeedbackService, logger zerolog.Logger) (*gin.Engine, error) {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error().Interface("panic", recovered).Str("path", c.Request.URL.Path).Msg("recovered from panic")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}))
	r.Use(metrics.GinMiddleware())

	corsCfg := cors.Config{
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "X-Request-Id"},
		MaxAge:       12 * time.Hour,
	}
	if cfg.CORSAllowed == "*" || cfg.CORSAllowed == "" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = []string{cfg.CORSAllowed}
	}
	r.Use(cors.New(corsCfg))

	tmpl, err := web.Templates()
	if err != nil {
		return nil, err
	}
	r.SetHTMLTemplate(tmpl)

	h := &handlers.Handler{
		Service:   svc,
		Validator: validator.New(),
		Logger:    logger,
	}

	r.GET("/", h.Index)
	r.GET("/admin", h.Admin)
	r.POST("/submit", h.Submit)
	r.GET("/export", h.Export)

	r.GET("/healthz", h.Healthz)
	r.GET("/api/stats", h.Stats)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r, nil
}
