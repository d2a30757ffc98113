package api

import (
	"net/http"
	"time"

	"github.com/Domenick1991/tripmate/internal/metrics"
	"github.com/Domenick1991/tripmate/internal/service/booking"
	"github.com/Domenick1991/tripmate/internal/service/review"
	"github.com/Domenick1991/tripmate/internal/service/search"
	"github.com/Domenick1991/tripmate/internal/service/state"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Services struct {
	Store    state.StateStore
	Checkout booking.BookingUseCase
	Search   search.SearchUseCase
	Reviews  review.ReviewUseCase
}

type RouterConfig struct {
	AllowedOrigins []string
}

// NewRouter wires every handler under /api/v1 plus the health and metrics endpoints.
func NewRouter(svc Services, cfg RouterConfig, log logrus.FieldLogger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(log), metrics.Middleware(), cors.New(corsConfig(cfg.AllowedOrigins)))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	v1 := router.Group("/api/v1")
	NewSessionHandler(svc.Store).Register(v1)
	NewBookingHandler(svc.Checkout, svc.Store).Register(v1)
	NewExpenseHandler(svc.Store).Register(v1)
	NewMatchHandler(svc.Store).Register(v1)
	NewChatHandler(svc.Store).Register(v1)
	NewCatalogHandler(svc.Search).Register(v1)
	NewReviewHandler(svc.Reviews, svc.Store).Register(v1)
	return router
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		MaxAge:       12 * time.Hour,
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

func requestLogger(log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.WithFields(logrus.Fields{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
		}).Debug("request handled")
	}
}
