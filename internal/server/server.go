// Package server assembles the gin engine: middleware chain, health
// and metrics endpoints, and the feature route tables.
package server

import (
	"net/http"

	brandhandler "github.com/elite-commerce/catalog-service/internal/brand/handler"
	categoryhandler "github.com/elite-commerce/catalog-service/internal/category/handler"
	"github.com/elite-commerce/catalog-service/internal/middleware"
	producthandler "github.com/elite-commerce/catalog-service/internal/product/handler"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type Handlers struct {
	Category *categoryhandler.Handler
	Brand    *brandhandler.Handler
	Product  *producthandler.Handler
}

func New(appEnv string, log *zap.Logger, h Handlers) *gin.Engine {
	if appEnv != "development" && appEnv != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORS())
	r.Use(middleware.Prometheus())
	r.Use(middleware.Actor())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	h.Category.RegisterRoutes(r)
	h.Brand.RegisterRoutes(r)
	h.Product.RegisterRoutes(r)

	return r
}
