package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"book-catalog/internal/shared/middleware"
	"book-catalog/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupCatalogRoutes(v1, c)
	}

	return router
}

// setupCatalogRoutes wires the book endpoints. Reads are public; when a
// JWT secret is configured, mutations require a Bearer token.
func setupCatalogRoutes(v1 *gin.RouterGroup, c *container.Container) {
	books := v1.Group("/books")
	{
		books.GET("", c.CatalogHandler.ListBooks)
		books.GET("/:isbn", c.CatalogHandler.GetBook)

		mutations := books.Group("")
		if c.JWTManager != nil {
			mutations.Use(middleware.Auth(c.JWTManager))
		}
		{
			mutations.POST("", c.CatalogHandler.AddBook)
			mutations.PUT("/:isbn", c.CatalogHandler.EditBook)
			mutations.DELETE("/:isbn", c.CatalogHandler.RemoveBook)
		}
	}
}

func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		}

		cacheStatus := "ok"
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := appCtx.Cache.Ping(ctx); err != nil {
			cacheStatus = fmt.Sprintf("error: %v", err)
			health["status"] = "degraded"
		}

		health["services"] = gin.H{"cache": cacheStatus}

		// A lost cache degrades performance, not availability; the store
		// itself is in-process.
		c.JSON(http.StatusOK, health)
	}
}
