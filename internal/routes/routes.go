package routes

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"product-catalog/internal/handlers"
	"product-catalog/internal/middleware"
	"product-catalog/internal/store"
)

// NewRouter builds the gin engine with the full middleware chain and all
// routes registered against the given store.
func NewRouter(s store.ProductStore, log *slog.Logger) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))
	router.Use(gin.Recovery())

	Register(router, s)
	return router
}

// Register attaches all endpoints to the router.
func Register(router *gin.Engine, s store.ProductStore) {
	h := handlers.NewProductHandler(s)

	router.GET("/", handlers.Index)
	router.GET("/health", handlers.Health)

	products := router.Group("/products", middleware.RequireJSON())
	{
		products.POST("", h.Create)
		products.GET("", h.List)
		products.GET("/:id", h.Get)
		products.PUT("/:id", h.Update)
		products.DELETE("/:id", h.Delete)
	}
}
