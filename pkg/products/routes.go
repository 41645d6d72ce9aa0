package products

import (
	"github.com/labstack/echo/v4"
	"github.com/uptrace/bun"
)

// RegisterRoutes registers product routes on the echo instance.
func RegisterRoutes(e *echo.Echo, db *bun.DB) {
	h := &handler{
		productService: NewService(db),
	}

	g := e.Group("/products")
	g.GET("", h.list)
	g.POST("", h.create)
	g.GET("/:id", h.retrieve)
	g.PATCH("/:id", h.update)
	g.DELETE("/:id", h.deleteProduct)
}
