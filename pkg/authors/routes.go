package authors

import (
	"github.com/labstack/echo/v4"
	"github.com/uptrace/bun"
)

// RegisterRoutes registers author routes on the echo instance.
func RegisterRoutes(e *echo.Echo, db *bun.DB) {
	h := &handler{
		authorService: NewService(db),
	}

	g := e.Group("/authors")
	g.GET("", h.list)
	g.POST("", h.create)
	g.GET("/:id", h.retrieve)
	g.PATCH("/:id", h.update)
	g.DELETE("/:id", h.deleteAuthor)
}
