package testutils

import (
	"net/http"
	"time"

	"github.com/bookstandapp/bookstand/pkg/models"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

type handler struct {
	db *bun.DB
}

// seedCatalogResponse is the response body for seeding the catalog.
type seedCatalogResponse struct {
	Authors  []*models.Author  `json:"authors"`
	Products []*models.Product `json:"products"`
}

// seedCatalog inserts a small fixture set of authors and products.
// POST /test/seed.
func (h *handler) seedCatalog(c echo.Context) error {
	ctx := c.Request().Context()
	now := time.Now()

	seedAuthors := []*models.Author{
		{FirstName: "Jane", LastName: "Doe", CreatedAt: now, UpdatedAt: now},
		{FirstName: "John", LastName: "Smith", CreatedAt: now, UpdatedAt: now},
	}
	_, err := h.db.NewInsert().Model(&seedAuthors).Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to seed authors")
	}

	seedProducts := []*models.Product{
		{
			Title:       "First Novel",
			IsFiction:   true,
			DatePublish: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			AuthorID:    seedAuthors[0].ID,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			Title:       "Field Guide",
			IsFiction:   false,
			DatePublish: time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC),
			AuthorID:    seedAuthors[1].ID,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}
	_, err = h.db.NewInsert().Model(&seedProducts).Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to seed products")
	}

	return c.JSON(http.StatusCreated, seedCatalogResponse{
		Authors:  seedAuthors,
		Products: seedProducts,
	})
}

// deleteAllCatalogDataResponse is the response body for wiping the catalog.
type deleteAllCatalogDataResponse struct {
	Deleted int `json:"deleted"`
}

// deleteAllCatalogData deletes all products and authors.
// DELETE /test/catalog.
func (h *handler) deleteAllCatalogData(c echo.Context) error {
	ctx := c.Request().Context()

	// Delete products first (foreign key constraint)
	productResult, err := h.db.NewDelete().
		Model((*models.Product)(nil)).
		Where("1=1").
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to delete products")
	}

	authorResult, err := h.db.NewDelete().
		Model((*models.Author)(nil)).
		Where("1=1").
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to delete authors")
	}

	deletedProducts, _ := productResult.RowsAffected()
	deletedAuthors, _ := authorResult.RowsAffected()

	return c.JSON(http.StatusOK, deleteAllCatalogDataResponse{
		Deleted: int(deletedProducts + deletedAuthors),
	})
}
