package products

import (
	"net/http"
	"strconv"

	"github.com/bookstandapp/bookstand/pkg/errcodes"
	"github.com/bookstandapp/bookstand/pkg/models"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type handler struct {
	productService *Service
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Request().Context()

	params := ListProductsQuery{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	products, err := h.productService.ListProducts(ctx, ListProductsOptions{
		Limit:    params.Limit,
		Offset:   params.Offset,
		AuthorID: params.AuthorID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, products))
}

func (h *handler) retrieve(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Product")
	}

	product, err := h.productService.RetrieveProduct(ctx, RetrieveProductOptions{
		ID: &id,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, product))
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Request().Context()

	params := CreateProductPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	datePublish, err := parseDate(params.DatePublish)
	if err != nil {
		return errcodes.ValidationError(`"date_publish" should be in the format of YYYY-MM-DD`)
	}

	product := &models.Product{
		Title:       params.Title,
		IsFiction:   *params.IsFiction,
		DatePublish: datePublish,
		AuthorID:    params.AuthorID,
	}
	if err := h.productService.CreateProduct(ctx, product); err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusCreated, product))
}

func (h *handler) update(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Product")
	}

	params := UpdateProductPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	product, err := h.productService.RetrieveProduct(ctx, RetrieveProductOptions{
		ID: &id,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	// Only fields present in the payload are written.
	columns := []string{}
	if params.Title != nil {
		product.Title = *params.Title
		columns = append(columns, "title")
	}
	if params.IsFiction != nil {
		product.IsFiction = *params.IsFiction
		columns = append(columns, "is_fiction")
	}
	if params.DatePublish != nil {
		datePublish, err := parseDate(*params.DatePublish)
		if err != nil {
			return errcodes.ValidationError(`"date_publish" should be in the format of YYYY-MM-DD`)
		}
		product.DatePublish = datePublish
		columns = append(columns, "date_publish")
	}
	if params.AuthorID != nil {
		product.AuthorID = *params.AuthorID
		columns = append(columns, "author_id")
	}

	err = h.productService.UpdateProduct(ctx, product, UpdateProductOptions{Columns: columns})
	if err != nil {
		return errors.WithStack(err)
	}

	product, err = h.productService.RetrieveProduct(ctx, RetrieveProductOptions{ID: &id})
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, product))
}

func (h *handler) deleteProduct(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Product")
	}

	err = h.productService.DeleteProduct(ctx, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
