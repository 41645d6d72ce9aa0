package products

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/bookstandapp/bookstand/pkg/binder"
	"github.com/bookstandapp/bookstand/pkg/errcodes"
	"github.com/bookstandapp/bookstand/pkg/models"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProductsTestContext(t *testing.T, method, path, payload string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	b, err := binder.New()
	require.NoError(t, err)
	e.Binder = b
	e.HTTPErrorHandler = errcodes.NewHandler().Handle

	req := httptest.NewRequest(method, path, strings.NewReader(payload))
	if payload != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rr := httptest.NewRecorder()
	return e.NewContext(req, rr), rr
}

func TestHandlerCreateProduct(t *testing.T) {
	db := newTestDB(t)
	h := &handler{productService: NewService(db)}
	ctx := context.Background()

	author := createTestAuthor(ctx, t, db)

	payload := `{"title":"Book","is_fiction":true,"date_publish":"2024-01-01","author_id":` + strconv.Itoa(author.ID) + `}`
	c, rr := newProductsTestContext(t, http.MethodPost, "/products", payload)
	c.SetPath("/products")

	err := h.create(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rr.Code)

	product := models.Product{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &product))
	assert.NotZero(t, product.ID)
	assert.Equal(t, "Book", product.Title)
	assert.True(t, product.IsFiction)
	assert.True(t, product.DatePublish.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
	require.NotNil(t, product.Author)
	assert.Equal(t, author.ID, product.Author.ID)
	assert.Equal(t, "Jane", product.Author.FirstName)
}

func TestHandlerCreateProduct_BadDate(t *testing.T) {
	db := newTestDB(t)
	h := &handler{productService: NewService(db)}
	ctx := context.Background()

	author := createTestAuthor(ctx, t, db)

	payload := `{"title":"Book","is_fiction":true,"date_publish":"01/01/2024","author_id":` + strconv.Itoa(author.ID) + `}`
	c, _ := newProductsTestContext(t, http.MethodPost, "/products", payload)
	c.SetPath("/products")

	err := h.create(c)
	var e *errcodes.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, http.StatusBadRequest, e.HTTPCode)
	assert.Equal(t, "validation_error", e.Code)
	assert.Contains(t, e.Message, "YYYY-MM-DD")
}

func TestHandlerCreateProduct_UnknownAuthor(t *testing.T) {
	db := newTestDB(t)
	h := &handler{productService: NewService(db)}

	payload := `{"title":"Book","is_fiction":true,"date_publish":"2024-01-01","author_id":999}`
	c, _ := newProductsTestContext(t, http.MethodPost, "/products", payload)
	c.SetPath("/products")

	err := h.create(c)
	var e *errcodes.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, http.StatusBadRequest, e.HTTPCode)
	assert.Equal(t, "referential_integrity", e.Code)
}

func TestHandlerUpdateProduct_Partial(t *testing.T) {
	db := newTestDB(t)
	h := &handler{productService: NewService(db)}
	ctx := context.Background()

	author := createTestAuthor(ctx, t, db)

	product := &models.Product{
		Title:       "Book",
		IsFiction:   true,
		DatePublish: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		AuthorID:    author.ID,
	}
	require.NoError(t, h.productService.CreateProduct(ctx, product))

	c, rr := newProductsTestContext(t, http.MethodPatch, "/products/"+strconv.Itoa(product.ID), `{"title":"Renamed"}`)
	c.SetPath("/products/:id")
	c.SetParamNames("id")
	c.SetParamValues(strconv.Itoa(product.ID))

	err := h.update(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rr.Code)

	updated := models.Product{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &updated))
	assert.Equal(t, "Renamed", updated.Title)
	assert.True(t, updated.IsFiction)
	assert.True(t, updated.DatePublish.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
	require.NotNil(t, updated.Author)
	assert.Equal(t, author.ID, updated.Author.ID)
}

func TestHandlerUpdateProduct_NotFound(t *testing.T) {
	db := newTestDB(t)
	h := &handler{productService: NewService(db)}

	c, _ := newProductsTestContext(t, http.MethodPatch, "/products/999", `{"title":"Renamed"}`)
	c.SetPath("/products/:id")
	c.SetParamNames("id")
	c.SetParamValues("999")

	err := h.update(c)
	require.ErrorIs(t, err, errcodes.NotFound("Product"))
}

func TestHandlerDeleteProduct_NonIntegerID(t *testing.T) {
	db := newTestDB(t)
	h := &handler{productService: NewService(db)}

	c, _ := newProductsTestContext(t, http.MethodDelete, "/products/abc", "")
	c.SetPath("/products/:id")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := h.deleteProduct(c)
	require.ErrorIs(t, err, errcodes.NotFound("Product"))
}
