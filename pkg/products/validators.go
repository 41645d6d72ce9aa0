package products

import (
	"time"

	"github.com/pkg/errors"
)

type ListProductsQuery struct {
	Limit    *int `query:"limit" json:"limit,omitempty" validate:"omitempty,min=1,max=100"`
	Offset   *int `query:"offset" json:"offset,omitempty" validate:"omitempty,min=0"`
	AuthorID *int `query:"author_id" json:"author_id,omitempty" validate:"omitempty,min=1"`
}

type CreateProductPayload struct {
	Title       string `json:"title" mod:"trim" validate:"required,max=300"`
	IsFiction   *bool  `json:"is_fiction" validate:"required"`
	DatePublish string `json:"date_publish" validate:"required,date"`
	AuthorID    int    `json:"author_id" validate:"required,min=1"`
}

type UpdateProductPayload struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,min=1,max=300"`
	IsFiction   *bool   `json:"is_fiction,omitempty"`
	DatePublish *string `json:"date_publish,omitempty" validate:"omitempty,date,ne="`
	AuthorID    *int    `json:"author_id,omitempty" validate:"omitempty,min=1"`
}

// parseDate normalizes a YYYY-MM-DD payload string into the date value that
// gets persisted. The binder's date validator has already vetted the format.
func parseDate(s string) (time.Time, error) {
	d, err := time.Parse("2006-01-02", s)
	return d, errors.WithStack(err)
}
