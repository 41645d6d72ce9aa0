package models

import (
	"time"

	"github.com/uptrace/bun"
)

type Product struct {
	bun.BaseModel `bun:"table:products,alias:p"`

	ID          int       `bun:",pk,nullzero" json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Title       string    `bun:",nullzero" json:"title"`
	IsFiction   bool      `json:"is_fiction"`
	DatePublish time.Time `bun:",nullzero" json:"date_publish"`
	AuthorID    int       `bun:",nullzero" json:"author_id"`
	Author      *Author   `bun:"rel:belongs-to,join:author_id=id" json:"author,omitempty"`
}

// AuthorProjection is the fixed set of author columns returned on every
// product read. The nested author never carries a product list.
var AuthorProjection = []string{"id", "created_at", "updated_at", "first_name", "last_name"}
