package products

import (
	"context"
	"database/sql"
	"time"

	"github.com/bookstandapp/bookstand/pkg/database"
	"github.com/bookstandapp/bookstand/pkg/errcodes"
	"github.com/bookstandapp/bookstand/pkg/models"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

type RetrieveProductOptions struct {
	ID *int
}

type ListProductsOptions struct {
	Limit    *int
	Offset   *int
	AuthorID *int
}

type UpdateProductOptions struct {
	Columns []string
}

type Service struct {
	db *bun.DB
}

func NewService(db *bun.DB) *Service {
	return &Service{db}
}

// withAuthor applies the fixed author projection to a product select. Every
// read path goes through this so a product never comes back as a bare
// foreign-key record.
func withAuthor(q *bun.SelectQuery) *bun.SelectQuery {
	return q.Relation("Author", func(sq *bun.SelectQuery) *bun.SelectQuery {
		return sq.Column(models.AuthorProjection...)
	})
}

// CreateProduct inserts the product and reloads it so the result carries the
// projected author.
func (svc *Service) CreateProduct(ctx context.Context, product *models.Product) error {
	now := time.Now()
	if product.CreatedAt.IsZero() {
		product.CreatedAt = now
	}
	product.UpdatedAt = product.CreatedAt

	_, err := svc.db.
		NewInsert().
		Model(product).
		Returning("*").
		Exec(ctx)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return errcodes.ReferentialIntegrity("Product author_id must reference an existing author.")
		}
		return errors.WithStack(err)
	}

	created, err := svc.RetrieveProduct(ctx, RetrieveProductOptions{ID: &product.ID})
	if err != nil {
		return err
	}
	*product = *created
	return nil
}

func (svc *Service) RetrieveProduct(ctx context.Context, opts RetrieveProductOptions) (*models.Product, error) {
	product := &models.Product{}

	q := withAuthor(svc.db.
		NewSelect().
		Model(product))

	if opts.ID != nil {
		q = q.Where("p.id = ?", *opts.ID)
	}

	err := q.Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errcodes.NotFound("Product")
		}
		return nil, errors.WithStack(err)
	}

	return product, nil
}

func (svc *Service) ListProducts(ctx context.Context, opts ListProductsOptions) ([]*models.Product, error) {
	products := make([]*models.Product, 0)

	q := withAuthor(svc.db.
		NewSelect().
		Model(&products).
		Order("p.id ASC"))

	if opts.AuthorID != nil {
		q = q.Where("p.author_id = ?", *opts.AuthorID)
	}
	if opts.Limit != nil {
		q = q.Limit(*opts.Limit)
	}
	if opts.Offset != nil {
		q = q.Offset(*opts.Offset)
	}

	err := q.Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return products, nil
}

// UpdateProduct writes only the named columns. An empty column list still
// bumps updated_at so the record reflects the write.
func (svc *Service) UpdateProduct(ctx context.Context, product *models.Product, opts UpdateProductOptions) error {
	product.UpdatedAt = time.Now()
	columns := append(opts.Columns, "updated_at")

	res, err := svc.db.
		NewUpdate().
		Model(product).
		Column(columns...).
		WherePK().
		Exec(ctx)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return errcodes.ReferentialIntegrity("Product author_id must reference an existing author.")
		}
		return errors.WithStack(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errors.WithStack(err)
	}
	if n == 0 {
		return errcodes.NotFound("Product")
	}
	return nil
}

func (svc *Service) DeleteProduct(ctx context.Context, id int) error {
	res, err := svc.db.
		NewDelete().
		Model((*models.Product)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return errors.WithStack(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errors.WithStack(err)
	}
	if n == 0 {
		return errcodes.NotFound("Product")
	}
	return nil
}
