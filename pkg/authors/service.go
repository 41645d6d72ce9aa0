package authors

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

type RetrieveAuthorOptions struct {
	ID *int
}

type ListAuthorsOptions struct {
	Limit  *int
	Offset *int
}

type UpdateAuthorOptions struct {
	Columns []string
}

type Service struct {
	db *bun.DB
}

func NewService(db *bun.DB) *Service {
	return &Service{db}
}

func (svc *Service) CreateAuthor(ctx context.Context, author *models.Author) error {
	now := time.Now()
	if author.CreatedAt.IsZero() {
		author.CreatedAt = now
	}
	author.UpdatedAt = author.CreatedAt

	_, err := svc.db.
		NewInsert().
		Model(author).
		Returning("*").
		Exec(ctx)
	return errors.WithStack(err)
}

func (svc *Service) RetrieveAuthor(ctx context.Context, opts RetrieveAuthorOptions) (*models.Author, error) {
	author := &models.Author{}

	q := svc.db.
		NewSelect().
		Model(author)

	if opts.ID != nil {
		q = q.Where("a.id = ?", *opts.ID)
	}

	err := q.Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errcodes.NotFound("Author")
		}
		return nil, errors.WithStack(err)
	}

	return author, nil
}

func (svc *Service) ListAuthors(ctx context.Context, opts ListAuthorsOptions) ([]*models.Author, error) {
	authors := make([]*models.Author, 0)

	q := svc.db.
		NewSelect().
		Model(&authors).
		Order("a.id ASC")

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

	return authors, nil
}

// UpdateAuthor writes only the named columns. An empty column list still
// bumps updated_at so the record reflects the write.
func (svc *Service) UpdateAuthor(ctx context.Context, author *models.Author, opts UpdateAuthorOptions) error {
	author.UpdatedAt = time.Now()
	columns := append(opts.Columns, "updated_at")

	res, err := svc.db.
		NewUpdate().
		Model(author).
		Column(columns...).
		WherePK().
		Exec(ctx)
	if err != nil {
		return errors.WithStack(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errors.WithStack(err)
	}
	if n == 0 {
		return errcodes.NotFound("Author")
	}
	return nil
}

// DeleteAuthor hard-deletes an author. Deletes never cascade: an author that
// still has products is rejected by the store's foreign key enforcement.
func (svc *Service) DeleteAuthor(ctx context.Context, id int) error {
	res, err := svc.db.
		NewDelete().
		Model((*models.Author)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return errcodes.ReferentialIntegrity("Author still has products that reference it.")
		}
		return errors.WithStack(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errors.WithStack(err)
	}
	if n == 0 {
		return errcodes.NotFound("Author")
	}
	return nil
}
