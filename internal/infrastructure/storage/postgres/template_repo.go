package postgres

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/hanjihoon31-beep/erphan-sub000/internal/core/apperror"
	"github.com/hanjihoon31-beep/erphan-sub000/internal/core/id"
	"github.com/hanjihoon31-beep/erphan-sub000/internal/domain/templates"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

func pgErrCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// isUniqueViolation reports whether err is a PostgreSQL unique index violation.
func isUniqueViolation(err error) bool {
	return pgErrCode(err) == pgUniqueViolation
}

// isForeignKeyViolation reports whether err is a PostgreSQL foreign key violation.
func isForeignKeyViolation(err error) bool {
	return pgErrCode(err) == pgForeignKeyViolation
}

// TemplateRepo implements templates.Repository on PostgreSQL.
type TemplateRepo struct {
	txManager *TxManager
}

// NewTemplateRepo creates a template repository.
func NewTemplateRepo(txManager *TxManager) *TemplateRepo {
	return &TemplateRepo{txManager: txManager}
}

var _ templates.Repository = (*TemplateRepo)(nil)

func (r *TemplateRepo) Create(ctx context.Context, entry *templates.Entry) error {
	query, args, err := psql.
		Insert("template_entries").
		Columns("id", "store_id", "product_id", "display_order", "is_active", "created_at").
		Values(entry.ID, entry.StoreID, entry.ProductID, entry.DisplayOrder, entry.IsActive, entry.CreatedAt).
		ToSql()
	if err != nil {
		return apperror.NewInternal(err)
	}

	if _, err := r.txManager.GetQuerier(ctx).Exec(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return apperror.NewDuplicate("template entry", "product", entry.ProductID.String())
		}
		// The service checks the catalogs first, so this only fires when a
		// store or product vanished between that check and the insert.
		if isForeignKeyViolation(err) {
			return apperror.NewValidation("store or product does not exist").
				WithDetail("storeId", entry.StoreID.String()).
				WithDetail("productId", entry.ProductID.String())
		}
		return apperror.NewStorage(err)
	}
	return nil
}

func (r *TemplateRepo) GetByID(ctx context.Context, entryID id.ID) (*templates.Entry, error) {
	query, args, err := psql.
		Select("t.id", "t.store_id", "t.product_id", "t.display_order", "t.is_active", "t.created_at",
			"p.name AS product_name", "p.unit AS product_unit").
		From("template_entries t").
		Join("products p ON p.id = t.product_id").
		Where(sq.Eq{"t.id": entryID}).
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal(err)
	}

	var entry templates.Entry
	if err := pgxscan.Get(ctx, r.txManager.GetQuerier(ctx), &entry, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("template entry", entryID)
		}
		return nil, apperror.NewStorage(err)
	}
	return &entry, nil
}

func (r *TemplateRepo) ListActive(ctx context.Context, storeID id.ID) ([]*templates.Entry, error) {
	query, args, err := psql.
		Select("t.id", "t.store_id", "t.product_id", "t.display_order", "t.is_active", "t.created_at",
			"p.name AS product_name", "p.unit AS product_unit").
		From("template_entries t").
		Join("products p ON p.id = t.product_id").
		Where(sq.Eq{"t.store_id": storeID, "t.is_active": true}).
		OrderBy("t.display_order", "t.created_at").
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal(err)
	}

	var entries []*templates.Entry
	if err := pgxscan.Select(ctx, r.txManager.GetQuerier(ctx), &entries, query, args...); err != nil {
		return nil, apperror.NewStorage(err)
	}
	return entries, nil
}

func (r *TemplateRepo) ExistingProductIDs(ctx context.Context, storeID id.ID, productIDs []id.ID) (map[id.ID]bool, error) {
	if len(productIDs) == 0 {
		return map[id.ID]bool{}, nil
	}

	query, args, err := psql.
		Select("product_id").
		From("template_entries").
		Where(sq.Eq{"store_id": storeID, "product_id": productIDs}).
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal(err)
	}

	var existing []id.ID
	if err := pgxscan.Select(ctx, r.txManager.GetQuerier(ctx), &existing, query, args...); err != nil {
		return nil, apperror.NewStorage(err)
	}

	result := make(map[id.ID]bool, len(existing))
	for _, pid := range existing {
		result[pid] = true
	}
	return result, nil
}

func (r *TemplateRepo) NextDisplayOrder(ctx context.Context, storeID id.ID) (int, error) {
	query, args, err := psql.
		Select("COALESCE(MAX(display_order) + 1, 0)").
		From("template_entries").
		Where(sq.Eq{"store_id": storeID}).
		ToSql()
	if err != nil {
		return 0, apperror.NewInternal(err)
	}

	var next int
	if err := pgxscan.Get(ctx, r.txManager.GetQuerier(ctx), &next, query, args...); err != nil {
		return 0, apperror.NewStorage(err)
	}
	return next, nil
}

func (r *TemplateRepo) SetActive(ctx context.Context, entryID id.ID, active bool) error {
	query, args, err := psql.
		Update("template_entries").
		Set("is_active", active).
		Where(sq.Eq{"id": entryID}).
		ToSql()
	if err != nil {
		return apperror.NewInternal(err)
	}

	tag, err := r.txManager.GetQuerier(ctx).Exec(ctx, query, args...)
	if err != nil {
		return apperror.NewStorage(err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFound("template entry", entryID)
	}
	return nil
}
