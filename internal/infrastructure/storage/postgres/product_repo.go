package postgres

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/hanjihoon31-beep/erphan-sub000/internal/core/apperror"
	"github.com/hanjihoon31-beep/erphan-sub000/internal/core/id"
	"github.com/hanjihoon31-beep/erphan-sub000/internal/domain/catalogs/product"
)

var productColumns = ExtractDBColumns(product.Product{})

// ProductRepo implements product.Repository on PostgreSQL.
type ProductRepo struct {
	txManager *TxManager
}

// NewProductRepo creates a product repository.
func NewProductRepo(txManager *TxManager) *ProductRepo {
	return &ProductRepo{txManager: txManager}
}

var _ product.Repository = (*ProductRepo)(nil)

func (r *ProductRepo) GetByID(ctx context.Context, productID id.ID) (*product.Product, error) {
	query, args, err := psql.
		Select(productColumns...).
		From("products").
		Where(sq.Eq{"id": productID}).
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal(err)
	}

	var p product.Product
	if err := pgxscan.Get(ctx, r.txManager.GetQuerier(ctx), &p, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("product", productID)
		}
		return nil, apperror.NewStorage(err)
	}
	return &p, nil
}

func (r *ProductRepo) GetByIDs(ctx context.Context, productIDs []id.ID) ([]*product.Product, error) {
	if len(productIDs) == 0 {
		return nil, nil
	}

	query, args, err := psql.
		Select(productColumns...).
		From("products").
		Where(sq.Eq{"id": productIDs}).
		OrderBy("name").
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal(err)
	}

	var products []*product.Product
	if err := pgxscan.Select(ctx, r.txManager.GetQuerier(ctx), &products, query, args...); err != nil {
		return nil, apperror.NewStorage(err)
	}
	return products, nil
}
