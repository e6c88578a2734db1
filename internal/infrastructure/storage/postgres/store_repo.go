package postgres

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/hanjihoon31-beep/erphan-sub000/internal/core/apperror"
	"github.com/hanjihoon31-beep/erphan-sub000/internal/core/id"
	"github.com/hanjihoon31-beep/erphan-sub000/internal/domain/catalogs/store"
)

// psql builds queries with PostgreSQL placeholders. Shared by all repos.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var storeColumns = ExtractDBColumns(store.Store{})

// StoreRepo implements store.Repository on PostgreSQL.
type StoreRepo struct {
	txManager *TxManager
}

// NewStoreRepo creates a store repository.
func NewStoreRepo(txManager *TxManager) *StoreRepo {
	return &StoreRepo{txManager: txManager}
}

var _ store.Repository = (*StoreRepo)(nil)

func (r *StoreRepo) GetByID(ctx context.Context, storeID id.ID) (*store.Store, error) {
	query, args, err := psql.
		Select(storeColumns...).
		From("stores").
		Where(sq.Eq{"id": storeID}).
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal(err)
	}

	var s store.Store
	if err := pgxscan.Get(ctx, r.txManager.GetQuerier(ctx), &s, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("store", storeID)
		}
		return nil, apperror.NewStorage(err)
	}
	return &s, nil
}

func (r *StoreRepo) ListActive(ctx context.Context) ([]*store.Store, error) {
	query, args, err := psql.
		Select(storeColumns...).
		From("stores").
		Where(sq.Eq{"is_active": true}).
		OrderBy("name").
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal(err)
	}

	var stores []*store.Store
	if err := pgxscan.Select(ctx, r.txManager.GetQuerier(ctx), &stores, query, args...); err != nil {
		return nil, apperror.NewStorage(err)
	}
	return stores, nil
}
