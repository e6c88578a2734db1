package postgres

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/hanjihoon31-beep/erphan-sub000/internal/core/apperror"
	"github.com/hanjihoon31-beep/erphan-sub000/internal/core/id"
	"github.com/hanjihoon31-beep/erphan-sub000/internal/core/types"
	"github.com/hanjihoon31-beep/erphan-sub000/internal/domain/records/cash"
)

// Denomination groups are stored as jsonb columns. pgx encodes and decodes
// the group structs through its json codec, so the row maps onto cash.Record
// without an intermediate row type. Column order follows the struct, and
// Create's Values below must stay in the same order.
var cashColumns = ExtractDBColumns(cash.Record{})

// CashRepo implements cash.Repository on PostgreSQL.
type CashRepo struct {
	txManager *TxManager
}

// NewCashRepo creates a cash record repository.
func NewCashRepo(txManager *TxManager) *CashRepo {
	return &CashRepo{txManager: txManager}
}

var _ cash.Repository = (*CashRepo)(nil)

func (r *CashRepo) Create(ctx context.Context, record *cash.Record) error {
	query, args, err := psql.
		Insert("cash_records").
		Columns(cashColumns...).
		Values(
			record.ID, record.StoreID, record.RecordDate,
			record.Deposit, record.GiftCards, record.Vouchers,
			record.CarryOver, record.MorningCheck, record.Discrepancy, record.Sales,
			record.Status, record.CreatedAt, record.UpdatedAt, record.Version,
		).
		ToSql()
	if err != nil {
		return apperror.NewInternal(err)
	}

	if _, err := r.txManager.GetQuerier(ctx).Exec(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return apperror.NewDuplicate("cash record", "store/date",
				record.StoreID.String()+"/"+types.FormatDay(record.RecordDate))
		}
		return apperror.NewStorage(err)
	}
	return nil
}

func (r *CashRepo) GetByID(ctx context.Context, recordID id.ID) (*cash.Record, error) {
	return r.get(ctx, sq.Eq{"id": recordID}, false, recordID)
}

func (r *CashRepo) GetForUpdate(ctx context.Context, recordID id.ID) (*cash.Record, error) {
	return r.get(ctx, sq.Eq{"id": recordID}, true, recordID)
}

func (r *CashRepo) GetByStoreDate(ctx context.Context, storeID id.ID, date time.Time) (*cash.Record, error) {
	return r.get(ctx, sq.Eq{"store_id": storeID, "record_date": date}, false, storeID)
}

func (r *CashRepo) get(ctx context.Context, where sq.Eq, forUpdate bool, notFoundID any) (*cash.Record, error) {
	builder := psql.
		Select(cashColumns...).
		From("cash_records").
		Where(where)
	if forUpdate {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal(err)
	}

	var record cash.Record
	if err := pgxscan.Get(ctx, r.txManager.GetQuerier(ctx), &record, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("cash record", notFoundID)
		}
		return nil, apperror.NewStorage(err)
	}
	return &record, nil
}

func (r *CashRepo) Update(ctx context.Context, record *cash.Record) error {
	values := StructToMap(record)
	for _, immutable := range []string{"id", "store_id", "record_date", "created_at"} {
		delete(values, immutable)
	}
	values["version"] = record.Version + 1

	query, args, err := psql.
		Update("cash_records").
		SetMap(values).
		Where(sq.Eq{"id": record.ID, "version": record.Version}).
		ToSql()
	if err != nil {
		return apperror.NewInternal(err)
	}

	tag, err := r.txManager.GetQuerier(ctx).Exec(ctx, query, args...)
	if err != nil {
		return apperror.NewStorage(err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewConflict("record was modified concurrently").
			WithDetail("recordId", record.ID)
	}

	record.Version++
	return nil
}
