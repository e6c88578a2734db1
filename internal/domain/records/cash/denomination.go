// Package cash provides the daily cash-drawer record and the denomination
// arithmetic behind its totals and discrepancy.
package cash

// Face values in currency minor units. The conversion tables are fixed:
// totals are always the dot product of counts and these values, nothing else.
const (
	FaceBill50000 int64 = 50000
	FaceBill10000 int64 = 10000
	FaceBill5000  int64 = 5000
	FaceBill2000  int64 = 2000
	FaceBill1000  int64 = 1000
	FaceCoin500   int64 = 500
	FaceCoin100   int64 = 100
)

// DepositCount holds the end-of-day deposit count. The deposit group is the
// only one that includes the 50000 bill; the till kept for the next morning
// never carries it.
type DepositCount struct {
	Bill50000 int `json:"bill50000"`
	Bill10000 int `json:"bill10000"`
	Bill5000  int `json:"bill5000"`
	Bill2000  int `json:"bill2000"`
	Bill1000  int `json:"bill1000"`
	Coin500   int `json:"coin500"`
	Coin100   int `json:"coin100"`

	// Total is materialized on every edit, never computed on read.
	Total int64 `json:"total"`
}

// Recalculate recomputes the materialized total from the counts.
func (d *DepositCount) Recalculate() {
	d.Total = int64(d.Bill50000)*FaceBill50000 +
		int64(d.Bill10000)*FaceBill10000 +
		int64(d.Bill5000)*FaceBill5000 +
		int64(d.Bill2000)*FaceBill2000 +
		int64(d.Bill1000)*FaceBill1000 +
		int64(d.Coin500)*FaceCoin500 +
		int64(d.Coin100)*FaceCoin100
}

// TillCount holds a carried-over till or its next-morning recount.
// Excludes the 50000 bill by definition of the carry-over group.
type TillCount struct {
	Bill10000 int `json:"bill10000"`
	Bill5000  int `json:"bill5000"`
	Bill2000  int `json:"bill2000"`
	Bill1000  int `json:"bill1000"`
	Coin500   int `json:"coin500"`
	Coin100   int `json:"coin100"`

	Total int64 `json:"total"`
}

// Recalculate recomputes the materialized total from the counts.
func (t *TillCount) Recalculate() {
	t.Total = int64(t.Bill10000)*FaceBill10000 +
		int64(t.Bill5000)*FaceBill5000 +
		int64(t.Bill2000)*FaceBill2000 +
		int64(t.Bill1000)*FaceBill1000 +
		int64(t.Coin500)*FaceCoin500 +
		int64(t.Coin100)*FaceCoin100
}
