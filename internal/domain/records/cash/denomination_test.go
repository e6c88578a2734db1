package cash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDepositCountRecalculate(t *testing.T) {
	tests := []struct {
		name  string
		count DepositCount
		want  int64
	}{
		{
			name:  "empty",
			count: DepositCount{},
			want:  0,
		},
		{
			name:  "one of each",
			count: DepositCount{Bill50000: 1, Bill10000: 1, Bill5000: 1, Bill2000: 1, Bill1000: 1, Coin500: 1, Coin100: 1},
			want:  68600,
		},
		{
			name:  "mixed counts",
			count: DepositCount{Bill50000: 3, Bill10000: 12, Bill1000: 7, Coin100: 45},
			want:  3*50000 + 12*10000 + 7*1000 + 45*100,
		},
		{
			name:  "stale total is overwritten",
			count: DepositCount{Bill10000: 2, Total: 999999},
			want:  20000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.count.Recalculate()
			assert.Equal(t, tt.want, tt.count.Total)
		})
	}
}

func TestTillCountRecalculate(t *testing.T) {
	tests := []struct {
		name  string
		count TillCount
		want  int64
	}{
		{
			name:  "empty",
			count: TillCount{},
			want:  0,
		},
		{
			name:  "one of each denomination in the till group",
			count: TillCount{Bill10000: 1, Bill5000: 1, Bill2000: 1, Bill1000: 1, Coin500: 1, Coin100: 1},
			want:  18600,
		},
		{
			name:  "typical morning float",
			count: TillCount{Bill10000: 5, Bill5000: 4, Bill1000: 20, Coin500: 10, Coin100: 50},
			want:  5*10000 + 4*5000 + 20*1000 + 10*500 + 50*100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.count.Recalculate()
			assert.Equal(t, tt.want, tt.count.Total)
		})
	}
}
