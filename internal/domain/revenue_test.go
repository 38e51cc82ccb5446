package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRevenueRecord(t *testing.T) {
	amount := decimal.NewNullDecimal(decimal.NewFromInt(100))
	count := 3

	t.Run("Trunca timestamp para data", func(t *testing.T) {
		record, err := NewRevenueRecord("A-2025-01-早", "A", "2025-01-15T08:30:00Z", "早", amount, &count)
		require.NoError(t, err)
		assert.Equal(t, "2025-01-15", record.Date)
		assert.Equal(t, 3, record.TransactionCountOrZero())
		assert.True(t, record.AmountOrZero().Equal(decimal.NewFromInt(100)))
	})

	t.Run("Sem id é rejeitado", func(t *testing.T) {
		_, err := NewRevenueRecord("", "A", "2025-01-15", "早", amount, nil)
		assert.ErrorIs(t, err, ErrRevenueIDRequired)
	})

	t.Run("Data inválida é rejeitada", func(t *testing.T) {
		_, err := NewRevenueRecord("1", "A", "15/01/2025", "早", amount, nil)
		assert.ErrorIs(t, err, ErrInvalidDate)
	})

	t.Run("Data vazia é aceita e fica fora dos agrupamentos", func(t *testing.T) {
		record, err := NewRevenueRecord("1", "A", "", "早", decimal.NullDecimal{}, nil)
		require.NoError(t, err)
		_, ok := record.MonthKey()
		assert.False(t, ok)
		assert.True(t, record.AmountOrZero().IsZero())
		assert.Equal(t, 0, record.TransactionCountOrZero())
	})
}

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{name: "Data simples", input: "2025-02-10", expected: "2025-02-10"},
		{name: "Timestamp", input: "2025-02-10 13:45:00+08", expected: "2025-02-10"},
		{name: "Vazia", input: "", expected: ""},
		{name: "Curta demais", input: "2025-2-1", wantErr: true},
		{name: "Dia inexistente", input: "2025-02-30", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := NormalizeDate(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDate)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}
