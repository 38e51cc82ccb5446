package repository

import (
	"context"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/restaurant-revenue-api/internal/domain"
)

var revenueRowColumns = []string{"id", "shop", "date", "timeslot", "amount", "transaction_count"}

func TestRevenueRepository_List(t *testing.T) {
	tests := []struct {
		name    string
		filters domain.RevenueFilters
		query   string
		args    []driver.Value
	}{
		{
			name:    "Sem filtros",
			filters: domain.RevenueFilters{},
			query:   `SELECT id, shop, date, timeslot, amount, transaction_count FROM revenue ORDER BY id DESC`,
		},
		{
			name:    "Loja e intervalo de datas",
			filters: domain.RevenueFilters{Shop: "A", DateFrom: "2025-01-01", DateTo: "2025-01-31"},
			query:   `SELECT (.+) FROM revenue WHERE shop = \$1 AND date >= \$2 AND date <= \$3 ORDER BY id DESC`,
			args:    []driver.Value{"A", "2025-01-01", "2025-01-31"},
		},
		{
			name:    "Período",
			filters: domain.RevenueFilters{Timeslot: "早"},
			query:   `SELECT (.+) FROM revenue WHERE timeslot = \$1 ORDER BY id DESC`,
			args:    []driver.Value{"早"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			rows := sqlmock.NewRows(revenueRowColumns).
				AddRow("2", "A", time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC), "晚", "80.50", nil).
				AddRow("1", "A", nil, "早", nil, int64(12))

			expectation := mock.ExpectQuery(tt.query)
			if len(tt.args) > 0 {
				expectation.WithArgs(tt.args...)
			}
			expectation.WillReturnRows(rows)

			repo := NewRevenueRepository(db)
			records, err := repo.List(context.Background(), tt.filters)

			require.NoError(t, err)
			require.Len(t, records, 2)

			assert.Equal(t, "2", records[0].ID)
			assert.Equal(t, "2025-01-20", records[0].Date)
			assert.True(t, records[0].Amount.Valid)
			assert.True(t, decimal.RequireFromString("80.5").Equal(records[0].Amount.Decimal))
			assert.Nil(t, records[0].TransactionCount)

			assert.Equal(t, "", records[1].Date)
			assert.False(t, records[1].Amount.Valid)
			require.NotNil(t, records[1].TransactionCount)
			assert.Equal(t, 12, *records[1].TransactionCount)

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRevenueRepository_List_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT (.+) FROM revenue`).WillReturnError(errors.New("conexão perdida"))

	repo := NewRevenueRepository(db)
	records, err := repo.List(context.Background(), domain.RevenueFilters{})

	assert.Nil(t, records)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "erro ao buscar registros de faturamento")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRevenueRepository_ListLabels(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT DISTINCT shop FROM revenue WHERE shop <> \$1 ORDER BY shop`).
		WithArgs("").
		WillReturnRows(sqlmock.NewRows([]string{"shop"}).AddRow("A").AddRow("B"))
	mock.ExpectQuery(`SELECT DISTINCT timeslot FROM revenue WHERE timeslot <> \$1 ORDER BY timeslot`).
		WithArgs("").
		WillReturnRows(sqlmock.NewRows([]string{"timeslot"}).AddRow("早").AddRow("晚"))

	repo := NewRevenueRepository(db)
	labels, err := repo.ListLabels(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, labels.Shops)
	assert.Equal(t, []string{"早", "晚"}, labels.Timeslots)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRevenueRepository_Create(t *testing.T) {
	count := 3
	record := domain.RevenueRecord{
		ID:               "abc",
		Shop:             "A",
		Date:             "2025-01-15",
		Timeslot:         "早",
		Amount:           decimal.NewNullDecimal(decimal.NewFromInt(150)),
		TransactionCount: &count,
	}

	t.Run("Sucesso", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(`INSERT INTO revenue \(id,shop,date,timeslot,amount,transaction_count\) VALUES \(\$1,\$2,\$3,\$4,\$5,\$6\)`).
			WithArgs("abc", "A", "2025-01-15", "早", "150", int64(3)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := NewRevenueRepository(db)
		assert.NoError(t, repo.Create(context.Background(), record))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Campos ausentes gravados como NULL", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(`INSERT INTO revenue`).
			WithArgs("xyz", "", nil, "", nil, nil).
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := NewRevenueRepository(db)
		assert.NoError(t, repo.Create(context.Background(), domain.RevenueRecord{ID: "xyz"}))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Id duplicado", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(`INSERT INTO revenue`).WillReturnError(&pq.Error{Code: "23505"})

		repo := NewRevenueRepository(db)
		err = repo.Create(context.Background(), record)

		assert.ErrorIs(t, err, ErrDuplicate)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRevenueRepository_Update(t *testing.T) {
	record := domain.RevenueRecord{
		ID:       "abc",
		Shop:     "A",
		Date:     "2025-01-15",
		Timeslot: "晚",
		Amount:   decimal.NewNullDecimal(decimal.NewFromInt(90)),
	}

	tests := []struct {
		name     string
		affected int64
		err      error
	}{
		{name: "Registro atualizado", affected: 1},
		{name: "Registro inexistente", affected: 0, err: ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			mock.ExpectExec(`UPDATE revenue SET shop = \$1, date = \$2, timeslot = \$3, amount = \$4, transaction_count = \$5, updated_at = CURRENT_TIMESTAMP WHERE id = \$6`).
				WithArgs("A", "2025-01-15", "晚", "90", nil, "abc").
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			repo := NewRevenueRepository(db)
			err = repo.Update(context.Background(), record)

			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRevenueRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM revenue WHERE id = \$1`).
		WithArgs("abc").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM revenue WHERE id = \$1`).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewRevenueRepository(db)

	assert.NoError(t, repo.Delete(context.Background(), "abc"))
	assert.ErrorIs(t, repo.Delete(context.Background(), "missing"), ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
