package main

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/restaurant-revenue-api/infrastructure/database/postgres"
)

var seedStart = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

func TestBuildRevenueSeed(t *testing.T) {
	rows := buildRevenueSeed(seedStart, 1)

	// 1, 8, 15, 22 e 29 de janeiro
	require.Len(t, rows, 5*len(seedShops)*len(seedTimeslots))

	for _, row := range rows {
		assert.Equal(t, "2025-01", row.Date[:7])
		assert.True(t, decimal.RequireFromString(row.Amount).IsPositive())
		assert.Positive(t, row.TransactionCount)
	}

	assert.Equal(t, rows, buildRevenueSeed(seedStart, 1))
}

func TestBuildMembershipSeed(t *testing.T) {
	rows := buildMembershipSeed(seedStart, 2)

	require.Len(t, rows, 2*len(seedShops))
	assert.Equal(t, "2025-02-01", rows[len(rows)-1].Date)
	assert.Equal(t, "5000", rows[0].RechargeAmount)
	assert.Equal(t, "3100", rows[0].RechargeConsumption)
}

func TestSeed(t *testing.T) {
	t.Run("Sucesso grava tudo em uma transação", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		revenuePrepare := mock.ExpectPrepare("INSERT INTO revenue")
		for range buildRevenueSeed(seedStart, 1) {
			revenuePrepare.ExpectExec().WillReturnResult(sqlmock.NewResult(0, 1))
		}
		membershipPrepare := mock.ExpectPrepare("INSERT INTO membership_recharge")
		for range buildMembershipSeed(seedStart, 1) {
			membershipPrepare.ExpectExec().WillReturnResult(sqlmock.NewResult(0, 1))
		}
		mock.ExpectCommit()

		err = seed(context.Background(), &postgres.Connection{DB: db}, seedStart, 1)
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Erro reverte a transação", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectPrepare("INSERT INTO revenue").
			ExpectExec().
			WillReturnError(errors.New("violação de chave"))
		mock.ExpectRollback()

		err = seed(context.Background(), &postgres.Connection{DB: db}, seedStart, 1)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "erro ao inserir faturamento [1/45]")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
