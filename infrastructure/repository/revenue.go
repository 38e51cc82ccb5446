// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/restaurant-revenue-api/infrastructure/database/postgres"
	"github.com/vfg2006/restaurant-revenue-api/internal/domain"
)

const (
	revenueTable = "revenue"
)

var revenueColumns = []string{
	"id",
	"shop",
	"date",
	"timeslot",
	"amount",
	"transaction_count",
}

type RevenueRepository interface {
	List(ctx context.Context, filters domain.RevenueFilters) ([]domain.RevenueRecord, error)
	ListLabels(ctx context.Context) (domain.RevenueLabels, error)
	Create(ctx context.Context, record domain.RevenueRecord) error
	Update(ctx context.Context, record domain.RevenueRecord) error
	Delete(ctx context.Context, id string) error
}

type revenueRepository struct {
	conn postgres.Queryer
}

func NewRevenueRepository(conn postgres.Queryer) RevenueRepository {
	return &revenueRepository{
		conn: conn,
	}
}

// List retorna os registros de faturamento, do id mais recente para o mais antigo.
// Filtros vazios não restringem a consulta.
func (r *revenueRepository) List(ctx context.Context, filters domain.RevenueFilters) ([]domain.RevenueRecord, error) {
	queryBuilder := squirrel.
		Select(revenueColumns...).
		From(revenueTable).
		OrderBy("id DESC").
		PlaceholderFormat(squirrel.Dollar)

	if filters.Shop != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"shop": filters.Shop})
	}
	if filters.Timeslot != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"timeslot": filters.Timeslot})
	}
	if filters.DateFrom != "" {
		queryBuilder = queryBuilder.Where(squirrel.GtOrEq{"date": filters.DateFrom})
	}
	if filters.DateTo != "" {
		queryBuilder = queryBuilder.Where(squirrel.LtOrEq{"date": filters.DateTo})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar registros de faturamento")
	}
	defer rows.Close()

	records := make([]domain.RevenueRecord, 0)
	for rows.Next() {
		record, err := r.scanRecord(rows)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao escanear registro de faturamento")
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return records, nil
}

// ListLabels retorna as lojas e períodos distintos, ignorando valores vazios
func (r *revenueRepository) ListLabels(ctx context.Context) (domain.RevenueLabels, error) {
	shops, err := r.distinct(ctx, "shop")
	if err != nil {
		return domain.RevenueLabels{}, err
	}

	timeslots, err := r.distinct(ctx, "timeslot")
	if err != nil {
		return domain.RevenueLabels{}, err
	}

	return domain.RevenueLabels{
		Shops:     shops,
		Timeslots: timeslots,
	}, nil
}

func (r *revenueRepository) distinct(ctx context.Context, column string) ([]string, error) {
	query, args, err := squirrel.
		Select(column).
		Distinct().
		From(revenueTable).
		Where(squirrel.NotEq{column: ""}).
		OrderBy(column).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao buscar valores distintos de %s", column)
	}
	defer rows.Close()

	values := make([]string, 0)
	for rows.Next() {
		var value string
		if err := rows.Scan(&value); err != nil {
			return nil, errors.Wrapf(err, "erro ao escanear %s", column)
		}
		values = append(values, value)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return values, nil
}

func (r *revenueRepository) Create(ctx context.Context, record domain.RevenueRecord) error {
	query, args, err := squirrel.
		Insert(revenueTable).
		Columns(revenueColumns...).
		Values(
			record.ID,
			record.Shop,
			nullableDate(record.Date),
			record.Timeslot,
			record.Amount,
			nullableInt(record.TransactionCount),
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir query de inserção")
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return errors.Wrapf(ErrDuplicate, "faturamento %s", record.ID)
		}
		return errors.Wrap(err, "erro ao inserir registro de faturamento")
	}

	return nil
}

func (r *revenueRepository) Update(ctx context.Context, record domain.RevenueRecord) error {
	query, args, err := squirrel.
		Update(revenueTable).
		Set("shop", record.Shop).
		Set("date", nullableDate(record.Date)).
		Set("timeslot", record.Timeslot).
		Set("amount", record.Amount).
		Set("transaction_count", nullableInt(record.TransactionCount)).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": record.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir query de atualização")
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return errors.Wrap(err, "erro ao atualizar registro de faturamento")
	}

	return checkAffected(result, record.ID)
}

func (r *revenueRepository) Delete(ctx context.Context, id string) error {
	query, args, err := squirrel.
		Delete(revenueTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir query de remoção")
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return errors.Wrap(err, "erro ao remover registro de faturamento")
	}

	return checkAffected(result, id)
}

func (r *revenueRepository) scanRecord(rows *sql.Rows) (domain.RevenueRecord, error) {
	var (
		record           domain.RevenueRecord
		date             sql.NullTime
		transactionCount sql.NullInt64
	)

	err := rows.Scan(
		&record.ID,
		&record.Shop,
		&date,
		&record.Timeslot,
		&record.Amount,
		&transactionCount,
	)
	if err != nil {
		return domain.RevenueRecord{}, err
	}

	record.Date = dateString(date)
	record.TransactionCount = intPointer(transactionCount)

	return record, nil
}

func checkAffected(result sql.Result, id string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "erro ao obter linhas afetadas")
	}

	if affected == 0 {
		return errors.Wrapf(ErrNotFound, "id %s", id)
	}

	return nil
}
