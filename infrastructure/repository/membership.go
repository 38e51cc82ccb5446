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
	membershipTable = "membership_recharge"
)

type MembershipRepository interface {
	List(ctx context.Context, filters domain.MembershipFilters) ([]domain.MembershipRecharge, error)
	Create(ctx context.Context, recharge domain.MembershipRecharge) error
	Update(ctx context.Context, recharge domain.MembershipRecharge) error
	Delete(ctx context.Context, id string) error
}

type membershipRepository struct {
	conn postgres.Queryer
}

func NewMembershipRepository(conn postgres.Queryer) MembershipRepository {
	return &membershipRepository{
		conn: conn,
	}
}

func (r *membershipRepository) List(ctx context.Context, filters domain.MembershipFilters) ([]domain.MembershipRecharge, error) {
	queryBuilder := squirrel.
		Select(
			"id",
			"shop",
			"date",
			"recharge_amount",
			"recharge_consumption",
			"created_at",
			"updated_at",
		).
		From(membershipTable).
		OrderBy("id DESC").
		PlaceholderFormat(squirrel.Dollar)

	if filters.Shop != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"shop": filters.Shop})
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
		return nil, errors.Wrap(err, "erro ao buscar recargas")
	}
	defer rows.Close()

	recharges := make([]domain.MembershipRecharge, 0)
	for rows.Next() {
		var (
			recharge domain.MembershipRecharge
			date     sql.NullTime
		)

		err := rows.Scan(
			&recharge.ID,
			&recharge.Shop,
			&date,
			&recharge.RechargeAmount,
			&recharge.RechargeConsumption,
			&recharge.CreatedAt,
			&recharge.UpdatedAt,
		)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao escanear recarga")
		}

		recharge.Date = dateString(date)
		recharges = append(recharges, recharge)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return recharges, nil
}

func (r *membershipRepository) Create(ctx context.Context, recharge domain.MembershipRecharge) error {
	query, args, err := squirrel.
		Insert(membershipTable).
		Columns("id", "shop", "date", "recharge_amount", "recharge_consumption").
		Values(
			recharge.ID,
			recharge.Shop,
			nullableDate(recharge.Date),
			recharge.RechargeAmount,
			recharge.RechargeConsumption,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir query de inserção")
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return errors.Wrapf(ErrDuplicate, "recarga %s", recharge.ID)
		}
		return errors.Wrap(err, "erro ao inserir recarga")
	}

	return nil
}

func (r *membershipRepository) Update(ctx context.Context, recharge domain.MembershipRecharge) error {
	query, args, err := squirrel.
		Update(membershipTable).
		Set("shop", recharge.Shop).
		Set("date", nullableDate(recharge.Date)).
		Set("recharge_amount", recharge.RechargeAmount).
		Set("recharge_consumption", recharge.RechargeConsumption).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": recharge.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir query de atualização")
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return errors.Wrap(err, "erro ao atualizar recarga")
	}

	return checkAffected(result, recharge.ID)
}

func (r *membershipRepository) Delete(ctx context.Context, id string) error {
	query, args, err := squirrel.
		Delete(membershipTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir query de remoção")
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return errors.Wrap(err, "erro ao remover recarga")
	}

	return checkAffected(result, id)
}
