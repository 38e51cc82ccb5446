package main

import (
	"context"
	"database/sql"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/restaurant-revenue-api/infrastructure/database/postgres"
	"github.com/vfg2006/restaurant-revenue-api/infrastructure/migration"
	"github.com/vfg2006/restaurant-revenue-api/internal/config"
	"github.com/vfg2006/restaurant-revenue-api/pkg/utils"
)

type RevenueSeed struct {
	Shop             string
	Date             string
	Timeslot         string
	Amount           string
	TransactionCount int
}

type MembershipSeed struct {
	Shop                string
	Date                string
	RechargeAmount      string
	RechargeConsumption string
}

var (
	seedShops     = []string{"旗舰店", "中山店", "万达店"}
	seedTimeslots = []string{"早", "午", "晚"}
)

// buildRevenueSeed gera registros diários determinísticos para os meses informados
func buildRevenueSeed(start time.Time, months int) []RevenueSeed {
	rows := make([]RevenueSeed, 0)
	end := start.AddDate(0, months, 0)

	for day := start; day.Before(end); day = day.AddDate(0, 0, 7) {
		for shopIdx, shop := range seedShops {
			for slotIdx, slot := range seedTimeslots {
				base := int64(800 + shopIdx*250 + slotIdx*120 + day.YearDay()*3)
				rows = append(rows, RevenueSeed{
					Shop:             shop,
					Date:             day.Format(time.DateOnly),
					Timeslot:         slot,
					Amount:           decimal.New(base*100+int64(day.Day()), -2).String(),
					TransactionCount: int(base / 40),
				})
			}
		}
	}

	return rows
}

func buildMembershipSeed(start time.Time, months int) []MembershipSeed {
	rows := make([]MembershipSeed, 0, months*len(seedShops))

	for m := 0; m < months; m++ {
		day := start.AddDate(0, m, 0)
		for shopIdx, shop := range seedShops {
			amount := decimal.NewFromInt(int64(5000 + shopIdx*1500 + m*300))
			rows = append(rows, MembershipSeed{
				Shop:                shop,
				Date:                day.Format(time.DateOnly),
				RechargeAmount:      amount.String(),
				RechargeConsumption: amount.Mul(decimal.RequireFromString("0.62")).Round(2).String(),
			})
		}
	}

	return rows
}

func insertRevenue(tx *sql.Tx, rows []RevenueSeed) (int, error) {
	logrus.Infof("Iniciando inserção de %d registros de faturamento...", len(rows))

	stmt, err := tx.Prepare(`INSERT INTO revenue (id, shop, date, timeslot, amount, transaction_count) VALUES ($1, $2, $3, $4, $5, $6)`)
	if err != nil {
		return 0, errors.Wrap(err, "erro ao preparar statement para revenue")
	}
	defer stmt.Close()

	inserted := 0
	for i, row := range rows {
		id, err := utils.GenerateID()
		if err != nil {
			return inserted, errors.Wrap(err, "erro ao gerar id")
		}

		if _, err := stmt.Exec(id, row.Shop, row.Date, row.Timeslot, row.Amount, row.TransactionCount); err != nil {
			return inserted, errors.Wrapf(err, "erro ao inserir faturamento [%d/%d] %s %s", i+1, len(rows), row.Shop, row.Date)
		}
		inserted++

		if i > 0 && i%100 == 0 {
			logrus.Debugf("Progresso: %d/%d registros processados", i+1, len(rows))
		}
	}

	return inserted, nil
}

func insertMembership(tx *sql.Tx, rows []MembershipSeed) (int, error) {
	logrus.Infof("Iniciando inserção de %d recargas...", len(rows))

	stmt, err := tx.Prepare(`INSERT INTO membership_recharge (id, shop, date, recharge_amount, recharge_consumption) VALUES ($1, $2, $3, $4, $5)`)
	if err != nil {
		return 0, errors.Wrap(err, "erro ao preparar statement para membership_recharge")
	}
	defer stmt.Close()

	inserted := 0
	for i, row := range rows {
		id, err := utils.GenerateID()
		if err != nil {
			return inserted, errors.Wrap(err, "erro ao gerar id")
		}

		if _, err := stmt.Exec(id, row.Shop, row.Date, row.RechargeAmount, row.RechargeConsumption); err != nil {
			return inserted, errors.Wrapf(err, "erro ao inserir recarga [%d/%d] %s %s", i+1, len(rows), row.Shop, row.Date)
		}
		inserted++
	}

	return inserted, nil
}

// seed grava os dados de demonstração em uma única transação
func seed(ctx context.Context, conn postgres.Conn, start time.Time, months int) error {
	return conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		revenueCount, err := insertRevenue(tx, buildRevenueSeed(start, months))
		if err != nil {
			return err
		}

		membershipCount, err := insertMembership(tx, buildMembershipSeed(start, months))
		if err != nil {
			return err
		}

		logrus.WithFields(logrus.Fields{
			"revenue":    revenueCount,
			"membership": membershipCount,
		}).Info("Registros inseridos")
		return nil
	})
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: time.RFC3339})
	logrus.Info("Iniciando carga de dados de demonstração...")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar configuração")
	}

	ctx := context.Background()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao banco de dados")
	}
	defer conn.Close()

	if err := migration.Run(conn.DB); err != nil {
		logrus.WithError(err).Fatal("Erro ao aplicar migrações")
	}

	startTime := time.Now()
	start := time.Date(startTime.Year()-1, startTime.Month(), 1, 0, 0, 0, 0, time.UTC)

	if err := seed(ctx, conn, start, 12); err != nil {
		logrus.WithError(err).Fatal("Erro na carga de dados, transação revertida")
	}

	logrus.Infof("Carga concluída em %v!", time.Since(startTime))
}
