package main

import (
	"context"
	"os"
	"path"
	"runtime"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/restaurant-revenue-api/infrastructure/database/postgres"
	"github.com/vfg2006/restaurant-revenue-api/infrastructure/migration"
	"github.com/vfg2006/restaurant-revenue-api/infrastructure/repository"
	"github.com/vfg2006/restaurant-revenue-api/internal/api"
	"github.com/vfg2006/restaurant-revenue-api/internal/config"
	"github.com/vfg2006/restaurant-revenue-api/internal/scheduler"
	"github.com/vfg2006/restaurant-revenue-api/internal/usecases/analyzing"
	"github.com/vfg2006/restaurant-revenue-api/internal/usecases/membership"
	"github.com/vfg2006/restaurant-revenue-api/internal/usecases/sales"
	"github.com/vfg2006/restaurant-revenue-api/pkg/log"
	"github.com/vfg2006/restaurant-revenue-api/pkg/metrics"
)

func main() {
	chdirToSource()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	if err := log.Setup(cfg.App.LogLevel); err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		_ = log.Setup(logrus.InfoLevel.String())
	}
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	if cfg.Migration.Enabled {
		if err := migration.Run(pgConn.DB); err != nil {
			logrus.WithError(err).Fatal("Erro ao aplicar migrações")
		}
	}

	revenueRepo := repository.NewRevenueRepository(pgConn)
	membershipRepo := repository.NewMembershipRepository(pgConn)

	recorder := metrics.NewRecorder(prometheus.DefaultRegisterer)
	store := analyzing.NewSnapshotStore()

	// Inicializa o agendador do snapshot de faturamento
	snapshotSyncService := scheduler.NewRevenueSnapshotSyncService(revenueRepo, store, recorder, cfg)

	if err := snapshotSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do snapshot de faturamento")
	} else {
		logrus.Info("Agendador do snapshot de faturamento iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Services{
		Database:   pgConn,
		Analyzer:   analyzing.NewService(store),
		Sales:      sales.NewService(revenueRepo, snapshotSyncService),
		Membership: membership.NewService(membershipRepo),
		Snapshot:   snapshotSyncService,
		Metrics:    recorder,
		Gatherer:   prometheus.DefaultGatherer,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// chdirToSource garante que o .env ao lado do binário em desenvolvimento seja encontrado
func chdirToSource() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	_ = os.Chdir(dir)
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
