// Package scheduler contém os serviços de agendamento para sincronização de dados
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/restaurant-revenue-api/infrastructure/repository"
	"github.com/vfg2006/restaurant-revenue-api/internal/config"
	"github.com/vfg2006/restaurant-revenue-api/internal/domain"
	"github.com/vfg2006/restaurant-revenue-api/internal/usecases/analyzing"
	"github.com/vfg2006/restaurant-revenue-api/pkg/metrics"
	"golang.org/x/sync/errgroup"
)

type RevenueSnapshotSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
	FetchTimeout time.Duration
}

// RevenueSnapshotSyncService busca o conjunto completo de registros de
// faturamento e o publica no SnapshotStore. Buscas podem se sobrepor: cada uma
// recebe uma geração e apenas a mais nova é aplicada.
type RevenueSnapshotSyncService struct {
	scheduler   *gocron.Scheduler
	revenueRepo repository.RevenueRepository
	store       *analyzing.SnapshotStore
	metrics     *metrics.Recorder
	config      RevenueSnapshotSyncConfig

	statusMutex         sync.Mutex
	inFlight            int
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
}

func NewRevenueSnapshotSyncService(
	revenueRepo repository.RevenueRepository,
	store *analyzing.SnapshotStore,
	recorder *metrics.Recorder,
	cfg *config.Config,
) *RevenueSnapshotSyncService {
	syncConfig := RevenueSnapshotSyncConfig{
		CronSchedule: cfg.RevenueSnapshot.CronSchedule, // Default: a cada 5 minutos
		SyncEnabled:  cfg.RevenueSnapshot.Enabled,
		FetchTimeout: cfg.RevenueSnapshot.FetchTimeout,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"fetch_timeout": syncConfig.FetchTimeout,
	}).Info("Configuração do agendador do snapshot de faturamento carregada")

	return &RevenueSnapshotSyncService{
		scheduler:   scheduler,
		revenueRepo: revenueRepo,
		store:       store,
		metrics:     recorder,
		config:      syncConfig,
	}
}

// Start faz a carga inicial do snapshot e agenda as atualizações periódicas.
// Falha na carga inicial não impede a subida: o snapshot fica vazio com o erro registrado.
func (s *RevenueSnapshotSyncService) Start(ctx context.Context) error {
	if err := s.Refresh(ctx); err != nil {
		logrus.WithError(err).Error("Erro na carga inicial do snapshot de faturamento")
	}

	if !s.config.SyncEnabled {
		logrus.Info("Cron de atualização do snapshot de faturamento desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de atualização do snapshot de faturamento")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.Refresh(ctx); err != nil {
			logrus.WithError(err).Error("Erro na atualização do snapshot de faturamento")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização do snapshot de faturamento: %w", err)
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron do snapshot de faturamento")
		s.scheduler.Stop()
	}()

	return nil
}

// Refresh busca registros e rótulos em paralelo e tenta aplicar o resultado.
// Um resultado superado por uma busca mais nova é descartado. Não há novas tentativas.
func (s *RevenueSnapshotSyncService) Refresh(ctx context.Context) error {
	generation := s.store.Begin()
	startedAt := time.Now()
	s.markStarted(startedAt)

	logger := logrus.WithField("generation", generation)
	logger.Debug("Iniciando busca do snapshot de faturamento")

	records, labels, fetchErr := s.fetch(ctx)

	applied := s.store.Complete(generation, records, labels, fetchErr)
	duration := time.Since(startedAt)

	outcome := metrics.OutcomeApplied
	switch {
	case !applied:
		outcome = metrics.OutcomeStale
	case fetchErr != nil:
		outcome = metrics.OutcomeFailed
	}

	s.metrics.ObserveSnapshotRefresh(outcome, duration)
	if applied {
		s.metrics.SetSnapshotRecords(len(s.store.Current().Records))
	}
	s.markCompleted(applied, fetchErr)

	logger = logger.WithFields(logrus.Fields{
		"outcome":     outcome,
		"duration_ms": duration.Milliseconds(),
	})

	if !applied {
		logger.Warn("Busca do snapshot de faturamento superada por uma mais recente, resultado descartado")
		return nil
	}

	if fetchErr != nil {
		logger.WithError(fetchErr).Error("Erro ao buscar snapshot de faturamento")
		return fetchErr
	}

	logger.WithField("records", len(records)).Info("Snapshot de faturamento atualizado")

	return nil
}

func (s *RevenueSnapshotSyncService) fetch(ctx context.Context) ([]domain.RevenueRecord, domain.RevenueLabels, error) {
	if s.config.FetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.FetchTimeout)
		defer cancel()
	}

	var (
		records []domain.RevenueRecord
		labels  domain.RevenueLabels
	)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		var err error
		records, err = s.revenueRepo.List(groupCtx, domain.RevenueFilters{})
		return errors.Wrap(err, "erro ao buscar registros de faturamento")
	})

	group.Go(func() error {
		var err error
		labels, err = s.revenueRepo.ListLabels(groupCtx)
		return errors.Wrap(err, "erro ao buscar lojas e períodos")
	})

	if err := group.Wait(); err != nil {
		return nil, domain.RevenueLabels{}, err
	}

	return records, labels, nil
}

// TriggerManualSync inicia uma atualização em segundo plano, mesmo com outra busca em andamento
func (s *RevenueSnapshotSyncService) TriggerManualSync() {
	logrus.Info("Iniciando atualização manual do snapshot de faturamento")

	go func() {
		if err := s.Refresh(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro na atualização manual do snapshot de faturamento")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *RevenueSnapshotSyncService) GetStatus() map[string]any {
	snapshot := s.store.Current()

	s.statusMutex.Lock()
	defer s.statusMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"in_flight":              s.inFlight,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_error":        s.lastSyncError,
		"generation":             snapshot.Generation,
		"records":                len(snapshot.Records),
		"fetched_at":             snapshot.FetchedAt,
	}
}

func (s *RevenueSnapshotSyncService) markStarted(startedAt time.Time) {
	s.statusMutex.Lock()
	defer s.statusMutex.Unlock()

	s.inFlight++
	s.lastSyncStartedAt = startedAt
}

func (s *RevenueSnapshotSyncService) markCompleted(applied bool, err error) {
	s.statusMutex.Lock()
	defer s.statusMutex.Unlock()

	s.inFlight--
	if !applied {
		return
	}

	s.lastSyncCompletedAt = time.Now()
	s.lastSyncError = ""
	if err != nil {
		s.lastSyncError = err.Error()
	}
}
