package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/restaurant-revenue-api/internal/api/handler"
	"github.com/vfg2006/restaurant-revenue-api/internal/api/handler/router"
	"github.com/vfg2006/restaurant-revenue-api/internal/config"
	"github.com/vfg2006/restaurant-revenue-api/internal/usecases/analyzing"
	"github.com/vfg2006/restaurant-revenue-api/internal/usecases/membership"
	"github.com/vfg2006/restaurant-revenue-api/internal/usecases/sales"
	"github.com/vfg2006/restaurant-revenue-api/pkg/metrics"
	"github.com/vfg2006/restaurant-revenue-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

// Services reúne as dependências expostas pelas rotas da API
type Services struct {
	Database   handler.Pinger
	Analyzer   analyzing.Analyzer
	Sales      sales.SalesService
	Membership membership.MembershipService
	Snapshot   handler.SnapshotSyncer
	Metrics    *metrics.Recorder
	Gatherer   prometheus.Gatherer
}

func New(config *config.Config, services Services) (*Server, error) {
	rt := router.New(
		router.WithRouteMiddleware(func(route router.Route) func(http.Handler) http.Handler {
			return middleware.Metrics(services.Metrics, route.Path)
		}),
		router.WithRouteMiddleware(func(route router.Route) func(http.Handler) http.Handler {
			return middleware.LoggingMiddleware(route.Path)
		}),
		router.WithRouteMiddleware(func(route router.Route) func(http.Handler) http.Handler {
			return middleware.LogPanicMiddleware(route.Path)
		}),
		router.WithRoutes(handler.Healthcheck(services.Database)...),
		router.WithRoutes(handler.Metrics(promhttp.HandlerFor(services.Gatherer, promhttp.HandlerOpts{}))...),
		router.WithRoutes(handler.Sales(services.Analyzer, services.Sales)...),
		router.WithRoutes(handler.Membership(services.Membership)...),
		router.WithRoutes(handler.Snapshot(services.Snapshot)...),
	)

	// Log, métricas e recuperação de panic são aplicados por rota
	middlewares := []alice.Constructor{
		middleware.Cors(config.Cors.AllowedOrigins),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// Handler retorna a cadeia completa de middlewares e rotas
func (s Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	// Aguardar pelo sinal ou pelo cancelamento do contexto
	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": shutdownTimeout.String(),
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
