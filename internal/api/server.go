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
	"github.com/sirupsen/logrus"
	"github.com/simb2b/sim-backoffice-api/internal/api/handler"
	"github.com/simb2b/sim-backoffice-api/internal/api/handler/router"
	"github.com/simb2b/sim-backoffice-api/internal/config"
	"github.com/simb2b/sim-backoffice-api/internal/usecases/authenticating"
	"github.com/simb2b/sim-backoffice-api/internal/usecases/cashbook"
	"github.com/simb2b/sim-backoffice-api/internal/usecases/dataset"
	"github.com/simb2b/sim-backoffice-api/internal/usecases/ordering"
	"github.com/simb2b/sim-backoffice-api/internal/usecases/reporting"
	"github.com/simb2b/sim-backoffice-api/internal/usecases/stats"
	"github.com/simb2b/sim-backoffice-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	store *dataset.Store,
	authenticator authenticating.Authenticator,
	statsService stats.StatsBuilder,
	orderService ordering.OrderManager,
	cashbookService cashbook.CashbookManager,
	reportService reporting.Reporter,
) (*Server, error) {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.SimTypes(store)...),
		router.WithRoutes(handler.Inventory(store, statsService)...),
		router.WithRoutes(handler.Customers(store, statsService)...),
		router.WithRoutes(handler.Orders(store, orderService, statsService)...),
		router.WithRoutes(handler.Transactions(store, cashbookService)...),
		router.WithRoutes(handler.Reports(reportService)...),
		router.WithRoutes(handler.Dataset(store)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(authenticator),
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           alice.New(middlewares...).Then(rt),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Server đang khởi động")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Lỗi khi chạy server")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Nhận tín hiệu dừng")
	case <-ctx.Done():
		logrus.Info("Context ứng dụng bị hủy")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Lỗi khi tắt server")
		return err
	}

	logrus.Info("Server đã tắt")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
