package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/simb2b/sim-backoffice-api/infrastructure/integrator/supabase"
	"github.com/simb2b/sim-backoffice-api/internal/api"
	"github.com/simb2b/sim-backoffice-api/internal/config"
	"github.com/simb2b/sim-backoffice-api/internal/scheduler"
	"github.com/simb2b/sim-backoffice-api/internal/usecases/authenticating"
	"github.com/simb2b/sim-backoffice-api/internal/usecases/cashbook"
	"github.com/simb2b/sim-backoffice-api/internal/usecases/dataset"
	"github.com/simb2b/sim-backoffice-api/internal/usecases/ordering"
	"github.com/simb2b/sim-backoffice-api/internal/usecases/reporting"
	"github.com/simb2b/sim-backoffice-api/internal/usecases/stats"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Mức log không hợp lệ: %s, dùng 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	storeClient := supabase.NewStoreClient(cfg)
	authClient := supabase.NewAuthClient(cfg)

	store := dataset.NewStore(storeClient)
	authenticator := authenticating.NewService(authClient, cfg)

	// Vòng đời cache gắn với sự kiện phiên: đăng nhập / làm mới token thì
	// nạp lại, đăng xuất thì xóa sạch
	authenticator.Subscribe(func(ctx context.Context, event authenticating.AuthEvent) {
		switch event {
		case authenticating.EventSignedIn, authenticating.EventTokenRefreshed:
			if err := store.Reload(ctx); err != nil {
				logrus.WithError(err).Error("Không nạp được dữ liệu sau khi đăng nhập")
			}
		case authenticating.EventSignedOut:
			store.Clear()
		}
	})

	statsService := stats.NewService(store)
	orderService := ordering.NewService(store)
	cashbookService := cashbook.NewService(store)
	reportService := reporting.NewService(store)

	refreshService := scheduler.NewDatasetRefreshService(store, cfg)
	if err := refreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Không khởi động được lịch tải lại dữ liệu")
	}

	server, err := api.New(
		cfg,
		store,
		authenticator,
		statsService,
		orderService,
		cashbookService,
		reportService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
