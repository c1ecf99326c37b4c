// Package scheduler chạy các tác vụ nền theo lịch cron. Hiện chỉ có một
// tác vụ: tải lại định kỳ cache dữ liệu từ kho ngoài để giảm lệch giữa
// cache và dữ liệu thật sau các lần ghi remote thất bại.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/simb2b/sim-backoffice-api/internal/config"
	"github.com/simb2b/sim-backoffice-api/internal/usecases/dataset"
)

type DatasetRefreshConfig struct {
	CronSchedule string
	Enabled      bool
}

type DatasetRefreshService struct {
	scheduler *gocron.Scheduler
	config    DatasetRefreshConfig
	store     *dataset.Store

	refreshMutex           sync.Mutex
	refreshRunning         bool
	lastRefreshStartedAt   time.Time
	lastRefreshCompletedAt time.Time
}

func NewDatasetRefreshService(store *dataset.Store, appConfig *config.Config) *DatasetRefreshService {
	refreshConfig := DatasetRefreshConfig{
		CronSchedule: appConfig.DatasetRefresh.CronSchedule,
		Enabled:      appConfig.DatasetRefresh.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": refreshConfig.CronSchedule,
		"enabled":       refreshConfig.Enabled,
	}).Info("Đã nạp cấu hình tải lại dữ liệu định kỳ")

	return &DatasetRefreshService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    refreshConfig,
		store:     store,
	}
}

// Start khởi động lịch tải lại. Tắt bằng cấu hình thì không làm gì: mặc
// định ứng dụng chỉ tải khi đăng nhập hoặc khi người dùng yêu cầu.
func (s *DatasetRefreshService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Tải lại dữ liệu định kỳ đang tắt theo cấu hình")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Bắt đầu lịch tải lại dữ liệu")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.refresh(ctx)
	})
	if err != nil {
		return errors.Wrap(err, "không đặt được lịch tải lại dữ liệu")
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Dừng lịch tải lại dữ liệu")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *DatasetRefreshService) refresh(ctx context.Context) {
	s.refreshMutex.Lock()
	if s.refreshRunning {
		s.refreshMutex.Unlock()
		logrus.Info("Đang có lần tải lại chạy dở, bỏ qua")
		return
	}
	s.refreshRunning = true
	s.lastRefreshStartedAt = time.Now()
	s.refreshMutex.Unlock()

	defer func() {
		s.refreshMutex.Lock()
		s.refreshRunning = false
		s.lastRefreshCompletedAt = time.Now()
		s.refreshMutex.Unlock()
	}()

	if !s.store.Loaded() {
		logrus.Info("Chưa có phiên đăng nhập nào nạp dữ liệu, bỏ qua lần tải lại định kỳ")
		return
	}

	if err := s.store.Reload(ctx); err != nil {
		logrus.WithError(err).Error("Tải lại dữ liệu định kỳ thất bại")
		return
	}

	logrus.Info("Tải lại dữ liệu định kỳ hoàn tất")
}
