package scheduler

import (
	"context"
	"testing"

	"github.com/simb2b/sim-backoffice-api/infrastructure/integrator/supabase/mocks"
	"github.com/simb2b/sim-backoffice-api/internal/config"
	"github.com/simb2b/sim-backoffice-api/internal/domain"
	"github.com/simb2b/sim-backoffice-api/internal/usecases/dataset"
	"github.com/simb2b/sim-backoffice-api/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	log.SetupTestLogger()
}

func expectFullReload(m *mocks.MockStoreClient, simTypes []domain.SimType) {
	m.EXPECT().ListSimTypes(gomock.Any()).Return(simTypes, nil)
	m.EXPECT().ListPackages(gomock.Any()).Return(nil, nil)
	m.EXPECT().ListCustomers(gomock.Any()).Return(nil, nil)
	m.EXPECT().ListOrders(gomock.Any()).Return(nil, nil)
	m.EXPECT().ListTransactions(gomock.Any()).Return(nil, nil)
	m.EXPECT().ListDueDateLogs(gomock.Any()).Return(nil, nil)
}

func TestDatasetRefreshService_Refresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockStoreClient(ctrl)
	store := dataset.NewStore(mockClient)

	// Nạp lần đầu như khi đăng nhập
	expectFullReload(mockClient, []domain.SimType{{ID: "st1", Name: "Cũ"}})
	require.NoError(t, store.Reload(context.Background()))

	service := &DatasetRefreshService{
		config: DatasetRefreshConfig{CronSchedule: "0 * * * *", Enabled: true},
		store:  store,
	}

	expectFullReload(mockClient, []domain.SimType{{ID: "st1", Name: "Mới"}})
	service.refresh(context.Background())

	snap := store.Snapshot()
	require.Len(t, snap.SimTypes, 1)
	assert.Equal(t, "Mới", snap.SimTypes[0].Name)
	assert.False(t, service.lastRefreshCompletedAt.IsZero())
}

func TestDatasetRefreshService_BoQuaKhiChuaDangNhap(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Không expect gọi nào tới kho ngoài
	mockClient := mocks.NewMockStoreClient(ctrl)
	store := dataset.NewStore(mockClient)

	service := &DatasetRefreshService{
		config: DatasetRefreshConfig{CronSchedule: "0 * * * *", Enabled: true},
		store:  store,
	}
	service.refresh(context.Background())

	assert.False(t, store.Loaded())
}

func TestDatasetRefreshService_Start_TatTheoCauHinh(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := dataset.NewStore(mocks.NewMockStoreClient(ctrl))
	service := NewDatasetRefreshService(store, &config.Config{
		DatasetRefresh: config.DatasetRefresh{CronSchedule: "0 * * * *", Enabled: false},
	})

	assert.NoError(t, service.Start(context.Background()))
}
