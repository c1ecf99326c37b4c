package cashbook

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/simb2b/sim-backoffice-api/infrastructure/integrator/supabase/mocks"
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

func newTestService(t *testing.T) (*Service, *dataset.Store, *mocks.MockStoreClient) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockClient := mocks.NewMockStoreClient(ctrl)
	store := dataset.NewStore(mockClient)
	service := &Service{
		store: store,
		now:   func() time.Time { return time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC) },
	}
	return service, store, mockClient
}

func TestService_CreateTransaction(t *testing.T) {
	service, store, mockClient := newTestService(t)

	mockClient.EXPECT().InsertTransaction(gomock.Any(), gomock.Any(), "u1").Return(nil)

	tx, err := service.CreateTransaction(context.Background(), CreateTransactionInput{
		Type:     domain.DirectionOut,
		Category: domain.CategoryImportExpense,
		Amount:   5_000_000,
		Method:   domain.MethodTransfer,
		Note:     "Nhập lô Vina tháng 3",
	}, "u1")

	require.NoError(t, err)
	assert.NotEmpty(t, tx.ID)
	assert.True(t, strings.HasPrefix(tx.Code, "TX-"))
	assert.Equal(t, "2025-03-15", tx.Date)
	assert.Equal(t, domain.MethodTransfer, tx.Method)

	assert.Len(t, store.Snapshot().Transactions, 1)
}

func TestService_CreateTransaction_MacDinhTienMat(t *testing.T) {
	service, _, mockClient := newTestService(t)

	mockClient.EXPECT().InsertTransaction(gomock.Any(), gomock.Any(), "u1").Return(nil)

	tx, err := service.CreateTransaction(context.Background(), CreateTransactionInput{
		Type:   domain.DirectionIn,
		Amount: 100_000,
	}, "u1")

	require.NoError(t, err)
	assert.Equal(t, domain.MethodCash, tx.Method)
}

func TestService_CreateTransaction_ThieuNguoiDung(t *testing.T) {
	service, store, _ := newTestService(t)

	_, err := service.CreateTransaction(context.Background(), CreateTransactionInput{
		Type:   domain.DirectionIn,
		Amount: 100_000,
	}, "")

	assert.ErrorIs(t, err, ErrMissingUser)
	assert.Empty(t, store.Snapshot().Transactions)
}

func TestService_DeleteTransaction(t *testing.T) {
	service, _, mockClient := newTestService(t)

	mockClient.EXPECT().InsertTransaction(gomock.Any(), gomock.Any(), "u1").Return(nil)
	tx, err := service.CreateTransaction(context.Background(), CreateTransactionInput{
		Type:   domain.DirectionIn,
		Amount: 100_000,
	}, "u1")
	require.NoError(t, err)

	assert.ErrorIs(t, service.DeleteTransaction(context.Background(), "khong-ton-tai"), ErrTransactionNotFound)

	mockClient.EXPECT().DeleteTransaction(gomock.Any(), tx.ID).Return(nil)
	assert.NoError(t, service.DeleteTransaction(context.Background(), tx.ID))
}
