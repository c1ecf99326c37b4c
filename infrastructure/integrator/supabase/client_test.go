package supabase

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/simb2b/sim-backoffice-api/internal/config"
	"github.com/simb2b/sim-backoffice-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	method string
	path   string
	query  string
	body   string
	header http.Header
}

func newTestClients(t *testing.T, status int, response string) (StoreClient, AuthClient, *recordedRequest) {
	recorded := &recordedRequest{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		*recorded = recordedRequest{
			method: r.Method,
			path:   r.URL.Path,
			query:  r.URL.RawQuery,
			body:   string(body),
			header: r.Header.Clone(),
		}
		w.WriteHeader(status)
		w.Write([]byte(response))
	}))
	t.Cleanup(server.Close)

	cfg := &config.Config{
		Supabase: config.Supabase{
			URL:    server.URL,
			APIKey: "service-key",
		},
	}
	return NewStoreClient(cfg), NewAuthClient(cfg), recorded
}

func TestStoreClient_ListSimTypes(t *testing.T) {
	client, _, recorded := newTestClients(t, http.StatusOK,
		`[{"id":"st1","name":"Vina 4G"},{"id":"st2","name":"Mobi 5G"}]`)

	types, err := client.ListSimTypes(context.Background())
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, recorded.method)
	assert.Equal(t, "/rest/v1/sim_types", recorded.path)
	assert.Equal(t, "select=%2A", recorded.query)
	assert.Equal(t, "service-key", recorded.header.Get("apikey"))
	assert.Equal(t, "Bearer service-key", recorded.header.Get("Authorization"))

	require.Len(t, types, 2)
	assert.Equal(t, domain.SimType{ID: "st1", Name: "Vina 4G"}, types[0])
}

func TestStoreClient_InsertTransaction_GanNguoiDung(t *testing.T) {
	client, _, recorded := newTestClients(t, http.StatusCreated, "")

	err := client.InsertTransaction(context.Background(), domain.Transaction{
		ID:     "t1",
		Code:   "TX-AAAA0001",
		Date:   "2025-03-15",
		Type:   domain.DirectionIn,
		Amount: 100_000,
		Method: domain.MethodCash,
	}, "u1")
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, recorded.method)
	assert.Equal(t, "/rest/v1/transactions", recorded.path)
	assert.Equal(t, "return=minimal", recorded.header.Get("Prefer"))
	assert.Contains(t, recorded.body, `"user_id":"u1"`)
	// Không gắn đơn thì sale_order_id phải là null, không phải chuỗi rỗng
	assert.Contains(t, recorded.body, `"sale_order_id":null`)
}

func TestStoreClient_UpdateOrderDueDate(t *testing.T) {
	client, _, recorded := newTestClients(t, http.StatusNoContent, "")

	err := client.UpdateOrderDueDate(context.Background(), "o1", "2025-04-05", 2)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPatch, recorded.method)
	assert.Equal(t, "/rest/v1/sale_orders", recorded.path)
	assert.Equal(t, "id=eq.o1", recorded.query)
	assert.Contains(t, recorded.body, `"due_date":"2025-04-05"`)
	assert.Contains(t, recorded.body, `"due_date_changes":2`)
}

func TestStoreClient_DeleteCustomer(t *testing.T) {
	client, _, recorded := newTestClients(t, http.StatusNoContent, "")

	require.NoError(t, client.DeleteCustomer(context.Background(), "c1"))

	assert.Equal(t, http.MethodDelete, recorded.method)
	assert.Equal(t, "/rest/v1/customers", recorded.path)
	assert.Equal(t, "id=eq.c1", recorded.query)
}

func TestStoreClient_LoiHTTP(t *testing.T) {
	client, _, _ := newTestClients(t, http.StatusUnauthorized, `{"message":"JWT expired"}`)

	_, err := client.ListSimTypes(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), tableSimTypes)
}

func TestAuthClient_SignIn(t *testing.T) {
	_, client, recorded := newTestClients(t, http.StatusOK,
		`{"access_token":"tk","refresh_token":"rf","token_type":"bearer","expires_in":3600,"user":{"id":"u1","email":"chu@simb2b.vn"}}`)

	session, err := client.SignIn(context.Background(), "chu@simb2b.vn", "matkhau")
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, recorded.method)
	assert.Equal(t, "/auth/v1/token", recorded.path)
	assert.Equal(t, "grant_type=password", recorded.query)

	assert.Equal(t, "tk", session.AccessToken)
	assert.Equal(t, "u1", session.User.ID)
}

func TestAuthClient_GetUser_DungTokenNguoiDung(t *testing.T) {
	_, client, recorded := newTestClients(t, http.StatusOK,
		`{"id":"u1","email":"chu@simb2b.vn"}`)

	user, err := client.GetUser(context.Background(), "user-token")
	require.NoError(t, err)

	assert.Equal(t, "/auth/v1/user", recorded.path)
	// GetUser dùng token của người dùng, không dùng service key
	assert.Equal(t, "Bearer user-token", recorded.header.Get("Authorization"))
	assert.Equal(t, "u1", user.ID)
}

func TestAuthClient_SignIn_Loi(t *testing.T) {
	_, client, _ := newTestClients(t, http.StatusBadRequest, `{"error":"invalid_grant"}`)

	_, err := client.SignIn(context.Background(), "chu@simb2b.vn", "sai")
	assert.Error(t, err)
}
