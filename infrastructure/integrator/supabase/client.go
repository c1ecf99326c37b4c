// Package supabase là adapter sang kho dữ liệu dạng hàng và dịch vụ auth
// bên ngoài. Adapter chỉ dịch tên trường (snake_case ↔ model trong bộ nhớ)
// và phát các lệnh đọc/ghi, không chứa nghiệp vụ.
package supabase

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/simb2b/sim-backoffice-api/internal/config"
	"github.com/simb2b/sim-backoffice-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// StoreClient là giao diện kho dữ liệu dạng hàng: đọc cả bảng, thêm một
// bản ghi với ID do client cấp, cập nhật một phần theo ID, xóa theo ID.
type StoreClient interface {
	ListSimTypes(ctx context.Context) ([]domain.SimType, error)
	InsertSimType(ctx context.Context, t domain.SimType) error
	DeleteSimType(ctx context.Context, id string) error

	ListPackages(ctx context.Context) ([]domain.SimPackage, error)
	InsertPackage(ctx context.Context, pkg domain.SimPackage) error
	DeletePackage(ctx context.Context, id string) error

	ListCustomers(ctx context.Context) ([]domain.Customer, error)
	InsertCustomer(ctx context.Context, c domain.Customer) error
	UpdateCustomer(ctx context.Context, c domain.Customer) error
	UpdateCustomerTags(ctx context.Context, id string, tags []string) error
	DeleteCustomer(ctx context.Context, id string) error

	ListOrders(ctx context.Context) ([]domain.SaleOrder, error)
	InsertOrder(ctx context.Context, o domain.SaleOrder) error
	UpdateOrderDueDate(ctx context.Context, id string, dueDate string, changes int) error
	DeleteOrder(ctx context.Context, id string) error

	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
	InsertTransaction(ctx context.Context, tx domain.Transaction, userID string) error
	DeleteTransaction(ctx context.Context, id string) error

	ListDueDateLogs(ctx context.Context) ([]domain.DueDateLog, error)
	InsertDueDateLog(ctx context.Context, l domain.DueDateLog) error
}

// AuthClient là giao diện dịch vụ auth bên ngoài
type AuthClient interface {
	SignIn(ctx context.Context, email, password string) (*domain.Session, error)
	SignUp(ctx context.Context, email, password string) (*domain.Session, error)
	SignOut(ctx context.Context, accessToken string) error
	Refresh(ctx context.Context, refreshToken string) (*domain.Session, error)
	GetUser(ctx context.Context, accessToken string) (*domain.AuthUser, error)
}

// restClient giữ phần HTTP chung của hai client
type restClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

type storeClient struct {
	rest *restClient
}

func newRestClient(cfg *config.Config) *restClient {
	return &restClient{
		baseURL: cfg.Supabase.URL,
		apiKey:  cfg.Supabase.APIKey,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// NewStoreClient tạo client kho dữ liệu dạng hàng
func NewStoreClient(cfg *config.Config) StoreClient {
	return &storeClient{rest: newRestClient(cfg)}
}

// newJSONRequest dựng request với body JSON (nếu có)
func newJSONRequest(ctx context.Context, method, reqURL string, body any) (*http.Request, error) {
	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, errors.Wrap(err, "mã hóa body request")
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return nil, errors.Wrap(err, "tạo request")
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return req, nil
}

// send phát request và giải mã body JSON vào into nếu có
func (c *restClient) send(req *http.Request, into any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "gọi %s %s", req.Method, req.URL.Path)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "đọc body response")
	}

	if resp.StatusCode >= http.StatusMultipleChoices {
		return errors.Errorf("kho dữ liệu trả về status %d cho %s %s: %s",
			resp.StatusCode, req.Method, req.URL.Path, string(respBody))
	}

	if into != nil {
		if err := json.Unmarshal(respBody, into); err != nil {
			return errors.Wrap(err, "giải mã response JSON")
		}
	}

	return nil
}

// do phát một request tới kho dữ liệu dưới danh nghĩa service key
func (c *restClient) do(ctx context.Context, method, path string, query url.Values, body any, into any) error {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	req, err := newJSONRequest(ctx, method, reqURL, body)
	if err != nil {
		return err
	}

	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if method != http.MethodGet {
		// không cần bản ghi trả về, giảm payload
		req.Header.Set("Prefer", "return=minimal")
	}

	return c.send(req, into)
}

// selectAll đọc toàn bộ một bảng, không phân trang
func (c *storeClient) selectAll(ctx context.Context, table string, into any) error {
	query := url.Values{}
	query.Set("select", "*")
	return c.rest.do(ctx, http.MethodGet, "/rest/v1/"+table, query, nil, into)
}

// insertOne thêm một bản ghi, ID do phía gọi cấp sẵn
func (c *storeClient) insertOne(ctx context.Context, table string, row any) error {
	return c.rest.do(ctx, http.MethodPost, "/rest/v1/"+table, nil, row, nil)
}

// updateByID cập nhật một phần các trường của bản ghi theo ID
func (c *storeClient) updateByID(ctx context.Context, table, id string, patch map[string]any) error {
	query := url.Values{}
	query.Set("id", "eq."+id)
	return c.rest.do(ctx, http.MethodPatch, "/rest/v1/"+table, query, patch, nil)
}

// deleteByID xóa bản ghi theo ID; không cascade, bản ghi tham chiếu giữ nguyên
func (c *storeClient) deleteByID(ctx context.Context, table, id string) error {
	query := url.Values{}
	query.Set("id", "eq."+id)
	return c.rest.do(ctx, http.MethodDelete, "/rest/v1/"+table, query, nil, nil)
}

func tableError(table string, err error) error {
	if err == nil {
		return nil
	}
	return errors.WithMessage(err, fmt.Sprintf("bảng %s", table))
}
