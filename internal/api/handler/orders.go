package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/simb2b/sim-backoffice-api/internal/domain"
	"github.com/simb2b/sim-backoffice-api/internal/usecases/dataset"
	"github.com/simb2b/sim-backoffice-api/internal/usecases/ordering"
	"github.com/simb2b/sim-backoffice-api/internal/usecases/stats"
	"github.com/simb2b/sim-backoffice-api/pkg/apiErrors"
	"github.com/simb2b/sim-backoffice-api/pkg/utils"
)

type CreateOrderRequest struct {
	Date       string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	CustomerID string `json:"customer_id"`
	AgentName  string `json:"agent_name"`
	SaleType   string `json:"sale_type" validate:"required,oneof=WHOLESALE RETAIL"`
	SimTypeID  string `json:"sim_type_id" validate:"required"`
	Quantity   int    `json:"quantity" validate:"required,gt=0"`
	SalePrice  int64  `json:"sale_price" validate:"gte=0"`
	DueDate    string `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
	Note       string `json:"note"`
	Settled    bool   `json:"settled"`
	Method     string `json:"method" validate:"omitempty,oneof=CASH TRANSFER COD"`
}

type ExtendDueDateRequest struct {
	NewDate string `json:"new_date" validate:"required,datetime=2006-01-02"`
	Reason  string `json:"reason"`
}

// ListOrders trả về danh sách đơn kèm các trường dẫn xuất (thành tiền, giá
// vốn, còn nợ, mức nợ), có thể lọc theo ?sale_class=WHOLESALE|RETAIL
func ListOrders(service stats.StatsBuilder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orders := service.OrderStats()

		if saleClass := r.URL.Query().Get("sale_class"); saleClass != "" {
			filtered := make([]domain.SaleOrderWithStats, 0, len(orders))
			for _, o := range orders {
				if o.SaleType == domain.CustomerClass(saleClass) {
					filtered = append(filtered, o)
				}
			}
			orders = filtered
		}

		utils.WriteJSON(w, http.StatusOK, orders)
	}
}

func CreateOrder(service ordering.OrderManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateOrderRequest
		if err := utils.DecodeJSON(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Định dạng request không hợp lệ", nil)
			return
		}
		if err := validate.Struct(req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Dữ liệu đơn hàng không hợp lệ", err.Error())
			return
		}

		order, err := service.CreateOrder(r.Context(), ordering.CreateOrderInput{
			Date:       req.Date,
			CustomerID: req.CustomerID,
			AgentName:  req.AgentName,
			SaleType:   domain.CustomerClass(req.SaleType),
			SimTypeID:  req.SimTypeID,
			Quantity:   req.Quantity,
			SalePrice:  req.SalePrice,
			DueDate:    req.DueDate,
			Note:       req.Note,
			Settled:    req.Settled,
			Method:     domain.PaymentMethod(req.Method),
		}, currentUserID(r))
		if err != nil {
			handleOrderError(w, err)
			return
		}

		utils.WriteJSON(w, http.StatusCreated, order)
	}
}

func DeleteOrder(service ordering.OrderManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteOrder(r.Context(), id); err != nil {
			handleOrderError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// ExtendDueDate dời hạn thanh toán của một đơn và ghi nhật ký gia hạn
func ExtendDueDate(service ordering.OrderManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req ExtendDueDateRequest
		if err := utils.DecodeJSON(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Định dạng request không hợp lệ", nil)
			return
		}
		if err := validate.Struct(req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Hạn thanh toán mới không hợp lệ", err.Error())
			return
		}

		logEntry, err := service.ExtendDueDate(r.Context(), ordering.ExtendDueDateInput{
			OrderID: id,
			NewDate: req.NewDate,
			Reason:  req.Reason,
		})
		if err != nil {
			handleOrderError(w, err)
			return
		}

		utils.WriteJSON(w, http.StatusOK, logEntry)
	}
}

// ListDueDateLogs trả về lịch sử gia hạn của một đơn
func ListDueDateLogs(store *dataset.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		logs := []domain.DueDateLog{}
		for _, l := range store.Snapshot().DueDateLogs {
			if l.OrderID == id {
				logs = append(logs, l)
			}
		}
		utils.WriteJSON(w, http.StatusOK, logs)
	}
}

func handleOrderError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ordering.ErrOrderNotFound):
		apiErrors.WriteError(w, apiErrors.ErrRecordNotFound, "Không tìm thấy đơn hàng", nil)

	case errors.Is(err, ordering.ErrCustomerNotFound):
		apiErrors.WriteError(w, apiErrors.ErrRecordNotFound, "Không tìm thấy khách hàng", nil)

	case errors.Is(err, ordering.ErrCustomerRequired):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Đơn bán sỉ phải gắn khách hàng", nil)

	case errors.Is(err, ordering.ErrMissingUser):
		apiErrors.WriteError(w, apiErrors.ErrMissingUser, "Thiếu thông tin người dùng đăng nhập", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Lỗi xử lý đơn hàng", nil)
	}
}
