package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/simb2b/sim-backoffice-api/internal/domain"
	"github.com/simb2b/sim-backoffice-api/internal/usecases/cashbook"
	"github.com/simb2b/sim-backoffice-api/internal/usecases/dataset"
	"github.com/simb2b/sim-backoffice-api/pkg/apiErrors"
	"github.com/simb2b/sim-backoffice-api/pkg/utils"
)

type CreateTransactionRequest struct {
	Date        string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Type        string `json:"type" validate:"required,oneof=IN OUT"`
	Category    string `json:"category"`
	Amount      int64  `json:"amount" validate:"required,gt=0"`
	Method      string `json:"method" validate:"omitempty,oneof=CASH TRANSFER COD"`
	SaleOrderID string `json:"sale_order_id"`
	Note        string `json:"note"`
}

// ListTransactions trả về sổ quỹ, có thể lọc theo ?start_date&end_date
// (bao gồm hai đầu mút)
func ListTransactions(store *dataset.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		startDate := r.URL.Query().Get("start_date")
		endDate := r.URL.Query().Get("end_date")
		if _, err := utils.ParseDate(startDate); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "start_date không hợp lệ", nil)
			return
		}
		if _, err := utils.ParseDate(endDate); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "end_date không hợp lệ", nil)
			return
		}

		transactions := store.Snapshot().Transactions
		if startDate != "" || endDate != "" {
			filtered := make([]domain.Transaction, 0, len(transactions))
			for _, tx := range transactions {
				if startDate != "" && tx.Date < startDate {
					continue
				}
				if endDate != "" && tx.Date > endDate {
					continue
				}
				filtered = append(filtered, tx)
			}
			transactions = filtered
		}

		utils.WriteJSON(w, http.StatusOK, transactions)
	}
}

func CreateTransaction(service cashbook.CashbookManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateTransactionRequest
		if err := utils.DecodeJSON(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Định dạng request không hợp lệ", nil)
			return
		}
		if err := validate.Struct(req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Dữ liệu phiếu thu chi không hợp lệ", err.Error())
			return
		}

		tx, err := service.CreateTransaction(r.Context(), cashbook.CreateTransactionInput{
			Date:        req.Date,
			Type:        domain.TransactionDirection(req.Type),
			Category:    req.Category,
			Amount:      req.Amount,
			Method:      domain.PaymentMethod(req.Method),
			SaleOrderID: req.SaleOrderID,
			Note:        req.Note,
		}, currentUserID(r))
		if err != nil {
			handleCashbookError(w, err)
			return
		}

		utils.WriteJSON(w, http.StatusCreated, tx)
	}
}

func DeleteTransaction(service cashbook.CashbookManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteTransaction(r.Context(), id); err != nil {
			handleCashbookError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func handleCashbookError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, cashbook.ErrTransactionNotFound):
		apiErrors.WriteError(w, apiErrors.ErrRecordNotFound, "Không tìm thấy phiếu thu chi", nil)

	case errors.Is(err, cashbook.ErrMissingUser):
		apiErrors.WriteError(w, apiErrors.ErrMissingUser, "Thiếu thông tin người dùng đăng nhập", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Lỗi xử lý phiếu thu chi", nil)
	}
}
