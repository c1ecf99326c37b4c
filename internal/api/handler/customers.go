package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/simb2b/sim-backoffice-api/internal/domain"
	"github.com/simb2b/sim-backoffice-api/internal/usecases/dataset"
	"github.com/simb2b/sim-backoffice-api/internal/usecases/stats"
	"github.com/simb2b/sim-backoffice-api/pkg/apiErrors"
	"github.com/simb2b/sim-backoffice-api/pkg/utils"
)

type CustomerRequest struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone"`
	Email   string `json:"email" validate:"omitempty,email"`
	Address string `json:"address"`
	Type    string `json:"type" validate:"omitempty,oneof=WHOLESALE RETAIL"`
	Note    string `json:"note"`
}

// ListCustomers trả về danh sách khách kèm doanh số, công nợ và mức nợ
func ListCustomers(service stats.StatsBuilder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSON(w, http.StatusOK, service.CustomerStats())
	}
}

func CreateCustomer(store *dataset.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CustomerRequest
		if err := utils.DecodeJSON(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Định dạng request không hợp lệ", nil)
			return
		}
		if err := validate.Struct(req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Dữ liệu khách hàng không hợp lệ", err.Error())
			return
		}

		customer := domain.Customer{
			ID:      utils.NewID(),
			CID:     utils.GenerateCID(req.Name, req.Phone, req.Email),
			Name:    req.Name,
			Phone:   req.Phone,
			Email:   req.Email,
			Address: req.Address,
			Type:    customerClass(req.Type),
			Note:    req.Note,
		}
		store.AddCustomer(r.Context(), customer)

		utils.WriteJSON(w, http.StatusCreated, customer)
	}
}

func UpdateCustomer(store *dataset.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		existing, ok := store.FindCustomer(id)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrRecordNotFound, "Không tìm thấy khách hàng", nil)
			return
		}

		var req CustomerRequest
		if err := utils.DecodeJSON(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Định dạng request không hợp lệ", nil)
			return
		}
		if err := validate.Struct(req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Dữ liệu khách hàng không hợp lệ", err.Error())
			return
		}

		customer := domain.Customer{
			ID:      existing.ID,
			CID:     existing.CID,
			Name:    req.Name,
			Phone:   req.Phone,
			Email:   req.Email,
			Address: req.Address,
			Type:    customerClass(req.Type),
			Note:    req.Note,
		}
		store.UpdateCustomer(r.Context(), customer)

		utils.WriteJSON(w, http.StatusOK, customer)
	}
}

func DeleteCustomer(store *dataset.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Thiếu ID khách hàng", nil)
			return
		}

		store.DeleteCustomer(r.Context(), id)
		w.WriteHeader(http.StatusNoContent)
	}
}

func customerClass(raw string) domain.CustomerClass {
	if raw == string(domain.Wholesale) {
		return domain.Wholesale
	}
	return domain.Retail
}
