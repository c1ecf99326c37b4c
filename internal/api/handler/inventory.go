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

type CreatePackageRequest struct {
	Name             string `json:"name"`
	SimTypeID        string `json:"sim_type_id" validate:"required"`
	ImportDate       string `json:"import_date" validate:"omitempty,datetime=2006-01-02"`
	Quantity         int    `json:"quantity" validate:"required,gt=0"`
	TotalImportPrice int64  `json:"total_import_price" validate:"gte=0"`
}

// GetInventory trả về tồn kho gộp theo loại SIM kèm giá vốn bình quân
func GetInventory(service stats.StatsBuilder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSON(w, http.StatusOK, service.InventoryStats())
	}
}

// ListPackages trả về danh sách lô nhập thô, không gộp theo loại SIM
func ListPackages(store *dataset.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSON(w, http.StatusOK, store.Snapshot().Packages)
	}
}

func CreatePackage(store *dataset.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreatePackageRequest
		if err := utils.DecodeJSON(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Định dạng request không hợp lệ", nil)
			return
		}
		if err := validate.Struct(req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Dữ liệu lô nhập không hợp lệ", err.Error())
			return
		}

		pkg := domain.SimPackage{
			ID:               utils.NewID(),
			Code:             utils.GenerateCode("SIM"),
			Name:             req.Name,
			SimTypeID:        req.SimTypeID,
			ImportDate:       req.ImportDate,
			Quantity:         req.Quantity,
			TotalImportPrice: req.TotalImportPrice,
		}
		if pkg.ImportDate == "" {
			pkg.ImportDate = utils.Today()
		}
		store.AddPackage(r.Context(), pkg)

		utils.WriteJSON(w, http.StatusCreated, pkg)
	}
}

func DeletePackage(store *dataset.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Thiếu ID lô nhập", nil)
			return
		}

		store.DeletePackage(r.Context(), id)
		w.WriteHeader(http.StatusNoContent)
	}
}
