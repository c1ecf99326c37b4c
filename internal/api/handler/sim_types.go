package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/simb2b/sim-backoffice-api/internal/domain"
	"github.com/simb2b/sim-backoffice-api/internal/usecases/dataset"
	"github.com/simb2b/sim-backoffice-api/pkg/apiErrors"
	"github.com/simb2b/sim-backoffice-api/pkg/utils"
)

type CreateSimTypeRequest struct {
	Name string `json:"name" validate:"required"`
}

func ListSimTypes(store *dataset.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSON(w, http.StatusOK, store.Snapshot().SimTypes)
	}
}

func CreateSimType(store *dataset.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateSimTypeRequest
		if err := utils.DecodeJSON(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Định dạng request không hợp lệ", nil)
			return
		}
		if err := validate.Struct(req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Thiếu tên loại SIM", err.Error())
			return
		}

		simType := domain.SimType{
			ID:   utils.NewID(),
			Name: req.Name,
		}
		store.AddSimType(r.Context(), simType)

		utils.WriteJSON(w, http.StatusCreated, simType)
	}
}

func DeleteSimType(store *dataset.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Thiếu ID loại SIM", nil)
			return
		}

		store.DeleteSimType(r.Context(), id)
		w.WriteHeader(http.StatusNoContent)
	}
}
