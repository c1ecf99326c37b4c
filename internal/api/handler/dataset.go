package handler

import (
	"net/http"

	"github.com/simb2b/sim-backoffice-api/internal/usecases/dataset"
	"github.com/simb2b/sim-backoffice-api/pkg/apiErrors"
	"github.com/simb2b/sim-backoffice-api/pkg/utils"
)

// ReloadDataset tải lại toàn bộ cache từ kho dữ liệu ngoài theo yêu cầu
func ReloadDataset(store *dataset.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := store.Reload(r.Context()); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Không tải lại được dữ liệu từ kho ngoài", nil)
			return
		}

		utils.WriteJSON(w, http.StatusOK, map[string]bool{"loaded": store.Loaded()})
	}
}
