package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/simb2b/sim-backoffice-api/internal/usecases/reporting"
	"github.com/simb2b/sim-backoffice-api/pkg/apiErrors"
	"github.com/simb2b/sim-backoffice-api/pkg/utils"
)

// GetDashboard trả về số liệu màn hình tổng quan, lọc theo khoảng ngày
// start_date/end_date (YYYY-MM-DD, bỏ trống nghĩa là không giới hạn)
func GetDashboard(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		startDate := r.URL.Query().Get("start_date")
		endDate := r.URL.Query().Get("end_date")

		for _, date := range []string{startDate, endDate} {
			if _, err := utils.ParseDate(date); err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Khoảng ngày không hợp lệ, cần YYYY-MM-DD", nil)
				return
			}
		}

		utils.WriteJSON(w, http.StatusOK, service.Dashboard(startDate, endDate))
	}
}

// GetMonthlyCashflow trả về chuỗi thu chi và lợi nhuận theo tháng, lọc theo
// khoảng ngày start_date/end_date như màn hình tổng quan
func GetMonthlyCashflow(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		startDate := r.URL.Query().Get("start_date")
		endDate := r.URL.Query().Get("end_date")

		for _, date := range []string{startDate, endDate} {
			if _, err := utils.ParseDate(date); err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Khoảng ngày không hợp lệ, cần YYYY-MM-DD", nil)
				return
			}
		}

		utils.WriteJSON(w, http.StatusOK, service.MonthlyCashflow(startDate, endDate))
	}
}

func GetOutstandingDebts(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSON(w, http.StatusOK, service.OutstandingDebts())
	}
}

// GetProfitCalendar trả về lịch lợi nhuận của một tháng; mặc định là tháng
// hiện tại khi không truyền year/month
func GetProfitCalendar(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		now := time.Now()
		year := now.Year()
		month := now.Month()

		if raw := r.URL.Query().Get("year"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Năm không hợp lệ", nil)
				return
			}
			year = parsed
		}
		if raw := r.URL.Query().Get("month"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 || parsed > 12 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Tháng không hợp lệ", nil)
				return
			}
			month = time.Month(parsed)
		}

		utils.WriteJSON(w, http.StatusOK, service.ProfitCalendar(year, month))
	}
}
