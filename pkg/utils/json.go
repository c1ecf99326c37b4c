package utils

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// WriteJSON ghi payload JSON kèm status code cho response HTTP
func WriteJSON(w http.ResponseWriter, status int, payload any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(payload)
}

// DecodeJSON đọc body request vào đích cho trước
func DecodeJSON(r *http.Request, into any) error {
	return json.NewDecoder(r.Body).Decode(into)
}
