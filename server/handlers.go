package server

import (
	"encoding/json"
	"net/http"
)

// User-facing messages, localized in Persian to match the client application.
const (
	msgEmptyChapter   = "عنوان یا متن فصل نمیتواند خالی باشد"
	msgChapterFailed  = "خطا در ارسال فصل. لطفا دوباره امتحان کنید"
	msgServerError    = "خطای سرور"
	msgInvalidRequest = "درخواست نامعتبر است"
)

// IndexHandler answers the root probe with a fixed body
func (s *Server) IndexHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	}
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

func writeJSONError(w http.ResponseWriter, message string, statusCode int) {
	writeJSON(w, statusCode, map[string]string{"error": message})
}
