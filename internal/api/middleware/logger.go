package middleware

import (
	"log"
	"net/http"
	"time"

	"github.com/nikhilsahni7/medquery/internal/utils"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		reqID := utils.NewRequestID()
		w.Header().Set("X-Request-ID", reqID)

		rec := &statusRecorder{
			ResponseWriter: w,
			status:         http.StatusOK,
		}

		next.ServeHTTP(rec, r)

		log.Printf(
			"[%s] %s %s %d %s",
			reqID,
			r.Method,
			r.URL.Path,
			rec.status,
			time.Since(start),
		)
	})
}
