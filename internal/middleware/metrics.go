package middleware

import (
	"net/http"
	"strconv"
	"time"
)

// HTTPRecorder receives one observation per handled request
type HTTPRecorder interface {
	RecordHTTPRequest(endpoint, method, statusCode string, duration time.Duration)
}

// Instrument records count and latency of next under the given endpoint label.
// The label should be the route pattern, never the raw path.
func Instrument(recorder HTTPRecorder, endpoint string, next http.Handler) http.Handler {
	if recorder == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := newStatusRecorder(w)
		next.ServeHTTP(rec, r)
		recorder.RecordHTTPRequest(endpoint, r.Method, strconv.Itoa(rec.status), time.Since(start))
	})
}
