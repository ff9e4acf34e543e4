package middleware

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	. "github.com/smartystreets/goconvey/convey"
)

type recordedRequest struct {
	endpoint, method, status string
}

type fakeRecorder struct {
	calls []recordedRequest
}

func (f *fakeRecorder) RecordHTTPRequest(endpoint, method, statusCode string, _ time.Duration) {
	f.calls = append(f.calls, recordedRequest{endpoint, method, statusCode})
}

func TestRateLimiter(t *testing.T) {
	Convey("Given a limiter with a burst of two", t, func() {
		limiter := NewRateLimiter(1, 2)
		now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		limiter.now = func() time.Time { return now }

		Convey("The third immediate request is refused", func() {
			So(limiter.Allow("1.1.1.1"), ShouldBeTrue)
			So(limiter.Allow("1.1.1.1"), ShouldBeTrue)
			So(limiter.Allow("1.1.1.1"), ShouldBeFalse)
		})

		Convey("Clients are limited independently", func() {
			limiter.Allow("1.1.1.1")
			limiter.Allow("1.1.1.1")
			So(limiter.Allow("2.2.2.2"), ShouldBeTrue)
		})

		Convey("Tokens refill over time", func() {
			limiter.Allow("1.1.1.1")
			limiter.Allow("1.1.1.1")
			now = now.Add(time.Second)
			So(limiter.Allow("1.1.1.1"), ShouldBeTrue)
		})

		Convey("The middleware answers 429 when exhausted", func() {
			handler := limiter.Middleware(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})
			codes := []int{}
			for i := 0; i < 3; i++ {
				req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
				req.RemoteAddr = "10.0.0.1:5555"
				rec := httptest.NewRecorder()
				handler(rec, req)
				codes = append(codes, rec.Code)
			}
			So(codes, ShouldResemble, []int{200, 200, 429})
		})

		Convey("Rotating X-Forwarded-For does not reset the bucket", func() {
			handler := limiter.Middleware(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})
			codes := []int{}
			for i := 0; i < 3; i++ {
				req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
				req.RemoteAddr = "203.0.113.9:5555"
				req.Header.Set("X-Forwarded-For", fmt.Sprintf("10.0.0.%d", i))
				rec := httptest.NewRecorder()
				handler(rec, req)
				codes = append(codes, rec.Code)
			}
			So(codes, ShouldResemble, []int{200, 200, 429})
		})

		Convey("Behind a trusted proxy clients are keyed on the appended hop", func() {
			limiter.TrustProxy(true)
			handler := limiter.Middleware(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})
			send := func(forwarded string) int {
				req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
				req.RemoteAddr = "10.0.0.2:443"
				req.Header.Set("X-Forwarded-For", forwarded)
				rec := httptest.NewRecorder()
				handler(rec, req)
				return rec.Code
			}
			So(send("1.1.1.1, 198.51.100.4"), ShouldEqual, http.StatusOK)
			So(send("2.2.2.2, 198.51.100.4"), ShouldEqual, http.StatusOK)
			So(send("3.3.3.3, 198.51.100.4"), ShouldEqual, http.StatusTooManyRequests)
			So(send("198.51.100.5"), ShouldEqual, http.StatusOK)
		})
	})
}

func TestClientIP(t *testing.T) {
	Convey("Given a request relayed with a forwarded header", t, func() {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		req.Header.Set("X-Forwarded-For", "198.51.100.1, 203.0.113.7")

		Convey("The header is ignored unless the proxy is trusted", func() {
			So(ClientIP(req, false), ShouldEqual, "10.0.0.1")
		})

		Convey("A trusted proxy contributes the right-most hop", func() {
			So(ClientIP(req, true), ShouldEqual, "203.0.113.7")
		})

		Convey("An unparsable hop falls back to the remote address", func() {
			req.Header.Set("X-Forwarded-For", "203.0.113.7, garbage")
			So(ClientIP(req, true), ShouldEqual, "10.0.0.1")
		})
	})
}

func TestInstrument(t *testing.T) {
	Convey("Instrument records the route label and status", t, func() {
		recorder := &fakeRecorder{}
		handler := Instrument(recorder, "GET /api/outfits/{outfitId}", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/outfits/123", nil))

		So(recorder.calls, ShouldHaveLength, 1)
		So(recorder.calls[0], ShouldResemble, recordedRequest{"GET /api/outfits/{outfitId}", "GET", "404"})
	})
}

func TestRequestLogger(t *testing.T) {
	Convey("RequestLogger writes method, path and status", t, func() {
		var buf bytes.Buffer
		logger := logrus.New()
		logger.SetOutput(&buf)

		handler := RequestLogger(logger, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusCreated)
		}))
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/quiz/submit", nil))

		out := buf.String()
		So(out, ShouldContainSubstring, "method=POST")
		So(out, ShouldContainSubstring, "path=/api/quiz/submit")
		So(out, ShouldContainSubstring, "status=201")
	})
}

func TestSecurityAndBodyLimit(t *testing.T) {
	Convey("SecurityHeaders sets hardening headers", t, func() {
		rec := httptest.NewRecorder()
		SecurityHeaders(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).
			ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		So(rec.Header().Get("X-Content-Type-Options"), ShouldEqual, "nosniff")
		So(rec.Header().Get("X-Frame-Options"), ShouldEqual, "SAMEORIGIN")
	})

	Convey("BodyLimit stops reads past the limit", t, func() {
		var readErr error
		handler := BodyLimit(4, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, readErr = io.ReadAll(r.Body)
		}))
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", strings.NewReader("too long")))

		var maxErr *http.MaxBytesError
		So(readErr, ShouldNotBeNil)
		So(errors.As(readErr, &maxErr), ShouldBeTrue)
	})
}
