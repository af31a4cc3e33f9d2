package relay

import (
	"net/http"
	"time"

	hmacext "github.com/alexellis/hmac/v2"
	"github.com/cinerow/cinerow/log"
	"github.com/cinerow/cinerow/youtube"
	"github.com/google/uuid"
)

// RequestIDHeader carries the id logged for each request. A client supplied
// id is kept so a request can be followed through a proxy.
const RequestIDHeader = "X-Request-ID"

func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
			r.Header.Set(RequestIDHeader, id)
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(status int) {
	s.status = status
	s.ResponseWriter.WriteHeader(status)
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		log.WithFields(log.Fields{
			"id":       r.Header.Get(RequestIDHeader),
			"method":   r.Method,
			"path":     r.URL.Path,
			"query":    r.URL.RawQuery,
			"status":   rec.status,
			"duration": time.Since(start).String(),
			"client":   clientIP(r),
		}, "request")
	})
}

// requireSignature rejects requests whose signature header does not match
// the HMAC-SHA256 of the path and query under secret.
func requireSignature(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			signature := r.Header.Get(youtube.SignatureHeader)
			if signature == "" {
				writeError(w, http.StatusUnauthorized, "Request signature is required.", "")
				return
			}

			message := []byte(youtube.SignedMessage(r.URL.Path, r.URL.RawQuery))
			if err := hmacext.Validate(message, signature, secret); err != nil {
				log.Warnf("relay: bad signature from %s: %v", clientIP(r), err)
				writeError(w, http.StatusUnauthorized, "Request signature is invalid.", "")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
