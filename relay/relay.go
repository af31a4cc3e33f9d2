// Package relay serves the YouTube channel endpoint so clients never hold the API key.
package relay

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/cinerow/cinerow/apierr"
	"github.com/cinerow/cinerow/log"
	"github.com/cinerow/cinerow/youtube"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"golang.org/x/time/rate"
)

const (
	msgMissingName   = "channelName parameter is required."
	msgNotConfigured = "YouTube API key is not configured."
	msgFetchFailed   = "Failed to fetch videos for channel."
)

// ChannelLookup is what the relay needs from a YouTube client.
type ChannelLookup interface {
	ChannelVideos(ctx context.Context, name string) (*youtube.SearchResponse, error)
}

// configurable is implemented by lookups that know up front whether they hold a credential.
type configurable interface {
	Configured() bool
}

type Options struct {
	// RateLimit is requests per second per client IP. Zero disables limiting.
	RateLimit float64
	RateBurst int
	// Secret, when set, makes signed requests mandatory on the channel endpoint.
	Secret string
	// TrustProxy takes the client IP from X-Forwarded-For or X-Real-IP.
	TrustProxy bool
}

type handler struct {
	lookup ChannelLookup
}

// NewHandler builds the router with CORS, request ids, request logging and
// optional rate limiting and signature checks applied.
func NewHandler(lookup ChannelLookup, opts Options) http.Handler {
	h := &handler{lookup: lookup}

	r := mux.NewRouter()
	r.Use(requestID, clientAddress(opts.TrustProxy), logRequests)

	if opts.RateLimit > 0 {
		burst := opts.RateBurst
		if burst <= 0 {
			burst = 1
		}
		r.Use(NewIPRateLimiter(rate.Limit(opts.RateLimit), burst).Middleware)
	}

	r.HandleFunc("/health", health).Methods(http.MethodGet)

	var videos http.Handler = http.HandlerFunc(h.channelVideos)
	if opts.Secret != "" {
		videos = requireSignature(opts.Secret)(videos)
	}
	r.Handle(youtube.RelayPath, videos).Methods(http.MethodGet)

	return cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", RequestIDHeader, youtube.SignatureHeader},
		ExposedHeaders: []string{RequestIDHeader},
	}).Handler(r)
}

func (h *handler) channelVideos(w http.ResponseWriter, r *http.Request) {
	if !h.configured() {
		writeError(w, http.StatusInternalServerError, msgNotConfigured, "")
		return
	}

	name := strings.TrimSpace(r.URL.Query().Get("channelName"))
	if name == "" {
		writeError(w, http.StatusBadRequest, msgMissingName, "")
		return
	}

	resp, err := h.lookup.ChannelVideos(r.Context(), name)
	switch {
	case err == nil:
		writeBody(w, resp)
	case apierr.IsNotFound(err):
		writeError(w, http.StatusNotFound, "Could not find channel: "+name, "")
	case apierr.IsConfig(err):
		writeError(w, http.StatusInternalServerError, msgNotConfigured, "")
	default:
		log.Warnf("relay: channel %q: %v", name, err)
		writeError(w, http.StatusInternalServerError, msgFetchFailed, details(err))
	}
}

func (h *handler) configured() bool {
	if h.lookup == nil {
		return false
	}
	if c, ok := h.lookup.(configurable); ok {
		return c.Configured()
	}
	return true
}

// details prefers the upstream message over the wrapped error text.
func details(err error) string {
	var upstream *apierr.UpstreamError
	if errors.As(err, &upstream) && upstream.Message != "" {
		return upstream.Message
	}
	return err.Error()
}

func health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeError(w http.ResponseWriter, status int, msg, detail string) {
	body := map[string]string{"error": msg}
	if detail != "" {
		body["details"] = detail
	}
	writeJSON(w, status, body)
}

// writeBody forwards the upstream envelope byte for byte.
func writeBody(w http.ResponseWriter, resp *youtube.SearchResponse) {
	if resp == nil {
		resp = &youtube.SearchResponse{}
	}

	body, err := resp.Body()
	if err != nil {
		writeError(w, http.StatusInternalServerError, msgFetchFailed, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Serve runs the relay on addr until ctx is cancelled, then drains open requests.
func Serve(ctx context.Context, addr string, handler http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errs := make(chan error, 1)
	go func() {
		errs <- srv.ListenAndServe()
	}()

	log.Infof("relay: listening on %s", addr)

	select {
	case err := <-errs:
		return fmt.Errorf("relay: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("relay shutdown: %w", err)
	}
	log.Info("relay: stopped")
	return nil
}
