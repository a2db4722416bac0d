package httpapi

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/goccy/go-json"
	"go.trai.ch/streak/internal/core/domain"
	"go.trai.ch/streak/internal/core/ports"
	"go.trai.ch/zerr"
)

const contentTypeSVG = "image/svg+xml"

type handler struct {
	svc    Service
	cfg    domain.ServerConfig
	logger ports.Logger
}

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func (h *handler) health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, "ok\n")
}

func (h *handler) card(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	opts := cardOptions(query)

	w.Header().Set("Content-Type", contentTypeSVG)

	out, err := h.svc.Card(r.Context(), query.Get("username"), opts)
	if err != nil {
		h.report(r, err)
		if cacheable(err) {
			w.Header().Set("Cache-Control", h.errorCacheControl())
		}
		// Error cards keep status 200.
		_, _ = io.WriteString(w, h.svc.ErrorCard(err, opts))
		return
	}

	etag := fmt.Sprintf(`"%016x"`, xxhash.Sum64String(out))
	w.Header().Set("Cache-Control", h.successCacheControl())
	w.Header().Set("ETag", etag)
	if etagMatches(r.Header.Get("If-None-Match"), etag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	_, _ = io.WriteString(w, out)
}

func (h *handler) stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Stats(r.Context(), r.URL.Query().Get("username"))
	if err != nil {
		h.report(r, err)
		primary, secondary := domain.CardMessages(err)
		if cacheable(err) {
			w.Header().Set("Cache-Control", h.errorCacheControl())
		}
		writeJSON(w, statusFor(err), errorBody{Error: primary, Message: secondary})
		return
	}

	w.Header().Set("Cache-Control", h.successCacheControl())
	writeJSON(w, http.StatusOK, stats)
}

func (h *handler) report(r *http.Request, err error) {
	requestID := middleware.GetReqID(r.Context())
	if errors.Is(err, domain.ErrMissingUsername) || errors.Is(err, domain.ErrUserNotFound) {
		h.logger.Warn("request rejected",
			"reason", domain.PrimaryMessage(err),
			"path", r.URL.Path,
			"request_id", requestID,
		)
		return
	}
	h.logger.Error(zerr.With(err, "request_id", requestID))
}

func (h *handler) successCacheControl() string {
	return fmt.Sprintf("max-age=%d, s-maxage=%d", h.cfg.CacheSeconds, h.cfg.CacheSeconds)
}

func (h *handler) errorCacheControl() string {
	return fmt.Sprintf("max-age=%d, s-maxage=%d, stale-while-revalidate=%d",
		h.cfg.ErrorCacheSeconds/2, h.cfg.ErrorCacheSeconds, domain.OneDaySeconds)
}

// cacheable reports whether an error response may be cached downstream.
// Request and deployment problems are answered without cache headers.
func cacheable(err error) bool {
	return !errors.Is(err, domain.ErrMissingUsername) && !errors.Is(err, domain.ErrTokenNotConfigured)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrMissingUsername):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrCircuitOpen):
		return http.StatusServiceUnavailable
	case errors.Is(err, domain.ErrUpstreamQuery):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func cardOptions(query url.Values) domain.CardOptions {
	return domain.CardOptions{
		Theme:       query.Get("theme"),
		HideBorder:  query.Get("hide_border"),
		TitleColor:  query.Get("title_color"),
		TextColor:   query.Get("text_color"),
		BgColor:     query.Get("bg_color"),
		BorderColor: query.Get("border_color"),
	}
}

func etagMatches(header, etag string) bool {
	if header == "" {
		return false
	}
	for candidate := range strings.SplitSeq(header, ",") {
		candidate = strings.TrimPrefix(strings.TrimSpace(candidate), "W/")
		if candidate == "*" || candidate == etag {
			return true
		}
	}
	return false
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}
