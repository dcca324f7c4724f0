package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"monastery_tours/internal/app"
	"monastery_tours/internal/domain"
)

type Handlers struct {
	Q             *app.QueryService
	Sessions      *app.Sessions
	Limiter       *WriteLimiter // nil disables write limiting
	MaxUpload     int64
	SecureCookies bool
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/v1/sites", h.listSites)
	s.mux.Get("/v1/sites/{id}", h.getSite)

	s.mux.Group(func(r chi.Router) {
		r.Use(Sessions(h.Sessions, h.SecureCookies))
		if h.Limiter != nil {
			r.Use(h.Limiter.Middleware)
		}

		r.Get("/v1/community/reviews", h.listReviews)
		r.Get("/v1/community/counts", h.categoryCounts)
		r.Post("/v1/community/reviews", h.submitReview)
		r.Post("/v1/community/reviews/{id}/like", h.toggleLike)
		r.Post("/v1/community/reviews/{id}/comments", h.addComment)
		r.Post("/v1/community/draft/photos", h.attachPhotos)
		r.Delete("/v1/community/draft", h.resetDraft)
		r.Get("/v1/media/{id}", h.getMedia)

		r.Get("/v1/explorer", h.explorerView)
		r.Put("/v1/explorer/mode", h.setMode)
		r.Put("/v1/explorer/selection", h.selectSite)
		r.Delete("/v1/explorer/selection", h.clearSelection)
	})
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// writeError maps domain errors onto problem responses.
func writeError(w http.ResponseWriter, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		writeProblem(w, http.StatusUnprocessableEntity, "Validation Failed", verr.Message)
	case errors.Is(err, domain.ErrNotFound):
		writeProblem(w, http.StatusNotFound, "Not Found", err.Error())
	case errors.Is(err, domain.ErrInvalidCategory), errors.Is(err, domain.ErrInvalidMode):
		writeProblem(w, http.StatusBadRequest, "Bad Request", err.Error())
	case errors.Is(err, domain.ErrTooManyPhotos):
		writeProblem(w, http.StatusRequestEntityTooLarge, "Too Many Photos", err.Error())
	case errors.Is(err, domain.ErrUnsupportedType):
		writeProblem(w, http.StatusUnsupportedMediaType, "Unsupported Media Type", err.Error())
	case errors.Is(err, domain.ErrMediaFull):
		log.Warn().Err(err).Msg("media store full")
		writeProblem(w, http.StatusInsufficientStorage, "Insufficient Storage", "photo previews are at capacity, try again later")
	default:
		log.Error().Err(err).Msg("request failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	return `W/"` + hex.EncodeToString(sum[:]) + `"`, body
}

// writeCacheable serves v with a weak ETag, answering 304 on a match.
func writeCacheable(w http.ResponseWriter, r *http.Request, v any) {
	etag, body := calcETagAndBody(v)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write cacheable body")
	}
}

func (h *Handlers) listSites(w http.ResponseWriter, r *http.Request) {
	sites, err := h.Q.ListSites(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeCacheable(w, r, map[string]any{"items": sites})
}

func (h *Handlers) getSite(w http.ResponseWriter, r *http.Request) {
	site, err := h.Q.GetSite(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeCacheable(w, r, site)
}
