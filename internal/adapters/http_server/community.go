package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"monastery_tours/internal/app"
	"monastery_tours/internal/domain"
)

const maxJSONBody = 64 << 10

type reviewsResponse struct {
	Category domain.Category `json:"category"`
	Items    []domain.Review `json:"items"`
}

type commentRequest struct {
	Text string `json:"text"`
}

func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxJSONBody))
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

func (h *Handlers) listReviews(w http.ResponseWriter, r *http.Request) {
	c, err := domain.ParseCategory(r.URL.Query().Get("category"))
	if err != nil {
		writeError(w, err)
		return
	}
	s := sessionFrom(r.Context())
	writeJSON(w, http.StatusOK, reviewsResponse{Category: c, Items: s.Filter(c)})
}

func (h *Handlers) categoryCounts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, sessionFrom(r.Context()).CategoryCounts())
}

func (h *Handlers) toggleLike(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	rv, ok := sessionFrom(r.Context()).ToggleLike(id)
	if !ok {
		// unknown ids are a no-op for the feed; report them so clients can resync
		writeError(w, fmt.Errorf("review %q: %w", id, domain.ErrNotFound))
		return
	}
	writeJSON(w, http.StatusOK, rv)
}

func (h *Handlers) addComment(w http.ResponseWriter, r *http.Request) {
	var req commentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Bad Request", "body must be {\"text\": string}")
		return
	}
	id := chi.URLParam(r, "id")
	rv, ok := sessionFrom(r.Context()).AddComment(id, req.Text)
	if !ok {
		writeError(w, fmt.Errorf("review %q: %w", id, domain.ErrNotFound))
		return
	}
	writeJSON(w, http.StatusOK, rv)
}

func (h *Handlers) submitReview(w http.ResponseWriter, r *http.Request) {
	var req domain.NewReviewFields
	if err := decodeJSON(r, &req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Bad Request", "malformed review form")
		return
	}
	rv, err := sessionFrom(r.Context()).Submit(req)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Location", "/v1/community/reviews/"+rv.ID)
	writeJSON(w, http.StatusCreated, rv)
}

func (h *Handlers) attachPhotos(w http.ResponseWriter, r *http.Request) {
	limit := h.MaxUpload
	if limit <= 0 {
		limit = 20 << 20
	}
	r.Body = http.MaxBytesReader(w, r.Body, limit)
	if err := r.ParseMultipartForm(limit); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			writeProblem(w, http.StatusRequestEntityTooLarge, "Upload Too Large", "limit is "+strconv.FormatInt(limit, 10)+" bytes")
			return
		}
		writeProblem(w, http.StatusBadRequest, "Bad Request", "expected multipart form with photos")
		return
	}
	defer r.MultipartForm.RemoveAll()

	headers := r.MultipartForm.File["photos"]
	uploads := make([]app.Upload, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			writeProblem(w, http.StatusBadRequest, "Bad Request", "unreadable upload "+fh.Filename)
			return
		}
		defer func(f multipart.File) { _ = f.Close() }(f)
		uploads = append(uploads, app.Upload{Name: fh.Filename, Body: f})
	}

	urls, err := sessionFrom(r.Context()).AttachPhotos(uploads)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"photos": urls})
}

func (h *Handlers) resetDraft(w http.ResponseWriter, r *http.Request) {
	sessionFrom(r.Context()).ResetDraft()
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) getMedia(w http.ResponseWriter, r *http.Request) {
	p, err := sessionFrom(r.Context()).Photo(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", p.ContentType)
	w.Header().Set("Cache-Control", "private, no-store")
	w.Header().Set("Content-Length", strconv.Itoa(len(p.Data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(p.Data)
}
