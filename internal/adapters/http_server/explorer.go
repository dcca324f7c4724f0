package httpserver

import (
	"net/http"

	"monastery_tours/internal/domain"
)

type modeRequest struct {
	Mode string `json:"mode"`
}

type selectRequest struct {
	ID string `json:"id"`
}

func (h *Handlers) explorerView(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, sessionFrom(r.Context()).Explorer())
}

func (h *Handlers) setMode(w http.ResponseWriter, r *http.Request) {
	var req modeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Bad Request", `body must be {"mode": "map"|"list"}`)
		return
	}
	m, err := domain.ParseViewMode(req.Mode)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sessionFrom(r.Context()).SetMode(m))
}

func (h *Handlers) selectSite(w http.ResponseWriter, r *http.Request) {
	var req selectRequest
	if err := decodeJSON(r, &req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Bad Request", `body must be {"id": string}`)
		return
	}
	v, err := sessionFrom(r.Context()).Select(req.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (h *Handlers) clearSelection(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, sessionFrom(r.Context()).ClearSelection())
}
