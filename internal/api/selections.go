package api

import (
	"net/http"

	"github.com/MikeSquared-Agency/Dravita/internal/assessment"
)

type SelectionsHandler struct{}

func NewSelectionsHandler() *SelectionsHandler {
	return &SelectionsHandler{}
}

type ToggleRequest struct {
	Current []string `json:"current"`
	Choice  string   `json:"choice"`
}

type ToggleResponse struct {
	Selection []string `json:"selection"`
}

func (h *SelectionsHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	var req ToggleRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Choice == "" {
		writeError(w, http.StatusBadRequest, "choice is required")
		return
	}
	sel := assessment.Toggle(req.Current, req.Choice)
	if sel == nil {
		sel = []string{}
	}
	writeJSON(w, http.StatusOK, ToggleResponse{Selection: sel})
}
