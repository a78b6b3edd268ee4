package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MikeSquared-Agency/Dravita/internal/forms"
)

type FormsHandler struct{}

func NewFormsHandler() *FormsHandler {
	return &FormsHandler{}
}

type ValidateResponse struct {
	Valid  bool               `json:"valid"`
	Errors []forms.FieldError `json:"errors"`
}

func (h *FormsHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, forms.Steps())
}

func (h *FormsHandler) Get(w http.ResponseWriter, r *http.Request) {
	step, ok := forms.Lookup(chi.URLParam(r, "step"))
	if !ok {
		writeError(w, http.StatusNotFound, "step not found")
		return
	}
	writeJSON(w, http.StatusOK, step)
}

func (h *FormsHandler) Validate(w http.ResponseWriter, r *http.Request) {
	step, ok := forms.Lookup(chi.URLParam(r, "step"))
	if !ok {
		writeError(w, http.StatusNotFound, "step not found")
		return
	}
	var answers map[string]any
	if err := decodeBody(w, r, &answers); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	errs := forms.Validate(step, answers)
	if errs == nil {
		errs = []forms.FieldError{}
	}
	writeJSON(w, http.StatusOK, ValidateResponse{Valid: len(errs) == 0, Errors: errs})
}
