package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MikeSquared-Agency/Dravita/internal/store"
)

type PlansHandler struct {
	store store.Store
}

func NewPlansHandler(s store.Store) *PlansHandler {
	return &PlansHandler{store: s}
}

func (h *PlansHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := store.PlanFilter{
		Category: store.Category(q.Get("category")),
		Sort:     store.SortKey(q.Get("sort")),
	}
	plans, err := h.store.ListPlans(r.Context(), filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if plans == nil {
		plans = []*store.Plan{}
	}
	writeJSON(w, http.StatusOK, plans)
}

func (h *PlansHandler) Categories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, store.Categories())
}

func (h *PlansHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid plan ID")
		return
	}
	p, err := h.store.GetPlan(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if p == nil {
		writeError(w, http.StatusNotFound, "plan not found")
		return
	}
	writeJSON(w, http.StatusOK, p)
}
