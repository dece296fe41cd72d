package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vangoframework/wms/internal/domain"
	"github.com/vangoframework/wms/internal/listview"
	"github.com/vangoframework/wms/internal/store"
)

// workResponse is the /api/work payload.
type workResponse struct {
	Result  listview.Result[domain.WorkItem] `json:"result"`
	Summary domain.WorkSummary               `json:"summary"`
}

// APIListEmployees returns one page of the employee list as JSON.
func (h *Handlers) APIListEmployees(w http.ResponseWriter, r *http.Request) {
	_, res, err := h.employeePage(r)
	if err != nil {
		h.apiListError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// APIGetEmployee returns one employee as JSON.
func (h *Handlers) APIGetEmployee(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	employee, err := h.repo.GetEmployee(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "employee not found")
		return
	}
	if err != nil {
		h.logger.Error("failed to get employee", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load employee")
		return
	}
	writeJSON(w, http.StatusOK, employee)
}

// APIListWork returns one page of the work list and the summary as JSON.
func (h *Handlers) APIListWork(w http.ResponseWriter, r *http.Request) {
	_, res, summary, err := h.workPage(r)
	if err != nil {
		h.apiListError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, workResponse{Result: res, Summary: summary})
}

func (h *Handlers) apiListError(w http.ResponseWriter, err error) {
	if errors.Is(err, errBadQuery) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	h.logger.Error("failed to load list", "error", err)
	writeError(w, http.StatusInternalServerError, "failed to load list")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
