package handlers

import (
	"net/http"

	"github.com/vangoframework/wms/internal/views"
)

// Work renders the work list with its summary cards.
func (h *Handlers) Work(w http.ResponseWriter, r *http.Request) {
	q, res, summary, err := h.workPage(r)
	if err != nil {
		h.listError(w, err)
		return
	}

	views.Work(views.WorkView{
		Chrome:  h.chrome(w, r, "작업 관리", "작업"),
		Query:   q.view("/work", q.Type, res.CurrentPage),
		Result:  res,
		Summary: summary,
	}).Render(r.Context(), w)
}
