package handlers

import (
	"net/http"

	"github.com/vangoframework/wms/internal/views"
)

// Personnel renders the employee list.
func (h *Handlers) Personnel(w http.ResponseWriter, r *http.Request) {
	q, res, err := h.employeePage(r)
	if err != nil {
		h.listError(w, err)
		return
	}

	views.Personnel(views.PersonnelView{
		Chrome: h.chrome(w, r, "인사 관리", "인사"),
		Query:  q.view("/personnel", q.Status, res.CurrentPage),
		Result: res,
	}).Render(r.Context(), w)
}
