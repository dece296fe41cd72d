package handlers

import (
	"net/http"

	"github.com/vangoframework/wms/internal/middleware"
)

// Home sends signed-in users to the personnel list and everyone else to login.
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	if middleware.GetSession(r.Context()) != nil {
		http.Redirect(w, r, "/personnel", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
