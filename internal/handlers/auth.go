package handlers

import (
	"errors"
	"net/http"

	"github.com/vangoframework/wms/internal/auth"
	"github.com/vangoframework/wms/internal/domain"
	"github.com/vangoframework/wms/internal/middleware"
	"github.com/vangoframework/wms/internal/views"
)

// Login renders the login page.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	if middleware.GetSession(r.Context()) != nil {
		http.Redirect(w, r, "/personnel", http.StatusSeeOther)
		return
	}
	flash, _ := h.sessions.PopFlash(w, r)
	views.Login(views.LoginView{Flash: flash}).Render(r.Context(), w)
}

// LoginSubmit signs in with the posted credentials.
func (h *Handlers) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}
	username := r.PostForm.Get("username")

	session, err := auth.Login(username, r.PostForm.Get("password"))
	if err != nil {
		var fieldErrs domain.FieldErrors
		if !errors.As(err, &fieldErrs) {
			fieldErrs = domain.FieldErrors{}
		}
		w.WriteHeader(http.StatusUnprocessableEntity)
		views.Login(views.LoginView{
			Username: username,
			Errors:   fieldErrs,
			Flash:    &auth.Flash{Kind: auth.FlashError, Message: "로그인에 실패했습니다. 다시 시도해주세요."},
		}).Render(r.Context(), w)
		return
	}

	if err := h.sessions.Set(w, session); err != nil {
		h.logger.Error("failed to set session", "error", err)
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	h.logger.Info("user signed in", "user", session.Username)
	h.flash(w, auth.FlashSuccess, "로그인 성공")
	http.Redirect(w, r, "/personnel", http.StatusSeeOther)
}

// ForgotPassword answers the password-reset link, which is not available yet.
func (h *Handlers) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	h.flash(w, auth.FlashInfo, "비밀번호 찾기 기능은 준비 중입니다.")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// Logout clears the session and redirects to login.
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Clear(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// flash queues a message for the next page; failures are only logged.
func (h *Handlers) flash(w http.ResponseWriter, kind auth.FlashKind, msg string) {
	if err := h.sessions.SetFlash(w, auth.Flash{Kind: kind, Message: msg}); err != nil {
		h.logger.Error("failed to set flash", "error", err)
	}
}

// chrome collects the layout data for a signed-in page and consumes the flash.
func (h *Handlers) chrome(w http.ResponseWriter, r *http.Request, title, active string) views.Chrome {
	flash, _ := h.sessions.PopFlash(w, r)
	return views.Chrome{
		Title:      title,
		ActivePage: active,
		User:       middleware.GetSession(r.Context()),
		Flash:      flash,
	}
}
