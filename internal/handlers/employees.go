package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/vangoframework/wms/internal/auth"
	"github.com/vangoframework/wms/internal/domain"
	"github.com/vangoframework/wms/internal/store"
	"github.com/vangoframework/wms/internal/views"
)

// employeeForm is the posted employee form.
type employeeForm struct {
	ID         string `schema:"id"`
	Name       string `schema:"name"`
	Birthdate  string `schema:"birthdate"`
	Contact    string `schema:"contact"`
	Position   string `schema:"position"`
	Department string `schema:"department"`
	Status     string `schema:"status"`
	Note       string `schema:"note"`
}

func (f employeeForm) employee() domain.Employee {
	return domain.Employee{
		ID:         strings.TrimSpace(f.ID),
		Name:       strings.TrimSpace(f.Name),
		Birthdate:  strings.TrimSpace(f.Birthdate),
		Contact:    strings.TrimSpace(f.Contact),
		Position:   domain.Position(f.Position),
		Department: domain.Department(f.Department),
		Status:     domain.EmployeeStatus(f.Status),
		Note:       f.Note,
	}
}

// EmployeeForm renders the create form, or the edit form when ?id= is given.
func (h *Handlers) EmployeeForm(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.URL.Query().Get("id")

	employee := domain.Employee{Status: domain.EmployeeActive}
	if id != "" {
		var err error
		employee, err = h.repo.GetEmployee(ctx, id)
		if errors.Is(err, store.ErrNotFound) {
			h.flash(w, auth.FlashError, "직원 정보를 찾을 수 없습니다.")
			http.Redirect(w, r, "/personnel", http.StatusSeeOther)
			return
		}
		if err != nil {
			h.logger.Error("failed to get employee", "id", id, "error", err)
			http.Error(w, "Failed to load employee", http.StatusInternalServerError)
			return
		}
	}

	h.renderEmployeeForm(w, r, http.StatusOK, employee, nil, nil)
}

// SaveEmployee creates or updates an employee from the posted form.
func (h *Handlers) SaveEmployee(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	var form employeeForm
	if err := h.decoder.Decode(&form, r.PostForm); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}
	employee := form.employee()

	if err := employee.Validate(); err != nil {
		var fieldErrs domain.FieldErrors
		errors.As(err, &fieldErrs)
		h.renderEmployeeForm(w, r, http.StatusUnprocessableEntity, employee, fieldErrs, nil)
		return
	}

	var (
		err     error
		message string
	)
	if employee.ID != "" {
		err = h.repo.UpdateEmployee(ctx, employee)
		message = "직원 정보가 수정되었습니다."
	} else {
		employee, err = h.repo.CreateEmployee(ctx, employee)
		message = "직원이 등록되었습니다."
	}

	switch {
	case errors.Is(err, store.ErrNotFound):
		h.flash(w, auth.FlashError, "직원 정보를 찾을 수 없습니다.")
		http.Redirect(w, r, "/personnel", http.StatusSeeOther)
		return
	case err != nil:
		h.logger.Error("failed to save employee", "id", employee.ID, "error", err)
		h.renderEmployeeForm(w, r, http.StatusInternalServerError, employee, nil,
			&auth.Flash{Kind: auth.FlashError, Message: "저장에 실패했습니다. 다시 시도해주세요."})
		return
	}

	h.logger.Info("employee saved", "id", employee.ID)
	h.flash(w, auth.FlashSuccess, message)
	http.Redirect(w, r, "/personnel", http.StatusSeeOther)
}

// DeleteEmployee removes the posted employee.
func (h *Handlers) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}
	id := r.PostForm.Get("id")

	err := h.repo.DeleteEmployee(r.Context(), id)
	switch {
	case errors.Is(err, store.ErrNotFound):
		h.flash(w, auth.FlashError, "직원 정보를 찾을 수 없습니다.")
		http.Redirect(w, r, "/personnel", http.StatusSeeOther)
		return
	case err != nil:
		h.logger.Error("failed to delete employee", "id", id, "error", err)
		h.flash(w, auth.FlashError, "삭제에 실패했습니다. 다시 시도해주세요.")
		http.Redirect(w, r, "/employee-form?id="+url.QueryEscape(id), http.StatusSeeOther)
		return
	}

	h.logger.Info("employee deleted", "id", id)
	h.flash(w, auth.FlashSuccess, "직원이 삭제되었습니다.")
	http.Redirect(w, r, "/personnel", http.StatusSeeOther)
}

func (h *Handlers) renderEmployeeForm(w http.ResponseWriter, r *http.Request, status int, e domain.Employee, errs domain.FieldErrors, flash *auth.Flash) {
	v := views.EmployeeFormView{
		Edit:     e.ID != "",
		Employee: e,
		Errors:   errs,
	}
	title := v.Heading()
	v.Chrome = h.chrome(w, r, title, "인사")
	if flash != nil {
		v.Chrome.Flash = flash
	}

	w.WriteHeader(status)
	views.EmployeeForm(v).Render(r.Context(), w)
}
