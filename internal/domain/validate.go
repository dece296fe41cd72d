package domain

import (
	"errors"
	"maps"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"
)

// Employee form validation errors. Messages are shown next to the field.
var (
	ErrNameTooShort       = errors.New("이름은 최소 2자 이상이어야 합니다.")
	ErrBirthdateFormat    = errors.New("YYYY-MM-DD 형식으로 입력해주세요.")
	ErrContactFormat      = errors.New("000-0000-0000 형식으로 입력해주세요.")
	ErrPositionRequired   = errors.New("직급을 선택해주세요.")
	ErrDepartmentRequired = errors.New("부서를 선택해주세요.")
	ErrStatusRequired     = errors.New("상태를 선택해주세요.")
)

// Login form validation errors.
var (
	ErrUsernameTooShort = errors.New("아이디는 최소 4자 이상이어야 합니다.")
	ErrPasswordTooShort = errors.New("비밀번호는 최소 6자 이상이어야 합니다.")
)

var (
	birthdateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	contactRegex   = regexp.MustCompile(`^\d{3}-\d{4}-\d{4}$`)
)

// FieldErrors maps form field names to their validation error.
type FieldErrors map[string]error

func (fe FieldErrors) Error() string {
	msgs := make([]string, 0, len(fe))
	for _, field := range slices.Sorted(maps.Keys(fe)) {
		msgs = append(msgs, field+": "+fe[field].Error())
	}
	return strings.Join(msgs, "; ")
}

// Unwrap exposes the individual errors to errors.Is.
func (fe FieldErrors) Unwrap() []error {
	errs := make([]error, 0, len(fe))
	for _, err := range fe {
		errs = append(errs, err)
	}
	return errs
}

// Get returns the message for field, or "".
func (fe FieldErrors) Get(field string) string {
	if err, ok := fe[field]; ok {
		return err.Error()
	}
	return ""
}

// Validate checks an employee as submitted by the form.
// It returns nil or a FieldErrors keyed by form field name.
func (e Employee) Validate() error {
	errs := FieldErrors{}

	if utf8.RuneCountInString(e.Name) < 2 {
		errs["name"] = ErrNameTooShort
	}
	if !birthdateRegex.MatchString(e.Birthdate) {
		errs["birthdate"] = ErrBirthdateFormat
	}
	if !contactRegex.MatchString(e.Contact) {
		errs["contact"] = ErrContactFormat
	}
	if !slices.Contains(Positions, e.Position) {
		errs["position"] = ErrPositionRequired
	}
	if !slices.Contains(Departments, e.Department) {
		errs["department"] = ErrDepartmentRequired
	}
	if !slices.Contains(EmployeeStatuses, e.Status) {
		errs["status"] = ErrStatusRequired
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ValidateCredentials checks the login form. Credentials are not verified
// against anything; any well-formed pair signs in.
func ValidateCredentials(username, password string) error {
	errs := FieldErrors{}
	if utf8.RuneCountInString(username) < 4 {
		errs["username"] = ErrUsernameTooShort
	}
	if utf8.RuneCountInString(password) < 6 {
		errs["password"] = ErrPasswordTooShort
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
