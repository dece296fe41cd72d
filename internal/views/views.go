// Package views renders the HTML pages. Each page is a templ.Component backed
// by an html/template set parsed from the embedded templates directory.
package views

import (
	"context"
	"embed"
	"html/template"
	"io"
	"net/url"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/vangoframework/wms/internal/auth"
	"github.com/vangoframework/wms/internal/domain"
	"github.com/vangoframework/wms/internal/listview"
)

//go:embed templates/*.html
var templateFS embed.FS

// EmptyMessage is the placeholder row shown when a list has no matches.
const EmptyMessage = "검색 결과가 없습니다."

var funcs = template.FuncMap{
	"won":   domain.FormatWon,
	"cn":    CN,
	"add":   func(a, b int) int { return a + b },
	"empty": func() string { return EmptyMessage },
}

var pages = map[string]*template.Template{
	"login":     parse("login.html"),
	"personnel": parse("layout.html", "personnel.html"),
	"employee":  parse("layout.html", "employee_form.html"),
	"work":      parse("layout.html", "work.html"),
}

func parse(files ...string) *template.Template {
	patterns := make([]string, len(files))
	for i, f := range files {
		patterns[i] = "templates/" + f
	}
	return template.Must(template.New(files[0]).Funcs(funcs).ParseFS(templateFS, patterns...))
}

func render(page string, data any) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		t := pages[page]
		name := "layout"
		if page == "login" {
			name = "login"
		}
		return t.ExecuteTemplate(w, name, data)
	})
}

// CN merges class lists, dropping empty entries and exact duplicates.
func CN(inputs ...string) string {
	var classes []string
	seen := make(map[string]bool)
	for _, input := range inputs {
		for _, part := range strings.Fields(input) {
			if !seen[part] {
				classes = append(classes, part)
				seen[part] = true
			}
		}
	}
	return strings.Join(classes, " ")
}

// Chrome is the layout data shared by every signed-in page.
type Chrome struct {
	Title      string
	ActivePage string
	User       *auth.SessionData
	Flash      *auth.Flash
}

// UserName is the name shown in the header.
func (c Chrome) UserName() string {
	if c.User == nil {
		return ""
	}
	return c.User.Username
}

// ListQuery is the state a list page carries between requests.
type ListQuery struct {
	Path     string
	Search   string
	Category string
	Tab      string
	Page     int
}

func (q ListQuery) values() url.Values {
	v := url.Values{}
	if q.Search != "" {
		v.Set("q", q.Search)
	}
	if q.Category != "" && q.Category != listview.AllValue {
		v.Set(q.categoryKey(), q.Category)
	}
	if q.Tab != "" && q.Tab != string(domain.TabAll) {
		v.Set("tab", q.Tab)
	}
	if q.Page > 1 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	return v
}

func (q ListQuery) categoryKey() string {
	if q.Path == "/work" {
		return "type"
	}
	return "status"
}

// GotoURL links to an explicit page change.
func (q ListQuery) GotoURL(page int) string {
	v := q.values()
	v.Set("goto", strconv.Itoa(page))
	return q.Path + "?" + v.Encode()
}

// TabURL links to another tab, keeping search and type.
func (q ListQuery) TabURL(tab domain.WorkTab) string {
	q.Tab = string(tab)
	if enc := q.values().Encode(); enc != "" {
		return q.Path + "?" + enc
	}
	return q.Path
}

// Option is one select option.
type Option struct {
	Value    string
	Label    string
	Selected bool
}

func options[T ~string](allLabel string, selected string, values []T) []Option {
	opts := []Option{}
	if allLabel != "" {
		opts = append(opts, Option{Value: listview.AllValue, Label: allLabel, Selected: selected == "" || selected == listview.AllValue})
	}
	for _, v := range values {
		opts = append(opts, Option{Value: string(v), Label: string(v), Selected: string(v) == selected})
	}
	return opts
}

// LoginView is the data for the login page.
type LoginView struct {
	Username string
	Errors   domain.FieldErrors
	Flash    *auth.Flash
}

// Login renders the sign-in page.
func Login(v LoginView) templ.Component {
	return render("login", v)
}

// PersonnelView is the data for the personnel list.
type PersonnelView struct {
	Chrome
	Query  ListQuery
	Result listview.Result[domain.Employee]
}

// StatusOptions lists the status select options.
func (v PersonnelView) StatusOptions() []Option {
	return options("전체", v.Query.Category, domain.EmployeeStatuses)
}

// StatusBadge returns the badge classes for an employee status.
func (v PersonnelView) StatusBadge(s domain.EmployeeStatus) string {
	if s == domain.EmployeeActive {
		return CN("badge", "bg-green-100 text-green-800")
	}
	return CN("badge", "bg-gray-100 text-gray-800")
}

// Personnel renders the personnel list.
func Personnel(v PersonnelView) templ.Component {
	return render("personnel", v)
}

// EmployeeFormView is the data for the employee create/edit form.
type EmployeeFormView struct {
	Chrome
	Edit     bool
	Employee domain.Employee
	Errors   domain.FieldErrors
}

// Heading is the card title.
func (v EmployeeFormView) Heading() string {
	if v.Edit {
		return "직원 정보 수정"
	}
	return "직원 등록"
}

// Description is the card description.
func (v EmployeeFormView) Description() string {
	if v.Edit {
		return "직원 정보를 수정하고 저장 버튼을 클릭하세요."
	}
	return "새로운 직원 정보를 입력하고 등록 버튼을 클릭하세요."
}

// SubmitLabel is the submit button label.
func (v EmployeeFormView) SubmitLabel() string {
	if v.Edit {
		return "저장"
	}
	return "등록"
}

// PositionOptions lists the position select options.
func (v EmployeeFormView) PositionOptions() []Option {
	return options("", string(v.Employee.Position), domain.Positions)
}

// DepartmentOptions lists the department select options.
func (v EmployeeFormView) DepartmentOptions() []Option {
	return options("", string(v.Employee.Department), domain.Departments)
}

// StatusOptions lists the status radio options.
func (v EmployeeFormView) StatusOptions() []Option {
	return options("", string(v.Employee.Status), domain.EmployeeStatuses)
}

// EmployeeForm renders the employee form.
func EmployeeForm(v EmployeeFormView) templ.Component {
	return render("employee", v)
}

// WorkView is the data for the work list.
type WorkView struct {
	Chrome
	Query   ListQuery
	Result  listview.Result[domain.WorkItem]
	Summary domain.WorkSummary
}

// TypeOptions lists the work type select options.
func (v WorkView) TypeOptions() []Option {
	return options("전체 공종", v.Query.Category, domain.WorkTypes)
}

// Tab is one tab trigger.
type Tab struct {
	Label  string
	URL    string
	Active bool
}

var tabLabels = map[domain.WorkTab]string{
	domain.TabAll:        "전체",
	domain.TabInProgress: "진행 중",
	domain.TabWaiting:    "대기 중",
	domain.TabCompleted:  "완료",
}

// Tabs lists the status tabs.
func (v WorkView) Tabs() []Tab {
	active := domain.WorkTab(v.Query.Tab)
	if active == "" {
		active = domain.TabAll
	}
	tabs := make([]Tab, 0, len(domain.WorkTabs))
	for _, t := range domain.WorkTabs {
		tabs = append(tabs, Tab{Label: tabLabels[t], URL: v.Query.TabURL(t), Active: t == active})
	}
	return tabs
}

// StatusBadge returns the pill classes for a work status.
func (v WorkView) StatusBadge(s domain.WorkStatus) string {
	switch s {
	case domain.WorkInProgress:
		return CN("pill", "bg-blue-100 text-blue-800")
	case domain.WorkCompleted:
		return CN("pill", "bg-green-100 text-green-800")
	default:
		return CN("pill", "bg-yellow-100 text-yellow-800")
	}
}

// InProgress is the in-progress card count.
func (v WorkView) InProgress() int { return v.Summary.Count(domain.WorkInProgress) }

// InProgressPercent is the in-progress share of all work.
func (v WorkView) InProgressPercent() int { return v.Summary.Percent(domain.WorkInProgress) }

// Completed is the completed card count.
func (v WorkView) Completed() int { return v.Summary.Count(domain.WorkCompleted) }

// CompletedPercent is the completed share of all work.
func (v WorkView) CompletedPercent() int { return v.Summary.Percent(domain.WorkCompleted) }

// Work renders the work list.
func Work(v WorkView) templ.Component {
	return render("work", v)
}
