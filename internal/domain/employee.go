package domain

import (
	"github.com/vangoframework/wms/internal/listview"
)

// EmployeeStatus is an employee's employment state.
type EmployeeStatus string

const (
	EmployeeActive   EmployeeStatus = "재직중"
	EmployeeResigned EmployeeStatus = "퇴사"
)

// EmployeeStatuses lists every status in display order.
var EmployeeStatuses = []EmployeeStatus{EmployeeActive, EmployeeResigned}

// Position is an employee's rank.
type Position string

const (
	PositionStaff      Position = "사원"
	PositionTeamLead   Position = "팀장"
	PositionSupervisor Position = "책임자"
	PositionManager    Position = "관리자"
)

// Positions lists every position in display order.
var Positions = []Position{PositionStaff, PositionTeamLead, PositionSupervisor, PositionManager}

// Department is the trade an employee belongs to.
type Department string

const (
	DepartmentFacilities Department = "설비"
	DepartmentElectrical Department = "전기"
	DepartmentPlumbing   Department = "배관"
	DepartmentHVAC       Department = "냉난방"
	DepartmentAdmin      Department = "행정"
)

// Departments lists every department in display order.
var Departments = []Department{
	DepartmentFacilities,
	DepartmentElectrical,
	DepartmentPlumbing,
	DepartmentHVAC,
	DepartmentAdmin,
}

// Employee is one row of the personnel list.
type Employee struct {
	ID         string         `json:"id"`
	Position   Position       `json:"position"`
	Name       string         `json:"name"`
	Birthdate  string         `json:"birthdate"`
	Contact    string         `json:"contact"`
	Department Department     `json:"department"`
	Status     EmployeeStatus `json:"status"`
	Note       string         `json:"note"`
}

// EmployeeRules filters by status and searches name, position and contact
// verbatim (case-sensitive).
func EmployeeRules() listview.Rules[Employee, EmployeeStatus] {
	return listview.Rules[Employee, EmployeeStatus]{
		Search: listview.Contains(
			func(e Employee) string { return e.Name },
			func(e Employee) string { return string(e.Position) },
			func(e Employee) string { return e.Contact },
		),
		Category: func(e Employee) EmployeeStatus { return e.Status },
	}
}

// NewEmployeeList mounts a personnel list view over employees.
func NewEmployeeList(employees []Employee, pageSize int) *listview.Engine[Employee, EmployeeStatus] {
	return listview.New(employees, EmployeeRules(), listview.WithPageSize(pageSize))
}

// ParseEmployeeStatusFilter parses the status select value ("all" or a status).
func ParseEmployeeStatusFilter(s string) (listview.Filter[EmployeeStatus], error) {
	return listview.ParseFilter(s, EmployeeStatuses...)
}
