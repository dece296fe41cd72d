package domain

import (
	"errors"
	"fmt"

	"github.com/vangoframework/wms/internal/listview"
)

// WorkType is the trade a work item belongs to.
type WorkType string

const (
	WorkPlumbing   WorkType = "배관"
	WorkFacilities WorkType = "설비"
	WorkElectrical WorkType = "전기"
	WorkHVAC       WorkType = "냉난방"
)

// WorkTypes lists every work type in display order.
var WorkTypes = []WorkType{WorkPlumbing, WorkFacilities, WorkElectrical, WorkHVAC}

// WorkStatus is the progress state of a work item.
type WorkStatus string

const (
	WorkInProgress WorkStatus = "진행중"
	WorkCompleted  WorkStatus = "완료"
	WorkWaiting    WorkStatus = "대기중"
)

// WorkStatuses lists every work status.
var WorkStatuses = []WorkStatus{WorkInProgress, WorkWaiting, WorkCompleted}

// WorkTab is a status tab on the work screen.
type WorkTab string

const (
	TabAll        WorkTab = "all"
	TabInProgress WorkTab = "in-progress"
	TabWaiting    WorkTab = "waiting"
	TabCompleted  WorkTab = "completed"
)

// WorkTabs lists the tabs in display order.
var WorkTabs = []WorkTab{TabAll, TabInProgress, TabWaiting, TabCompleted}

// ErrUnknownTab is returned for a tab name outside WorkTabs.
var ErrUnknownTab = errors.New("unknown work tab")

// ParseWorkTab parses a tab name; "" means TabAll.
func ParseWorkTab(s string) (WorkTab, error) {
	if s == "" {
		return TabAll, nil
	}
	for _, t := range WorkTabs {
		if string(t) == s {
			return t, nil
		}
	}
	return TabAll, fmt.Errorf("%w: %q", ErrUnknownTab, s)
}

// Status returns the work status the tab shows. TabAll has none.
func (t WorkTab) Status() (WorkStatus, bool) {
	switch t {
	case TabInProgress:
		return WorkInProgress, true
	case TabWaiting:
		return WorkWaiting, true
	case TabCompleted:
		return WorkCompleted, true
	default:
		return "", false
	}
}

// Scope returns the list scope for the tab; nil for TabAll.
func (t WorkTab) Scope() listview.Scope[WorkItem] {
	status, ok := t.Status()
	if !ok {
		return nil
	}
	return func(w WorkItem) bool { return w.Status == status }
}

// WorkItem is one construction work order.
type WorkItem struct {
	ID           string     `json:"id"`
	Location     string     `json:"location"`
	Type         WorkType   `json:"type"`
	Size         string     `json:"size"`
	MaterialCost Won        `json:"material_cost"`
	LaborCost    Won        `json:"labor_cost"`
	ExpenseCost  Won        `json:"expense_cost"`
	Status       WorkStatus `json:"status"`
}

// TotalCost is material + labor + expense.
func (w WorkItem) TotalCost() Won {
	return w.MaterialCost + w.LaborCost + w.ExpenseCost
}

// WorkRules filters by work type and searches id and location case-insensitively.
func WorkRules() listview.Rules[WorkItem, WorkType] {
	return listview.Rules[WorkItem, WorkType]{
		Search: listview.ContainsFold(
			func(w WorkItem) string { return w.ID },
			func(w WorkItem) string { return w.Location },
		),
		Category: func(w WorkItem) WorkType { return w.Type },
	}
}

// NewWorkList mounts a work list view over items.
func NewWorkList(items []WorkItem, pageSize int) *listview.Engine[WorkItem, WorkType] {
	return listview.New(items, WorkRules(), listview.WithPageSize(pageSize))
}

// ParseWorkTypeFilter parses the work type select value ("all" or a type).
func ParseWorkTypeFilter(s string) (listview.Filter[WorkType], error) {
	return listview.ParseFilter(s, WorkTypes...)
}
