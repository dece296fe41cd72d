// Package store provides the data sources behind the list views and forms.
package store

import (
	"context"
	"errors"

	"github.com/vangoframework/wms/internal/domain"
)

// ErrNotFound is returned when no record has the requested ID.
var ErrNotFound = errors.New("record not found")

// EmployeeRepository reads and writes employees.
type EmployeeRepository interface {
	ListEmployees(ctx context.Context) ([]domain.Employee, error)
	GetEmployee(ctx context.Context, id string) (domain.Employee, error)
	// CreateEmployee stores e under a newly generated ID and returns it.
	CreateEmployee(ctx context.Context, e domain.Employee) (domain.Employee, error)
	UpdateEmployee(ctx context.Context, e domain.Employee) error
	DeleteEmployee(ctx context.Context, id string) error
}

// WorkItemRepository reads work items.
type WorkItemRepository interface {
	ListWorkItems(ctx context.Context) ([]domain.WorkItem, error)
}

// Repository is everything the application reads and writes.
type Repository interface {
	EmployeeRepository
	WorkItemRepository
}
