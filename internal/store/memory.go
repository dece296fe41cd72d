package store

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/vangoframework/wms/internal/domain"
)

// Memory is an in-process Repository. It is safe for concurrent use; List
// methods return copies so callers never share the backing slices.
type Memory struct {
	mu        sync.RWMutex
	employees []domain.Employee
	workItems []domain.WorkItem
}

// NewMemory creates a repository holding a copy of f.
func NewMemory(f Fixtures) *Memory {
	return &Memory{
		employees: slices.Clone(f.Employees),
		workItems: slices.Clone(f.WorkItems),
	}
}

func (m *Memory) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.employees), nil
}

func (m *Memory) GetEmployee(ctx context.Context, id string) (domain.Employee, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	i := m.indexOf(id)
	if i < 0 {
		return domain.Employee{}, ErrNotFound
	}
	return m.employees[i], nil
}

func (m *Memory) CreateEmployee(ctx context.Context, e domain.Employee) (domain.Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e.ID = uuid.NewString()
	m.employees = append(m.employees, e)
	return e, nil
}

func (m *Memory) UpdateEmployee(ctx context.Context, e domain.Employee) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.indexOf(e.ID)
	if i < 0 {
		return ErrNotFound
	}
	m.employees[i] = e
	return nil
}

func (m *Memory) DeleteEmployee(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	m.employees = slices.Delete(m.employees, i, i+1)
	return nil
}

func (m *Memory) ListWorkItems(ctx context.Context) ([]domain.WorkItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.workItems), nil
}

// indexOf must be called with mu held.
func (m *Memory) indexOf(id string) int {
	return slices.IndexFunc(m.employees, func(e domain.Employee) bool { return e.ID == id })
}
