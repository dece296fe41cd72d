package store

import (
	_ "embed"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/vangoframework/wms/internal/domain"
)

//go:embed fixtures.yaml
var defaultFixtures []byte

// Fixtures is a seed data set.
type Fixtures struct {
	Employees []domain.Employee
	WorkItems []domain.WorkItem
}

type fixtureFile struct {
	Employees []fixtureEmployee `yaml:"employees"`
	WorkItems []fixtureWorkItem `yaml:"work_items"`
}

type fixtureEmployee struct {
	ID         string `yaml:"id"`
	Position   string `yaml:"position"`
	Name       string `yaml:"name"`
	Birthdate  string `yaml:"birthdate"`
	Contact    string `yaml:"contact"`
	Department string `yaml:"department"`
	Status     string `yaml:"status"`
	Note       string `yaml:"note"`
}

type fixtureWorkItem struct {
	ID           string `yaml:"id"`
	Location     string `yaml:"location"`
	Type         string `yaml:"type"`
	Size         string `yaml:"size"`
	MaterialCost string `yaml:"material_cost"`
	LaborCost    string `yaml:"labor_cost"`
	ExpenseCost  string `yaml:"expense_cost"`
	Status       string `yaml:"status"`
}

// DefaultFixtures returns the built-in seed data: 8 employees and 5 work items.
func DefaultFixtures() (Fixtures, error) {
	return ParseFixtures(defaultFixtures)
}

// LoadFixtures reads a YAML seed file.
func LoadFixtures(r io.Reader) (Fixtures, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Fixtures{}, fmt.Errorf("read fixtures: %w", err)
	}
	return ParseFixtures(data)
}

// ParseFixtures decodes YAML seed data. Costs are written with thousands
// separators ("18,350,000").
func ParseFixtures(data []byte) (Fixtures, error) {
	var file fixtureFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Fixtures{}, fmt.Errorf("decode fixtures: %w", err)
	}

	f := Fixtures{
		Employees: make([]domain.Employee, 0, len(file.Employees)),
		WorkItems: make([]domain.WorkItem, 0, len(file.WorkItems)),
	}
	for _, e := range file.Employees {
		f.Employees = append(f.Employees, domain.Employee{
			ID:         e.ID,
			Position:   domain.Position(e.Position),
			Name:       e.Name,
			Birthdate:  e.Birthdate,
			Contact:    e.Contact,
			Department: domain.Department(e.Department),
			Status:     domain.EmployeeStatus(e.Status),
			Note:       e.Note,
		})
	}
	for _, w := range file.WorkItems {
		item := domain.WorkItem{
			ID:       w.ID,
			Location: w.Location,
			Type:     domain.WorkType(w.Type),
			Size:     w.Size,
			Status:   domain.WorkStatus(w.Status),
		}
		var err error
		if item.MaterialCost, err = domain.ParseWon(w.MaterialCost); err != nil {
			return Fixtures{}, fmt.Errorf("work item %s material cost: %w", w.ID, err)
		}
		if item.LaborCost, err = domain.ParseWon(w.LaborCost); err != nil {
			return Fixtures{}, fmt.Errorf("work item %s labor cost: %w", w.ID, err)
		}
		if item.ExpenseCost, err = domain.ParseWon(w.ExpenseCost); err != nil {
			return Fixtures{}, fmt.Errorf("work item %s expense cost: %w", w.ID, err)
		}
		f.WorkItems = append(f.WorkItems, item)
	}
	return f, nil
}
