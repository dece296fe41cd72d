package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/vangoframework/wms/internal/database"
	"github.com/vangoframework/wms/internal/domain"
)

// Postgres is a Repository backed by PostgreSQL. Rows are listed in
// insertion order so list views keep a stable order.
type Postgres struct {
	db *database.DB
}

// NewPostgres creates a repository on db. Call database.DB.Migrate first.
func NewPostgres(db *database.DB) *Postgres {
	return &Postgres{db: db}
}

func (p *Postgres) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	rows, err := p.db.Pool.Query(ctx, `
		SELECT id, position, name, birthdate, contact, department, status, note
		FROM employees
		ORDER BY seq ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()

	employees := []domain.Employee{}
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

func (p *Postgres) GetEmployee(ctx context.Context, id string) (domain.Employee, error) {
	row := p.db.Pool.QueryRow(ctx, `
		SELECT id, position, name, birthdate, contact, department, status, note
		FROM employees WHERE id = $1
	`, id)
	e, err := scanEmployee(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Employee{}, ErrNotFound
	}
	return e, err
}

func (p *Postgres) CreateEmployee(ctx context.Context, e domain.Employee) (domain.Employee, error) {
	e.ID = uuid.NewString()
	_, err := p.db.Pool.Exec(ctx, `
		INSERT INTO employees (id, position, name, birthdate, contact, department, status, note)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, e.ID, string(e.Position), e.Name, e.Birthdate, e.Contact, string(e.Department), string(e.Status), e.Note)
	if err != nil {
		return domain.Employee{}, fmt.Errorf("create employee: %w", err)
	}
	return e, nil
}

func (p *Postgres) UpdateEmployee(ctx context.Context, e domain.Employee) error {
	tag, err := p.db.Pool.Exec(ctx, `
		UPDATE employees
		SET position = $2, name = $3, birthdate = $4, contact = $5, department = $6, status = $7, note = $8
		WHERE id = $1
	`, e.ID, string(e.Position), e.Name, e.Birthdate, e.Contact, string(e.Department), string(e.Status), e.Note)
	if err != nil {
		return fmt.Errorf("update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (p *Postgres) DeleteEmployee(ctx context.Context, id string) error {
	tag, err := p.db.Pool.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (p *Postgres) ListWorkItems(ctx context.Context) ([]domain.WorkItem, error) {
	rows, err := p.db.Pool.Query(ctx, `
		SELECT id, location, type, size, material_cost, labor_cost, expense_cost, status
		FROM work_items
		ORDER BY seq ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list work items: %w", err)
	}
	defer rows.Close()

	items := []domain.WorkItem{}
	for rows.Next() {
		var (
			w                        domain.WorkItem
			workType, status         string
			material, labor, expense int64
		)
		if err := rows.Scan(&w.ID, &w.Location, &workType, &w.Size, &material, &labor, &expense, &status); err != nil {
			return nil, fmt.Errorf("scan work item: %w", err)
		}
		w.Type = domain.WorkType(workType)
		w.Status = domain.WorkStatus(status)
		w.MaterialCost = domain.Won(material)
		w.LaborCost = domain.Won(labor)
		w.ExpenseCost = domain.Won(expense)
		items = append(items, w)
	}
	return items, rows.Err()
}

// Seed inserts f when both tables are empty. It runs in one transaction.
func (p *Postgres) Seed(ctx context.Context, f Fixtures) error {
	tx, err := p.db.Pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var count int
	if err := tx.QueryRow(ctx, `SELECT (SELECT count(*) FROM employees) + (SELECT count(*) FROM work_items)`).Scan(&count); err != nil {
		return fmt.Errorf("count rows: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, e := range f.Employees {
		_, err := tx.Exec(ctx, `
			INSERT INTO employees (id, position, name, birthdate, contact, department, status, note)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, e.ID, string(e.Position), e.Name, e.Birthdate, e.Contact, string(e.Department), string(e.Status), e.Note)
		if err != nil {
			return fmt.Errorf("seed employee %s: %w", e.ID, err)
		}
	}
	for _, w := range f.WorkItems {
		_, err := tx.Exec(ctx, `
			INSERT INTO work_items (id, location, type, size, material_cost, labor_cost, expense_cost, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, w.ID, w.Location, string(w.Type), w.Size, int64(w.MaterialCost), int64(w.LaborCost), int64(w.ExpenseCost), string(w.Status))
		if err != nil {
			return fmt.Errorf("seed work item %s: %w", w.ID, err)
		}
	}

	return tx.Commit(ctx)
}

func scanEmployee(row pgx.Row) (domain.Employee, error) {
	var (
		e                            domain.Employee
		position, department, status string
	)
	if err := row.Scan(&e.ID, &position, &e.Name, &e.Birthdate, &e.Contact, &department, &status, &e.Note); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Employee{}, err
		}
		return domain.Employee{}, fmt.Errorf("scan employee: %w", err)
	}
	e.Position = domain.Position(position)
	e.Department = domain.Department(department)
	e.Status = domain.EmployeeStatus(status)
	return e, nil
}
