package store

import (
	"context"
	"time"

	"github.com/vangoframework/wms/internal/domain"
)

// Delayed wraps a Repository and holds every write for a fixed delay before
// passing it on, the way a remote call would. Reads are not delayed.
type Delayed struct {
	Repository
	delay time.Duration
}

// NewDelayed wraps repo. A non-positive delay disables the wait.
func NewDelayed(repo Repository, delay time.Duration) *Delayed {
	return &Delayed{Repository: repo, delay: delay}
}

func (d *Delayed) CreateEmployee(ctx context.Context, e domain.Employee) (domain.Employee, error) {
	if err := d.wait(ctx); err != nil {
		return domain.Employee{}, err
	}
	return d.Repository.CreateEmployee(ctx, e)
}

func (d *Delayed) UpdateEmployee(ctx context.Context, e domain.Employee) error {
	if err := d.wait(ctx); err != nil {
		return err
	}
	return d.Repository.UpdateEmployee(ctx, e)
}

func (d *Delayed) DeleteEmployee(ctx context.Context, id string) error {
	if err := d.wait(ctx); err != nil {
		return err
	}
	return d.Repository.DeleteEmployee(ctx, id)
}

func (d *Delayed) wait(ctx context.Context) error {
	if d.delay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d.delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
