package ports

import (
	"context"
	"time"

	"github.com/peopleops/employee-directory/internal/core/domain"
)

// PageRequest addresses one page of an email-ordered result set.
type PageRequest struct {
	Page int // zero-based page index
	Size int // rows per page, must be > 0
}

// EmployeeRepository defines persistence operations for employee records.
// The store owns the canonical record; every list method returns results
// ordered ascending by email and sliced by the page request.
type EmployeeRepository interface {
	// Insert persists a new employee. Returns domain.ErrEmailExists when the
	// email is already taken (primary-key constraint enforced by the store).
	Insert(ctx context.Context, e *domain.Employee) error
	FindByEmail(ctx context.Context, email string) (*domain.Employee, error)
	Exists(ctx context.Context, email string) (bool, error)

	List(ctx context.Context, page PageRequest) ([]*domain.Employee, error)
	// ListByEmailSuffix matches employees whose email ends with suffix
	// (e.g. "@acme.com").
	ListByEmailSuffix(ctx context.Context, suffix string, page PageRequest) ([]*domain.Employee, error)
	// ListByRole matches employees whose role list contains role exactly.
	ListByRole(ctx context.Context, role string, page PageRequest) ([]*domain.Employee, error)
	// ListByBirthDateRange matches employees born within [from, to] inclusive.
	ListByBirthDateRange(ctx context.Context, from, to time.Time, page PageRequest) ([]*domain.Employee, error)
	// ListByManager matches employees whose manager reference equals managerEmail.
	ListByManager(ctx context.Context, managerEmail string, page PageRequest) ([]*domain.Employee, error)

	// SetManager points the employee's manager reference at managerEmail.
	SetManager(ctx context.Context, email, managerEmail string) error
	// UnsetManager clears the employee's manager reference. It is a no-op
	// when no manager is set.
	UnsetManager(ctx context.Context, email string) error

	// DeleteAll removes every employee record. Irreversible.
	DeleteAll(ctx context.Context) error
}
