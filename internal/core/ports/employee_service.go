package ports

import "context"

// BirthDateInput carries the wire-facing date components. Day and month are
// zero-padded 2-digit strings, year is 4 digits.
type BirthDateInput struct {
	Day   string
	Month string
	Year  string
}

// EmployeeInput is the DTO passed from the transport layer when creating an
// employee. Password arrives in plaintext.
type EmployeeInput struct {
	Email     string
	Name      string
	Password  string
	BirthDate BirthDateInput
	Roles     []string
}

// EmployeeRecord is the boundary view of an employee. Password always
// carries the mask placeholder, never the stored value.
type EmployeeRecord struct {
	Email     string
	Name      string
	Password  string
	BirthDate BirthDateInput
	Roles     []string
}

// CriteriaKind enumerates the supported listing filters.
type CriteriaKind int

const (
	CriteriaNone CriteriaKind = iota
	CriteriaDomain
	CriteriaRole
	CriteriaAge
)

// String returns the wire name of the criteria, also used as a metric label.
func (k CriteriaKind) String() string {
	switch k {
	case CriteriaDomain:
		return "byEmailDomain"
	case CriteriaRole:
		return "byRole"
	case CriteriaAge:
		return "byAge"
	default:
		return "none"
	}
}

// Criteria is the closed filter variant built and validated once at the
// transport boundary. Value is empty iff Kind is CriteriaNone.
type Criteria struct {
	Kind  CriteriaKind
	Value string
}

// EmployeeService defines the directory use cases.
type EmployeeService interface {
	// Create validates and persists a new employee, returning the stored
	// record with its password masked.
	Create(ctx context.Context, in EmployeeInput) (*EmployeeRecord, error)
	// Authenticate verifies the email/password pair. Bad format, unknown
	// email and password mismatch all yield domain.ErrUnauthorized so
	// callers cannot enumerate registered emails.
	Authenticate(ctx context.Context, email, password string) (*EmployeeRecord, error)
	// List returns one page of employees matching criteria, ordered
	// ascending by email.
	List(ctx context.Context, criteria Criteria, page, size int) ([]*EmployeeRecord, error)
	// Clean removes every employee record. Intended for test/reset use.
	Clean(ctx context.Context) error

	// Bind sets managerEmail as the employee's manager.
	Bind(ctx context.Context, employeeEmail, managerEmail string) error
	// Unbind clears the employee's manager reference; no error when none
	// is set.
	Unbind(ctx context.Context, employeeEmail string) error
	// GetManager returns the employee's manager record, masked.
	GetManager(ctx context.Context, employeeEmail string) (*EmployeeRecord, error)
	// ListSubordinates returns one page of employees managed by
	// managerEmail, ordered ascending by email. The manager itself is not
	// required to exist; an unknown manager yields an empty page.
	ListSubordinates(ctx context.Context, managerEmail string, page, size int) ([]*EmployeeRecord, error)
}
