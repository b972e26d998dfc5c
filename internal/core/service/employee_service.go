package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/peopleops/employee-directory/internal/core/domain"
	"github.com/peopleops/employee-directory/internal/core/ports"
)

// EmployeeService implements the directory use cases. It is stateless and
// safe for concurrent use; the repository owns the canonical records.
type EmployeeService struct {
	repo     ports.EmployeeRepository
	throttle ports.LoginThrottle
	logger   zerolog.Logger
}

func NewEmployeeService(repo ports.EmployeeRepository, throttle ports.LoginThrottle, logger zerolog.Logger) *EmployeeService {
	return &EmployeeService{repo: repo, throttle: throttle, logger: logger}
}

// Create validates the input in a fixed order (email format, uniqueness,
// password, birth date, roles) and persists the employee. The first
// violation wins; only the uniqueness check maps to ErrEmailExists, the
// rest to ErrInvalidInput. No store mutation happens before validation
// completes.
func (s *EmployeeService) Create(ctx context.Context, in ports.EmployeeInput) (*ports.EmployeeRecord, error) {
	if !domain.IsValidEmail(in.Email) {
		return nil, fmt.Errorf("%w: malformed email", domain.ErrInvalidInput)
	}

	exists, err := s.repo.Exists(ctx, in.Email)
	if err != nil {
		return nil, fmt.Errorf("create employee: %w", err)
	}
	if exists {
		return nil, domain.ErrEmailExists
	}

	if !domain.IsValidPassword(in.Password) {
		return nil, fmt.Errorf("%w: password needs length >= 3, a digit and an uppercase letter", domain.ErrInvalidInput)
	}

	birthDate, ok := domain.ParseBirthDate(in.BirthDate.Day, in.BirthDate.Month, in.BirthDate.Year)
	if !ok {
		return nil, fmt.Errorf("%w: invalid birth date", domain.ErrInvalidInput)
	}

	if len(in.Roles) == 0 {
		return nil, fmt.Errorf("%w: roles cannot be empty", domain.ErrInvalidInput)
	}
	for _, role := range in.Roles {
		if strings.TrimSpace(role) == "" {
			return nil, fmt.Errorf("%w: roles cannot contain blank entries", domain.ErrInvalidInput)
		}
	}

	employee := &domain.Employee{
		Email:     in.Email,
		Name:      in.Name,
		Password:  in.Password,
		BirthDate: birthDate,
		Roles:     in.Roles,
	}

	// The repository maps a duplicate-key violation to ErrEmailExists, which
	// also covers a create racing past the Exists check above.
	if err := s.repo.Insert(ctx, employee); err != nil {
		if !errors.Is(err, domain.ErrEmailExists) {
			s.logger.Error().Err(err).Str("email", in.Email).Msg("failed to insert employee")
		}
		return nil, err
	}

	s.logger.Info().Str("email", employee.Email).Msg("employee created")
	return toRecord(employee), nil
}

// Authenticate verifies the email/password pair. Malformed email, unknown
// email and wrong password all collapse into ErrUnauthorized.
func (s *EmployeeService) Authenticate(ctx context.Context, email, password string) (*ports.EmployeeRecord, error) {
	if !domain.IsValidEmail(email) {
		return nil, domain.ErrUnauthorized
	}

	locked, err := s.throttle.Locked(ctx, email)
	if err != nil {
		// Degrade open: a throttle outage must not lock everyone out.
		s.logger.Warn().Err(err).Str("email", email).Msg("login throttle check failed, proceeding")
	} else if locked {
		return nil, domain.ErrTooManyAttempts
	}

	employee, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrEmployeeNotFound) {
			s.recordFailure(ctx, email)
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("authenticate: %w", err)
	}

	if subtle.ConstantTimeCompare([]byte(employee.Password), []byte(password)) != 1 {
		s.recordFailure(ctx, email)
		return nil, domain.ErrUnauthorized
	}

	if err := s.throttle.Reset(ctx, email); err != nil {
		s.logger.Warn().Err(err).Str("email", email).Msg("failed to reset login throttle")
	}
	return toRecord(employee), nil
}

func (s *EmployeeService) recordFailure(ctx context.Context, email string) {
	if err := s.throttle.RecordFailure(ctx, email); err != nil {
		s.logger.Warn().Err(err).Str("email", email).Msg("failed to record login failure")
	}
}

// List returns one page of employees matching the criteria, ordered
// ascending by email. Pagination is validated before any store call.
func (s *EmployeeService) List(ctx context.Context, criteria ports.Criteria, page, size int) ([]*ports.EmployeeRecord, error) {
	if err := validatePagination(page, size); err != nil {
		return nil, err
	}
	pr := ports.PageRequest{Page: page, Size: size}

	var (
		employees []*domain.Employee
		err       error
	)
	switch criteria.Kind {
	case ports.CriteriaNone:
		employees, err = s.repo.List(ctx, pr)
	case ports.CriteriaDomain:
		employees, err = s.repo.ListByEmailSuffix(ctx, "@"+criteria.Value, pr)
	case ports.CriteriaRole:
		employees, err = s.repo.ListByRole(ctx, criteria.Value, pr)
	case ports.CriteriaAge:
		age, convErr := strconv.Atoi(criteria.Value)
		if convErr != nil {
			return nil, fmt.Errorf("%w: age must be numeric, got %q", domain.ErrInvalidInput, criteria.Value)
		}
		from, to := ageWindow(age, time.Now().UTC())
		employees, err = s.repo.ListByBirthDateRange(ctx, from, to, pr)
	default:
		return nil, fmt.Errorf("%w: unsupported criteria", domain.ErrInvalidInput)
	}
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	return toRecords(employees), nil
}

// Clean removes every employee record. Irreversible; intended for
// test/reset use.
func (s *EmployeeService) Clean(ctx context.Context) error {
	if err := s.repo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("clean directory: %w", err)
	}
	s.logger.Warn().Msg("employee directory wiped")
	return nil
}

// Bind sets managerEmail as the employee's manager. Both parties must exist;
// a direct self-reference is rejected. Longer management cycles are not
// guarded.
func (s *EmployeeService) Bind(ctx context.Context, employeeEmail, managerEmail string) error {
	if !domain.IsValidEmail(employeeEmail) {
		return fmt.Errorf("%w: invalid employee email", domain.ErrInvalidInput)
	}
	if !domain.IsValidEmail(managerEmail) {
		return fmt.Errorf("%w: invalid manager email", domain.ErrInvalidInput)
	}

	employee, err := s.repo.FindByEmail(ctx, employeeEmail)
	if err != nil {
		return err
	}
	manager, err := s.repo.FindByEmail(ctx, managerEmail)
	if err != nil {
		return err
	}

	if employee.Email == manager.Email {
		return fmt.Errorf("%w: an employee cannot be their own manager", domain.ErrInvalidInput)
	}

	if err := s.repo.SetManager(ctx, employee.Email, manager.Email); err != nil {
		return fmt.Errorf("bind manager: %w", err)
	}
	s.logger.Info().Str("employee", employee.Email).Str("manager", manager.Email).Msg("manager bound")
	return nil
}

// Unbind clears the employee's manager reference. Idempotent: unbinding an
// employee with no manager succeeds.
func (s *EmployeeService) Unbind(ctx context.Context, employeeEmail string) error {
	if !domain.IsValidEmail(employeeEmail) {
		return fmt.Errorf("%w: invalid employee email", domain.ErrInvalidInput)
	}

	if _, err := s.repo.FindByEmail(ctx, employeeEmail); err != nil {
		return err
	}

	if err := s.repo.UnsetManager(ctx, employeeEmail); err != nil {
		return fmt.Errorf("unbind manager: %w", err)
	}
	s.logger.Info().Str("employee", employeeEmail).Msg("manager unbound")
	return nil
}

// GetManager returns the employee's manager record, masked. An absent
// employee and an unset manager both yield ErrEmployeeNotFound.
func (s *EmployeeService) GetManager(ctx context.Context, employeeEmail string) (*ports.EmployeeRecord, error) {
	if !domain.IsValidEmail(employeeEmail) {
		return nil, fmt.Errorf("%w: invalid employee email", domain.ErrInvalidInput)
	}

	employee, err := s.repo.FindByEmail(ctx, employeeEmail)
	if err != nil {
		return nil, err
	}
	if employee.ManagerEmail == "" {
		return nil, fmt.Errorf("%w: employee %s has no manager", domain.ErrEmployeeNotFound, employeeEmail)
	}

	manager, err := s.repo.FindByEmail(ctx, employee.ManagerEmail)
	if err != nil {
		return nil, err
	}
	return toRecord(manager), nil
}

// ListSubordinates returns one page of employees whose manager reference
// equals managerEmail. The manager is not required to exist: an unknown
// manager yields an empty page.
func (s *EmployeeService) ListSubordinates(ctx context.Context, managerEmail string, page, size int) ([]*ports.EmployeeRecord, error) {
	if !domain.IsValidEmail(managerEmail) {
		return nil, fmt.Errorf("%w: invalid manager email", domain.ErrInvalidInput)
	}
	if err := validatePagination(page, size); err != nil {
		return nil, err
	}

	employees, err := s.repo.ListByManager(ctx, managerEmail, ports.PageRequest{Page: page, Size: size})
	if err != nil {
		return nil, fmt.Errorf("list subordinates: %w", err)
	}
	return toRecords(employees), nil
}

func validatePagination(page, size int) error {
	if page < 0 || size <= 0 {
		return fmt.Errorf("%w: page must be >= 0 and size > 0", domain.ErrInvalidInput)
	}
	return nil
}

// ageWindow returns the inclusive birth-date range covering everyone aged
// exactly age as of today: [today - (age+1)y + 1d, today - age y].
func ageWindow(age int, now time.Time) (from, to time.Time) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	from = today.AddDate(-(age + 1), 0, 0).AddDate(0, 0, 1)
	to = today.AddDate(-age, 0, 0)
	return from, to
}

func toRecord(e *domain.Employee) *ports.EmployeeRecord {
	day, month, year := domain.FormatBirthDate(e.BirthDate)
	return &ports.EmployeeRecord{
		Email:     e.Email,
		Name:      e.Name,
		Password:  domain.PasswordMask,
		BirthDate: ports.BirthDateInput{Day: day, Month: month, Year: year},
		Roles:     e.Roles,
	}
}

func toRecords(employees []*domain.Employee) []*ports.EmployeeRecord {
	records := make([]*ports.EmployeeRecord, 0, len(employees))
	for _, e := range employees {
		records = append(records, toRecord(e))
	}
	return records
}
