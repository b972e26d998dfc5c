package domain

import (
	"errors"
	"time"
)

// PasswordMask is the fixed placeholder returned in place of the real
// password whenever an employee record crosses the service boundary.
const PasswordMask = "****"

var ErrInvalidInput = errors.New("invalid input")
var ErrEmailExists = errors.New("email already exists")
var ErrUnauthorized = errors.New("invalid email or password")
var ErrEmployeeNotFound = errors.New("employee not found")
var ErrTooManyAttempts = errors.New("too many failed login attempts")

// Employee is the core entity. Email doubles as the natural key, so it is
// stored as the document id. The manager relation is kept as an indexed
// email reference rather than an embedded record.
type Employee struct {
	Email        string    `bson:"_id"`
	Name         string    `bson:"name"`
	Password     string    `bson:"password"`
	BirthDate    time.Time `bson:"birth_date"`
	Roles        []string  `bson:"roles"`
	ManagerEmail string    `bson:"manager_email,omitempty"`
}

// Age returns the employee's age in full years as of the given date.
func (e *Employee) Age(today time.Time) int {
	years := today.Year() - e.BirthDate.Year()
	anniversary := e.BirthDate.AddDate(years, 0, 0)
	if anniversary.After(today) {
		years--
	}
	return years
}
