package handler

import (
	"github.com/peopleops/employee-directory/internal/core/ports"
)

// --- Request → Service input ---

func toEmployeeInput(req createEmployeeRequest) ports.EmployeeInput {
	return ports.EmployeeInput{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
		BirthDate: ports.BirthDateInput{
			Day:   req.BirthDate.Day,
			Month: req.BirthDate.Month,
			Year:  req.BirthDate.Year,
		},
		Roles: req.Roles,
	}
}

// --- Service result → HTTP response ---

func toEmployeeResponse(r *ports.EmployeeRecord) employeeResponse {
	return employeeResponse{
		Email:    r.Email,
		Name:     r.Name,
		Password: r.Password,
		BirthDate: birthDateSchema{
			Day:   r.BirthDate.Day,
			Month: r.BirthDate.Month,
			Year:  r.BirthDate.Year,
		},
		Roles: r.Roles,
	}
}

func toEmployeeResponses(records []*ports.EmployeeRecord) []employeeResponse {
	out := make([]employeeResponse, 0, len(records))
	for _, r := range records {
		out = append(out, toEmployeeResponse(r))
	}
	return out
}
