package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx
// responses. Declared here for the swagger annotations; the actual encoding
// happens in the central HTTP error handler.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

// birthDateSchema is the fixed-width wire shape of a birth date: day and
// month are zero-padded 2-digit strings, year is 4 digits.
type birthDateSchema struct {
	Day   string `json:"day"`
	Month string `json:"month"`
	Year  string `json:"year"`
}

type createEmployeeRequest struct {
	Email     string          `json:"email"`
	Name      string          `json:"name"`
	Password  string          `json:"password"`
	BirthDate birthDateSchema `json:"birthdate"`
	Roles     []string        `json:"roles"`
}

// bindManagerRequest is the PUT /employees/{email}/manager body.
type bindManagerRequest struct {
	Email string `json:"email"`
}

// employeeResponse mirrors the request shape; password always carries the
// mask placeholder.
type employeeResponse struct {
	Email     string          `json:"email"`
	Name      string          `json:"name"`
	Password  string          `json:"password"`
	BirthDate birthDateSchema `json:"birthdate"`
	Roles     []string        `json:"roles"`
}
