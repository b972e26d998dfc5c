package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/peopleops/employee-directory/internal/api/metrics"
	"github.com/peopleops/employee-directory/internal/core/domain"
	"github.com/peopleops/employee-directory/internal/core/ports"
)

const (
	defaultPage = 0
	defaultSize = 10
)

// EmployeeHandler handles HTTP requests for the employee directory.
// Domain errors are returned as-is and mapped to status codes by the
// central HTTP error handler.
type EmployeeHandler struct {
	service ports.EmployeeService
}

func NewEmployeeHandler(service ports.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{service: service}
}

// Create handles POST /employees.
//
// @Summary      Create a new employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        body  body      createEmployeeRequest  true  "Employee record with plaintext password"
// @Success      201   {object}  employeeResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /employees [post]
func (h *EmployeeHandler) Create(c echo.Context) error {
	var req createEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	record, err := h.service.Create(c.Request().Context(), toEmployeeInput(req))
	if err != nil {
		return err
	}

	metrics.EmployeesCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toEmployeeResponse(record))
}

// Authenticate handles GET /employees/:email?password=.
//
// @Summary      Authenticate an employee by email and password
// @Tags         employees
// @Produce      json
// @Param        email     path      string  true  "Employee email"
// @Param        password  query     string  true  "Plaintext password"
// @Success      200       {object}  employeeResponse
// @Failure      400       {object}  errorResponse
// @Failure      401       {object}  errorResponse
// @Failure      429       {object}  errorResponse
// @Router       /employees/{email} [get]
func (h *EmployeeHandler) Authenticate(c echo.Context) error {
	if !c.QueryParams().Has("password") {
		return fmt.Errorf("%w: missing 'password' parameter", domain.ErrInvalidInput)
	}

	record, err := h.service.Authenticate(c.Request().Context(), c.Param("email"), c.QueryParam("password"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnauthorized):
			metrics.AuthAttemptsTotal.WithLabelValues("failure").Inc()
		case errors.Is(err, domain.ErrTooManyAttempts):
			metrics.AuthAttemptsTotal.WithLabelValues("throttled").Inc()
		}
		return err
	}

	metrics.AuthAttemptsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, toEmployeeResponse(record))
}

// List handles GET /employees?criteria=&value=&page=&size=.
//
// @Summary      List employees, optionally filtered
// @Tags         employees
// @Produce      json
// @Param        criteria  query     string  false  "Filter criteria"  Enums(byEmailDomain, byRole, byAge)
// @Param        value     query     string  false  "Filter value; required when criteria is set"
// @Param        page      query     int     false  "Zero-based page index"  default(0)
// @Param        size      query     int     false  "Page size"              default(10)
// @Success      200       {array}   employeeResponse
// @Failure      400       {object}  errorResponse
// @Router       /employees [get]
func (h *EmployeeHandler) List(c echo.Context) error {
	criteria, err := parseCriteria(c.QueryParam("criteria"), c.QueryParam("value"))
	if err != nil {
		return err
	}
	page, size, err := pageParams(c)
	if err != nil {
		return err
	}

	records, err := h.service.List(c.Request().Context(), criteria, page, size)
	if err != nil {
		return err
	}

	metrics.QueriesTotal.WithLabelValues(criteria.Kind.String()).Inc()
	return c.JSON(http.StatusOK, toEmployeeResponses(records))
}

// Clean handles DELETE /employees.
//
// @Summary      Delete every employee record
// @Tags         employees
// @Success      204
// @Failure      500  {object}  errorResponse
// @Router       /employees [delete]
func (h *EmployeeHandler) Clean(c echo.Context) error {
	if err := h.service.Clean(c.Request().Context()); err != nil {
		return err
	}
	metrics.DirectoryCleansTotal.Inc()
	return c.NoContent(http.StatusNoContent)
}

// Bind handles PUT /employees/:email/manager.
//
// @Summary      Bind a manager to an employee
// @Tags         managers
// @Accept       json
// @Param        email  path  string              true  "Employee email"
// @Param        body   body  bindManagerRequest  true  "Manager email"
// @Success      204
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /employees/{email}/manager [put]
func (h *EmployeeHandler) Bind(c echo.Context) error {
	var req bindManagerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	if err := h.service.Bind(c.Request().Context(), c.Param("email"), req.Email); err != nil {
		return err
	}

	metrics.ManagerBindingsTotal.WithLabelValues("bind").Inc()
	return c.NoContent(http.StatusNoContent)
}

// GetManager handles GET /employees/:email/manager.
//
// @Summary      Get an employee's manager
// @Tags         managers
// @Produce      json
// @Param        email  path      string  true  "Employee email"
// @Success      200    {object}  employeeResponse
// @Failure      400    {object}  errorResponse
// @Failure      404    {object}  errorResponse
// @Router       /employees/{email}/manager [get]
func (h *EmployeeHandler) GetManager(c echo.Context) error {
	record, err := h.service.GetManager(c.Request().Context(), c.Param("email"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toEmployeeResponse(record))
}

// ListSubordinates handles GET /employees/:email/subordinates?page=&size=.
//
// @Summary      List an employee's direct subordinates
// @Tags         managers
// @Produce      json
// @Param        email  path      string  true   "Manager email"
// @Param        page   query     int     false  "Zero-based page index"  default(0)
// @Param        size   query     int     false  "Page size"              default(10)
// @Success      200    {array}   employeeResponse
// @Failure      400    {object}  errorResponse
// @Router       /employees/{email}/subordinates [get]
func (h *EmployeeHandler) ListSubordinates(c echo.Context) error {
	page, size, err := pageParams(c)
	if err != nil {
		return err
	}

	records, err := h.service.ListSubordinates(c.Request().Context(), c.Param("email"), page, size)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toEmployeeResponses(records))
}

// Unbind handles DELETE /employees/:email/manager.
//
// @Summary      Unbind an employee's manager
// @Tags         managers
// @Param        email  path  string  true  "Employee email"
// @Success      204
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /employees/{email}/manager [delete]
func (h *EmployeeHandler) Unbind(c echo.Context) error {
	if err := h.service.Unbind(c.Request().Context(), c.Param("email")); err != nil {
		return err
	}

	metrics.ManagerBindingsTotal.WithLabelValues("unbind").Inc()
	return c.NoContent(http.StatusNoContent)
}

// parseCriteria converts the criteria/value query pair into the closed
// Criteria variant. Unknown criteria names and a missing value for a
// present criteria are rejected here, before any service call.
func parseCriteria(criteria, value string) (ports.Criteria, error) {
	if criteria == "" {
		return ports.Criteria{Kind: ports.CriteriaNone}, nil
	}
	if strings.TrimSpace(value) == "" {
		return ports.Criteria{}, fmt.Errorf("%w: missing or empty 'value' parameter for criteria %s", domain.ErrInvalidInput, criteria)
	}
	switch criteria {
	case "byEmailDomain":
		return ports.Criteria{Kind: ports.CriteriaDomain, Value: value}, nil
	case "byRole":
		return ports.Criteria{Kind: ports.CriteriaRole, Value: value}, nil
	case "byAge":
		return ports.Criteria{Kind: ports.CriteriaAge, Value: value}, nil
	default:
		return ports.Criteria{}, fmt.Errorf("%w: invalid criteria %q", domain.ErrInvalidInput, criteria)
	}
}

// pageParams reads page/size with their documented defaults. Range checks
// live in the service; only integer syntax is enforced here.
func pageParams(c echo.Context) (page, size int, err error) {
	page, err = intQueryParam(c, "page", defaultPage)
	if err != nil {
		return 0, 0, err
	}
	size, err = intQueryParam(c, "size", defaultSize)
	if err != nil {
		return 0, 0, err
	}
	return page, size, nil
}

func intQueryParam(c echo.Context, name string, def int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", domain.ErrInvalidInput, name)
	}
	return n, nil
}
