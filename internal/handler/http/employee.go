package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/cmlabs-hris/hrms-lite/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-lite/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type EmployeeHandler interface {
	ListEmployees(w http.ResponseWriter, r *http.Request)
	GetEmployee(w http.ResponseWriter, r *http.Request)
	CreateEmployee(w http.ResponseWriter, r *http.Request)
	DeleteEmployee(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &employeeHandlerImpl{
		employeeService: employeeService,
	}
}

// ListEmployees implements EmployeeHandler
func (h *employeeHandlerImpl) ListEmployees(w http.ResponseWriter, r *http.Request) {
	results, err := h.employeeService.ListEmployees(r.Context())
	if err != nil {
		response.HandleError(w, err, "Failed to fetch employees. Please try again.")
		return
	}

	response.List(w, len(results), results)
}

// GetEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) GetEmployee(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "id")

	result, err := h.employeeService.GetEmployee(r.Context(), key)
	if err != nil {
		response.HandleError(w, err, "Failed to fetch employee. Please try again.")
		return
	}

	response.Success(w, result)
}

// CreateEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format")
		return
	}

	result, err := h.employeeService.CreateEmployee(r.Context(), req)
	if err != nil {
		response.HandleError(w, err, "Failed to create employee. Please try again.")
		return
	}

	response.Created(w, "Employee created successfully.", result)
}

// DeleteEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "id")

	result, err := h.employeeService.DeleteEmployee(r.Context(), key)
	if err != nil {
		response.HandleError(w, err, "Failed to delete employee. Please try again.")
		return
	}

	message := fmt.Sprintf("Employee %s deleted successfully.", result.EmployeeID)
	if result.AttendanceRemoved > 0 {
		message += fmt.Sprintf(" Also removed %d attendance record(s).", result.AttendanceRemoved)
	}
	response.SuccessWithMessage(w, message)
}
