package handlers

import (
	"errors"
	"net/http"

	"github.com/chainpay/chainpay-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// EmployeeHandler handles employee-related operations
type EmployeeHandler struct {
	employeeService *services.EmployeeService
}

// NewEmployeeHandler creates a new employee handler
func NewEmployeeHandler(employeeService *services.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService}
}

// EmployeeRequest is the body of employee create and update calls.
type EmployeeRequest struct {
	Name           string  `json:"name"`
	WalletAddress  string  `json:"walletAddress"`
	PreferredChain string  `json:"preferredChain"`
	MonthlySalary  float64 `json:"monthlySalary"`
}

// ListEmployees godoc
// @Summary List employees
// @Description Returns all employees, newest first
// @Tags employees
// @Produce json
// @Success 200 {object} map[string][]EmployeeResponse
// @Failure 500 {object} ErrorResponse
// @Router /employees [get]
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	employees, err := h.employeeService.ListEmployees(c.Request.Context())
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to fetch employees", err)
		return
	}

	responses := make([]EmployeeResponse, len(employees))
	for i, e := range employees {
		responses[i] = toEmployeeResponse(e)
	}

	sendSuccess(c, http.StatusOK, gin.H{"employees": responses})
}

// CreateEmployee godoc
// @Summary Create employee
// @Description Creates a new employee with a unique wallet address
// @Tags employees
// @Accept json
// @Produce json
// @Param employee body EmployeeRequest true "Employee fields"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /employees [post]
func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var req EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	employee, err := h.employeeService.CreateEmployee(c.Request.Context(), services.EmployeeParams{
		Name:           req.Name,
		WalletAddress:  req.WalletAddress,
		PreferredChain: req.PreferredChain,
		MonthlySalary:  req.MonthlySalary,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmployeeFieldsMissing):
			sendError(c, http.StatusBadRequest, "Missing required fields", err)
		case errors.Is(err, services.ErrEmployeeBadAddress):
			sendError(c, http.StatusBadRequest, "Invalid wallet address format", err)
		case errors.Is(err, services.ErrEmployeeBadSalary):
			sendError(c, http.StatusBadRequest, "Monthly salary must be greater than 0", err)
		case errors.Is(err, services.ErrWalletAddressTaken):
			sendError(c, http.StatusConflict, "Employee with this wallet address already exists", err)
		default:
			sendError(c, http.StatusInternalServerError, "Failed to create employee", err)
		}
		return
	}

	sendSuccess(c, http.StatusCreated, gin.H{
		"employee": toEmployeeResponse(*employee),
		"message":  "Employee created successfully",
	})
}

// UpdateEmployee godoc
// @Summary Update employee
// @Description Updates an employee; the wallet address must not belong to another employee
// @Tags employees
// @Accept json
// @Produce json
// @Param id path string true "Employee ID"
// @Param employee body EmployeeRequest true "Employee fields"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /employees/{id} [put]
func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	employeeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid employee ID", err)
		return
	}

	var req EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	employee, err := h.employeeService.UpdateEmployee(c.Request.Context(), employeeID, services.EmployeeParams{
		Name:           req.Name,
		WalletAddress:  req.WalletAddress,
		PreferredChain: req.PreferredChain,
		MonthlySalary:  req.MonthlySalary,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmployeeFieldsMissing):
			sendError(c, http.StatusBadRequest, "Missing required fields", err)
		case errors.Is(err, services.ErrEmployeeBadAddress):
			sendError(c, http.StatusBadRequest, "Invalid wallet address format", err)
		case errors.Is(err, services.ErrEmployeeBadSalary):
			sendError(c, http.StatusBadRequest, "Monthly salary must be greater than 0", err)
		case errors.Is(err, services.ErrWalletAddressTaken):
			sendError(c, http.StatusConflict, "Another employee with this wallet address already exists", err)
		case errors.Is(err, services.ErrEmployeeNotFound):
			sendError(c, http.StatusNotFound, "Employee not found", err)
		default:
			sendError(c, http.StatusInternalServerError, "Failed to update employee", err)
		}
		return
	}

	sendSuccess(c, http.StatusOK, gin.H{
		"employee": toEmployeeResponse(*employee),
		"message":  "Employee updated successfully",
	})
}

// DeleteEmployee godoc
// @Summary Delete employee
// @Description Deletes an employee record
// @Tags employees
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /employees/{id} [delete]
func (h *EmployeeHandler) DeleteEmployee(c *gin.Context) {
	employeeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid employee ID", err)
		return
	}

	if err := h.employeeService.DeleteEmployee(c.Request.Context(), employeeID); err != nil {
		if errors.Is(err, services.ErrEmployeeNotFound) {
			sendError(c, http.StatusNotFound, "Employee not found", err)
			return
		}
		sendError(c, http.StatusInternalServerError, "Failed to delete employee", err)
		return
	}

	sendSuccessMessage(c, http.StatusOK, "Employee deleted successfully")
}
