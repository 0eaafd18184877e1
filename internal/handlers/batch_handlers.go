package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/chainpay/chainpay-api/internal/bridge"
	"github.com/chainpay/chainpay-api/internal/payroll"
	"github.com/chainpay/chainpay-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// maxCSVBodyBytes caps uploaded CSV payloads.
const maxCSVBodyBytes = 1 << 20

// BatchHandler handles staged payroll batch operations
type BatchHandler struct {
	batches         *payroll.Store
	employeeService *services.EmployeeService
	// executor is nil when the bridge is not configured; execution then
	// returns 503 while staging keeps working.
	executor *bridge.Executor
}

// NewBatchHandler creates a new batch handler
func NewBatchHandler(batches *payroll.Store, employeeService *services.EmployeeService, executor *bridge.Executor) *BatchHandler {
	return &BatchHandler{
		batches:         batches,
		employeeService: employeeService,
		executor:        executor,
	}
}

// ExecuteBatchRequest is the optional body of a batch execute call.
type ExecuteBatchRequest struct {
	SenderName string `json:"senderName"`
}

func batchView(b payroll.Batch) gin.H {
	return gin.H{
		"id":            b.ID,
		"beneficiaries": b.Beneficiaries,
		"total":         b.Total().String(),
	}
}

// CreateBatch godoc
// @Summary Create batch
// @Description Stages a new empty beneficiary batch
// @Tags batches
// @Produce json
// @Success 201 {object} map[string]interface{}
// @Router /batches [post]
func (h *BatchHandler) CreateBatch(c *gin.Context) {
	batch := h.batches.Create()
	sendSuccess(c, http.StatusCreated, batchView(*batch))
}

// GetBatch godoc
// @Summary Get batch
// @Description Returns the staged beneficiaries and their total
// @Tags batches
// @Produce json
// @Param batch_id path string true "Batch ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /batches/{batch_id} [get]
func (h *BatchHandler) GetBatch(c *gin.Context) {
	batchID, ok := h.parseBatchID(c)
	if !ok {
		return
	}

	batch, err := h.batches.Get(batchID)
	if err != nil {
		sendError(c, http.StatusNotFound, "Batch not found", err)
		return
	}

	sendSuccess(c, http.StatusOK, batchView(batch))
}

// AddBeneficiary godoc
// @Summary Add beneficiary
// @Description Appends one beneficiary; all fields are required and the amount must be positive
// @Tags batches
// @Accept json
// @Produce json
// @Param batch_id path string true "Batch ID"
// @Param beneficiary body payroll.Beneficiary true "Beneficiary fields"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /batches/{batch_id}/beneficiaries [post]
func (h *BatchHandler) AddBeneficiary(c *gin.Context) {
	batchID, ok := h.parseBatchID(c)
	if !ok {
		return
	}

	var beneficiary payroll.Beneficiary
	if err := c.ShouldBindJSON(&beneficiary); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	batch, err := h.batches.AddOne(batchID, beneficiary)
	if err != nil {
		h.sendBatchError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, batchView(batch))
}

// RemoveBeneficiary godoc
// @Summary Remove beneficiary
// @Description Removes the beneficiary at the given position
// @Tags batches
// @Produce json
// @Param batch_id path string true "Batch ID"
// @Param index path int true "Beneficiary position (0-based)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /batches/{batch_id}/beneficiaries/{index} [delete]
func (h *BatchHandler) RemoveBeneficiary(c *gin.Context) {
	batchID, ok := h.parseBatchID(c)
	if !ok {
		return
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid beneficiary index", err)
		return
	}

	batch, err := h.batches.Remove(batchID, index)
	if err != nil {
		h.sendBatchError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, batchView(batch))
}

// AddAllEmployees godoc
// @Summary Add all employees
// @Description Stages every employee not already in the batch, deduplicated by wallet address
// @Tags batches
// @Produce json
// @Param batch_id path string true "Batch ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /batches/{batch_id}/employees [post]
func (h *BatchHandler) AddAllEmployees(c *gin.Context) {
	batchID, ok := h.parseBatchID(c)
	if !ok {
		return
	}

	employees, err := h.employeeService.ListEmployees(c.Request.Context())
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to fetch employees", err)
		return
	}

	batch, result, err := h.batches.AddEmployees(batchID, employees)
	if err != nil {
		// Everyone already staged is reported, not failed.
		if errors.Is(err, payroll.ErrAllAlreadyAdded) {
			sendSuccess(c, http.StatusOK, gin.H{
				"batch":   batchView(batch),
				"added":   result.Added,
				"skipped": result.Skipped,
				"message": err.Error(),
			})
			return
		}
		h.sendBatchError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, gin.H{
		"batch":   batchView(batch),
		"added":   result.Added,
		"skipped": result.Skipped,
		"message": result.Describe(),
	})
}

// ImportCSV godoc
// @Summary Import beneficiaries from CSV
// @Description Parses a CSV payload and stages every row, or stages nothing and reports all row errors
// @Tags batches
// @Accept plain
// @Produce json
// @Param batch_id path string true "Batch ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} ErrorResponse
// @Router /batches/{batch_id}/import [post]
func (h *BatchHandler) ImportCSV(c *gin.Context) {
	batchID, ok := h.parseBatchID(c)
	if !ok {
		return
	}

	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxCSVBodyBytes))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Failed to read CSV body", err)
		return
	}
	if len(body) == 0 {
		sendError(c, http.StatusBadRequest, "CSV body is empty", nil)
		return
	}

	beneficiaries, rowErrors := payroll.ParseBeneficiariesCSV(string(body))
	if len(rowErrors) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "CSV validation failed",
			"errors": rowErrors,
		})
		return
	}

	batch, err := h.batches.AddParsed(batchID, beneficiaries)
	if err != nil {
		h.sendBatchError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, gin.H{
		"batch": batchView(batch),
		"added": len(beneficiaries),
	})
}

// ExecuteBatch godoc
// @Summary Execute batch
// @Description Submits the staged beneficiaries as one on-chain batch transfer
// @Tags batches
// @Accept json
// @Produce json
// @Param batch_id path string true "Batch ID"
// @Param body body ExecuteBatchRequest false "Sender metadata"
// @Success 202 {object} bridge.ExecuteResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /batches/{batch_id}/execute [post]
func (h *BatchHandler) ExecuteBatch(c *gin.Context) {
	batchID, ok := h.parseBatchID(c)
	if !ok {
		return
	}

	if h.executor == nil {
		sendError(c, http.StatusServiceUnavailable, "Batch execution is not configured", nil)
		return
	}

	var req ExecuteBatchRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			sendError(c, http.StatusBadRequest, "Invalid request body", err)
			return
		}
	}

	result, err := h.executor.Execute(c.Request.Context(), bridge.ExecuteParams{
		BatchID:    batchID,
		SenderName: req.SenderName,
	})
	if err != nil {
		switch {
		case errors.Is(err, payroll.ErrBatchNotFound):
			sendError(c, http.StatusNotFound, "Batch not found", err)
		case errors.Is(err, payroll.ErrEmptyBatch):
			sendError(c, http.StatusBadRequest, "Please add at least one beneficiary", err)
		default:
			sendError(c, http.StatusInternalServerError, "Transaction failed. Please try again.", err)
		}
		return
	}

	sendSuccess(c, http.StatusAccepted, result)
}

// GetTemplate godoc
// @Summary CSV template
// @Description Returns the beneficiary CSV template
// @Tags batches
// @Produce plain
// @Param batch_id path string true "Batch ID"
// @Success 200 {string} string
// @Router /batches/{batch_id}/template [get]
func (h *BatchHandler) GetTemplate(c *gin.Context) {
	c.Header("Content-Disposition", `attachment; filename="payroll_template.csv"`)
	c.Data(http.StatusOK, "text/csv", []byte(payroll.CSVTemplate))
}

func (h *BatchHandler) parseBatchID(c *gin.Context) (uuid.UUID, bool) {
	batchID, err := uuid.Parse(c.Param("batch_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid batch ID", err)
		return uuid.UUID{}, false
	}
	return batchID, true
}

func (h *BatchHandler) sendBatchError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, payroll.ErrBatchNotFound):
		sendError(c, http.StatusNotFound, "Batch not found", err)
	case errors.Is(err, payroll.ErrMissingFields),
		errors.Is(err, payroll.ErrInvalidAmount),
		errors.Is(err, payroll.ErrIndexOutOfRange),
		errors.Is(err, payroll.ErrNoEmployees):
		sendError(c, http.StatusBadRequest, err.Error(), err)
	default:
		sendError(c, http.StatusInternalServerError, "Batch operation failed", err)
	}
}
