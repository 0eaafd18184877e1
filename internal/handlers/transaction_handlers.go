package handlers

import (
	"errors"
	"net/http"

	"github.com/chainpay/chainpay-api/internal/db"
	"github.com/chainpay/chainpay-api/internal/helpers"
	"github.com/chainpay/chainpay-api/internal/services"
	"github.com/gin-gonic/gin"
)

// TransactionHandler handles transaction-related operations
type TransactionHandler struct {
	transactionService *services.TransactionService
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionService *services.TransactionService) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// CreateTransactionRequest is the body of a transaction create call.
type CreateTransactionRequest struct {
	TransactionID   string                    `json:"transactionId"`
	Type            string                    `json:"type"`
	SenderAddress   string                    `json:"senderAddress"`
	SenderName      string                    `json:"senderName"`
	Recipients      []db.TransactionRecipient `json:"recipients"`
	SourceChain     string                    `json:"sourceChain"`
	SourceChainName string                    `json:"sourceChainName"`
	TotalAmount     float64                   `json:"totalAmount"`
	Status          string                    `json:"status"`
	TransactionHash string                    `json:"transactionHash"`
}

// UpdateTransactionRequest is the body of a partial transaction update.
type UpdateTransactionRequest struct {
	Status          *string  `json:"status"`
	TransactionHash *string  `json:"transactionHash"`
	GasUsed         *int64   `json:"gasUsed"`
	GasFee          *float64 `json:"gasFee"`
}

// ListTransactions godoc
// @Summary List transactions
// @Description Returns one page of transactions, filtered and newest first
// @Tags transactions
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 10, max 100)"
// @Param status query string false "Filter by status (pending, completed, failed)"
// @Param type query string false "Filter by type (one-to-one, one-to-many)"
// @Param search query string false "Free-text search over ids, senders, and recipients"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /transactions [get]
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	pageParams, err := helpers.ParsePaginationParams(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid pagination parameters", err)
		return
	}

	// "all" is the filter's explicit wildcard value
	filter := services.ListTransactionsFilter{
		Status: c.Query("status"),
		Type:   c.Query("type"),
		Search: c.Query("search"),
	}
	if filter.Status == "all" {
		filter.Status = ""
	}
	if filter.Type == "all" {
		filter.Type = ""
	}

	transactions, total, err := h.transactionService.ListTransactions(c.Request.Context(), filter, pageParams.Limit, pageParams.Offset)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to fetch transactions", err)
		return
	}

	sendSuccess(c, http.StatusOK, gin.H{
		"transactions": toTransactionResponses(transactions),
		"pagination": gin.H{
			"page":  pageParams.Page,
			"limit": pageParams.Limit,
			"total": total,
			"pages": helpers.TotalPages(total, pageParams.Limit),
		},
	})
}

// CreateTransaction godoc
// @Summary Record transaction
// @Description Records a transaction; the transaction id must be unique
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body CreateTransactionRequest true "Transaction fields"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	transaction, err := h.transactionService.CreateTransaction(c.Request.Context(), services.CreateTransactionParams{
		TransactionID:   req.TransactionID,
		Type:            req.Type,
		SenderAddress:   req.SenderAddress,
		SenderName:      req.SenderName,
		Recipients:      req.Recipients,
		SourceChain:     req.SourceChain,
		SourceChainName: req.SourceChainName,
		TotalAmount:     req.TotalAmount,
		Status:          req.Status,
		TransactionHash: req.TransactionHash,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTransactionFieldsMissing),
			errors.Is(err, services.ErrTransactionBadType),
			errors.Is(err, services.ErrTransactionBadStatus):
			sendError(c, http.StatusBadRequest, err.Error(), err)
		case errors.Is(err, services.ErrDuplicateTransaction):
			sendError(c, http.StatusConflict, "Transaction with this ID already exists", err)
		default:
			sendError(c, http.StatusInternalServerError, "Failed to create transaction", err)
		}
		return
	}

	sendSuccess(c, http.StatusOK, gin.H{
		"success":       true,
		"transactionId": transaction.TransactionID,
	})
}

// GetTransaction godoc
// @Summary Get transaction
// @Description Looks up a transaction by its on-chain transaction id
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID (on-chain hash)"
// @Success 200 {object} map[string]TransactionResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	transaction, err := h.transactionService.GetTransaction(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrTransactionNotFound) {
			sendError(c, http.StatusNotFound, "Transaction not found", err)
			return
		}
		sendError(c, http.StatusInternalServerError, "Failed to fetch transaction", err)
		return
	}

	sendSuccess(c, http.StatusOK, gin.H{"transaction": toTransactionResponse(*transaction)})
}

// UpdateTransaction godoc
// @Summary Update transaction
// @Description Merges partial fields into a transaction record
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID (on-chain hash)"
// @Param transaction body UpdateTransactionRequest true "Fields to update"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /transactions/{id} [put]
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	var req UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	_, err := h.transactionService.UpdateTransaction(c.Request.Context(), c.Param("id"), services.UpdateTransactionParams{
		Status:          req.Status,
		TransactionHash: req.TransactionHash,
		GasUsed:         req.GasUsed,
		GasFee:          req.GasFee,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTransactionBadStatus):
			sendError(c, http.StatusBadRequest, err.Error(), err)
		case errors.Is(err, services.ErrTransactionNotFound):
			sendError(c, http.StatusNotFound, "Transaction not found", err)
		default:
			sendError(c, http.StatusInternalServerError, "Failed to update transaction", err)
		}
		return
	}

	sendSuccess(c, http.StatusOK, gin.H{"success": true})
}

// GetTransactionStats godoc
// @Summary Transaction statistics
// @Description Aggregates counts, volume, gas fees, and the most used destination chain
// @Tags transactions
// @Produce json
// @Success 200 {object} services.TransactionStats
// @Failure 500 {object} ErrorResponse
// @Router /transactions/stats [get]
func (h *TransactionHandler) GetTransactionStats(c *gin.Context) {
	stats, err := h.transactionService.GetStats(c.Request.Context())
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to fetch transaction stats", err)
		return
	}

	sendSuccess(c, http.StatusOK, stats)
}
