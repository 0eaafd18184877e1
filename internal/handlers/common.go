package handlers

import (
	"encoding/json"
	"time"

	"github.com/chainpay/chainpay-api/internal/db"
	"github.com/chainpay/chainpay-api/internal/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse represents a standard success response
type SuccessResponse struct {
	Message string `json:"message"`
}

// EmployeeResponse is the JSON shape of an employee record.
type EmployeeResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	WalletAddress  string    `json:"walletAddress"`
	PreferredChain string    `json:"preferredChain"`
	MonthlySalary  float64   `json:"monthlySalary"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// TransactionResponse is the JSON shape of a transaction record, with the
// recipients column decoded.
type TransactionResponse struct {
	ID              string                     `json:"id"`
	TransactionID   string                     `json:"transactionId"`
	Type            string                     `json:"type"`
	SenderAddress   string                     `json:"senderAddress"`
	SenderName      *string                    `json:"senderName,omitempty"`
	Recipients      []db.TransactionRecipient  `json:"recipients"`
	SourceChain     string                     `json:"sourceChain"`
	SourceChainName string                     `json:"sourceChainName"`
	TotalAmount     float64                    `json:"totalAmount"`
	Status          string                     `json:"status"`
	TransactionHash *string                    `json:"transactionHash,omitempty"`
	GasUsed         *int64                     `json:"gasUsed,omitempty"`
	GasFee          *float64                   `json:"gasFee,omitempty"`
	CreatedAt       time.Time                  `json:"createdAt"`
	UpdatedAt       time.Time                  `json:"updatedAt"`
	CompletedAt     *time.Time                 `json:"completedAt,omitempty"`
}

func toEmployeeResponse(e db.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:             e.ID.String(),
		Name:           e.Name,
		WalletAddress:  e.WalletAddress,
		PreferredChain: e.PreferredChain,
		MonthlySalary:  e.MonthlySalary,
		CreatedAt:      e.CreatedAt.Time,
		UpdatedAt:      e.UpdatedAt.Time,
	}
}

func toTransactionResponse(t db.Transaction) TransactionResponse {
	resp := TransactionResponse{
		ID:              t.ID.String(),
		TransactionID:   t.TransactionID,
		Type:            t.Type,
		SenderAddress:   t.SenderAddress,
		Recipients:      []db.TransactionRecipient{},
		SourceChain:     t.SourceChain,
		SourceChainName: t.SourceChainName,
		TotalAmount:     t.TotalAmount,
		Status:          t.Status,
		CreatedAt:       t.CreatedAt.Time,
		UpdatedAt:       t.UpdatedAt.Time,
	}

	if len(t.Recipients) > 0 {
		// A decode failure leaves recipients empty rather than failing the
		// whole response.
		_ = json.Unmarshal(t.Recipients, &resp.Recipients)
	}
	if t.SenderName.Valid {
		resp.SenderName = &t.SenderName.String
	}
	if t.TransactionHash.Valid {
		resp.TransactionHash = &t.TransactionHash.String
	}
	if t.GasUsed.Valid {
		resp.GasUsed = &t.GasUsed.Int64
	}
	if t.GasFee.Valid {
		resp.GasFee = &t.GasFee.Float64
	}
	if t.CompletedAt.Valid {
		completedAt := t.CompletedAt.Time
		resp.CompletedAt = &completedAt
	}

	return resp
}

func toTransactionResponses(transactions []db.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, len(transactions))
	for i, t := range transactions {
		out[i] = toTransactionResponse(t)
	}
	return out
}

// sendError logs the underlying error and sends a {"error": message} body.
func sendError(c *gin.Context, statusCode int, message string, err error) {
	correlationID := ""
	if id, exists := c.Get("correlationID"); exists {
		correlationID, _ = id.(string)
	}

	logger.Error(message,
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.String("correlation_id", correlationID),
	)

	c.JSON(statusCode, ErrorResponse{Error: message})
}

// sendSuccess is a helper function that sends a success response
func sendSuccess(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// sendSuccessMessage is a helper function that sends a success message
func sendSuccessMessage(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, SuccessResponse{Message: message})
}
