package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/chainpay/chainpay-api/internal/db"
	"github.com/chainpay/chainpay-api/internal/mocks"
	"github.com/chainpay/chainpay-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTransactionRouter(querier db.Querier) *gin.Engine {
	handler := NewTransactionHandler(services.NewTransactionService(querier))
	router := gin.New()
	router.GET("/api/v1/transactions", handler.ListTransactions)
	router.POST("/api/v1/transactions", handler.CreateTransaction)
	router.GET("/api/v1/transactions/stats", handler.GetTransactionStats)
	router.GET("/api/v1/transactions/:id", handler.GetTransaction)
	router.PUT("/api/v1/transactions/:id", handler.UpdateTransaction)
	return router
}

func TestTransactionHandler_ListTransactions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	querier := mocks.NewMockQuerier(ctrl)
	querier.EXPECT().
		ListTransactions(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, arg db.ListTransactionsParams) ([]db.Transaction, error) {
			// "all" collapses to no filter
			assert.False(t, arg.Status.Valid)
			assert.Equal(t, int32(5), arg.Limit)
			assert.Equal(t, int32(5), arg.Offset)
			return []db.Transaction{
				{TransactionID: "0xaaa", Recipients: []byte(`[{"address":"0x1","amount":10,"chain":"1","chainName":"Ethereum"}]`)},
			}, nil
		})
	querier.EXPECT().CountTransactions(gomock.Any(), gomock.Any()).Return(int64(11), nil)

	w := httptest.NewRecorder()
	newTransactionRouter(querier).
		ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/transactions?page=2&limit=5&status=all", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Transactions []TransactionResponse `json:"transactions"`
		Pagination   struct {
			Page  int32 `json:"page"`
			Limit int32 `json:"limit"`
			Total int64 `json:"total"`
			Pages int32 `json:"pages"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Transactions, 1)
	assert.Equal(t, "Ethereum", resp.Transactions[0].Recipients[0].ChainName)
	assert.Equal(t, int32(2), resp.Pagination.Page)
	assert.Equal(t, int64(11), resp.Pagination.Total)
	assert.Equal(t, int32(3), resp.Pagination.Pages)
}

func TestTransactionHandler_CreateTransaction(t *testing.T) {
	body := CreateTransactionRequest{
		TransactionID: "0xabc",
		Type:          db.TransactionTypeOneToMany,
		SenderAddress: "0x9999999999999999999999999999999999999999",
		Recipients: []db.TransactionRecipient{
			{Address: "0x1", Amount: 10, Chain: "1", ChainName: "Ethereum"},
		},
		TotalAmount: 10,
	}

	t.Run("recorded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		querier := mocks.NewMockQuerier(ctrl)
		querier.EXPECT().GetTransactionByTransactionID(gomock.Any(), "0xabc").Return(db.Transaction{}, pgx.ErrNoRows)
		querier.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(db.Transaction{TransactionID: "0xabc"}, nil)

		w := httptest.NewRecorder()
		newTransactionRouter(querier).
			ServeHTTP(w, jsonRequest(http.MethodPost, "/api/v1/transactions", body))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"success":true`)
		assert.Contains(t, w.Body.String(), "0xabc")
	})

	t.Run("duplicate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		querier := mocks.NewMockQuerier(ctrl)
		querier.EXPECT().GetTransactionByTransactionID(gomock.Any(), "0xabc").Return(db.Transaction{TransactionID: "0xabc"}, nil)

		w := httptest.NewRecorder()
		newTransactionRouter(querier).
			ServeHTTP(w, jsonRequest(http.MethodPost, "/api/v1/transactions", body))

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestTransactionHandler_GetTransaction(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		querier := mocks.NewMockQuerier(ctrl)
		querier.EXPECT().GetTransactionByTransactionID(gomock.Any(), "0xabc").Return(db.Transaction{
			TransactionID: "0xabc",
			SenderName:    pgtype.Text{String: "Payroll Admin", Valid: true},
			GasUsed:       pgtype.Int8{Int64: 21000, Valid: true},
		}, nil)

		w := httptest.NewRecorder()
		newTransactionRouter(querier).
			ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/transactions/0xabc", nil))

		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Transaction TransactionResponse `json:"transaction"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotNil(t, resp.Transaction.SenderName)
		assert.Equal(t, "Payroll Admin", *resp.Transaction.SenderName)
		require.NotNil(t, resp.Transaction.GasUsed)
		assert.Equal(t, int64(21000), *resp.Transaction.GasUsed)
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		querier := mocks.NewMockQuerier(ctrl)
		querier.EXPECT().GetTransactionByTransactionID(gomock.Any(), "0xmissing").Return(db.Transaction{}, pgx.ErrNoRows)

		w := httptest.NewRecorder()
		newTransactionRouter(querier).
			ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/transactions/0xmissing", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestTransactionHandler_UpdateTransaction(t *testing.T) {
	t.Run("updated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		querier := mocks.NewMockQuerier(ctrl)
		querier.EXPECT().
			UpdateTransactionByTransactionID(gomock.Any(), gomock.Any()).
			Return(db.Transaction{TransactionID: "0xabc", Status: db.TransactionStatusCompleted}, nil)

		status := db.TransactionStatusCompleted
		w := httptest.NewRecorder()
		newTransactionRouter(querier).
			ServeHTTP(w, jsonRequest(http.MethodPut, "/api/v1/transactions/0xabc", UpdateTransactionRequest{Status: &status}))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"success":true`)
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		querier := mocks.NewMockQuerier(ctrl)
		querier.EXPECT().
			UpdateTransactionByTransactionID(gomock.Any(), gomock.Any()).
			Return(db.Transaction{}, pgx.ErrNoRows)

		w := httptest.NewRecorder()
		newTransactionRouter(querier).
			ServeHTTP(w, jsonRequest(http.MethodPut, "/api/v1/transactions/0xmissing", UpdateTransactionRequest{}))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestTransactionHandler_GetTransactionStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	querier := mocks.NewMockQuerier(ctrl)
	querier.EXPECT().GetTransactionTotals(gomock.Any()).Return(db.GetTransactionTotalsRow{
		TotalTransactions:      2,
		TotalVolume:            300,
		SuccessfulTransactions: 2,
	}, nil)
	querier.EXPECT().GetMostUsedChain(gomock.Any()).Return(db.GetMostUsedChainRow{ChainName: "Base"}, nil)

	w := httptest.NewRecorder()
	newTransactionRouter(querier).
		ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/transactions/stats", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var stats services.TransactionStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, int64(2), stats.TotalTransactions)
	assert.InDelta(t, 150.0, stats.AverageTransactionSize, 1e-9)
	assert.Equal(t, "Base", stats.MostUsedChain)
}
