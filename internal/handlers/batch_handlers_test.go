package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/chainpay/chainpay-api/internal/db"
	"github.com/chainpay/chainpay-api/internal/mocks"
	"github.com/chainpay/chainpay-api/internal/payroll"
	"github.com/chainpay/chainpay-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newBatchRouter(querier db.Querier) (*gin.Engine, *payroll.Store) {
	batches := payroll.NewStore()
	handler := NewBatchHandler(batches, services.NewEmployeeService(querier), nil)
	router := gin.New()
	router.POST("/api/v1/batches", handler.CreateBatch)
	router.GET("/api/v1/batches/:batch_id", handler.GetBatch)
	router.GET("/api/v1/batches/:batch_id/template", handler.GetTemplate)
	router.POST("/api/v1/batches/:batch_id/beneficiaries", handler.AddBeneficiary)
	router.DELETE("/api/v1/batches/:batch_id/beneficiaries/:index", handler.RemoveBeneficiary)
	router.POST("/api/v1/batches/:batch_id/employees", handler.AddAllEmployees)
	router.POST("/api/v1/batches/:batch_id/import", handler.ImportCSV)
	router.POST("/api/v1/batches/:batch_id/execute", handler.ExecuteBatch)
	return router, batches
}

func validBeneficiary() payroll.Beneficiary {
	return payroll.Beneficiary{
		Nickname:                 "Alice",
		DestinationChainSelector: "16015286601757825753",
		BeneficiaryAddress:       "0x1234567890123456789012345678901234567890",
		USDCAmount:               "100",
	}
}

func TestBatchHandler_CreateAndGet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	router, _ := newBatchRouter(mocks.NewMockQuerier(ctrl))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest(http.MethodPost, "/api/v1/batches", nil))
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		ID uuid.UUID `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/batches/"+created.ID.String(), nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":"0"`)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/batches/"+uuid.NewString(), nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBatchHandler_AddBeneficiary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	router, batches := newBatchRouter(mocks.NewMockQuerier(ctrl))
	batch := batches.Create()

	t.Run("added", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, jsonRequest(http.MethodPost, "/api/v1/batches/"+batch.ID.String()+"/beneficiaries", validBeneficiary()))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"total":"100"`)
	})

	t.Run("missing fields", func(t *testing.T) {
		bn := validBeneficiary()
		bn.Nickname = ""
		w := httptest.NewRecorder()
		router.ServeHTTP(w, jsonRequest(http.MethodPost, "/api/v1/batches/"+batch.ID.String()+"/beneficiaries", bn))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "please fill in all fields")
	})

	t.Run("invalid amount", func(t *testing.T) {
		bn := validBeneficiary()
		bn.USDCAmount = "-5"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, jsonRequest(http.MethodPost, "/api/v1/batches/"+batch.ID.String()+"/beneficiaries", bn))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestBatchHandler_RemoveBeneficiary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	router, batches := newBatchRouter(mocks.NewMockQuerier(ctrl))
	batch := batches.Create()
	_, err := batches.AddOne(batch.ID, validBeneficiary())
	require.NoError(t, err)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/v1/batches/"+batch.ID.String()+"/beneficiaries/5", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/v1/batches/"+batch.ID.String()+"/beneficiaries/0", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"beneficiaries":[]`)
}

func TestBatchHandler_AddAllEmployees(t *testing.T) {
	employees := []db.Employee{
		{ID: uuid.New(), Name: "Alice", WalletAddress: "0x1234567890123456789012345678901234567890", PreferredChain: "16015286601757825753", MonthlySalary: 5000},
		{ID: uuid.New(), Name: "Bob", WalletAddress: "0x0987654321098765432109876543210987654321", PreferredChain: "3478487238524512106", MonthlySalary: 4500},
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	querier := mocks.NewMockQuerier(ctrl)
	querier.EXPECT().ListEmployees(gomock.Any()).Return(employees, nil).Times(2)

	router, batches := newBatchRouter(querier)
	batch := batches.Create()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest(http.MethodPost, "/api/v1/batches/"+batch.ID.String()+"/employees", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"added":2`)

	// Second add skips everyone but still succeeds.
	w = httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest(http.MethodPost, "/api/v1/batches/"+batch.ID.String()+"/employees", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"added":0`)
	assert.Contains(t, w.Body.String(), "already added")
}

func TestBatchHandler_ImportCSV(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	router, batches := newBatchRouter(mocks.NewMockQuerier(ctrl))
	batch := batches.Create()

	t.Run("valid csv staged", func(t *testing.T) {
		csv := "wallet_address,amount,chain,name\n" +
			"0x1234567890123456789012345678901234567890,100,Ethereum,Alice\n" +
			"0x0987654321098765432109876543210987654321,50,Arbitrum,Bob\n"

		req := httptest.NewRequest(http.MethodPost, "/api/v1/batches/"+batch.ID.String()+"/import", strings.NewReader(csv))
		req.Header.Set("Content-Type", "text/csv")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"added":2`)

		staged, err := batches.Get(batch.ID)
		require.NoError(t, err)
		assert.Len(t, staged.Beneficiaries, 2)
	})

	t.Run("row errors stage nothing", func(t *testing.T) {
		csv := "wallet_address,amount,chain,name\n" +
			"0x1234567890123456789012345678901234567890,abc,Ethereum,Alice\n" +
			"0x0987654321098765432109876543210987654321,50,Solana,Bob\n"

		before, err := batches.Get(batch.ID)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/batches/"+batch.ID.String()+"/import", strings.NewReader(csv))
		req.Header.Set("Content-Type", "text/csv")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp struct {
			Error  string   `json:"error"`
			Errors []string `json:"errors"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp.Errors, 2)
		assert.Contains(t, resp.Errors[0], "Row 1")

		after, err := batches.Get(batch.ID)
		require.NoError(t, err)
		assert.Len(t, after.Beneficiaries, len(before.Beneficiaries))
	})

	t.Run("empty body", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/batches/"+batch.ID.String()+"/import", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestBatchHandler_ExecuteWithoutBridge(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	router, batches := newBatchRouter(mocks.NewMockQuerier(ctrl))
	batch := batches.Create()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest(http.MethodPost, "/api/v1/batches/"+batch.ID.String()+"/execute", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "not configured")
}

func TestBatchHandler_GetTemplate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	router, batches := newBatchRouter(mocks.NewMockQuerier(ctrl))
	batch := batches.Create()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/batches/"+batch.ID.String()+"/template", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, payroll.CSVTemplate, w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Disposition"), "payroll_template.csv")
}
