package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/chainpay/chainpay-api/internal/db"
	"github.com/chainpay/chainpay-api/internal/logger"
	"github.com/chainpay/chainpay-api/internal/mocks"
	"github.com/chainpay/chainpay-api/internal/services"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func init() {
	// Initialize logger for tests
	logger.InitLogger("test")
}

func validEmployeeParams() services.EmployeeParams {
	return services.EmployeeParams{
		Name:           "Alice Johnson",
		WalletAddress:  "0x1234567890123456789012345678901234567890",
		PreferredChain: "16015286601757825753",
		MonthlySalary:  5000,
	}
}

func TestEmployeeService_CreateEmployee(t *testing.T) {
	tests := []struct {
		name      string
		params    func() services.EmployeeParams
		mockSetup func(m *mocks.MockQuerier)
		wantErr   error
	}{
		{
			name:   "successfully creates employee",
			params: validEmployeeParams,
			mockSetup: func(m *mocks.MockQuerier) {
				m.EXPECT().
					GetEmployeeByWalletAddress(gomock.Any(), "0x1234567890123456789012345678901234567890").
					Return(db.Employee{}, pgx.ErrNoRows)
				m.EXPECT().
					CreateEmployee(gomock.Any(), db.CreateEmployeeParams{
						Name:           "Alice Johnson",
						WalletAddress:  "0x1234567890123456789012345678901234567890",
						PreferredChain: "16015286601757825753",
						MonthlySalary:  5000,
					}).
					Return(db.Employee{ID: uuid.New(), Name: "Alice Johnson"}, nil)
			},
		},
		{
			name: "missing name",
			params: func() services.EmployeeParams {
				p := validEmployeeParams()
				p.Name = ""
				return p
			},
			mockSetup: func(m *mocks.MockQuerier) {},
			wantErr:   services.ErrEmployeeFieldsMissing,
		},
		{
			name: "malformed wallet address",
			params: func() services.EmployeeParams {
				p := validEmployeeParams()
				p.WalletAddress = "0xnothex"
				return p
			},
			mockSetup: func(m *mocks.MockQuerier) {},
			wantErr:   services.ErrEmployeeBadAddress,
		},
		{
			name: "non-positive salary",
			params: func() services.EmployeeParams {
				p := validEmployeeParams()
				p.MonthlySalary = 0
				return p
			},
			mockSetup: func(m *mocks.MockQuerier) {},
			wantErr:   services.ErrEmployeeBadSalary,
		},
		{
			name:   "duplicate wallet address",
			params: validEmployeeParams,
			mockSetup: func(m *mocks.MockQuerier) {
				m.EXPECT().
					GetEmployeeByWalletAddress(gomock.Any(), gomock.Any()).
					Return(db.Employee{ID: uuid.New()}, nil)
			},
			wantErr: services.ErrWalletAddressTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQuerier := mocks.NewMockQuerier(ctrl)
			tt.mockSetup(mockQuerier)

			service := services.NewEmployeeService(mockQuerier)
			got, err := service.CreateEmployee(context.Background(), tt.params())

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, got)
			}
		})
	}
}

func TestEmployeeService_UpdateEmployee(t *testing.T) {
	employeeID := uuid.New()

	t.Run("uniqueness check excludes own record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQuerier := mocks.NewMockQuerier(ctrl)
		mockQuerier.EXPECT().
			GetEmployeeByWalletAddressExcluding(gomock.Any(), db.GetEmployeeByWalletAddressExcludingParams{
				WalletAddress: "0x1234567890123456789012345678901234567890",
				ID:            employeeID,
			}).
			Return(db.Employee{}, pgx.ErrNoRows)
		mockQuerier.EXPECT().
			UpdateEmployee(gomock.Any(), gomock.Any()).
			Return(db.Employee{ID: employeeID, Name: "Alice Johnson"}, nil)

		service := services.NewEmployeeService(mockQuerier)
		got, err := service.UpdateEmployee(context.Background(), employeeID, validEmployeeParams())
		assert.NoError(t, err)
		assert.Equal(t, employeeID, got.ID)
	})

	t.Run("wallet address taken by another employee", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQuerier := mocks.NewMockQuerier(ctrl)
		mockQuerier.EXPECT().
			GetEmployeeByWalletAddressExcluding(gomock.Any(), gomock.Any()).
			Return(db.Employee{ID: uuid.New()}, nil)

		service := services.NewEmployeeService(mockQuerier)
		_, err := service.UpdateEmployee(context.Background(), employeeID, validEmployeeParams())
		assert.ErrorIs(t, err, services.ErrWalletAddressTaken)
	})

	t.Run("employee not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQuerier := mocks.NewMockQuerier(ctrl)
		mockQuerier.EXPECT().
			GetEmployeeByWalletAddressExcluding(gomock.Any(), gomock.Any()).
			Return(db.Employee{}, pgx.ErrNoRows)
		mockQuerier.EXPECT().
			UpdateEmployee(gomock.Any(), gomock.Any()).
			Return(db.Employee{}, pgx.ErrNoRows)

		service := services.NewEmployeeService(mockQuerier)
		_, err := service.UpdateEmployee(context.Background(), employeeID, validEmployeeParams())
		assert.ErrorIs(t, err, services.ErrEmployeeNotFound)
	})
}

func TestEmployeeService_DeleteEmployee(t *testing.T) {
	employeeID := uuid.New()

	t.Run("successfully deletes employee", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQuerier := mocks.NewMockQuerier(ctrl)
		mockQuerier.EXPECT().DeleteEmployee(gomock.Any(), employeeID).Return(int64(1), nil)

		service := services.NewEmployeeService(mockQuerier)
		assert.NoError(t, service.DeleteEmployee(context.Background(), employeeID))
	})

	t.Run("employee not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQuerier := mocks.NewMockQuerier(ctrl)
		mockQuerier.EXPECT().DeleteEmployee(gomock.Any(), employeeID).Return(int64(0), nil)

		service := services.NewEmployeeService(mockQuerier)
		assert.ErrorIs(t, service.DeleteEmployee(context.Background(), employeeID), services.ErrEmployeeNotFound)
	})

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQuerier := mocks.NewMockQuerier(ctrl)
		mockQuerier.EXPECT().DeleteEmployee(gomock.Any(), employeeID).Return(int64(0), errors.New("database error"))

		service := services.NewEmployeeService(mockQuerier)
		err := service.DeleteEmployee(context.Background(), employeeID)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to delete employee")
	})
}

func TestEmployeeService_GetEmployee(t *testing.T) {
	employeeID := uuid.New()

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQuerier := mocks.NewMockQuerier(ctrl)
		mockQuerier.EXPECT().GetEmployee(gomock.Any(), employeeID).Return(db.Employee{}, pgx.ErrNoRows)

		service := services.NewEmployeeService(mockQuerier)
		_, err := service.GetEmployee(context.Background(), employeeID)
		assert.ErrorIs(t, err, services.ErrEmployeeNotFound)
	})
}
