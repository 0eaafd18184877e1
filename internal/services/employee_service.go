package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/chainpay/chainpay-api/internal/db"
	"github.com/chainpay/chainpay-api/internal/helpers"
	"github.com/chainpay/chainpay-api/internal/logger"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// Employee service errors. Handlers map these to HTTP status codes.
var (
	ErrEmployeeNotFound      = errors.New("employee not found")
	ErrEmployeeFieldsMissing = errors.New("name, wallet address, preferred chain, and monthly salary are required")
	ErrEmployeeBadAddress    = errors.New("invalid wallet address format")
	ErrEmployeeBadSalary     = errors.New("monthly salary must be greater than 0")
	ErrWalletAddressTaken    = errors.New("an employee with this wallet address already exists")
)

// EmployeeService handles business logic for employee operations
type EmployeeService struct {
	queries db.Querier
	logger  *zap.Logger
}

// NewEmployeeService creates a new employee service
func NewEmployeeService(queries db.Querier) *EmployeeService {
	return &EmployeeService{
		queries: queries,
		logger:  logger.Log,
	}
}

// EmployeeParams carries the writable employee fields for create and update.
type EmployeeParams struct {
	Name           string
	WalletAddress  string
	PreferredChain string
	MonthlySalary  float64
}

func (p EmployeeParams) validate() error {
	if p.Name == "" || p.WalletAddress == "" || p.PreferredChain == "" {
		return ErrEmployeeFieldsMissing
	}
	if !helpers.IsAddressValid(p.WalletAddress) {
		return ErrEmployeeBadAddress
	}
	if p.MonthlySalary <= 0 {
		return ErrEmployeeBadSalary
	}
	return nil
}

// ListEmployees returns all employees, newest first.
func (s *EmployeeService) ListEmployees(ctx context.Context) ([]db.Employee, error) {
	employees, err := s.queries.ListEmployees(ctx)
	if err != nil {
		s.logger.Error("Failed to list employees", zap.Error(err))
		return nil, fmt.Errorf("failed to retrieve employees: %w", err)
	}
	return employees, nil
}

// GetEmployee retrieves an employee by ID
func (s *EmployeeService) GetEmployee(ctx context.Context, employeeID uuid.UUID) (*db.Employee, error) {
	employee, err := s.queries.GetEmployee(ctx, employeeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrEmployeeNotFound
		}
		s.logger.Error("Failed to get employee",
			zap.String("employee_id", employeeID.String()),
			zap.Error(err))
		return nil, fmt.Errorf("failed to retrieve employee: %w", err)
	}
	return &employee, nil
}

// CreateEmployee validates the fields and creates a new employee. The wallet
// address must not already belong to another employee.
func (s *EmployeeService) CreateEmployee(ctx context.Context, params EmployeeParams) (*db.Employee, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	_, err := s.queries.GetEmployeeByWalletAddress(ctx, params.WalletAddress)
	if err == nil {
		return nil, ErrWalletAddressTaken
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		s.logger.Error("Failed to check wallet address uniqueness",
			zap.String("wallet_address", params.WalletAddress),
			zap.Error(err))
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}

	employee, err := s.queries.CreateEmployee(ctx, db.CreateEmployeeParams{
		Name:           params.Name,
		WalletAddress:  params.WalletAddress,
		PreferredChain: params.PreferredChain,
		MonthlySalary:  params.MonthlySalary,
	})
	if err != nil {
		s.logger.Error("Failed to create employee",
			zap.String("wallet_address", params.WalletAddress),
			zap.Error(err))
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}

	s.logger.Info("Employee created",
		zap.String("employee_id", employee.ID.String()),
		zap.String("name", employee.Name))

	return &employee, nil
}

// UpdateEmployee validates the fields and updates an existing employee. The
// uniqueness check excludes the employee's own record.
func (s *EmployeeService) UpdateEmployee(ctx context.Context, employeeID uuid.UUID, params EmployeeParams) (*db.Employee, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	_, err := s.queries.GetEmployeeByWalletAddressExcluding(ctx, db.GetEmployeeByWalletAddressExcludingParams{
		WalletAddress: params.WalletAddress,
		ID:            employeeID,
	})
	if err == nil {
		return nil, ErrWalletAddressTaken
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		s.logger.Error("Failed to check wallet address uniqueness",
			zap.String("wallet_address", params.WalletAddress),
			zap.Error(err))
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}

	employee, err := s.queries.UpdateEmployee(ctx, db.UpdateEmployeeParams{
		ID:             employeeID,
		Name:           params.Name,
		WalletAddress:  params.WalletAddress,
		PreferredChain: params.PreferredChain,
		MonthlySalary:  params.MonthlySalary,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrEmployeeNotFound
		}
		s.logger.Error("Failed to update employee",
			zap.String("employee_id", employeeID.String()),
			zap.Error(err))
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}

	s.logger.Info("Employee updated", zap.String("employee_id", employee.ID.String()))

	return &employee, nil
}

// DeleteEmployee removes an employee record.
func (s *EmployeeService) DeleteEmployee(ctx context.Context, employeeID uuid.UUID) error {
	rows, err := s.queries.DeleteEmployee(ctx, employeeID)
	if err != nil {
		s.logger.Error("Failed to delete employee",
			zap.String("employee_id", employeeID.String()),
			zap.Error(err))
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if rows == 0 {
		return ErrEmployeeNotFound
	}

	s.logger.Info("Employee deleted", zap.String("employee_id", employeeID.String()))

	return nil
}
