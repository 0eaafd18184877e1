package db

import (
	"context"

	"github.com/google/uuid"
)

const createEmployee = `
INSERT INTO employees (name, wallet_address, preferred_chain, monthly_salary)
VALUES ($1, $2, $3, $4)
RETURNING id, name, wallet_address, preferred_chain, monthly_salary, created_at, updated_at
`

type CreateEmployeeParams struct {
	Name           string
	WalletAddress  string
	PreferredChain string
	MonthlySalary  float64
}

func (q *Queries) CreateEmployee(ctx context.Context, arg CreateEmployeeParams) (Employee, error) {
	row := q.db.QueryRow(ctx, createEmployee,
		arg.Name,
		arg.WalletAddress,
		arg.PreferredChain,
		arg.MonthlySalary,
	)
	var i Employee
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.WalletAddress,
		&i.PreferredChain,
		&i.MonthlySalary,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getEmployee = `
SELECT id, name, wallet_address, preferred_chain, monthly_salary, created_at, updated_at
FROM employees
WHERE id = $1
`

func (q *Queries) GetEmployee(ctx context.Context, id uuid.UUID) (Employee, error) {
	row := q.db.QueryRow(ctx, getEmployee, id)
	var i Employee
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.WalletAddress,
		&i.PreferredChain,
		&i.MonthlySalary,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getEmployeeByWalletAddress = `
SELECT id, name, wallet_address, preferred_chain, monthly_salary, created_at, updated_at
FROM employees
WHERE wallet_address = $1
`

func (q *Queries) GetEmployeeByWalletAddress(ctx context.Context, walletAddress string) (Employee, error) {
	row := q.db.QueryRow(ctx, getEmployeeByWalletAddress, walletAddress)
	var i Employee
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.WalletAddress,
		&i.PreferredChain,
		&i.MonthlySalary,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getEmployeeByWalletAddressExcluding = `
SELECT id, name, wallet_address, preferred_chain, monthly_salary, created_at, updated_at
FROM employees
WHERE wallet_address = $1 AND id <> $2
`

type GetEmployeeByWalletAddressExcludingParams struct {
	WalletAddress string
	ID            uuid.UUID
}

func (q *Queries) GetEmployeeByWalletAddressExcluding(ctx context.Context, arg GetEmployeeByWalletAddressExcludingParams) (Employee, error) {
	row := q.db.QueryRow(ctx, getEmployeeByWalletAddressExcluding, arg.WalletAddress, arg.ID)
	var i Employee
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.WalletAddress,
		&i.PreferredChain,
		&i.MonthlySalary,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const listEmployees = `
SELECT id, name, wallet_address, preferred_chain, monthly_salary, created_at, updated_at
FROM employees
ORDER BY created_at DESC
`

func (q *Queries) ListEmployees(ctx context.Context) ([]Employee, error) {
	rows, err := q.db.Query(ctx, listEmployees)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Employee{}
	for rows.Next() {
		var i Employee
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.WalletAddress,
			&i.PreferredChain,
			&i.MonthlySalary,
			&i.CreatedAt,
			&i.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const updateEmployee = `
UPDATE employees
SET name = $2,
    wallet_address = $3,
    preferred_chain = $4,
    monthly_salary = $5,
    updated_at = now()
WHERE id = $1
RETURNING id, name, wallet_address, preferred_chain, monthly_salary, created_at, updated_at
`

type UpdateEmployeeParams struct {
	ID             uuid.UUID
	Name           string
	WalletAddress  string
	PreferredChain string
	MonthlySalary  float64
}

func (q *Queries) UpdateEmployee(ctx context.Context, arg UpdateEmployeeParams) (Employee, error) {
	row := q.db.QueryRow(ctx, updateEmployee,
		arg.ID,
		arg.Name,
		arg.WalletAddress,
		arg.PreferredChain,
		arg.MonthlySalary,
	)
	var i Employee
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.WalletAddress,
		&i.PreferredChain,
		&i.MonthlySalary,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const deleteEmployee = `
DELETE FROM employees
WHERE id = $1
`

func (q *Queries) DeleteEmployee(ctx context.Context, id uuid.UUID) (int64, error) {
	result, err := q.db.Exec(ctx, deleteEmployee, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
