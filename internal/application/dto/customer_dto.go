package dto

import "github.com/shopspring/decimal"

// DateLayout formato de fechas de nacimiento en la API.
const DateLayout = "2006-01-02"

// RegisterCustomerRequest body para POST /api/customers.
type RegisterCustomerRequest struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	DateOfBirth string `json:"date_of_birth"` // YYYY-MM-DD
	CompanyID   string `json:"company_id"`
}

// CustomerResponse cliente registrado. credit_limit es null cuando no aplica límite.
type CustomerResponse struct {
	FirstName      string              `json:"first_name"`
	LastName       string              `json:"last_name"`
	DateOfBirth    string              `json:"date_of_birth"`
	Email          string              `json:"email"`
	Company        CompanyResponse     `json:"company"`
	HasCreditLimit bool                `json:"has_credit_limit"`
	CreditLimit    decimal.NullDecimal `json:"credit_limit"`
}
