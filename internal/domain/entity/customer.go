package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer cliente registrado. Se construye una sola vez con NewCustomer y se pasa por valor;
// nadie lo modifica después de creado.
type Customer struct {
	FirstName      string
	LastName       string
	DateOfBirth    time.Time
	EmailAddress   string
	Company        Company // copia, no referencia
	HasCreditLimit bool
	CreditLimit    decimal.NullDecimal // Valid=false: sin límite de crédito
}

// NewCustomer construye el cliente con todas sus propiedades.
// HasCreditLimit siempre refleja creditLimit.Valid.
func NewCustomer(
	firstName, lastName string,
	dateOfBirth time.Time,
	email string,
	company Company,
	creditLimit decimal.NullDecimal,
) Customer {
	return Customer{
		FirstName:      firstName,
		LastName:       lastName,
		DateOfBirth:    dateOfBirth,
		EmailAddress:   email,
		Company:        company,
		HasCreditLimit: creditLimit.Valid,
		CreditLimit:    creditLimit,
	}
}
