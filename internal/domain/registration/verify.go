package registration

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/customer-registry/internal/domain/entity"
)

// Códigos de error de validación (expuestos en la API).
const (
	CodeCompanyNotFound    = "COMPANY_NOT_FOUND"
	CodeNameRequired       = "NAME_REQUIRED"
	CodeInvalidEmail       = "INVALID_EMAIL"
	CodeNotOldEnough       = "NOT_OLD_ENOUGH"
	CodeInsufficientCredit = "INSUFFICIENT_CREDIT"
)

// ValidationError error de negocio esperado; Error() devuelve el mensaje para el usuario.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func fail(code, msg string) []error {
	return []error{&ValidationError{Code: code, Message: msg}}
}

// emailPattern patrón deliberadamente simple: algo@algo.algo.
// \S de Go solo excluye espacios ASCII; el resto lo descarta hasSpace.
var emailPattern = regexp.MustCompile(`^\S+?@\S+\.\S+$`)

// hasSpace detecta cualquier espacio Unicode (incluye \v, NBSP, U+2003, U+3000 y BOM).
func hasSpace(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\uFEFF'
	}) >= 0
}

// Cada verificación devuelve nil si pasa, o exactamente un error si falla.

// VerifyCompany falla si no se encontró empresa para companyID.
func VerifyCompany(companyID string, company *entity.Company) []error {
	if company != nil {
		return nil
	}
	return fail(CodeCompanyNotFound, fmt.Sprintf("No company found for id '%s'", companyID))
}

func VerifyFullName(firstName, lastName string) []error {
	if firstName != "" && lastName != "" {
		return nil
	}
	return fail(CodeNameRequired, "Both 'firstName' and 'lastName' must be provided")
}

func VerifyEmail(email string) []error {
	if emailPattern.MatchString(email) && !hasSpace(email) {
		return nil
	}
	return fail(CodeInvalidEmail, "Given email address is invalid")
}

// VerifyAge exige MinAge años cumplidos a la fecha today (ver FindAge).
func VerifyAge(dateOfBirth, today time.Time) []error {
	if FindAge(dateOfBirth, today) >= MinAge {
		return nil
	}
	return fail(CodeNotOldEnough, "Not old enough")
}

// VerifyCreditLimit pasa si no hay límite o si el límite alcanza MinCreditLimit.
func VerifyCreditLimit(creditLimit decimal.NullDecimal) []error {
	if !creditLimit.Valid || creditLimit.Decimal.GreaterThanOrEqual(MinCreditLimit) {
		return nil
	}
	return fail(CodeInsufficientCredit, "Insufficient credit limit")
}
