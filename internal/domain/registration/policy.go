// Package registration contiene las reglas de negocio para dar de alta clientes:
// verificaciones independientes, cálculo de edad y política de límite de crédito.
// Todas las funciones son puras; el caso de uso las compone.
package registration

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/customer-registry/internal/domain/entity"
)

// Constantes provisionales de negocio, pendientes de reglas reales.
const (
	MinAge              = 21
	VeryImportantClient = "VeryImportantClient"
)

var (
	MinCreditLimit         = decimal.NewFromInt(500)
	PlaceholderCreditLimit = decimal.NewFromInt(10)
)

// CreditLimitFor deriva el límite de crédito del cliente a partir de su empresa.
//
// Sin empresa, o si la empresa se llama exactamente VeryImportantClient, no hay límite
// (y se omite la verificación de crédito). Cualquier otra empresa recibe el valor fijo
// PlaceholderCreditLimit, que no alcanza MinCreditLimit.
// TODO: reemplazar el valor fijo cuando producto defina el límite por clasificación.
func CreditLimitFor(company *entity.Company) decimal.NullDecimal {
	if company == nil || company.Name == VeryImportantClient {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(PlaceholderCreditLimit)
}
