package registration_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/customer-registry/internal/domain/entity"
	"github.com/jhoicas/customer-registry/internal/domain/registration"
)

func TestCreditLimitFor(t *testing.T) {
	t.Run("sin empresa no hay límite", func(t *testing.T) {
		assert.False(t, registration.CreditLimitFor(nil).Valid)
	})

	t.Run("VeryImportantClient no tiene límite", func(t *testing.T) {
		c := &entity.Company{ID: "vip", Name: "VeryImportantClient", Classification: entity.ClassificationBronze}
		assert.False(t, registration.CreditLimitFor(c).Valid)
	})

	t.Run("el nombre debe coincidir exactamente", func(t *testing.T) {
		c := &entity.Company{ID: "vip", Name: "veryimportantclient", Classification: entity.ClassificationGold}
		limit := registration.CreditLimitFor(c)
		assert.True(t, limit.Valid)
		assert.True(t, limit.Decimal.Equal(decimal.NewFromInt(10)))
	})

	t.Run("otras empresas reciben el valor fijo sin importar la clasificación", func(t *testing.T) {
		for _, cl := range []entity.Classification{entity.ClassificationBronze, entity.ClassificationSilver, entity.ClassificationGold} {
			limit := registration.CreditLimitFor(&entity.Company{ID: "x", Name: "ACME", Classification: cl})
			assert.True(t, limit.Valid)
			assert.True(t, limit.Decimal.Equal(decimal.NewFromInt(10)), string(cl))
		}
	})
}
