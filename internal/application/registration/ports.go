package registration

import (
	"context"

	"github.com/jhoicas/customer-registry/internal/domain/entity"
)

// CompanyLookup busca la empresa de un cliente. Devuelve (nil, nil) si no existe.
// El error queda reservado para fallas de infraestructura.
type CompanyLookup interface {
	GetByID(ctx context.Context, id string) (*entity.Company, error)
}

// CustomerDataAccess persiste el cliente ya validado.
// No devuelve nada: las fallas de almacenamiento no llegan al llamador (las registra el adaptador).
type CustomerDataAccess interface {
	AddCustomer(ctx context.Context, customer entity.Customer)
}
