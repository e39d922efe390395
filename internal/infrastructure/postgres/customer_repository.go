package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/customer-registry/internal/application/registration"
	"github.com/jhoicas/customer-registry/internal/domain/entity"
)

var _ registration.CustomerDataAccess = (*CustomerRepo)(nil)

// CustomerRepo adaptador de escritura de clientes (usable con pool o tx).
type CustomerRepo struct {
	q   Querier
	log zerolog.Logger
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier, log zerolog.Logger) *CustomerRepo {
	return &CustomerRepo{q: q, log: log}
}

// AddCustomer inserta el cliente. El ID de fila se genera aquí y no se devuelve; un error
// de inserción solo queda en el log.
func (r *CustomerRepo) AddCustomer(ctx context.Context, customer entity.Customer) {
	query := `
		INSERT INTO customers (id, company_id, first_name, last_name, date_of_birth, email,
		                       has_credit_limit, credit_limit, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	id := uuid.New().String()
	_, err := r.q.Exec(ctx, query,
		id, customer.Company.ID, customer.FirstName, customer.LastName,
		customer.DateOfBirth, customer.EmailAddress,
		customer.HasCreditLimit, customer.CreditLimit, time.Now(),
	)
	if err != nil {
		r.log.Error().Err(err).
			Str("customer_row_id", id).
			Str("company_id", customer.Company.ID).
			Msg("insert customer")
	}
}
