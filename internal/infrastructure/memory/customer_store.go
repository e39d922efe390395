package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/customer-registry/internal/domain/entity"
)

// CustomerStore registro de clientes en memoria (solo escritura para el caso de uso).
type CustomerStore struct {
	mu        sync.Mutex
	customers []entity.Customer
}

func NewCustomerStore() *CustomerStore {
	return &CustomerStore{}
}

// AddCustomer guarda una copia del cliente. No detecta duplicados.
func (s *CustomerStore) AddCustomer(_ context.Context, customer entity.Customer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customers = append(s.customers, customer)
}

// Snapshot devuelve una copia de los clientes guardados, en orden de llegada.
func (s *CustomerStore) Snapshot() []entity.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Customer, len(s.customers))
	copy(out, s.customers)
	return out
}
