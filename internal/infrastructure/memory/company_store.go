// Package memory adaptadores en memoria para desarrollo local y pruebas (STORAGE_DRIVER=memory).
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/jhoicas/customer-registry/internal/domain"
	"github.com/jhoicas/customer-registry/internal/domain/entity"
	"github.com/jhoicas/customer-registry/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyStore)(nil)

// CompanyStore catálogo de empresas en memoria. Seguro para uso concurrente.
type CompanyStore struct {
	mu   sync.RWMutex
	byID map[string]entity.Company
}

// NewCompanyStore crea el catálogo con empresas iniciales opcionales.
func NewCompanyStore(seed ...entity.Company) *CompanyStore {
	s := &CompanyStore{byID: make(map[string]entity.Company, len(seed))}
	for _, c := range seed {
		s.byID[c.ID] = c
	}
	return s
}

// Create agrega una empresa. El nombre es único (sin distinguir mayúsculas).
func (s *CompanyStore) Create(_ context.Context, company *entity.Company) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[company.ID]; ok {
		return domain.ErrDuplicate
	}
	for _, c := range s.byID {
		if strings.EqualFold(c.Name, company.Name) {
			return domain.ErrDuplicate
		}
	}
	s.byID[company.ID] = *company
	return nil
}

// GetByID devuelve una copia de la empresa, o (nil, nil) si no existe.
func (s *CompanyStore) GetByID(_ context.Context, id string) (*entity.Company, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.byID[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

// List devuelve empresas ordenadas por nombre.
func (s *CompanyStore) List(_ context.Context, limit, offset int) ([]*entity.Company, error) {
	s.mu.RLock()
	all := make([]*entity.Company, 0, len(s.byID))
	for _, c := range s.byID {
		c := c
		all = append(all, &c)
	}
	s.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	if offset >= len(all) {
		return []*entity.Company{}, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}
