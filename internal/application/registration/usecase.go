package registration

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/customer-registry/internal/domain/entity"
	rules "github.com/jhoicas/customer-registry/internal/domain/registration"
	"github.com/jhoicas/customer-registry/pkg/result"
)

// RegisterCustomerInput datos ya tipados del cliente a registrar.
// Cualquier conversión (JSON, fechas) ocurre antes de llamar al caso de uso.
type RegisterCustomerInput struct {
	FirstName   string
	LastName    string
	Email       string
	DateOfBirth time.Time
	CompanyID   string
}

// RegisterResult Success con el cliente creado o Failure con todos los errores de validación.
type RegisterResult = result.Result[entity.Customer, []error]

// RegisterCustomerUseCase valida y registra clientes nuevos.
type RegisterCustomerUseCase struct {
	companies CompanyLookup
	customers CustomerDataAccess
	now       func() time.Time
	log       zerolog.Logger
}

// Option configura el caso de uso.
type Option func(*RegisterCustomerUseCase)

// WithClock fija la fuente de "hoy" para el cálculo de edad.
func WithClock(now func() time.Time) Option {
	return func(uc *RegisterCustomerUseCase) { uc.now = now }
}

// WithLogger asigna el logger (por defecto zerolog.Nop()).
func WithLogger(log zerolog.Logger) Option {
	return func(uc *RegisterCustomerUseCase) { uc.log = log }
}

// NewRegisterCustomerUseCase construye el caso de uso con sus dos colaboradores.
func NewRegisterCustomerUseCase(companies CompanyLookup, customers CustomerDataAccess, opts ...Option) *RegisterCustomerUseCase {
	uc := &RegisterCustomerUseCase{
		companies: companies,
		customers: customers,
		now:       time.Now,
		log:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Register ejecuta todas las verificaciones (sin cortar en la primera) y, si ninguna falla,
// construye y persiste el cliente.
//
// Los errores de negocio viajan dentro del Failure en orden fijo: empresa, nombre, email,
// edad, crédito. El error de retorno solo se usa si la búsqueda de empresa falla por
// infraestructura; en ese caso el Result es nil y no se evalúa nada más.
func (uc *RegisterCustomerUseCase) Register(ctx context.Context, in RegisterCustomerInput) (*RegisterResult, error) {
	company, err := uc.companies.GetByID(ctx, in.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("buscar empresa %s: %w", in.CompanyID, err)
	}

	creditLimit := rules.CreditLimitFor(company)

	var errs []error
	errs = append(errs, rules.VerifyCompany(in.CompanyID, company)...)
	errs = append(errs, rules.VerifyFullName(in.FirstName, in.LastName)...)
	errs = append(errs, rules.VerifyEmail(in.Email)...)
	errs = append(errs, rules.VerifyAge(in.DateOfBirth, uc.now())...)
	errs = append(errs, rules.VerifyCreditLimit(creditLimit)...)

	if len(errs) > 0 {
		uc.log.Debug().
			Str("company_id", in.CompanyID).
			Strs("codes", validationCodes(errs)).
			Msg("registro de cliente rechazado")
		res := result.Failure[entity.Customer](errs)
		return &res, nil
	}

	customer := entity.NewCustomer(in.FirstName, in.LastName, in.DateOfBirth, in.Email, *company, creditLimit)

	// Sin acuse: no hay ID asignado ni detección de duplicados.
	uc.customers.AddCustomer(ctx, customer)

	uc.log.Info().
		Str("company_id", company.ID).
		Bool("has_credit_limit", customer.HasCreditLimit).
		Msg("cliente registrado")
	res := result.Success[entity.Customer, []error](customer)
	return &res, nil
}

func validationCodes(errs []error) []string {
	codes := make([]string, 0, len(errs))
	for _, err := range errs {
		var verr *rules.ValidationError
		if errors.As(err, &verr) {
			codes = append(codes, verr.Code)
			continue
		}
		codes = append(codes, err.Error())
	}
	return codes
}
