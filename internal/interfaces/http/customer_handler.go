package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/customer-registry/internal/application/dto"
	"github.com/jhoicas/customer-registry/internal/application/registration"
	"github.com/jhoicas/customer-registry/internal/domain/entity"
	rules "github.com/jhoicas/customer-registry/internal/domain/registration"
	"github.com/jhoicas/customer-registry/pkg/result"
)

// CustomerHandler maneja el registro de clientes (protegido).
type CustomerHandler struct {
	uc  *registration.RegisterCustomerUseCase
	log zerolog.Logger
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *registration.RegisterCustomerUseCase, log zerolog.Logger) *CustomerHandler {
	return &CustomerHandler{uc: uc, log: log}
}

// Register godoc
// @Summary      Registrar cliente
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterCustomerRequest  true  "Datos del cliente"
// @Success      201   {object}  dto.CustomerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ValidationErrorResponse
// @Router       /api/customers [post]
func (h *CustomerHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	dob, err := time.Parse(dto.DateLayout, in.DateOfBirth)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: "date_of_birth debe tener formato YYYY-MM-DD"})
	}

	res, err := h.uc.Register(c.UserContext(), registration.RegisterCustomerInput{
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Email:       in.Email,
		DateOfBirth: dob,
		CompanyID:   in.CompanyID,
	})
	if err != nil {
		h.log.Error().Err(err).Str("operator", GetSubject(c)).Msg("registro de cliente")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo registrar el cliente"})
	}

	return result.Match(*res,
		func(customer entity.Customer) error {
			return c.Status(fiber.StatusCreated).JSON(toCustomerResponse(customer))
		},
		func(errs []error) error {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ValidationErrorResponse{
				Code:   "VALIDATION",
				Errors: toFieldErrors(errs),
			})
		},
	)
}

func toCustomerResponse(c entity.Customer) dto.CustomerResponse {
	return dto.CustomerResponse{
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		DateOfBirth: c.DateOfBirth.Format(dto.DateLayout),
		Email:       c.EmailAddress,
		Company: dto.CompanyResponse{
			ID:             c.Company.ID,
			Name:           c.Company.Name,
			Classification: string(c.Company.Classification),
			CreatedAt:      c.Company.CreatedAt,
			UpdatedAt:      c.Company.UpdatedAt,
		},
		HasCreditLimit: c.HasCreditLimit,
		CreditLimit:    c.CreditLimit,
	}
}

func toFieldErrors(errs []error) []dto.FieldError {
	out := make([]dto.FieldError, 0, len(errs))
	for _, err := range errs {
		fe := dto.FieldError{Code: "VALIDATION", Message: err.Error()}
		var verr *rules.ValidationError
		if errors.As(err, &verr) {
			fe.Code = verr.Code
		}
		out = append(out, fe)
	}
	return out
}
