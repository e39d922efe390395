package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/customer-registry/internal/application/registration"
	"github.com/jhoicas/customer-registry/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CompanyUC        *usecase.CompanyUseCase
	RegisterCustomer *registration.RegisterCustomerUseCase
	JWTSecret        string
	Logger           zerolog.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	auth := AuthMiddleware(deps.JWTSecret)
	if deps.JWTSecret == "" {
		deps.Logger.Warn().Msg("JWT_SECRET vacío: las rutas protegidas responderán 401")
	}

	// Companies: lectura pública, alta protegida
	companies := api.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Get("/", companyHandler.List)
	companies.Get("/:id", companyHandler.GetByID)
	companies.Post("/", auth, companyHandler.Create)

	// Customers (protegido)
	customers := api.Group("/customers", auth)
	customerHandler := NewCustomerHandler(deps.RegisterCustomer, deps.Logger)
	customers.Post("/", customerHandler.Register)
}
