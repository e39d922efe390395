package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/customer-registry/internal/application/dto"
	"github.com/jhoicas/customer-registry/internal/application/registration"
	"github.com/jhoicas/customer-registry/internal/application/usecase"
	"github.com/jhoicas/customer-registry/internal/domain/entity"
	"github.com/jhoicas/customer-registry/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/customer-registry/internal/interfaces/http"
)

var fixedToday = time.Date(2026, time.October, 18, 12, 0, 0, 0, time.UTC)

type testServer struct {
	app       *fiber.App
	customers *memory.CustomerStore
}

func newTestServer(t *testing.T, lookup registration.CompanyLookup) testServer {
	t.Helper()
	companies := memory.NewCompanyStore(
		entity.Company{ID: "important", Name: "VeryImportantClient", Classification: entity.ClassificationGold},
		entity.Company{ID: "regular", Name: "ACME", Classification: entity.ClassificationBronze},
	)
	if lookup == nil {
		lookup = companies
	}
	customers := memory.NewCustomerStore()

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		CompanyUC: usecase.NewCompanyUseCase(companies),
		RegisterCustomer: registration.NewRegisterCustomerUseCase(lookup, customers,
			registration.WithClock(func() time.Time { return fixedToday })),
		JWTSecret: testJWTSecret,
		Logger:    zerolog.Nop(),
	})
	return testServer{app: app, customers: customers}
}

func (s testServer) post(t *testing.T, path string, body any, auth string) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func validRequest() dto.RegisterCustomerRequest {
	return dto.RegisterCustomerRequest{
		FirstName:   "first",
		LastName:    "last",
		Email:       "first.last@email.com",
		DateOfBirth: "1990-02-01",
		CompanyID:   "important",
	}
}

func TestRegisterCustomer_Creado(t *testing.T) {
	s := newTestServer(t, nil)

	resp := s.post(t, "/api/customers", validRequest(), bearer(t))
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "first", body["first_name"])
	assert.Equal(t, "1990-02-01", body["date_of_birth"])
	assert.Equal(t, false, body["has_credit_limit"])
	assert.Nil(t, body["credit_limit"])
	assert.Equal(t, "VeryImportantClient", body["company"].(map[string]any)["name"])

	stored := s.customers.Snapshot()
	require.Len(t, stored, 1)
	assert.Equal(t, "first.last@email.com", stored[0].EmailAddress)
}

func TestRegisterCustomer_ErroresDeValidacion(t *testing.T) {
	s := newTestServer(t, nil)
	in := validRequest()
	in.CompanyID = "regular"
	in.LastName = ""
	in.DateOfBirth = "2014-05-05"

	resp := s.post(t, "/api/customers", in, bearer(t))
	defer resp.Body.Close()

	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	var body dto.ValidationErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "VALIDATION", body.Code)
	assert.Equal(t, []dto.FieldError{
		{Code: "NAME_REQUIRED", Message: "Both 'firstName' and 'lastName' must be provided"},
		{Code: "NOT_OLD_ENOUGH", Message: "Not old enough"},
		{Code: "INSUFFICIENT_CREDIT", Message: "Insufficient credit limit"},
	}, body.Errors)
	assert.Empty(t, s.customers.Snapshot(), "no se persiste nada en un rechazo")
}

func TestRegisterCustomer_EmpresaDesconocida(t *testing.T) {
	s := newTestServer(t, nil)
	in := validRequest()
	in.CompanyID = "unknown"

	resp := s.post(t, "/api/customers", in, bearer(t))
	defer resp.Body.Close()

	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	var body dto.ValidationErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Errors, 1)
	assert.Equal(t, "No company found for id 'unknown'", body.Errors[0].Message)
}

func TestRegisterCustomer_CuerpoOFechaInvalida(t *testing.T) {
	s := newTestServer(t, nil)

	in := validRequest()
	in.DateOfBirth = "01/02/1990"
	resp := s.post(t, "/api/customers", in, bearer(t))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	req := httptest.NewRequest(http.MethodPost, "/api/customers", bytes.NewBufferString("{no-json"))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearer(t))
	resp2, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp2.StatusCode)
}

func TestRegisterCustomer_SinToken(t *testing.T) {
	s := newTestServer(t, nil)

	resp := s.post(t, "/api/customers", validRequest(), "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Empty(t, s.customers.Snapshot())
}

type failingLookup struct{}

func (failingLookup) GetByID(context.Context, string) (*entity.Company, error) {
	return nil, errors.New("db caída")
}

func TestRegisterCustomer_FallaDeBusqueda(t *testing.T) {
	s := newTestServer(t, failingLookup{})

	resp := s.post(t, "/api/customers", validRequest(), bearer(t))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Empty(t, s.customers.Snapshot())
}
