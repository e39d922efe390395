// seed da de alta empresas en PostgreSQL a través del caso de uso de empresas.
//
// Uso: go run ./cmd/seed [nombre:clasificación ...]
// Sin argumentos crea VeryImportantClient (gold) y ACME (bronze).
// Las empresas que ya existen se omiten.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jhoicas/customer-registry/internal/application/dto"
	"github.com/jhoicas/customer-registry/internal/application/usecase"
	"github.com/jhoicas/customer-registry/internal/domain"
	"github.com/jhoicas/customer-registry/internal/infrastructure/postgres"
	"github.com/jhoicas/customer-registry/pkg/config"
	"github.com/jhoicas/customer-registry/pkg/logger"
)

var defaultCompanies = []string{"VeryImportantClient:gold", "ACME:bronze"}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	args := os.Args[1:]
	if len(args) == 0 {
		args = defaultCompanies
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	uc := usecase.NewCompanyUseCase(postgres.NewCompanyRepository(pool))

	created := 0
	for _, arg := range args {
		name, classification, _ := strings.Cut(arg, ":")
		out, err := uc.Create(ctx, dto.CreateCompanyRequest{Name: name, Classification: classification})
		switch {
		case errors.Is(err, domain.ErrDuplicate):
			log.Warn().Str("name", name).Msg("empresa ya existe, se omite")
		case err != nil:
			log.Fatal().Err(err).Str("name", name).Msg("crear empresa")
		default:
			created++
			log.Info().Str("id", out.ID).Str("name", out.Name).Str("classification", out.Classification).Msg("empresa creada")
		}
	}
	log.Info().Int("created", created).Msg("seed terminado")
}
