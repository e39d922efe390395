package entity

import (
	"fmt"
	"strings"
	"time"
)

// Classification nivel comercial de una empresa. Ninguna regla de negocio lo usa todavía.
type Classification string

const (
	ClassificationBronze Classification = "bronze"
	ClassificationSilver Classification = "silver"
	ClassificationGold   Classification = "gold"
)

// ParseClassification normaliza y valida una clasificación (vacío = bronze).
func ParseClassification(s string) (Classification, error) {
	switch c := Classification(strings.ToLower(strings.TrimSpace(s))); c {
	case "":
		return ClassificationBronze, nil
	case ClassificationBronze, ClassificationSilver, ClassificationGold:
		return c, nil
	default:
		return "", fmt.Errorf("clasificación desconocida %q", s)
	}
}

// Company empresa a la que se asocia un cliente. Solo lectura para el registro de clientes.
type Company struct {
	ID             string
	Name           string
	Classification Classification
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
