package registration

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	rules "github.com/jhoicas/customer-registry/internal/domain/registration"
)

func TestValidationCodes_ErroresEnvueltos(t *testing.T) {
	wrapped := fmt.Errorf("nombre: %w", &rules.ValidationError{Code: rules.CodeNameRequired, Message: "x"})

	codes := validationCodes([]error{
		&rules.ValidationError{Code: rules.CodeInvalidEmail, Message: "y"},
		wrapped,
		errors.New("otro"),
	})

	assert.Equal(t, []string{rules.CodeInvalidEmail, rules.CodeNameRequired, "otro"}, codes)
}
