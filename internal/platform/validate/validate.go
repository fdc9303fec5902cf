package validate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Una sola instancia: el validator cachea metadata de structs.
var v = validator.New(validator.WithRequiredStructEnabled())

// Struct valida un request body contra sus tags `validate`.
// Devuelve un error con mensaje apto para el cliente (primer campo que falla).
func Struct(s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return errors.New("datos de entrada inválidos")
	}

	fe := verrs[0]
	field := jsonName(fe)

	switch fe.Tag() {
	case "required":
		return fmt.Errorf("el campo %s es obligatorio", field)
	case "email":
		return fmt.Errorf("el campo %s debe ser un email válido", field)
	case "datetime":
		return fmt.Errorf("el campo %s debe ser una fecha válida (YYYY-MM-DD)", field)
	case "gt":
		return fmt.Errorf("el campo %s debe ser mayor que %s", field, fe.Param())
	default:
		return fmt.Errorf("el campo %s es inválido", field)
	}
}

// jsonName baja el nombre del campo al estilo del body (pet_id, no PetID).
func jsonName(fe validator.FieldError) string {
	// validator expone el nombre del struct field; con RegisterTagNameFunc
	// habría que recorrer todos los structs, acá alcanza con snake_case.
	name := fe.Field()
	var b strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 && name[i-1] >= 'a' && name[i-1] <= 'z' {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
