package v1

import (
	"fmt"
	"regexp"
	"strings"
)

// Validador checks one aspect of a decoded request body before the
// persistence call. Entity controllers append their own validators after the
// shared required-field validator.
type Validador func(corpo map[string]any) error

// ErroValidacao is the structured failure produced by the validation
// pipeline. Campos is filled only by the required-field validator.
type ErroValidacao struct {
	Mensagem string
	Campos   []string
}

func (e *ErroValidacao) Error() string {
	return e.Mensagem
}

// campoAusente treats absent, null and falsy values as missing.
func campoAusente(valor any, presente bool) bool {
	if !presente || valor == nil {
		return true
	}
	switch v := valor.(type) {
	case string:
		return v == ""
	case float64:
		return v == 0
	case bool:
		return !v
	}
	return false
}

// camposObrigatorios fails when any configured field is absent or falsy,
// enumerating exactly the missing field names.
func camposObrigatorios(campos ...string) Validador {
	return func(corpo map[string]any) error {
		var ausentes []string
		for _, campo := range campos {
			valor, presente := corpo[campo]
			if campoAusente(valor, presente) {
				ausentes = append(ausentes, campo)
			}
		}
		if len(ausentes) > 0 {
			return &ErroValidacao{
				Mensagem: "Campos obrigatórios ausentes: " + strings.Join(ausentes, ", "),
				Campos:   ausentes,
			}
		}
		return nil
	}
}

// numeroPositivo fails when the field is present but is not a number
// greater than zero. Absence is the required-field validator's concern.
func numeroPositivo(campo string) Validador {
	return func(corpo map[string]any) error {
		valor, presente := corpo[campo]
		if !presente || valor == nil {
			return nil
		}
		numero, ok := valor.(float64)
		if !ok || numero <= 0 {
			return &ErroValidacao{
				Mensagem: fmt.Sprintf("O campo %s deve ser um número maior que zero", campo),
			}
		}
		return nil
	}
}

var padraoEmailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// padraoEmail fails when the field is present but does not look like an
// email address.
func padraoEmail(campo string) Validador {
	return func(corpo map[string]any) error {
		valor, presente := corpo[campo]
		if !presente || valor == nil {
			return nil
		}
		texto, ok := valor.(string)
		if ok && texto == "" {
			return nil
		}
		if !ok || !padraoEmailRe.MatchString(texto) {
			return &ErroValidacao{
				Mensagem: fmt.Sprintf("O campo %s deve ser um e-mail válido", campo),
			}
		}
		return nil
	}
}

// tamanhoMinimo fails when the field is present but shorter than the
// required length.
func tamanhoMinimo(campo string, minimo int) Validador {
	return func(corpo map[string]any) error {
		valor, presente := corpo[campo]
		if !presente || valor == nil {
			return nil
		}
		texto, ok := valor.(string)
		if !ok || len(texto) < minimo {
			return &ErroValidacao{
				Mensagem: fmt.Sprintf("O campo %s deve ter pelo menos %d caracteres", campo, minimo),
			}
		}
		return nil
	}
}
