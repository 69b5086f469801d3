package validation

import "strings"

// Violations acumula todas as mensagens de validação de uma submissão.
// Implementa error para atravessar a camada de usecase.
type Violations []string

func (v Violations) Error() string {
	return strings.Join(v, "; ")
}

func (v Violations) Empty() bool {
	return len(v) == 0
}
