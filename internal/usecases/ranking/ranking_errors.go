package ranking

import (
	"errors"
	"fmt"
)

var (
	ErrNoReport          = errors.New("nenhum relatório gerado até o momento")
	ErrSourceUnavailable = errors.New("erro ao carregar dados de vendas")
)

// SourceError envolve falhas de leitura da origem dos dados
type SourceError struct {
	Err   error // Erro base
	Cause error // Erro retornado pelo repositório
}

// Error implementa a interface error
func (e *SourceError) Error() string {
	return fmt.Sprintf("%s: %s", e.Err.Error(), e.Cause.Error())
}

// Unwrap retorna o erro subjacente
func (e *SourceError) Unwrap() error {
	return e.Err
}

func NewSourceError(cause error) *SourceError {
	return &SourceError{
		Err:   ErrSourceUnavailable,
		Cause: cause,
	}
}
