package analyzing

import (
	"errors"
	"fmt"
)

// Erros do pipeline de análise de vendas
var (
	ErrInvalidInput         = errors.New("dados de entrada inválidos")
	ErrReferentialIntegrity = errors.New("referência inexistente no catálogo")
)

const (
	ReferenceSeller  = "seller"
	ReferenceProduct = "product"
)

// InvalidInputError indica que o formato geral da entrada foi rejeitado antes de qualquer cálculo
type InvalidInputError struct {
	Err     error  // Erro base
	Field   string // Coleção rejeitada (vazio quando a entrada inteira está ausente)
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *InvalidInputError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s %s", e.Err.Error(), e.Field, e.Details)
	}
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *InvalidInputError) Unwrap() error {
	return e.Err
}

// ReferentialIntegrityError indica um cheque ou item que aponta para um vendedor ou SKU inexistente
type ReferentialIntegrityError struct {
	Err         error
	Kind        string // ReferenceSeller ou ReferenceProduct
	Key         string // Identificador não encontrado
	RecordIndex int
	ItemIndex   int // -1 quando a falha é no próprio cheque
}

// Error implementa a interface error
func (e *ReferentialIntegrityError) Error() string {
	if e.Kind == ReferenceProduct {
		return fmt.Sprintf("%s: %s %q (cheque %d, item %d)", e.Err.Error(), e.Kind, e.Key, e.RecordIndex, e.ItemIndex)
	}
	return fmt.Sprintf("%s: %s %q (cheque %d)", e.Err.Error(), e.Kind, e.Key, e.RecordIndex)
}

// Unwrap retorna o erro subjacente
func (e *ReferentialIntegrityError) Unwrap() error {
	return e.Err
}

func newInvalidInputError(field string, details string) *InvalidInputError {
	return &InvalidInputError{
		Err:     ErrInvalidInput,
		Field:   field,
		Details: details,
	}
}

func newUnknownSellerError(sellerID string, recordIndex int) *ReferentialIntegrityError {
	return &ReferentialIntegrityError{
		Err:         ErrReferentialIntegrity,
		Kind:        ReferenceSeller,
		Key:         sellerID,
		RecordIndex: recordIndex,
		ItemIndex:   -1,
	}
}

func newUnknownProductError(sku string, recordIndex, itemIndex int) *ReferentialIntegrityError {
	return &ReferentialIntegrityError{
		Err:         ErrReferentialIntegrity,
		Kind:        ReferenceProduct,
		Key:         sku,
		RecordIndex: recordIndex,
		ItemIndex:   itemIndex,
	}
}

// IsInvalidInput verifica se o erro foi gerado pela validação da entrada
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsReferentialIntegrity verifica se o erro foi gerado por uma referência inexistente
func IsReferentialIntegrity(err error) bool {
	return errors.Is(err, ErrReferentialIntegrity)
}
