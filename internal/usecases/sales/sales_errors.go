package sales

import (
	"errors"
	"fmt"
)

// Erros específicos para o cadastro de faturamento
var (
	// Erros de validação
	ErrInvalidSale    = errors.New("registro de faturamento inválido")
	ErrSaleIDRequired = errors.New("id do registro de faturamento é obrigatório")

	// Erros de persistência
	ErrSaleNotFound      = errors.New("registro de faturamento não encontrado")
	ErrSaleAlreadyExists = errors.New("registro de faturamento já existe")
	ErrDatabaseOperation = errors.New("erro de operação no banco de dados")

	ErrGenerateID = errors.New("erro ao gerar identificador")
)

// SalesError é um erro com contexto adicional para a API
type SalesError struct {
	Err     error             // Erro base
	Code    string            // Código de erro para API
	Details string            // Detalhes adicionais
	Fields  map[string]string // Campos inválidos (quando aplicável)
}

// Error implementa a interface error
func (e *SalesError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *SalesError) Unwrap() error {
	return e.Err
}

// NewSalesError cria um novo SalesError
func NewSalesError(err error, code string, details string) *SalesError {
	return &SalesError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewValidationError cria um SalesError com os campos inválidos
func NewValidationError(code string, fields map[string]string) *SalesError {
	return &SalesError{
		Err:    ErrInvalidSale,
		Code:   code,
		Fields: fields,
	}
}
