package membership

import (
	"errors"
	"fmt"
)

// Erros específicos para recargas de cartão de membro
var (
	ErrInvalidRecharge    = errors.New("recarga inválida")
	ErrRechargeIDRequired = errors.New("id da recarga é obrigatório")

	ErrRechargeNotFound      = errors.New("recarga não encontrada")
	ErrRechargeAlreadyExists = errors.New("recarga já existe")
	ErrFetchRecharges        = errors.New("erro ao buscar recargas no banco de dados")
	ErrDatabaseOperation     = errors.New("erro de operação no banco de dados")

	ErrGenerateID = errors.New("erro ao gerar identificador")
)

// MembershipError é um erro com contexto adicional para a API
type MembershipError struct {
	Err     error
	Code    string
	Details string
	Fields  map[string]string
}

func (e *MembershipError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *MembershipError) Unwrap() error {
	return e.Err
}

func NewMembershipError(err error, code string, details string) *MembershipError {
	return &MembershipError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
