package domain

import (
	"github.com/shopspring/decimal"
)

// RevenueRequest é o corpo de criação e atualização de um registro de faturamento
type RevenueRequest struct {
	ID               string           `json:"id" validate:"omitempty,max=64"`
	Shop             string           `json:"shop" validate:"required,max=120"`
	Date             string           `json:"date" validate:"required,datetime=2006-01-02"`
	Timeslot         string           `json:"timeslot" validate:"required,max=60"`
	Amount           *decimal.Decimal `json:"amount" validate:"omitempty,gte=0"`
	TransactionCount *int             `json:"transaction_count" validate:"omitempty,gte=0"`
}

// MembershipRequest é o corpo de criação e atualização de uma recarga
type MembershipRequest struct {
	ID                  string           `json:"id" validate:"omitempty,max=64"`
	Shop                string           `json:"shop" validate:"required,max=120"`
	Date                string           `json:"date" validate:"required,datetime=2006-01-02"`
	RechargeAmount      *decimal.Decimal `json:"recharge_amount" validate:"omitempty,gte=0"`
	RechargeConsumption *decimal.Decimal `json:"recharge_consumption" validate:"omitempty,gte=0"`
}

// ToNullDecimal converte um valor opcional da requisição
func ToNullDecimal(value *decimal.Decimal) decimal.NullDecimal {
	if value == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(*value)
}
