package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MembershipRecharge representa as recargas e o consumo de cartões de membro
// de uma loja em um dia. Não há período (timeslot) nem cálculo de crescimento.
type MembershipRecharge struct {
	ID                  string              `json:"id"`
	Shop                string              `json:"shop"`
	Date                string              `json:"date"`
	RechargeAmount      decimal.NullDecimal `json:"recharge_amount"`
	RechargeConsumption decimal.NullDecimal `json:"recharge_consumption"`
	CreatedAt           time.Time           `json:"created_at"`
	UpdatedAt           time.Time           `json:"updated_at"`
}

// MembershipFilters filtra recargas por loja e intervalo fechado de datas
type MembershipFilters struct {
	Shop     string
	DateFrom string
	DateTo   string
}
