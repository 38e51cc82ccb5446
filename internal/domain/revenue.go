package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrRevenueIDRequired = errors.New("id do registro de faturamento é obrigatório")
	ErrInvalidDate       = errors.New("data inválida: use o formato yyyy-mm-dd")
)

// RevenueRecord representa o faturamento de uma loja em um dia e período (timeslot)
type RevenueRecord struct {
	ID               string              `json:"id"`
	Shop             string              `json:"shop"`
	Date             string              `json:"date"` // yyyy-mm-dd, vazio quando a origem não informou
	Timeslot         string              `json:"timeslot"`
	Amount           decimal.NullDecimal `json:"amount"`
	TransactionCount *int                `json:"transaction_count"`
}

// NewRevenueRecord cria um registro validado. A data é truncada para yyyy-mm-dd
// quando vier com mais precisão (ex.: timestamp RFC3339).
func NewRevenueRecord(id, shop, date, timeslot string, amount decimal.NullDecimal, transactionCount *int) (RevenueRecord, error) {
	if id == "" {
		return RevenueRecord{}, ErrRevenueIDRequired
	}

	normalizedDate, err := NormalizeDate(date)
	if err != nil {
		return RevenueRecord{}, err
	}

	return RevenueRecord{
		ID:               id,
		Shop:             shop,
		Date:             normalizedDate,
		Timeslot:         timeslot,
		Amount:           amount,
		TransactionCount: transactionCount,
	}, nil
}

// NormalizeDate trunca a data para yyyy-mm-dd. Data vazia continua vazia.
func NormalizeDate(value string) (string, error) {
	if value == "" {
		return "", nil
	}

	if len(value) < len(time.DateOnly) {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}

	date := value[:len(time.DateOnly)]
	if _, err := time.Parse(time.DateOnly, date); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}

	return date, nil
}

// AmountOrZero retorna o valor do registro, tratando ausência como zero
func (r RevenueRecord) AmountOrZero() decimal.Decimal {
	if !r.Amount.Valid {
		return decimal.Zero
	}
	return r.Amount.Decimal
}

// TransactionCountOrZero retorna a quantidade de transações, tratando ausência como zero
func (r RevenueRecord) TransactionCountOrZero() int {
	if r.TransactionCount == nil {
		return 0
	}
	return *r.TransactionCount
}

// MonthKey retorna o mês do registro e false quando a data não permite agrupamento
func (r RevenueRecord) MonthKey() (MonthKey, bool) {
	return MonthKeyFromDate(r.Date)
}

// RevenueFilters são os critérios opcionais do pipeline de filtros.
// Campo vazio significa "sem restrição".
type RevenueFilters struct {
	Shop     string
	Timeslot string
	DateFrom string
	DateTo   string
}

// IsEmpty indica se nenhum critério foi informado
func (f RevenueFilters) IsEmpty() bool {
	return f.Shop == "" && f.Timeslot == "" && f.DateFrom == "" && f.DateTo == ""
}

// RevenueLabels são os valores conhecidos de loja e período, usados nos filtros da tela
type RevenueLabels struct {
	Shops     []string `json:"shops"`
	Timeslots []string `json:"timeslots"`
}
