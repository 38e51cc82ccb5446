package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SortDirection define a ordem da listagem
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// SortKey é o campo usado para ordenar os registros de faturamento
type SortKey string

const (
	SortByID               SortKey = "id"
	SortByShop             SortKey = "shop"
	SortByDate             SortKey = "date"
	SortByTimeslot         SortKey = "timeslot"
	SortByAmount           SortKey = "amount"
	SortByTransactionCount SortKey = "transaction_count"
)

// SalesQuery reúne filtros e ordenação pedidos pela tela de vendas
type SalesQuery struct {
	Filters   RevenueFilters
	SortKey   SortKey
	Direction SortDirection
}

// SalesRow é uma linha da tabela de vendas com as variações mês a mês
type SalesRow struct {
	RevenueRecord
	MonthlyGrowth GrowthRate `json:"monthly_growth"`
	SlotGrowth    GrowthRate `json:"slot_growth"`
}

// SalesReport é a resposta da tabela de vendas
type SalesReport struct {
	Rows       []SalesRow `json:"rows"`
	Count      int        `json:"count"`
	Total      int        `json:"total"` // quantidade de registros no snapshot antes dos filtros
	Generation uint64     `json:"generation"`
	FetchedAt  time.Time  `json:"fetched_at"`
	Error      string     `json:"error,omitempty"`
}

// ChartSeries são as duas séries paralelas do gráfico de tendência
type ChartSeries struct {
	Months []MonthKey        `json:"months"`
	Totals []decimal.Decimal `json:"totals"`
	Growth []GrowthRate      `json:"growth"`
}

// RevenueChart é a resposta do gráfico de vendas
type RevenueChart struct {
	ChartSeries
	Shop       string    `json:"shop,omitempty"`
	Timeslot   string    `json:"timeslot,omitempty"`
	Generation uint64    `json:"generation"`
	FetchedAt  time.Time `json:"fetched_at"`
	Error      string    `json:"error,omitempty"`
}
