package analyzing

import (
	"github.com/vfg2006/restaurant-revenue-api/internal/domain"
)

// SnapshotReader fornece o snapshot atual de registros de faturamento
type SnapshotReader interface {
	Current() Snapshot
}

// Analyzer é a interface consumida pela camada HTTP
type Analyzer interface {
	// GetSalesReport retorna os registros filtrados e ordenados com as variações mês a mês
	GetSalesReport(query domain.SalesQuery) *domain.SalesReport

	// GetChart retorna as séries de total mensal e variação para o gráfico de tendência
	GetChart(filters domain.RevenueFilters) *domain.RevenueChart

	// GetLabels retorna as lojas e períodos conhecidos
	GetLabels() domain.RevenueLabels
}
