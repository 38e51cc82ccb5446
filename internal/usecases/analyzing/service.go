package analyzing

import (
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/restaurant-revenue-api/internal/domain"
)

// Service monta as visões de vendas a partir do snapshot atual. Nada é
// guardado entre chamadas: tudo é recalculado do snapshot recebido.
type Service struct {
	snapshots SnapshotReader
}

func NewService(snapshots SnapshotReader) Analyzer {
	return &Service{snapshots: snapshots}
}

// GetSalesReport aplica filtros e ordenação e calcula, por linha, as variações
// em relação ao mês anterior. As bases de comparação vêm do snapshot completo,
// nunca do conjunto filtrado.
func (s *Service) GetSalesReport(query domain.SalesQuery) *domain.SalesReport {
	snapshot := s.snapshots.Current()

	filtered := FilterRecords(snapshot.Records, query.Filters)
	sorted := SortRecords(filtered, query.SortKey, query.Direction)

	rows := make([]domain.SalesRow, 0, len(sorted))
	for _, record := range sorted {
		monthly, slot := RowGrowth(record, snapshot.Index)
		rows = append(rows, domain.SalesRow{
			RevenueRecord: record,
			MonthlyGrowth: monthly,
			SlotGrowth:    slot,
		})
	}

	logrus.WithFields(logrus.Fields{
		"generation": snapshot.Generation,
		"total":      len(snapshot.Records),
		"filtered":   len(rows),
		"sort":       query.SortKey,
		"direction":  query.Direction,
	}).Debug("analyzing: relatório de vendas calculado")

	return &domain.SalesReport{
		Rows:       rows,
		Count:      len(rows),
		Total:      len(snapshot.Records),
		Generation: snapshot.Generation,
		FetchedAt:  snapshot.FetchedAt,
		Error:      errorMessage(snapshot.Err),
	}
}

// GetChart monta as séries do gráfico para o escopo de loja/período do filtro
func (s *Service) GetChart(filters domain.RevenueFilters) *domain.RevenueChart {
	snapshot := s.snapshots.Current()

	filtered := FilterRecords(snapshot.Records, filters)
	months := ChartMonths(filters, filtered)

	series := BuildChartSeries(months, snapshot.Index, ChartScope{
		Shop:     filters.Shop,
		Timeslot: filters.Timeslot,
	})

	return &domain.RevenueChart{
		ChartSeries: series,
		Shop:        filters.Shop,
		Timeslot:    filters.Timeslot,
		Generation:  snapshot.Generation,
		FetchedAt:   snapshot.FetchedAt,
		Error:       errorMessage(snapshot.Err),
	}
}

func (s *Service) GetLabels() domain.RevenueLabels {
	labels := s.snapshots.Current().Labels
	if labels.Shops == nil {
		labels.Shops = []string{}
	}
	if labels.Timeslots == nil {
		labels.Timeslots = []string{}
	}
	return labels
}

func errorMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
