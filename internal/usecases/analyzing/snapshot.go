package analyzing

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/vfg2006/restaurant-revenue-api/internal/domain"
)

// Snapshot é o conjunto completo de registros da última busca aplicada
type Snapshot struct {
	Records    []domain.RevenueRecord
	Labels     domain.RevenueLabels
	Index      AggregationIndex
	Generation uint64
	FetchedAt  time.Time
	Err        error
}

// SnapshotStore guarda o snapshot atual. Cada busca recebe uma geração
// crescente em Begin e só é aplicada em Complete se for mais nova que a
// geração já aplicada; respostas atrasadas são descartadas.
type SnapshotStore struct {
	nextGeneration atomic.Uint64
	mu             sync.RWMutex
	current        Snapshot
}

func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{
		current: Snapshot{
			Records: []domain.RevenueRecord{},
			Index:   BuildAggregationIndex(nil),
		},
	}
}

// Begin reserva a geração de uma nova busca
func (s *SnapshotStore) Begin() uint64 {
	return s.nextGeneration.Add(1)
}

// Complete aplica o resultado da busca da geração informada. Retorna false
// quando uma busca mais nova já foi aplicada. Uma busca com erro substitui o
// snapshot por um conjunto vazio com o erro registrado.
func (s *SnapshotStore) Complete(generation uint64, records []domain.RevenueRecord, labels domain.RevenueLabels, fetchErr error) bool {
	if fetchErr != nil {
		records = []domain.RevenueRecord{}
		labels = domain.RevenueLabels{}
	}

	// o índice é montado fora do lock; o snapshot aplicado nunca é alterado depois
	index := BuildAggregationIndex(records)

	s.mu.Lock()
	defer s.mu.Unlock()

	if generation <= s.current.Generation {
		return false
	}

	s.current = Snapshot{
		Records:    records,
		Labels:     labels,
		Index:      index,
		Generation: generation,
		FetchedAt:  time.Now(),
		Err:        fetchErr,
	}

	return true
}

// Current retorna o snapshot aplicado mais recente
func (s *SnapshotStore) Current() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.current
}
