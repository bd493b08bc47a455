package customers

import (
	"strings"
	"sync"

	"github.com/jhoicas/visor-clientes/internal/domain/entity"
	"github.com/jhoicas/visor-clientes/internal/domain/viewer"
)

// maxMemoEntries tope de consultas memorizadas por versión del dataset.
const maxMemoEntries = 256

// snapshot vista derivada e inmutable de una carga del dataset.
type snapshot struct {
	version      uint64
	customers    int
	transactions int
	orphans      []entity.Transaction
	enriched     []entity.EnrichedCustomer
	byID         map[int64]int // primer índice de cada ID en enriched
}

func newSnapshot(version uint64, customers []entity.Customer, transactions []entity.Transaction) *snapshot {
	enriched := viewer.Enrich(customers, transactions)
	byID := make(map[int64]int, len(enriched))
	for i, c := range enriched {
		if _, dup := byID[c.ID]; !dup {
			byID[c.ID] = i
		}
	}
	return &snapshot{
		version:      version,
		customers:    len(customers),
		transactions: len(transactions),
		orphans:      viewer.Orphans(customers, transactions),
		enriched:     enriched,
		byID:         byID,
	}
}

func (s *snapshot) customer(id int64) (entity.EnrichedCustomer, bool) {
	i, ok := s.byID[id]
	if !ok {
		return entity.EnrichedCustomer{}, false
	}
	return s.enriched[i], true
}

// filterMemo memoriza resultados de Filter por consulta para una versión del dataset.
// Es solo optimización: un fallo de caché recalcula con viewer.Filter.
type filterMemo struct {
	mu      sync.Mutex
	version uint64
	entries map[string][]entity.EnrichedCustomer
	hits    uint64
}

func (m *filterMemo) filter(snap *snapshot, query string) []entity.EnrichedCustomer {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.entries == nil || m.version != snap.version {
		m.entries = make(map[string][]entity.EnrichedCustomer)
		m.version = snap.version
	}
	if out, ok := m.entries[query]; ok {
		m.hits++
		return out
	}
	out := viewer.Filter(snap.enriched, query)
	if len(m.entries) >= maxMemoEntries {
		m.entries = make(map[string][]entity.EnrichedCustomer)
	}
	// La clave puede apuntar a un buffer de la petición HTTP: se guarda una copia.
	m.entries[strings.Clone(query)] = out
	return out
}

func (m *filterMemo) hitCount() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.hits
}
