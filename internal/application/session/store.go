// Package session mantiene el estado de cada sesión interactiva del visor:
// consulta activa, cliente seleccionado y página. Cada campo tiene un único
// punto de actualización y el estado se reemplaza completo en cada cambio.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/visor-clientes/internal/domain"
)

// State estado de una sesión. Es un valor: quien lo lee recibe una copia.
type State struct {
	ID                 string
	Query              string
	SelectedCustomerID *int64
	Page               int
	PageSize           int
	LastSeen           time.Time
}

// HasSelection indica si hay un cliente seleccionado (diálogo de gráfica abierto).
func (s State) HasSelection() bool {
	return s.SelectedCustomerID != nil
}

// Store guarda los estados por ID de sesión. Seguro para uso concurrente.
type Store struct {
	mu       sync.Mutex
	sessions map[string]State
	now      func() time.Time
}

// NewStore construye un store vacío.
func NewStore() *Store {
	return &Store{sessions: make(map[string]State), now: time.Now}
}

// NewStoreWithClock igual que NewStore pero con reloj inyectado (tests).
func NewStoreWithClock(now func() time.Time) *Store {
	return &Store{sessions: make(map[string]State), now: now}
}

// Create abre una sesión nueva con consulta vacía, sin selección y en la primera página.
func (s *Store) Create(pageSize int) State {
	st := State{
		ID:       uuid.New().String(),
		PageSize: pageSize,
		LastSeen: s.now(),
	}
	s.mu.Lock()
	s.sessions[st.ID] = st
	s.mu.Unlock()
	return st
}

// Get devuelve el estado y renueva LastSeen.
func (s *Store) Get(id string) (State, error) {
	return s.update(id, func(st State) State { return st })
}

// SetQuery reemplaza la consulta. Cambiar la consulta vuelve a la primera página.
func (s *Store) SetQuery(id, query string) (State, error) {
	return s.update(id, func(st State) State {
		if st.Query != query {
			st.Page = 0
		}
		st.Query = query
		return st
	})
}

// SetPage reemplaza índice y tamaño de página (ya validados por el llamador).
func (s *Store) SetPage(id string, page, pageSize int) (State, error) {
	return s.update(id, func(st State) State {
		st.Page = page
		st.PageSize = pageSize
		return st
	})
}

// Select marca un cliente como seleccionado.
func (s *Store) Select(id string, customerID int64) (State, error) {
	return s.update(id, func(st State) State {
		cid := customerID
		st.SelectedCustomerID = &cid
		return st
	})
}

// ClearSelection cierra el diálogo: quita la selección.
func (s *Store) ClearSelection(id string) (State, error) {
	return s.update(id, func(st State) State {
		st.SelectedCustomerID = nil
		return st
	})
}

// Delete elimina la sesión. No falla si no existe.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// Prune elimina las sesiones sin actividad desde hace más de idle y devuelve cuántas quitó.
func (s *Store) Prune(idle time.Duration) int {
	cutoff := s.now().Add(-idle)
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, st := range s.sessions {
		if st.LastSeen.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// Len número de sesiones activas.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *Store) update(id string, fn func(State) State) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.sessions[id]
	if !ok {
		return State{}, domain.ErrSessionNotFound
	}
	next := fn(st)
	next.ID = st.ID
	next.LastSeen = s.now()
	s.sessions[id] = next
	return next, nil
}
