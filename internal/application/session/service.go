package session

import (
	"context"
	"time"

	"github.com/jhoicas/visor-clientes/internal/application/dto"
	"github.com/jhoicas/visor-clientes/internal/domain"
)

// viewerPort es lo que la sesión necesita del visor. Lo implementa *customers.UseCase.
type viewerPort interface {
	NormalizePage(page, pageSize int) (int, int, error)
	Search(ctx context.Context, req dto.SearchRequest) (*dto.CustomerPageDTO, error)
	GetCustomer(ctx context.Context, id int64) (*dto.CustomerDTO, error)
	Chart(ctx context.Context, id int64) (*dto.ChartDTO, error)
}

// Service casos de uso de la sesión interactiva: un punto de entrada por acción del usuario.
type Service struct {
	store  *Store
	viewer viewerPort
}

// NewService construye el servicio.
func NewService(store *Store, viewer viewerPort) *Service {
	return &Service{store: store, viewer: viewer}
}

// Create abre una sesión con el tamaño de página por defecto.
func (s *Service) Create() (*dto.SessionDTO, error) {
	_, size, err := s.viewer.NormalizePage(0, 0)
	if err != nil {
		return nil, err
	}
	return toDTO(s.store.Create(size)), nil
}

// Get devuelve el estado actual.
func (s *Service) Get(id string) (*dto.SessionDTO, error) {
	st, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}
	return toDTO(st), nil
}

// SetQuery actualiza el texto de búsqueda.
func (s *Service) SetQuery(id, query string) (*dto.SessionDTO, error) {
	st, err := s.store.SetQuery(id, query)
	if err != nil {
		return nil, err
	}
	return toDTO(st), nil
}

// SetPage cambia página y tamaño. PageSize 0 conserva el tamaño actual.
// Se guarda el índice efectivo: una página más allá del final queda en la última.
func (s *Service) SetPage(ctx context.Context, id string, req dto.PageRequest) (*dto.SessionDTO, error) {
	current, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}
	size := req.PageSize
	if size == 0 {
		size = current.PageSize
	}
	page, size, err := s.viewer.NormalizePage(req.Page, size)
	if err != nil {
		return nil, err
	}
	view, err := s.viewer.Search(ctx, dto.SearchRequest{
		Query:       current.Query,
		PageRequest: dto.PageRequest{Page: page, PageSize: size},
	})
	if err != nil {
		return nil, err
	}
	st, err := s.store.SetPage(id, view.Page, size)
	if err != nil {
		return nil, err
	}
	return toDTO(st), nil
}

// SelectCustomer selecciona un cliente existente (clic en la fila).
func (s *Service) SelectCustomer(ctx context.Context, id string, customerID int64) (*dto.SessionDTO, error) {
	if _, err := s.store.Get(id); err != nil {
		return nil, err
	}
	if _, err := s.viewer.GetCustomer(ctx, customerID); err != nil {
		return nil, err
	}
	st, err := s.store.Select(id, customerID)
	if err != nil {
		return nil, err
	}
	return toDTO(st), nil
}

// ClearSelection cierra el diálogo de gráfica.
func (s *Service) ClearSelection(id string) (*dto.SessionDTO, error) {
	st, err := s.store.ClearSelection(id)
	if err != nil {
		return nil, err
	}
	return toDTO(st), nil
}

// View devuelve la página de la tabla según la consulta y página de la sesión.
func (s *Service) View(ctx context.Context, id string) (*dto.CustomerPageDTO, error) {
	st, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}
	return s.viewer.Search(ctx, dto.SearchRequest{
		Query:       st.Query,
		PageRequest: dto.PageRequest{Page: st.Page, PageSize: st.PageSize},
	})
}

// Chart devuelve la gráfica del cliente seleccionado o domain.ErrNoSelection.
func (s *Service) Chart(ctx context.Context, id string) (*dto.ChartDTO, error) {
	st, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}
	if !st.HasSelection() {
		return nil, domain.ErrNoSelection
	}
	return s.viewer.Chart(ctx, *st.SelectedCustomerID)
}

// Prune descarta sesiones inactivas.
func (s *Service) Prune(idle time.Duration) int {
	return s.store.Prune(idle)
}

func toDTO(st State) *dto.SessionDTO {
	return &dto.SessionDTO{
		SessionID:          st.ID,
		Query:              st.Query,
		SelectedCustomerID: st.SelectedCustomerID,
		Page:               st.Page,
		PageSize:           st.PageSize,
	}
}
