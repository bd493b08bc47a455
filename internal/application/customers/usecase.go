// Package customers contiene los casos de uso del visor de clientes: carga del dataset,
// tabla filtrada y paginada con resaltado, detalle, gráfica y extracto PDF.
package customers

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/jhoicas/visor-clientes/internal/application/dto"
	"github.com/jhoicas/visor-clientes/internal/domain"
	"github.com/jhoicas/visor-clientes/internal/domain/entity"
	"github.com/jhoicas/visor-clientes/internal/domain/repository"
	"github.com/jhoicas/visor-clientes/internal/domain/viewer"
)

// maxLoggedOrphans tope de IDs de transacciones huérfanas que se escriben en el log.
const maxLoggedOrphans = 20

// Options parámetros de presentación del visor.
type Options struct {
	PageSize  int             // tamaño por defecto
	PageSizes []int           // tamaños permitidos
	Logger    *zerolog.Logger // nil = sin logs
}

// UseCase casos de uso del visor. Mantiene la vista derivada en memoria y la
// recalcula solo cuando se recargan las listas de origen.
type UseCase struct {
	customerRepo    repository.CustomerRepository
	transactionRepo repository.TransactionRepository
	pdf             StatementPDFGenerator
	opts            Options
	log             zerolog.Logger

	mu   sync.RWMutex
	snap *snapshot
	memo filterMemo
}

// NewUseCase construye el caso de uso. pdf puede ser nil si no se ofrece el extracto.
func NewUseCase(
	customerRepo repository.CustomerRepository,
	transactionRepo repository.TransactionRepository,
	pdf StatementPDFGenerator,
	opts Options,
) *UseCase {
	if len(opts.PageSizes) == 0 {
		opts.PageSizes = []int{5, 10, 15}
	}
	if opts.PageSize <= 0 {
		opts.PageSize = opts.PageSizes[0]
	}
	log := zerolog.Nop()
	if opts.Logger != nil {
		log = *opts.Logger
	}
	return &UseCase{
		customerRepo:    customerRepo,
		transactionRepo: transactionRepo,
		pdf:             pdf,
		opts:            opts,
		log:             log,
	}
}

// Reload vuelve a leer clientes y transacciones y reemplaza la vista derivada.
// Las transacciones sin cliente se descartan de la vista y se registran como warning.
func (uc *UseCase) Reload(ctx context.Context) (*dto.DatasetDTO, error) {
	customers, err := uc.customerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("reload: clientes: %w", err)
	}
	transactions, err := uc.transactionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("reload: transacciones: %w", err)
	}

	uc.mu.Lock()
	var version uint64 = 1
	if uc.snap != nil {
		version = uc.snap.version + 1
	}
	snap := newSnapshot(version, customers, transactions)
	uc.snap = snap
	uc.mu.Unlock()

	uc.logOrphans(snap)
	uc.log.Info().
		Uint64("version", snap.version).
		Int("customers", snap.customers).
		Int("transactions", snap.transactions).
		Msg("dataset cargado")

	return &dto.DatasetDTO{
		Version:      snap.version,
		Customers:    snap.customers,
		Transactions: snap.transactions,
		Orphans:      len(snap.orphans),
	}, nil
}

func (uc *UseCase) logOrphans(snap *snapshot) {
	if len(snap.orphans) == 0 {
		return
	}
	ids := make([]int64, 0, maxLoggedOrphans)
	for i, tx := range snap.orphans {
		if i == maxLoggedOrphans {
			break
		}
		ids = append(ids, tx.ID)
	}
	uc.log.Warn().
		Int("count", len(snap.orphans)).
		Ints64("transaction_ids", ids).
		Msg("transacciones con customer_id inexistente descartadas de la vista")
}

// current devuelve la vista vigente, cargándola si aún no existe.
func (uc *UseCase) current(ctx context.Context) (*snapshot, error) {
	uc.mu.RLock()
	snap := uc.snap
	uc.mu.RUnlock()
	if snap != nil {
		return snap, nil
	}
	if _, err := uc.Reload(ctx); err != nil {
		return nil, err
	}
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.snap, nil
}

// NormalizePage valida índice y tamaño de página. Tamaño 0 usa el valor por defecto.
func (uc *UseCase) NormalizePage(page, pageSize int) (int, int, error) {
	if page < 0 {
		return 0, 0, fmt.Errorf("%w: page debe ser >= 0", domain.ErrInvalidInput)
	}
	if pageSize == 0 {
		pageSize = uc.opts.PageSize
	}
	for _, s := range uc.opts.PageSizes {
		if s == pageSize {
			return page, pageSize, nil
		}
	}
	return 0, 0, fmt.Errorf("%w: page_size debe ser uno de %v", domain.ErrInvalidInput, uc.opts.PageSizes)
}

// Search filtra por la consulta, pagina y resalta nombre y montos con la misma consulta.
func (uc *UseCase) Search(ctx context.Context, req dto.SearchRequest) (*dto.CustomerPageDTO, error) {
	page, size, err := uc.NormalizePage(req.Page, req.PageSize)
	if err != nil {
		return nil, err
	}
	snap, err := uc.current(ctx)
	if err != nil {
		return nil, err
	}

	filtered := uc.memo.filter(snap, req.Query)
	p := viewer.Paginate(filtered, page, size)

	items := make([]dto.CustomerDTO, 0, len(p.Items))
	for _, c := range p.Items {
		items = append(items, toCustomerDTO(c, req.Query, true))
	}
	return &dto.CustomerPageDTO{
		Query: req.Query,
		Items: items,
		PageResponse: dto.PageResponse{
			Page:      p.Index,
			PageSize:  p.Size,
			Total:     p.Total,
			PageCount: p.PageCount,
			PageSizes: append([]int(nil), uc.opts.PageSizes...),
		},
	}, nil
}

// GetCustomer devuelve un cliente enriquecido o domain.ErrNotFound.
func (uc *UseCase) GetCustomer(ctx context.Context, id int64) (*dto.CustomerDTO, error) {
	c, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	out := toCustomerDTO(c, "", false)
	return &out, nil
}

// Chart serie fecha vs monto del cliente, en el orden de origen de las transacciones.
func (uc *UseCase) Chart(ctx context.Context, id int64) (*dto.ChartDTO, error) {
	c, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	points := make([]dto.ChartPointDTO, 0, len(c.Transactions))
	for _, tx := range c.Transactions {
		points = append(points, dto.ChartPointDTO{Date: tx.DateLabel(), Amount: tx.Amount.InexactFloat64()})
	}
	return &dto.ChartDTO{
		CustomerID: c.ID,
		Name:       c.Name,
		Title:      "Transactions for " + c.Name,
		Points:     points,
	}, nil
}

// Statement genera el extracto PDF del cliente.
func (uc *UseCase) Statement(ctx context.Context, id int64) ([]byte, error) {
	if uc.pdf == nil {
		return nil, fmt.Errorf("statement: generador PDF no configurado")
	}
	c, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	doc, err := uc.pdf.GenerateStatementPDF(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("statement: %w", err)
	}
	return doc, nil
}

func (uc *UseCase) find(ctx context.Context, id int64) (entity.EnrichedCustomer, error) {
	snap, err := uc.current(ctx)
	if err != nil {
		return entity.EnrichedCustomer{}, err
	}
	c, ok := snap.customer(id)
	if !ok {
		return entity.EnrichedCustomer{}, domain.ErrNotFound
	}
	return c, nil
}

func toCustomerDTO(c entity.EnrichedCustomer, query string, withSegments bool) dto.CustomerDTO {
	out := dto.CustomerDTO{
		ID:           c.ID,
		Name:         c.Name,
		Transactions: make([]dto.TransactionDTO, 0, len(c.Transactions)),
	}
	if withSegments {
		out.NameSegments = toSegmentDTOs(viewer.Highlight(c.Name, query))
	}
	for _, tx := range c.Transactions {
		t := dto.TransactionDTO{ID: tx.ID, Date: tx.DateLabel(), Amount: tx.Amount}
		if withSegments {
			t.AmountSegments = toSegmentDTOs(viewer.Highlight(tx.AmountText(), query))
		}
		out.Transactions = append(out.Transactions, t)
	}
	return out
}

func toSegmentDTOs(segs []viewer.Segment) []dto.SegmentDTO {
	out := make([]dto.SegmentDTO, 0, len(segs))
	for _, s := range segs {
		out = append(out, dto.SegmentDTO{Text: s.Text, Kind: string(s.Kind)})
	}
	return out
}
