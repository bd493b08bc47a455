// Package static implementa los repositorios de solo lectura sobre un dataset
// fijo: el JSON embebido en el binario, un archivo JSON o un directorio con
// customers.csv y transactions.csv.
package static

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/jhoicas/visor-clientes/internal/domain/entity"
	"github.com/jhoicas/visor-clientes/internal/domain/repository"
)

//go:embed dataset.json
var embeddedDataset []byte

// Source origen del dataset. Cada Load vuelve a leer el archivo, así un reload ve los cambios.
// Los repositorios comparten una lectura por reload (ver take).
type Source struct {
	path    string // vacío = embebido
	charset string

	mu      sync.Mutex
	current *Dataset
	served  map[listKind]bool
}

type listKind int

const (
	listCustomers listKind = iota
	listTransactions
)

// NewSource construye el origen. path vacío usa el dataset embebido; un directorio
// se lee como par de CSV; cualquier otro archivo como JSON.
func NewSource(path, charset string) *Source {
	return &Source{path: path, charset: charset}
}

// Load lee y decodifica el dataset completo.
func (s *Source) Load(_ context.Context) (*Dataset, error) {
	if s.path == "" {
		return DecodeJSON(bytes.NewReader(embeddedDataset))
	}
	info, err := os.Stat(s.path)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	if info.IsDir() {
		return s.loadCSVDir()
	}
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	defer f.Close()
	return DecodeJSON(f)
}

// take entrega el dataset vigente a la lista kind. Si esa lista ya lo recibió,
// se inicia un reload nuevo y se vuelve a leer el archivo. Así clientes y
// transacciones de un mismo reload salen de la misma lectura.
func (s *Source) take(ctx context.Context, kind listKind) (*Dataset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil || s.served[kind] {
		ds, err := s.Load(ctx)
		if err != nil {
			return nil, err
		}
		s.current = ds
		s.served = make(map[listKind]bool, 2)
	}
	s.served[kind] = true
	return s.current, nil
}

func (s *Source) loadCSVDir() (*Dataset, error) {
	cf, err := os.Open(filepath.Join(s.path, "customers.csv"))
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	defer cf.Close()
	customers, err := DecodeCustomersCSV(cf, s.charset)
	if err != nil {
		return nil, err
	}

	tf, err := os.Open(filepath.Join(s.path, "transactions.csv"))
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	defer tf.Close()
	transactions, err := DecodeTransactionsCSV(tf, s.charset)
	if err != nil {
		return nil, err
	}
	return &Dataset{Customers: customers, Transactions: transactions}, nil
}

var (
	_ repository.CustomerRepository    = (*CustomerRepo)(nil)
	_ repository.TransactionRepository = (*TransactionRepo)(nil)
)

// CustomerRepo implementación de CustomerRepository sobre Source.
type CustomerRepo struct {
	src *Source
}

// NewCustomerRepository construye el adaptador.
func NewCustomerRepository(src *Source) *CustomerRepo {
	return &CustomerRepo{src: src}
}

// List devuelve los clientes en el orden del archivo.
func (r *CustomerRepo) List(ctx context.Context) ([]entity.Customer, error) {
	ds, err := r.src.take(ctx, listCustomers)
	if err != nil {
		return nil, err
	}
	return ds.Customers, nil
}

// TransactionRepo implementación de TransactionRepository sobre Source.
type TransactionRepo struct {
	src *Source
}

// NewTransactionRepository construye el adaptador.
func NewTransactionRepository(src *Source) *TransactionRepo {
	return &TransactionRepo{src: src}
}

// List devuelve las transacciones en el orden del archivo.
func (r *TransactionRepo) List(ctx context.Context) ([]entity.Transaction, error) {
	ds, err := r.src.take(ctx, listTransactions)
	if err != nil {
		return nil, err
	}
	return ds.Transactions, nil
}
