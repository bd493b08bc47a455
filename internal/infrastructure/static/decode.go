package static

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/visor-clientes/internal/domain/entity"
)

// Codificaciones aceptadas para archivos CSV.
const (
	CharsetUTF8   = "utf-8"
	CharsetLatin1 = "iso-8859-1"
)

// Dataset listas de origen en el orden en que aparecen en el archivo.
type Dataset struct {
	Customers    []entity.Customer
	Transactions []entity.Transaction
}

type jsonDataset struct {
	Customers []struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	} `json:"customers"`
	Transactions []struct {
		ID         int64           `json:"id"`
		CustomerID int64           `json:"customer_id"`
		Date       string          `json:"date"`
		Amount     decimal.Decimal `json:"amount"`
	} `json:"transactions"`
}

// DecodeJSON lee {"customers":[...],"transactions":[...]}. amount acepta número o string.
func DecodeJSON(r io.Reader) (*Dataset, error) {
	var raw jsonDataset
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decodificar JSON: %w", err)
	}

	ds := &Dataset{
		Customers:    make([]entity.Customer, 0, len(raw.Customers)),
		Transactions: make([]entity.Transaction, 0, len(raw.Transactions)),
	}
	for i, c := range raw.Customers {
		if c.ID == 0 {
			return nil, fmt.Errorf("customers[%d]: id requerido", i)
		}
		ds.Customers = append(ds.Customers, entity.Customer{ID: c.ID, Name: c.Name})
	}
	for i, t := range raw.Transactions {
		if t.ID == 0 {
			return nil, fmt.Errorf("transactions[%d]: id requerido", i)
		}
		d, err := parseDate(t.Date)
		if err != nil {
			return nil, fmt.Errorf("transactions[%d]: %w", i, err)
		}
		ds.Transactions = append(ds.Transactions, entity.Transaction{
			ID: t.ID, CustomerID: t.CustomerID, Date: d, Amount: t.Amount,
		})
	}
	return ds, nil
}

// DecodeCustomersCSV lee un CSV con cabecera id,name.
func DecodeCustomersCSV(r io.Reader, charset string) ([]entity.Customer, error) {
	rows, err := readCSV(r, charset, []string{"id", "name"})
	if err != nil {
		return nil, fmt.Errorf("customers.csv: %w", err)
	}
	out := make([]entity.Customer, 0, len(rows))
	for i, row := range rows {
		id, err := parseID(row[0])
		if err != nil {
			return nil, fmt.Errorf("customers.csv fila %d: %w", i+2, err)
		}
		out = append(out, entity.Customer{ID: id, Name: row[1]})
	}
	return out, nil
}

// DecodeTransactionsCSV lee un CSV con cabecera id,customer_id,date,amount.
func DecodeTransactionsCSV(r io.Reader, charset string) ([]entity.Transaction, error) {
	rows, err := readCSV(r, charset, []string{"id", "customer_id", "date", "amount"})
	if err != nil {
		return nil, fmt.Errorf("transactions.csv: %w", err)
	}
	out := make([]entity.Transaction, 0, len(rows))
	for i, row := range rows {
		line := i + 2
		id, err := parseID(row[0])
		if err != nil {
			return nil, fmt.Errorf("transactions.csv fila %d: %w", line, err)
		}
		customerID, err := strconv.ParseInt(strings.TrimSpace(row[1]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("transactions.csv fila %d: customer_id inválido %q", line, row[1])
		}
		d, err := parseDate(row[2])
		if err != nil {
			return nil, fmt.Errorf("transactions.csv fila %d: %w", line, err)
		}
		amount, err := decimal.NewFromString(strings.TrimSpace(row[3]))
		if err != nil {
			return nil, fmt.Errorf("transactions.csv fila %d: amount inválido %q", line, row[3])
		}
		out = append(out, entity.Transaction{ID: id, CustomerID: customerID, Date: d, Amount: amount})
	}
	return out, nil
}

// readCSV valida la cabecera y devuelve las filas de datos.
func readCSV(r io.Reader, charset string, header []string) ([][]string, error) {
	switch strings.ToLower(charset) {
	case "", CharsetUTF8:
	case CharsetLatin1, "latin1", "iso8859-1":
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	default:
		return nil, fmt.Errorf("charset no soportado %q", charset)
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(header)
	cr.TrimLeadingSpace = true

	got, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("archivo vacío")
		}
		return nil, err
	}
	for i, h := range header {
		if !strings.EqualFold(strings.TrimSpace(strings.TrimPrefix(got[i], "\ufeff")), h) {
			return nil, fmt.Errorf("cabecera esperada %v, recibida %v", header, got)
		}
	}
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("id inválido %q", s)
	}
	return id, nil
}

func parseDate(s string) (time.Time, error) {
	d, err := time.Parse(entity.DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("fecha inválida %q (YYYY-MM-DD)", s)
	}
	return d, nil
}
