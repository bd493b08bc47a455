package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRows filas en memoria; Scan copia cada valor en el puntero destino.
type fakeRows struct {
	data [][]any
	i    int
	err  error
}

func (r *fakeRows) Close()                                       {}
func (r *fakeRows) Err() error                                   { return r.err }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }
func (r *fakeRows) Values() ([]any, error)                       { return r.data[r.i-1], nil }

func (r *fakeRows) Next() bool {
	if r.i >= len(r.data) {
		return false
	}
	r.i++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	row := r.data[r.i-1]
	if len(dest) != len(row) {
		return fmt.Errorf("scan: %d destinos para %d columnas", len(dest), len(row))
	}
	for i, d := range dest {
		switch p := d.(type) {
		case *int64:
			*p = row[i].(int64)
		case *string:
			*p = row[i].(string)
		case *time.Time:
			*p = row[i].(time.Time)
		case *decimal.Decimal:
			*p = row[i].(decimal.Decimal)
		default:
			return fmt.Errorf("scan: tipo no soportado %T", d)
		}
	}
	return nil
}

// fakeQuerier registra la última consulta y devuelve filas fijas.
type fakeQuerier struct {
	rows     *fakeRows
	queryErr error
	lastSQL  string
}

func (q *fakeQuerier) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (q *fakeQuerier) Query(_ context.Context, sql string, _ ...any) (pgx.Rows, error) {
	q.lastSQL = sql
	if q.queryErr != nil {
		return nil, q.queryErr
	}
	return q.rows, nil
}

func (q *fakeQuerier) QueryRow(context.Context, string, ...any) pgx.Row { return nil }

func TestCustomerRepo_List(t *testing.T) {
	q := &fakeQuerier{rows: &fakeRows{data: [][]any{
		{int64(2), "Aya Elsayed"},
		{int64(1), "Ahmed Ali"},
	}}}
	list, err := NewCustomerRepository(q).List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, int64(2), list[0].ID, "respeta el orden devuelto por la consulta")
	assert.Equal(t, "Ahmed Ali", list[1].Name)
	assert.Contains(t, q.lastSQL, "ORDER BY position")
}

func TestTransactionRepo_List(t *testing.T) {
	day := time.Date(2022, 1, 2, 0, 0, 0, 0, time.UTC)
	q := &fakeQuerier{rows: &fakeRows{data: [][]any{
		{int64(7), int64(99), day, decimal.RequireFromString("12.50")},
	}}}
	list, err := NewTransactionRepository(q).List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, int64(99), list[0].CustomerID)
	assert.Equal(t, "2022-01-02", list[0].DateLabel())
	assert.Equal(t, "12.5", list[0].AmountText())
}

func TestRepos_PropaganErrores(t *testing.T) {
	boom := errors.New("conexión perdida")

	_, err := NewCustomerRepository(&fakeQuerier{queryErr: boom}).List(context.Background())
	assert.ErrorIs(t, err, boom)

	_, err = NewTransactionRepository(&fakeQuerier{rows: &fakeRows{err: boom}}).List(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, isUniqueViolation(fmt.Errorf("copy: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("otro error")))
}
