// Package pdf genera el extracto imprimible de un cliente del visor.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────┐
//	│  HEADER: Nombre del cliente │ ID + Fecha    │
//	│  ─────────────────────────────────────────  │
//	│  TABLA: # | Fecha | Monto                   │
//	│  ─────────────────────────────────────────  │
//	│  TOTALES: N° transacciones / Total          │
//	└─────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	appcustomers "github.com/jhoicas/visor-clientes/internal/application/customers"
	"github.com/jhoicas/visor-clientes/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ appcustomers.StatementPDFGenerator = (*MarotoStatementGenerator)(nil)

// MarotoStatementGenerator implementa customers.StatementPDFGenerator usando Maroto v2.
type MarotoStatementGenerator struct {
	now func() time.Time
}

// NewMarotoStatementGenerator construye el generador.
func NewMarotoStatementGenerator() *MarotoStatementGenerator {
	return &MarotoStatementGenerator{now: time.Now}
}

// GenerateStatementPDF genera el PDF y devuelve sus bytes.
func (g *MarotoStatementGenerator) GenerateStatementPDF(_ context.Context, customer entity.EnrichedCustomer) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Transactions for "+customer.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(customer, g.now()))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	m.AddRows(tableRows(customer.Transactions)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(customer.Transactions))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(customer entity.EnrichedCustomer, now time.Time) core.Row {
	return row.New(18).Add(
		col.New(8).Add(
			text.New("Transactions for", props.Text{
				Size: 9, Top: 1, Color: colorGray,
			}),
			text.New(customer.Name, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 6,
			}),
		),
		col.New(4).Add(
			text.New("Cliente #"+strconv.FormatInt(customer.ID, 10), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 1,
			}),
			text.New("Generado: "+now.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 7, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: a, Color: colorPrimary, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("#", 2, align.Center),
		h("Date", 5, align.Left),
		h("Amount", 5, align.Right),
	)
}

func tableRows(txs []entity.Transaction) []core.Row {
	if len(txs) == 0 {
		return []core.Row{row.New(8).Add(col.New(12).Add(
			text.New("Sin transacciones", props.Text{Size: 9, Align: align.Center, Top: 2, Color: colorGray}),
		))}
	}
	rows := make([]core.Row, 0, len(txs))
	for _, tx := range txs {
		rows = append(rows, row.New(7).Add(
			col.New(2).Add(text.New(strconv.FormatInt(tx.ID, 10), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(5).Add(text.New(tx.DateLabel(), props.Text{Size: 8, Align: align.Left, Top: 1})),
			col.New(5).Add(text.New(formatAmount(tx.Amount), props.Text{Size: 8, Align: align.Right, Top: 1})),
		))
	}
	return rows
}

func totalsRow(txs []entity.Transaction) core.Row {
	total := decimal.Zero
	for _, tx := range txs {
		total = total.Add(tx.Amount)
	}
	return row.New(14).Add(
		col.New(6),
		col.New(3).Add(
			text.New("Transacciones:", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: 1}),
			text.New("TOTAL:", props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Right: 2, Top: 7, Color: colorPrimary}),
		),
		col.New(3).Add(
			text.New(strconv.Itoa(len(txs)), props.Text{Size: 9, Align: align.Right, Top: 1}),
			text.New(formatAmount(total), props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 7, Color: colorPrimary}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// formatAmount separa miles con coma y deja dos decimales.
// Ej: 1000 → "1,000.00", -2500.5 → "-2,500.50"
func formatAmount(d decimal.Decimal) string {
	s := d.StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")
	n := len(intPart)
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, c)
	}
	return sign + string(buf) + "." + frac
}
