package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/visor-clientes/internal/application/customers"
	"github.com/jhoicas/visor-clientes/internal/application/dto"
	"github.com/jhoicas/visor-clientes/internal/application/session"
	"github.com/jhoicas/visor-clientes/internal/domain/entity"
	"github.com/jhoicas/visor-clientes/internal/infrastructure/static"
	apphttp "github.com/jhoicas/visor-clientes/internal/interfaces/http"
	"github.com/jhoicas/visor-clientes/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type stubPDF struct{}

func (stubPDF) GenerateStatementPDF(context.Context, entity.EnrichedCustomer) ([]byte, error) {
	return []byte("%PDF-1.3 stub"), nil
}

// buildTestApp construye la app con el dataset embebido y un generador PDF de mentira.
func buildTestApp(t *testing.T) *fiber.App {
	t.Helper()
	src := static.NewSource("", "")
	uc := customers.NewUseCase(
		static.NewCustomerRepository(src),
		static.NewTransactionRepository(src),
		stubPDF{},
		customers.Options{PageSize: 5, PageSizes: []int{5, 10, 15}},
	)
	app := fiber.New()
	app.Use(apphttp.RequestLogger(logger.Nop()))
	apphttp.Router(app, apphttp.RouterDeps{
		CustomersUC: uc,
		SessionSvc:  session.NewService(session.NewStore(), uc),
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, sessionID string, body interface{}) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if sessionID != "" {
		req.Header.Set(apphttp.HeaderSessionID, sessionID)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func newSession(t *testing.T, app *fiber.App) string {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/sessions", "", nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var st dto.SessionDTO
	decode(t, resp, &st)
	require.NotEmpty(t, st.SessionID)
	return st.SessionID
}

// ──────────────────────────────────────────────────────────────────────────────
// /api/customers
// ──────────────────────────────────────────────────────────────────────────────

func TestList_PrimeraPaginaSinConsulta(t *testing.T) {
	app := buildTestApp(t)
	resp := doJSON(t, app, http.MethodGet, "/api/customers", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var page dto.CustomerPageDTO
	decode(t, resp, &page)
	assert.Len(t, page.Items, 5)
	assert.Equal(t, 5, page.Total)
	assert.Equal(t, 1, page.PageCount)
	assert.Equal(t, "Ahmed Ali", page.Items[0].Name)
}

func TestList_FiltraYResalta(t *testing.T) {
	app := buildTestApp(t)
	resp := doJSON(t, app, http.MethodGet, "/api/customers?q=ali", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var page dto.CustomerPageDTO
	decode(t, resp, &page)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "ali", page.Query)
	assert.Equal(t, []dto.SegmentDTO{
		{Text: "Ahmed ", Kind: "plain"},
		{Text: "Ali", Kind: "matched"},
	}, page.Items[0].NameSegments)
}

func TestList_ConsultasSucesivasNoComparteResultados(t *testing.T) {
	app := buildTestApp(t)
	src := static.NewSource("", "")
	direct := customers.NewUseCase(
		static.NewCustomerRepository(src),
		static.NewTransactionRepository(src),
		nil,
		customers.Options{},
	)

	alphabet := []rune("aedy01 5")
	for _, a := range alphabet {
		for _, b := range alphabet {
			q := string([]rune{a, b})
			want, err := direct.Search(context.Background(), dto.SearchRequest{Query: q})
			require.NoError(t, err)

			resp := doJSON(t, app, http.MethodGet, "/api/customers?q="+url.QueryEscape(q), "", nil)
			require.Equal(t, http.StatusOK, resp.StatusCode)
			var page dto.CustomerPageDTO
			decode(t, resp, &page)
			assert.Equal(t, q, page.Query)
			assert.Equal(t, want.Total, page.Total, "consulta %q", q)
		}
	}
	// Repetir las primeras consultas usa la memoria ya poblada.
	for _, q := range []string{"aa", "00", "e "} {
		want, err := direct.Search(context.Background(), dto.SearchRequest{Query: q})
		require.NoError(t, err)
		resp := doJSON(t, app, http.MethodGet, "/api/customers?q="+url.QueryEscape(q), "", nil)
		var page dto.CustomerPageDTO
		decode(t, resp, &page)
		assert.Equal(t, want.Total, page.Total, "consulta repetida %q", q)
	}
}

func TestList_ConsultaConParentesisNoFalla(t *testing.T) {
	app := buildTestApp(t)
	resp := doJSON(t, app, http.MethodGet, "/api/customers?q=%28", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var page dto.CustomerPageDTO
	decode(t, resp, &page)
	assert.Empty(t, page.Items)
}

func TestList_ParametrosInvalidos(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/customers?page=uno", "", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/customers?page_size=7", "", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "VALIDATION")
}

func TestGetByIDYChart(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/customers/2", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var c dto.CustomerDTO
	decode(t, resp, &c)
	assert.Equal(t, "Aya Elsayed", c.Name)
	assert.Len(t, c.Transactions, 2)

	resp = doJSON(t, app, http.MethodGet, "/api/customers/2/chart", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var chart dto.ChartDTO
	decode(t, resp, &chart)
	assert.Equal(t, "Transactions for Aya Elsayed", chart.Title)
	require.Len(t, chart.Points, 2)
	assert.Equal(t, "2022-01-01", chart.Points[0].Date)

	resp = doJSON(t, app, http.MethodGet, "/api/customers/999", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/customers/abc/chart", "", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestStatement_DevuelvePDF(t *testing.T) {
	app := buildTestApp(t)
	resp := doJSON(t, app, http.MethodGet, "/api/customers/1/statement.pdf", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	body, _ := io.ReadAll(resp.Body)
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF")))
}

func TestReload(t *testing.T) {
	app := buildTestApp(t)
	resp := doJSON(t, app, http.MethodPost, "/api/dataset/reload", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var ds dto.DatasetDTO
	decode(t, resp, &ds)
	assert.Equal(t, uint64(1), ds.Version)
	assert.Equal(t, 5, ds.Customers)
	assert.Equal(t, 0, ds.Orphans)
}

// ──────────────────────────────────────────────────────────────────────────────
// /api/session
// ──────────────────────────────────────────────────────────────────────────────

func TestSession_SinHeaderRetorna401(t *testing.T) {
	app := buildTestApp(t)
	resp := doJSON(t, app, http.MethodGet, "/api/session", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_SESSION")
}

func TestSession_InexistenteRetorna404(t *testing.T) {
	app := buildTestApp(t)
	resp := doJSON(t, app, http.MethodGet, "/api/session", "no-existe", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "SESSION_NOT_FOUND")
}

func TestSession_FlujoBusquedaSeleccionYGrafica(t *testing.T) {
	app := buildTestApp(t)
	sid := newSession(t, app)

	// Escribir en el buscador
	resp := doJSON(t, app, http.MethodPut, "/api/session/query", sid, dto.SetQueryRequest{Query: "sayed"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var st dto.SessionDTO
	decode(t, resp, &st)
	assert.Equal(t, "sayed", st.Query)

	resp = doJSON(t, app, http.MethodGet, "/api/session/view", sid, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var page dto.CustomerPageDTO
	decode(t, resp, &page)
	require.Len(t, page.Items, 2)
	assert.Equal(t, int64(2), page.Items[0].ID)
	assert.Equal(t, int64(5), page.Items[1].ID)

	// Sin selección no hay gráfica
	resp = doJSON(t, app, http.MethodGet, "/api/session/chart", sid, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Clic en la fila
	resp = doJSON(t, app, http.MethodPut, "/api/session/selection", sid, dto.SelectCustomerRequest{CustomerID: 5})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &st)
	require.NotNil(t, st.SelectedCustomerID)
	assert.Equal(t, int64(5), *st.SelectedCustomerID)

	resp = doJSON(t, app, http.MethodGet, "/api/session/chart", sid, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var chart dto.ChartDTO
	decode(t, resp, &chart)
	assert.Equal(t, "Transactions for Mohamed Sayed", chart.Title)

	// Cerrar el diálogo
	resp = doJSON(t, app, http.MethodDelete, "/api/session/selection", sid, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	st = dto.SessionDTO{}
	decode(t, resp, &st)
	assert.Nil(t, st.SelectedCustomerID)
}

func TestSession_SeleccionInexistenteYPaginaInvalida(t *testing.T) {
	app := buildTestApp(t)
	sid := newSession(t, app)

	resp := doJSON(t, app, http.MethodPut, "/api/session/selection", sid, dto.SelectCustomerRequest{CustomerID: 404})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPut, "/api/session/page", sid, dto.PageRequest{Page: 0, PageSize: 7})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPut, "/api/session/page", sid, dto.PageRequest{Page: 0, PageSize: 10})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var st dto.SessionDTO
	decode(t, resp, &st)
	assert.Equal(t, 10, st.PageSize)
}

func TestSession_PaginaFueraDeRangoSeGuardaComoUltima(t *testing.T) {
	app := buildTestApp(t)
	sid := newSession(t, app)

	resp := doJSON(t, app, http.MethodPut, "/api/session/page", sid, dto.PageRequest{Page: 99})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var st dto.SessionDTO
	decode(t, resp, &st)
	assert.Equal(t, 0, st.Page, "cinco clientes en páginas de cinco: solo existe la página 0")

	resp = doJSON(t, app, http.MethodGet, "/api/session", sid, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	st = dto.SessionDTO{}
	decode(t, resp, &st)
	assert.Equal(t, 0, st.Page)

	resp = doJSON(t, app, http.MethodGet, "/api/session/view", sid, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var page dto.CustomerPageDTO
	decode(t, resp, &page)
	assert.Equal(t, st.Page, page.Page)
}

func TestChart_MontoEsNumeroJSON(t *testing.T) {
	app := buildTestApp(t)
	resp := doJSON(t, app, http.MethodGet, "/api/customers/1/chart", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var raw struct {
		Points []map[string]interface{} `json:"points"`
	}
	decode(t, resp, &raw)
	require.Len(t, raw.Points, 2)
	amount, ok := raw.Points[0]["amount"].(float64)
	require.True(t, ok, "amount debe serializarse como número, llegó %T", raw.Points[0]["amount"])
	assert.Equal(t, 1000.0, amount)
}
