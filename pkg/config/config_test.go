package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/visor-clientes/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.DataSourceStatic, cfg.Data.Source)
	assert.Equal(t, 5, cfg.Viewer.PageSize)
	assert.Equal(t, []int{5, 10, 15}, cfg.Viewer.PageSizes)
	assert.Equal(t, 30, cfg.Session.IdleMinutes)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
}

func TestLoad_VariablesDeEntorno(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DATA_SOURCE", "Postgres")
	t.Setenv("VIEWER_PAGE_SIZES", "10, 20")
	t.Setenv("VIEWER_PAGE_SIZE", "20")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, config.DataSourcePostgres, cfg.Data.Source)
	assert.Equal(t, []int{10, 20}, cfg.Viewer.PageSizes)
	assert.Equal(t, 20, cfg.Viewer.PageSize)
}

func TestLoad_FuenteInvalida(t *testing.T) {
	t.Setenv("DATA_SOURCE", "mongo")
	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoad_TamanoDePaginaNoPermitido(t *testing.T) {
	t.Setenv("VIEWER_PAGE_SIZE", "7")
	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoad_ListaDeTamanosInvalida(t *testing.T) {
	t.Setenv("VIEWER_PAGE_SIZES", "5,diez")
	_, err := config.Load()
	assert.Error(t, err)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "u", Password: "p@ss", DBName: "visor", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p%40ss@db:5432/visor?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://otro"
	assert.Equal(t, "postgres://otro", c.ConnectionString())
}
