package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/visor-clientes/pkg/logger"
)

func TestNew_ProduccionEscribeJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	log := logger.New(logger.Config{Env: "production", Level: "info", Output: buf})

	log.Info().Str("customer_id", "7").Msg("cliente seleccionado")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line), "la salida debe ser JSON")
	assert.Equal(t, "info", line["level"])
	assert.Equal(t, "cliente seleccionado", line["message"])
	assert.Equal(t, "7", line["customer_id"])
	assert.Contains(t, line, "time")
}

func TestNew_RespetaNivel(t *testing.T) {
	buf := &bytes.Buffer{}
	log := logger.New(logger.Config{Env: "production", Level: "warn", Output: buf})

	log.Info().Msg("no debe salir")
	assert.Zero(t, buf.Len())

	log.Warn().Msg("sí debe salir")
	assert.Contains(t, buf.String(), "sí debe salir")
}

func TestNew_DevelopmentUsaConsola(t *testing.T) {
	buf := &bytes.Buffer{}
	log := logger.New(logger.Config{Env: "development", Level: "debug", Output: buf})

	log.Debug().Msg("legible")
	assert.Contains(t, buf.String(), "legible")
	assert.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())), "en development la salida no es JSON")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.TraceLevel, logger.ParseLevel("trace"))
	assert.Equal(t, zerolog.ErrorLevel, logger.ParseLevel("error"))
	assert.Equal(t, zerolog.InfoLevel, logger.ParseLevel("desconocido"))
}

func TestNop_NoEscribe(t *testing.T) {
	log := logger.Nop()
	assert.Equal(t, zerolog.Disabled, log.Zerolog().GetLevel())
}
