package postgres

import (
	"os"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Una escala fija redondearía montos como 12.345 y cambiaría su texto respecto al origen estático.
func TestSchema_MontoSinEscalaFija(t *testing.T) {
	raw, err := os.ReadFile("migrations/001_visor_schema.sql")
	require.NoError(t, err)
	schema := string(raw)

	assert.Regexp(t, regexp.MustCompile(`(?m)^\s*amount\s+NUMERIC\s+NOT NULL`), schema)
	assert.NotRegexp(t, regexp.MustCompile(`NUMERIC\s*\(`), schema)
}
