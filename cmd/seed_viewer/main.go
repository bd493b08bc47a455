// seed_viewer genera el script SQL que puebla las tablas customers y transactions
// a partir de un dataset JSON o de un directorio con customers.csv y transactions.csv.
//
// Uso: go run ./cmd/seed_viewer [-charset iso-8859-1] [-apply] [ruta/dataset]
// Sin ruta usa el dataset embebido.
// Escribe: internal/infrastructure/postgres/migrations/002_seed_dataset.sql
// Con -apply además reemplaza el contenido de las tablas en la base configurada.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jhoicas/visor-clientes/internal/infrastructure/postgres"
	"github.com/jhoicas/visor-clientes/internal/infrastructure/static"
	"github.com/jhoicas/visor-clientes/pkg/config"
)

func main() {
	charset := flag.String("charset", static.CharsetUTF8, "codificación de los CSV (utf-8 | iso-8859-1)")
	apply := flag.Bool("apply", false, "cargar el dataset en PostgreSQL además de escribir el script")
	flag.Parse()

	ctx := context.Background()
	ds, err := static.NewSource(flag.Arg(0), *charset).Load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer dataset: %v\n", err)
		os.Exit(1)
	}

	// Ruta del script de salida (relativa al módulo)
	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "002_seed_dataset.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	if err := writeSeed(out, ds); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir script: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generado %s: %d clientes, %d transacciones\n", outPath, len(ds.Customers), len(ds.Transactions))

	if !*apply {
		return
	}
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()
	if err := postgres.NewTxRunner(pool).ReplaceDataset(ctx, ds.Customers, ds.Transactions); err != nil {
		fmt.Fprintf(os.Stderr, "Cargar dataset: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Dataset cargado en PostgreSQL")
}

// writeSeed escribe los INSERT conservando el orden de origen en la columna position.
func writeSeed(w io.Writer, ds *static.Dataset) error {
	var b strings.Builder
	b.WriteString("-- Dataset del visor de clientes\n")
	b.WriteString("-- Generado por cmd/seed_viewer\n\n")
	b.WriteString("TRUNCATE transactions, customers;\n\n")

	if len(ds.Customers) > 0 {
		b.WriteString("-- 1. Clientes\n")
		b.WriteString("INSERT INTO customers (id, name, position) VALUES\n")
		for i, c := range ds.Customers {
			fmt.Fprintf(&b, "  (%d, '%s', %d)", c.ID, escapeSQL(c.Name), i)
			b.WriteString(separator(i, len(ds.Customers)))
		}
		b.WriteString("\n")
	}

	if len(ds.Transactions) > 0 {
		b.WriteString("-- 2. Transacciones\n")
		b.WriteString("INSERT INTO transactions (id, customer_id, tx_date, amount, position) VALUES\n")
		for i, t := range ds.Transactions {
			fmt.Fprintf(&b, "  (%d, %d, '%s', %s, %d)", t.ID, t.CustomerID, t.DateLabel(), t.Amount.String(), i)
			b.WriteString(separator(i, len(ds.Transactions)))
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func separator(i, n int) string {
	if i < n-1 {
		return ",\n"
	}
	return ";\n"
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
