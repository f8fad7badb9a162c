// seed genera el script SQL con el catálogo de productos y los usuarios de arranque
// a partir de un CSV exportado del ERP (Latin-1, separado por ';').
//
// Uso: go run ./cmd/seed [ruta/catalogo.csv] [password-usuarios]
// Por defecto busca catalogo.csv en cmd/seed. Sin password no se generan usuarios.
// Escribe: internal/infrastructure/postgres/migrations/002_seed_catalogue.sql
package main

import (
	"fmt"
	"os"
	"path/filepath"
)

func main() {
	moduleRoot := findModuleRoot()

	csvPath := filepath.Join(moduleRoot, "cmd", "seed", "catalogo.csv")
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	var password string
	if len(os.Args) > 2 {
		password = os.Args[2]
	}

	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	products, err := readCatalogue(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer catálogo: %v\n", err)
		os.Exit(1)
	}
	users, err := buildUsers(password)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Usuarios: %v\n", err)
		os.Exit(1)
	}

	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "002_seed_catalogue.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	if err := writeSQL(out, products, users); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir SQL: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Generado %s: %d productos, %d usuarios\n", outPath, len(products), len(users))
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
