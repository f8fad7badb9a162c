package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/Estanteria-api/internal/domain/entity"
)

// seedNamespace base de los UUID deterministas: el mismo código siempre produce el mismo id,
// así el script puede ejecutarse varias veces.
var seedNamespace = uuid.MustParse("6f1c3d2e-8a4b-4c5d-9e7f-0a1b2c3d4e5f")

type catalogueRow struct {
	ID          string
	Code        string
	Name        string
	Color       string
	ColorSuffix string
	Material    string
	Floor       int
}

type seedUser struct {
	ID    string
	Email string
	Name  string
	Role  string
	Hash  string
}

// usuarios de arranque; comparten la contraseña pasada por argumento
var defaultUsers = []struct{ email, name, role string }{
	{"operador@estanteria.local", "Operador Principal", entity.RoleOperador},
	{"gerente@estanteria.local", "Gerente de Bodega", entity.RoleGerente},
}

// readCatalogue lee el CSV del catálogo (separado por ';', codificado en Latin-1).
// Columnas: codigo;nombre;piso. La primera fila es cabecera.
func readCatalogue(r io.Reader) ([]catalogueRow, error) {
	cr := csv.NewReader(transform.NewReader(r, charmap.ISO8859_1.NewDecoder()))
	cr.Comma = ';'
	cr.Comment = '#'
	cr.TrimLeadingSpace = true

	if _, err := cr.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("catálogo vacío")
		}
		return nil, fmt.Errorf("leer cabecera: %w", err)
	}

	seen := make(map[string]bool)
	var rows []catalogueRow
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("leer fila: %w", err)
		}
		line, _ := cr.FieldPos(0)
		if len(rec) < 3 {
			return nil, fmt.Errorf("línea %d: se esperan 3 columnas, hay %d", line, len(rec))
		}
		code := strings.Join(strings.Fields(rec[0]), " ")
		name := strings.TrimSpace(rec[1])
		if code == "" || name == "" {
			return nil, fmt.Errorf("línea %d: código y nombre son obligatorios", line)
		}
		floor, err := strconv.Atoi(strings.TrimSpace(rec[2]))
		if err != nil || floor <= 0 {
			return nil, fmt.Errorf("línea %d: piso inválido %q", line, rec[2])
		}
		if seen[code] {
			return nil, fmt.Errorf("línea %d: código duplicado %s", line, code)
		}
		seen[code] = true

		suffix, material := splitCode(code)
		rows = append(rows, catalogueRow{
			ID:          uuid.NewSHA1(seedNamespace, []byte("product:"+code)).String(),
			Code:        code,
			Name:        name,
			Color:       entity.ColorName(suffix),
			ColorSuffix: suffix,
			Material:    material,
			Floor:       floor,
		})
	}
	return rows, nil
}

// splitCode separa "1510X CR" en sufijo de color (CR) y variante de material (X).
func splitCode(code string) (suffix, material string) {
	parts := strings.Fields(code)
	if len(parts) > 1 {
		suffix = strings.ToUpper(parts[len(parts)-1])
	}
	material = strings.TrimLeftFunc(parts[0], unicode.IsDigit)
	return suffix, strings.ToUpper(material)
}

// buildUsers genera los usuarios de arranque con la contraseña hasheada.
func buildUsers(password string) ([]seedUser, error) {
	if password == "" {
		return nil, nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	out := make([]seedUser, 0, len(defaultUsers))
	for _, u := range defaultUsers {
		out = append(out, seedUser{
			ID:    uuid.NewSHA1(seedNamespace, []byte("user:"+u.email)).String(),
			Email: u.email,
			Name:  u.name,
			Role:  u.role,
			Hash:  string(hash),
		})
	}
	return out, nil
}

// writeSQL escribe los INSERT idempotentes de usuarios y productos.
func writeSQL(w io.Writer, products []catalogueRow, users []seedUser) error {
	var b strings.Builder
	b.WriteString("-- Catálogo de productos del almacén\n")
	b.WriteString("-- Generado por cmd/seed; no editar a mano\n\n")

	if len(users) > 0 {
		b.WriteString("-- 1. Usuarios\n")
		b.WriteString("INSERT INTO users (id, email, password_hash, name, role) VALUES\n")
		for i, u := range users {
			fmt.Fprintf(&b, "  ('%s', '%s', '%s', '%s', '%s')%s\n",
				u.ID, escapeSQL(u.Email), u.Hash, escapeSQL(u.Name), u.Role, sep(i, len(users)))
		}
		b.WriteString("ON CONFLICT (email) DO NOTHING;\n\n")
	}

	b.WriteString("-- 2. Productos (locations vacío: todas las columnas en 0)\n")
	b.WriteString("INSERT INTO products (id, code, name, color, color_suffix, material, floor) VALUES\n")
	for i, p := range products {
		fmt.Fprintf(&b, "  ('%s', '%s', '%s', '%s', '%s', '%s', %d)%s\n",
			p.ID, escapeSQL(p.Code), escapeSQL(p.Name), escapeSQL(p.Color),
			p.ColorSuffix, escapeSQL(p.Material), p.Floor, sep(i, len(products)))
	}
	b.WriteString("ON CONFLICT (code) DO UPDATE SET\n")
	b.WriteString("  name = EXCLUDED.name, color = EXCLUDED.color, color_suffix = EXCLUDED.color_suffix,\n")
	b.WriteString("  material = EXCLUDED.material, floor = EXCLUDED.floor, updated_at = now();\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func sep(i, n int) string {
	if i < n-1 {
		return ","
	}
	return ""
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
