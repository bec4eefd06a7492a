// Package schemas provides embedded SQL migration files.
package schemas

import (
	"embed"
	"fmt"
	"strings"
)

// Migrations contains one SQL file per database driver.
//
//go:embed migrations/*.sql
var Migrations embed.FS

// Statements returns the migration statements for driver in file order.
func Statements(driver string) ([]string, error) {
	content, err := Migrations.ReadFile("migrations/" + driver + ".sql")
	if err != nil {
		return nil, fmt.Errorf("no schema for driver %q: %w", driver, err)
	}

	var statements []string
	for _, stmt := range strings.Split(string(content), ";") {
		if stmt = strings.TrimSpace(stmt); stmt != "" {
			statements = append(statements, stmt)
		}
	}
	return statements, nil
}
