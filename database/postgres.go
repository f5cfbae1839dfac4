package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrTableNotFound возвращается, если у таблицы нет ни одной колонки в источнике
var ErrTableNotFound = errors.New("table not found")

const columnsQuery = `SELECT column_name, data_type
FROM information_schema.columns
WHERE table_schema = $1 AND table_name = $2
ORDER BY ordinal_position`

var reTypeArgs = regexp.MustCompile(`\s*\(.*\)`)

// LoadTableSchema читает колонки таблицы из information_schema PostgreSQL
func LoadTableSchema(ctx context.Context, db *sql.DB, schema, table string) (TableSchema, error) {
	rows, err := db.QueryContext(ctx, columnsQuery, schema, table)
	if err != nil {
		return TableSchema{}, fmt.Errorf("query columns of %s.%s: %w", schema, table, err)
	}
	defer rows.Close()

	t := TableSchema{Name: table}
	for rows.Next() {
		var name, dataType string
		if err := rows.Scan(&name, &dataType); err != nil {
			return TableSchema{}, fmt.Errorf("scan column of %s.%s: %w", schema, table, err)
		}
		t.Columns = append(t.Columns, Column{
			NativeType: NativeType(dataType),
			Name:       name,
		})
	}
	if err := rows.Err(); err != nil {
		return TableSchema{}, err
	}

	if len(t.Columns) == 0 {
		return TableSchema{}, fmt.Errorf("%s.%s: %w", schema, table, ErrTableNotFound)
	}
	return t, nil
}

// NativeType приводит тип PostgreSQL к нативному типу таблицы соответствий.
// Незнакомые типы возвращаются в верхнем регистре и дальше не проходят поиск.
func NativeType(pgType string) string {
	t := strings.ToLower(strings.TrimSpace(pgType))
	t = reTypeArgs.ReplaceAllString(t, "")

	switch {
	case t == "integer", t == "int", t == "int2", t == "int4", t == "int8",
		t == "smallint", t == "bigint", t == "numeric", t == "decimal",
		t == "real", t == "double precision", t == "serial", t == "bigserial":
		return "NUMBER"
	case t == "text", strings.HasPrefix(t, "character"), strings.HasPrefix(t, "varchar"),
		strings.HasPrefix(t, "char"):
		return "TEXT"
	case t == "date", strings.HasPrefix(t, "timestamp"), strings.HasPrefix(t, "time"):
		return "DATE"
	case t == "boolean", t == "bool", strings.HasPrefix(t, "bit"):
		return "BIT"
	default:
		return strings.ToUpper(strings.TrimSpace(pgType))
	}
}
