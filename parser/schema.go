package parser

import (
	"os"
	"regexp"
	"strings"

	"langconv/database"
)

var (
	reTable    = regexp.MustCompile(`(?is)CREATE TABLE\s+(\w+)\s*\((.*?)\)\s*;`)
	reCol      = regexp.MustCompile(`(?i)^\s*([A-Za-z_]\w*)\s+([A-Za-z_]\w*)`)
	reSkipLine = regexp.MustCompile(`(?i)^(PRIMARY KEY|CONSTRAINT|FOREIGN KEY|UNIQUE)\b`)
)

// ParseSQLSchema парсит CREATE TABLE из SQL файла
func ParseSQLSchema(path string) ([]database.TableSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseSQLText(string(data)), nil
}

// ParseSQLText парсит CREATE TABLE из текста скрипта. Нативный тип колонки
// берется в верхнем регистре без длины: NUMBER(10) -> NUMBER.
func ParseSQLText(text string) []database.TableSchema {
	var tables []database.TableSchema
	for _, m := range reTable.FindAllStringSubmatch(text, -1) {
		t := database.TableSchema{Name: m[1]}

		for _, line := range strings.Split(m[2], "\n") {
			line = strings.TrimSpace(line)
			if line == "" || reSkipLine.MatchString(line) {
				continue
			}
			line = strings.TrimSuffix(line, ",")
			if caps := reCol.FindStringSubmatch(line); caps != nil {
				t.Columns = append(t.Columns, database.Column{
					NativeType: strings.ToUpper(caps[2]),
					Name:       caps[1],
				})
			}
		}
		tables = append(tables, t)
	}
	return tables
}
