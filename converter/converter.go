// Package converter собирает одноразовые конвертации: класс -> JSON
// и описание таблицы (XML, SQL, PostgreSQL) -> класс.
package converter

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"langconv/config"
	"langconv/database"
	"langconv/parser"
	"langconv/serializer"
	"langconv/xmlparser"
)

type Converter struct {
	cfg    *config.Config
	parser *parser.ClassParser
	log    *logrus.Logger
}

func New(cfg *config.Config, log *logrus.Logger) *Converter {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Converter{
		cfg:    cfg,
		parser: parser.NewClassParser(),
		log:    log,
	}
}

// ClassToJSON читает <source_dir>/<className>.cs и пишет <output_dir>/<className>.json
func (c *Converter) ClassToJSON(className string) (string, error) {
	srcFile := filepath.Join(c.cfg.Paths.SourceDir, className+".cs")
	data, err := os.ReadFile(srcFile)
	if err != nil {
		return "", fmt.Errorf("read class %s: %w", className, err)
	}

	record := c.parser.Parse(string(data), className)

	outFile, err := serializer.WriteFile(c.cfg.Paths.OutputDir, record, c.cfg.JSON.Indent)
	if err != nil {
		return "", err
	}

	c.log.WithFields(logrus.Fields{
		"class":        className,
		"fields":       len(record.Fields),
		"properties":   len(record.Properties),
		"constants":    len(record.Constants),
		"methods":      len(record.Methods),
		"constructors": len(record.Constructors),
		"inherits":     record.HasParents(),
		"output":       outFile,
	}).Info("Class converted to JSON")
	return outFile, nil
}

// XMLToClass генерирует класс по paths.xml_file
func (c *Converter) XMLToClass() (string, error) {
	t, err := xmlparser.ParseDataClass(c.cfg.Paths.XMLFile)
	if err != nil {
		return "", err
	}
	return c.writeClass(t, c.cfg.Paths.XMLFile)
}

// SQLToClass генерирует классы по CREATE TABLE из paths.sql_file.
// Пустое имя таблицы означает все таблицы скрипта.
func (c *Converter) SQLToClass(table string) ([]string, error) {
	tables, err := parser.ParseSQLSchema(c.cfg.Paths.SQLFile)
	if err != nil {
		return nil, err
	}

	var selected []database.TableSchema
	for _, t := range tables {
		if table == "" || t.Name == table {
			selected = append(selected, t)
		}
	}
	if table != "" && len(selected) == 0 {
		return nil, fmt.Errorf("%s in %s: %w", table, c.cfg.Paths.SQLFile, database.ErrTableNotFound)
	}

	var written []string
	for _, t := range selected {
		outFile, err := c.writeClass(t, c.cfg.Paths.SQLFile)
		if err != nil {
			return written, err
		}
		written = append(written, outFile)
	}
	return written, nil
}

// DBToClass генерирует класс по колонкам таблицы в PostgreSQL
func (c *Converter) DBToClass(ctx context.Context, db *sql.DB, table string) (string, error) {
	t, err := database.LoadTableSchema(ctx, db, c.cfg.Database.Schema, table)
	if err != nil {
		return "", err
	}
	return c.writeClass(t, c.cfg.Database.Schema+"."+table)
}

func (c *Converter) writeClass(t database.TableSchema, source string) (string, error) {
	outFile, err := database.WriteClass(c.cfg.Paths.OutputDir, t)
	if err != nil {
		return "", err
	}

	c.log.WithFields(logrus.Fields{
		"table":   t.Name,
		"columns": len(t.Columns),
		"source":  source,
		"output":  outFile,
	}).Info("Class generated")
	return outFile, nil
}
