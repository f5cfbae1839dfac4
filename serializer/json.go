// Package serializer пишет ClassRecord в JSON-файл <ClassName>.json.
package serializer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"langconv/parser"
)

// Marshal кодирует запись в JSON. Все значения остаются строками, порядок списков сохраняется.
func Marshal(record parser.ClassRecord, indent bool) ([]byte, error) {
	if indent {
		return json.MarshalIndent(record, "", "  ")
	}
	return json.Marshal(record)
}

// WriteFile записывает <dir>/<ClassName>.json, перезаписывая существующий файл
func WriteFile(dir string, record parser.ClassRecord, indent bool) (string, error) {
	data, err := Marshal(record, indent)
	if err != nil {
		return "", fmt.Errorf("marshal %s: %w", record.ClassName, err)
	}

	outFile := filepath.Join(dir, record.ClassName+".json")
	if err := os.WriteFile(outFile, data, 0o644); err != nil {
		return "", err
	}
	return outFile, nil
}
