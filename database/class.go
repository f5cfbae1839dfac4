package database

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// GenerateClass создает объявление класса с автосвойством на каждую колонку.
// При неизвестном нативном типе возвращает ошибку и ничего не генерирует.
func GenerateClass(t TableSchema) (string, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "public class %s\n{\n", t.Name)
	for _, c := range t.Columns {
		mapped, err := MapNativeType(c.NativeType)
		if err != nil {
			return "", fmt.Errorf("column %s.%s: %w", t.Name, c.Name, err)
		}
		fmt.Fprintf(&b, "\tpublic %s %s { get; set; }\n", mapped, c.Name)
	}
	b.WriteString("}\n")

	return b.String(), nil
}

// WriteClass генерирует класс и записывает его в <dir>/<Name>.cs.
// Файл пишется только после полной сборки текста.
func WriteClass(dir string, t TableSchema) (string, error) {
	text, err := GenerateClass(t)
	if err != nil {
		return "", err
	}

	outFile := filepath.Join(dir, t.Name+".cs")
	if err := os.WriteFile(outFile, []byte(text), 0o644); err != nil {
		return "", err
	}
	return outFile, nil
}
