package database

// Column представляет колонку таблицы в исходном (нативном) виде
type Column struct {
	NativeType string
	Name       string
}

// TableSchema представляет таблицу или представление с колонками
type TableSchema struct {
	Name    string
	Columns []Column // Порядок документа сохранён
}
